package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yourusername/langtest-api/internal/config"
	"github.com/yourusername/langtest-api/internal/handler"
	"github.com/yourusername/langtest-api/internal/middleware"
	pgRepo "github.com/yourusername/langtest-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/langtest-api/internal/repository/redis"
	"github.com/yourusername/langtest-api/internal/service"
	"github.com/yourusername/langtest-api/internal/service/testengine"
	"github.com/yourusername/langtest-api/pkg/auth"
	"github.com/yourusername/langtest-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	isProduction := gin.Mode() == gin.ReleaseMode

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString(), isProduction)
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}
	sqlDB, err := database.GetSQLDB(db)
	if err != nil {
		log.Printf("Failed to get sql.DB: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := database.MigrateDB(db, cfg.Database.MigrationsPath); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// Репозитории
	userRepo := pgRepo.NewUserRepo(db)
	testTypeRepo := pgRepo.NewTestTypeRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	answerRepo := pgRepo.NewAnswerRepo(db)
	resultRepo := pgRepo.NewResultRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient, cfg.Redis.KeyPrefix)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Сервисы
	engineConfig := testengine.DefaultConfig()
	if cfg.Testing.QuestionsLimit > 0 {
		engineConfig.QuestionsLimit = cfg.Testing.QuestionsLimit
	}
	engineDeps := &testengine.Dependencies{
		Questions: questionRepo,
		Results:   resultRepo,
		Config:    engineConfig,
	}
	testTypeService := service.NewTestTypeService(testTypeRepo, cacheRepo, cfg.Cache.TestTypesTTLDuration())
	testService := service.NewTestService(testTypeRepo, engineDeps)
	questionService := service.NewQuestionService(questionRepo, testTypeRepo)
	answerService := service.NewAnswerService(answerRepo)
	resultService := service.NewResultService(resultRepo)
	userService := service.NewUserService(userRepo)
	authService, err := service.NewAuthService(userRepo, jwtService)
	if err != nil {
		log.Printf("Failed to initialize AuthService: %v", err)
		os.Exit(1)
	}

	// Обработчики и middleware
	testHandler := handler.NewTestHandler(testTypeService, testService, resultService)
	adminHandler := handler.NewAdminHandler(testTypeService, questionService, answerService, resultService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	rateLimiter := middleware.NewRateLimiter(redisClient)
	resultLimit := rateLimiter.Limit(middleware.RateLimitConfig{
		MaxRequests: cfg.RateLimit.ResultPerMinute,
		Window:      time.Minute,
		KeyPrefix:   cfg.Redis.KeyPrefix + "ratelimit:result",
	})
	authLimit := rateLimiter.Limit(middleware.RateLimitConfig{
		MaxRequests: cfg.RateLimit.AuthPerMinute,
		Window:      time.Minute,
		KeyPrefix:   cfg.Redis.KeyPrefix + "ratelimit:auth",
	})

	router := gin.Default()
	router.Use(middleware.RequestID())

	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		authGroup.Use(authLimit)
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		users := api.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			users.GET("/me", userHandler.GetMe)
		}

		tests := api.Group("/tests")
		{
			tests.GET("/", testHandler.ListTestTypes)
			tests.GET("/:id/",
				middleware.ExtractUintParam("id", handler.ContextTestTypeIDKey),
				authMiddleware.OptionalAuth(),
				testHandler.GetTest)
			// OptionalAuth до лимитера, чтобы считать запросы по пользователю
			tests.POST("/result/", authMiddleware.OptionalAuth(), resultLimit, testHandler.SubmitResult)
			tests.GET("/history", authMiddleware.RequireAuth(), testHandler.GetHistory)

			adminTests := tests.Group("/add")
			adminTests.Use(authMiddleware.RequireAuth(), authMiddleware.AdminOnly())
			{
				adminTests.POST("/answer/", adminHandler.CreateAnswer)
				adminTests.POST("/question/", adminHandler.CreateQuestion)
				adminTests.POST("/test-type/", adminHandler.CreateTestType)
			}
		}

		admin := api.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.AdminOnly())
		{
			admin.GET("/results/export", adminHandler.ExportResults)
			admin.GET("/questions/:id", middleware.ExtractUintParam("id", handler.ContextQuestionIDKey), adminHandler.GetQuestion)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		return
	}

	log.Println("Server exited properly")
}
