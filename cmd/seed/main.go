// seed загружает типы тестов, вопросы и ответы из YAML-файла.
// Данные проходят ту же валидацию, что и запросы администратора.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/yourusername/langtest-api/internal/config"
	"github.com/yourusername/langtest-api/internal/domain/repository"
	apperrors "github.com/yourusername/langtest-api/internal/pkg/errors"
	pgRepo "github.com/yourusername/langtest-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/langtest-api/internal/repository/redis"
	"github.com/yourusername/langtest-api/internal/service"
	"github.com/yourusername/langtest-api/pkg/database"
)

type seedStats struct {
	testTypesCreated int
	questionsCreated int
	questionsSkipped int
}

type seeder struct {
	testTypes *service.TestTypeService
	questions *service.QuestionService
}

func main() {
	configPath := flag.String("config", envOr("CONFIG_PATH", "config/config.yaml"), "путь к файлу конфигурации")
	fixturePath := flag.String("file", "config/seed.example.yaml", "YAML-файл с тестами")
	migrate := flag.Bool("migrate", true, "применить миграции перед загрузкой")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Seed] Ошибка загрузки конфигурации: %v", err)
	}

	fx, err := loadFixtureFile(*fixturePath)
	if err != nil {
		log.Fatalf("[Seed] %v", err)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString(), true)
	if err != nil {
		log.Fatalf("[Seed] %v", err)
	}
	if *migrate {
		if err := database.MigrateDB(db, cfg.Database.MigrationsPath); err != nil {
			log.Fatalf("[Seed] %v", err)
		}
	}

	// Кеш списка типов тестов сбрасывается, если Redis доступен
	var cacheRepo repository.CacheRepository
	if redisClient, err := database.NewUniversalRedisClient(cfg.Redis); err != nil {
		log.Printf("[Seed] WARNING: Redis недоступен, кеш не будет сброшен: %v", err)
	} else {
		defer redisClient.Close()
		if cr, err := redisRepo.NewCacheRepo(redisClient, cfg.Redis.KeyPrefix); err == nil {
			cacheRepo = cr
		}
	}

	testTypeRepo := pgRepo.NewTestTypeRepo(db)
	s := &seeder{
		testTypes: service.NewTestTypeService(testTypeRepo, cacheRepo, cfg.Cache.TestTypesTTLDuration()),
		questions: service.NewQuestionService(pgRepo.NewQuestionRepo(db), testTypeRepo),
	}

	stats, err := s.run(context.Background(), fx)
	if err != nil {
		log.Fatalf("[Seed] Загрузка прервана: %v", err)
	}
	log.Printf("[Seed] Готово: типов тестов создано %d, вопросов создано %d, пропущено %d",
		stats.testTypesCreated, stats.questionsCreated, stats.questionsSkipped)
}

func (s *seeder) run(ctx context.Context, fx *fixture) (seedStats, error) {
	var stats seedStats
	for _, tt := range fx.TestTypes {
		testType, created, err := s.testTypes.EnsureTestType(ctx, tt.Name, isPublished(tt.Published))
		if err != nil {
			return stats, err
		}
		if created {
			stats.testTypesCreated++
		}

		for _, q := range tt.Questions {
			answers := make([]repository.NewAnswer, 0, len(q.Answers))
			for _, a := range q.Answers {
				answers = append(answers, repository.NewAnswer{Text: a.Text, IsRightAnswer: a.Right})
			}

			_, err := s.questions.CreateQuestion(ctx, service.CreateQuestionInput{
				Text:        q.Text,
				TestTypeID:  &testType.ID,
				IsPublished: isPublished(q.Published),
				Answers:     answers,
			})
			switch {
			case err == nil:
				stats.questionsCreated++
			case errors.Is(err, apperrors.ErrConflict):
				stats.questionsSkipped++
				log.Printf("[Seed] Вопрос %q уже существует, пропускаем", q.Text)
			default:
				return stats, err
			}
		}
	}
	return stats, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
