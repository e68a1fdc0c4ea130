package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Testing   TestingConfig   `mapstructure:"testing"`
	RateLimit RateLimitConfig `mapstructure:"rateLimit"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"readTimeout"`
	WriteTimeout int    `mapstructure:"writeTimeout"`
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	// MigrationsPath — каталог SQL-миграций
	MigrationsPath string `mapstructure:"migrationsPath"`
}

// RedisConfig содержит настройки подключения к Redis.
// Поддерживает режимы: single, sentinel, cluster
type RedisConfig struct {
	Mode       string   `mapstructure:"mode"`
	Addrs      []string `mapstructure:"addrs"`
	Addr       string   `mapstructure:"addr"`
	Password   string   `mapstructure:"password"`
	DB         int      `mapstructure:"db"`
	MasterName string   `mapstructure:"master_name"`
	MaxRetries int      `mapstructure:"max_retries"`
	// Интервалы между повторами в миллисекундах
	MinRetryBackoff int    `mapstructure:"min_retry_backoff"`
	MaxRetryBackoff int    `mapstructure:"max_retry_backoff"`
	KeyPrefix  string   `mapstructure:"keyPrefix"`
}

// JWTConfig содержит настройки JWT
type JWTConfig struct {
	Secret        string `mapstructure:"secret"`
	ExpirationHrs int    `mapstructure:"expirationHrs"`
}

// CacheConfig содержит время жизни кешей (в секундах)
type CacheConfig struct {
	TestTypesTTL int `mapstructure:"testTypesTTL"`
}

// TestingConfig содержит настройки выдачи тестов
type TestingConfig struct {
	// QuestionsLimit — количество вопросов в тесте
	QuestionsLimit int `mapstructure:"questionsLimit"`
}

// RateLimitConfig содержит лимиты запросов в минуту
type RateLimitConfig struct {
	ResultPerMinute int `mapstructure:"resultPerMinute"`
	AuthPerMinute   int `mapstructure:"authPerMinute"`
}

// CORSConfig содержит настройки CORS
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// TestTypesTTLDuration возвращает время жизни кеша списка типов тестов
func (c CacheConfig) TestTypesTTLDuration() time.Duration {
	return time.Duration(c.TestTypesTTL) * time.Second
}

func setDefaults(vip *viper.Viper) {
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.readTimeout", 10)
	vip.SetDefault("server.writeTimeout", 30)
	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("database.migrationsPath", "migrations")
	vip.SetDefault("redis.mode", "single")
	vip.SetDefault("redis.keyPrefix", "langtest:")
	vip.SetDefault("jwt.expirationHrs", 24)
	vip.SetDefault("cache.testTypesTTL", 300)
	vip.SetDefault("testing.questionsLimit", 10)
	vip.SetDefault("rateLimit.resultPerMinute", 30)
	vip.SetDefault("rateLimit.authPerMinute", 10)
	vip.SetDefault("cors.allowedOrigins", []string{"http://localhost:3000"})
}

func bindEnv(vip *viper.Viper) {
	// Database
	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")
	vip.BindEnv("database.migrationsPath", "DATABASE_MIGRATIONS_PATH")

	// Redis
	vip.BindEnv("redis.mode", "REDIS_MODE")
	vip.BindEnv("redis.addrs", "REDIS_ADDRS")
	vip.BindEnv("redis.addr", "REDIS_ADDR")
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")
	vip.BindEnv("redis.master_name", "REDIS_MASTER_NAME")

	// JWT
	vip.BindEnv("jwt.secret", "JWT_SECRET")
	vip.BindEnv("jwt.expirationHrs", "JWT_EXPIRATIONHRS")

	// Server и прочее
	vip.BindEnv("server.port", "SERVER_PORT")
	vip.BindEnv("cache.testTypesTTL", "CACHE_TEST_TYPES_TTL")
	vip.BindEnv("testing.questionsLimit", "TESTING_QUESTIONS_LIMIT")
	vip.BindEnv("rateLimit.resultPerMinute", "RATE_LIMIT_RESULT_PER_MINUTE")
	vip.BindEnv("rateLimit.authPerMinute", "RATE_LIMIT_AUTH_PER_MINUTE")
	vip.BindEnv("cors.allowedOrigins", "CORS_ALLOWED_ORIGINS")
}

// Load загружает конфигурацию из файла и переменных окружения.
// Переменные окружения имеют приоритет над файлом.
func Load(configPath string) (*Config, error) {
	vip := viper.New()
	setDefaults(vip)
	bindEnv(vip)

	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
				log.Printf("Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// REDIS_ADDRS и CORS_ALLOWED_ORIGINS приходят из окружения одной строкой через запятую
	cfg.Redis.Addrs = splitList(cfg.Redis.Addrs)
	cfg.CORS.AllowedOrigins = splitList(cfg.CORS.AllowedOrigins)

	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("--- Загруженные значения конфигурации ---")
		log.Printf("Database: %s@%s:%s/%s (sslmode=%s)", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName, cfg.Database.SSLMode)
		log.Printf("Redis: mode=%s addr=%s addrs=%v", cfg.Redis.Mode, cfg.Redis.Addr, cfg.Redis.Addrs)
		log.Printf("Server Port: %s, questions per test: %d", cfg.Server.Port, cfg.Testing.QuestionsLimit)
		log.Printf("-----------------------------------------")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("database configuration (host, dbname, user) is incomplete in config (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
	}
	if len(c.JWT.Secret) < 16 {
		return fmt.Errorf("jwt secret must be at least 16 characters (check JWT_SECRET env var)")
	}
	if c.Testing.QuestionsLimit <= 0 {
		return fmt.Errorf("testing.questionsLimit must be positive, got %d", c.Testing.QuestionsLimit)
	}
	if c.Redis.Addr == "" && len(c.Redis.Addrs) == 0 {
		return fmt.Errorf("redis configuration error: addrs or addr must be provided (check REDIS_ADDR env var)")
	}
	return nil
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
