// migrate-force снимает dirty-состояние миграций, принудительно выставляя версию.
package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/yourusername/langtest-api/internal/config"
	"github.com/yourusername/langtest-api/pkg/database"
)

func main() {
	configPath := flag.String("config", envOr("CONFIG_PATH", "config/config.yaml"), "путь к файлу конфигурации")
	dsn := flag.String("dsn", os.Getenv("DATABASE_DSN"), "строка подключения (по умолчанию берется из конфигурации)")
	version := flag.Int("version", -1, "версия, которую нужно выставить")
	flag.Parse()

	if *version < 0 {
		log.Fatal("[MigrateForce] Флаг -version обязателен")
	}

	connStr := *dsn
	migrationsPath := database.DefaultMigrationsPath
	if connStr == "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[MigrateForce] Ошибка загрузки конфигурации: %v", err)
		}
		connStr = cfg.Database.PostgresConnectionString()
		migrationsPath = cfg.Database.MigrationsPath
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("[MigrateForce] Не удалось открыть подключение: %v", err)
	}
	defer db.Close()

	m, err := database.NewMigrator(db, migrationsPath)
	if err != nil {
		log.Fatalf("[MigrateForce] %v", err)
	}

	log.Printf("[MigrateForce] Выставляем версию миграций %d...", *version)
	if err := m.Force(*version); err != nil {
		log.Fatalf("[MigrateForce] Не удалось выставить версию: %v", err)
	}
	log.Println("[MigrateForce] Готово, dirty-состояние снято.")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
