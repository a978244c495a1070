package engine

import (
	"os"
	"strconv"
	"time"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно партии. Ноль означает случайное зерно.
	Seed int64
	// Port - адрес HTTP-сервера.
	Port string
	// DBPath - путь к файлу SQLite с сохранениями.
	DBPath string
	// ReplayDir - каталог с файлами реплеев.
	ReplayDir string
	// Telemetry включает OTLP-трейсинг.
	Telemetry bool
}

// NewConfig собирает конфиг из переменных окружения,
// подставляя значения по умолчанию.
func NewConfig() Config {
	cfg := Config{
		Seed:      time.Now().UnixNano(),
		Port:      envOr("PORT", "8080"),
		DBPath:    envOr("DB_PATH", "gravenhold.db"),
		ReplayDir: envOr("REPLAY_DIR", "replays"),
		Telemetry: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "",
	}

	if raw := os.Getenv("SEED"); raw != "" {
		if seed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
