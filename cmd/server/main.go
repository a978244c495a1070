package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gravenhold-server/internal/engine"
	"gravenhold-server/internal/server"
	"gravenhold-server/internal/version"
	"gravenhold-server/pkg/logger"
	"gravenhold-server/pkg/telemetry"

	"github.com/joho/godotenv"
)

func init() {
	// .env нужен только для локальной разработки, в проде его нет
	_ = godotenv.Load()
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var replayPath string
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Initial world seed (0 for random)")
	flag.StringVar(&replayPath, "replay", "", "Path to .ghrp replay file to simulate")
	flag.Parse()

	logger.Log.Info("Starting Gravenhold...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using Master Seed: %d", cfg.Seed)
	}

	// РЕЖИМ РЕПЛЕЯ
	if replayPath != "" {
		logger.Log.Info("💿 Mode: Replay Simulation")

		gameService, err := engine.NewService(cfg)
		if err != nil {
			logger.Log.Fatal("Failed to init engine: ", err)
		}
		defer gameService.Close()

		if err := gameService.PlaybackReplay(replayPath); err != nil {
			logger.Log.Fatal("Playback failed: ", err)
		}
		return // Выходим после симуляции
	}

	// 2. Телеметрия (включается наличием OTEL_EXPORTER_OTLP_ENDPOINT)
	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(context.Background())
		if err != nil {
			logger.Log.WithError(err).Warn("Telemetry setup failed, continuing without tracing")
		} else {
			logger.Log.Info("Telemetry enabled")
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Log.WithError(err).Warn("Telemetry shutdown failed")
				}
			}()
		}
	}

	// 3. Инициализация ядра с конфигом
	gameService, err := engine.NewService(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to init engine: ", err)
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 4. Запуск сервера
	srv := server.New(gameService, cfg.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	if err := gameService.Close(); err != nil {
		logger.Log.WithError(err).Warn("Store close failed")
	}

	logger.Log.Info("Done.")
}
