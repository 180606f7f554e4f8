package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"vkazarin/zametki_bot/internal/app"
	"vkazarin/zametki_bot/internal/config"
	"vkazarin/zametki_bot/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	zl := logger.New(cfg.LogFile)
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, zl); err != nil {
		zl.Fatal("запуск бота", zap.Error(err))
	}
}
