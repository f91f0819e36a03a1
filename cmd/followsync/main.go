// Package main запускает сервис синхронизации подписок GitHub.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"followsync/internal/app"
	"followsync/internal/config"
	"followsync/pkg/logger"
)

func main() {
	// Инициализация логгера
	log := logger.New()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Создание контекста
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Обработка сигналов
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("Shutdown signal received")
		cancel()
	}()

	// Создание приложения через фабрику
	application, err := app.NewAppWithFactory(cfg, log)
	if err != nil {
		log.Fatal("Failed to create application", zap.Error(err))
	}

	// Запуск: один проход или демон по расписанию
	if err := application.Run(ctx); err != nil {
		log.Error("Sync stopped with error", zap.Error(err))
		os.Exit(1)
	}

	log.Info("Sync finished successfully")
}
