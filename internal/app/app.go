// Package app содержит основную логику приложения.
package app

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"followsync/internal/config"
	"followsync/internal/health"
	"followsync/internal/service"
	"followsync/internal/storage"
)

// App представляет приложение синхронизации подписок
type App struct {
	config      *config.Config
	logger      *zap.Logger
	db          *storage.SQLite
	syncService *service.SyncService
	wg          sync.WaitGroup
}

// NewAppWithFactory создает приложение через фабрику компонентов
func NewAppWithFactory(cfg *config.Config, logger *zap.Logger) (*App, error) {
	factory := NewComponentFactory(cfg, logger)
	return factory.CreateApp()
}

// Run запускает приложение в сконфигурированном режиме и блокируется
// до завершения работы
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("Failed to close database connection", zap.Error(err))
		}
	}()

	switch a.config.RunMode {
	case config.RunModeOnce:
		_, err := a.syncService.Run(ctx)
		return err
	case config.RunModeDaemon:
		return a.runDaemon(ctx)
	default:
		return fmt.Errorf("unknown run mode: %s", a.config.RunMode)
	}
}

// runDaemon запускает планировщик и health check сервер
func (a *App) runDaemon(ctx context.Context) error {
	var healthServer *health.Server
	if a.config.HealthCheckEnabled {
		healthServer = health.NewServer(a.config.HealthPort, a.logger, a.db)
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			if err := healthServer.Start(); err != nil {
				if err.Error() == "http: Server closed" {
					a.logger.Info("Health check server stopped normally")
				} else {
					a.logger.Error("Health check server failed", zap.Error(err))
				}
			}
		}()
	}

	scheduler := service.NewScheduler(a.syncService, a.config.SyncSchedule, a.logger)
	err := scheduler.Start(ctx)

	if healthServer != nil {
		if stopErr := healthServer.Stop(); stopErr != nil {
			a.logger.Warn("Failed to stop health check server", zap.Error(stopErr))
		}
	}
	a.wg.Wait()

	return err
}
