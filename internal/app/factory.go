// Package app содержит фабрику компонентов приложения.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"followsync/internal/config"
	"followsync/internal/external/github"
	"followsync/internal/external/telegram"
	"followsync/internal/listfile"
	"followsync/internal/service"
	"followsync/internal/storage"
)

// ComponentFactory создает компоненты приложения
type ComponentFactory struct {
	config *config.Config
	logger *zap.Logger
}

// NewComponentFactory создает новую фабрику компонентов
func NewComponentFactory(config *config.Config, logger *zap.Logger) *ComponentFactory {
	if config == nil {
		logger.Fatal("Config cannot be nil")
	}
	if logger == nil {
		panic("Logger cannot be nil")
	}

	return &ComponentFactory{
		config: config,
		logger: logger,
	}
}

// CreateDatabase создает подключение к базе данных истории
func (f *ComponentFactory) CreateDatabase() (*storage.SQLite, error) {
	db, err := storage.NewSQLite(f.config.DatabasePath, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	f.logger.Info("Database connection created successfully")
	return db, nil
}

// CreateGithubClient создает клиент GitHub API
func (f *ComponentFactory) CreateGithubClient() *github.Client {
	client := github.NewClient(f.config, f.logger)
	f.logger.Info("GitHub client created successfully")
	return client
}

// CreateNotifier создает notifier для отчетов о запусках.
// Без настроек Telegram возвращается заглушка.
func (f *ComponentFactory) CreateNotifier() (telegram.Notifier, error) {
	if !f.config.TelegramEnabled() {
		f.logger.Warn("Telegram credentials not provided, notifications are disabled")
		return telegram.NewNoopNotifier(f.logger), nil
	}

	client, err := telegram.NewClient(f.config.TelegramBotToken, f.config.TelegramChatID, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}

	f.logger.Info("Telegram client created successfully")
	return client, nil
}

// CreateSyncService создает сервис синхронизации
func (f *ComponentFactory) CreateSyncService(db *storage.SQLite, notifier telegram.Notifier) *service.SyncService {
	return service.NewSyncService(
		f.config,
		f.CreateGithubClient(),
		listfile.NewStore(f.logger),
		db.GetHistoryRepository(),
		notifier,
		service.NewRandomDelayer(f.config.ActionDelayMin, f.config.ActionDelayMax),
		f.logger,
	)
}

// CreateApp создает приложение со всеми компонентами
func (f *ComponentFactory) CreateApp() (*App, error) {
	db, err := f.CreateDatabase()
	if err != nil {
		return nil, err
	}

	notifier, err := f.CreateNotifier()
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			f.logger.Warn("Failed to close database connection", zap.Error(closeErr))
		}
		return nil, err
	}

	return &App{
		config:      f.config,
		logger:      f.logger,
		db:          db,
		syncService: f.CreateSyncService(db, notifier),
	}, nil
}
