// Package storage содержит работу с базой данных.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
	"go.uber.org/zap"

	"followsync/internal/model"
	"followsync/internal/storage/repository"
)

// SQLite представляет подключение к локальной базе данных истории
type SQLite struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewSQLite открывает базу данных и создает схему при необходимости
func NewSQLite(path string, logger *zap.Logger) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, "file:"+path+"?cache=shared")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite не поддерживает конкурентную запись
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	// Добавляем отладку в режиме разработки
	if logger.Core().Enabled(zap.DebugLevel) {
		db.AddQueryHook(bundebug.NewQueryHook(
			bundebug.WithVerbose(true),
			bundebug.FromEnv("BUNDEBUG"),
		))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Warn("Failed to close database connection", zap.Error(closeErr))
		}
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.NewCreateTable().Model((*model.ActionRecord)(nil)).IfNotExists().Exec(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Warn("Failed to close database connection", zap.Error(closeErr))
		}
		return nil, fmt.Errorf("failed to create history table: %w", err)
	}

	logger.Info("Connected to SQLite database with Bun ORM", zap.String("path", path))

	return &SQLite{
		db:     db,
		logger: logger,
	}, nil
}

// Close закрывает соединение с базой данных
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Ping проверяет доступность базы данных
func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// GetHistoryRepository возвращает репозиторий истории действий
func (s *SQLite) GetHistoryRepository() model.HistoryRepository {
	return repository.NewHistoryRepository(s.db, s.logger)
}
