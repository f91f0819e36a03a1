// Package repository содержит реализации репозиториев для работы с базой данных.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"followsync/internal/model"
)

// HistoryRepository реализует интерфейс model.HistoryRepository.
// Хранилище только добавляет записи: обновлений и удалений нет.
type HistoryRepository struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewHistoryRepository создает новый репозиторий истории
func NewHistoryRepository(db *bun.DB, logger *zap.Logger) model.HistoryRepository {
	return &HistoryRepository{
		db:     db,
		logger: logger,
	}
}

// RecordActions добавляет записи о выполненных действиях
func (r *HistoryRepository) RecordActions(ctx context.Context, records []model.ActionRecord) error {
	if len(records) == 0 {
		return nil
	}

	if _, err := r.db.NewInsert().Model(&records).Exec(ctx); err != nil {
		return fmt.Errorf("failed to record actions: %w", err)
	}

	r.logger.Debug("Recorded action history", zap.Int("count", len(records)))
	return nil
}

// RecentActions получает последние записи истории
func (r *HistoryRepository) RecentActions(ctx context.Context, limit int) ([]model.ActionRecord, error) {
	var records []model.ActionRecord
	err := r.db.NewSelect().
		Model(&records).
		Order("created_at DESC", "id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent actions: %w", err)
	}
	return records, nil
}

// LastRunAt получает время последнего записанного действия
func (r *HistoryRepository) LastRunAt(ctx context.Context) (*time.Time, error) {
	var record model.ActionRecord
	err := r.db.NewSelect().
		Model(&record).
		Order("created_at DESC", "id DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last run time: %w", err)
	}
	return &record.CreatedAt, nil
}
