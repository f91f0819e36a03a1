package repository

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"go.uber.org/zap"

	"followsync/internal/model"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() {
		_ = db.Close()
	})

	if _, err := db.NewCreateTable().Model((*model.ActionRecord)(nil)).IfNotExists().Exec(context.Background()); err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	return db
}

func record(kind model.ActionKind, target string, at time.Time) model.ActionRecord {
	return model.ActionRecord{
		Kind:      kind,
		Target:    target,
		Outcome:   model.ActionOutcomeSuccess,
		CreatedAt: at,
	}
}

func TestHistoryRepository_RecordActions(t *testing.T) {
	repo := NewHistoryRepository(newTestDB(t), zap.NewNop())
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	err := repo.RecordActions(ctx, []model.ActionRecord{
		record(model.ActionKindFollow, "alice", now),
		record(model.ActionKindUnfollow, "bob", now),
	})
	assert.NoError(t, err)

	actions, err := repo.RecentActions(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, actions, 2)
}

func TestHistoryRepository_RecordActions_Empty(t *testing.T) {
	repo := NewHistoryRepository(newTestDB(t), zap.NewNop())
	assert.NoError(t, repo.RecordActions(context.Background(), nil))
}

func TestHistoryRepository_RecentActions_OrderAndLimit(t *testing.T) {
	repo := NewHistoryRepository(newTestDB(t), zap.NewNop())
	ctx := context.Background()
	base := time.Date(2025, 11, 2, 12, 0, 0, 0, time.UTC)

	var records []model.ActionRecord
	for i := 0; i < 5; i++ {
		records = append(records, record(model.ActionKindFollow, fmt.Sprintf("user%d", i), base.Add(time.Duration(i)*time.Minute)))
	}
	assert.NoError(t, repo.RecordActions(ctx, records))

	actions, err := repo.RecentActions(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, actions, 2)
	assert.Equal(t, "user4", actions[0].Target)
	assert.Equal(t, "user3", actions[1].Target)
}

func TestHistoryRepository_LastRunAt(t *testing.T) {
	repo := NewHistoryRepository(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	t.Run("empty history", func(t *testing.T) {
		lastRun, err := repo.LastRunAt(ctx)
		assert.NoError(t, err)
		assert.Nil(t, lastRun)
	})

	t.Run("returns newest timestamp", func(t *testing.T) {
		older := time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)
		newer := time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC)
		assert.NoError(t, repo.RecordActions(ctx, []model.ActionRecord{
			record(model.ActionKindFollow, "alice", older),
			record(model.ActionKindUnfollow, "bob", newer),
		}))

		lastRun, err := repo.LastRunAt(ctx)
		assert.NoError(t, err)
		if assert.NotNil(t, lastRun) {
			assert.True(t, newer.Equal(*lastRun), "expected %s, got %s", newer, lastRun)
		}
	})
}

func TestHistoryRepository_AppendOnly(t *testing.T) {
	repo := NewHistoryRepository(newTestDB(t), zap.NewNop())
	ctx := context.Background()
	now := time.Now().UTC()

	assert.NoError(t, repo.RecordActions(ctx, []model.ActionRecord{record(model.ActionKindFollow, "alice", now)}))
	assert.NoError(t, repo.RecordActions(ctx, []model.ActionRecord{record(model.ActionKindFollow, "alice", now.Add(time.Hour))}))

	actions, err := repo.RecentActions(ctx, 10)
	assert.NoError(t, err)
	// Повторная запись о том же пользователе не перезаписывает историю
	assert.Len(t, actions, 2)
}
