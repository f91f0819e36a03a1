// Package model содержит модели данных приложения.
package model

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// ActionKind представляет тип действия над социальным графом
type ActionKind string

const (
	ActionKindFollow   ActionKind = "follow"
	ActionKindUnfollow ActionKind = "unfollow"
)

// IsValid проверяет валидность типа действия
func (k ActionKind) IsValid() bool {
	switch k {
	case ActionKindFollow, ActionKindUnfollow:
		return true
	default:
		return false
	}
}

// String возвращает строковое представление типа действия
func (k ActionKind) String() string {
	return string(k)
}

// ActionOutcome представляет результат действия
type ActionOutcome string

const (
	ActionOutcomeSuccess ActionOutcome = "success"
	ActionOutcomeFailure ActionOutcome = "failure"
)

// String возвращает строковое представление результата
func (o ActionOutcome) String() string {
	return string(o)
}

// ActionRecord представляет запись истории о выполненном действии.
// Записи только добавляются и никогда не изменяются.
type ActionRecord struct {
	bun.BaseModel `bun:"table:action_history"`

	ID        int64         `bun:"id,pk,autoincrement" json:"id"`
	Kind      ActionKind    `bun:"kind,notnull" json:"kind"`
	Target    string        `bun:"target,notnull" json:"target"`
	Outcome   ActionOutcome `bun:"outcome,notnull" json:"outcome"`
	Error     string        `bun:"error" json:"error,omitempty"`
	CreatedAt time.Time     `bun:"created_at,notnull" json:"created_at"`
}

// HistoryRepository определяет интерфейс для хранилища истории действий
type HistoryRepository interface {
	RecordActions(ctx context.Context, records []ActionRecord) error
	RecentActions(ctx context.Context, limit int) ([]ActionRecord, error)
	LastRunAt(ctx context.Context) (*time.Time, error)
}
