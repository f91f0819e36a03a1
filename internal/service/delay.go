// Package service содержит бизнес-логику приложения.
package service

import (
	"context"
	"math/rand"
	"time"
)

// Delayer определяет интерфейс паузы между действиями
type Delayer interface {
	Wait(ctx context.Context) error
}

// RandomDelayer выдерживает случайную паузу в диапазоне [min, max]
type RandomDelayer struct {
	min time.Duration
	max time.Duration
	rng *rand.Rand
}

// NewRandomDelayer создает новый генератор случайных пауз
func NewRandomDelayer(min, max time.Duration) *RandomDelayer {
	return &RandomDelayer{
		min: min,
		max: max,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Wait блокирует выполнение на случайную длительность или до отмены контекста
func (d *RandomDelayer) Wait(ctx context.Context) error {
	delay := d.min
	if span := d.max - d.min; span > 0 {
		delay += time.Duration(d.rng.Int63n(int64(span) + 1))
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

var _ Delayer = (*RandomDelayer)(nil)
