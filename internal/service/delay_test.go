package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRandomDelayer_Wait(t *testing.T) {
	t.Run("zero bounds return promptly", func(t *testing.T) {
		delayer := NewRandomDelayer(0, 0)
		start := time.Now()
		assert.NoError(t, delayer.Wait(context.Background()))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("waits at least the lower bound", func(t *testing.T) {
		delayer := NewRandomDelayer(20*time.Millisecond, 30*time.Millisecond)
		start := time.Now()
		assert.NoError(t, delayer.Wait(context.Background()))
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("cancelled context interrupts the wait", func(t *testing.T) {
		delayer := NewRandomDelayer(time.Hour, time.Hour)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Error(t, delayer.Wait(ctx))
	})
}

func TestScheduler_InvalidSchedule(t *testing.T) {
	f := newSyncFixture(t, &fakeGraph{})
	scheduler := NewScheduler(f.service, "not a cron expression", f.service.logger)

	err := scheduler.Start(context.Background())
	assert.Error(t, err)
}

func TestScheduler_SkipsOverlappingRuns(t *testing.T) {
	graph := &fakeGraph{followers: []string{"a"}}
	f := newSyncFixture(t, graph)
	scheduler := NewScheduler(f.service, "@hourly", f.service.logger)

	// Пока предыдущий запуск держит блокировку, тик пропускается
	scheduler.mu.Lock()
	scheduler.runOnce(context.Background())
	scheduler.mu.Unlock()
	assert.Empty(t, graph.calls)

	scheduler.runOnce(context.Background())
	assert.Equal(t, []string{"follow:a"}, graph.calls)
}
