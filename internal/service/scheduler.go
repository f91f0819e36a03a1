package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler запускает синхронизацию по cron-расписанию в режиме демона
type Scheduler struct {
	syncService *SyncService
	schedule    string
	cron        *cron.Cron
	logger      *zap.Logger
	mu          sync.Mutex
}

// NewScheduler создает новый планировщик
func NewScheduler(syncService *SyncService, schedule string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		syncService: syncService,
		schedule:    schedule,
		cron:        cron.New(cron.WithLocation(time.UTC)),
		logger:      logger,
	}
}

// Start запускает планировщик и блокируется до отмены контекста
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.schedule, func() {
		s.runOnce(ctx)
	}); err != nil {
		return fmt.Errorf("failed to schedule sync: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Scheduler started", zap.String("schedule", s.schedule))

	<-ctx.Done()

	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("Scheduler stopped")
	return nil
}

// runOnce выполняет один запуск синхронизации.
// Запуски никогда не перекрываются: если предыдущий еще идет,
// очередной тик пропускается.
func (s *Scheduler) runOnce(ctx context.Context) {
	if !s.mu.TryLock() {
		s.logger.Warn("Previous sync is still running, skipping this tick")
		return
	}
	defer s.mu.Unlock()

	if _, err := s.syncService.Run(ctx); err != nil {
		// В режиме демона сбой не завершает процесс: следующий тик повторит попытку
		s.logger.Error("Scheduled sync failed", zap.Error(err))
	}
}
