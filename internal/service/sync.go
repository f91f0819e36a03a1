package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"followsync/internal/config"
	"followsync/internal/external/github"
	"followsync/internal/external/telegram"
	"followsync/internal/listfile"
	"followsync/internal/model"
)

// plannedAction представляет запланированное действие над графом
type plannedAction struct {
	kind   model.ActionKind
	target string
}

// SyncService выполняет один цикл синхронизации подписок
type SyncService struct {
	config   *config.Config
	graph    github.GraphAPI
	lists    *listfile.Store
	history  model.HistoryRepository
	notifier telegram.Notifier
	delayer  Delayer
	logger   *zap.Logger
}

// NewSyncService создает новый сервис синхронизации
func NewSyncService(
	cfg *config.Config,
	graph github.GraphAPI,
	lists *listfile.Store,
	history model.HistoryRepository,
	notifier telegram.Notifier,
	delayer Delayer,
	logger *zap.Logger,
) *SyncService {
	return &SyncService{
		config:   cfg,
		graph:    graph,
		lists:    lists,
		history:  history,
		notifier: notifier,
		delayer:  delayer,
		logger:   logger,
	}
}

// Run выполняет цикл fetch -> diff -> act -> report.
// Ошибка аутентификации фатальна и прерывает запуск; остальные сбои
// отдельных действий записываются в историю, и обработка продолжается.
func (s *SyncService) Run(ctx context.Context) (*model.RunSummary, error) {
	startedAt := time.Now()
	s.logger.Info("Starting follower sync", zap.String("user", s.config.GithubUsername))

	whitelist, err := s.lists.LoadSet(s.config.WhitelistPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load whitelist: %w", err)
	}
	blacklist, err := s.lists.LoadSet(s.config.BlacklistPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load blacklist: %w", err)
	}
	s.logger.Info("Loaded user lists",
		zap.Int("whitelist", whitelist.Len()),
		zap.Int("blacklist", blacklist.Len()))

	followers, err := s.graph.ListFollowers(ctx)
	if err != nil {
		return nil, err
	}
	following, err := s.graph.ListFollowing(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Fetched social graph",
		zap.Int("followers", len(followers)),
		zap.Int("following", len(following)))

	plan := buildPlan(followers, following, whitelist, blacklist)
	if deferred := len(plan) - s.config.MaxActionsPerRun; deferred > 0 {
		// Хвост плана будет пересчитан и выполнен в следующем запуске
		plan = plan[:s.config.MaxActionsPerRun]
		s.logger.Info("Action plan truncated",
			zap.Int("max_actions", s.config.MaxActionsPerRun),
			zap.Int("deferred", deferred))
	}
	s.logger.Info("Computed action plan", zap.Int("actions", len(plan)))

	summary := &model.RunSummary{
		StartedAt:     startedAt,
		FollowerCount: len(followers),
	}

	records, execErr := s.executeActions(ctx, plan, summary)

	if err := s.history.RecordActions(ctx, records); err != nil {
		// Сбой записи истории не влияет на итог запуска
		s.logger.Error("Failed to record action history", zap.Error(err))
	}

	if execErr != nil {
		// Фатальный сбой: отчет не отправляется
		return nil, execErr
	}

	summary.FollowingCount = len(following) + len(summary.Followed) - len(summary.Unfollowed)

	if err := s.notifier.SendRunReport(summary); err != nil {
		// Недоступность уведомлений не влияет на итог запуска
		s.logger.Error("Failed to send run report", zap.Error(err))
	}

	s.logger.Info("Follower sync finished",
		zap.Int("followed", len(summary.Followed)),
		zap.Int("unfollowed", len(summary.Unfollowed)),
		zap.Int("failed", len(summary.Failed)),
		zap.Duration("elapsed", time.Since(startedAt)))

	return summary, nil
}

// executeActions последовательно выполняет план с паузой перед каждым
// действием, кроме первого
func (s *SyncService) executeActions(ctx context.Context, plan []plannedAction, summary *model.RunSummary) ([]model.ActionRecord, error) {
	var records []model.ActionRecord

	for i, action := range plan {
		if i > 0 {
			if err := s.delayer.Wait(ctx); err != nil {
				return records, err
			}
		}

		var err error
		switch action.kind {
		case model.ActionKindFollow:
			err = s.graph.Follow(ctx, action.target)
		case model.ActionKindUnfollow:
			err = s.graph.Unfollow(ctx, action.target)
		}

		record := model.ActionRecord{
			Kind:      action.kind,
			Target:    action.target,
			Outcome:   model.ActionOutcomeSuccess,
			CreatedAt: time.Now().UTC(),
		}

		if err != nil {
			var authErr *github.AuthError
			if errors.As(err, &authErr) {
				s.logger.Error("Authentication failed, aborting run", zap.Error(err))
				return records, err
			}

			record.Outcome = model.ActionOutcomeFailure
			record.Error = err.Error()
			records = append(records, record)
			summary.Failed = append(summary.Failed, action.target)
			s.logger.Warn("Action failed",
				zap.String("kind", action.kind.String()),
				zap.String("target", action.target),
				zap.Error(err))
			continue
		}

		records = append(records, record)
		switch action.kind {
		case model.ActionKindFollow:
			summary.Followed = append(summary.Followed, action.target)
		case model.ActionKindUnfollow:
			summary.Unfollowed = append(summary.Unfollowed, action.target)
		}
		s.logger.Info("Action executed",
			zap.String("kind", action.kind.String()),
			zap.String("target", action.target))
	}

	return records, nil
}

// buildPlan вычисляет список действий: сначала все подписки, затем все
// отписки, каждая группа в порядке, отдаваемом API
func buildPlan(followers, following []string, whitelist, blacklist model.UserSet) []plannedAction {
	followerSet := model.NewUserSet(followers...)
	followingSet := model.NewUserSet(following...)

	var plan []plannedAction
	for _, user := range followers {
		if !followingSet.Contains(user) && !blacklist.Contains(user) {
			plan = append(plan, plannedAction{kind: model.ActionKindFollow, target: user})
		}
	}
	for _, user := range following {
		if !followerSet.Contains(user) && !whitelist.Contains(user) {
			plan = append(plan, plannedAction{kind: model.ActionKindUnfollow, target: user})
		}
	}
	return plan
}
