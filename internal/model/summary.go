package model

import "time"

// RunSummary представляет итог одного запуска синхронизации
type RunSummary struct {
	StartedAt     time.Time
	FollowerCount int
	// FollowingCount учитывает выполненные в этом запуске действия
	FollowingCount int
	Followed       []string
	Unfollowed     []string
	Failed         []string
}

// HasChanges сообщает, были ли выполнены действия в этом запуске
func (s *RunSummary) HasChanges() bool {
	return len(s.Followed) > 0 || len(s.Unfollowed) > 0 || len(s.Failed) > 0
}
