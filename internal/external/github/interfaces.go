package github

import "context"

// GraphAPI определяет интерфейс для социального графа GitHub.
// Списки возвращаются в порядке, отдаваемом API, без кеширования.
type GraphAPI interface {
	ListFollowers(ctx context.Context) ([]string, error)
	ListFollowing(ctx context.Context) ([]string, error)
	Follow(ctx context.Context, username string) error
	Unfollow(ctx context.Context, username string) error
}
