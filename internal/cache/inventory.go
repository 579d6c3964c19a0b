package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix     = "user:%d"
	FeedPageKeyPrefix = "feed:page:%d"
)

const (
	UserTTL = 5 * time.Minute
	// FeedTTL is the default global-feed page lifetime, used when
	// FEED_CACHE_SECONDS is not configured.
	FeedTTL = 20 * time.Second
)

// feedPages is the number of leading global-feed pages worth caching.
// Deeper pages are cheap and rarely requested.
const feedPages = 5

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func FeedPageKey(page int) string {
	return fmt.Sprintf(FeedPageKeyPrefix, page)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateFeed drops the cached global-feed pages after a post mutation.
func InvalidateFeed(ctx context.Context) {
	if client == nil {
		return
	}
	for page := 1; page <= feedPages; page++ {
		client.Del(ctx, FeedPageKey(page))
	}
}
