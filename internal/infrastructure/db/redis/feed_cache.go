package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/socialsphere/social-api/internal/core/domain"
)

const feedKey = "feed:posts"
const feedTTL = 30 * time.Second

// FeedCache caches the serialized global feed in Redis under a single
// TTL'd key. Writers (post creation, likes) invalidate; readers fall back
// to the store on a miss.
type FeedCache struct {
	client *redis.Client
}

// NewFeedCache creates a FeedCache wrapping the given Redis client.
func NewFeedCache(client *redis.Client) *FeedCache {
	return &FeedCache{client: client}
}

// Get returns the cached feed, with ok=false on a miss.
func (f *FeedCache) Get(ctx context.Context) ([]*domain.Post, bool, error) {
	b, err := f.client.Get(ctx, feedKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("feed cache get: %w", err)
	}

	var posts []*domain.Post
	if err := json.Unmarshal(b, &posts); err != nil {
		// A corrupt entry is treated as a miss; it expires on its own.
		return nil, false, fmt.Errorf("feed cache decode: %w", err)
	}
	return posts, true, nil
}

// Set stores the feed snapshot (expires after feedTTL).
func (f *FeedCache) Set(ctx context.Context, posts []*domain.Post) error {
	b, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("feed cache encode: %w", err)
	}
	return f.client.Set(ctx, feedKey, b, feedTTL).Err()
}

// Invalidate drops the cached feed so the next read refreshes it.
func (f *FeedCache) Invalidate(ctx context.Context) error {
	return f.client.Del(ctx, feedKey).Err()
}
