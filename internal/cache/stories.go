// stories.go provides a Valkey-backed cache for serialized story listings.
// The public story list is by far the hottest read path; caching the
// response body per category lets repeat requests skip the DB entirely.
// Every story write invalidates the affected categories, so stale entries
// live at most one TTL.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"storyhub/internal/models"
)

const (
	// storyKeyPrefix namespaces story-list keys in Valkey.
	storyKeyPrefix = "stories:"

	// DefaultStoryListTTL is how long a cached listing stays valid without
	// invalidation.
	DefaultStoryListTTL = time.Minute
)

// StoryListCache caches serialized story listings per category.
type StoryListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStoryListCache creates a story-list cache backed by the given Valkey client.
func NewStoryListCache(client *redis.Client, ttl time.Duration) *StoryListCache {
	if ttl == 0 {
		ttl = DefaultStoryListTTL
	}
	return &StoryListCache{client: client, ttl: ttl}
}

// categoryKey maps a category filter to its cache key. The empty filter and
// CategoryAll share one entry.
func categoryKey(category models.Category) string {
	if category == "" || category == models.CategoryAll {
		return storyKeyPrefix + "_all"
	}
	return storyKeyPrefix + string(category)
}

// Get retrieves the cached listing for a category. Returns false on miss.
// Cache errors are logged and treated as misses — the DB remains the source
// of truth.
func (c *StoryListCache) Get(ctx context.Context, category models.Category) ([]byte, bool) {
	val, err := c.client.Get(ctx, categoryKey(category)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("story cache get error", "category", category, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores a serialized listing for a category with the configured TTL.
func (c *StoryListCache) Set(ctx context.Context, category models.Category, body []byte) {
	if err := c.client.Set(ctx, categoryKey(category), body, c.ttl).Err(); err != nil {
		slog.Warn("story cache set error", "category", category, "error", err)
	}
}

// Invalidate removes the cached listing for one category plus the "All"
// listing, which includes every category.
func (c *StoryListCache) Invalidate(ctx context.Context, category models.Category) {
	keys := []string{categoryKey(models.CategoryAll)}
	if category != "" && category != models.CategoryAll {
		keys = append(keys, categoryKey(category))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("story cache invalidate error", "category", category, "error", err)
	}
}

// InvalidateAll removes every cached listing. Used on story updates, where
// the category may have changed out from under its old listing.
func (c *StoryListCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, storyKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("story cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("story cache bulk delete error", "error", err)
			}
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
}
