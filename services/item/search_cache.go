package item

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"shareit/models"
	"shareit/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const searchVersionKey = "items:search:ver"

// SearchCache caches item search results in Redis under a version-stamped
// key. Item writes bump the version instead of scanning for stale keys, so
// old entries simply age out with their TTL. A nil SearchCache disables
// caching; all methods are nil-safe.
type SearchCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewSearchCache creates a search cache over the given Redis client.
func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{Client: client, TTL: ttl}
}

func (c *SearchCache) key(ctx context.Context, text string) string {
	ver, err := c.Client.Get(ctx, searchVersionKey).Int64()
	if err != nil && err != redis.Nil {
		ver = 0
	}
	return fmt.Sprintf("items:search:v%d:%s", ver, strings.ToLower(strings.TrimSpace(text)))
}

// Get returns the cached result for text, if any.
func (c *SearchCache) Get(text string) ([]models.Item, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	payload, err := c.Client.Get(ctx, c.key(ctx, text)).Result()
	if err != nil {
		return nil, false
	}
	var items []models.Item
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, false
	}
	return items, true
}

// Put stores a search result under the current cache version.
func (c *SearchCache) Put(text string, items []models.Item) {
	if c == nil || c.Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	payload, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, c.key(ctx, text), payload, c.TTL).Err(); err != nil {
		utils.GetLogger().Debug("search cache write failed", zap.Error(err))
	}
}

// Invalidate bumps the cache version so subsequent lookups miss.
func (c *SearchCache) Invalidate() {
	if c == nil || c.Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := c.Client.Incr(ctx, searchVersionKey).Err(); err != nil {
		utils.GetLogger().Debug("search cache invalidation failed", zap.Error(err))
	}
}
