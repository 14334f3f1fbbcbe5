package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storebook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const searchKeyPrefix = "store:search:"

// StoreSearchCache keeps keyword search results in Redis. Every method is
// nil-safe so the service keeps serving from the database when Redis is
// down or not configured.
type StoreSearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStoreSearchCache(client *redis.Client, ttl time.Duration) *StoreSearchCache {
	return &StoreSearchCache{client: client, ttl: ttl}
}

func (c *StoreSearchCache) GetSearch(ctx context.Context, keyword string) ([]*queries.StoreView, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, searchKeyPrefix+keyword).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("failed to read store search cache", "keyword", keyword, "error", err.Error())
		}
		return nil, false
	}

	var stores []*queries.StoreView
	if err := json.Unmarshal(raw, &stores); err != nil {
		slog.Warn("corrupt store search cache entry", "keyword", keyword, "error", err.Error())
		return nil, false
	}
	return stores, true
}

func (c *StoreSearchCache) SetSearch(ctx context.Context, keyword string, stores []*queries.StoreView) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(stores)
	if err != nil {
		slog.Warn("failed to encode store search cache entry", "keyword", keyword, "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, searchKeyPrefix+keyword, raw, c.ttl).Err(); err != nil {
		slog.Warn("failed to write store search cache", "keyword", keyword, "error", err.Error())
	}
}

// Invalidate drops all cached search results. Store mutations are rare
// compared to searches, so a full sweep keeps the key scheme simple.
func (c *StoreSearchCache) Invalidate(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	iter := c.client.Scan(ctx, 0, searchKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
