package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"restomanage/internal/domain"
)

// RedisCache keeps short-lived copies of the spend leaderboard. The SQL query
// stays authoritative; everything here is best-effort.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func topClientsKey(limit int) string {
	return "analytics:top_clients:" + strconv.Itoa(limit)
}

func (c *RedisCache) GetTopClients(ctx context.Context, limit int) ([]domain.ClientSpend, error) {
	raw, err := c.Client.Get(ctx, topClientsKey(limit)).Bytes()
	if err != nil {
		return nil, err
	}
	var spenders []domain.ClientSpend
	if err := json.Unmarshal(raw, &spenders); err != nil {
		return nil, err
	}
	return spenders, nil
}

func (c *RedisCache) SetTopClients(ctx context.Context, limit int, spenders []domain.ClientSpend) error {
	raw, err := json.Marshal(spenders)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, topClientsKey(limit), raw, c.TTL).Err()
}

// Invalidate drops every cached leaderboard. Called after any write that can
// change spend totals (new orders, bulk price adjustments).
func (c *RedisCache) Invalidate(ctx context.Context) error {
	keys, err := c.Client.Keys(ctx, "analytics:top_clients:*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.Client.Del(ctx, keys...).Err()
}
