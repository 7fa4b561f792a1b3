package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"restomanage/internal/domain"
)

func setupTestCache(t *testing.T) *RedisCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client, time.Minute)
}

func TestRedisCache_RoundTrip(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()

	spenders := []domain.ClientSpend{
		{ClientID: 3, FullName: "Alice Stone", TotalSpend: 120.0},
		{ClientID: 1, FullName: "Bob Reed", TotalSpend: 80.5},
	}
	err := cache.SetTopClients(ctx, 10, spenders)
	assert.NoError(t, err)

	got, err := cache.GetTopClients(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, spenders, got)
}

func TestRedisCache_MissIsError(t *testing.T) {
	cache := setupTestCache(t)

	_, err := cache.GetTopClients(context.Background(), 10)

	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisCache_EntriesArePerLimit(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()

	err := cache.SetTopClients(ctx, 5, []domain.ClientSpend{{ClientID: 1, FullName: "Bob Reed", TotalSpend: 80.5}})
	assert.NoError(t, err)

	_, err = cache.GetTopClients(ctx, 10)
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisCache_InvalidateDropsAllLeaderboards(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()

	assert.NoError(t, cache.SetTopClients(ctx, 5, []domain.ClientSpend{{ClientID: 1, FullName: "Bob Reed", TotalSpend: 80.5}}))
	assert.NoError(t, cache.SetTopClients(ctx, 10, []domain.ClientSpend{{ClientID: 1, FullName: "Bob Reed", TotalSpend: 80.5}}))

	assert.NoError(t, cache.Invalidate(ctx))

	_, err := cache.GetTopClients(ctx, 5)
	assert.ErrorIs(t, err, redis.Nil)
	_, err = cache.GetTopClients(ctx, 10)
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisCache_InvalidateWithNoKeys(t *testing.T) {
	cache := setupTestCache(t)

	assert.NoError(t, cache.Invalidate(context.Background()))
}
