package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	redisrepo "github.com/kirinyoku/smartpark/internal/repository/redis"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableCache(t *testing.T) *redisrepo.Cache {
	t.Helper()

	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	return redisrepo.New(rdb)
}

func TestGetOrSetJSON_UnreachableFallsBackToLoader(t *testing.T) {
	t.Parallel()

	calls := 0
	v, err := redisrepo.GetOrSetJSON(context.Background(), unreachableCache(t), "k", time.Second,
		func(context.Context) (int, error) {
			calls++
			return 7, nil
		})
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, calls)
}

func TestInvalidateParking_UnreachableReturnsError(t *testing.T) {
	t.Parallel()

	err := unreachableCache(t).InvalidateParking(context.Background())
	require.Error(t, err)
}

// Needs a live server; set REDIS_ADDR to run.
func TestGetOrSetJSON_HitSkipsLoader(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(ctx).Err())

	cache := redisrepo.New(rdb)
	key := "smartpark:test:" + uuid.NewString()
	t.Cleanup(func() { _ = cache.Del(context.Background(), key) })

	type payload struct {
		N int `json:"n"`
	}

	calls := 0
	loader := func(context.Context) (payload, error) {
		calls++
		return payload{N: 3}, nil
	}

	first, err := redisrepo.GetOrSetJSON(ctx, cache, key, time.Minute, loader)
	require.NoError(t, err)
	second, err := redisrepo.GetOrSetJSON(ctx, cache, key, time.Minute, loader)
	require.NoError(t, err)

	assert.Equal(t, payload{N: 3}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	require.NoError(t, cache.Del(ctx, key))
	_, err = redisrepo.GetOrSetJSON(ctx, cache, key, time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
