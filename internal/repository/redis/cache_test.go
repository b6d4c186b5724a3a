package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	redisrepo "github.com/kirinyoku/smartpark/internal/repository/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrSetJSON_NilCacheCallsLoader(t *testing.T) {
	t.Parallel()

	var cache *redisrepo.Cache
	calls := 0

	for i := 0; i < 2; i++ {
		v, err := redisrepo.GetOrSetJSON(context.Background(), cache, "k", time.Second,
			func(context.Context) (int, error) {
				calls++
				return 42, nil
			})
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	}

	assert.Equal(t, 2, calls)
}

func TestGetOrSetJSON_LoaderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := redisrepo.GetOrSetJSON(context.Background(), nil, "k", time.Second,
		func(context.Context) (string, error) { return "", boom })
	require.ErrorIs(t, err, boom)
}

func TestInvalidateParking_NilCache(t *testing.T) {
	t.Parallel()

	var cache *redisrepo.Cache
	assert.NoError(t, cache.InvalidateParking(context.Background()))
}

func TestKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "smartpark:v1:parking:availability", redisrepo.KeyGarageAvailability())
	assert.Equal(t, "smartpark:v1:parking:overview", redisrepo.KeyParkingOverview())
}
