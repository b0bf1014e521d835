package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	config := Config{RequestsPerMinute: 3}

	t.Run("allows up to the per-minute limit", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			allowed, err := limiter.Allow(ctx, "login:203.0.113.7", config)
			require.NoError(t, err)
			assert.True(t, allowed)
		}

		allowed, err := limiter.Allow(ctx, "login:203.0.113.7", config)
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("keys are independent", func(t *testing.T) {
		allowed, err := limiter.Allow(ctx, "login:198.51.100.1", config)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("zero limits are ignored", func(t *testing.T) {
		allowed, err := limiter.Allow(ctx, "unlimited", Config{})
		require.NoError(t, err)
		assert.True(t, allowed)
	})
}

func TestRedisRateLimiter_GetRemaining(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	config := Config{RequestsPerMinute: 10}
	for i := 0; i < 4; i++ {
		_, err := limiter.Allow(ctx, "signup:203.0.113.7", config)
		require.NoError(t, err)
	}

	used, err := limiter.GetRemaining(ctx, "signup:203.0.113.7", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(4), used)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	config := Config{RequestsPerMinute: 1}
	_, err := limiter.Allow(ctx, "login:203.0.113.7", config)
	require.NoError(t, err)

	allowed, err := limiter.Allow(ctx, "login:203.0.113.7", config)
	require.NoError(t, err)
	require.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "login:203.0.113.7"))

	allowed, err = limiter.Allow(ctx, "login:203.0.113.7", config)
	require.NoError(t, err)
	assert.True(t, allowed)
}
