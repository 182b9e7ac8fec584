package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

func setupLimiter(t *testing.T) (*RedisLimiter, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisLimiter(client), mr
}

func TestAllow_UnderLimit(t *testing.T) {
	limiter, _ := setupLimiter(t)

	for i := 0; i < 5; i++ {
		err := limiter.Allow(context.Background(), "booking", "84901234567", 5, time.Hour)
		assert.NoError(t, err)
	}
}

func TestAllow_RejectsOverLimit(t *testing.T) {
	limiter, _ := setupLimiter(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.Allow(context.Background(), "booking", "84901234567", 5, time.Hour))
	}

	err := limiter.Allow(context.Background(), "booking", "84901234567", 5, time.Hour)

	assert.ErrorIs(t, err, models.ErrRateLimited)
}

func TestAllow_WindowExpiryResetsCounter(t *testing.T) {
	limiter, mr := setupLimiter(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Allow(context.Background(), "otp", "84901234567", 3, time.Hour))
	}
	require.ErrorIs(t, limiter.Allow(context.Background(), "otp", "84901234567", 3, time.Hour), models.ErrRateLimited)

	mr.FastForward(time.Hour + time.Second)

	err := limiter.Allow(context.Background(), "otp", "84901234567", 3, time.Hour)

	assert.NoError(t, err)
}

func TestAllow_FirstHitSetsTTL(t *testing.T) {
	limiter, mr := setupLimiter(t)

	require.NoError(t, limiter.Allow(context.Background(), "driver_register", "84901234567", 3, 24*time.Hour))

	ttl := mr.TTL("ratelimit:driver_register:84901234567")
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestAllow_ActionsAreIndependent(t *testing.T) {
	limiter, _ := setupLimiter(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Allow(context.Background(), "otp", "84901234567", 3, time.Hour))
	}
	require.ErrorIs(t, limiter.Allow(context.Background(), "otp", "84901234567", 3, time.Hour), models.ErrRateLimited)

	// Same phone, different action: separate counter.
	err := limiter.Allow(context.Background(), "booking", "84901234567", 5, time.Hour)

	assert.NoError(t, err)
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	limiter, _ := setupLimiter(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.Allow(context.Background(), "booking", "84901234567", 5, time.Hour))
	}

	err := limiter.Allow(context.Background(), "booking", "84987654321", 5, time.Hour)

	assert.NoError(t, err)
}

func TestAllow_RedisDown(t *testing.T) {
	limiter, mr := setupLimiter(t)
	mr.Close()

	err := limiter.Allow(context.Background(), "booking", "84901234567", 5, time.Hour)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrRateLimited)
}
