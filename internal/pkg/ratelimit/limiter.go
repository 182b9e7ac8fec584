package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// Limiter admits or rejects an action for a key within a fixed window.
// Allow must be atomic under concurrent calls for the same key.
type Limiter interface {
	Allow(ctx context.Context, action, key string, limit int, window time.Duration) error
}

// RedisLimiter implements Limiter with an INCR counter per (action, key,
// window). INCR is atomic in Redis, so the check-and-increment cannot race;
// the first hit attaches the window TTL.
type RedisLimiter struct {
	client *redis.Client
}

// NewRedisLimiter creates a Redis-backed rate limiter
func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client}
}

// Allow increments the counter and fails with ErrRateLimited once the count
// exceeds limit. Nothing is created on rejection beyond the counter itself.
func (l *RedisLimiter) Allow(ctx context.Context, action, key string, limit int, window time.Duration) error {
	counterKey := fmt.Sprintf("ratelimit:%s:%s", action, key)

	count, err := l.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return fmt.Errorf("failed to increment rate counter: %w", err)
	}

	if count == 1 {
		if err := l.client.Expire(ctx, counterKey, window).Err(); err != nil {
			return fmt.Errorf("failed to set rate counter expiry: %w", err)
		}
	}

	if count > int64(limit) {
		return fmt.Errorf("%w: too many %s requests, try again later", models.ErrRateLimited, action)
	}

	return nil
}
