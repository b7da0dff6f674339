package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:"

// RedisLimiter is a fixed-window counter backed by a shared Redis
// instance, so the limit holds across multiple process instances
type RedisLimiter struct {
	client *redis.Client
	cfg    Config
}

// Ensure RedisLimiter implements Limiter
var _ Limiter = (*RedisLimiter)(nil)

// NewRedisLimiter creates a Redis-backed limiter from a redis URL
func NewRedisLimiter(redisURL string, cfg Config) (*RedisLimiter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisLimiter{
		client: redis.NewClient(opts),
		cfg:    cfg,
	}, nil
}

// Ping verifies the Redis connection at startup
func (l *RedisLimiter) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

// Allow counts the request against clientKey's window
func (l *RedisLimiter) Allow(ctx context.Context, clientKey string) (Result, error) {
	key := redisKeyPrefix + clientKey

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, l.cfg.Window)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("redis rate limit: %w", err)
	}

	count := int(incr.Val())
	remaining := l.cfg.Requests - count
	if remaining < 0 {
		remaining = 0
	}

	resetAt := time.Now().Add(l.cfg.Window)
	if d := ttl.Val(); d > 0 {
		resetAt = time.Now().Add(d)
	}

	return Result{
		Allowed:   count <= l.cfg.Requests,
		Limit:     l.cfg.Requests,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}

// Close releases the underlying Redis connection
func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
