package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/macmobile/carwash/config"
	"github.com/redis/go-redis/v9"
)

type counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisLimiter is a fixed-window counter shared by every process pointing at
// the same redis.
type RedisLimiter struct {
	client counter
	scope  string
	limit  int64
	window time.Duration
	now    func() time.Time
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
}

func NewRedisLimiter(client counter, scope string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		scope:  scope,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.windowKey(key)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("incr %s: %w", k, err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("expire %s: %w", k, err)
		}
	}
	return n <= l.limit, nil
}

func (l *RedisLimiter) windowKey(key string) string {
	start := l.now().Truncate(l.window).Unix()
	return fmt.Sprintf("ratelimit:%s:%s:%d", l.scope, key, start)
}

var _ Limiter = (*RedisLimiter)(nil)
