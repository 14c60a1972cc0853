package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
)

// AttemptLimiter throttles repeated attempts per source key.
// Allow reports whether one more attempt fits into the current window.
type AttemptLimiter interface {
	Allow(ctx context.Context, source string) (bool, error)
}

type redisAttemptLimiter struct {
	client      *redis.Client
	prefix      string
	maxAttempts int
	window      time.Duration
}

// NewRedisAttemptLimiter builds fixed-window limiter on top of redis.
// The counter for a source starts its window on the first attempt and
// disappears once the window expires.
func NewRedisAttemptLimiter(client *redis.Client, prefix string, maxAttempts int, window time.Duration) AttemptLimiter {
	return &redisAttemptLimiter{
		client:      client,
		prefix:      prefix,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func (l *redisAttemptLimiter) Allow(ctx context.Context, source string) (bool, error) {
	key := fmt.Sprintf("%s:%s", l.prefix, source)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}

	if count == 1 {
		if _, err := l.client.Expire(ctx, key, l.window).Result(); err != nil {
			return false, err
		}
	}

	return count <= int64(l.maxAttempts), nil
}
