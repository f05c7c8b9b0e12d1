package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed one-second window request limiter backed by Redis counters
type Limiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewLimiter connects to Redis and creates a limiter allowing requestsPerSecond per key
func NewLimiter(ctx context.Context, redisAddr string, requestsPerSecond int) (*Limiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return NewLimiterWithClient(client, requestsPerSecond), nil
}

// NewLimiterWithClient creates a limiter on an existing client
func NewLimiterWithClient(client *redis.Client, requestsPerSecond int) *Limiter {
	return &Limiter{
		client: client,
		limit:  requestsPerSecond,
		window: time.Second,
		now:    time.Now,
	}
}

// Limit returns the number of requests allowed per window
func (l *Limiter) Limit() int {
	return l.limit
}

// Allow counts a request for key and reports whether it fits in the current window
// together with the number of requests left
func (l *Limiter) Allow(ctx context.Context, key string) (bool, int, error) {
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, l.now().Unix())

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window*2)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}

	count := incr.Val()
	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return count <= int64(l.limit), remaining, nil
}

// Start implements core.Interface
func (l *Limiter) Start(ctx context.Context) error {
	return nil
}

// Stop implements core.Interface
func (l *Limiter) Stop() {
	_ = l.client.Close()
}
