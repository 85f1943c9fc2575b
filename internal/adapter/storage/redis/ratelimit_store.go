package redis

import (
	"context"
	"fmt"
	"time"

	"settlement-ledger/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// RateLimitStore implements ports.RateLimiter with fixed-window
// counters backed by Redis. Keys are scoped by rule name, subject and
// window id, so one subject's limits under different rules are
// independent.
type RateLimitStore struct {
	client *goredis.Client
	prefix string
}

// NewRateLimitStore creates a new Redis-backed rate limit store.
func NewRateLimitStore(client *goredis.Client) *RateLimitStore {
	return &RateLimitStore{
		client: client,
		prefix: "ratelimit:",
	}
}

// Allow consumes one attempt for subject under the named rule. It uses
// a fixed-window counter: INCR + EXPIRE on a key scoped by window id,
// computed as time / window to form discrete windows.
func (s *RateLimitStore) Allow(ctx context.Context, name string, subject string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	now := time.Now()
	windowID := now.Unix() / int64(window.Seconds())
	redisKey := fmt.Sprintf("%s%s:%s:%d", s.prefix, name, subject, windowID)

	// Increment counter atomically
	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis rate limit incr: %w", err)
	}

	// Set expiry only on first increment (new window)
	if count == 1 {
		s.client.Expire(ctx, redisKey, window+time.Second) // +1s safety margin
	}

	resetAt := (windowID + 1) * int64(window.Seconds())
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	return &ports.RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}

// Reset clears all recorded attempts for subject under the named rule,
// across every live window.
func (s *RateLimitStore) Reset(ctx context.Context, name string, subject string) error {
	pattern := fmt.Sprintf("%s%s:%s:*", s.prefix, name, subject)

	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis rate limit del: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis rate limit scan: %w", err)
	}
	return nil
}
