package redis

import (
	"context"
	"fmt"
	"time"
)

// RateLimiterOptions represents options for rate limiting
type RateLimiterOptions struct {
	// MaxTransactionsPerMinute is the maximum number of transactions per minute for a single key
	MaxTransactionsPerMinute int
	// Namespace is the namespace for organizing rate limiter keys
	Namespace string
}

// NewRateLimiterOptions creates a new rate limiter options with default values
func NewRateLimiterOptions() *RateLimiterOptions {
	return &RateLimiterOptions{
		MaxTransactionsPerMinute: 0, // Unlimited by default
	}
}

// WithMaxTransactionsPerMinute sets the maximum number of transactions per minute
func (rlo *RateLimiterOptions) WithMaxTransactionsPerMinute(max int) *RateLimiterOptions {
	if max < 0 {
		panic(fmt.Sprintf("invalid max transactions per minute: %d, must be non-negative", max))
	}
	rlo.MaxTransactionsPerMinute = max
	return rlo
}

// WithNamespace sets the namespace for organizing rate limiter keys
func (rlo *RateLimiterOptions) WithNamespace(namespace string) *RateLimiterOptions {
	rlo.Namespace = namespace
	return rlo
}

// RateLimiter enforces a fixed per-minute window per key, counted in Redis so
// the limit holds across replicas.
type RateLimiter struct {
	client *Client
	opts   *RateLimiterOptions
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(client *Client, opts *RateLimiterOptions) *RateLimiter {
	if opts == nil {
		opts = NewRateLimiterOptions()
	}
	return &RateLimiter{
		client: client,
		opts:   opts,
	}
}

func (rl *RateLimiter) buildKey(key string) string {
	window := time.Now().UTC().Format("200601021504")
	if rl.opts.Namespace != "" {
		return rl.opts.Namespace + "::" + key + "::" + window
	}
	return key + "::" + window
}

// Allow reports whether one more transaction is allowed for the key in the
// current minute window. Counting errors fail open so a Redis outage never
// blocks traffic.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if rl.opts.MaxTransactionsPerMinute <= 0 {
		return true, nil
	}

	fullKey := rl.buildKey(key)
	count, err := rl.client.Incr(ctx, fullKey)
	if err != nil {
		return true, err
	}

	if count == 1 {
		if err := rl.client.Expire(ctx, fullKey, time.Minute); err != nil {
			return true, err
		}
	}

	return count <= int64(rl.opts.MaxTransactionsPerMinute), nil
}
