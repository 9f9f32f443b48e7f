package ratelimiter

import (
	"context"
	"time"
)

// Store keeps bucket state. Implementations must apply refill and
// consumption atomically per key.
type Store interface {
	// ConsumeTokens takes tokens from the bucket at key. When the bucket
	// holds fewer tokens nothing is taken and the returned remaining is
	// negative. Zero tokens only reports the current state.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset clears the rate limit state for the given key.
	Reset(ctx context.Context, key string) error
}
