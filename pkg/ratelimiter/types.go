package ratelimiter

import "time"

// Result describes the bucket after a request.
type Result struct {
	Limit     int       // bucket capacity
	Remaining int       // tokens left; negative when the request was denied
	ResetAt   time.Time // next refill
}

// Allowed reports whether the request fitted in the bucket.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long a denied caller should wait, or 0.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(0, time.Until(r.ResetAt))
}

// Config defines the token bucket. It loads from the environment through
// pkg/config.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"60"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"1s"`
}

// refill returns the token count and refill time after elapsing to now.
// Partial intervals carry over; a full bucket restarts the clock.
func (c Config) refill(tokens int, last, now time.Time) (int, time.Time) {
	elapsed := now.Sub(last)
	if elapsed < c.RefillInterval {
		return tokens, last
	}

	// Cap so a long idle period cannot overflow.
	maxIntervals := int64(c.Capacity/c.RefillRate + 1)
	intervals := min(int64(elapsed/c.RefillInterval), maxIntervals)

	tokens = min(tokens+int(intervals)*c.RefillRate, c.Capacity)
	if tokens == c.Capacity {
		return tokens, now
	}
	return tokens, last.Add(time.Duration(intervals) * c.RefillInterval)
}
