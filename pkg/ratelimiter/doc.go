// Package ratelimiter implements token bucket rate limiting.
//
// A Bucket holds Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each request takes one token; a request that does not fit
// is denied without consuming anything. State lives in a Store: MemoryStore
// for a single process, RedisStore to share limits across instances through
// an atomic Lua script.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       60,
//		RefillRate:     1,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	router.With(ratelimiter.Middleware(bucket, keyFunc)).Post("/v1/emails/validate", h)
//
// Middleware sets the X-RateLimit-* headers on every limited request and
// Retry-After on denials.
package ratelimiter
