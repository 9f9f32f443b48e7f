// Package redis connects to Redis with go-redis/v9.
//
// Connect retries until the server answers a PING; Healthcheck turns a
// client into a readiness probe. The service uses Redis to share rate-limit
// buckets between instances:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store, err := ratelimiter.NewRedisStore(client)
package redis
