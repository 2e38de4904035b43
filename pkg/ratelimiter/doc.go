// Package ratelimiter implements token bucket rate limiting with in-memory
// and Redis backed stores and an HTTP middleware.
//
// A bucket holds up to Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each request takes one token; a request that finds the
// bucket empty is denied until the next refill.
//
//	limiter, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     10,
//		RefillInterval: time.Minute,
//	})
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP, log)).Post("/auth/login", login)
//
// The Redis store keeps buckets consistent across server replicas.
package ratelimiter
