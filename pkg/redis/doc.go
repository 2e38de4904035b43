// Package redis connects to Redis with retries and exposes a health probe.
// The client backs the redis token store and the reference server's
// revocation list when REDIS_URL is configured.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	tokens := tokenstore.NewRedisStore(client)
package redis
