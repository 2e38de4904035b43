// Package tokenstore persists the client's credential token between runs.
//
// The Store interface is a tiny get/set/remove key-value contract. The
// session controller keeps at most one value under TokenKey. Three adapters
// are provided:
//
//   - MemoryStore: process-local, used in tests and short-lived tools.
//   - FileStore: a 0600 JSON file under the user config directory, the
//     durable default for command-line use.
//   - RedisStore: shared storage through go-redis, for clients running as
//     long-lived services.
//
// New picks an adapter from Config, which is populated from environment
// variables via github.com/caarlos0/env:
//
//	var cfg tokenstore.Config
//	config.MustLoad(&cfg)
//	store, err := tokenstore.New(cfg, nil)
//
// Missing keys are reported as ErrNotFound.
package tokenstore
