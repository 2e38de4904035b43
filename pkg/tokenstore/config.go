package tokenstore

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Supported drivers.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
)

// Config selects and configures the token store.
type Config struct {
	Driver    string `env:"EAPD_TOKEN_STORE" envDefault:"file"`       // Driver is one of memory, file, redis.
	FilePath  string `env:"EAPD_TOKEN_FILE"`                          // FilePath overrides the default credentials file location.
	KeyPrefix string `env:"EAPD_TOKEN_KEY_PREFIX" envDefault:"eapd:"` // KeyPrefix namespaces keys in Redis.
}

// New builds the store described by cfg. The redis client is only used by
// the redis driver and may be nil otherwise.
func New(cfg Config, client redis.UniversalClient) (Store, error) {
	switch cfg.Driver {
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverFile, "":
		path := cfg.FilePath
		if path == "" {
			p, err := DefaultFilePath()
			if err != nil {
				return nil, fmt.Errorf("tokenstore: resolve default path: %w", err)
			}
			path = p
		}
		return NewFileStore(path), nil
	case DriverRedis:
		if client == nil {
			return nil, fmt.Errorf("tokenstore: redis driver requires a client")
		}
		return NewRedisStore(client, WithKeyPrefix(cfg.KeyPrefix)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
