package server

import (
	"github.com/dmitrymomot/eapd/modules/auth"
	"github.com/dmitrymomot/eapd/pkg/httpserver"
	"github.com/dmitrymomot/eapd/pkg/logger"
	"github.com/dmitrymomot/eapd/pkg/pg"
	"github.com/dmitrymomot/eapd/pkg/ratelimiter"
	"github.com/dmitrymomot/eapd/pkg/redis"
)

// Storage drivers.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Login throttle stores.
const (
	RateLimitOff    = "off"
	RateLimitMemory = "memory"
	RateLimitRedis  = "redis"
)

// Config is the environment of the eapd-api command.
type Config struct {
	Log  logger.Config
	HTTP httpserver.Config
	Auth auth.Config
	PG   pg.Config

	RateLimit      ratelimiter.Config
	RateLimitStore string `env:"EAPD_RATE_LIMIT_STORE" envDefault:"memory"`
	Redis          redis.Config
	TrustProxy     bool `env:"EAPD_TRUST_PROXY" envDefault:"false"` // honour X-Forwarded-For and friends

	Storage     string `env:"EAPD_STORAGE" envDefault:"memory"`
	SeedFile    string `env:"EAPD_SEED_FILE"`    // YAML file with users and documents loaded at startup
	OpenAPIFile string `env:"EAPD_OPENAPI_FILE"` // overrides the embedded OpenAPI document
}
