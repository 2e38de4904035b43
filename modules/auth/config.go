package auth

import "time"

// Config holds the reference server settings.
type Config struct {
	SigningKey string        `env:"AUTH_SIGNING_KEY,required"`
	Issuer     string        `env:"AUTH_ISSUER" envDefault:"eapd"`
	TokenTTL   time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`
	NonceTTL   time.Duration `env:"AUTH_NONCE_TTL" envDefault:"5m"`
	// CacheSize bounds the used-nonce set. Revocations are kept until token expiry.
	CacheSize  int `env:"AUTH_CACHE_SIZE" envDefault:"10000"`
	BcryptCost int `env:"AUTH_BCRYPT_COST" envDefault:"10"`
}
