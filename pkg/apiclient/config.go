package apiclient

import "time"

// Config holds API client settings loaded from the environment.
type Config struct {
	BaseURL   string        `env:"EAPD_API_URL" envDefault:"http://localhost:8000"` // BaseURL is the API root, without trailing slash.
	Timeout   time.Duration `env:"EAPD_API_TIMEOUT" envDefault:"0s"`                // Timeout bounds each request; 0 disables it.
	UserAgent string        `env:"EAPD_USER_AGENT" envDefault:"eapd-client"`        // UserAgent is sent with every request.
}

// NewFromConfig creates a Client from cfg. Extra options are applied after config values.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	configOpts := make([]Option, 0, 2+len(opts))
	if cfg.Timeout > 0 {
		configOpts = append(configOpts, WithTimeout(cfg.Timeout))
	}
	if cfg.UserAgent != "" {
		configOpts = append(configOpts, WithUserAgent(cfg.UserAgent))
	}
	configOpts = append(configOpts, opts...)
	return New(cfg.BaseURL, configOpts...)
}
