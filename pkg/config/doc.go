// Package config loads typed configuration from environment variables.
//
// Structs describe their variables with tags understood by
// github.com/caarlos0/env/v11; .env files are read with
// github.com/joho/godotenv:
//
//	type Config struct {
//	    BaseURL string        `env:"EAPD_API_URL" envDefault:"http://localhost:8000"`
//	    Timeout time.Duration `env:"EAPD_API_TIMEOUT" envDefault:"0s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Load caches the parsed value per type. Tests that change the environment
// call Reset or use Parse directly.
package config
