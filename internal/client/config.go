package client

import (
	"time"

	"github.com/dmitrymomot/eapd/pkg/apiclient"
	"github.com/dmitrymomot/eapd/pkg/logger"
	"github.com/dmitrymomot/eapd/pkg/redis"
	"github.com/dmitrymomot/eapd/pkg/tokenstore"
)

// Config is the environment of the eapd command.
type Config struct {
	Log    logger.Config
	API    apiclient.Config
	Tokens tokenstore.Config
	Redis  redis.Config

	// CheckTimeout bounds whoami; when it passes the check counts as failed.
	CheckTimeout time.Duration `env:"EAPD_CHECK_TIMEOUT" envDefault:"10s"`
}
