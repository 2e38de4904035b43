package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/eapd/pkg/apiclient"
	"github.com/dmitrymomot/eapd/pkg/config"
	"github.com/dmitrymomot/eapd/pkg/logger"
	"github.com/dmitrymomot/eapd/pkg/redis"
	"github.com/dmitrymomot/eapd/pkg/requestid"
	"github.com/dmitrymomot/eapd/pkg/tokenstore"
)

// Main loads the configuration, wires the dependencies and runs args.
// It returns the process exit code.
func Main(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(stderr, "eapd:", err)
		return 2
	}

	// Diagnostics stay quiet unless asked for.
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	log, err := logger.NewFromConfig(cfg.Log, "eapd", stderr,
		logger.WithContextExtractors(requestid.LoggerExtractor()))
	if err != nil {
		fmt.Fprintln(stderr, "eapd:", err)
		return 2
	}

	api, err := apiclient.NewFromConfig(cfg.API,
		apiclient.WithLogger(log),
		apiclient.WithHTTPClient(&http.Client{Transport: requestid.NewTransport(nil)}),
	)
	if err != nil {
		fmt.Fprintln(stderr, "eapd:", err)
		return 2
	}

	var rdb goredis.UniversalClient
	if cfg.Tokens.Driver == tokenstore.DriverRedis {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			fmt.Fprintln(stderr, "eapd:", err)
			return 2
		}
		defer client.Close()
		rdb = client
	}
	tokens, err := tokenstore.New(cfg.Tokens, rdb)
	if err != nil {
		fmt.Fprintln(stderr, "eapd:", err)
		return 2
	}

	app := New(api, tokens,
		WithIO(stdin, stdout),
		WithLogger(log),
		WithCheckTimeout(cfg.CheckTimeout),
	)

	// One correlation ID for every request of this invocation.
	ctx = requestid.WithContext(ctx, uuid.NewString())
	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(stderr, "eapd:", err)
		if errors.Is(err, ErrUsage) {
			return 2
		}
		return 1
	}
	return 0
}
