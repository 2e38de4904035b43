package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/dmitrymomot/eapd/modules/api"
	"github.com/dmitrymomot/eapd/modules/apds"
	"github.com/dmitrymomot/eapd/modules/auth"
	"github.com/dmitrymomot/eapd/pkg/config"
	"github.com/dmitrymomot/eapd/pkg/httpserver"
	"github.com/dmitrymomot/eapd/pkg/logger"
	"github.com/dmitrymomot/eapd/pkg/pg"
	"github.com/dmitrymomot/eapd/pkg/ratelimiter"
	"github.com/dmitrymomot/eapd/pkg/redis"
	"github.com/dmitrymomot/eapd/pkg/requestid"
)

// Main runs the API server until ctx ends and returns the exit code.
func Main(ctx context.Context, stderr io.Writer) int {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(stderr, "eapd-api:", err)
		return 2
	}

	log, err := logger.NewFromConfig(cfg.Log, "eapd-api", stderr,
		logger.WithContextExtractors(requestid.LoggerExtractor()))
	if err != nil {
		fmt.Fprintln(stderr, "eapd-api:", err)
		return 2
	}
	logger.SetAsDefault(log)

	if err := Run(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, "server failed", logger.Error(err))
		return 1
	}
	return 0
}

// Run wires storage, services and routes from cfg and serves until ctx ends.
func Run(ctx context.Context, cfg Config, log *slog.Logger) error {
	var (
		storage auth.Storage
		checks  []func(context.Context) error
	)

	switch cfg.Storage {
	case StorageMemory, "":
		storage = auth.NewMemoryStorage()
	case StoragePostgres:
		pool, err := pg.Connect(ctx, cfg.PG)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := pg.Migrate(ctx, pool, auth.Migrations, auth.MigrationsDir, cfg.PG, log); err != nil {
			return err
		}
		storage = auth.NewPGStorage(pool)
		checks = append(checks, pg.Healthcheck(pool))
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Storage)
	}

	svc, err := auth.NewService(cfg.Auth, storage, auth.WithLogger(log))
	if err != nil {
		return err
	}
	repo := apds.NewMemoryRepository()

	if cfg.SeedFile != "" {
		if err := seedFromFile(ctx, cfg.SeedFile, svc, repo); err != nil {
			return err
		}
		log.InfoContext(ctx, "seed data loaded", slog.String("file", cfg.SeedFile))
	}

	throttle, err := newThrottle(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer throttle.close()
	if throttle.check != nil {
		checks = append(checks, throttle.check)
	}

	openAPI, err := loadOpenAPI(cfg.OpenAPIFile)
	if err != nil {
		return err
	}

	handler := NewRouter(Deps{
		Auth:    svc,
		APDs:    repo,
		OpenAPI: openAPI,
		Logger:  log,
		Checks:  checks,

		Throttle:   throttle.mw,
		TrustProxy: cfg.TrustProxy,
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, handler)
}

type throttle struct {
	mw    func(http.Handler) http.Handler
	check func(context.Context) error
	close func()
}

// newThrottle builds the login throttle selected by cfg.RateLimitStore.
func newThrottle(ctx context.Context, cfg Config, log *slog.Logger) (throttle, error) {
	t := throttle{close: func() {}}

	var store ratelimiter.Store
	switch cfg.RateLimitStore {
	case RateLimitOff:
		return t, nil
	case RateLimitMemory, "":
		mem := ratelimiter.NewMemoryStore()
		store, t.close = mem, mem.Close
	case RateLimitRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return t, err
		}
		store = ratelimiter.NewRedisStore(client, "eapd:login:")
		t.close = func() { _ = client.Close() }
		t.check = redis.Healthcheck(client)
	default:
		return t, fmt.Errorf("unknown rate limit store %q", cfg.RateLimitStore)
	}

	limiter, err := ratelimiter.NewBucket(store, cfg.RateLimit)
	if err != nil {
		t.close()
		return throttle{close: func() {}}, err
	}
	t.mw = ratelimiter.Middleware(limiter, ratelimiter.ByClientIP, log)
	return t, nil
}

func seedFromFile(ctx context.Context, path string, svc *auth.Service, repo *apds.MemoryRepository) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	seed, err := ReadSeed(f)
	if err != nil {
		return err
	}
	return seed.Apply(ctx, svc, repo)
}

func loadOpenAPI(path string) (map[string]any, error) {
	data := api.DefaultOpenAPI
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read openapi document: %w", err)
		}
	}
	return api.LoadOpenAPI(data)
}
