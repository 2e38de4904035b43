package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/eapd/modules/api"
	"github.com/dmitrymomot/eapd/modules/apds"
	"github.com/dmitrymomot/eapd/modules/auth"
	"github.com/dmitrymomot/eapd/pkg/clientip"
	"github.com/dmitrymomot/eapd/pkg/httpserver"
	"github.com/dmitrymomot/eapd/pkg/logger"
	"github.com/dmitrymomot/eapd/pkg/requestid"
)

// Deps are the collaborators of the HTTP API.
type Deps struct {
	Auth    *auth.Service
	APDs    apds.Repository
	OpenAPI any
	Logger  *slog.Logger
	// Throttle guards nonce issue and login. Nil disables it.
	Throttle   func(http.Handler) http.Handler
	TrustProxy bool
	// Checks run on GET /health/ready.
	Checks []func(context.Context) error
}

// NewRouter builds the complete HTTP API.
func NewRouter(d Deps) http.Handler {
	log := d.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(d.TrustProxy),
		middleware.Recoverer,
		accessLog(log),
	)

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, d.Checks...))

	authHandler := auth.NewHandler(d.Auth, log, auth.WithThrottle(d.Throttle))
	apdHandler := apds.NewHandler(d.APDs, authHandler.RequireSession, userState, log)

	api.Register(r, d.OpenAPI,
		authHandler.AuthRoutes,
		authHandler.MeRoutes,
		apdHandler.Routes,
	)
	return r
}

func userState(r *http.Request) (string, bool) {
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		return "", false
	}
	return user.State, true
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.String("ip", clientip.FromContext(r.Context())),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
