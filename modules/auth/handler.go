package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/eapd/pkg/apiclient"
	"github.com/dmitrymomot/eapd/pkg/jwt"
	"github.com/dmitrymomot/eapd/pkg/logger"
)

const maxBodySize = 64 << 10

// Handler exposes a Service over HTTP.
type Handler struct {
	svc      *Service
	logger   *slog.Logger
	throttle func(http.Handler) http.Handler
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithThrottle guards the credential endpoints, nonce issue and login,
// with mw. A nil mw leaves them unguarded.
func WithThrottle(mw func(http.Handler) http.Handler) HandlerOption {
	return func(h *Handler) {
		if mw != nil {
			h.throttle = mw
		}
	}
}

func NewHandler(svc *Service, log *slog.Logger, opts ...HandlerOption) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	h := &Handler{
		svc:      svc,
		logger:   log,
		throttle: func(next http.Handler) http.Handler { return next },
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// AuthRoutes registers the /auth resource group.
func (h *Handler) AuthRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.With(h.throttle).Post("/login/nonce", h.nonce)
		r.With(h.throttle).Post("/login", h.login)
		r.Get("/logout", h.logout)
		r.With(h.RequireSession).Get("/check", h.check)
	})
}

// MeRoutes registers the /me resource group.
func (h *Handler) MeRoutes(r chi.Router) {
	r.Route("/me", func(r chi.Router) {
		r.Use(h.RequireSession)
		r.Get("/", h.check)
		r.Put("/", h.updateProfile)
	})
}

// RequireSession rejects requests without a live session token with 401
// and stores the session user in the request context.
func (h *Handler) RequireSession(next http.Handler) http.Handler {
	loadUser := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := jwt.ClaimsFromContext(r.Context())
		user, err := h.svc.userFromClaims(r.Context(), claims)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(SetUserToContext(r.Context(), user)))
	})
	return jwt.Middleware(h.svc.sessions, h.svc.Revoked)(loadUser)
}

type nonceRequest struct {
	Username string `json:"username"`
}

type nonceResponse struct {
	Nonce string `json:"nonce"`
}

func (h *Handler) nonce(w http.ResponseWriter, r *http.Request) {
	var req nonceRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	nonce, err := h.svc.IssueNonce(r.Context(), req.Username)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonceResponse{Nonce: nonce})
}

type loginRequest struct {
	// Username carries the nonce issued by /auth/login/nonce.
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  apiclient.Profile `json:"user"`
	Token string            `json:"token"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	user, tok, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{User: user.Profile(), Token: tok})
}

// logout always succeeds; a presented valid token is revoked.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if tok, ok := jwt.BearerToken(r); ok {
		h.svc.Logout(r.Context(), tok)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	writeJSON(w, http.StatusOK, user.Profile())
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var profile apiclient.Profile
	if err := decode(w, r, &profile); err != nil {
		h.fail(w, r, err)
		return
	}
	user, err := h.svc.UpdateProfile(r.Context(), GetUserFromContext(r.Context()).ID, profile)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user.Profile())
}

// fail writes err as a plain-text body with the matching status.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := http.StatusText(status)

	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrMissingUsername),
		errors.Is(err, ErrMissingPassword):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidNonce),
		errors.Is(err, ErrNonceUsed),
		errors.Is(err, ErrInvalidSession):
		status, msg = http.StatusUnauthorized, err.Error()
	case errors.Is(err, ErrUserNotFound):
		status, msg = http.StatusNotFound, err.Error()
	default:
		h.logger.ErrorContext(r.Context(), "auth request failed",
			slog.String("path", r.URL.Path), logger.Error(err))
	}

	writeText(w, status, msg)
}

// writeText writes msg without the trailing newline http.Error adds,
// because clients show the body verbatim.
func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, msg)
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
