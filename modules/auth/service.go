package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/eapd/pkg/apiclient"
	"github.com/dmitrymomot/eapd/pkg/cache"
	"github.com/dmitrymomot/eapd/pkg/jwt"
	"github.com/dmitrymomot/eapd/pkg/logger"
	"github.com/dmitrymomot/eapd/pkg/token"
)

// loginNonce is the signed payload handed out by IssueNonce.
type loginNonce struct {
	ID       string `json:"jti"`
	Username string `json:"usr"`
	Expires  int64  `json:"exp"`
}

func (n loginNonce) ExpiresAt() time.Time { return time.Unix(n.Expires, 0) }

// Service implements the nonce, login, session and profile operations
// behind the HTTP handlers.
type Service struct {
	storage  Storage
	sessions *jwt.Service
	nonces   *token.Signer
	used     *cache.LRU[string, struct{}]
	revoked  *revocations
	nonceTTL time.Duration
	cost     int
	now      func() time.Time
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces time.Now for nonce and session expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a Service. cfg.SigningKey signs both nonces and
// session tokens.
func NewService(cfg Config, storage Storage, opts ...Option) (*Service, error) {
	if storage == nil {
		return nil, errors.New("auth: storage is required")
	}

	s := &Service{
		storage:  storage,
		nonceTTL: cfg.NonceTTL,
		cost:     cfg.BcryptCost,
		now:      time.Now,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.nonceTTL <= 0 {
		s.nonceTTL = 5 * time.Minute
	}
	if s.cost < bcrypt.MinCost || s.cost > bcrypt.MaxCost {
		s.cost = bcrypt.DefaultCost
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = 10000
	}

	var err error
	if s.sessions, err = jwt.New(cfg.SigningKey,
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithTTL(cfg.TokenTTL),
		jwt.WithClock(s.now),
	); err != nil {
		return nil, err
	}
	if s.nonces, err = token.NewSigner(cfg.SigningKey); err != nil {
		return nil, err
	}
	s.used = cache.NewLRU[string, struct{}](size, cache.WithTTL(s.nonceTTL), cache.WithClock(s.now))
	s.revoked = newRevocations(s.now, time.Minute)

	return s, nil
}

// Register creates a user with a bcrypt hash of password.
func (s *Service) Register(ctx context.Context, username, password string, profile apiclient.Profile) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrMissingUsername
	}
	if password == "" {
		return nil, ErrMissingPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	user.applyProfile(profile)
	if user.Email == "" && strings.Contains(username, "@") {
		user.Email = username
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "user registered", logger.UserID(user.ID.String()))
	return user, nil
}

// IssueNonce returns a one-time login nonce bound to username. The nonce
// does not reveal whether the user exists.
func (s *Service) IssueNonce(ctx context.Context, username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ErrMissingUsername
	}
	return token.Sign(s.nonces, loginNonce{
		ID:       uuid.NewString(),
		Username: username,
		Expires:  s.now().Add(s.nonceTTL).Unix(),
	})
}

// Login redeems nonce and checks password. A nonce is spent by the first
// login attempt that presents it, successful or not.
func (s *Service) Login(ctx context.Context, nonce, password string) (*User, string, error) {
	n, err := token.Open[loginNonce](s.nonces, nonce)
	if err != nil || !s.now().Before(n.ExpiresAt()) {
		return nil, "", ErrInvalidNonce
	}
	if !s.used.PutIfAbsent(n.ID, struct{}{}) {
		s.logger.WarnContext(ctx, "login nonce replayed", slog.String("nonce_id", n.ID))
		return nil, "", ErrNonceUsed
	}

	user, err := s.storage.GetUserByUsername(ctx, n.Username)
	if errors.Is(err, ErrUserNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	tok, _, err := s.sessions.Issue(user.ID.String())
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}
	s.logger.InfoContext(ctx, "user logged in", logger.UserID(user.ID.String()))
	return user, tok, nil
}

// Authenticate resolves a session token to its user.
func (s *Service) Authenticate(ctx context.Context, tok string) (*User, error) {
	claims, err := s.sessions.Verify(tok)
	if err != nil || s.Revoked(claims.ID) {
		return nil, ErrInvalidSession
	}
	return s.userFromClaims(ctx, claims)
}

// Logout revokes tok until its natural expiry. Invalid tokens are ignored.
func (s *Service) Logout(ctx context.Context, tok string) {
	claims, err := s.sessions.Verify(tok)
	if err != nil {
		return
	}
	s.revoked.add(claims.ID, claims.Expires())
	s.logger.InfoContext(ctx, "user logged out", logger.UserID(claims.Subject))
}

// Revoked reports whether the session with the given token ID was logged out.
func (s *Service) Revoked(jti string) bool {
	return s.revoked.has(jti)
}

// UpdateProfile replaces the editable profile fields of user id.
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, profile apiclient.Profile) (*User, error) {
	user, err := s.storage.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.applyProfile(profile)
	user.UpdatedAt = s.now()
	if err := s.storage.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) userFromClaims(ctx context.Context, claims jwt.Claims) (*User, error) {
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidSession
	}
	user, err := s.storage.GetUserByID(ctx, id)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidSession
	}
	return user, err
}
