package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	headerType      = "JWT"
	headerAlgorithm = "HS256"
)

type header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// Claims are the registered claims of a session token.
type Claims struct {
	ID        string `json:"jti"`
	Subject   string `json:"sub"`
	Issuer    string `json:"iss,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp,omitempty"`
}

// Expires returns the expiry as a time, or the zero time when unset.
func (c Claims) Expires() time.Time {
	if c.ExpiresAt == 0 {
		return time.Time{}
	}
	return time.Unix(c.ExpiresAt, 0)
}

// Service issues and verifies HS256 session tokens.
type Service struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithIssuer sets the "iss" claim of issued tokens.
func WithIssuer(iss string) Option {
	return func(s *Service) { s.issuer = iss }
}

// WithTTL sets the lifetime of issued tokens. Zero issues tokens without expiry.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) { s.ttl = ttl }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a service signing with key.
func New(key string, opts ...Option) (*Service, error) {
	if key == "" {
		return nil, ErrMissingSigningKey
	}
	s := &Service{key: []byte(key), ttl: 24 * time.Hour, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue creates a token for subject with a fresh random ID.
func (s *Service) Issue(subject string) (string, Claims, error) {
	if subject == "" {
		return "", Claims{}, ErrMissingClaims
	}

	now := s.now()
	claims := Claims{
		ID:       uuid.NewString(),
		Subject:  subject,
		Issuer:   s.issuer,
		IssuedAt: now.Unix(),
	}
	if s.ttl > 0 {
		claims.ExpiresAt = now.Add(s.ttl).Unix()
	}

	tok, err := s.encode(claims)
	if err != nil {
		return "", Claims{}, err
	}
	return tok, claims, nil
}

// Verify checks the signature, algorithm and expiry of tok and returns its claims.
func (s *Service) Verify(tok string) (Claims, error) {
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		return Claims{}, ErrInvalidToken
	}

	if subtle.ConstantTimeCompare([]byte(parts[2]), []byte(s.sign(parts[0]+"."+parts[1]))) != 1 {
		return Claims{}, ErrInvalidSignature
	}

	var h header
	if err := decodeSegment(parts[0], &h); err != nil {
		return Claims{}, err
	}
	if h.Algorithm != headerAlgorithm {
		return Claims{}, ErrUnexpectedSigningMethod
	}

	var claims Claims
	if err := decodeSegment(parts[1], &claims); err != nil {
		return Claims{}, err
	}
	if claims.Subject == "" || claims.ID == "" {
		return Claims{}, ErrInvalidClaims
	}
	if claims.ExpiresAt > 0 && s.now().Unix() >= claims.ExpiresAt {
		return Claims{}, ErrExpiredToken
	}
	if s.issuer != "" && claims.Issuer != s.issuer {
		return Claims{}, ErrInvalidClaims
	}

	return claims, nil
}

func (s *Service) encode(claims Claims) (string, error) {
	h, err := json.Marshal(header{Type: headerType, Algorithm: headerAlgorithm})
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}
	c, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	payload := base64.RawURLEncoding.EncodeToString(h) + "." + base64.RawURLEncoding.EncodeToString(c)
	return payload + "." + s.sign(payload), nil
}

func (s *Service) sign(payload string) string {
	m := hmac.New(sha256.New, s.key)
	m.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(m.Sum(nil))
}

func decodeSegment(seg string, v any) error {
	data, err := base64.RawURLEncoding.DecodeString(seg)
	if err != nil {
		return ErrInvalidToken
	}
	if err := json.Unmarshal(data, v); err != nil {
		return ErrInvalidToken
	}
	return nil
}
