package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// Expirer is implemented by payloads that carry their own deadline.
// Open rejects such payloads once the deadline has passed.
type Expirer interface {
	ExpiresAt() time.Time
}

// Signer produces and verifies compact "payload.signature" tokens:
// base64url JSON followed by a base64url HMAC-SHA256 over the JSON.
type Signer struct {
	secret []byte
	now    func() time.Time
}

// NewSigner creates a signer. The secret must not be empty.
func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Signer{secret: []byte(secret), now: time.Now}, nil
}

// Sign encodes payload and signs it.
func Sign[T any](s *Signer, payload T) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data) + "." +
		base64.RawURLEncoding.EncodeToString(s.mac(data)), nil
}

// Open verifies tok and decodes its payload. Payloads implementing Expirer
// are checked against the current time.
func Open[T any](s *Signer, tok string) (T, error) {
	var payload T

	encData, encSig, ok := strings.Cut(tok, ".")
	if !ok || encData == "" || encSig == "" || strings.Contains(encSig, ".") {
		return payload, ErrInvalidToken
	}

	data, err := base64.RawURLEncoding.DecodeString(encData)
	if err != nil {
		return payload, ErrInvalidToken
	}
	sig, err := base64.RawURLEncoding.DecodeString(encSig)
	if err != nil {
		return payload, ErrInvalidToken
	}

	if subtle.ConstantTimeCompare(sig, s.mac(data)) != 1 {
		return payload, ErrSignatureInvalid
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, ErrInvalidToken
	}

	if exp, ok := any(payload).(Expirer); ok {
		if deadline := exp.ExpiresAt(); !deadline.IsZero() && !s.now().Before(deadline) {
			return payload, ErrExpired
		}
	}

	return payload, nil
}

func (s *Signer) mac(data []byte) []byte {
	h := hmac.New(sha256.New, s.secret)
	h.Write(data)
	return h.Sum(nil)
}
