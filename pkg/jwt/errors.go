package jwt

import "errors"

var (
	ErrMissingSigningKey = errors.New("jwt: signing key is empty")

	// Returned by Parse.
	ErrInvalidToken            = errors.New("jwt: malformed token")
	ErrInvalidSignature        = errors.New("jwt: signature mismatch")
	ErrUnexpectedSigningMethod = errors.New("jwt: alg is not HS256")
	ErrInvalidClaims           = errors.New("jwt: claims do not decode")
	ErrMissingClaims           = errors.New("jwt: claims missing")
	ErrExpiredToken            = errors.New("jwt: token expired")
)
