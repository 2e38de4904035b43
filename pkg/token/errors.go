package token

import "errors"

var (
	ErrInvalidToken     = errors.New("token.invalid")
	ErrSignatureInvalid = errors.New("token.signature_mismatch")
	ErrExpired          = errors.New("token.expired")
	ErrEmptySecret      = errors.New("token.empty_secret")
)
