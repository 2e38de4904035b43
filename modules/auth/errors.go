package auth

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidNonce       = errors.New("invalid or expired login nonce")
	ErrNonceUsed          = errors.New("login nonce already used")
	ErrInvalidSession     = errors.New("invalid session")
	ErrMissingUsername    = errors.New("username is required")
	ErrMissingPassword    = errors.New("password is required")
	ErrInvalidRequest     = errors.New("invalid request body")
)
