package client

import "errors"

var (
	ErrUsage            = errors.New("usage error")
	ErrNotAuthenticated = errors.New("not logged in")
	ErrLoginFailed      = errors.New("login failed")
	ErrEditFailed       = errors.New("profile update failed")
)
