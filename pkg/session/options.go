package session

import (
	"context"
	"log/slog"
)

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the controller's logger. Nil is ignored.
func WithLogger(l *slog.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOnAuthenticated registers a hook run after LoginSuccess or
// AuthCheckSuccess has been dispatched, typically to load data that
// depends on the signed-in user. It never runs after a failure.
func WithOnAuthenticated(fn func(ctx context.Context, p Profile)) ControllerOption {
	return func(c *Controller) {
		c.onAuthenticated = fn
	}
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithBufferSize sets how many snapshots each subscriber may have pending.
// Older pending snapshots are dropped first.
func WithBufferSize(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.bufferSize = n
		}
	}
}

// WithStoreLogger sets the store's logger. Nil is ignored.
func WithStoreLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}
