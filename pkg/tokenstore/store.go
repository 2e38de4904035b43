package tokenstore

import "context"

// TokenKey is the fixed key the session controller keeps its credential under.
const TokenKey = "token"

// Store is durable key-value storage for client credentials.
// Implementations must be safe for concurrent use. Set overwrites.
type Store interface {
	// Get returns the value stored under key or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}
