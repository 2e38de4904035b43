// Package cache provides a generic, size-bounded LRU cache with optional
// per-entry expiry. The reference auth server uses it to remember consumed
// login nonces and revoked session tokens until they would expire anyway.
package cache
