// Package store provides the key-value layer behind session tokens and
// other ephemeral state, with in-memory and Redis implementations.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a key does not exist in the store.
var ErrNotFound = errors.New("store: key not found")

// Store is a key-value store with per-key expiry.
type Store interface {
	// Set stores a key-value pair. A ttl of 0 means no expiry.
	Set(key string, value []byte, ttl time.Duration) error

	// Get retrieves a value by key, returning ErrNotFound when absent
	// or expired.
	Get(key string) ([]byte, error)

	// Delete removes keys. Missing keys are not an error.
	Delete(keys ...string) error

	// Exists reports whether a key is present and unexpired.
	Exists(key string) (bool, error)

	// SetNX sets the key only if it does not already exist, reporting
	// whether the write happened.
	SetNX(key string, value []byte, ttl time.Duration) (bool, error)

	// Close releases resources held by the store.
	Close() error
}
