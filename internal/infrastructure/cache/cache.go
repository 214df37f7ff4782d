package cache

import (
	"context"
	"time"
)

// Cache is a small string key-value cache with per-key expiration. Used for
// reference data only; durable state always lives in the database.
type Cache interface {
	// Get retrieves a value, reporting whether the key was present and fresh
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a value with an expiration
	Set(ctx context.Context, key, value string, expiration time.Duration) error

	// Delete removes a key
	Delete(ctx context.Context, key string) error
}
