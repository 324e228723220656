// Package interfaces defines the core interfaces used throughout the
// application. These interfaces allow for dependency injection and make
// the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for byte-level cache operations, used for
// response memoization. Implementations can be in-memory, Redis, or any
// other caching solution. The facility and availability caches do NOT sit
// behind this interface: they are typed, single-slot caches with their own
// freshness semantics.
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// A ttl of 0 stores the value indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
