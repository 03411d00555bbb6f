// Package cache provides the caching layer for catwalk.
//
// Report runs over large wikis rebuild the same category graph from the same
// snapshot repeatedly; the cache keeps the built graph (and rendered report
// artifacts) keyed by the snapshot's content hash so unchanged snapshots are
// not re-processed.
//
// Three backends implement the same [Cache] interface:
//   - [FileCache]: filesystem cache for CLI usage (XDG cache directory)
//   - [RedisCache]: shared cache for repeated runs against one Redis instance
//   - [NullCache]: no-op cache for tests and --no-cache runs
package cache

import (
	"context"
	"time"
)

// Cache is the storage contract shared by all backends. Values are opaque
// byte blobs; serialization is the caller's concern.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A zero ttl stores without
	// expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DefaultTTL is the time-to-live for cached graphs and reports. Snapshots
// are content-addressed, so entries only go stale when the key space
// changes; the TTL mainly bounds disk usage.
const DefaultTTL = 7 * 24 * time.Hour
