// Package cache stores computed results between command-line runs.
//
// # Overview
//
// Building an intersection graph tests every pair of diagonals, so it is the
// one operation worth remembering. Results are stored as opaque byte slices
// under string keys produced by a [Keyer]. Two backends are provided:
//
//   - [FileCache]: one JSON file per entry under a directory, with an
//     optional expiry time
//   - [NullCache]: stores nothing, used with --no-cache and in tests
//
// # Keys
//
// [DefaultKeyer] derives keys from a SHA-256 hash of the input point set.
// Wrap it with [NewScopedKeyer] to give each release its own namespace.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer generates cache keys.
type Keyer interface {
	// IntersectKey returns the key for the intersection graph of a point set,
	// given the hash produced by [HashPoints].
	IntersectKey(pointsHash string) string
}

// DefaultKeyer produces unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// IntersectKey returns "intersect:<hash>".
func (DefaultKeyer) IntersectKey(pointsHash string) string {
	return hashKey("intersect", pointsHash)
}
