package cache

import (
	"context"
	"time"
)

// NullCache stores nothing. It backs runs with caching turned off: every Get
// misses and every Set is dropped, so intersection graphs are always
// recomputed. Calls on a cancelled context report the cancellation.
type NullCache struct{}

// NewNullCache returns a cache that never stores anything.
func NewNullCache() Cache { return NullCache{} }

// Get always misses.
func (NullCache) Get(ctx context.Context, _ string) ([]byte, bool, error) {
	return nil, false, ctx.Err()
}

// Set drops the entry.
func (NullCache) Set(ctx context.Context, _ string, _ []byte, _ time.Duration) error {
	return ctx.Err()
}

// Delete has nothing to remove.
func (NullCache) Delete(ctx context.Context, _ string) error {
	return ctx.Err()
}

// Close releases nothing.
func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}
