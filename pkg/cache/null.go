package cache

import (
	"context"
	"time"
)

// NullCache disables caching: every lookup misses and every store is
// dropped, so each request renders from the icon source. It backs the
// --no-cache flag and keeps tests deterministic.
type NullCache struct{}

// NewNullCache returns the disabled cache.
func NewNullCache() Cache {
	return NullCache{}
}

// Get reports a miss for every key.
func (NullCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set drops the artifact.
func (NullCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

// Delete has nothing to remove.
func (NullCache) Delete(context.Context, string) error {
	return nil
}

// Close has no resources to release.
func (NullCache) Close() error {
	return nil
}

var _ Cache = NullCache{}
