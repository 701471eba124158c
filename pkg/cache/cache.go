// Package cache provides artifact caching for rendered icons.
//
// Rendering is deterministic: the same icon and style always produce the
// same bytes. The cache keys on a hash of the icon source plus every
// style knob, so a hit can be served without touching the render
// pipeline at all.
//
// Backends:
//   - file: per-user cache directory for CLI usage
//   - redis: shared cache for server deployments
//   - null: caching disabled
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts keyed by content hash.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts carries every input that changes rendered bytes.
// Two renders with equal opts and equal icon hash are byte-identical.
type ArtifactKeyOpts struct {
	Format       string  `json:"format"`
	Color        string  `json:"color"`
	Background   string  `json:"background"`
	Padding      float64 `json:"padding"`
	CornerRadius float64 `json:"corner_radius"`
	SizePx       int     `json:"size_px"`
	Convention   string  `json:"convention"`
}

// Keyer generates cache keys for the pipeline's cacheable stages.
type Keyer interface {
	// ArtifactKey generates a key for a rendered artifact given the hash
	// of the icon's source bytes and the full style options.
	ArtifactKey(iconHash string, opts ArtifactKeyOpts) string

	// PackKey generates a key for a loaded pack manifest.
	PackKey(name string) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(iconHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", iconHash, opts)
}

// PackKey generates a key for a loaded pack manifest.
func (k *DefaultKeyer) PackKey(name string) string {
	return "pack:" + name
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
