package cache

import "time"

// Default TTLs per cached object type.
//
// Rendering is deterministic, so artifacts could live forever; the TTL
// only bounds disk growth for the file backend and memory for Redis.
const (
	// TTLArtifact is the lifetime of rendered SVG/PNG artifacts.
	TTLArtifact = 7 * 24 * time.Hour

	// TTLPack is the lifetime of cached pack manifests.
	TTLPack = 24 * time.Hour
)
