package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Server deployments use it to keep per-tenant artifact caches separate
// while sharing one Redis instance.
//
// Example usage:
//
//	tenantKeyer := NewScopedKeyer(NewDefaultKeyer(), "tenant:abc123:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(iconHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(iconHash, opts)
}

// PackKey generates a prefixed key for a loaded pack manifest.
func (k *ScopedKeyer) PackKey(name string) string {
	return k.prefix + k.inner.PackKey(name)
}
