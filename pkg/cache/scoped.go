package cache

// ScopedKeyer wraps a Keyer with a prefix.
// The CLI scopes keys by release so that a new version never reads entries
// written by an older one:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), buildinfo.Get().Version+":")
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

// IntersectKey generates a prefixed key for intersection graph caching.
func (k *ScopedKeyer) IntersectKey(pointsHash string) string {
	return k.prefix + k.inner.IntersectKey(pointsHash)
}
