package cache

// ScopedKeyer wraps a Keyer with a prefix so that several callers can share
// one cache directory without colliding, e.g. a test run next to a user's
// regular cache:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "bench:")
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

// BuildKey generates a prefixed key for a built tree.
func (k *ScopedKeyer) BuildKey(opts BuildKeyOpts) string {
	return k.prefix + k.inner.BuildKey(opts)
}

// DiagonalKey generates a prefixed key for a diagonal formula.
func (k *ScopedKeyer) DiagonalKey(d int) string {
	return k.prefix + k.inner.DiagonalKey(d)
}
