package cache

// ScopedKeyer wraps a Keyer with a prefix so several deployments can share
// one Redis instance without reading each other's entries.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
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

// AnagramKey generates a prefixed key for an anagram list.
func (k *ScopedKeyer) AnagramKey(letters string, opts AnagramKeyOpts) string {
	return k.prefix + k.inner.AnagramKey(letters, opts)
}
