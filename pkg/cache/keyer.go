package cache

import "strings"

// ArtifactKeyOpts holds the render options that affect artifact bytes.
type ArtifactKeyOpts struct {
	Format string
	Engine string
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key of the artifact rendered from the DOT
	// source with hash sourceHash.
	ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces keys of the form "artifact:<format>:<engine>:<source hash>".
// An empty engine is written as "-".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string {
	engine := opts.Engine
	if engine == "" {
		engine = "-"
	}
	return strings.Join([]string{"artifact", opts.Format, engine, sourceHash}, ":")
}

// ScopedKeyer wraps a Keyer with a prefix, so several deployments can share
// one Redis without seeing each other's entries.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "ontodot:")
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

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sourceHash, opts)
}
