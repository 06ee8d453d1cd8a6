package cache

import "strings"

// RouteKeyOpts holds the inputs that change a computed route.
type RouteKeyOpts struct {
	Floor string   `json:"floor"`
	Start string   `json:"start"`
	Visit []string `json:"visit"`
}

// ArtifactKeyOpts holds the inputs that change a rendered diagram.
type ArtifactKeyOpts struct {
	RouteKeyOpts
	Format   string  `json:"format"`
	Detailed bool    `json:"detailed"`
	Scale    float64 `json:"scale"`
}

// Keyer builds cache keys from a plan hash (see [Hash]) and output options.
type Keyer interface {
	RouteKey(planHash string, opts RouteKeyOpts) string
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces keys of the form "kind:sha256".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RouteKey returns the key of a route.
func (DefaultKeyer) RouteKey(planHash string, opts RouteKeyOpts) string {
	return hashKey("route", planHash, opts)
}

// ArtifactKey returns the key of a rendered diagram.
func (DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planHash, opts)
}

// ScopedKeyer prefixes every key of an inner keyer. The server uses it to
// keep its entries apart from other users of a shared Redis.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner with prefix. A nil inner uses [DefaultKeyer].
// A missing trailing colon is added to the prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	if prefix != "" && !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// RouteKey returns the prefixed route key.
func (k *ScopedKeyer) RouteKey(planHash string, opts RouteKeyOpts) string {
	return k.prefix + k.inner.RouteKey(planHash, opts)
}

// ArtifactKey returns the prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(planHash, opts)
}
