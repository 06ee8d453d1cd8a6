// Package cache stores rendered diagrams and computed routes so repeated
// requests for the same floor plan skip the work.
//
// Three backends implement [Cache]:
//
//   - [NullCache] never stores anything (--no-cache)
//   - [FileCache] keeps entries under the user cache directory (CLI)
//   - [RedisCache] shares entries between server instances
//
// Keys are built by a [Keyer] from a hash of the plan's content and the
// options that affect the output, so editing a plan file invalidates its
// entries without any bookkeeping.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the entry for key. A miss is reported with ok == false and
	// a nil error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	Close() error
}

// Default TTLs.
const (
	RouteTTL    = 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)
