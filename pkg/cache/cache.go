// Package cache stores rendered diagrams so repeated runs over the same DOT
// source skip Graphviz.
//
// # Backends
//
//   - [FileCache]: entry files on local disk, for the CLI
//   - [RedisCache]: a shared Redis instance, for servers
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// # Keys
//
// Keys are built by a [Keyer] from a hash of the DOT source plus the render
// options, so any change to the ontology, the configuration or the format
// yields a new key. DOT text itself is never cached; it is cheap to rebuild.
//
//	k := cache.NewDefaultKeyer()
//	key := k.ArtifactKey(cache.Hash([]byte(src)), cache.ArtifactKeyOpts{Format: "svg"})
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value stored under key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// NullCache misses on every lookup and drops every write.
type NullCache struct{}

// NewNullCache creates a cache that stores nothing.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
