// Package cache stores encoded anagram lists so repeated requests for the
// same letters skip generation.
//
// Three backends implement [Cache]:
//   - [FileCache]: JSON entries on disk, used by the CLI
//   - [RedisCache]: a shared Redis instance, used by the API server
//   - [NullCache]: stores nothing, used with --no-cache and in tests
//
// Keys are produced by a [Keyer] so every backend shares the same layout.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// TTLAnagram is how long a generated anagram list stays cached.
const TTLAnagram = 7 * 24 * time.Hour

// MaxCachedEntries is the largest anagram list worth caching (8!).
// Longer lists are cheaper to regenerate than to store and reload.
const MaxCachedEntries = 40320

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the data stored under key. The bool is false on a miss;
	// misses are not errors.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// AnagramKeyOpts holds the request options that change the cached bytes.
type AnagramKeyOpts struct {
	Limit  int    `json:"limit,omitempty"`
	Format string `json:"format"`
}

// Keyer builds cache keys.
type Keyer interface {
	// AnagramKey returns the key for the anagram list of letters.
	AnagramKey(letters string, opts AnagramKeyOpts) string
}

// DefaultKeyer hashes the letters and options into "anagram:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// AnagramKey implements Keyer.
func (DefaultKeyer) AnagramKey(letters string, opts AnagramKeyOpts) string {
	return hashKey("anagram", letters, opts)
}

// hashKey returns prefix + ":" + the hex SHA-256 of the JSON encoding of parts.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash returns the hex SHA-256 of data (64 characters).
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
