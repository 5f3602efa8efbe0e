package domain

import (
	"runtime"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// Digest names the hash used to derive cache keys from URIs.
type Digest string

const (
	// DigestMD5 is the freedesktop thumbnail digest.
	DigestMD5 Digest = "md5"
	// DigestXXHash is a fast non-cryptographic alternative; caches it writes are private to thumbs.
	DigestXXHash Digest = "xxhash"
)

// ParseDigest converts a configuration value into a Digest.
// The empty string selects DigestMD5.
func ParseDigest(s string) (Digest, error) {
	switch Digest(strings.ToLower(strings.TrimSpace(s))) {
	case "", DigestMD5:
		return DigestMD5, nil
	case DigestXXHash:
		return DigestXXHash, nil
	default:
		return DigestMD5, zerr.With(ErrInvalidDigest, "digest", s)
	}
}

// DefaultDebounce is the default window for coalescing watch events.
const DefaultDebounce = 100 * time.Millisecond

// Config is the resolved runtime configuration.
type Config struct {
	// CacheRoot is the directory holding the thumbnails/ tree.
	CacheRoot string
	// Workers is the size of the worker pool.
	Workers int
	// Tier is the default size tier.
	Tier SizeTier
	// Digest selects the cache key hash.
	Digest Digest
	// Generator is written into the Software field and names the fail marker directory.
	Generator string
	// FailMarkers enables persisting failure markers for undecodable sources.
	FailMarkers bool
	// Debounce is the window used by watch mode to coalesce file events.
	Debounce time.Duration
	// Recursive makes directory arguments and watch mode descend into subdirectories.
	Recursive bool
	// Source is the configuration file the values were read from, empty for defaults.
	Source string
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig(generator string) Config {
	return Config{
		CacheRoot: DefaultCacheRoot(),
		Workers:   runtime.NumCPU(),
		Tier:      TierNormal,
		Digest:    DigestMD5,
		Generator: generator,
		Debounce:  DefaultDebounce,
	}
}
