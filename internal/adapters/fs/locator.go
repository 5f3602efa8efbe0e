// Package fs provides file system adapters for locating, resolving and walking images.
package fs

import (
	"crypto/md5" //nolint:gosec // The freedesktop cache layout is keyed by MD5.
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/thumbs/internal/core/ports"
)

var _ ports.Locator = (*Locator)(nil)

// Locator derives cache locations from canonical source URIs.
type Locator struct {
	root      string
	digest    domain.Digest
	generator string
}

// NewLocator creates a Locator for the cache below root.
// Fail marker paths are placed in the directory of generator.
func NewLocator(root string, digest domain.Digest, generator string) *Locator {
	return &Locator{root: root, digest: digest, generator: generator}
}

// Locate canonicalizes path and returns its cache location for tier.
func (l *Locator) Locate(path string, tier domain.SizeTier) domain.Location {
	source := Canonicalize(path)
	uri := URI(source)
	key := l.Key(uri)
	name := key + domain.ThumbnailExt

	return domain.Location{
		URI:      uri,
		Source:   source,
		Key:      key,
		Tier:     tier,
		Path:     filepath.Join(domain.TierPath(l.root, tier), name),
		FailPath: filepath.Join(domain.FailPath(l.root, l.generator), name),
	}
}

// Key digests uri into a lowercase hex string.
func (l *Locator) Key(uri string) string {
	if l.digest == domain.DigestXXHash {
		return fmt.Sprintf("%016x", xxhash.Sum64String(uri))
	}
	sum := md5.Sum([]byte(uri)) //nolint:gosec // See import.
	return hex.EncodeToString(sum[:])
}

// URI returns the file URI of a canonical path.
func URI(canonical string) string {
	return domain.URIScheme + filepath.ToSlash(canonical)
}

// Canonicalize expands a leading tilde, makes path absolute and resolves symlinks.
// When symlinks cannot be resolved, e.g. because the file vanished, the cleaned
// absolute path is returned.
func Canonicalize(path string) string {
	path = ExpandHome(path)

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

// ExpandHome replaces a leading "~" with the home directory of the current user.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
