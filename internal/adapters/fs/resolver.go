package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/thumbs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver expands command line arguments into image paths.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// ResolveInputs expands files, directories and glob patterns into image paths.
// The result keeps argument order and drops duplicates after their first occurrence.
// Explicit files are kept regardless of their extension, files found in directories
// must carry a supported image extension.
func (r *Resolver) ResolveInputs(args []string, recursive bool) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			result = append(result, path)
		}
	}

	for _, arg := range args {
		matches, err := r.expand(ExpandHome(arg))
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				// Dangling symlinks and entries that vanished after globbing are still
				// served, the thumbnailer reports them as unreadable.
				add(match)
				continue
			}
			if !info.IsDir() {
				add(match)
				continue
			}
			for path := range r.walker.WalkImages(match, recursive) {
				add(path)
			}
		}
	}

	if len(result) == 0 {
		return nil, domain.ErrNoInputs
	}
	return result, nil
}

func (r *Resolver) expand(arg string) ([]string, error) {
	if !strings.ContainsAny(arg, "*?[") {
		if _, err := os.Lstat(arg); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInputNotFound, "no such file"), "path", arg)
		}
		return []string{arg}, nil
	}

	matches, err := filepath.Glob(arg)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", arg)
	}
	if len(matches) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInputNotFound, "pattern matched no files"), "path", arg)
	}
	return matches, nil
}
