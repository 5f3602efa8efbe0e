package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"go.trai.ch/thumbs/internal/core/domain"
)

// Walker provides image discovery below a directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkImages yields the image files below root in lexical order.
// Hidden directories are skipped. Subdirectories are only entered when recursive is true.
func (w *Walker) WalkImages(root string, recursive bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable subtrees are skipped, the root error ends the walk.
				if path == root {
					return err
				}
				return nil
			}

			if d.IsDir() {
				if path == root {
					return nil
				}
				if !recursive || w.isHidden(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if w.isHidden(d.Name()) || !domain.IsImagePath(path) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
