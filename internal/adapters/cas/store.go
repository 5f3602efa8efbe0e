// Package cas implements the on-disk thumbnail cache.
package cas

import (
	"bufio"
	"errors"
	"image"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/thumbs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ThumbnailStore = (*Store)(nil)

// Store implements ports.ThumbnailStore using one PNG file per cache location.
// Writes go through a temporary file in the destination directory followed by a
// rename, so readers observe either the previous or the complete new file.
type Store struct {
	codec ports.ImageCodec
}

// NewStore creates a Store encoding thumbnails with codec.
func NewStore(codec ports.ImageCodec) *Store {
	return &Store{codec: codec}
}

// Read decodes the thumbnail at loc.
func (s *Store) Read(loc domain.Location) (*domain.CacheEntry, error) {
	img, fields, err := s.readPNG(loc.Path)
	if err != nil {
		return nil, err
	}

	entry, err := domain.EntryFromFields(img, fields)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheMiss, err.Error()), "path", loc.Path)
	}
	if entry.URI != loc.URI {
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheMiss, "thumbnail belongs to another source"), "path", loc.Path)
	}
	return entry, nil
}

// Write atomically replaces the thumbnail at loc with entry.
func (s *Store) Write(entry *domain.CacheEntry, loc domain.Location) error {
	return s.writePNG(loc.Path, entry.Image, entry.TextFields())
}

// ReadFailMarker reads the failure marker of loc.
func (s *Store) ReadFailMarker(loc domain.Location) (*domain.FailMarker, error) {
	_, fields, err := s.readPNG(loc.FailPath)
	if err != nil {
		return nil, err
	}

	marker, err := domain.FailMarkerFromFields(fields)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheMiss, err.Error()), "path", loc.FailPath)
	}
	if marker.URI != loc.URI {
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheMiss, "marker belongs to another source"), "path", loc.FailPath)
	}
	return marker, nil
}

// WriteFailMarker atomically writes a 1x1 PNG carrying the marker's metadata.
func (s *Store) WriteFailMarker(marker *domain.FailMarker, loc domain.Location) error {
	return s.writePNG(loc.FailPath, image.NewNRGBA(image.Rect(0, 0, 1, 1)), marker.TextFields())
}

// Invalidate removes the thumbnail and the failure marker of loc.
func (s *Store) Invalidate(loc domain.Location) error {
	var errs []error
	for _, path := range []string{loc.Path, loc.FailPath} {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, zerr.With(zerr.Wrap(err, "failed to remove thumbnail"), "path", path))
		}
	}
	return errors.Join(errs...)
}

func (s *Store) readPNG(path string) (image.Image, map[string]string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is derived from the cache root and a digest
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, zerr.With(zerr.Wrap(domain.ErrCacheMiss, "thumbnail not found"), "path", path)
		}
		// Unreadable cache files are rebuilt like absent ones.
		return nil, nil, zerr.With(zerr.Wrap(domain.ErrCacheMiss, err.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	img, fields, err := s.codec.DecodePNG(bufio.NewReader(f))
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(domain.ErrCacheMiss, "corrupt thumbnail: "+err.Error()), "path", path)
	}
	return img, fields, nil
}

func (s *Store) writePNG(path string, img image.Image, fields []domain.TextField) error {
	return writeAtomic(path, func(w io.Writer) error {
		return s.codec.EncodePNG(w, img, fields)
	})
}

// writeAtomic writes path through a temporary sibling file and a rename.
// The temporary file is removed on every failure.
func writeAtomic(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "dir", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = tmp.Chmod(domain.PrivateFilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}

	buf := bufio.NewWriter(tmp)
	if err = write(buf); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err = buf.Flush(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err = tmp.Sync(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err = tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}
