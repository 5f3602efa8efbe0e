package ports

import "go.trai.ch/thumbs/internal/core/domain"

// ThumbnailStore reads and writes thumbnails in the on-disk cache.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ThumbnailStore interface {
	// Read decodes the thumbnail at loc.
	// It returns an error wrapping domain.ErrCacheMiss if the file is absent or unusable.
	Read(loc domain.Location) (*domain.CacheEntry, error)

	// Write atomically replaces the thumbnail at loc with entry.
	Write(entry *domain.CacheEntry, loc domain.Location) error

	// ReadFailMarker reads the failure marker of loc.
	// It returns an error wrapping domain.ErrCacheMiss if there is none.
	ReadFailMarker(loc domain.Location) (*domain.FailMarker, error)

	// WriteFailMarker atomically records that the source of loc could not be decoded.
	WriteFailMarker(marker *domain.FailMarker, loc domain.Location) error

	// Invalidate removes the thumbnail and the failure marker of loc.
	// Missing files are not an error.
	Invalidate(loc domain.Location) error
}
