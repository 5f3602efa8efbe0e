package ports

import (
	"context"

	"go.trai.ch/thumbs/internal/core/domain"
)

// Thumbnailer serves a thumbnail for a single source path.
//
//go:generate mockgen -source=thumbnailer.go -destination=mocks/mock_thumbnailer.go -package=mocks
type Thumbnailer interface {
	// Thumbnail returns a cached or freshly built thumbnail for path.
	// Failures are reported through the returned Status, never by panicking or blocking siblings.
	Thumbnail(ctx context.Context, path string, tier domain.SizeTier) domain.Thumbnail
}
