// Package thumbnailer serves thumbnails from the cache, building them when missing or stale.
package thumbnailer

import (
	"context"
	"errors"
	"os"

	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/thumbs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Thumbnailer = (*Builder)(nil)

// Options configures a Builder.
type Options struct {
	// Generator is recorded as the Software of every written thumbnail.
	Generator string
	// FailMarkers persists a failure marker for undecodable sources and honors
	// existing markers as long as the source mtime is unchanged.
	FailMarkers bool
}

// Builder implements ports.Thumbnailer.
type Builder struct {
	locator ports.Locator
	store   ports.ThumbnailStore
	codec   ports.ImageCodec
	logger  ports.Logger
	opts    Options
}

// New creates a Builder.
func New(
	locator ports.Locator,
	store ports.ThumbnailStore,
	codec ports.ImageCodec,
	logger ports.Logger,
	opts Options,
) *Builder {
	return &Builder{
		locator: locator,
		store:   store,
		codec:   codec,
		logger:  logger,
		opts:    opts,
	}
}

// Thumbnail returns a fresh cached thumbnail for path or builds and stores a new one.
//
// Unreadable sources never touch the cache. Undecodable sources yield the failure
// icon and only leave a failure marker when markers are enabled. A failed cache
// write is logged and the built image is returned regardless.
func (b *Builder) Thumbnail(ctx context.Context, path string, tier domain.SizeTier) domain.Thumbnail {
	loc := b.locator.Locate(path, tier)

	src, err := inspect(loc.Source)
	if err != nil {
		return failure(domain.StatusUnreadable, loc, err)
	}
	if err := ctx.Err(); err != nil {
		return failure(domain.StatusFailed, loc, zerr.Wrap(err, "thumbnail request canceled"))
	}

	if entry, err := b.store.Read(loc); err == nil && entry.IsFreshFor(src.MTime) {
		return domain.Thumbnail{Status: domain.StatusCached, Image: entry.Image, Location: loc}
	}

	if b.opts.FailMarkers {
		if marker, err := b.store.ReadFailMarker(loc); err == nil && marker.IsFreshFor(src.MTime) {
			return failure(domain.StatusFailed, loc, zerr.With(
				zerr.Wrap(domain.ErrDecodeUnsupported, "failure marker is current"), "path", loc.Source))
		}
	}

	img, err := b.codec.Decode(loc.Source)
	if err != nil {
		if errors.Is(err, domain.ErrSourceUnreadable) {
			return failure(domain.StatusUnreadable, loc, err)
		}
		b.markFailed(loc, src)
		return failure(domain.StatusFailed, loc, err)
	}

	bounds := img.Bounds()
	scaled := b.codec.Scale(img, tier.MaxDim())
	entry := &domain.CacheEntry{
		URI:          loc.URI,
		SourceMTime:  src.MTime,
		SourceSize:   src.Size,
		Width:        scaled.Bounds().Dx(),
		Height:       scaled.Bounds().Dy(),
		SourceWidth:  bounds.Dx(),
		SourceHeight: bounds.Dy(),
		Generator:    b.opts.Generator,
		Image:        scaled,
	}

	result := domain.Thumbnail{Status: domain.StatusGenerated, Image: scaled, Location: loc}
	if err := b.store.Write(entry, loc); err != nil {
		b.logger.Error(err)
		result.Err = err
	}
	return result
}

func (b *Builder) markFailed(loc domain.Location, src domain.SourceInfo) {
	if !b.opts.FailMarkers {
		return
	}
	marker := &domain.FailMarker{URI: loc.URI, SourceMTime: src.MTime, Generator: b.opts.Generator}
	if err := b.store.WriteFailMarker(marker, loc); err != nil {
		b.logger.Warn("failed to write failure marker for " + loc.Source + ": " + err.Error())
	}
}

// inspect checks that path is a readable regular file and returns its metadata.
func inspect(path string) (domain.SourceInfo, error) {
	f, err := os.Open(path) //nolint:gosec // Path is the canonical source requested by the caller
	if err != nil {
		return domain.SourceInfo{}, zerr.With(zerr.Wrap(domain.ErrSourceUnreadable, err.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return domain.SourceInfo{}, zerr.With(zerr.Wrap(domain.ErrSourceUnreadable, err.Error()), "path", path)
	}
	if !info.Mode().IsRegular() {
		return domain.SourceInfo{}, zerr.With(zerr.Wrap(domain.ErrSourceUnreadable, "not a regular file"), "path", path)
	}

	return domain.SourceInfo{
		Path:  path,
		MTime: info.ModTime().Unix(),
		Size:  info.Size(),
	}, nil
}

func failure(status domain.Status, loc domain.Location, err error) domain.Thumbnail {
	return domain.Thumbnail{
		Status:   status,
		Image:    FailureIcon(loc.Tier),
		Location: loc,
		Err:      err,
	}
}
