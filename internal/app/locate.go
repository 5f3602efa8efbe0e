package app

import (
	"context"
	"errors"
	"os"

	"go.trai.ch/thumbs/internal/core/domain"
)

// LocateOptions configures the Locate method.
type LocateOptions struct {
	// Large selects the large tier instead of the configured one.
	Large bool
}

// LocateReport describes where the thumbnail of a source lives and what the cache holds for it.
type LocateReport struct {
	Location domain.Location
	// SourceExists is false when the source could not be stat'ed.
	SourceExists bool
	SourceMTime  int64
	// Entry is the cached thumbnail, nil on a cache miss.
	Entry *domain.CacheEntry
	// Fresh reports whether Entry was generated from the current source.
	Fresh bool
	// FailMarker is this generator's failure marker, nil when absent or when markers are disabled.
	FailMarker *domain.FailMarker
}

// Locate reports the cache location of path without generating anything.
func (a *App) Locate(_ context.Context, path string, opts LocateOptions) (LocateReport, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return LocateReport{}, err
	}

	loc := a.newLocator(cfg).Locate(path, resolveTier(cfg, opts.Large))
	report := LocateReport{Location: loc}

	if info, err := os.Stat(loc.Source); err == nil {
		report.SourceExists = true
		report.SourceMTime = info.ModTime().Unix()
	}

	entry, err := a.store.Read(loc)
	switch {
	case err == nil:
		report.Entry = entry
		report.Fresh = report.SourceExists && entry.IsFreshFor(report.SourceMTime)
	case !errors.Is(err, domain.ErrCacheMiss):
		return report, err
	}

	if cfg.FailMarkers {
		if marker, err := a.store.ReadFailMarker(loc); err == nil {
			report.FailMarker = marker
		}
	}
	return report, nil
}
