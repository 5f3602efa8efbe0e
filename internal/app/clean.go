package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/zerr"
)

// CleanOptions configures the Clean method.
type CleanOptions struct {
	// Thumbnails removes the normal and large thumbnails written by the configured generator.
	Thumbnails bool
	// FailMarkers removes the failure markers written by the configured generator.
	FailMarkers bool
}

// Clean removes cached thumbnails and failure markers based on the provided options.
// The tier directories are shared with other thumbnailers, only files whose Software
// field names the configured generator are removed from them.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	var errs error
	if options.Thumbnails {
		for _, tier := range domain.Tiers() {
			a.logger.Info(fmt.Sprintf("removing %s thumbnails of %s...", tier, cfg.Generator))
			n, err := a.removeOwned(domain.TierPath(cfg.CacheRoot, tier), cfg.Generator)
			errs = errors.Join(errs, err)
			a.logger.Info(fmt.Sprintf("removed %d %s thumbnails", n, tier))
		}
	}
	if options.FailMarkers {
		dir := domain.FailPath(cfg.CacheRoot, cfg.Generator)
		a.logger.Info(fmt.Sprintf("removing failure markers of %s...", cfg.Generator))
		if err := os.RemoveAll(dir); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove failure markers"), "path", dir))
		} else {
			a.logger.Info("removed failure markers of " + cfg.Generator)
		}
	}
	return errs
}

// removeOwned deletes the thumbnails in dir that were written by generator.
// Files that cannot be read are left alone.
func (a *App) removeOwned(dir, generator string) (int, error) {
	if generator == "" {
		return 0, nil
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to list thumbnails"), "path", dir)
	}

	removed := 0
	var errs error
	for _, entry := range entries {
		if !entry.Type().IsRegular() || filepath.Ext(entry.Name()) != ".png" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if a.softwareOf(path) != generator {
			continue
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove thumbnail"), "path", path))
			continue
		}
		removed++
	}
	return removed, errs
}

// softwareOf returns the Software text field of the PNG at path, empty when unreadable.
func (a *App) softwareOf(path string) string {
	f, err := os.Open(path) //nolint:gosec // Path is a cache entry below the configured root
	if err != nil {
		return ""
	}
	defer func() { _ = f.Close() }()

	_, fields, err := a.codec.DecodePNG(bufio.NewReader(f))
	if err != nil {
		return ""
	}
	return fields[domain.KeySoftware]
}
