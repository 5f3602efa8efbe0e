// Package config loads thumbs.yaml.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	thumbsfs "go.trai.ch/thumbs/internal/adapters/fs"
	"go.trai.ch/thumbs/internal/build"
	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/thumbs/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	// UserConfigDir overrides $XDG_CONFIG_HOME/thumbs. Used by tests.
	UserConfigDir string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load looks for thumbs.yaml in cwd and its parents, then in the user configuration
// directory. Without a file the defaults are returned.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	cfg := domain.DefaultConfig(build.Generator())

	path, ok := l.findConfiguration(cwd)
	if !ok {
		return cfg, nil
	}

	var file Thumbsfile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	if err := l.apply(&cfg, &file, filepath.Dir(path)); err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	cfg.Source = path
	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	if cwd != "" {
		if abs, err := filepath.Abs(cwd); err == nil {
			for dir := abs; ; {
				candidate := filepath.Join(dir, domain.ConfigFileName)
				if isFile(candidate) {
					return candidate, true
				}
				parent := filepath.Dir(dir)
				if parent == dir {
					break
				}
				dir = parent
			}
		}
	}

	userDir := l.UserConfigDir
	if userDir == "" {
		root := domain.DefaultConfigRoot()
		if root == "" {
			return "", false
		}
		userDir = filepath.Join(root, domain.ConfigDirName)
	}
	candidate := filepath.Join(userDir, domain.ConfigFileName)
	return candidate, isFile(candidate)
}

func (l *Loader) apply(cfg *domain.Config, file *Thumbsfile, baseDir string) error {
	if file.CacheDir != "" {
		dir := thumbsfs.ExpandHome(file.CacheDir)
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(baseDir, dir)
		}
		cfg.CacheRoot = filepath.Clean(dir)
	}

	switch {
	case file.Workers < 0:
		return zerr.With(domain.ErrInvalidWorkers, "workers", file.Workers)
	case file.Workers > 0:
		cfg.Workers = file.Workers
	}

	tier, err := domain.ParseSizeTier(file.Size)
	if err != nil {
		return err
	}
	cfg.Tier = tier

	digest, err := domain.ParseDigest(file.Digest)
	if err != nil {
		return err
	}
	cfg.Digest = digest
	if digest == domain.DigestXXHash && l.Logger != nil {
		l.Logger.Warn("digest 'xxhash' produces cache keys other freedesktop thumbnailers will not find")
	}

	if file.Generator != "" {
		if err := ValidateGenerator(file.Generator); err != nil {
			return err
		}
		cfg.Generator = file.Generator
	}

	cfg.FailMarkers = file.FailMarkers

	if file.Watch != nil {
		cfg.Recursive = file.Watch.Recursive
		if file.Watch.Debounce != "" {
			d, err := time.ParseDuration(file.Watch.Debounce)
			if err != nil || d < 0 {
				return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "invalid watch.debounce"), "debounce", file.Watch.Debounce)
			}
			cfg.Debounce = d
		}
	}
	return nil
}

// ValidateGenerator checks that generator can name the failure marker directory.
func ValidateGenerator(generator string) error {
	if generator == "" || generator == "." || generator == ".." ||
		strings.ContainsAny(generator, `/\`) || strings.ContainsRune(generator, 0) {
		return zerr.With(domain.ErrInvalidGenerator, "generator", generator)
	}
	return nil
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by findConfiguration
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Is(err, fs.ErrPermission)
	}
	return !info.IsDir()
}
