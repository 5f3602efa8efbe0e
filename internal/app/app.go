// Package app implements the application layer for thumbs.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/thumbs/internal/adapters/fs"
	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/thumbs/internal/core/ports"
	"go.trai.ch/thumbs/internal/engine/pipeline"
	"go.trai.ch/thumbs/internal/engine/pool"
	"go.trai.ch/thumbs/internal/engine/thumbnailer"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	store        ports.ThumbnailStore
	codec        ports.ImageCodec
	resolver     ports.InputResolver
	watcher      ports.Watcher

	stdout     io.Writer
	stderr     io.Writer
	teaOptions []tea.ProgramOption
	getwd      func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	store ports.ThumbnailStore,
	codec ports.ImageCodec,
	resolver ports.InputResolver,
	watcher ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		store:        store,
		codec:        codec,
		resolver:     resolver,
		watcher:      watcher,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		getwd:        os.Getwd,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput redirects renderer and report output.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithWorkingDir makes configuration discovery start at dir instead of the process working directory.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// SetJSONLog switches the logger to JSON output when it supports it.
func (a *App) SetJSONLog(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// loadConfig resolves the configuration for the working directory.
func (a *App) loadConfig() (domain.Config, error) {
	cwd, err := a.getwd()
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to get working directory")
	}
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	if cfg.Source != "" {
		a.logger.Info(fmt.Sprintf("using configuration %s", cfg.Source))
	}
	return cfg, nil
}

func (a *App) newLocator(cfg domain.Config) *fs.Locator {
	return fs.NewLocator(cfg.CacheRoot, cfg.Digest, cfg.Generator)
}

// newPipeline builds the thumbnailer, pool and pipeline for one command invocation.
func (a *App) newPipeline(ctx context.Context, cfg domain.Config, workers int, tracer ports.Tracer) *pipeline.Pipeline {
	if workers <= 0 {
		workers = cfg.Workers
	}

	builder := thumbnailer.New(a.newLocator(cfg), a.store, a.codec, a.logger, thumbnailer.Options{
		Generator:   cfg.Generator,
		FailMarkers: cfg.FailMarkers,
	})
	p := pool.New(ctx, workers, pool.WithPanicHandler(a.logger.Error))
	return pipeline.New(p, builder, tracer)
}

func resolveTier(cfg domain.Config, large bool) domain.SizeTier {
	if large {
		return domain.TierLarge
	}
	return cfg.Tier
}
