package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/thumbs/internal/adapters/fs"
	"go.trai.ch/thumbs/internal/adapters/linear"
	"go.trai.ch/thumbs/internal/adapters/telemetry"
	"go.trai.ch/thumbs/internal/adapters/watcher"
	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/thumbs/internal/core/ports"
)

// WatchOptions configures the Watch method.
type WatchOptions struct {
	// Large selects the large tier instead of the configured one.
	Large bool
	// Recursive watches subdirectories too.
	Recursive bool
	// Workers overrides the configured pool size when positive.
	Workers int
}

// Watch thumbnails every image in dir, then keeps the cache current as files change until ctx is done.
// Bursts of changes are coalesced; a new batch drops pending work of the previous one.
func (a *App) Watch(ctx context.Context, dir string, opts WatchOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	recursive := opts.Recursive || cfg.Recursive
	tier := resolveTier(cfg, opts.Large)
	root := fs.Canonicalize(dir)

	initial, err := a.resolver.ResolveInputs([]string{root}, recursive)
	if err != nil && !errors.Is(err, domain.ErrNoInputs) {
		return err
	}

	if err := a.watcher.Start(ctx, root, recursive); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	renderer := linear.NewRenderer(a.stdout, a.stderr)
	_ = renderer.Start(ctx)
	defer func() {
		_ = renderer.Stop()
	}()

	pipe := a.newPipeline(ctx, cfg, opts.Workers, telemetry.NewNoOpTracer())
	defer func() {
		_ = pipe.Close()
	}()

	batches := make(chan []string, 1)
	done := make(chan struct{})
	defer close(done)
	debouncer := watcher.NewDebouncer(cfg.Debounce, batchSink(ctx, done, batches))
	defer debouncer.Stop()

	events := make(chan ports.WatchEvent)
	go func() {
		defer close(events)
		for ev := range a.watcher.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	a.logger.Info(fmt.Sprintf("watching %s", root))

	var current uint64
	submit := func(paths []string) error {
		if len(paths) == 0 {
			return nil
		}
		batch, err := pipe.Submit(ctx, paths, tier)
		if err != nil {
			return err
		}
		current = batch.Generation
		renderer.OnBatch(batch)
		return nil
	}

	if err := submit(initial); err != nil {
		return err
	}

	locator := a.newLocator(cfg)
	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-batches:
			if err := submit(paths); err != nil {
				return err
			}
		case c := <-pipe.Events():
			if c.Generation == current {
				renderer.OnCompletion(c)
			}
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.handleWatchEvent(ev, debouncer, locator)
		}
	}
}

// batchSink returns a debouncer callback handing batches to the watch loop.
// A delivery is abandoned once ctx is done or the loop has returned and closed done.
func batchSink(ctx context.Context, done <-chan struct{}, batches chan<- []string) func([]string) {
	return func(paths []string) {
		select {
		case batches <- paths:
		case <-done:
		case <-ctx.Done():
		}
	}
}

func (a *App) handleWatchEvent(ev ports.WatchEvent, debouncer *watcher.Debouncer, locator ports.Locator) {
	switch ev.Operation {
	case ports.OpRemove, ports.OpRename:
		for _, tier := range domain.Tiers() {
			if err := a.store.Invalidate(locator.Locate(ev.Path, tier)); err != nil {
				a.logger.Error(err)
			}
		}
	default:
		debouncer.Add(ev.Path)
	}
}

