package app

import (
	"context"

	"go.trai.ch/thumbs/internal/adapters/telemetry"
	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/thumbs/internal/core/ports"
	"go.trai.ch/thumbs/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// GenerateOptions configures the Generate method.
type GenerateOptions struct {
	// Large selects the large tier instead of the configured one.
	Large bool
	// Workers overrides the configured pool size when positive.
	Workers int
	// OutputMode is one of "auto", "tui", "linear" or "ci".
	OutputMode string
	// Strict turns any failed item into an error.
	Strict bool
	// Recursive descends into subdirectories of directory arguments.
	Recursive bool
}

// Generate serves a thumbnail for every image named by args and returns the completions in argument order.
func (a *App) Generate(ctx context.Context, args []string, opts GenerateOptions) ([]domain.Completion, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	paths, err := a.resolver.ResolveInputs(args, opts.Recursive || cfg.Recursive)
	if err != nil {
		return nil, err
	}
	tier := resolveTier(cfg, opts.Large)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := a.newRenderer(opts.OutputMode, cancel)

	tp := telemetry.NewProvider(telemetry.NewBridge(renderer))
	defer func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}()
	tracer := telemetry.NewOTelTracer("thumbs", tp)

	pipe := a.newPipeline(ctx, cfg, opts.Workers, tracer)

	results := make([]domain.Completion, len(paths))
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() error {
		defer func() {
			_ = pipe.Close()
			_ = renderer.Stop()
		}()
		return collect(gctx, pipe, renderer, paths, tier, results)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Strict {
		if failed := countFailures(results); failed > 0 {
			return results, zerr.With(zerr.Wrap(domain.ErrGenerateFailed, "strict mode"), "failed", failed)
		}
	}
	return results, nil
}

// collect submits paths as a single batch and forwards its completions to the renderer.
func collect(
	ctx context.Context,
	pipe *pipeline.Pipeline,
	renderer ports.Renderer,
	paths []string,
	tier domain.SizeTier,
	results []domain.Completion,
) error {
	batch, err := pipe.Submit(ctx, paths, tier)
	if err != nil {
		return err
	}
	renderer.OnBatch(batch)

	for received := 0; received < batch.Size; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c, ok := <-pipe.Events():
			if !ok {
				return domain.ErrPoolClosed
			}
			if c.Generation != batch.Generation {
				continue
			}
			renderer.OnCompletion(c)
			results[c.Index] = c
			received++
		}
	}
	return nil
}

func countFailures(results []domain.Completion) int {
	n := 0
	for _, c := range results {
		if c.Status.IsFailure() {
			n++
		}
	}
	return n
}

