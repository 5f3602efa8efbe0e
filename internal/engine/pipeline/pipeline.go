// Package pipeline runs batches of thumbnail requests on a worker pool.
package pipeline

import (
	"context"
	"sync"

	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/thumbs/internal/core/ports"
	"go.trai.ch/thumbs/internal/engine/pool"
)

// SpanName is the name of the span wrapping each task.
const SpanName = "thumbnail"

// Pipeline submits batches of paths to a worker pool and reports one Completion per executed task.
//
// A new batch supersedes the previous one: tasks that have not started are discarded.
// Tasks already running still deliver their completion, tagged with their own generation.
type Pipeline struct {
	pool        *pool.Pool
	thumbnailer ports.Thumbnailer
	tracer      ports.Tracer

	events chan domain.Completion
	done   chan struct{}

	mu         sync.Mutex
	generation uint64
	closed     bool
}

// New creates a pipeline executing on p. The pipeline owns p and closes it on Close.
func New(p *pool.Pool, thumbnailer ports.Thumbnailer, tracer ports.Tracer) *Pipeline {
	return &Pipeline{
		pool:        p,
		thumbnailer: thumbnailer,
		tracer:      tracer,
		events:      make(chan domain.Completion, 2*p.Workers()),
		done:        make(chan struct{}),
	}
}

// Submit starts a new batch and returns its descriptor without waiting for any task.
// Pending tasks of earlier batches are dropped. Cancelling ctx makes the batch's
// remaining tasks finish early with a failure status.
func (p *Pipeline) Submit(ctx context.Context, paths []string, tier domain.SizeTier) (domain.Batch, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return domain.Batch{}, domain.ErrPoolClosed
	}

	dropped := p.pool.Clear()
	p.generation++
	batch := domain.Batch{
		Generation: p.generation,
		Size:       len(paths),
		Tier:       tier,
		Dropped:    dropped,
	}

	for i, path := range paths {
		if err := p.pool.Submit(p.task(ctx, batch, i, path)); err != nil {
			return batch, err
		}
	}
	return batch, nil
}

// Generation returns the generation of the most recent batch, zero before the first Submit.
func (p *Pipeline) Generation() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation
}

// Events returns the completion stream. It is closed by Close.
func (p *Pipeline) Events() <-chan domain.Completion {
	return p.events
}

// Close drops pending tasks, waits for running ones and closes the event stream.
// Completions of tasks still running when Close is called may be discarded.
func (p *Pipeline) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.done)
	p.mu.Unlock()

	err := p.pool.Close()
	close(p.events)
	return err
}

func (p *Pipeline) task(ctx context.Context, batch domain.Batch, index int, path string) pool.Job {
	return func(workerCtx context.Context) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		stop := context.AfterFunc(workerCtx, cancel)
		defer stop()

		ctx, span := p.tracer.Start(ctx, SpanName,
			ports.WithAttribute("path", path),
			ports.WithAttribute("index", index),
			ports.WithAttribute("generation", batch.Generation),
			ports.WithAttribute("tier", batch.Tier.String()),
		)
		thumb := p.thumbnailer.Thumbnail(ctx, path, batch.Tier)
		span.SetAttribute("status", string(thumb.Status))
		if thumb.Status.IsFailure() {
			if thumb.Err != nil {
				span.RecordError(thumb.Err)
			} else {
				span.RecordError(domain.ErrGenerateFailed)
			}
		}
		span.End()

		c := domain.Completion{
			Generation: batch.Generation,
			Index:      index,
			Path:       path,
			Tier:       batch.Tier,
			Thumbnail:  thumb,
		}
		select {
		case p.events <- c:
		case <-p.done:
		}
	}
}
