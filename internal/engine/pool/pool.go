// Package pool provides a bounded worker pool with a clearable queue.
package pool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Job is a unit of work executed by a worker.
type Job func(ctx context.Context)

// Option configures a Pool.
type Option func(*Pool)

// WithPanicHandler sets the function receiving panics recovered from jobs.
func WithPanicHandler(handler func(error)) Option {
	return func(p *Pool) {
		p.onPanic = handler
	}
}

// Pool executes jobs on a fixed number of workers.
// Jobs start in submission order. With a single worker they also finish in that order.
type Pool struct {
	workers int
	onPanic func(error)

	ctx   context.Context
	group *errgroup.Group
	wake  chan struct{}

	mu     sync.Mutex
	queue  []Job
	closed bool

	running atomic.Int64
}

// New starts a pool with the given number of workers.
// A non-positive count selects runtime.NumCPU().
// Workers exit when ctx is canceled or the pool is closed.
func New(ctx context.Context, workers int, opts ...Option) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	p := &Pool{
		workers: workers,
		onPanic: func(error) {},
		ctx:     gctx,
		group:   g,
		wake:    make(chan struct{}, workers),
	}
	for _, opt := range opts {
		opt(p)
	}

	for range workers {
		g.Go(p.work)
	}
	return p
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}

// Submit enqueues job without blocking.
func (p *Pool) Submit(job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return domain.ErrPoolClosed
	}
	p.queue = append(p.queue, job)

	select {
	case p.wake <- struct{}{}:
	default:
	}
	return nil
}

// Clear drops all jobs that have not started yet and returns how many were dropped.
// Running jobs are not interrupted.
func (p *Pool) Clear() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := len(p.queue)
	clear(p.queue)
	p.queue = p.queue[:0]
	return n
}

// Pending returns the number of queued jobs.
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Running returns the number of jobs currently executing.
func (p *Pool) Running() int {
	return int(p.running.Load())
}

// Close drops pending jobs, waits for running jobs to finish and stops the workers.
// Close is idempotent.
func (p *Pool) Close() error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		clear(p.queue)
		p.queue = nil
		close(p.wake)
	}
	p.mu.Unlock()

	if err := p.group.Wait(); err != nil {
		return zerr.Wrap(err, "worker pool stopped")
	}
	return nil
}

func (p *Pool) work() error {
	for {
		job, ok := p.next()
		if !ok {
			return nil
		}
		p.run(job)
	}
}

// next blocks until a job is available. It reports false once the pool is closed
// or its context is done.
func (p *Pool) next() (Job, bool) {
	for {
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			return nil, false
		}
		if len(p.queue) > 0 {
			job := p.queue[0]
			p.queue[0] = nil
			p.queue = p.queue[1:]
			p.mu.Unlock()
			return job, true
		}
		p.mu.Unlock()

		select {
		case <-p.wake:
		case <-p.ctx.Done():
			return nil, false
		}
	}
}

func (p *Pool) run(job Job) {
	p.running.Add(1)
	defer p.running.Add(-1)
	defer zerr.Defer(p.onPanic)

	job(p.ctx)
}
