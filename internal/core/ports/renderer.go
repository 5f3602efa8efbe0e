package ports

import (
	"context"
	"time"

	"go.trai.ch/thumbs/internal/core/domain"
)

// Renderer is the abstraction for output rendering.
// It decouples the pipeline from presentation, allowing the same event stream
// to drive either a progress TUI or linear CI logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and flush its output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error

	// OnBatch is called when a batch was submitted to the pipeline.
	OnBatch(batch domain.Batch)

	// OnTaskStart is called when a worker starts serving a path.
	OnTaskStart(spanID, name string, startTime time.Time)

	// OnTaskComplete is called when a worker is done with a path.
	OnTaskComplete(spanID string, endTime time.Time, err error)

	// OnCompletion is called once per delivered completion event.
	OnCompletion(c domain.Completion)
}
