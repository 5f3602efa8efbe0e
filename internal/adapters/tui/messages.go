package tui

import (
	"time"

	"go.trai.ch/thumbs/internal/core/domain"
)

// MsgBatch announces a new batch.
type MsgBatch struct {
	Batch domain.Batch
}

// MsgTaskStart indicates a worker started serving a path.
type MsgTaskStart struct {
	SpanID    string
	Name      string
	StartTime time.Time
}

// MsgTaskComplete indicates a worker finished serving a path.
type MsgTaskComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
}

// MsgCompletion carries a delivered completion event.
type MsgCompletion struct {
	Completion domain.Completion
}
