package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/thumbs/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer wraps the Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program     *tea.Program
	model       *Model
	errCh       chan error
	onInterrupt func()
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// OnInterrupt registers fn to run when the user presses ctrl+c inside the program.
func (r *Renderer) OnInterrupt(fn func()) {
	r.onInterrupt = fn
}

// Start launches the program in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		if errors.Is(err, tea.ErrInterrupted) {
			if r.onInterrupt != nil {
				r.onInterrupt()
			}
			err = nil
		}
		r.errCh <- err
	}()
	return nil
}

// Stop signals the program to quit after rendering the final state.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the program has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnBatch forwards the batch to the model.
func (r *Renderer) OnBatch(batch domain.Batch) {
	r.program.Send(MsgBatch{Batch: batch})
}

// OnTaskStart forwards task start events to the model.
func (r *Renderer) OnTaskStart(spanID, name string, startTime time.Time) {
	r.program.Send(MsgTaskStart{SpanID: spanID, Name: name, StartTime: startTime})
}

// OnTaskComplete forwards task completion events to the model.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.program.Send(MsgTaskComplete{SpanID: spanID, EndTime: endTime, Err: err})
}

// OnCompletion forwards a completion to the model.
func (r *Renderer) OnCompletion(c domain.Completion) {
	r.program.Send(MsgCompletion{Completion: c})
}

// Program returns the underlying tea.Program.
func (r *Renderer) Program() *tea.Program {
	return r.program
}
