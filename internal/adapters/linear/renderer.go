// Package linear provides a synchronous, line-per-thumbnail renderer for CI environments.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/thumbs/internal/core/ports"
	"go.trai.ch/thumbs/internal/ui/output"
	"go.trai.ch/thumbs/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer for non-interactive environments.
// Completions go to stdout, batch headers and the summary to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	out    *termenv.Output
	errOut *termenv.Output
	now    func() time.Time

	mu       sync.Mutex
	started  time.Time
	inFlight map[string]time.Time
	counts   map[domain.Status]int
}

// NewRenderer creates a new Renderer. Nil writers select os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout:   stdout,
		stderr:   stderr,
		out:      output.NewWithProfile(stdout, output.ColorProfileANSI),
		errOut:   output.NewWithProfile(stderr, output.ColorProfileANSI),
		now:      time.Now,
		inFlight: make(map[string]time.Time),
		counts:   make(map[domain.Status]int),
	}
}

// Start records the start time used by the summary.
func (r *Renderer) Start(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.started = r.now()
	return nil
}

// Stop prints the summary line.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, n := range r.counts {
		total += n
	}
	if total == 0 {
		return nil
	}

	elapsed := r.now().Sub(r.started).Round(time.Millisecond)
	failed := r.counts[domain.StatusFailed] + r.counts[domain.StatusUnreadable]
	summary := fmt.Sprintf("%d generated, %d cached, %d failed in %v",
		r.counts[domain.StatusGenerated], r.counts[domain.StatusCached], failed, elapsed)
	if failed > 0 {
		summary = r.errOut.String(summary).Foreground(r.errOut.Color(string(style.Red))).String()
	}
	_, _ = fmt.Fprintln(r.stderr, summary)
	return nil
}

// Wait is a no-op, the renderer is synchronous.
func (r *Renderer) Wait() error {
	return nil
}

// OnBatch prints a header for the batch.
func (r *Renderer) OnBatch(batch domain.Batch) {
	r.mu.Lock()
	defer r.mu.Unlock()

	header := fmt.Sprintf("Batch %d: %d image(s) at %s size", batch.Generation, batch.Size, batch.Tier)
	if batch.Dropped > 0 {
		header += fmt.Sprintf(", %d pending dropped", batch.Dropped)
	}
	_, _ = fmt.Fprintln(r.stderr, r.errOut.String(header).Faint().String())
}

// OnTaskStart tracks the task as in flight.
func (r *Renderer) OnTaskStart(spanID, _ string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.inFlight[spanID] = startTime
}

// OnTaskComplete forgets the in-flight task.
func (r *Renderer) OnTaskComplete(spanID string, _ time.Time, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.inFlight, spanID)
}

// InFlight returns the number of tasks currently running.
func (r *Renderer) InFlight() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.inFlight)
}

// OnCompletion prints one line for the served path.
func (r *Renderer) OnCompletion(c domain.Completion) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counts[c.Status]++

	icon := r.out.String(style.StatusIcon(c.Status)).
		Foreground(r.out.Color(string(style.StatusColor(c.Status)))).
		String()

	switch {
	case c.Status.IsFailure() && c.Err != nil:
		_, _ = fmt.Fprintf(r.stdout, "%s %s (%s): %v\n", icon, c.Path, c.Status, c.Err)
	case c.Status.IsFailure():
		_, _ = fmt.Fprintf(r.stdout, "%s %s (%s)\n", icon, c.Path, c.Status)
	case c.Err != nil:
		_, _ = fmt.Fprintf(r.stdout, "%s %s %s %s (%s, not saved: %v)\n",
			icon, c.Path, style.Arrow, c.Location.Path, c.Status, c.Err)
	default:
		_, _ = fmt.Fprintf(r.stdout, "%s %s %s %s (%s)\n", icon, c.Path, style.Arrow, c.Location.Path, c.Status)
	}
}
