package watcher

import (
	"slices"
	"sync"
	"time"
)

// maxWaitFactor bounds how long a steady stream of events can postpone a batch,
// in multiples of the quiet window.
const maxWaitFactor = 10

// Debouncer collects changed image paths and hands them over as one sorted batch
// once no new path arrived for the quiet window. A file that keeps changing, such as
// a slow copy, cannot hold the batch back for longer than the maximum wait.
type Debouncer struct {
	window   time.Duration
	maxWait  time.Duration
	callback func(paths []string)

	mu      sync.Mutex
	pending map[string]struct{}
	since   time.Time
	timer   *time.Timer
}

// DebouncerOption configures a Debouncer.
type DebouncerOption func(*Debouncer)

// WithMaxWait caps the delay between the first pending path and its delivery.
func WithMaxWait(d time.Duration) DebouncerOption {
	return func(db *Debouncer) {
		db.maxWait = d
	}
}

// NewDebouncer creates a Debouncer delivering batches to callback.
func NewDebouncer(window time.Duration, callback func(paths []string), opts ...DebouncerOption) *Debouncer {
	d := &Debouncer{
		window:   window,
		maxWait:  maxWaitFactor * window,
		callback: callback,
		pending:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Add records a changed path and restarts the quiet window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	if len(d.pending) == 0 {
		d.since = now
	}
	d.pending[path] = struct{}{}

	delay := d.window
	if deadline := d.since.Add(d.maxWait); now.Add(delay).After(deadline) {
		delay = max(deadline.Sub(now), 0)
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	d.timer = nil
	paths := d.takeLocked()
	d.mu.Unlock()

	if len(paths) > 0 && d.callback != nil {
		go d.callback(paths)
	}
}

// Flush delivers pending paths right away on the calling goroutine.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil && !d.timer.Stop() {
		// fire already owns the batch.
		d.mu.Unlock()
		return
	}
	d.timer = nil
	paths := d.takeLocked()
	d.mu.Unlock()

	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}

// Stop cancels the pending delivery and forgets collected paths.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	clear(d.pending)
}

func (d *Debouncer) takeLocked() []string {
	if len(d.pending) == 0 {
		return nil
	}
	paths := make([]string, 0, len(d.pending))
	for path := range d.pending {
		paths = append(paths, path)
	}
	clear(d.pending)
	slices.Sort(paths)
	return paths
}
