// Package tui provides the interactive progress view for thumbnail batches.
package tui

import (
	"io"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/thumbs/internal/core/domain"
	"go.trai.ch/thumbs/internal/ui/output"
	"go.trai.ch/thumbs/internal/ui/style"
)

const (
	maxFailures = 5
	maxInFlight = 8
)

// Task is a path currently being served by a worker.
type Task struct {
	SpanID    string
	Name      string
	StartTime time.Time
}

// Model represents the progress view state.
type Model struct {
	Generation uint64
	Tier       domain.SizeTier
	Total      int
	Done       int
	Dropped    int
	Counts     map[domain.Status]int

	InFlight []*Task
	SpanMap  map[string]*Task

	// Failures holds the most recent failed completions, oldest first.
	Failures []domain.Completion

	Width  int
	Height int

	spinner spinner.Model
}

// NewModel creates a new model and applies the color profile for w.
func NewModel(w io.Writer) *Model {
	if w == nil {
		w = os.Stderr
	}
	lipgloss.SetColorProfile(output.New(w).Profile)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = runningStyle

	return &Model{
		Counts:  make(map[domain.Status]int),
		SpanMap: make(map[string]*Task),
		spinner: s,
	}
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Interrupt
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgBatch:
		m.handleBatch(msg.Batch)
	case MsgTaskStart:
		m.handleTaskStart(msg)
	case MsgTaskComplete:
		m.handleTaskComplete(msg)
	case MsgCompletion:
		m.handleCompletion(msg.Completion)
	}
	return m, nil
}

func (m *Model) handleBatch(b domain.Batch) {
	if b.Generation < m.Generation {
		return
	}
	m.Generation = b.Generation
	m.Tier = b.Tier
	m.Total = b.Size
	m.Dropped = b.Dropped
	m.Done = 0
	if m.Counts == nil {
		m.Counts = make(map[domain.Status]int)
	}
	clear(m.Counts)
}

func (m *Model) handleTaskStart(msg MsgTaskStart) {
	if m.SpanMap == nil {
		m.SpanMap = make(map[string]*Task)
	}
	task := &Task{SpanID: msg.SpanID, Name: msg.Name, StartTime: msg.StartTime}
	m.SpanMap[msg.SpanID] = task
	m.InFlight = append(m.InFlight, task)
}

func (m *Model) handleTaskComplete(msg MsgTaskComplete) {
	task, ok := m.SpanMap[msg.SpanID]
	if !ok {
		return
	}
	delete(m.SpanMap, msg.SpanID)
	m.InFlight = slices.DeleteFunc(m.InFlight, func(t *Task) bool { return t == task })
}

func (m *Model) handleCompletion(c domain.Completion) {
	if c.Generation != m.Generation {
		return
	}
	m.Done++
	m.Counts[c.Status]++
	if c.Status.IsFailure() {
		m.Failures = append(m.Failures, c)
		if len(m.Failures) > maxFailures {
			m.Failures = slices.Delete(m.Failures, 0, len(m.Failures)-maxFailures)
		}
	}
}

// Failed returns the number of failed items of the current batch.
func (m *Model) Failed() int {
	return m.Counts[domain.StatusFailed] + m.Counts[domain.StatusUnreadable]
}

func statusIcon(s domain.Status) string {
	return statusStyle(string(style.StatusColor(s))).Render(style.StatusIcon(s))
}
