package tui_test

import (
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/thumbs/internal/adapters/tui"
	"go.trai.ch/thumbs/internal/core/domain"
)

func update(t *testing.T, m *tui.Model, msg tea.Msg) *tui.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	got, ok := updated.(*tui.Model)
	require.True(t, ok)
	return got
}

func completion(gen uint64, idx int, path string, status domain.Status) tui.MsgCompletion {
	return tui.MsgCompletion{Completion: domain.Completion{
		Generation: gen,
		Index:      idx,
		Path:       path,
		Thumbnail:  domain.Thumbnail{Status: status},
	}}
}

func TestModel_BatchProgress(t *testing.T) {
	m := tui.NewModel(io.Discard)

	m = update(t, m, tui.MsgBatch{Batch: domain.Batch{Generation: 1, Size: 3, Tier: domain.TierLarge}})
	assert.Equal(t, uint64(1), m.Generation)
	assert.Equal(t, 3, m.Total)
	assert.Equal(t, domain.TierLarge, m.Tier)

	m = update(t, m, completion(1, 0, "/p/a.png", domain.StatusGenerated))
	m = update(t, m, completion(1, 1, "/p/b.png", domain.StatusCached))
	m = update(t, m, completion(1, 2, "/p/c.png", domain.StatusFailed))

	assert.Equal(t, 3, m.Done)
	assert.Equal(t, 1, m.Counts[domain.StatusGenerated])
	assert.Equal(t, 1, m.Counts[domain.StatusCached])
	assert.Equal(t, 1, m.Failed())
	require.Len(t, m.Failures, 1)
	assert.Equal(t, "/p/c.png", m.Failures[0].Path)
}

func TestModel_StaleCompletionsIgnored(t *testing.T) {
	m := tui.NewModel(io.Discard)

	m = update(t, m, tui.MsgBatch{Batch: domain.Batch{Generation: 1, Size: 10}})
	m = update(t, m, completion(1, 0, "/p/a.png", domain.StatusGenerated))
	m = update(t, m, tui.MsgBatch{Batch: domain.Batch{Generation: 2, Size: 2, Dropped: 9}})

	assert.Equal(t, 0, m.Done)
	assert.Equal(t, 9, m.Dropped)
	assert.Empty(t, m.Counts)

	m = update(t, m, completion(1, 1, "/p/b.png", domain.StatusGenerated))
	assert.Equal(t, 0, m.Done)

	m = update(t, m, completion(2, 0, "/p/c.png", domain.StatusCached))
	assert.Equal(t, 1, m.Done)

	// An older batch announcement arriving late does not reset progress.
	m = update(t, m, tui.MsgBatch{Batch: domain.Batch{Generation: 1, Size: 10}})
	assert.Equal(t, uint64(2), m.Generation)
	assert.Equal(t, 1, m.Done)
}

func TestModel_InFlight(t *testing.T) {
	m := tui.NewModel(io.Discard)
	now := time.Now()

	m = update(t, m, tui.MsgTaskStart{SpanID: "s1", Name: "/p/a.png", StartTime: now})
	m = update(t, m, tui.MsgTaskStart{SpanID: "s2", Name: "/p/b.png", StartTime: now})
	require.Len(t, m.InFlight, 2)

	m = update(t, m, tui.MsgTaskComplete{SpanID: "s1", EndTime: now, Err: errors.New("boom")})
	require.Len(t, m.InFlight, 1)
	assert.Equal(t, "/p/b.png", m.InFlight[0].Name)
	assert.NotContains(t, m.SpanMap, "s1")

	m = update(t, m, tui.MsgTaskComplete{SpanID: "unknown", EndTime: now})
	assert.Len(t, m.InFlight, 1)
}

func TestModel_FailuresCapped(t *testing.T) {
	m := tui.NewModel(io.Discard)
	m = update(t, m, tui.MsgBatch{Batch: domain.Batch{Generation: 1, Size: 20}})

	for i := range 8 {
		m = update(t, m, completion(1, i, "/p/bad"+string(rune('a'+i))+".png", domain.StatusUnreadable))
	}

	require.Len(t, m.Failures, 5)
	assert.Equal(t, "/p/badd.png", m.Failures[0].Path)
	assert.Equal(t, "/p/badh.png", m.Failures[4].Path)
	assert.Equal(t, 8, m.Failed())
}

func TestModel_WindowSizeAndKeys(t *testing.T) {
	m := tui.NewModel(io.Discard)

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 80, m.Width)
	assert.Equal(t, 24, m.Height)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.InterruptMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
}

func TestModel_Init(t *testing.T) {
	m := tui.NewModel(io.Discard)
	assert.NotNil(t, m.Init())
}
