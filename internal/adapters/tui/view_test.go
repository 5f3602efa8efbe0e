package tui_test

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/thumbs/internal/adapters/tui"
	"go.trai.ch/thumbs/internal/core/domain"
)

func TestView_Empty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	m := tui.NewModel(io.Discard)

	view := m.View()
	assert.Contains(t, view, "THUMBS")
	assert.Contains(t, view, strings.Repeat("░", 30)+" 0/0")
	assert.Contains(t, view, "0 generated · 0 cached · 0 failed")
}

func TestView_Progress(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	m := tui.NewModel(io.Discard)

	m = update(t, m, tea.WindowSizeMsg{Width: 32, Height: 24})
	m = update(t, m, tui.MsgBatch{Batch: domain.Batch{Generation: 2, Size: 4, Tier: domain.TierNormal, Dropped: 1}})
	m = update(t, m, completion(2, 0, "/p/a.png", domain.StatusGenerated))
	m = update(t, m, tui.MsgCompletion{Completion: domain.Completion{
		Generation: 2,
		Index:      1,
		Path:       "/p/b.png",
		Thumbnail:  domain.Thumbnail{Status: domain.StatusFailed, Err: domain.ErrDecodeUnsupported},
	}})
	m = update(t, m, tui.MsgTaskStart{SpanID: "s3", Name: "/p/c.png", StartTime: time.Now()})

	view := m.View()
	assert.Contains(t, view, "batch 2 · normal")
	assert.Contains(t, view, strings.Repeat("█", 10)+strings.Repeat("░", 10)+" 2/4")
	assert.Contains(t, view, "/p/c.png")
	assert.Contains(t, view, "FAILURES")
	assert.Contains(t, view, "✗ /p/b.png: unsupported or corrupt image")
	assert.Contains(t, view, "1 generated · 0 cached · 1 failed · 1 dropped")
}

func TestView_InFlightOverflow(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	m := tui.NewModel(io.Discard)

	for i := range 11 {
		m = update(t, m, tui.MsgTaskStart{SpanID: string(rune('a' + i)), Name: "/p/img.png", StartTime: time.Now()})
	}

	view := m.View()
	assert.Equal(t, 8, strings.Count(view, "/p/img.png"))
	assert.Contains(t, view, "… 3 more")
}
