package tui_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.trai.ch/thumbs/internal/adapters/tui"
	"go.trai.ch/thumbs/internal/core/domain"
)

func newTestRenderer(model *tui.Model) *tui.Renderer {
	return tui.NewRenderer(
		model,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)
}

func TestRenderer_Lifecycle(t *testing.T) {
	model := tui.NewModel(io.Discard)
	renderer := newTestRenderer(model)

	require.NoError(t, renderer.Start(context.Background()))

	now := time.Now()
	renderer.OnBatch(domain.Batch{Generation: 1, Size: 1})
	renderer.OnTaskStart("s1", "/p/a.png", now)
	renderer.OnTaskComplete("s1", now, nil)
	renderer.OnCompletion(domain.Completion{
		Generation: 1,
		Path:       "/p/a.png",
		Thumbnail:  domain.Thumbnail{Status: domain.StatusGenerated},
	})

	require.NoError(t, renderer.Stop())
	require.NoError(t, renderer.Wait())
}

func TestRenderer_OnInterrupt(t *testing.T) {
	model := tui.NewModel(io.Discard)
	renderer := newTestRenderer(model)

	interrupted := make(chan struct{})
	renderer.OnInterrupt(func() { close(interrupted) })

	require.NoError(t, renderer.Start(context.Background()))
	renderer.Program().Send(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NoError(t, renderer.Wait())
	select {
	case <-interrupted:
	case <-time.After(time.Second):
		t.Fatal("interrupt handler did not run")
	}
}
