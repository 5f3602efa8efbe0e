package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/thumbs/internal/adapters/detector"
	"go.trai.ch/thumbs/internal/adapters/linear"
	"go.trai.ch/thumbs/internal/adapters/tui"
	"go.trai.ch/thumbs/internal/core/ports"
)

// newRenderer picks the TUI or the linear renderer. cancel is invoked when the user interrupts the TUI.
func (a *App) newRenderer(outputMode string, cancel context.CancelFunc) ports.Renderer {
	mode := detector.ResolveMode(detector.DetectEnvironment(), outputMode)
	if mode != detector.ModeTUI {
		return linear.NewRenderer(a.stdout, a.stderr)
	}

	model := tui.NewModel(a.stderr)
	opts := append([]tea.ProgramOption{tea.WithOutput(a.stderr)}, a.teaOptions...)
	r := tui.NewRenderer(model, opts...)
	r.OnInterrupt(cancel)
	return r
}
