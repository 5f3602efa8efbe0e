package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/thumbs/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.White)

	subtleStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	barFilledStyle = lipgloss.NewStyle().
			Foreground(style.Iris)

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	runningStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)
)

func statusStyle(s string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s))
}
