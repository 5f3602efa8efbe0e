// Package style holds the colors and icons shared by the renderers and the logger.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/thumbs/internal/core/domain"
)

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
	Arrow   = "→"
)

// StatusIcon returns the icon shown next to a served thumbnail.
func StatusIcon(s domain.Status) string {
	switch s {
	case domain.StatusCached:
		return Dot
	case domain.StatusGenerated:
		return Check
	case domain.StatusUnreadable:
		return Warning
	default:
		return Cross
	}
}

// StatusColor returns the color used for a thumbnail status.
func StatusColor(s domain.Status) lipgloss.Color {
	switch s {
	case domain.StatusCached:
		return Slate
	case domain.StatusGenerated:
		return Green
	case domain.StatusUnreadable:
		return Yellow
	default:
		return Red
	}
}
