package tui

import (
	"fmt"
	"strings"

	"go.trai.ch/thumbs/internal/core/domain"
)

const (
	defaultBarWidth = 30
	maxBarWidth     = 50
	barPadding      = 12
)

// View renders the UI.
func (m *Model) View() string {
	var s strings.Builder

	header := titleStyle.Render("THUMBS")
	if m.Generation > 0 {
		header += subtleStyle.Render(fmt.Sprintf(" batch %d · %s", m.Generation, m.Tier))
	}
	s.WriteString(header + "\n\n")

	s.WriteString(m.progressBar() + "\n")

	if len(m.InFlight) > 0 {
		s.WriteString("\n")
		shown := min(len(m.InFlight), maxInFlight)
		for _, task := range m.InFlight[:shown] {
			s.WriteString(m.spinner.View() + task.Name + "\n")
		}
		if rest := len(m.InFlight) - shown; rest > 0 {
			s.WriteString(subtleStyle.Render(fmt.Sprintf("  … %d more", rest)) + "\n")
		}
	}

	if len(m.Failures) > 0 {
		s.WriteString("\n" + failureTitleStyle.Render("FAILURES") + "\n")
		for _, c := range m.Failures {
			line := statusIcon(c.Status) + " " + c.Path
			if c.Err != nil {
				line += subtleStyle.Render(": " + c.Err.Error())
			}
			s.WriteString(line + "\n")
		}
	}

	s.WriteString("\n" + m.summary() + "\n")
	return s.String()
}

func (m *Model) progressBar() string {
	width := defaultBarWidth
	if m.Width > 0 {
		width = max(min(m.Width-barPadding, maxBarWidth), 1)
	}

	filled := 0
	if m.Total > 0 {
		filled = min(m.Done*width/m.Total, width)
	}

	bar := barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %d/%d", bar, m.Done, m.Total)
}

func (m *Model) summary() string {
	parts := []string{
		fmt.Sprintf("%d generated", m.Counts[domain.StatusGenerated]),
		fmt.Sprintf("%d cached", m.Counts[domain.StatusCached]),
		fmt.Sprintf("%d failed", m.Failed()),
	}
	if m.Dropped > 0 {
		parts = append(parts, fmt.Sprintf("%d dropped", m.Dropped))
	}
	return subtleStyle.Render(strings.Join(parts, " · "))
}
