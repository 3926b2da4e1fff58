// Package render holds the pure data-to-styled-line render components:
// progress bar, stats bar, WPM graph, and keyboard heatmap.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keytrainer/keytrainer/internal/model"
)

// ProgressBar renders a single line of `progress*width` filled blocks
// followed by empty blocks, width total.
func ProgressBar(progress float64, width int, fillColour, emptyColour string) string {
	filled := int(progress * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	empty := width - filled
	fillStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(fillColour))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(emptyColour))
	return fillStyle.Render(strings.Repeat("█", filled)) + emptyStyle.Render(strings.Repeat("░", empty))
}

// StatsBar renders "{wpm:5.1f} wpm · {acc:5.1f}% · m:ss · <mini-bar> · {pct}%".
func StatsBar(wpm, accuracy, elapsedSec, progress float64, t model.Theme) string {
	mins := int(elapsedSec) / 60
	secs := int(elapsedSec) % 60

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(t.TextMuted))
	primaryBold := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Primary))
	secondaryBold := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Secondary))
	primary := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary))

	sep := muted.Render("   ·   ")

	filled := int(progress * 20)
	if filled < 0 {
		filled = 0
	}
	if filled > 20 {
		filled = 20
	}
	miniBar := primary.Render(strings.Repeat("▓", filled)) + muted.Render(strings.Repeat("░", 20-filled))

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(primaryBold.Render(fmt.Sprintf("%5.1f", wpm)))
	b.WriteString(muted.Render(" wpm"))
	b.WriteString(sep)
	b.WriteString(secondaryBold.Render(fmt.Sprintf("%5.1f", accuracy)))
	b.WriteString(muted.Render("%"))
	b.WriteString(sep)
	b.WriteString(muted.Render(fmt.Sprintf("%d:%02d", mins, secs)))
	b.WriteString(sep)
	b.WriteString(miniBar)
	b.WriteString(muted.Render(fmt.Sprintf("  %3d%%", int(progress*100))))
	return b.String()
}
