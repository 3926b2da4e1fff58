package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keytrainer/keytrainer/internal/loop"
	"github.com/keytrainer/keytrainer/internal/model"
	"github.com/keytrainer/keytrainer/internal/render"
)

// Results is the comprehensive post-session report: performance, WPM
// history, keyboard heatmap, top mistakes, slow transitions, problem keys,
// and a focus-mode suggestion.
type Results struct {
	Theme      model.Theme
	Analysis   model.SessionAnalysis
	Source     string
	PBWpm      float64
	Keystrokes []model.Keystroke
}

func (r *Results) section(label string) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(r.Theme.Secondary))
	return style.Render("  > " + label)
}

func (r *Results) Render(width, height int) string {
	t := r.Theme
	a := r.Analysis
	var b strings.Builder

	primary := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Primary))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(t.TextMuted))
	secondary := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary))

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, primary.Render("  SESSION COMPLETE")))
	b.WriteString("\n\n")

	b.WriteString(r.section("PERFORMANCE"))
	b.WriteString("\n")
	pbDelta := a.WPM - r.PBWpm
	pbStr := fmt.Sprintf("  (PB: %.1f)", r.PBWpm)
	pbStyle := muted
	if pbDelta > 0 {
		pbStr = fmt.Sprintf("  +%.1f new PB!", pbDelta)
		pbStyle = secondary
	}
	b.WriteString(primary.Render(fmt.Sprintf("  WPM    %6.1f  ", a.WPM)))
	b.WriteString(render.ProgressBar(minF(a.WPM/150, 1.0), 20, t.Primary, t.Dim))
	b.WriteString(pbStyle.Render(pbStr))
	b.WriteString("\n")

	accColor := t.Error
	switch {
	case a.Accuracy >= 95:
		accColor = t.Primary
	case a.Accuracy >= 85:
		accColor = t.Secondary
	}
	accStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accColor))
	b.WriteString(accStyle.Render(fmt.Sprintf("  Accuracy  %5.1f%%  ", a.Accuracy)))
	b.WriteString(render.ProgressBar(a.Accuracy/100, 20, accColor, t.Dim))
	b.WriteString("\n")

	mins := int(a.DurationSec) / 60
	secs := int(a.DurationSec) % 60
	b.WriteString(muted.Render(fmt.Sprintf("  %d:%02d   ·   %d chars   ·   %d errors", mins, secs, a.CharsTyped, a.TotalErrors)))
	b.WriteString("\n\n")

	if len(a.WPMBuckets) > 0 {
		b.WriteString(r.section("WPM OVER TIME"))
		b.WriteString("\n")
		for _, line := range render.WPMGraph(a.WPMBuckets, 5, t.GraphLine, t.Dim) {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n")
	}

	if len(r.Keystrokes) > 0 {
		b.WriteString(r.section("KEYBOARD HEATMAP"))
		b.WriteString("\n")
		counts := render.CountsFromKeystrokes(r.Keystrokes)
		for _, line := range render.Heatmap(counts, t, true) {
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	if len(a.TopErrors) > 0 {
		b.WriteString(r.section("TOP MISTAKES"))
		b.WriteString("\n")
		errStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Error))
		for _, ep := range a.TopErrors {
			b.WriteString(errStyle.Render(fmt.Sprintf("  '%c'", ep.Expected)))
			b.WriteString(muted.Render(" <- typed "))
			b.WriteString(secondary.Render(fmt.Sprintf("'%c'", ep.Got)))
			b.WriteString(muted.Render(fmt.Sprintf("  x%d", ep.Count)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(a.SlowDigraphs) > 0 {
		b.WriteString(r.section("SLOW TRANSITIONS"))
		b.WriteString("\n")
		for _, dg := range a.SlowDigraphs {
			sign := ""
			color := t.Primary
			if dg.DeviationMs >= 0 {
				sign = "+"
				color = t.Error
			}
			b.WriteString(secondary.Render(fmt.Sprintf("  '%s'", dg.Digraph)))
			b.WriteString(muted.Render(fmt.Sprintf("  %5.0fms avg  ", dg.AvgMs)))
			devStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(devStyle.Render(fmt.Sprintf("  %s%.0fms vs avg", sign, dg.DeviationMs)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(a.ProblemKeys) > 0 {
		b.WriteString(r.section("PROBLEM KEYS"))
		b.WriteString("\n  ")
		keyStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color(t.Error))
		for _, k := range a.ProblemKeys {
			b.WriteString(keyStyle.Render(fmt.Sprintf(" %c ", k)))
			b.WriteString(" ")
		}
		b.WriteString("\n\n")
	}

	if len(a.SlowDigraphs) > 0 || len(a.ProblemKeys) > 0 {
		b.WriteString(primary.Render("  Focus suggestion: "))
		var parts []string
		if len(a.SlowDigraphs) > 0 {
			n := 2
			if len(a.SlowDigraphs) < n {
				n = len(a.SlowDigraphs)
			}
			var digraphs []string
			for _, dg := range a.SlowDigraphs[:n] {
				digraphs = append(digraphs, "'"+dg.Digraph+"'")
			}
			parts = append(parts, secondary.Render("digraphs "+strings.Join(digraphs, ", ")))
		}
		if len(a.ProblemKeys) > 0 {
			n := 3
			if len(a.ProblemKeys) < n {
				n = len(a.ProblemKeys)
			}
			var keys []string
			for _, k := range a.ProblemKeys[:n] {
				keys = append(keys, fmt.Sprintf("'%c'", k))
			}
			parts = append(parts, secondary.Render("keys "+strings.Join(keys, ", ")))
		}
		b.WriteString(strings.Join(parts, muted.Render("  ·  ")))
		b.WriteString("\n")
		b.WriteString(muted.Render("  Press f to launch focus practice now"))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim)).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n")
	actions := primary.Render("  r ") + muted.Render("retry    ") +
		primary.Render("f ") + muted.Render("focus    ") +
		primary.Render("m ") + muted.Render("menu    ") +
		primary.Render("q ") + muted.Render("quit")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, actions))

	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(t.Primary)).Padding(1, 2)
	return box.Render(b.String())
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func (r *Results) HandleKey(k loop.Key) *loop.ScreenAction {
	if k.Kind == loop.KeyEsc {
		return loop.GoMenu()
	}
	if k.Kind != loop.KeyRune {
		return nil
	}
	switch k.Rune {
	case 'r', 'R':
		return loop.Retry(r.Source)
	case 'f', 'F':
		return loop.FocusFromResults(r.Analysis)
	case 'm', 'M':
		return loop.GoMenu()
	case 'q', 'Q':
		return loop.Quit()
	}
	return nil
}
