package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// WPMGraph renders buckets as an ASCII line graph: one column per bucket,
// height rows, normalised between max(0, min_nonzero-5) and max. There is
// no width parameter; buckets are not resampled to fit a width. Points are
// filled "█"; consecutive columns are vertically connected. The left
// gutter shows interpolated integer y-labels; the x-axis is "└───→".
func WPMGraph(buckets []float64, height int, primaryColour, mutedColour string) []string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColour))
	primary := lipgloss.NewStyle().Foreground(lipgloss.Color(primaryColour))

	hasData := false
	for _, v := range buckets {
		if v != 0 {
			hasData = true
			break
		}
	}
	if len(buckets) == 0 || !hasData {
		line := muted.Render("  no data yet")
		lines := make([]string, height)
		for i := range lines {
			lines[i] = line
		}
		return lines
	}

	maxWPM := buckets[0]
	minNonzero := -1.0
	for _, v := range buckets {
		if v > maxWPM {
			maxWPM = v
		}
		if v > 0 && (minNonzero < 0 || v < minNonzero) {
			minNonzero = v
		}
	}
	if minNonzero < 0 {
		minNonzero = 0
	}
	minWPM := minNonzero - 5
	if minWPM < 0 {
		minWPM = 0
	}
	span := maxWPM - minWPM
	if span <= 0 {
		span = 1
	}

	rowFor := func(v float64) int {
		norm := (v - minWPM) / span
		r := int((1 - norm) * float64(height-1))
		if r < 0 {
			r = 0
		}
		if r > height-1 {
			r = height - 1
		}
		return r
	}

	grid := make([][]bool, height)
	for i := range grid {
		grid[i] = make([]bool, len(buckets))
	}
	for col, v := range buckets {
		r := rowFor(v)
		grid[r][col] = true
		if col > 0 {
			prevR := rowFor(buckets[col-1])
			lo, hi := r, prevR
			if lo > hi {
				lo, hi = hi, lo
			}
			for fillR := lo; fillR <= hi; fillR++ {
				grid[fillR][col] = true
			}
		}
	}

	lines := make([]string, 0, height+1)
	for rowIdx := 0; rowIdx < height; rowIdx++ {
		var denom float64 = 1
		if height > 1 {
			denom = float64(height - 1)
		}
		label := maxWPM - (float64(rowIdx)/denom)*(maxWPM-minWPM)
		var b strings.Builder
		b.WriteString(muted.Render(fmt.Sprintf("%3d│", int(label))))
		for col := range buckets {
			if grid[rowIdx][col] {
				b.WriteString(primary.Render("█"))
			} else {
				b.WriteString(" ")
			}
		}
		lines = append(lines, b.String())
	}

	xAxis := muted.Render("   └" + strings.Repeat("─", len(buckets)) + "→")
	lines = append(lines, xAxis)
	return lines
}
