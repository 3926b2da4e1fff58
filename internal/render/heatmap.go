package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/keytrainer/keytrainer/internal/model"
)

var keyboardRows = [][]rune{
	[]rune("qwertyuiop"),
	[]rune("asdfghjkl"),
	[]rune("zxcvbnm"),
}

var rowIndent = []string{"", " ", "  "}

// brightness returns a block character for count relative to maxCount.
func brightness(count, maxCount int) string {
	if maxCount == 0 || count == 0 {
		return "░"
	}
	ratio := float64(count) / float64(maxCount)
	switch {
	case ratio >= 0.75:
		return "█"
	case ratio >= 0.5:
		return "▓"
	case ratio >= 0.25:
		return "▒"
	default:
		return "░"
	}
}

// Heatmap renders three QWERTY rows with row-indent plus a legend line,
// colouring each key by count/maxCount banding: 0 -> dim; <0.4 ->
// text_muted; <0.75 -> secondary; >=0.75 -> primary.
func Heatmap(counts map[rune]int, t model.Theme, showKeys bool) []string {
	maxCount := 1
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	var lines []string
	for rowIdx, row := range keyboardRows {
		var b strings.Builder
		b.WriteString("  " + rowIndent[rowIdx])
		for _, key := range row {
			cnt := counts[key]
			var colour string
			switch {
			case cnt == 0:
				colour = t.Dim
			case float64(cnt)/float64(maxCount) >= 0.75:
				colour = t.Primary
			case float64(cnt)/float64(maxCount) >= 0.4:
				colour = t.Secondary
			default:
				colour = t.TextMuted
			}
			style := lipgloss.NewStyle().Bold(showKeys).Foreground(lipgloss.Color(colour))
			if showKeys {
				b.WriteString(style.Render(string(unicode.ToUpper(key)) + " "))
			} else {
				b.WriteString(style.Render(brightness(cnt, maxCount) + " "))
			}
		}
		lines = append(lines, b.String())
	}

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(t.TextMuted))
	secondary := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary))
	primary := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary))

	legend := "  " +
		dim.Render("░ ") + muted.Render("rare  ") +
		muted.Render("▒ ") + muted.Render("medium  ") +
		secondary.Render("▓ ") + muted.Render("frequent  ") +
		primary.Render("█ ") + muted.Render("dominant")

	lines = append(lines, "", legend)
	return lines
}

// CountsFromKeystrokes derives heatmap counts from correct, alphabetic
// keystrokes.
func CountsFromKeystrokes(keys []model.Keystroke) map[rune]int {
	counts := map[rune]int{}
	for _, k := range keys {
		if !k.Correct {
			continue
		}
		lower := unicode.ToLower(k.Typed)
		if lower < 'a' || lower > 'z' {
			continue
		}
		counts[lower]++
	}
	return counts
}
