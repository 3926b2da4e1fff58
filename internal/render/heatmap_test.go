package render

import (
	"testing"
	"time"

	"github.com/keytrainer/keytrainer/internal/model"
)

func TestCountsFromKeystrokesSkipsIncorrectAndNonAlpha(t *testing.T) {
	keys := []model.Keystroke{
		{Typed: 'a', Correct: true, Timestamp: time.Now()},
		{Typed: 'a', Correct: true, Timestamp: time.Now()},
		{Typed: 'b', Correct: false, Timestamp: time.Now()},
		{Typed: '5', Correct: true, Timestamp: time.Now()},
		{Typed: 'A', Correct: true, Timestamp: time.Now()},
	}
	counts := CountsFromKeystrokes(keys)
	if counts['a'] != 3 {
		t.Fatalf("expected 'a' count 3 (case-folded), got %d", counts['a'])
	}
	if counts['b'] != 0 {
		t.Fatalf("expected incorrect keystroke not counted, got %d", counts['b'])
	}
	if _, ok := counts['5']; ok {
		t.Fatalf("expected non-alphabetic keystroke skipped")
	}
}

func TestHeatmapRendersThreeRowsAndLegend(t *testing.T) {
	th := model.Theme{Dim: "#444", TextMuted: "#888", Secondary: "#aaa", Primary: "#fff"}
	lines := Heatmap(map[rune]int{'a': 5, 'q': 1}, th, false)
	if len(lines) != 5 {
		t.Fatalf("expected 3 rows + blank + legend = 5 lines, got %d", len(lines))
	}
}
