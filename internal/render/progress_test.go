package render

import (
	"strings"
	"testing"
)

func TestProgressBarFillRatio(t *testing.T) {
	out := ProgressBar(0.5, 10, "#FFFFFF", "#000000")
	if got := strings.Count(out, "█"); got != 5 {
		t.Fatalf("expected 5 filled blocks, got %d in %q", got, out)
	}
	if got := strings.Count(out, "░"); got != 5 {
		t.Fatalf("expected 5 empty blocks, got %d in %q", got, out)
	}
}

func TestProgressBarClampsOutOfRange(t *testing.T) {
	if got := strings.Count(ProgressBar(-1, 4, "#fff", "#000"), "█"); got != 0 {
		t.Fatalf("expected 0 filled blocks for negative progress, got %d", got)
	}
	if got := strings.Count(ProgressBar(2, 4, "#fff", "#000"), "█"); got != 4 {
		t.Fatalf("expected fully filled bar for progress > 1, got %d", got)
	}
}
