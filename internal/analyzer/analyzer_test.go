package analyzer

import (
	"testing"
	"time"

	"github.com/keytrainer/keytrainer/internal/clock"
	"github.com/keytrainer/keytrainer/internal/engine"
)

func TestErrorPairRanking(t *testing.T) {
	fc := clock.NewFake(time.Unix(0, 0))
	e := engine.New("hello", fc)
	for _, c := range []rune{'j', 'j', 'h', 'e', 'l', 'l', 'o'} {
		e.HandleChar(c)
		fc.Advance(50 * time.Millisecond)
	}
	a := Analyze(e.Timeline())
	if len(a.TopErrors) != 1 {
		t.Fatalf("top_errors len = %d, want 1", len(a.TopErrors))
	}
	got := a.TopErrors[0]
	if got.Expected != 'h' || got.Got != 'j' || got.Count != 2 {
		t.Fatalf("top error = %+v, want expected=h got=j count=2", got)
	}
}

func TestSlowDigraphSelection(t *testing.T) {
	fc := clock.NewFake(time.Unix(0, 0))
	e := engine.New("th the", fc)

	e.HandleChar('t')
	fc.Advance(400 * time.Millisecond)
	e.HandleChar('h')
	fc.Advance(100 * time.Millisecond)
	e.HandleChar(' ')
	fc.Advance(100 * time.Millisecond)
	e.HandleChar('t')
	fc.Advance(100 * time.Millisecond)
	e.HandleChar('h')
	fc.Advance(100 * time.Millisecond)
	e.HandleChar('e')

	a := Analyze(e.Timeline())
	if len(a.SlowDigraphs) == 0 {
		t.Fatalf("expected at least one slow digraph")
	}
	first := a.SlowDigraphs[0]
	if first.Digraph != "th" {
		t.Fatalf("first slow digraph = %q, want \"th\"", first.Digraph)
	}
	if first.DeviationMs <= 0 {
		t.Fatalf("deviation = %v, want positive", first.DeviationMs)
	}
	for _, d := range a.SlowDigraphs {
		if d.Digraph == " t" || d.Digraph == "h " {
			t.Fatalf("digraph %q should be excluded (only one sample across the space)", d.Digraph)
		}
	}
}
