package engine

import (
	"testing"
	"time"

	"github.com/keytrainer/keytrainer/internal/clock"
	"github.com/keytrainer/keytrainer/internal/model"
)

func TestCleanRun(t *testing.T) {
	fc := clock.NewFake(time.Unix(0, 0))
	e := New("ab", fc)
	e.HandleChar('a')
	fc.Advance(100 * time.Millisecond)
	e.HandleChar('b')

	if e.State() != model.StateComplete {
		t.Fatalf("state = %v, want complete", e.State())
	}
	if e.Position() != 2 {
		t.Fatalf("position = %d, want 2", e.Position())
	}
	if acc := e.Accuracy(); acc != 100.0 {
		t.Fatalf("accuracy = %v, want 100.0", acc)
	}
	if got := e.Timeline().Len(); got != 2 {
		t.Fatalf("timeline len = %d, want 2", got)
	}
}

func TestStrictAdvanceOnError(t *testing.T) {
	fc := clock.NewFake(time.Unix(0, 0))
	e := New("ab", fc)
	e.HandleChar('x')
	fc.Advance(100 * time.Millisecond)
	e.HandleChar('a')
	fc.Advance(100 * time.Millisecond)
	e.HandleChar('b')

	ks := e.Timeline().Keystrokes()
	if len(ks) != 3 {
		t.Fatalf("timeline len = %d, want 3", len(ks))
	}
	if ks[0].Correct || ks[0].Expected != 'a' {
		t.Fatalf("first keystroke = %+v, want incorrect expecting 'a'", ks[0])
	}
	if e.Position() != 2 || e.State() != model.StateComplete {
		t.Fatalf("position=%d state=%v, want 2/complete", e.Position(), e.State())
	}
	acc := e.Accuracy()
	if want := 2.0 / 3.0 * 100; acc < want-0.01 || acc > want+0.01 {
		t.Fatalf("accuracy = %v, want ~%v", acc, want)
	}
}

func TestBackspace(t *testing.T) {
	fc := clock.NewFake(time.Unix(0, 0))
	e := New("abc", fc)
	e.HandleChar('a')
	e.HandleChar('b')
	e.HandleBackspace()
	e.HandleChar('b')
	e.HandleChar('c')

	if e.Position() != 3 || e.State() != model.StateComplete {
		t.Fatalf("position=%d state=%v, want 3/complete", e.Position(), e.State())
	}
	if got := e.Timeline().Len(); got != 4 {
		t.Fatalf("timeline len = %d, want 4 (backspace not appended)", got)
	}
	if e.HasError() {
		t.Fatalf("has_error should be false after clean completion")
	}
}

func TestNoAdvancePastComplete(t *testing.T) {
	fc := clock.NewFake(time.Unix(0, 0))
	e := New("a", fc)
	e.HandleChar('a')
	e.HandleChar('z')
	if e.Timeline().Len() != 1 {
		t.Fatalf("no-op expected once complete, timeline len = %d", e.Timeline().Len())
	}
}
