package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/keytrainer/keytrainer/internal/model"
)

func TestSaveAndReloadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s.Close() }()

	rec := model.SessionRecord{
		Source:      "words",
		WPM:         42.345,
		Accuracy:    91.5,
		DurationSec: 30.004,
		CharsTyped:  120,
		Errors:      []model.ErrorPair{{Expected: 'a', Got: 'q'}},
		Timings:     []int{100, 120, 95},
	}
	id, err := s.SaveSession(ctx, rec)
	if err != nil {
		t.Fatal(err)
	}

	summary, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Total != 1 {
		t.Fatalf("total = %d, want 1", summary.Total)
	}
	if len(summary.Recent) != 1 {
		t.Fatalf("recent len = %d, want 1", len(summary.Recent))
	}
	got := summary.Recent[0]
	if got.ID != id {
		t.Fatalf("id = %d, want %d", got.ID, id)
	}
	if got.WPM != 42.35 || got.Accuracy != 91.5 || got.DurationSec != 30.0 {
		t.Fatalf("rounded fields mismatch: %+v", got)
	}
	if got.CharsTyped != 120 {
		t.Fatalf("chars_typed = %d, want 120", got.CharsTyped)
	}
	if len(got.Errors) != 1 || got.Errors[0].Expected != 'a' || got.Errors[0].Got != 'q' {
		t.Fatalf("errors = %+v", got.Errors)
	}
	if len(got.Timings) != 3 {
		t.Fatalf("timings = %+v, want 3 entries", got.Timings)
	}
}

func TestFocusDataAggregatesAcrossSessions(t *testing.T) {
	ctx := context.Background()
	s, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s.Close() }()

	mk := func(errs ...model.ErrorPair) model.SessionRecord {
		return model.SessionRecord{Source: "words", WPM: 10, Accuracy: 80, DurationSec: 10, CharsTyped: 10, Errors: errs}
	}
	if _, err := s.SaveSession(ctx, mk(model.ErrorPair{Expected: 'h', Got: 'j'}, model.ErrorPair{Expected: 'e', Got: 'r'})); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveSession(ctx, mk(model.ErrorPair{Expected: 'h', Got: 'g'})); err != nil {
		t.Fatal(err)
	}

	fd, err := s.FocusData(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(fd.ProblemChars) == 0 || fd.ProblemChars[0] != 'h' {
		t.Fatalf("problem_chars = %v, want 'h' first", fd.ProblemChars)
	}
}

func TestGhostTimingsPicksBestWPM(t *testing.T) {
	ctx := context.Background()
	s, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s.Close() }()

	slow := model.SessionRecord{Source: "words", WPM: 30, Accuracy: 90, DurationSec: 10, CharsTyped: 10, Timings: []int{200, 200}}
	fast := model.SessionRecord{Source: "words", WPM: 80, Accuracy: 95, DurationSec: 10, CharsTyped: 10, Timings: []int{90, 95}}
	if _, err := s.SaveSession(ctx, slow); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveSession(ctx, fast); err != nil {
		t.Fatal(err)
	}

	timings, err := s.GhostTimings(ctx, "words")
	if err != nil {
		t.Fatal(err)
	}
	if len(timings) != 2 || timings[0] != 90 {
		t.Fatalf("ghost timings = %v, want best-WPM session's [90 95]", timings)
	}
}
