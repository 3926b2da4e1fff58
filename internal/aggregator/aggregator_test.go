package aggregator

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/keytrainer/keytrainer/internal/model"
)

type fakeStore struct {
	focusData   model.FocusData
	focusErr    error
	timings     map[string][]int
	timingsErr  error
	bestWPM     map[string]float64
	bestWPMErr  error
}

func (f *fakeStore) FocusData(ctx context.Context, nSessions int) (model.FocusData, error) {
	return f.focusData, f.focusErr
}

func (f *fakeStore) GhostTimings(ctx context.Context, source string) ([]int, error) {
	if f.timingsErr != nil {
		return nil, f.timingsErr
	}
	return f.timings[source], nil
}

func (f *fakeStore) BestWPMFor(ctx context.Context, source string) (float64, error) {
	if f.bestWPMErr != nil {
		return 0, f.bestWPMErr
	}
	return f.bestWPM[source], nil
}

func TestGhostForBundlesTimingsAndBestWPM(t *testing.T) {
	fs := &fakeStore{
		timings: map[string][]int{"sentences": {100, 200}},
		bestWPM: map[string]float64{"sentences": 72.5},
	}
	a := New(fs)

	race, err := a.GhostFor(context.Background(), "sentences")
	if err != nil {
		t.Fatalf("GhostFor() error = %v", err)
	}
	if race.Source != "sentences" {
		t.Fatalf("Source = %q, want sentences", race.Source)
	}
	if race.BestWPM != 72.5 {
		t.Fatalf("BestWPM = %v, want 72.5", race.BestWPM)
	}
	if len(race.Timings) != 2 {
		t.Fatalf("Timings = %v, want len 2", race.Timings)
	}
	if race.ID == (uuid.UUID{}) {
		t.Fatalf("expected a non-zero correlation id")
	}
}

func TestGhostForPropagatesTimingsError(t *testing.T) {
	fs := &fakeStore{timingsErr: errors.New("boom")}
	a := New(fs)
	if _, err := a.GhostFor(context.Background(), "words"); err == nil {
		t.Fatalf("expected error to propagate")
	}
}

func TestGhostForDistinctIDsAcrossCalls(t *testing.T) {
	fs := &fakeStore{timings: map[string][]int{"words": {50}}, bestWPM: map[string]float64{"words": 40}}
	a := New(fs)
	r1, _ := a.GhostFor(context.Background(), "words")
	r2, _ := a.GhostFor(context.Background(), "words")
	if r1.ID == r2.ID {
		t.Fatalf("expected distinct correlation ids across calls")
	}
}

func TestFocusDataDelegatesToStore(t *testing.T) {
	want := model.FocusData{WeakDigraphs: []string{"th"}, ProblemChars: []rune{'q'}}
	fs := &fakeStore{focusData: want}
	a := New(fs)
	got, err := a.FocusData(context.Background(), 10)
	if err != nil {
		t.Fatalf("FocusData() error = %v", err)
	}
	if len(got.WeakDigraphs) != 1 || got.WeakDigraphs[0] != "th" {
		t.Fatalf("FocusData() = %+v, want %+v", got, want)
	}
}
