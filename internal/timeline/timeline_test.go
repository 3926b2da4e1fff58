package timeline

import (
	"testing"
	"time"

	"github.com/keytrainer/keytrainer/internal/clock"
	"github.com/keytrainer/keytrainer/internal/model"
)

func TestAppendSetsStartTimeOnce(t *testing.T) {
	fc := clock.NewFake(time.Unix(0, 0))
	tl := New(fc)
	start := time.Unix(100, 0)
	tl.Append(model.Keystroke{Typed: 'a', Correct: true, Timestamp: start})
	tl.Append(model.Keystroke{Typed: 'b', Correct: true, Timestamp: start.Add(time.Second)})

	if !tl.StartTime.Equal(start) {
		t.Fatalf("StartTime = %v, want %v", tl.StartTime, start)
	}
	if tl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tl.Len())
	}
}

func TestAccuracyEmptyTimeline(t *testing.T) {
	tl := New(clock.NewFake(time.Unix(0, 0)))
	if acc := tl.Accuracy(); acc != 100.0 {
		t.Fatalf("Accuracy() on empty timeline = %v, want 100.0", acc)
	}
}

func TestAccuracyCountsOnlyCorrect(t *testing.T) {
	fc := clock.NewFake(time.Unix(0, 0))
	tl := New(fc)
	start := time.Unix(0, 0)
	tl.Append(model.Keystroke{Typed: 'a', Correct: true, Timestamp: start})
	tl.Append(model.Keystroke{Typed: 'x', Correct: false, Timestamp: start})
	tl.Append(model.Keystroke{Typed: 'b', Correct: true, Timestamp: start})

	if acc := tl.Accuracy(); acc != 200.0/3.0 {
		t.Fatalf("Accuracy() = %v, want %v", acc, 200.0/3.0)
	}
}

func TestFinalWPMRequiresAtLeastOneSecond(t *testing.T) {
	fc := clock.NewFake(time.Unix(0, 0))
	tl := New(fc)
	start := time.Unix(0, 0)
	tl.Append(model.Keystroke{Typed: 'a', Correct: true, Timestamp: start})
	fc.Set(start.Add(500 * time.Millisecond))
	if wpm := tl.FinalWPM(); wpm != 0 {
		t.Fatalf("FinalWPM() under 1s = %v, want 0", wpm)
	}

	fc.Set(start.Add(60 * time.Second))
	for i := 0; i < 4; i++ {
		tl.Append(model.Keystroke{Typed: 'a', Correct: true, Timestamp: start})
	}
	if wpm := tl.FinalWPM(); wpm != 1.0 {
		t.Fatalf("FinalWPM() = %v, want 1.0 (5 correct chars / 60s)", wpm)
	}
}

func TestWPMBucketsPartitionsByOffset(t *testing.T) {
	fc := clock.NewFake(time.Unix(0, 0))
	tl := New(fc)
	start := time.Unix(0, 0)
	tl.Append(model.Keystroke{Typed: 'a', Correct: true, Timestamp: start})
	tl.Append(model.Keystroke{Typed: 'b', Correct: true, Timestamp: start.Add(15 * time.Second)})
	fc.Set(start.Add(20 * time.Second))

	buckets := tl.WPMBuckets(10)
	if len(buckets) != 2 {
		t.Fatalf("WPMBuckets() len = %d, want 2", len(buckets))
	}
}
