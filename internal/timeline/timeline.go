// Package timeline implements the append-only keystroke log and the
// rolling/final WPM and accuracy formulas derived from it.
package timeline

import (
	"math"
	"time"

	"github.com/keytrainer/keytrainer/internal/clock"
	"github.com/keytrainer/keytrainer/internal/model"
)

// Timeline is an ordered, append-only sequence of keystrokes plus the
// session start time. Timestamps are non-decreasing. Backspaces are never
// appended.
type Timeline struct {
	clock     clock.Clock
	StartTime time.Time
	started   bool
	keys      []model.Keystroke
}

// New constructs an empty Timeline bound to clk.
func New(clk clock.Clock) *Timeline {
	return &Timeline{clock: clk}
}

// Append records a keystroke. O(1), no deduplication.
func (t *Timeline) Append(k model.Keystroke) {
	if !t.started {
		t.StartTime = k.Timestamp
		t.started = true
	}
	t.keys = append(t.keys, k)
}

// Keystrokes returns the recorded keystrokes in encounter order.
func (t *Timeline) Keystrokes() []model.Keystroke {
	return t.keys
}

// Len returns the number of recorded keystrokes.
func (t *Timeline) Len() int {
	return len(t.keys)
}

// Elapsed returns time since StartTime, or 0 if the timeline hasn't started.
func (t *Timeline) Elapsed() time.Duration {
	if !t.started {
		return 0
	}
	return t.clock.Now().Sub(t.StartTime)
}

// RollingWPM computes net WPM over the trailing window.
func (t *Timeline) RollingWPM(window time.Duration) float64 {
	if !t.started {
		return 0
	}
	now := t.clock.Now()
	elapsed := now.Sub(t.StartTime)
	effective := elapsed
	if effective > window {
		effective = window
	}
	if effective < 500*time.Millisecond {
		return 0
	}
	cutoff := now.Add(-window)
	correct := 0
	for _, k := range t.keys {
		if k.Correct && !k.Timestamp.Before(cutoff) {
			correct++
		}
	}
	minutes := effective.Seconds() / 60
	return (float64(correct) / 5) / minutes
}

// FinalWPM computes net WPM over the full recorded session.
func (t *Timeline) FinalWPM() float64 {
	if !t.started {
		return 0
	}
	elapsed := t.Elapsed()
	if elapsed < time.Second {
		return 0
	}
	correct := 0
	for _, k := range t.keys {
		if k.Correct {
			correct++
		}
	}
	minutes := elapsed.Seconds() / 60
	return (float64(correct) / 5) / minutes
}

// Accuracy returns correct/max(1,total) * 100; 100.0 on an empty timeline.
func (t *Timeline) Accuracy() float64 {
	total := len(t.keys)
	if total == 0 {
		return 100.0
	}
	correct := 0
	for _, k := range t.keys {
		if k.Correct {
			correct++
		}
	}
	return float64(correct) * 100 / float64(total)
}

// WPMBuckets partitions [start, start+elapsed) into fixed-width buckets and
// returns the net WPM computed from correct keystrokes in each.
func (t *Timeline) WPMBuckets(bucketSec float64) []float64 {
	if !t.started {
		return nil
	}
	elapsed := t.Elapsed().Seconds()
	numBuckets := int(math.Floor(elapsed / bucketSec))
	if numBuckets < 1 {
		numBuckets = 1
	}
	counts := make([]int, numBuckets)
	for _, k := range t.keys {
		if !k.Correct {
			continue
		}
		offset := k.Timestamp.Sub(t.StartTime).Seconds()
		idx := int(offset / bucketSec)
		if idx < 0 {
			idx = 0
		}
		if idx >= numBuckets {
			idx = numBuckets - 1
		}
		counts[idx]++
	}
	buckets := make([]float64, numBuckets)
	for i, c := range counts {
		wpm := (float64(c) / 5) / (bucketSec / 60)
		buckets[i] = math.Round(wpm*10) / 10
	}
	return buckets
}
