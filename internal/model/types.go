// Package model defines the data structures shared across the engine,
// analyzer, store, and render layers.
package model

import "time"

// SessionState is the typing engine's lifecycle state.
type SessionState int

const (
	// StateIdle means no keystroke has been recorded yet.
	StateIdle SessionState = iota
	// StateRunning means at least one keystroke has been recorded and the
	// target text is not yet fully typed.
	StateRunning
	// StateComplete means the target text has been fully and correctly typed.
	StateComplete
)

// String implements fmt.Stringer.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// CharState describes how a target-text rune should be rendered relative
// to the engine's cursor.
type CharState int

const (
	// CharTyped is a rune before the cursor.
	CharTyped CharState = iota
	// CharCursor is the rune at the cursor with no pending error.
	CharCursor
	// CharCursorError is the rune at the cursor while the last keystroke
	// at this position was incorrect.
	CharCursorError
	// CharUpcoming is a rune after the cursor.
	CharUpcoming
)

// Keystroke is an immutable record of one keypress against the target text.
// Position is the cursor index at the moment of the press, not after.
type Keystroke struct {
	Typed     rune
	Expected  rune
	Timestamp time.Time
	Correct   bool
	Position  int
}

// ErrorPair is one (expected, got) mismatch, with an occurrence count where
// aggregated.
type ErrorPair struct {
	Expected rune
	Got      rune
	Count    int
}

// SlowDigraph is a two-character transition whose typing interval deviates
// from the session average.
type SlowDigraph struct {
	Digraph       string
	AvgMs         float64
	DeviationMs   float64
	SampleCount   int
}

// SessionAnalysis is the derived, immutable result of analyzing a completed
// timeline.
type SessionAnalysis struct {
	WPM            float64
	Accuracy       float64
	DurationSec    float64
	CharsTyped     int
	TotalErrors    int
	TopErrors      []ErrorPair
	SlowDigraphs   []SlowDigraph
	ProblemKeys    []rune
	WPMBuckets     []float64
	ErrorLog       []ErrorPair
	ConsistencyScore float64
}

// Recommendations derives short, human-readable practice tips from the
// analysis. Additive to the spec's named fields; not persisted.
func (a SessionAnalysis) Recommendations() []string {
	var out []string
	if a.Accuracy < 90 {
		out = append(out, "accuracy is below 90% — slow down and prioritize correctness over speed")
	}
	if a.ConsistencyScore < 5 {
		out = append(out, "your pace varies a lot within sessions — try short, steady bursts")
	}
	if len(a.TopErrors) > 0 {
		e := a.TopErrors[0]
		out = append(out, "most missed key: expected '"+string(e.Expected)+"', typed '"+string(e.Got)+"' — drill this pair")
	}
	if len(a.SlowDigraphs) > 0 {
		out = append(out, "slowest transition: '"+a.SlowDigraphs[0].Digraph+"' — practice focus mode to target it")
	}
	if len(out) == 0 {
		out = append(out, "solid session — keep the streak going")
	}
	return out
}

// SessionRecord is a persisted session, stored as a single sessions row.
type SessionRecord struct {
	ID          int64
	Timestamp   time.Time
	Source      string
	WPM         float64
	Accuracy    float64
	DurationSec float64
	CharsTyped  int
	Errors      []ErrorPair
	Timings     []int
}

// FocusData holds the ranked weak spots derived from recent sessions,
// worst first.
type FocusData struct {
	WeakDigraphs []string
	ProblemChars []rune
}

// Theme is a frozen colour palette. Read-only after construction.
type Theme struct {
	Name       string
	Bg         string
	BgAlt      string
	Primary    string
	Secondary  string
	Error      string
	Dim        string
	Text       string
	TextMuted  string
	Progress   string
	GraphLine  string
}

// Config defines practice settings shared by CLI flags and the TOML file.
type Config struct {
	Theme       string
	Category    string
	Words       int
	Zen         bool
	FocusWeak   bool
	FocusWindow int
	FocusTop    int
	CurveWindow int
	ExtTimeoutSeconds float64
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Since       *time.Time
	Last        int
	CurveWindow int
}

// StoreSummary is the aggregate returned by the store's stats() operation.
type StoreSummary struct {
	Total       int
	BestWPM     float64
	AvgWPM      float64
	AvgAccuracy float64
	Recent      []SessionRecord
}
