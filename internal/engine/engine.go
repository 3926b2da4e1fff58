// Package engine implements the strict-mode typing state machine: the
// cursor advances only on a correct keystroke, and every press — correct
// or not — is timestamped and appended to the timeline.
package engine

import (
	"time"

	"github.com/keytrainer/keytrainer/internal/clock"
	"github.com/keytrainer/keytrainer/internal/model"
	"github.com/keytrainer/keytrainer/internal/timeline"
)

const rollingWindow = 5 * time.Second

// Engine drives one typing session against a fixed target text.
type Engine struct {
	clock         clock.Clock
	targetText    []rune
	position      int
	state         model.SessionState
	hasError      bool
	lastErrorChar rune
	timeline      *timeline.Timeline
}

// New constructs an Engine for targetText using clk as its time source.
func New(targetText string, clk clock.Clock) *Engine {
	return &Engine{
		clock:      clk,
		targetText: []rune(targetText),
		state:      model.StateIdle,
		timeline:   timeline.New(clk),
	}
}

// HandleChar processes one typed rune.
func (e *Engine) HandleChar(c rune) {
	if e.state == model.StateComplete {
		return
	}
	if e.state == model.StateIdle {
		e.state = model.StateRunning
	}
	if e.position >= len(e.targetText) {
		return
	}
	expected := e.targetText[e.position]
	now := e.clock.Now()
	correct := c == expected
	e.timeline.Append(model.Keystroke{
		Typed:     c,
		Expected:  expected,
		Timestamp: now,
		Correct:   correct,
		Position:  e.position,
	})
	if correct {
		e.position++
		e.hasError = false
		e.lastErrorChar = 0
		if e.position == len(e.targetText) {
			e.state = model.StateComplete
		}
		return
	}
	e.hasError = true
	e.lastErrorChar = c
}

// HandleBackspace moves the cursor back one position, if possible.
func (e *Engine) HandleBackspace() {
	if e.state == model.StateComplete {
		return
	}
	if e.position > 0 {
		e.position--
	}
	e.hasError = false
	e.lastErrorChar = 0
}

// Position returns the current cursor index.
func (e *Engine) Position() int { return e.position }

// State returns the current lifecycle state.
func (e *Engine) State() model.SessionState { return e.state }

// HasError reports whether the last keystroke at the cursor was incorrect.
func (e *Engine) HasError() bool { return e.hasError }

// LastErrorChar returns the most recently mistyped rune, or 0 if none.
func (e *Engine) LastErrorChar() rune { return e.lastErrorChar }

// TargetText returns the full target text.
func (e *Engine) TargetText() string { return string(e.targetText) }

// IsComplete reports whether the session has reached StateComplete.
func (e *Engine) IsComplete() bool { return e.state == model.StateComplete }

// Timeline returns the underlying keystroke timeline.
func (e *Engine) Timeline() *timeline.Timeline { return e.timeline }

// Progress returns position / max(1, len(target)).
func (e *Engine) Progress() float64 {
	n := len(e.targetText)
	if n == 0 {
		n = 1
	}
	return float64(e.position) / float64(n)
}

// WPM returns the rolling net WPM over the last 5 seconds.
func (e *Engine) WPM() float64 {
	return e.timeline.RollingWPM(rollingWindow)
}

// Accuracy returns the running accuracy percentage.
func (e *Engine) Accuracy() float64 {
	return e.timeline.Accuracy()
}

// Elapsed returns time since the first keystroke, or 0 before one exists.
func (e *Engine) Elapsed() time.Duration {
	return e.timeline.Elapsed()
}

// CharState classifies target-text rune i relative to the cursor.
func (e *Engine) CharState(i int) model.CharState {
	switch {
	case i < e.position:
		return model.CharTyped
	case i == e.position && e.hasError:
		return model.CharCursorError
	case i == e.position:
		return model.CharCursor
	default:
		return model.CharUpcoming
	}
}
