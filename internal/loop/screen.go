package loop

import "github.com/keytrainer/keytrainer/internal/model"

// ActionKind discriminates the tagged ScreenAction variants a screen may
// hand back to the loop. No screen mutates the stack directly — only the
// loop interprets these tags.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionPop
	ActionQuit
	ActionStartSession
	ActionSessionComplete
	ActionRetry
	ActionGoMenu
	ActionChangeTheme
	ActionFocusFromResults
)

// ScreenAction is a tagged variant carrying whatever payload its Kind
// needs; unused fields are zero.
type ScreenAction struct {
	Kind       ActionKind
	Category   string                // StartSession
	WordTarget int                   // StartSession
	Source     string                // SessionComplete, Retry
	Analysis   model.SessionAnalysis // SessionComplete, FocusFromResults
	Keystrokes []model.Keystroke     // SessionComplete, for the heatmap and ghost timings
	ThemeName  string                // ChangeTheme
}

// Pop requests the loop pop the top screen.
func Pop() *ScreenAction { return &ScreenAction{Kind: ActionPop} }

// Quit requests the loop stop.
func Quit() *ScreenAction { return &ScreenAction{Kind: ActionQuit} }

// StartSession requests a new typing screen for category/wordTarget be pushed.
func StartSession(category string, wordTarget int) *ScreenAction {
	return &ScreenAction{Kind: ActionStartSession, Category: category, WordTarget: wordTarget}
}

// SessionComplete reports a finished session's analysis and raw keystrokes
// for persistence and navigation to the results screen.
func SessionComplete(source string, analysis model.SessionAnalysis, keystrokes []model.Keystroke) *ScreenAction {
	return &ScreenAction{Kind: ActionSessionComplete, Source: source, Analysis: analysis, Keystrokes: keystrokes}
}

// Retry requests the same source be practiced again.
func Retry(source string) *ScreenAction {
	return &ScreenAction{Kind: ActionRetry, Source: source}
}

// GoMenu requests the stack be cleared back to the menu.
func GoMenu() *ScreenAction { return &ScreenAction{Kind: ActionGoMenu} }

// ChangeTheme requests the active theme be swapped.
func ChangeTheme(name string) *ScreenAction {
	return &ScreenAction{Kind: ActionChangeTheme, ThemeName: name}
}

// FocusFromResults requests a focus-mode session seeded from analysis.
func FocusFromResults(analysis model.SessionAnalysis) *ScreenAction {
	return &ScreenAction{Kind: ActionFocusFromResults, Analysis: analysis}
}

// Screen is the two-method contract every pushed screen implements.
type Screen interface {
	// Render returns the current frame as a styled string. Pure w.r.t. the
	// screen's own state; may observe the clock.
	Render(width, height int) string
	// HandleKey processes one key and optionally returns an action for the
	// loop to apply.
	HandleKey(k Key) *ScreenAction
}
