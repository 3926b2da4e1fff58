// Package app wires the loop, screens, generator, store, and aggregator
// into the running program: the loop never imports screens or vice versa,
// so this package owns the callbacks that translate a ScreenAction into a
// concrete Screen.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/keytrainer/keytrainer/internal/aggregator"
	"github.com/keytrainer/keytrainer/internal/extcontent"
	"github.com/keytrainer/keytrainer/internal/generator"
	"github.com/keytrainer/keytrainer/internal/loop"
	"github.com/keytrainer/keytrainer/internal/model"
	"github.com/keytrainer/keytrainer/internal/screens"
	"github.com/keytrainer/keytrainer/internal/store"
	"github.com/keytrainer/keytrainer/internal/theme"
)

// externalCategories maps a menu category key to the extcontent source it
// fetches from; categories absent from this map are builtin/generator-only.
var externalCategories = map[string]string{
	"wikipedia": extcontent.SourceWikipedia,
	"quote-api": extcontent.SourceQuote,
}

// App holds the long-lived collaborators and the last-launched session so
// Retry can relaunch it without a fresh generation.
type App struct {
	Theme model.Theme
	Zen   bool

	gen   *generator.Generator
	store *store.Store
	agg   *aggregator.Aggregator
	ext   *extcontent.Client

	// logErrf reports a failure that the spec says to log and otherwise
	// swallow (e.g. a failed SaveSession); defaults to a no-op so App is
	// usable without a caller bothering to wire one up.
	logErrf func(format string, args ...any)

	lastCategory   string
	lastWordTarget int
	lastText       string
}

// New constructs an App with the given starting theme and collaborators.
func New(t model.Theme, zen bool, st *store.Store, ext *extcontent.Client) *App {
	return &App{
		Theme:          t,
		Zen:            zen,
		gen:            generator.New(),
		store:          st,
		agg:            aggregator.New(st),
		ext:            ext,
		logErrf:        func(string, ...any) {},
		lastCategory:   "sentences",
		lastWordTarget: 50,
	}
}

// OnError wires a logging callback for failures the spec says to log and
// otherwise swallow rather than surface to the player mid-session (e.g.
// cmd/keytrainer's logErrf, writing to stderr).
func (a *App) OnError(fn func(format string, args ...any)) {
	if fn == nil {
		fn = func(string, ...any) {}
	}
	a.logErrf = fn
}

// UseWordList replaces the "words" category's source pool with a
// user-supplied list, in place of the built-in common-word pool.
func (a *App) UseWordList(words []string) {
	a.gen.UseWordList(words)
}

// NewLoop builds a Loop seeded at the menu (or, if skipCategory is
// non-empty, straight into a typing session for that category) with all
// the action callbacks wired to this App's state.
func (a *App) NewLoop(skipCategory string, skipWordTarget int) *loop.Loop {
	var initial loop.Screen
	if skipCategory != "" {
		a.lastCategory = skipCategory
		a.lastWordTarget = skipWordTarget
		initial = a.buildTyping(skipCategory, skipWordTarget)
	} else {
		initial = a.buildMenu()
	}

	l := loop.New(initial)
	l.OnMenu(func() loop.Screen { return a.buildMenu() })
	l.OnThemeChange(func(name string) { a.Theme = theme.Get(name) })
	l.OnStartSession(func(category string, wordTarget int) loop.Screen {
		a.lastCategory = category
		a.lastWordTarget = wordTarget
		return a.buildTyping(category, wordTarget)
	})
	l.OnSessionComplete(func(source string, analysis model.SessionAnalysis, keystrokes []model.Keystroke) loop.Screen {
		return a.finishSession(source, analysis, keystrokes)
	})
	l.OnRetry(func(source string) loop.Screen {
		if a.lastText != "" {
			return screens.NewTyping(a.lastText, a.lastCategory, a.Theme, a.Zen, a.ghostTimings(a.lastCategory))
		}
		return a.buildTyping(a.lastCategory, a.lastWordTarget)
	})
	l.OnFocus(func(analysis model.SessionAnalysis) loop.Screen {
		n := 3
		if len(analysis.SlowDigraphs) < n {
			n = len(analysis.SlowDigraphs)
		}
		var digraphs []string
		for _, dg := range analysis.SlowDigraphs[:n] {
			digraphs = append(digraphs, dg.Digraph)
		}
		m := 3
		if len(analysis.ProblemKeys) < m {
			m = len(analysis.ProblemKeys)
		}
		text := a.gen.GenerateFocusText(digraphs, analysis.ProblemKeys[:m], a.lastWordTarget)
		a.lastCategory = "focus"
		a.lastText = text
		return screens.NewTyping(text, "focus", a.Theme, a.Zen, a.ghostTimings("focus"))
	})
	return l
}

func (a *App) buildMenu() loop.Screen {
	ctx := context.Background()
	statsLine := ""
	if stats, err := a.store.Stats(ctx); err == nil && stats.Total > 0 {
		statsLine = fmt.Sprintf("best %.0f wpm  ·  %.0f avg  ·  %d sessions", stats.BestWPM, stats.AvgWPM, stats.Total)
	}
	focusHint := ""
	if fd, err := a.agg.FocusData(ctx, 10); err == nil {
		focusHint = describeFocusHint(fd)
	}
	return screens.NewMenu(a.Theme, statsLine, focusHint)
}

func describeFocusHint(fd model.FocusData) string {
	if len(fd.WeakDigraphs) == 0 && len(fd.ProblemChars) == 0 {
		return ""
	}
	var parts []string
	if len(fd.WeakDigraphs) > 0 {
		n := 2
		if len(fd.WeakDigraphs) < n {
			n = len(fd.WeakDigraphs)
		}
		s := "digraphs: "
		for i, d := range fd.WeakDigraphs[:n] {
			if i > 0 {
				s += ", "
			}
			s += "'" + d + "'"
		}
		parts = append(parts, s)
	}
	if len(fd.ProblemChars) > 0 {
		n := 2
		if len(fd.ProblemChars) < n {
			n = len(fd.ProblemChars)
		}
		s := "keys: "
		for i, c := range fd.ProblemChars[:n] {
			if i > 0 {
				s += ", "
			}
			s += fmt.Sprintf("'%c'", c)
		}
		parts = append(parts, s)
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "  ·  "
		}
		out += p
	}
	return out
}

func (a *App) buildTyping(category string, wordTarget int) loop.Screen {
	text := a.loadText(category, wordTarget)
	a.lastText = text
	return screens.NewTyping(text, category, a.Theme, a.Zen, a.ghostTimings(category))
}

func (a *App) ghostTimings(source string) []int {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	race, err := a.agg.GhostFor(ctx, source)
	if err != nil {
		return nil
	}
	return race.Timings
}

// loadText resolves a category to practice text, falling back to builtin
// sentences when an external fetch or focus-data lookup fails.
func (a *App) loadText(category string, wordTarget int) string {
	ctx := context.Background()

	if category == "focus" {
		fd, err := a.agg.FocusData(ctx, 10)
		if err != nil {
			return a.gen.Generate(generator.CategorySentences, wordTarget)
		}
		return a.gen.GenerateFocusText(fd.WeakDigraphs, fd.ProblemChars, wordTarget)
	}

	if src, ok := externalCategories[category]; ok && a.ext != nil {
		if text, ok := a.ext.Fetch(src, true); ok {
			return text
		}
		return a.gen.Generate(generator.CategorySentences, wordTarget)
	}

	return a.gen.Generate(category, wordTarget)
}

// finishSession persists the completed session and returns the results
// screen, falling back to reporting the freshly-computed PB when the
// store read fails.
func (a *App) finishSession(source string, an model.SessionAnalysis, keystrokes []model.Keystroke) loop.Screen {
	ctx := context.Background()

	rec := model.SessionRecord{
		Timestamp:   time.Now(),
		Source:      source,
		WPM:         an.WPM,
		Accuracy:    an.Accuracy,
		DurationSec: an.DurationSec,
		CharsTyped:  an.CharsTyped,
		Errors:      an.ErrorLog,
		Timings:     timingsFromKeystrokes(keystrokes),
	}
	if _, err := a.store.SaveSession(ctx, rec); err != nil {
		a.logErrf("failed to save session: %v\n", err)
	}

	race, err := a.agg.GhostFor(ctx, source)
	pb := an.WPM
	if err == nil {
		pb = race.BestWPM
	}
	if an.WPM > pb {
		pb = an.WPM
	}

	return &screens.Results{
		Theme:      a.Theme,
		Analysis:   an,
		Source:     source,
		PBWpm:      pb,
		Keystrokes: keystrokes,
	}
}

// timingsFromKeystrokes builds the ms-between-corrects list the
// store persists for ghost-racer playback: one entry per correct keystroke
// after the first, each the elapsed ms since the previous correct one.
func timingsFromKeystrokes(keystrokes []model.Keystroke) []int {
	var timings []int
	var prev time.Time
	havePrev := false
	for _, k := range keystrokes {
		if !k.Correct {
			continue
		}
		if havePrev {
			ms := int(k.Timestamp.Sub(prev).Milliseconds())
			if ms < 0 {
				ms = 0
			}
			timings = append(timings, ms)
		}
		prev = k.Timestamp
		havePrev = true
	}
	return timings
}
