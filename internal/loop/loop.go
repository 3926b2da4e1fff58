// Package loop implements the interactive frame loop: a raw-terminal input
// thread feeding a bounded channel, drained by a fixed-rate ticker that
// dispatches keys to the top of a screen stack and renders its result.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/keytrainer/keytrainer/internal/model"
)

// FPS is the render/dispatch tick rate.
const FPS = 24

// keyQueueCap bounds the input channel so a burst of pasted or buffered
// keystrokes cannot grow memory unbounded while the main loop is busy.
const keyQueueCap = 64

// Loop owns the screen stack and drives input dispatch and rendering.
// The callback fields let screens request new screens without the loop or
// screen packages importing each other's concrete constructors.
type Loop struct {
	stack  *Stack
	out    io.Writer
	in     *os.File
	keys   chan Key
	done   chan struct{}
	width  int
	height int

	menuFactory       func() Screen
	onThemeChange     func(name string)
	onStartSession    func(category string, wordTarget int) Screen
	onSessionComplete func(source string, analysis model.SessionAnalysis, keystrokes []model.Keystroke) Screen
	onRetry           func(source string) Screen
	onFocus           func(analysis model.SessionAnalysis) Screen
}

// New constructs a Loop rendering to stdout and reading raw keys from stdin.
func New(initial Screen) *Loop {
	return &Loop{
		stack: NewStack(initial),
		out:   os.Stdout,
		in:    os.Stdin,
		keys:  make(chan Key, keyQueueCap),
		done:  make(chan struct{}),
	}
}

// OnMenu registers the factory used to rebuild the menu screen for GoMenu
// and ChangeTheme actions.
func (l *Loop) OnMenu(f func() Screen) *Loop { l.menuFactory = f; return l }

// OnThemeChange registers a callback invoked before the menu is rebuilt for
// a ChangeTheme action.
func (l *Loop) OnThemeChange(f func(name string)) *Loop { l.onThemeChange = f; return l }

// OnStartSession registers the factory that builds a typing screen for a
// StartSession action.
func (l *Loop) OnStartSession(f func(category string, wordTarget int) Screen) *Loop {
	l.onStartSession = f
	return l
}

// OnSessionComplete registers the factory that builds a results screen (and
// persists the session) for a SessionComplete action.
func (l *Loop) OnSessionComplete(f func(source string, analysis model.SessionAnalysis, keystrokes []model.Keystroke) Screen) *Loop {
	l.onSessionComplete = f
	return l
}

// OnRetry registers the factory that rebuilds the last typing screen for a
// Retry action.
func (l *Loop) OnRetry(f func(source string) Screen) *Loop { l.onRetry = f; return l }

// OnFocus registers the factory that builds a focus-mode typing screen for
// a FocusFromResults action.
func (l *Loop) OnFocus(f func(analysis model.SessionAnalysis) Screen) *Loop { l.onFocus = f; return l }

// Run puts the terminal in raw mode, starts the input thread, and ticks the
// main loop until the stack empties or a screen requests quit. It restores
// the terminal before returning, even on panic.
func (l *Loop) Run() error {
	fd := int(l.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("loop: stdin is not a terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("loop: enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	l.width, l.height = termSize(l.in)

	go l.readInput()
	defer close(l.done)

	fmt.Fprint(l.out, "\x1b[?1049h\x1b[2J\x1b[H")
	defer fmt.Fprint(l.out, "\x1b[?1049l")

	ticker := time.NewTicker(time.Second / FPS)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return nil
		case <-ticker.C:
			if l.drainAndDispatch() {
				return nil
			}
			l.render()
			if l.stack.Empty() {
				return nil
			}
		}
	}
}

// drainAndDispatch empties the key channel without blocking, dispatching
// each key to the top screen in arrival order. Returns true if a quit was
// requested mid-drain.
func (l *Loop) drainAndDispatch() bool {
	for {
		select {
		case k := <-l.keys:
			if l.dispatch(k) {
				return true
			}
		default:
			return false
		}
	}
}

func (l *Loop) dispatch(k Key) (quit bool) {
	top := l.stack.Top()
	if top == nil {
		return true
	}
	action := top.HandleKey(k)
	if action == nil {
		return false
	}
	return l.applyAction(action)
}

func (l *Loop) applyAction(action *ScreenAction) (quit bool) {
	switch action.Kind {
	case ActionQuit:
		return true
	case ActionPop:
		l.stack.Pop()
	case ActionGoMenu:
		l.stack.ResetTo(l.menuFactory())
	case ActionChangeTheme:
		if l.onThemeChange != nil {
			l.onThemeChange(action.ThemeName)
		}
		l.stack.ResetTo(l.menuFactory())
	case ActionStartSession:
		if l.onStartSession != nil {
			l.stack.Push(l.onStartSession(action.Category, action.WordTarget))
		}
	case ActionSessionComplete:
		if l.onSessionComplete != nil {
			l.stack.Push(l.onSessionComplete(action.Source, action.Analysis, action.Keystrokes))
		}
	case ActionRetry:
		if l.onRetry != nil {
			l.stack.ResetTo(l.onRetry(action.Source))
		}
	case ActionFocusFromResults:
		if l.onFocus != nil {
			l.stack.ResetTo(l.onFocus(action.Analysis))
		}
	}
	return false
}

func (l *Loop) render() {
	frame := l.stack.Top()
	if frame == nil {
		return
	}
	fmt.Fprint(l.out, "\x1b[H")
	fmt.Fprint(l.out, frame.Render(l.width, l.height))
}

// readInput runs on its own goroutine for the life of the process; it
// blocks on raw stdin reads and decodes bytes into Keys, stopping when the
// Loop signals done or the read fails (terminal closed).
func (l *Loop) readInput() {
	r := bufio.NewReaderSize(l.in, 256)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		key := decodeKey(b, r)
		select {
		case l.keys <- key:
		case <-l.done:
			return
		}
	}
}

func termSize(f *os.File) (int, int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}
