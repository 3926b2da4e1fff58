package loop

import "testing"

// recordingScreen hands back actions[call] the nth time HandleKey is
// invoked (nil once actions is exhausted) and counts calls.
type recordingScreen struct {
	id      string
	calls   int
	actions []*ScreenAction
}

func (s *recordingScreen) Render(width, height int) string { return s.id }

func (s *recordingScreen) HandleKey(k Key) *ScreenAction {
	idx := s.calls
	s.calls++
	if idx < len(s.actions) {
		return s.actions[idx]
	}
	return nil
}

func TestDrainAndDispatchFIFOOrder(t *testing.T) {
	a := &recordingScreen{id: "a"}
	l := New(a)
	l.keys <- Key{Kind: KeyRune, Rune: '1'}
	l.keys <- Key{Kind: KeyRune, Rune: '2'}
	l.keys <- Key{Kind: KeyRune, Rune: '3'}

	if quit := l.drainAndDispatch(); quit {
		t.Fatalf("drainAndDispatch() = true, want false")
	}
	if a.calls != 3 {
		t.Fatalf("a.calls = %d, want 3 (all three queued keys dispatched)", a.calls)
	}
}

func TestDrainAndDispatchSendsQueuedKeysToNewTopOfStack(t *testing.T) {
	a := &recordingScreen{id: "a", actions: []*ScreenAction{StartSession("words", 10)}}
	b := &recordingScreen{id: "b"}
	l := New(a)
	l.OnStartSession(func(category string, wordTarget int) Screen {
		if category != "words" || wordTarget != 10 {
			t.Fatalf("onStartSession got (%q, %d), want (words, 10)", category, wordTarget)
		}
		return b
	})

	l.keys <- Key{Kind: KeyRune, Rune: 'x'} // dispatched to a, pushes b
	l.keys <- Key{Kind: KeyRune, Rune: 'y'} // must go to the new top, b

	if quit := l.drainAndDispatch(); quit {
		t.Fatalf("drainAndDispatch() = true, want false")
	}
	if a.calls != 1 {
		t.Fatalf("a.calls = %d, want 1", a.calls)
	}
	if b.calls != 1 {
		t.Fatalf("b.calls = %d, want 1 (second queued key should reach the newly pushed screen)", b.calls)
	}
	if l.stack.Top() != Screen(b) {
		t.Fatalf("stack.Top() = %v, want b", l.stack.Top())
	}
}

func TestDrainAndDispatchQuitDiscardsRemainingQueuedKeys(t *testing.T) {
	a := &recordingScreen{id: "a", actions: []*ScreenAction{Quit()}}
	l := New(a)
	l.keys <- Key{Kind: KeyRune, Rune: '1'}
	l.keys <- Key{Kind: KeyRune, Rune: '2'}
	l.keys <- Key{Kind: KeyRune, Rune: '3'}

	if quit := l.drainAndDispatch(); !quit {
		t.Fatalf("drainAndDispatch() = false, want true on quit")
	}
	if a.calls != 1 {
		t.Fatalf("a.calls = %d, want 1 (remaining queued keys must be discarded once quit is requested)", a.calls)
	}
}

func TestDispatchOnEmptyStackRequestsQuit(t *testing.T) {
	a := &stubScreen{id: "a"}
	l := New(a)
	l.stack = &Stack{}
	if quit := l.dispatch(Key{Kind: KeyRune, Rune: 'x'}); !quit {
		t.Fatalf("dispatch() on empty stack = false, want true")
	}
}

func TestApplyActionPopRemovesTopScreen(t *testing.T) {
	a, b := &stubScreen{id: "a"}, &stubScreen{id: "b"}
	l := New(a)
	l.stack.Push(b)
	if quit := l.applyAction(Pop()); quit {
		t.Fatalf("applyAction(Pop) = true, want false")
	}
	if l.stack.Top() != Screen(a) {
		t.Fatalf("stack.Top() after Pop = %v, want a", l.stack.Top())
	}
}

func TestApplyActionGoMenuResetsStackViaFactory(t *testing.T) {
	a, menu := &stubScreen{id: "a"}, &stubScreen{id: "menu"}
	l := New(a)
	l.OnMenu(func() Screen { return menu })
	if quit := l.applyAction(GoMenu()); quit {
		t.Fatalf("applyAction(GoMenu) = true, want false")
	}
	if l.stack.Top() != Screen(menu) {
		t.Fatalf("stack.Top() after GoMenu = %v, want menu", l.stack.Top())
	}
}

func TestApplyActionChangeThemeInvokesCallbackAndResetsToMenu(t *testing.T) {
	a, menu := &stubScreen{id: "a"}, &stubScreen{id: "menu"}
	l := New(a)
	l.OnMenu(func() Screen { return menu })
	var gotName string
	l.OnThemeChange(func(name string) { gotName = name })

	if quit := l.applyAction(ChangeTheme("nord")); quit {
		t.Fatalf("applyAction(ChangeTheme) = true, want false")
	}
	if gotName != "nord" {
		t.Fatalf("onThemeChange got %q, want nord", gotName)
	}
	if l.stack.Top() != Screen(menu) {
		t.Fatalf("stack.Top() after ChangeTheme = %v, want menu", l.stack.Top())
	}
}

func TestApplyActionQuitReturnsTrue(t *testing.T) {
	l := New(&stubScreen{id: "a"})
	if quit := l.applyAction(Quit()); !quit {
		t.Fatalf("applyAction(Quit) = false, want true")
	}
}
