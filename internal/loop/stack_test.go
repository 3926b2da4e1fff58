package loop

import "testing"

type stubScreen struct {
	id string
}

func (s *stubScreen) Render(width, height int) string { return s.id }
func (s *stubScreen) HandleKey(k Key) *ScreenAction    { return nil }

func TestStackPushMakesNewScreenTop(t *testing.T) {
	a, b := &stubScreen{id: "a"}, &stubScreen{id: "b"}
	s := NewStack(a)
	s.Push(b)
	if s.Top() != Screen(b) {
		t.Fatalf("Top() = %v, want b", s.Top())
	}
}

func TestStackPushNilIsNoop(t *testing.T) {
	a := &stubScreen{id: "a"}
	s := NewStack(a)
	s.Push(nil)
	if s.Top() != Screen(a) {
		t.Fatalf("Top() = %v, want a unchanged", s.Top())
	}
}

func TestStackPopReturnsToPrevious(t *testing.T) {
	a, b := &stubScreen{id: "a"}, &stubScreen{id: "b"}
	s := NewStack(a)
	s.Push(b)
	s.Pop()
	if s.Top() != Screen(a) {
		t.Fatalf("Top() after Pop = %v, want a", s.Top())
	}
}

func TestStackPopOnLastScreenIsNoop(t *testing.T) {
	a := &stubScreen{id: "a"}
	s := NewStack(a)
	s.Pop()
	if s.Top() != Screen(a) {
		t.Fatalf("Top() after Pop on sole screen = %v, want a kept", s.Top())
	}
	if s.Empty() {
		t.Fatalf("Empty() = true, want the last screen kept")
	}
}

func TestStackResetToClearsEverythingBelow(t *testing.T) {
	a, b, c := &stubScreen{id: "a"}, &stubScreen{id: "b"}, &stubScreen{id: "c"}
	s := NewStack(a)
	s.Push(b)
	s.ResetTo(c)
	if s.Top() != Screen(c) {
		t.Fatalf("Top() after ResetTo = %v, want c", s.Top())
	}
	s.Pop()
	if s.Top() != Screen(c) {
		t.Fatalf("Pop() after ResetTo should be a no-op on the sole screen, got %v", s.Top())
	}
}

func TestStackResetToNilIsNoop(t *testing.T) {
	a := &stubScreen{id: "a"}
	s := NewStack(a)
	s.ResetTo(nil)
	if s.Top() != Screen(a) {
		t.Fatalf("Top() = %v, want a unchanged", s.Top())
	}
}
