package clock

import (
	"testing"
	"time"
)

func TestFakeNowReturnsStartTime(t *testing.T) {
	start := time.Unix(1000, 0)
	fc := NewFake(start)
	if !fc.Now().Equal(start) {
		t.Fatalf("Now() = %v, want %v", fc.Now(), start)
	}
}

func TestFakeAdvanceMovesClockForward(t *testing.T) {
	fc := NewFake(time.Unix(0, 0))
	fc.Advance(5 * time.Second)
	want := time.Unix(5, 0)
	if !fc.Now().Equal(want) {
		t.Fatalf("Now() after Advance = %v, want %v", fc.Now(), want)
	}
	fc.Advance(-2 * time.Second)
	want = time.Unix(3, 0)
	if !fc.Now().Equal(want) {
		t.Fatalf("Now() after negative Advance = %v, want %v", fc.Now(), want)
	}
}

func TestFakeSetOverridesClock(t *testing.T) {
	fc := NewFake(time.Unix(0, 0))
	want := time.Unix(999, 0)
	fc.Set(want)
	if !fc.Now().Equal(want) {
		t.Fatalf("Now() after Set = %v, want %v", fc.Now(), want)
	}
}

func TestRealNowIsCurrent(t *testing.T) {
	before := time.Now()
	got := Real{}.Now()
	after := time.Now()
	if got.Before(before) || got.After(after) {
		t.Fatalf("Real.Now() = %v, want between %v and %v", got, before, after)
	}
}
