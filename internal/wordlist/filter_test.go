package wordlist

import "testing"

func TestASCIILower(t *testing.T) {
	if !ASCIILower("hello") {
		t.Fatalf("expected hello to pass")
	}
	for _, word := range []string{"résumé", "naïve", "don’t", "co-op", ""} {
		if ASCIILower(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestFilter(t *testing.T) {
	in := []string{"hello", "co-op", "world", "résumé"}
	got := Filter(in, ASCIILower)
	want := []string{"hello", "world"}
	if len(got) != len(want) {
		t.Fatalf("Filter() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Filter()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
