package extcontent

import "testing"

func TestClean(t *testing.T) {
	in := "Hello world [1] café"
	got := clean(in)
	want := "hello world  caf"
	if got != want {
		t.Fatalf("clean(%q) = %q, want %q", in, got, want)
	}
}

func TestCleanCollapsesWhitespaceAndLowercases(t *testing.T) {
	got := clean("MIXED   Case\n\nText")
	want := "mixed case text"
	if got != want {
		t.Fatalf("clean = %q, want %q", got, want)
	}
}

func TestUnknownSourceFails(t *testing.T) {
	c, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Fetch("bogus", true); ok {
		t.Fatal("expected unknown source to fail")
	}
}
