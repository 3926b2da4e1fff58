package generator

import (
	"math/rand"
	"strings"
	"testing"
)

func TestFocusBias(t *testing.T) {
	g := &Generator{rnd: rand.New(rand.NewSource(1))}
	base := &Generator{rnd: rand.New(rand.NewSource(1))}

	focused := g.GenerateFocusText([]string{"th"}, []rune{'q'}, 20)
	plain := base.GenerateFocusText(nil, nil, 20)

	focusedWords := strings.Fields(focused)
	if len(focusedWords) != 20 {
		t.Fatalf("focused word count = %d, want 20", len(focusedWords))
	}

	countMatches := func(s string) int {
		n := 0
		for _, w := range strings.Fields(s) {
			lw := strings.ToLower(w)
			if strings.Contains(lw, "th") || strings.Contains(lw, "q") {
				n++
			}
		}
		return n
	}

	if countMatches(focused) <= countMatches(plain) {
		t.Fatalf("focused matches (%d) should exceed plain matches (%d)", countMatches(focused), countMatches(plain))
	}
}

func TestFocusFallbackWhenInputsEmpty(t *testing.T) {
	g := New()
	text := g.GenerateFocusText(nil, nil, 10)
	if text == "" {
		t.Fatal("expected non-empty fallback text")
	}
}
