// Package generator synthesises practice text: a category generator
// (words/sentences/quotes/code/numbers) and, in focus.go, a focus
// generator biased toward a user's recent weak spots.
package generator

import (
	"math/rand"
	"strings"
	"time"
)

// Category names accepted by Generate.
const (
	CategoryWords     = "words"
	CategorySentences = "sentences"
	CategoryQuotes    = "quotes"
	CategoryCode      = "code"
	CategoryNumbers   = "numbers"
)

// Generator produces randomized typing text from fixed built-in pools. A
// custom word pool loaded via UseWordList overrides CommonWords for the
// "words" category only; every other category is always built-in.
type Generator struct {
	rnd       *rand.Rand
	wordsPool []string
}

// New returns a Generator seeded with the current time and the built-in
// word pool.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano())), wordsPool: CommonWords}
}

// UseWordList replaces the "words" category's source pool. Passing an
// empty slice reverts to CommonWords.
func (g *Generator) UseWordList(words []string) {
	if len(words) == 0 {
		g.wordsPool = CommonWords
		return
	}
	g.wordsPool = words
}

// Generate returns a single-line, lower-case, space-separated string for
// category with approximately wordTarget tokens. For "words", tokens are
// drawn with wraparound from the common-word pool until wordTarget is
// reached; other categories draw whole sentences/snippets and stop once
// the accumulated token count meets or exceeds wordTarget.
func (g *Generator) Generate(category string, wordTarget int) string {
	switch category {
	case CategoryWords:
		return g.wordsText(wordTarget)
	case CategorySentences:
		return g.poolText(Sentences, wordTarget)
	case CategoryQuotes:
		return g.poolText(Quotes, wordTarget)
	case CategoryCode:
		return strings.ToLower(g.poolText(CodeSnippets, wordTarget))
	case CategoryNumbers:
		return g.poolText(Numbers, wordTarget)
	default:
		return g.poolText(Sentences, wordTarget)
	}
}

func (g *Generator) wordsText(wordTarget int) string {
	if wordTarget <= 0 {
		return ""
	}
	pool := g.shuffled(g.wordsPool)
	words := make([]string, 0, wordTarget)
	for len(words) < wordTarget {
		words = append(words, pool...)
	}
	return strings.Join(words[:wordTarget], " ")
}

// poolText shuffles pool and concatenates whole entries until the
// accumulated whitespace-separated token count reaches wordTarget.
func (g *Generator) poolText(pool []string, wordTarget int) string {
	shuffled := g.shuffled(pool)
	var b strings.Builder
	for _, entry := range shuffled {
		if countWords(b.String()) >= wordTarget {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(entry)
	}
	return strings.TrimSpace(b.String())
}

func (g *Generator) shuffled(pool []string) []string {
	out := make([]string, len(pool))
	copy(out, pool)
	g.rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func countWords(s string) int {
	return len(strings.Fields(s))
}
