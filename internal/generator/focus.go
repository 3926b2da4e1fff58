package generator

import (
	"math"
	"sort"
	"strings"
)

// GenerateFocusText synthesises practice text biased toward weakDigraphs
// and problemChars: words are scored (+3 per contained weak digraph, +1
// per occurrence of each problem char), split into high/filler pools, and
// mixed 60/40 high-to-filler, sampled with replacement, then shuffled.
// Falls back to a shuffled sentence excerpt when both inputs are empty.
func (g *Generator) GenerateFocusText(weakDigraphs []string, problemChars []rune, wordTarget int) string {
	if len(weakDigraphs) == 0 && len(problemChars) == 0 {
		return g.poolText(Sentences, wordTarget)
	}

	type scoredWord struct {
		word  string
		score int
	}
	scored := make([]scoredWord, len(CommonWords))
	for i, w := range CommonWords {
		scored[i] = scoredWord{w, scoreWord(w, weakDigraphs, problemChars)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	var high, filler []string
	for _, sw := range scored {
		if sw.score > 0 {
			high = append(high, sw.word)
		} else {
			filler = append(filler, sw.word)
		}
	}
	if len(high) == 0 {
		high = filler
	}

	nHigh := int(math.Ceil(0.6 * float64(wordTarget)))
	if nHigh < 1 {
		nHigh = 1
	}
	if nHigh > wordTarget {
		nHigh = wordTarget
	}
	nFiller := wordTarget - nHigh

	selected := make([]string, 0, wordTarget)
	if len(high) > 0 {
		for i := 0; i < nHigh; i++ {
			selected = append(selected, high[g.rnd.Intn(len(high))])
		}
	}
	if len(filler) > 0 {
		for i := 0; i < nFiller; i++ {
			selected = append(selected, filler[g.rnd.Intn(len(filler))])
		}
	}

	g.rnd.Shuffle(len(selected), func(i, j int) { selected[i], selected[j] = selected[j], selected[i] })
	if len(selected) > wordTarget {
		selected = selected[:wordTarget]
	}
	return strings.Join(selected, " ")
}

// scoreWord scores word higher the more target patterns it contains.
func scoreWord(word string, digraphs []string, problemChars []rune) int {
	lower := strings.ToLower(word)
	score := 0
	for _, dg := range digraphs {
		if strings.Contains(lower, strings.ToLower(dg)) {
			score += 3
		}
	}
	for _, ch := range problemChars {
		score += strings.Count(lower, strings.ToLower(string(ch)))
	}
	return score
}

// DescribeFocus returns a one-line description of what will be practiced.
func DescribeFocus(weakDigraphs []string, problemChars []rune) string {
	var parts []string
	if len(weakDigraphs) > 0 {
		n := weakDigraphs
		if len(n) > 3 {
			n = n[:3]
		}
		quoted := make([]string, len(n))
		for i, d := range n {
			quoted[i] = "'" + d + "'"
		}
		parts = append(parts, "digraphs: "+strings.Join(quoted, ", "))
	}
	if len(problemChars) > 0 {
		n := problemChars
		if len(n) > 3 {
			n = n[:3]
		}
		quoted := make([]string, len(n))
		for i, c := range n {
			quoted[i] = "'" + string(c) + "'"
		}
		parts = append(parts, "keys: "+strings.Join(quoted, ", "))
	}
	if len(parts) == 0 {
		return "general practice"
	}
	return strings.Join(parts, "  ·  ")
}
