// Package analyzer reduces a completed keystroke timeline into a
// SessionAnalysis: error pairs, slow digraphs, problem keys, and a WPM
// history. The primary algorithm here follows the typing-trainer's own
// post-session analysis contract directly; the consistency score and
// recommendations are supplemental, ported from the reference tool's
// earlier (pre-rewrite) analyzer.
package analyzer

import (
	"math"
	"sort"

	"github.com/keytrainer/keytrainer/internal/model"
	"github.com/keytrainer/keytrainer/internal/timeline"
)

const (
	slowDigraphMinMs   = 0.0
	slowDigraphMaxMs   = 2000.0
	minDigraphSamples  = 2
	bucketSeconds      = 5.0
)

// Analyze derives a SessionAnalysis from a completed Timeline.
func Analyze(tl *timeline.Timeline) model.SessionAnalysis {
	keys := tl.Keystrokes()

	var correct, errors []model.Keystroke
	for _, k := range keys {
		if k.Correct {
			correct = append(correct, k)
		} else {
			errors = append(errors, k)
		}
	}

	topErrors := errorPairCounts(errors)
	slow := slowDigraphs(correct)
	problems := problemKeys(keys)
	buckets := tl.WPMBuckets(bucketSeconds)

	errorLog := make([]model.ErrorPair, 0, len(errors))
	for _, k := range errors {
		errorLog = append(errorLog, model.ErrorPair{Expected: k.Expected, Got: k.Typed})
	}

	analysis := model.SessionAnalysis{
		WPM:         round2(tl.FinalWPM()),
		Accuracy:    round2(tl.Accuracy()),
		DurationSec: round2(tl.Elapsed().Seconds()),
		CharsTyped:  len(keys),
		TotalErrors: len(errors),
		TopErrors:   topErrors,
		SlowDigraphs: slow,
		ProblemKeys: problems,
		WPMBuckets:  buckets,
		ErrorLog:    errorLog,
	}
	analysis.ConsistencyScore = consistencyScore(buckets)
	return analysis
}

// errorPairCounts counts (expected, got) mismatches and returns the top 5
// by count descending.
func errorPairCounts(errors []model.Keystroke) []model.ErrorPair {
	type key struct {
		expected, got rune
	}
	counts := map[key]int{}
	order := []key{}
	for _, k := range errors {
		kk := key{k.Expected, k.Typed}
		if _, ok := counts[kk]; !ok {
			order = append(order, kk)
		}
		counts[kk]++
	}
	pairs := make([]model.ErrorPair, 0, len(order))
	for _, kk := range order {
		pairs = append(pairs, model.ErrorPair{Expected: kk.expected, Got: kk.got, Count: counts[kk]})
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Count > pairs[j].Count })
	if len(pairs) > 5 {
		pairs = pairs[:5]
	}
	return pairs
}

// slowDigraphs buckets inter-keystroke intervals between consecutive
// correct keystrokes by the two-character transition, and ranks digraphs
// by how far their average deviates (slower) from the session overall
// average.
func slowDigraphs(correct []model.Keystroke) []model.SlowDigraph {
	type bucket struct {
		sumMs float64
		n     int
	}
	buckets := map[string]*bucket{}
	order := []string{}
	var overallSum float64
	var overallN int

	for i := 1; i < len(correct); i++ {
		prev, curr := correct[i-1], correct[i]
		if curr.Position != prev.Position+1 {
			continue
		}
		dtMs := curr.Timestamp.Sub(prev.Timestamp).Seconds() * 1000
		if dtMs <= slowDigraphMinMs || dtMs >= slowDigraphMaxMs {
			continue
		}
		dg := string(prev.Expected) + string(curr.Expected)
		b, ok := buckets[dg]
		if !ok {
			b = &bucket{}
			buckets[dg] = b
			order = append(order, dg)
		}
		b.sumMs += dtMs
		b.n++
		overallSum += dtMs
		overallN++
	}

	if overallN == 0 {
		return nil
	}
	overallAvg := overallSum / float64(overallN)

	digraphs := make([]model.SlowDigraph, 0, len(order))
	for _, dg := range order {
		b := buckets[dg]
		if b.n < minDigraphSamples {
			continue
		}
		avg := b.sumMs / float64(b.n)
		digraphs = append(digraphs, model.SlowDigraph{
			Digraph:     dg,
			AvgMs:       round2(avg),
			DeviationMs: round2(avg - overallAvg),
			SampleCount: b.n,
		})
	}
	sort.SliceStable(digraphs, func(i, j int) bool { return digraphs[i].DeviationMs > digraphs[j].DeviationMs })
	if len(digraphs) > 5 {
		digraphs = digraphs[:5]
	}
	return digraphs
}

// problemKeys ranks expected chars with at least one error by error rate
// descending.
func problemKeys(keys []model.Keystroke) []rune {
	errs := map[rune]int{}
	totals := map[rune]int{}
	order := []rune{}
	for _, k := range keys {
		if _, ok := totals[k.Expected]; !ok {
			order = append(order, k.Expected)
		}
		totals[k.Expected]++
		if !k.Correct {
			errs[k.Expected]++
		}
	}
	type scored struct {
		ch   rune
		rate float64
	}
	var candidates []scored
	for _, ch := range order {
		if errs[ch] == 0 {
			continue
		}
		total := totals[ch]
		if total < 1 {
			total = 1
		}
		candidates = append(candidates, scored{ch, float64(errs[ch]) / float64(total)})
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].rate > candidates[j].rate })
	out := make([]rune, 0, len(candidates))
	for i, c := range candidates {
		if i >= 5 {
			break
		}
		out = append(out, c.ch)
	}
	return out
}

// consistencyScore maps WPM-bucket variance onto a 0-10 scale, higher is
// steadier. Grounded on the reference tool's pre-rewrite analyzer.
func consistencyScore(buckets []float64) float64 {
	if len(buckets) < 2 {
		return 10
	}
	mean := 0.0
	for _, b := range buckets {
		mean += b
	}
	mean /= float64(len(buckets))
	if mean == 0 {
		return 10
	}
	var variance float64
	for _, b := range buckets {
		d := b - mean
		variance += d * d
	}
	variance /= float64(len(buckets))
	cv := math.Sqrt(variance) / mean
	score := 10 * (1 - cv)
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	return round2(score)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
