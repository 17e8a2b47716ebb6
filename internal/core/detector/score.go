package detector

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/rogierslag/lingua/internal/core/language"
	"github.com/rogierslag/lingua/internal/core/model"
	"github.com/rogierslag/lingua/internal/core/ngram"
)

// Confidence pairs a candidate language with its relative score. Slices of
// Confidence preserve the descending order computeLanguageConfidenceValues
// must return; a map would not.
type Confidence struct {
	Language language.Language
	Value    float64
}

// orderSet picks which n-gram orders feed the statistical pass.
func orderSet(cleaned string, lowAccuracyMode bool) []model.Order {
	textLen := len([]rune(cleaned))
	if lowAccuracyMode || textLen >= 120 {
		return []model.Order{model.Trigram}
	}

	var orders []model.Order
	for _, o := range model.Orders {
		if int(o) <= textLen {
			orders = append(orders, o)
		}
	}
	return orders
}

// orderScores is the per-order result needed by the unigram normalization
// step: the raw summed log-probability per candidate, plus (for order 1
// only) how many distinct test unigrams had positive evidence.
type orderScores struct {
	sums            map[language.Language]float64
	unigramCoverage map[language.Language]int
}

func scoreOrder(cleaned string, order model.Order, candidates []language.Language) orderScores {
	testGrams := ngram.ExtractTestNgrams(cleaned, int(order))
	sums := make(map[language.Language]float64, len(candidates))
	coverage := make(map[language.Language]int, len(candidates))

	for _, lang := range candidates {
		var sum float64
		var covered int
		for n := range testGrams {
			p := model.FirstPositiveProbability(lang, n)
			if p <= 0 {
				continue
			}
			sum += math.Log(p)
			if order == model.Unigram {
				covered++
			}
		}
		sums[lang] = sum
		if order == model.Unigram {
			coverage[lang] = covered
		}
	}
	return orderScores{sums: sums, unigramCoverage: coverage}
}

// computeConfidences runs the statistical pass of §4.5: one task per
// n-gram order, summed and unigram-normalized into a final score per
// candidate, scaled so the best candidate lands at 1.0.
func computeConfidences(cleaned string, candidates []language.Language, lowAccuracyMode bool) []Confidence {
	textLen := len([]rune(cleaned))
	if lowAccuracyMode && textLen < 3 {
		return nil
	}

	orders := orderSet(cleaned, lowAccuracyMode)
	if len(orders) == 0 {
		return nil
	}

	results := make([]orderScores, len(orders))
	var g errgroup.Group
	for i, order := range orders {
		i, order := i, order
		g.Go(func() error {
			results[i] = scoreOrder(cleaned, order, candidates)
			return nil
		})
	}
	_ = g.Wait() // scoreOrder never errors; Wait only joins the tasks.

	total := make(map[language.Language]float64, len(candidates))
	coverage := make(map[language.Language]int, len(candidates))
	for _, r := range results {
		for lang, s := range r.sums {
			total[lang] += s
		}
		for lang, c := range r.unigramCoverage {
			coverage[lang] += c
		}
	}

	for lang, c := range coverage {
		if c > 0 {
			total[lang] = total[lang] / float64(c)
		}
	}

	// Scores are sums of log-probabilities, so every s is <= 0 and max is
	// the least-negative (best) candidate. Value is max/s, not s/max: that
	// puts the best candidate at exactly 1.0 and every weaker one (a more
	// negative s) strictly below it.
	var max float64
	hasAny := false
	for lang, s := range total {
		if s == 0 {
			continue
		}
		if !hasAny || s > max {
			max = s
			hasAny = true
		}
	}
	if !hasAny {
		return nil
	}

	out := make([]Confidence, 0, len(candidates))
	for lang, s := range total {
		if s == 0 {
			continue
		}
		out = append(out, Confidence{Language: lang, Value: max / s})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Language < out[j].Language
	})
	return out
}
