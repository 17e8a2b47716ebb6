// Package trainer builds a TrainingDataLanguageModel from a raw text corpus:
// the counting half of the training/serialization utility spec.md §1 item 5
// calls "external to the detection core; included for format reference."
// internal/core/model is its runtime counterpart; this package only produces
// the JSON resource.Get consumes, never reads it back.
package trainer

import (
	"sort"
	"strings"
	"unicode"

	"github.com/rogierslag/lingua/internal/core/ngram"
)

// Model is one language's n-gram frequency table at a single order k:
// AbsoluteFrequencies counts occurrences of each distinct k-length n-gram
// across the corpus; RelativeFrequencies is each one's reduced p/q, where
// for k=1 q is the total unigram count and for k>1 q is the absolute
// frequency of the n-gram's (k-1)-prefix (spec.md §3's back-off
// denominator).
type Model struct {
	Order               int
	AbsoluteFrequencies map[string]int
	RelativeFrequencies map[string]Fraction
}

// Fraction is a reduced p/q pair. Invariant: 0 < Num <= Den.
type Fraction struct {
	Num int
	Den int
}

// String renders the fraction in the "num/den" form the JSON resource
// format stores.
func (f Fraction) String() string {
	return itoa(f.Num) + "/" + itoa(f.Den)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b [20]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		b[i] = '-'
	}
	return string(b[i:])
}

// Train counts every occurrence (overlaps included) of a length-k,
// all-letter n-gram across lines and computes its relative frequency per
// spec.md §3's TrainingDataLanguageModel. Lines are tokenized on
// whitespace; n-grams never cross a word boundary.
func Train(lines []string, order int) Model {
	abs := count(lines, order)

	unigramTotal := 0
	if order == 1 {
		for _, c := range abs {
			unigramTotal += c
		}
	}
	var prefixTotals map[string]int
	if order > 1 {
		prefixTotals = count(lines, order-1)
	}

	rel := make(map[string]Fraction, len(abs))
	for n, c := range abs {
		den := unigramTotal
		if order > 1 {
			den = prefixTotals[ngram.New(n).Decrement().String()]
		}
		if den <= 0 {
			continue
		}
		rel[n] = reduce(c, den)
	}

	return Model{Order: order, AbsoluteFrequencies: abs, RelativeFrequencies: rel}
}

// count returns the raw occurrence count (overlaps included, no dedup) of
// every all-letter length-k substring across lines, tokenized on
// whitespace.
func count(lines []string, k int) map[string]int {
	out := make(map[string]int)
	if k <= 0 || k > ngram.MaxLength {
		return out
	}
	for _, line := range lines {
		for _, word := range strings.Fields(line) {
			rs := []rune(word)
			for i := 0; i+k <= len(rs); i++ {
				window := rs[i : i+k]
				if !allLetters(window) {
					continue
				}
				out[string(window)]++
			}
		}
	}
	return out
}

func allLetters(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func reduce(num, den int) Fraction {
	d := gcd(num, den)
	if d == 0 {
		d = 1
	}
	return Fraction{Num: num / d, Den: den / d}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ResourceDoc is the §6 JSON shape internal/core/model loads: a language
// tag plus a {fraction -> space-separated n-grams} grouping, since many
// n-grams in a trained model share an identical reduced probability.
type ResourceDoc struct {
	Language string            `json:"language"`
	Ngrams   map[string]string `json:"ngrams"`
}

// ToResourceDoc groups m's n-grams by their reduced fraction string into
// the on-disk JSON shape, for an ISO 639-1 language tag.
func (m Model) ToResourceDoc(iso6391 string) ResourceDoc {
	byFraction := make(map[string][]string)
	for n, f := range m.RelativeFrequencies {
		key := f.String()
		byFraction[key] = append(byFraction[key], n)
	}

	ngrams := make(map[string]string, len(byFraction))
	for key, ns := range byFraction {
		sort.Strings(ns)
		ngrams[key] = strings.Join(ns, " ")
	}

	return ResourceDoc{Language: iso6391, Ngrams: ngrams}
}
