// Package alphabet classifies characters and words by Unicode script family.
// It is the rule-based half of detection: fast, cheap filters that can
// short-circuit the statistical pipeline entirely (spec.md §4.2-§4.4).
package alphabet

import "unicode"

// Alphabet identifies one supported Unicode script family.
type Alphabet int

// Supported alphabets. Order is not semantically meaningful but is kept
// stable for deterministic iteration in tests.
const (
	Latin Alphabet = iota
	Cyrillic
	Han
	Hiragana
	Katakana
	Devanagari
	Arabic
	Hebrew
	Greek
	Thai
	Georgian
	Armenian
	Hangul
	Bengali
	Gujarati
	Gurmukhi
	Tamil
	Telugu
)

// All lists every supported alphabet, in declaration order.
var All = []Alphabet{
	Latin, Cyrillic, Han, Hiragana, Katakana, Devanagari, Arabic, Hebrew,
	Greek, Thai, Georgian, Armenian, Hangul, Bengali, Gujarati, Gurmukhi,
	Tamil, Telugu,
}

var rangeTables = map[Alphabet]*unicode.RangeTable{
	Latin:      unicode.Latin,
	Cyrillic:   unicode.Cyrillic,
	Han:        unicode.Han,
	Hiragana:   unicode.Hiragana,
	Katakana:   unicode.Katakana,
	Devanagari: unicode.Devanagari,
	Arabic:     unicode.Arabic,
	Hebrew:     unicode.Hebrew,
	Greek:      unicode.Greek,
	Thai:       unicode.Thai,
	Georgian:   unicode.Georgian,
	Armenian:   unicode.Armenian,
	Hangul:     unicode.Hangul,
	Bengali:    unicode.Bengali,
	Gujarati:   unicode.Gujarati,
	Gurmukhi:   unicode.Gurmukhi,
	Tamil:      unicode.Tamil,
	Telugu:     unicode.Telugu,
}

var names = map[Alphabet]string{
	Latin:      "LATIN",
	Cyrillic:   "CYRILLIC",
	Han:        "HAN",
	Hiragana:   "HIRAGANA",
	Katakana:   "KATAKANA",
	Devanagari: "DEVANAGARI",
	Arabic:     "ARABIC",
	Hebrew:     "HEBREW",
	Greek:      "GREEK",
	Thai:       "THAI",
	Georgian:   "GEORGIAN",
	Armenian:   "ARMENIAN",
	Hangul:     "HANGUL",
	Bengali:    "BENGALI",
	Gujarati:   "GUJARATI",
	Gurmukhi:   "GURMUKHI",
	Tamil:      "TAMIL",
	Telugu:     "TELUGU",
}

// String returns the canonical upper-case name of the alphabet.
func (a Alphabet) String() string {
	if n, ok := names[a]; ok {
		return n
	}
	return "UNKNOWN"
}

// Matches reports whether r belongs to this alphabet's script.
func (a Alphabet) Matches(r rune) bool {
	rt, ok := rangeTables[a]
	if !ok {
		return false
	}
	return unicode.In(r, rt)
}

// MatchesWord reports whether every character in word belongs to this
// alphabet, true iff the word is non-empty and every rune matches
// (spec.md §3 Alphabet: "whole-word match").
func (a Alphabet) MatchesWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !a.Matches(r) {
			return false
		}
	}
	return true
}

// OfRune returns the first matching alphabet for r, and whether any matched.
// When multiple scripts could technically overlap (none do among the
// supported set) the declaration order in All decides.
func OfRune(r rune) (Alphabet, bool) {
	for _, a := range All {
		if a.Matches(r) {
			return a, true
		}
	}
	return 0, false
}

// logogramBearing is the subset of scripts whose languages contain
// logograms -- every character in a logogram-bearing script is itself a
// word boundary (spec.md §4.2).
var logogramBearing = map[Alphabet]bool{
	Han: true,
}

// IsLogogramBearing reports whether a's script is logogram-bearing.
func IsLogogramBearing(a Alphabet) bool { return logogramBearing[a] }

// LogogramBearing returns the subset of All flagged as logogram-bearing
// (spec.md §3 Alphabet: "(b) the subset whose languages contain logograms").
func LogogramBearing() []Alphabet {
	out := make([]Alphabet, 0, 1)
	for _, a := range All {
		if logogramBearing[a] {
			out = append(out, a)
		}
	}
	return out
}

// IsJapaneseOnly reports whether r is Hiragana or Katakana -- the
// "Japanese-only character" test of spec.md §4.3.
func IsJapaneseOnly(r rune) bool {
	return Hiragana.Matches(r) || Katakana.Matches(r)
}
