package detector

import (
	"strings"

	"github.com/rogierslag/lingua/internal/core/alphabet"
	"github.com/rogierslag/lingua/internal/core/charsmap"
	"github.com/rogierslag/lingua/internal/core/language"
)

// detectLanguageWithRules implements the character/script based shortcut: a
// confident answer here skips statistical scoring entirely. A return value
// of UNKNOWN means "no confident rule decision," not a final verdict; the
// caller proceeds to filterLanguagesByRules and the statistical pass.
func detectLanguageWithRules(words []string, active []language.Language, exclusive map[alphabet.Alphabet]language.Language) language.Language {
	if len(words) == 0 {
		return language.UNKNOWN
	}

	activeSet := make(map[language.Language]bool, len(active))
	for _, l := range active {
		activeSet[l] = true
	}

	counts := make(map[language.Language]int)
	unknownCount := 0

	for _, w := range words {
		credits := make(map[language.Language]int)
		for _, r := range w {
			a, ok := alphabet.OfRune(r)
			if !ok {
				continue
			}
			switch owner, exclusiveToOne := exclusive[a]; {
			case exclusiveToOne:
				credits[owner]++
			case a == alphabet.Han:
				if activeSet[language.CHINESE] {
					credits[language.CHINESE]++
				}
			case alphabet.IsJapaneseOnly(r):
				if activeSet[language.JAPANESE] {
					credits[language.JAPANESE]++
				}
			case a == alphabet.Latin || a == alphabet.Cyrillic || a == alphabet.Devanagari:
				for _, l := range active {
					if strings.ContainsRune(l.UniqueCharacters(), r) {
						credits[l]++
					}
				}
			}
		}

		winner, ok := pluralityWinner(credits)
		if !ok {
			unknownCount++
			continue
		}
		counts[winner]++
	}

	wordCount := len(words)
	if float64(unknownCount) >= 0.5*float64(wordCount) {
		counts[language.UNKNOWN] = unknownCount
	}

	switch {
	case len(counts) == 0:
		return language.UNKNOWN
	case len(counts) == 1:
		for l := range counts {
			return l
		}
	case len(counts) == 2 && counts[language.CHINESE] > 0 && counts[language.JAPANESE] > 0:
		return language.JAPANESE
	}

	winner, ok := pluralityWinner(counts)
	if !ok {
		return language.UNKNOWN
	}
	return winner
}

// pluralityWinner returns the sole key holding the maximum value in counts.
// Returns (UNKNOWN, false) if counts is empty or the maximum is shared.
func pluralityWinner(counts map[language.Language]int) (language.Language, bool) {
	best := language.UNKNOWN
	bestCount := 0
	tie := false
	for l, c := range counts {
		switch {
		case c > bestCount:
			best = l
			bestCount = c
			tie = false
		case c == bestCount && bestCount > 0:
			tie = true
		}
	}
	if bestCount == 0 || tie {
		return language.UNKNOWN, false
	}
	return best, true
}

// filterLanguagesByRules narrows active down to a candidate subset before
// the statistical pass, using whole-word alphabet matches and then
// diacritic/special-character tallies within the alphabet-matched survivors.
func filterLanguagesByRules(words []string, active []language.Language) []language.Language {
	alphabetCounts := make(map[alphabet.Alphabet]int)
	for _, w := range words {
		for _, a := range alphabet.All {
			if a.MatchesWord(w) {
				alphabetCounts[a]++
			}
		}
	}

	if len(alphabetCounts) == 0 {
		return active
	}

	max := 0
	for _, c := range alphabetCounts {
		if c > max {
			max = c
		}
	}
	atMax := 0
	for _, c := range alphabetCounts {
		if c == max {
			atMax++
		}
	}
	// Either every matched alphabet ties (spec's explicit "all equal" case)
	// or the top spot itself is shared: neither yields a singular plurality.
	if atMax != 1 {
		return active
	}

	var winner alphabet.Alphabet
	for a, c := range alphabetCounts {
		if c == max {
			winner = a
			break
		}
	}

	survivors := make([]language.Language, 0, len(active))
	for _, l := range active {
		if l.SupportsAlphabet(winner) {
			survivors = append(survivors, l)
		}
	}

	wordCount := len(words)
	tally := charsmap.Tally(words, survivors)
	refined := make([]language.Language, 0, len(survivors))
	for _, l := range survivors {
		if float64(tally[l]) >= 0.5*float64(wordCount) {
			refined = append(refined, l)
		}
	}
	if len(refined) == 0 {
		return survivors
	}
	return refined
}
