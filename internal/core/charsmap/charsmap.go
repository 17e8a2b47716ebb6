// Package charsmap holds the static association from individual
// diacritic/ligature characters to the set of languages that use them
// (spec.md §3 CharsToLanguagesMap). It is distinct from a language's own
// "unique characters" signature: many languages share a diacritic (ü, ö,
// ç, ...) without any one of them being exclusive, so this map is used to
// up-weight candidates during rule filtering (spec.md §4.4) rather than to
// make a rule-based decision outright (spec.md §4.3).
package charsmap

import "github.com/rogierslag/lingua/internal/core/language"

// table is built once from a small curated list of shared diacritics.
// Keys are single runes; values are every language known to use that
// character in normal orthography.
var table = map[rune][]language.Language{
	'ä': {language.GERMAN, language.ESTONIAN, language.FINNISH, language.SWEDISH, language.SLOVAK, language.AZERBAIJANI},
	'ö': {language.GERMAN, language.ESTONIAN, language.FINNISH, language.SWEDISH, language.ICELANDIC, language.TURKISH, language.AZERBAIJANI},
	'ü': {language.GERMAN, language.ESTONIAN, language.TURKISH, language.AZERBAIJANI, language.VIETNAMESE},
	'ß': {language.GERMAN},
	'ç': {language.FRENCH, language.ALBANIAN, language.TURKISH, language.AZERBAIJANI, language.CATALAN},
	'œ': {language.FRENCH},
	'ñ': {language.SPANISH},
	'ã': {language.PORTUGUESE},
	'õ': {language.PORTUGUESE, language.ESTONIAN},
	'å': {language.SWEDISH, language.DANISH},
	'æ': {language.DANISH, language.ICELANDIC},
	'ø': {language.DANISH},
	'þ': {language.ICELANDIC},
	'đ': {language.CROATIAN, language.VIETNAMESE},
	'ě': {language.CZECH},
	'ř': {language.CZECH},
	'ů': {language.CZECH},
	'ť': {language.CZECH},
	'ď': {language.CZECH},
	'ň': {language.CZECH},
	'ľ': {language.SLOVAK},
	'ĺ': {language.SLOVAK},
	'ŕ': {language.SLOVAK},
	'ą': {language.POLISH, language.LITHUANIAN},
	'ć': {language.POLISH},
	'ę': {language.POLISH, language.LITHUANIAN},
	'ł': {language.POLISH},
	'ń': {language.POLISH},
	'ś': {language.POLISH},
	'ź': {language.POLISH},
	'ż': {language.POLISH},
	'ă': {language.ROMANIAN},
	'â': {language.ROMANIAN},
	'î': {language.ROMANIAN},
	'ș': {language.ROMANIAN},
	'ț': {language.ROMANIAN},
	'ő': {language.HUNGARIAN},
	'ű': {language.HUNGARIAN},
	'ā': {language.LATVIAN},
	'č': {language.LATVIAN, language.LITHUANIAN},
	'ē': {language.LATVIAN},
	'ģ': {language.LATVIAN},
	'ī': {language.LATVIAN},
	'ķ': {language.LATVIAN},
	'ļ': {language.LATVIAN},
	'ņ': {language.LATVIAN},
	'š': {language.LATVIAN, language.LITHUANIAN},
	'ū': {language.LATVIAN, language.LITHUANIAN},
	'ž': {language.LATVIAN, language.LITHUANIAN},
	'ė': {language.LITHUANIAN},
	'į': {language.LITHUANIAN},
	'ų': {language.LITHUANIAN},
	'ı': {language.TURKISH, language.AZERBAIJANI},
	'ğ': {language.TURKISH, language.AZERBAIJANI},
	'ş': {language.TURKISH, language.AZERBAIJANI},
	'ə': {language.AZERBAIJANI},
	'ŵ': {language.WELSH},
	'ŷ': {language.WELSH},
	'ĉ': {language.ESPERANTO},
	'ĝ': {language.ESPERANTO},
	'ĥ': {language.ESPERANTO},
	'ĵ': {language.ESPERANTO},
	'ŝ': {language.ESPERANTO},
	'ŭ': {language.ESPERANTO},
	'ъ': {language.RUSSIAN, language.BULGARIAN},
	'ы': {language.RUSSIAN},
	'э': {language.RUSSIAN},
	'ў': {language.BELARUSIAN},
	'ґ': {language.UKRAINIAN},
	'є': {language.UKRAINIAN},
	'і': {language.UKRAINIAN, language.KAZAKH},
	'ї': {language.UKRAINIAN},
	'ѓ': {language.MACEDONIAN},
	'ќ': {language.MACEDONIAN},
	'ђ': {language.SERBIAN},
	'ј': {language.SERBIAN},
	'љ': {language.SERBIAN},
	'њ': {language.SERBIAN},
	'ћ': {language.SERBIAN},
	'џ': {language.SERBIAN},
	'ơ': {language.VIETNAMESE},
	'ẹ': {language.VIETNAMESE, language.YORUBA},
	'ọ': {language.VIETNAMESE, language.YORUBA},
	'ṣ': {language.YORUBA},
}

// Languages returns the set of languages known to use r in normal
// orthography. Returns nil if r is not a tracked special character.
func Languages(r rune) []language.Language {
	return table[r]
}

// Tally counts, for each language in candidates, how many runes across
// words contain a character attributable to that language (spec.md §4.4:
// "tally how often each language's diacritic/special characters ...
// appear in the input words").
func Tally(words []string, candidates []language.Language) map[language.Language]int {
	allowed := make(map[language.Language]bool, len(candidates))
	for _, l := range candidates {
		allowed[l] = true
	}
	counts := make(map[language.Language]int)
	for _, w := range words {
		seen := make(map[language.Language]bool)
		for _, r := range w {
			for _, l := range table[r] {
				if allowed[l] && !seen[l] {
					seen[l] = true
					counts[l]++
				}
			}
		}
	}
	return counts
}
