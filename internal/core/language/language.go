// Package language holds the static catalog of languages the detector can
// recognize: their ISO codes, supported alphabets, unique-character
// signatures and "still spoken" status (spec.md §3 Language).
package language

import (
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/rogierslag/lingua/internal/core/alphabet"
)

// Language is an enum-like identifier for one of the ≈75 supported
// languages, plus the UNKNOWN sentinel.
type Language int

// Info describes one catalog entry.
type Info struct {
	Lang             Language
	Name             string
	ISO6391          string
	ISO6393          string
	Alphabets        []alphabet.Alphabet
	UniqueCharacters string // may be empty
	Spoken           bool
}

//go:generate stringer -type=Language

const (
	UNKNOWN Language = iota
	AFRIKAANS
	ALBANIAN
	ARABIC
	ARMENIAN
	AZERBAIJANI
	BASQUE
	BELARUSIAN
	BENGALI
	BOKMAL
	BOSNIAN
	BULGARIAN
	CATALAN
	CHINESE
	CROATIAN
	CZECH
	DANISH
	DUTCH
	ENGLISH
	ESPERANTO
	ESTONIAN
	FINNISH
	FRENCH
	GANDA
	GEORGIAN
	GERMAN
	GREEK
	GUJARATI
	HEBREW
	HINDI
	HUNGARIAN
	ICELANDIC
	INDONESIAN
	IRISH
	ITALIAN
	JAPANESE
	KAZAKH
	KOREAN
	LATIN
	LATVIAN
	LITHUANIAN
	MACEDONIAN
	MALAY
	MAORI
	MARATHI
	MONGOLIAN
	NYNORSK
	PERSIAN
	POLISH
	PORTUGUESE
	PUNJABI
	ROMANIAN
	RUSSIAN
	SERBIAN
	SHONA
	SLOVAK
	SLOVENE
	SOMALI
	SOTHO
	SPANISH
	SWAHILI
	SWEDISH
	TAGALOG
	TAMIL
	TELUGU
	THAI
	TSONGA
	TSWANA
	TURKISH
	UKRAINIAN
	URDU
	VIETNAMESE
	WELSH
	XHOSA
	YORUBA
	ZULU
)

var (
	lat = []alphabet.Alphabet{alphabet.Latin}
	cyr = []alphabet.Alphabet{alphabet.Cyrillic}
)

// catalog is populated once at init and never mutated afterward, matching
// spec.md §3's "immutable after detector construction" posture for the
// overall static table.
var catalog = map[Language]Info{
	UNKNOWN:     {Lang: UNKNOWN, Name: "UNKNOWN", Spoken: false},
	AFRIKAANS:   {Lang: AFRIKAANS, Name: "AFRIKAANS", ISO6391: "af", ISO6393: "afr", Alphabets: lat, Spoken: true},
	ALBANIAN:    {Lang: ALBANIAN, Name: "ALBANIAN", ISO6391: "sq", ISO6393: "sqi", Alphabets: lat, UniqueCharacters: "çë", Spoken: true},
	ARABIC:      {Lang: ARABIC, Name: "ARABIC", ISO6391: "ar", ISO6393: "ara", Alphabets: []alphabet.Alphabet{alphabet.Arabic}, Spoken: true},
	ARMENIAN:    {Lang: ARMENIAN, Name: "ARMENIAN", ISO6391: "hy", ISO6393: "hye", Alphabets: []alphabet.Alphabet{alphabet.Armenian}, Spoken: true},
	AZERBAIJANI: {Lang: AZERBAIJANI, Name: "AZERBAIJANI", ISO6391: "az", ISO6393: "aze", Alphabets: lat, UniqueCharacters: "əğıöşüç", Spoken: true},
	BASQUE:      {Lang: BASQUE, Name: "BASQUE", ISO6391: "eu", ISO6393: "eus", Alphabets: lat, Spoken: true},
	BELARUSIAN:  {Lang: BELARUSIAN, Name: "BELARUSIAN", ISO6391: "be", ISO6393: "bel", Alphabets: cyr, UniqueCharacters: "ў", Spoken: true},
	BENGALI:     {Lang: BENGALI, Name: "BENGALI", ISO6391: "bn", ISO6393: "ben", Alphabets: []alphabet.Alphabet{alphabet.Bengali}, Spoken: true},
	BOKMAL:      {Lang: BOKMAL, Name: "BOKMAL", ISO6391: "nb", ISO6393: "nob", Alphabets: lat, Spoken: true},
	BOSNIAN:     {Lang: BOSNIAN, Name: "BOSNIAN", ISO6391: "bs", ISO6393: "bos", Alphabets: lat, Spoken: true},
	BULGARIAN:   {Lang: BULGARIAN, Name: "BULGARIAN", ISO6391: "bg", ISO6393: "bul", Alphabets: cyr, UniqueCharacters: "ъ", Spoken: true},
	CATALAN:     {Lang: CATALAN, Name: "CATALAN", ISO6391: "ca", ISO6393: "cat", Alphabets: lat, UniqueCharacters: "çŀ", Spoken: true},
	CHINESE:     {Lang: CHINESE, Name: "CHINESE", ISO6391: "zh", ISO6393: "zho", Alphabets: []alphabet.Alphabet{alphabet.Han}, Spoken: true},
	CROATIAN:    {Lang: CROATIAN, Name: "CROATIAN", ISO6391: "hr", ISO6393: "hrv", Alphabets: lat, UniqueCharacters: "đ", Spoken: true},
	CZECH:       {Lang: CZECH, Name: "CZECH", ISO6391: "cs", ISO6393: "ces", Alphabets: lat, UniqueCharacters: "ěřůťďň", Spoken: true},
	DANISH:      {Lang: DANISH, Name: "DANISH", ISO6391: "da", ISO6393: "dan", Alphabets: lat, UniqueCharacters: "æøå", Spoken: true},
	DUTCH:       {Lang: DUTCH, Name: "DUTCH", ISO6391: "nl", ISO6393: "nld", Alphabets: lat, Spoken: true},
	ENGLISH:     {Lang: ENGLISH, Name: "ENGLISH", ISO6391: "en", ISO6393: "eng", Alphabets: lat, Spoken: true},
	ESPERANTO:   {Lang: ESPERANTO, Name: "ESPERANTO", ISO6391: "eo", ISO6393: "epo", Alphabets: lat, UniqueCharacters: "ĉĝĥĵŝŭ", Spoken: true},
	ESTONIAN:    {Lang: ESTONIAN, Name: "ESTONIAN", ISO6391: "et", ISO6393: "est", Alphabets: lat, UniqueCharacters: "õäöü", Spoken: true},
	FINNISH:     {Lang: FINNISH, Name: "FINNISH", ISO6391: "fi", ISO6393: "fin", Alphabets: lat, UniqueCharacters: "äö", Spoken: true},
	FRENCH:      {Lang: FRENCH, Name: "FRENCH", ISO6391: "fr", ISO6393: "fra", Alphabets: lat, UniqueCharacters: "çœ", Spoken: true},
	GANDA:       {Lang: GANDA, Name: "GANDA", ISO6391: "lg", ISO6393: "lug", Alphabets: lat, Spoken: true},
	GEORGIAN:    {Lang: GEORGIAN, Name: "GEORGIAN", ISO6391: "ka", ISO6393: "kat", Alphabets: []alphabet.Alphabet{alphabet.Georgian}, Spoken: true},
	GERMAN:      {Lang: GERMAN, Name: "GERMAN", ISO6391: "de", ISO6393: "deu", Alphabets: lat, UniqueCharacters: "äöüß", Spoken: true},
	GREEK:       {Lang: GREEK, Name: "GREEK", ISO6391: "el", ISO6393: "ell", Alphabets: []alphabet.Alphabet{alphabet.Greek}, Spoken: true},
	GUJARATI:    {Lang: GUJARATI, Name: "GUJARATI", ISO6391: "gu", ISO6393: "guj", Alphabets: []alphabet.Alphabet{alphabet.Gujarati}, Spoken: true},
	HEBREW:      {Lang: HEBREW, Name: "HEBREW", ISO6391: "he", ISO6393: "heb", Alphabets: []alphabet.Alphabet{alphabet.Hebrew}, Spoken: true},
	HINDI:       {Lang: HINDI, Name: "HINDI", ISO6391: "hi", ISO6393: "hin", Alphabets: []alphabet.Alphabet{alphabet.Devanagari}, Spoken: true},
	HUNGARIAN:   {Lang: HUNGARIAN, Name: "HUNGARIAN", ISO6391: "hu", ISO6393: "hun", Alphabets: lat, UniqueCharacters: "őű", Spoken: true},
	ICELANDIC:   {Lang: ICELANDIC, Name: "ICELANDIC", ISO6391: "is", ISO6393: "isl", Alphabets: lat, UniqueCharacters: "þðæö", Spoken: true},
	INDONESIAN:  {Lang: INDONESIAN, Name: "INDONESIAN", ISO6391: "id", ISO6393: "ind", Alphabets: lat, Spoken: true},
	IRISH:       {Lang: IRISH, Name: "IRISH", ISO6391: "ga", ISO6393: "gle", Alphabets: lat, Spoken: true},
	ITALIAN:     {Lang: ITALIAN, Name: "ITALIAN", ISO6391: "it", ISO6393: "ita", Alphabets: lat, Spoken: true},
	JAPANESE: {
		Lang: JAPANESE, Name: "JAPANESE", ISO6391: "ja", ISO6393: "jpn",
		Alphabets: []alphabet.Alphabet{alphabet.Han, alphabet.Hiragana, alphabet.Katakana}, Spoken: true,
	},
	KAZAKH:      {Lang: KAZAKH, Name: "KAZAKH", ISO6391: "kk", ISO6393: "kaz", Alphabets: cyr, UniqueCharacters: "әғqңөұүhі", Spoken: true},
	KOREAN:      {Lang: KOREAN, Name: "KOREAN", ISO6391: "ko", ISO6393: "kor", Alphabets: []alphabet.Alphabet{alphabet.Hangul}, Spoken: true},
	LATIN:       {Lang: LATIN, Name: "LATIN", ISO6391: "la", ISO6393: "lat", Alphabets: lat, Spoken: false},
	LATVIAN:     {Lang: LATVIAN, Name: "LATVIAN", ISO6391: "lv", ISO6393: "lav", Alphabets: lat, UniqueCharacters: "āčēģīķļņšūž", Spoken: true},
	LITHUANIAN:  {Lang: LITHUANIAN, Name: "LITHUANIAN", ISO6391: "lt", ISO6393: "lit", Alphabets: lat, UniqueCharacters: "ąčęėįšųūž", Spoken: true},
	MACEDONIAN:  {Lang: MACEDONIAN, Name: "MACEDONIAN", ISO6391: "mk", ISO6393: "mkd", Alphabets: cyr, UniqueCharacters: "ѓќ", Spoken: true},
	MALAY:       {Lang: MALAY, Name: "MALAY", ISO6391: "ms", ISO6393: "msa", Alphabets: lat, Spoken: true},
	MAORI:       {Lang: MAORI, Name: "MAORI", ISO6391: "mi", ISO6393: "mri", Alphabets: lat, Spoken: true},
	MARATHI:     {Lang: MARATHI, Name: "MARATHI", ISO6391: "mr", ISO6393: "mar", Alphabets: []alphabet.Alphabet{alphabet.Devanagari}, Spoken: true},
	MONGOLIAN:   {Lang: MONGOLIAN, Name: "MONGOLIAN", ISO6391: "mn", ISO6393: "mon", Alphabets: cyr, Spoken: true},
	NYNORSK:     {Lang: NYNORSK, Name: "NYNORSK", ISO6391: "nn", ISO6393: "nno", Alphabets: lat, Spoken: true},
	PERSIAN:     {Lang: PERSIAN, Name: "PERSIAN", ISO6391: "fa", ISO6393: "fas", Alphabets: []alphabet.Alphabet{alphabet.Arabic}, Spoken: true},
	POLISH:      {Lang: POLISH, Name: "POLISH", ISO6391: "pl", ISO6393: "pol", Alphabets: lat, UniqueCharacters: "ąćęłńśźż", Spoken: true},
	PORTUGUESE:  {Lang: PORTUGUESE, Name: "PORTUGUESE", ISO6391: "pt", ISO6393: "por", Alphabets: lat, UniqueCharacters: "ãõ", Spoken: true},
	PUNJABI:     {Lang: PUNJABI, Name: "PUNJABI", ISO6391: "pa", ISO6393: "pan", Alphabets: []alphabet.Alphabet{alphabet.Gurmukhi}, Spoken: true},
	ROMANIAN:    {Lang: ROMANIAN, Name: "ROMANIAN", ISO6391: "ro", ISO6393: "ron", Alphabets: lat, UniqueCharacters: "ăâîșț", Spoken: true},
	RUSSIAN:     {Lang: RUSSIAN, Name: "RUSSIAN", ISO6391: "ru", ISO6393: "rus", Alphabets: cyr, UniqueCharacters: "ъыэ", Spoken: true},
	SERBIAN:     {Lang: SERBIAN, Name: "SERBIAN", ISO6391: "sr", ISO6393: "srp", Alphabets: cyr, UniqueCharacters: "ђјљњћџ", Spoken: true},
	SHONA:       {Lang: SHONA, Name: "SHONA", ISO6391: "sn", ISO6393: "sna", Alphabets: lat, Spoken: true},
	SLOVAK:      {Lang: SLOVAK, Name: "SLOVAK", ISO6391: "sk", ISO6393: "slk", Alphabets: lat, UniqueCharacters: "äľĺŕ", Spoken: true},
	SLOVENE:     {Lang: SLOVENE, Name: "SLOVENE", ISO6391: "sl", ISO6393: "slv", Alphabets: lat, Spoken: true},
	SOMALI:      {Lang: SOMALI, Name: "SOMALI", ISO6391: "so", ISO6393: "som", Alphabets: lat, Spoken: true},
	SOTHO:       {Lang: SOTHO, Name: "SOTHO", ISO6391: "st", ISO6393: "sot", Alphabets: lat, Spoken: true},
	SPANISH:     {Lang: SPANISH, Name: "SPANISH", ISO6391: "es", ISO6393: "spa", Alphabets: lat, UniqueCharacters: "ñ", Spoken: true},
	SWAHILI:     {Lang: SWAHILI, Name: "SWAHILI", ISO6391: "sw", ISO6393: "swa", Alphabets: lat, Spoken: true},
	SWEDISH:     {Lang: SWEDISH, Name: "SWEDISH", ISO6391: "sv", ISO6393: "swe", Alphabets: lat, UniqueCharacters: "åäö", Spoken: true},
	TAGALOG:     {Lang: TAGALOG, Name: "TAGALOG", ISO6391: "tl", ISO6393: "tgl", Alphabets: lat, Spoken: true},
	TAMIL:       {Lang: TAMIL, Name: "TAMIL", ISO6391: "ta", ISO6393: "tam", Alphabets: []alphabet.Alphabet{alphabet.Tamil}, Spoken: true},
	TELUGU:      {Lang: TELUGU, Name: "TELUGU", ISO6391: "te", ISO6393: "tel", Alphabets: []alphabet.Alphabet{alphabet.Telugu}, Spoken: true},
	THAI:        {Lang: THAI, Name: "THAI", ISO6391: "th", ISO6393: "tha", Alphabets: []alphabet.Alphabet{alphabet.Thai}, Spoken: true},
	TSONGA:      {Lang: TSONGA, Name: "TSONGA", ISO6391: "ts", ISO6393: "tso", Alphabets: lat, Spoken: true},
	TSWANA:      {Lang: TSWANA, Name: "TSWANA", ISO6391: "tn", ISO6393: "tsn", Alphabets: lat, Spoken: true},
	TURKISH:     {Lang: TURKISH, Name: "TURKISH", ISO6391: "tr", ISO6393: "tur", Alphabets: lat, UniqueCharacters: "ığşç", Spoken: true},
	UKRAINIAN:   {Lang: UKRAINIAN, Name: "UKRAINIAN", ISO6391: "uk", ISO6393: "ukr", Alphabets: cyr, UniqueCharacters: "ґєії", Spoken: true},
	URDU:        {Lang: URDU, Name: "URDU", ISO6391: "ur", ISO6393: "urd", Alphabets: []alphabet.Alphabet{alphabet.Arabic}, Spoken: true},
	VIETNAMESE:  {Lang: VIETNAMESE, Name: "VIETNAMESE", ISO6391: "vi", ISO6393: "vie", Alphabets: lat, UniqueCharacters: "đơư", Spoken: true},
	WELSH:       {Lang: WELSH, Name: "WELSH", ISO6391: "cy", ISO6393: "cym", Alphabets: lat, UniqueCharacters: "ŵŷ", Spoken: true},
	XHOSA:       {Lang: XHOSA, Name: "XHOSA", ISO6391: "xh", ISO6393: "xho", Alphabets: lat, Spoken: true},
	YORUBA:      {Lang: YORUBA, Name: "YORUBA", ISO6391: "yo", ISO6393: "yor", Alphabets: lat, UniqueCharacters: "ẹọṣ", Spoken: true},
	ZULU:        {Lang: ZULU, Name: "ZULU", ISO6391: "zu", ISO6393: "zul", Alphabets: lat, Spoken: true},
}

var (
	byISO6391 map[string]Language
	byISO6393 map[string]Language
	all       []Language
)

func init() {
	byISO6391 = make(map[string]Language, len(catalog))
	byISO6393 = make(map[string]Language, len(catalog))
	all = make([]Language, 0, len(catalog)-1)
	for l, info := range catalog {
		if l == UNKNOWN {
			continue
		}
		all = append(all, l)
		byISO6391[info.ISO6391] = l
		byISO6393[info.ISO6393] = l
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
}

// All returns every supported language, UNKNOWN excluded, in a stable
// deterministic order.
func All() []Language {
	out := make([]Language, len(all))
	copy(out, all)
	return out
}

// Get returns the catalog Info for l.
func Get(l Language) Info { return catalog[l] }

// String returns the language's canonical upper-case name, or "UNKNOWN".
func (l Language) String() string { return catalog[l].Name }

// FromISO6391 looks up a language by its two-letter code (case-insensitive).
// Returns (UNKNOWN, false) for an unrecognized or malformed code -- callers
// that need strict BCP-47 validation should first check ValidTag.
func FromISO6391(code string) (Language, bool) {
	l, ok := byISO6391[strings.ToLower(strings.TrimSpace(code))]
	return l, ok
}

// FromISO6393 looks up a language by its three-letter code (case-insensitive).
func FromISO6393(code string) (Language, bool) {
	l, ok := byISO6393[strings.ToLower(strings.TrimSpace(code))]
	return l, ok
}

// ValidTag reports whether code parses as a well-formed BCP-47 language tag,
// used to give callers of FromISO6391 a clearer "malformed" vs "unsupported"
// distinction (SPEC_FULL.md §3).
func ValidTag(code string) bool {
	_, err := language.Parse(code)
	return err == nil
}

// Alphabets returns l's supported alphabets.
func (l Language) Alphabets() []alphabet.Alphabet { return catalog[l].Alphabets }

// UniqueCharacters returns l's unique-character signature, which may be empty.
func (l Language) UniqueCharacters() string { return catalog[l].UniqueCharacters }

// IsSpoken reports whether l is still spoken.
func (l Language) IsSpoken() bool { return catalog[l].Spoken }

// ExclusiveAlphabets returns, for the given language set, the subset of
// alphabets used by exactly one language in that set -- spec.md §3's
// "(a) the subset of scripts that are exclusively used by exactly one
// supported language" and §3 LanguageDetector's "derived map script ->
// language for scripts used by exactly one language in L".
func ExclusiveAlphabets(langs []Language) map[alphabet.Alphabet]Language {
	count := make(map[alphabet.Alphabet]int)
	owner := make(map[alphabet.Alphabet]Language)
	for _, l := range langs {
		for _, a := range catalog[l].Alphabets {
			count[a]++
			owner[a] = l
		}
	}
	out := make(map[alphabet.Alphabet]Language)
	for a, c := range count {
		if c == 1 {
			out[a] = owner[a]
		}
	}
	return out
}

// WithUniqueCharacters returns the subset of langs that declare a non-empty
// unique-character signature (spec.md §3 LanguageDetector state).
func WithUniqueCharacters(langs []Language) []Language {
	out := make([]Language, 0, len(langs))
	for _, l := range langs {
		if catalog[l].UniqueCharacters != "" {
			out = append(out, l)
		}
	}
	return out
}

// SupportsAlphabet reports whether l's alphabet set includes a.
func (l Language) SupportsAlphabet(a alphabet.Alphabet) bool {
	for _, la := range catalog[l].Alphabets {
		if la == a {
			return true
		}
	}
	return false
}
