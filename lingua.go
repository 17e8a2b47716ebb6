// Package lingua is the public façade over the natural-language detection
// engine in internal/core/detector: a Builder to configure a Detector, a
// Language enum re-exported from the internal catalog, and the ISO-code
// lookups callers need to translate CLI/HTTP input into that enum.
package lingua

import (
	"github.com/rogierslag/lingua/internal/core/detector"
	"github.com/rogierslag/lingua/internal/core/language"
	"github.com/rogierslag/lingua/internal/core/model"
	"github.com/rogierslag/lingua/internal/platform/errors"
)

// Language identifies one of the supported natural languages, or UNKNOWN.
type Language = language.Language

// UNKNOWN is the sentinel returned when detection can't produce a confident
// verdict. The remaining constants mirror internal/core/language's catalog.
const (
	UNKNOWN     = language.UNKNOWN
	AFRIKAANS   = language.AFRIKAANS
	ALBANIAN    = language.ALBANIAN
	ARABIC      = language.ARABIC
	ARMENIAN    = language.ARMENIAN
	AZERBAIJANI = language.AZERBAIJANI
	BASQUE      = language.BASQUE
	BELARUSIAN  = language.BELARUSIAN
	BENGALI     = language.BENGALI
	BOKMAL      = language.BOKMAL
	BOSNIAN     = language.BOSNIAN
	BULGARIAN   = language.BULGARIAN
	CATALAN     = language.CATALAN
	CHINESE     = language.CHINESE
	CROATIAN    = language.CROATIAN
	CZECH       = language.CZECH
	DANISH      = language.DANISH
	DUTCH       = language.DUTCH
	ENGLISH     = language.ENGLISH
	ESPERANTO   = language.ESPERANTO
	ESTONIAN    = language.ESTONIAN
	FINNISH     = language.FINNISH
	FRENCH      = language.FRENCH
	GANDA       = language.GANDA
	GEORGIAN    = language.GEORGIAN
	GERMAN      = language.GERMAN
	GREEK       = language.GREEK
	GUJARATI    = language.GUJARATI
	HEBREW      = language.HEBREW
	HINDI       = language.HINDI
	HUNGARIAN   = language.HUNGARIAN
	ICELANDIC   = language.ICELANDIC
	INDONESIAN  = language.INDONESIAN
	IRISH       = language.IRISH
	ITALIAN     = language.ITALIAN
	JAPANESE    = language.JAPANESE
	KAZAKH      = language.KAZAKH
	KOREAN      = language.KOREAN
	LATIN       = language.LATIN
	LATVIAN     = language.LATVIAN
	LITHUANIAN  = language.LITHUANIAN
	MACEDONIAN  = language.MACEDONIAN
	MALAY       = language.MALAY
	MAORI       = language.MAORI
	MARATHI     = language.MARATHI
	MONGOLIAN   = language.MONGOLIAN
	NYNORSK     = language.NYNORSK
	PERSIAN     = language.PERSIAN
	POLISH      = language.POLISH
	PORTUGUESE  = language.PORTUGUESE
	PUNJABI     = language.PUNJABI
	ROMANIAN    = language.ROMANIAN
	RUSSIAN     = language.RUSSIAN
	SERBIAN     = language.SERBIAN
	SHONA       = language.SHONA
	SLOVAK      = language.SLOVAK
	SLOVENE     = language.SLOVENE
	SOMALI      = language.SOMALI
	SOTHO       = language.SOTHO
	SPANISH     = language.SPANISH
	SWAHILI     = language.SWAHILI
	SWEDISH     = language.SWEDISH
	TAGALOG     = language.TAGALOG
	TAMIL       = language.TAMIL
	TELUGU      = language.TELUGU
	THAI        = language.THAI
	TSONGA      = language.TSONGA
	TSWANA      = language.TSWANA
	TURKISH     = language.TURKISH
	UKRAINIAN   = language.UKRAINIAN
	URDU        = language.URDU
	VIETNAMESE  = language.VIETNAMESE
	WELSH       = language.WELSH
	XHOSA       = language.XHOSA
	YORUBA      = language.YORUBA
	ZULU        = language.ZULU
)

// AllLanguages returns every language the catalog supports, UNKNOWN excluded.
func AllLanguages() []Language { return language.All() }

// LanguageFromISOCode639_1 looks up a language by its two-letter code
// ("en", "de", ...), case-insensitive. ok is false for an unrecognized or
// malformed code.
func LanguageFromISOCode639_1(code string) (lang Language, ok bool) {
	return language.FromISO6391(code)
}

// LanguageFromISOCode639_3 looks up a language by its three-letter code
// ("eng", "deu", ...), case-insensitive.
func LanguageFromISOCode639_3(code string) (lang Language, ok bool) {
	return language.FromISO6393(code)
}

// ConfidenceValue is one entry of a ComputeLanguageConfidenceValues result:
// a candidate language paired with its relative score in [0, 1].
type ConfidenceValue struct {
	Language Language
	Value    float64
}

// Detector identifies the most likely language of a piece of text, or
// computes a full confidence ranking across its configured language set.
// A Detector is immutable once built and safe for concurrent use.
type Detector struct {
	d *detector.Detector
}

// DetectLanguageOf implements spec.md §4.6: reduce the confidence ranking
// (or a rule-path short circuit) to a single verdict, UNKNOWN included.
func (l *Detector) DetectLanguageOf(text string) Language {
	return l.d.DetectLanguageOf(text)
}

// ComputeLanguageConfidenceValues returns every candidate language's
// relative confidence for text, descending by value, language as
// secondary tiebreaker. The best candidate is always exactly 1.0. Empty
// input yields an empty slice.
func (l *Detector) ComputeLanguageConfidenceValues(text string) []ConfidenceValue {
	raw := l.d.ComputeLanguageConfidenceValues(text)
	out := make([]ConfidenceValue, len(raw))
	for i, c := range raw {
		out[i] = ConfidenceValue{Language: c.Language, Value: c.Value}
	}
	return out
}

// ConfidenceValue returns text's confidence value for a single lang, read
// out of the same ranking ComputeLanguageConfidenceValues produces. 0 if
// lang doesn't appear in the ranking (no evidence, or not configured).
func (l *Detector) ConfidenceValue(text string, lang Language) float64 {
	for _, c := range l.ComputeLanguageConfidenceValues(text) {
		if c.Language == lang {
			return c.Value
		}
	}
	return 0
}

// Builder configures and constructs a Detector, functional-options style
// over spec.md §6's configuration struct.
type Builder struct {
	languages               []Language
	minimumRelativeDistance float64
	preload                 bool
	lowAccuracy             bool
}

// NewBuilder starts a Builder active over exactly langs. At least two
// distinct, non-UNKNOWN languages are required; Build reports that error.
func NewBuilder(langs ...Language) *Builder {
	return &Builder{languages: append([]Language(nil), langs...)}
}

// NewBuilderFromAllLanguages starts a Builder active over every supported
// language.
func NewBuilderFromAllLanguages() *Builder {
	return &Builder{languages: language.All()}
}

// WithMinimumRelativeDistance sets the minimum gap the top two confidence
// values must clear before DetectLanguageOf commits to a verdict instead
// of UNKNOWN. Valid range is [0, 0.99); Build reports a value outside it.
func (b *Builder) WithMinimumRelativeDistance(d float64) *Builder {
	b.minimumRelativeDistance = d
	return b
}

// WithPreloadedLanguageModels loads every active language's n-gram models
// during Build instead of lazily on first use, trading startup latency for
// a predictable first request.
func (b *Builder) WithPreloadedLanguageModels() *Builder {
	b.preload = true
	return b
}

// WithLowAccuracyMode restricts statistical scoring to trigrams only and
// rejects texts shorter than three characters outright, trading accuracy
// for a much smaller resident model set.
func (b *Builder) WithLowAccuracyMode() *Builder {
	b.lowAccuracy = true
	return b
}

// Build validates the accumulated options and constructs a Detector.
func (b *Builder) Build() (*Detector, error) {
	d, err := detector.New(detector.Config{
		Languages:                b.languages,
		MinimumRelativeDistance:  b.minimumRelativeDistance,
		PreloadAllLanguageModels: b.preload,
		LowAccuracyMode:          b.lowAccuracy,
	})
	if err != nil {
		return nil, errors.WithOp(err, "lingua.Builder.Build")
	}
	return &Detector{d: d}, nil
}

// PreloadLanguageModels eagerly populates the process-wide model cache for
// langs, in parallel, blocking until every (language, order) pair has
// settled. Detectors sharing the cache (any Detector built afterward) see
// the warm cache immediately; this is the standalone equivalent of
// Builder.WithPreloadedLanguageModels for callers managing the cache
// outside of a single Detector's lifetime.
func PreloadLanguageModels(langs ...Language) {
	model.Preload(langs)
}
