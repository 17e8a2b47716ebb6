// Package detector implements the natural-language identification pipeline:
// cleanup, word splitting, rule-based short-circuits, and statistical
// n-gram scoring with a minimum-relative-distance tie-break.
package detector

import (
	"github.com/rogierslag/lingua/internal/core/alphabet"
	"github.com/rogierslag/lingua/internal/core/language"
	"github.com/rogierslag/lingua/internal/core/model"
	"github.com/rogierslag/lingua/internal/platform/errors"
)

// Config is the detector's construction-time, caller-supplied options.
// Every Detector is immutable once New succeeds.
type Config struct {
	Languages                []language.Language
	MinimumRelativeDistance  float64
	PreloadAllLanguageModels bool
	LowAccuracyMode          bool
}

// Detector runs detection over raw text. Safe for concurrent use; its only
// mutable state is the process-wide model cache it reads through.
type Detector struct {
	languages               []language.Language
	minimumRelativeDistance float64
	lowAccuracyMode         bool
	exclusiveAlphabets      map[alphabet.Alphabet]language.Language
}

// New validates cfg and constructs a Detector. The only two failure modes
// are too few languages and an out-of-range minimum relative distance;
// both are argument-validation errors raised synchronously here, never
// during detection itself.
func New(cfg Config) (*Detector, error) {
	if len(cfg.Languages) < 2 {
		return nil, errors.New(errors.ErrorCodeInvalidArgument, "detector: at least two languages are required")
	}
	for _, l := range cfg.Languages {
		if l == language.UNKNOWN {
			return nil, errors.New(errors.ErrorCodeInvalidArgument, "detector: UNKNOWN is not a valid active language")
		}
	}
	if cfg.MinimumRelativeDistance < 0 || cfg.MinimumRelativeDistance >= 0.99 {
		return nil, errors.New(errors.ErrorCodeInvalidArgument, "detector: minimumRelativeDistance must be in [0, 0.99)")
	}

	d := &Detector{
		languages:               append([]language.Language(nil), cfg.Languages...),
		minimumRelativeDistance: cfg.MinimumRelativeDistance,
		lowAccuracyMode:         cfg.LowAccuracyMode,
		exclusiveAlphabets:      language.ExclusiveAlphabets(cfg.Languages),
	}

	if cfg.PreloadAllLanguageModels {
		model.Preload(d.languages)
	}

	return d, nil
}

// DetectLanguageOf implements §4.6: take the confidence map (or a rule-path
// short circuit) and reduce it to a single verdict.
func (d *Detector) DetectLanguageOf(text string) language.Language {
	confidences, shortCircuited := d.detect(text)
	if shortCircuited {
		return confidences[0].Language
	}

	switch len(confidences) {
	case 0:
		return language.UNKNOWN
	case 1:
		return confidences[0].Language
	}

	top, second := confidences[0].Value, confidences[1].Value
	if top == second || top-second < d.minimumRelativeDistance {
		return language.UNKNOWN
	}
	return confidences[0].Language
}

// ComputeLanguageConfidenceValues implements §4.5's output contract: a
// descending-by-value slice, language as secondary tiebreaker, best
// candidate at 1.0. Empty input yields an empty slice.
func (d *Detector) ComputeLanguageConfidenceValues(text string) []Confidence {
	confidences, _ := d.detect(text)
	return confidences
}

// detect runs cleanup through either a rule-path short circuit or the full
// statistical pass. The second return value reports whether the result is
// a rule-path short circuit (confidences[0] = {lang, 1.0}), so callers can
// skip the minimum-relative-distance comparison entirely per invariant 4.
func (d *Detector) detect(text string) ([]Confidence, bool) {
	cleaned := cleanUp(text)
	if cleaned == "" {
		return nil, false
	}

	words := splitWords(cleaned)
	if len(words) == 0 {
		return nil, false
	}

	if ruled := detectLanguageWithRules(words, d.languages, d.exclusiveAlphabets); ruled != language.UNKNOWN {
		return []Confidence{{Language: ruled, Value: 1.0}}, true
	}

	candidates := filterLanguagesByRules(words, d.languages)
	if len(candidates) == 1 {
		return []Confidence{{Language: candidates[0], Value: 1.0}}, true
	}

	return computeConfidences(cleaned, candidates, d.lowAccuracyMode), false
}
