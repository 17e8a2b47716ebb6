package detector

import (
	"testing"

	"github.com/rogierslag/lingua/internal/core/language"
	"github.com/rogierslag/lingua/internal/core/model"
)

func TestOrderSetPicksEveryOrderUpToTextLength(t *testing.T) {
	orders := orderSet("abc", false)
	want := []model.Order{model.Unigram, model.Bigram, model.Trigram}
	if len(orders) != len(want) {
		t.Fatalf("orderSet() = %v, want %v", orders, want)
	}
	for i, o := range want {
		if orders[i] != o {
			t.Fatalf("orderSet() = %v, want %v", orders, want)
		}
	}
}

func TestOrderSetLongTextUsesTrigramOnly(t *testing.T) {
	long := make([]rune, 120)
	for i := range long {
		long[i] = 'a'
	}
	orders := orderSet(string(long), false)
	if len(orders) != 1 || orders[0] != model.Trigram {
		t.Fatalf("orderSet() on >=120 runes = %v, want [Trigram]", orders)
	}
}

func TestOrderSetLowAccuracyModeUsesTrigramOnly(t *testing.T) {
	orders := orderSet("abcdefgh", true)
	if len(orders) != 1 || orders[0] != model.Trigram {
		t.Fatalf("orderSet() in low accuracy mode = %v, want [Trigram]", orders)
	}
}

// candidates with real bundled resources -- these assertions hold for any
// underlying model data and do not depend on which language actually wins.
var scoringCandidates = []language.Language{
	language.ENGLISH, language.GERMAN, language.FRENCH, language.SPANISH, language.RUSSIAN,
}

func TestComputeConfidencesInvariants(t *testing.T) {
	out := computeConfidences("the quick brown fox jumps over the lazy dog", scoringCandidates, false)
	if len(out) == 0 {
		t.Fatalf("expected at least one confidence value")
	}
	if out[0].Value != 1.0 {
		t.Fatalf("best candidate must scale to 1.0, got %v", out[0].Value)
	}
	for i, c := range out {
		if c.Value <= 0 || c.Value > 1.0 {
			t.Fatalf("confidence[%d] = %v out of (0, 1.0]", i, c.Value)
		}
		if i > 0 && out[i-1].Value < c.Value {
			t.Fatalf("confidences must be sorted descending: %v", out)
		}
	}
}

func TestComputeConfidencesLowAccuracyModeRejectsShortText(t *testing.T) {
	out := computeConfidences("hi", scoringCandidates, true)
	if out != nil {
		t.Fatalf("expected nil for sub-trigram text in low accuracy mode, got %v", out)
	}
}

func TestComputeConfidencesNoEvidenceIsNil(t *testing.T) {
	out := computeConfidences("zzzzzzzzzz", []language.Language{language.ARABIC, language.HEBREW}, false)
	if out != nil {
		t.Fatalf("expected nil when no candidate has a model loaded, got %v", out)
	}
}
