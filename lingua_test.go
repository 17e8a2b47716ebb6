package lingua

import "testing"

func TestBuilderRejectsFewerThanTwoLanguages(t *testing.T) {
	t.Parallel()

	if _, err := NewBuilder(ENGLISH).Build(); err == nil {
		t.Fatal("expected an error for a single-language builder")
	}
}

func TestBuilderBuildsOverAllLanguages(t *testing.T) {
	t.Parallel()

	d, err := NewBuilderFromAllLanguages().Build()
	if err != nil {
		t.Fatalf("NewBuilderFromAllLanguages().Build(): %v", err)
	}
	if got := d.DetectLanguageOf("   "); got != UNKNOWN {
		t.Fatalf("whitespace-only input: got %v, want UNKNOWN", got)
	}
}

func TestLanguageFromISOCodes(t *testing.T) {
	t.Parallel()

	if got, ok := LanguageFromISOCode639_1("EN"); !ok || got != ENGLISH {
		t.Fatalf("LanguageFromISOCode639_1(EN) = (%v, %v), want (ENGLISH, true)", got, ok)
	}
	if got, ok := LanguageFromISOCode639_3("deu"); !ok || got != GERMAN {
		t.Fatalf("LanguageFromISOCode639_3(deu) = (%v, %v), want (GERMAN, true)", got, ok)
	}
	if _, ok := LanguageFromISOCode639_1("zzz-not-a-code"); ok {
		t.Fatal("expected ok=false for an unrecognized code")
	}
}

func TestDetectorConfidenceValueMatchesRanking(t *testing.T) {
	t.Parallel()

	d, err := NewBuilder(ENGLISH, GERMAN).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	ranking := d.ComputeLanguageConfidenceValues("hallo und guten tag an alle zusammen heute")
	if len(ranking) == 0 {
		t.Fatal("expected a nonempty ranking for German-looking text against an EN/DE active set")
	}
	for _, c := range ranking {
		if got := d.ConfidenceValue("hallo und guten tag an alle zusammen heute", c.Language); got != c.Value {
			t.Fatalf("ConfidenceValue(%v) = %v, want %v", c.Language, got, c.Value)
		}
	}
	if got := d.ConfidenceValue("hallo und guten tag an alle zusammen heute", FRENCH); got != 0 {
		t.Fatalf("ConfidenceValue for a language outside the active set: got %v, want 0", got)
	}
}

func TestMinimumRelativeDistanceOutOfRangeIsRejected(t *testing.T) {
	t.Parallel()

	if _, err := NewBuilder(ENGLISH, GERMAN).WithMinimumRelativeDistance(1.0).Build(); err == nil {
		t.Fatal("expected an error for minimumRelativeDistance >= 0.99")
	}
}
