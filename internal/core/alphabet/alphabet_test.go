package alphabet

import "testing"

func TestMatchesWord(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a    Alphabet
		word string
		want bool
	}{
		{Latin, "hello", true},
		{Latin, "hello!", false},
		{Cyrillic, "привет", true},
		{Cyrillic, "hello", false},
		{Han, "中文", true},
		{Latin, "", false},
	}
	for _, c := range cases {
		if got := c.a.MatchesWord(c.word); got != c.want {
			t.Errorf("%s.MatchesWord(%q) = %v, want %v", c.a, c.word, got, c.want)
		}
	}
}

func TestOfRune(t *testing.T) {
	t.Parallel()

	a, ok := OfRune('木')
	if !ok || a != Han {
		t.Fatalf("OfRune('木') = (%v, %v), want (Han, true)", a, ok)
	}
	if _, ok := OfRune('7'); ok {
		t.Fatalf("OfRune('7') should not match any alphabet")
	}
}

func TestIsJapaneseOnly(t *testing.T) {
	t.Parallel()

	if !IsJapaneseOnly('ひ') {
		t.Fatalf("hiragana should be japanese-only")
	}
	if !IsJapaneseOnly('ア') {
		t.Fatalf("katakana should be japanese-only")
	}
	if IsJapaneseOnly('中') {
		t.Fatalf("han should not be japanese-only")
	}
}

func TestLogogramBearing(t *testing.T) {
	t.Parallel()

	lb := LogogramBearing()
	if len(lb) != 1 || lb[0] != Han {
		t.Fatalf("LogogramBearing() = %v, want [Han]", lb)
	}
	if !IsLogogramBearing(Han) {
		t.Fatalf("Han should be logogram bearing")
	}
	if IsLogogramBearing(Latin) {
		t.Fatalf("Latin should not be logogram bearing")
	}
}
