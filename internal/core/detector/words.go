package detector

import (
	"strings"

	"github.com/rogierslag/lingua/internal/core/alphabet"
)

// splitWords splits cleaned text at single-space boundaries, additionally
// carving out every logogram character (Han today) as its own one-character
// word regardless of what surrounds it. Empty segments are discarded.
func splitWords(cleaned string) []string {
	if cleaned == "" {
		return nil
	}

	var words []string
	for _, segment := range strings.Split(cleaned, " ") {
		words = append(words, splitLogograms(segment)...)
	}
	return words
}

func splitLogograms(segment string) []string {
	if segment == "" {
		return nil
	}

	var out []string
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			out = append(out, run.String())
			run.Reset()
		}
	}

	for _, r := range segment {
		a, ok := alphabet.OfRune(r)
		if ok && alphabet.IsLogogramBearing(a) {
			flush()
			out = append(out, string(r))
			continue
		}
		run.WriteRune(r)
	}
	flush()

	return out
}
