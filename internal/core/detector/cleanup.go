package detector

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// cleanUp normalizes raw text before word splitting
// 1 Trim leading/trailing whitespace
// 2 Fold to lowercase (Unicode-aware)
// 3 Remove characters in the Unicode punctuation class
// 4 Remove characters in the Unicode number class
// 5 Collapse runs of whitespace to a single space
var cleanupChainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			cases.Lower(language.Und),
			runes.Remove(runes.In(unicode.P)),
			runes.Remove(runes.In(unicode.N)),
		)
	},
}

func cleanUp(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	tr := cleanupChainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	cleanupChainPool.Put(tr)

	return collapseSpaces(ns)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
