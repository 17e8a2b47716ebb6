// Package model holds the process-wide n-gram probability caches and the
// loader that fills them from embedded per-language resource files. It is
// the runtime counterpart of the training/serialization utility that
// produces those files; this package only consumes their output format.
package model

import (
	"embed"
	"encoding/json"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/rogierslag/lingua/internal/core/language"
	"github.com/rogierslag/lingua/internal/core/ngram"
	"github.com/rogierslag/lingua/internal/platform/logger"
)

var log = logger.Named("model")

//go:embed resources/language-models
var resources embed.FS

// fsys is the filesystem load reads from. It is a package variable rather
// than a direct reference to resources so tests can point it at a small
// fixture tree without touching the production resource bundle.
var fsys fs.FS = resources

// Order is an n-gram order, 1 through 5. Each order maps to its own
// resource file name and its own process-wide cache.
type Order int

const (
	Unigram    Order = 1
	Bigram     Order = 2
	Trigram    Order = 3
	Quadrigram Order = 4
	Fivegram   Order = 5
)

// Orders lists every supported order, lowest first.
var Orders = []Order{Unigram, Bigram, Trigram, Quadrigram, Fivegram}

var resourceNames = map[Order]string{
	Unigram:    "unigrams",
	Bigram:     "bigrams",
	Trigram:    "trigrams",
	Quadrigram: "quadrigrams",
	Fivegram:   "fivegrams",
}

// LoadedModel is the runtime {n-gram string -> probability} table for one
// (language, order) pair. A missing key means "no evidence," not zero
// evidence with confidence; callers must distinguish absence from a stored
// zero, which is why Probability returns 0 for both (spec treats them the
// same: no contribution).
type LoadedModel map[string]float64

// Probability returns the stored probability for n, or 0 if n is absent.
func (m LoadedModel) Probability(n string) float64 { return m[n] }

// cache is one order's {Language -> LoadedModel}, populated at most once
// per language. Readers never block once an entry exists; concurrent
// misses for the same language collapse onto a single load via group.
type cache struct {
	mu     sync.RWMutex
	tables map[language.Language]LoadedModel
	group  singleflight.Group
}

func newCache() *cache {
	return &cache{tables: make(map[language.Language]LoadedModel)}
}

var caches = map[Order]*cache{
	Unigram:    newCache(),
	Bigram:     newCache(),
	Trigram:    newCache(),
	Quadrigram: newCache(),
	Fivegram:   newCache(),
}

// Get returns the loaded model for (lang, order), populating the shared
// cache at most once. A missing resource yields an empty, non-nil table
// rather than an error: the caller loses signal for that pair, nothing
// more.
func Get(lang language.Language, order Order) LoadedModel {
	c, ok := caches[order]
	if !ok {
		return LoadedModel{}
	}

	c.mu.RLock()
	m, ok := c.tables[lang]
	c.mu.RUnlock()
	if ok {
		return m
	}

	v, _, _ := c.group.Do(lang.String(), func() (any, error) {
		loaded := load(lang, order)
		c.mu.Lock()
		c.tables[lang] = loaded
		c.mu.Unlock()
		return loaded, nil
	})
	return v.(LoadedModel)
}

// Preload populates every (language, order) pair in langs eagerly and in
// parallel, then blocks until all have settled.
func Preload(langs []language.Language) {
	var wg sync.WaitGroup
	for _, l := range langs {
		for _, o := range Orders {
			wg.Add(1)
			go func(l language.Language, o Order) {
				defer wg.Done()
				Get(l, o)
			}(l, o)
		}
	}
	wg.Wait()
}

// FirstPositiveProbability walks n's back-off range (n itself, then its
// successive one-character-shorter prefixes down to length 1) and returns
// the probability of the first prefix whose loaded model for lang has a
// positive entry. Returns 0 if no prefix carries evidence.
func FirstPositiveProbability(lang language.Language, n ngram.Ngram) float64 {
	for _, candidate := range n.BackOffRange() {
		order := Order(candidate.Len())
		if order < Unigram || order > Fivegram {
			continue
		}
		if p := Get(lang, order).Probability(candidate.String()); p > 0 {
			return p
		}
	}
	return 0
}

type resourceDoc struct {
	Language string            `json:"language"`
	Ngrams   map[string]string `json:"ngrams"`
}

// load reads "resources/language-models/{iso1}/{name}.json" for lang and
// order. A language with no ISO 639-1 code, a missing file, or malformed
// JSON all resolve to an empty table: loading never raises mid-detection.
func load(lang language.Language, order Order) LoadedModel {
	iso1 := language.Get(lang).ISO6391
	if iso1 == "" {
		return LoadedModel{}
	}
	name, ok := resourceNames[order]
	if !ok {
		return LoadedModel{}
	}

	path := "resources/language-models/" + iso1 + "/" + name + ".json"
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return LoadedModel{}
	}

	var doc resourceDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn().Str("language", iso1).Str("order", name).Err(err).
			Msg("malformed language model resource, falling back to empty table")
		return LoadedModel{}
	}

	table := make(LoadedModel, len(doc.Ngrams))
	for frac, ngrams := range doc.Ngrams {
		p, ok := parseFraction(frac)
		if !ok {
			continue
		}
		for _, n := range strings.Fields(ngrams) {
			table[n] = p
		}
	}
	return table
}

// parseFraction accepts a reduced "numerator/denominator" key and returns
// its decimal value. Rejects anything outside 0 < numerator <= denominator.
func parseFraction(s string) (float64, bool) {
	num, den, found := strings.Cut(s, "/")
	if !found {
		return 0, false
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, false
	}
	if n <= 0 || d <= 0 || n > d {
		return 0, false
	}
	return n / d, true
}
