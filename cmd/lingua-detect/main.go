// Command lingua-detect runs the detector over a single piece of text from
// the command line and prints either its best guess or its full confidence
// ranking as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rogierslag/lingua"
	"github.com/rogierslag/lingua/internal/platform/config"
	"github.com/rogierslag/lingua/internal/platform/logger"
)

func main() {
	root := config.New()
	cfg := root.Prefix("LINGUA_DETECT_")
	log := logger.Named("lingua-detect")

	var (
		langsFlag   = flag.String("languages", "", "comma-separated ISO 639-1/639-3 codes to restrict detection to (default: all)")
		all         = flag.Bool("all", false, "detect against every supported language")
		text        = flag.String("text", "", "text to classify (default: read stdin)")
		minDistance = flag.Float64("min-distance", cfg.MayFloat64("MIN_DISTANCE", 0), "minimum relative distance between the top two candidates")
		lowAccuracy = flag.Bool("low-accuracy", cfg.MayBool("LOW_ACCURACY", false), "restrict statistical scoring to trigrams")
		preload     = flag.Bool("preload", cfg.MayBool("PRELOAD", false), "preload every active language's models before the first request")
		confidences = flag.Bool("confidences", false, "print the full confidence ranking instead of just the best guess")
	)
	flag.Parse()

	langs, err := resolveLanguages(*langsFlag, *all)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -languages")
	}

	b := lingua.NewBuilder(langs...)
	if *all {
		b = lingua.NewBuilderFromAllLanguages()
	}
	b = b.WithMinimumRelativeDistance(*minDistance)
	if *lowAccuracy {
		b = b.WithLowAccuracyMode()
	}
	if *preload {
		b = b.WithPreloadedLanguageModels()
	}

	d, err := b.Build()
	if err != nil {
		log.Fatal().Err(err).Msg("could not build detector")
	}

	input := *text
	if input == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("failed reading stdin")
		}
		input = string(raw)
	}

	if *confidences {
		printConfidences(d, input)
		return
	}

	fmt.Println(d.DetectLanguageOf(input).String())
}

func resolveLanguages(csv string, all bool) ([]lingua.Language, error) {
	if all {
		return lingua.AllLanguages(), nil
	}
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return lingua.AllLanguages(), nil
	}

	var langs []lingua.Language
	for _, code := range strings.Split(csv, ",") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if l, ok := lingua.LanguageFromISOCode639_1(code); ok {
			langs = append(langs, l)
			continue
		}
		if l, ok := lingua.LanguageFromISOCode639_3(code); ok {
			langs = append(langs, l)
			continue
		}
		return nil, fmt.Errorf("unrecognized language code %q", code)
	}
	return langs, nil
}

type confidenceEntry struct {
	Language string  `json:"language"`
	Value    float64 `json:"value"`
}

func printConfidences(d *lingua.Detector, text string) {
	ranking := d.ComputeLanguageConfidenceValues(text)
	entries := make([]confidenceEntry, len(ranking))
	for i, c := range ranking {
		entries[i] = confidenceEntry{Language: c.Language.String(), Value: c.Value}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(entries)
}
