// Command lingua-train builds n-gram language models from a line-oriented
// text corpus and serializes them in the JSON format internal/core/model
// embeds and loads at runtime.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"

	"github.com/rogierslag/lingua/internal/core/trainer"
	"github.com/rogierslag/lingua/internal/platform/logger"
)

func main() {
	log := logger.Named("lingua-train")

	var (
		corpus = flag.String("corpus", "", "path to a line-oriented text corpus, one sentence per line (required)")
		iso1   = flag.String("lang", "", "ISO 639-1 code of the trained language, e.g. en (required)")
		outDir = flag.String("out", "resources/language-models", "output directory root; one subdirectory per -lang is created under it")
	)
	flag.Parse()

	if *corpus == "" || *iso1 == "" {
		log.Fatal().Msg("-corpus and -lang are required")
	}

	lines, err := readLines(*corpus)
	if err != nil {
		log.Fatal().Err(err).Str("corpus", *corpus).Msg("failed reading corpus")
	}

	langDir := filepath.Join(*outDir, *iso1)
	if err := os.MkdirAll(langDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", langDir).Msg("failed creating output directory")
	}

	names := map[int]string{1: "unigrams", 2: "bigrams", 3: "trigrams", 4: "quadrigrams", 5: "fivegrams"}
	for order := 1; order <= 5; order++ {
		model := trainer.Train(lines, order)
		doc := model.ToResourceDoc(*iso1)

		path := filepath.Join(langDir, names[order]+".json")
		if err := writeJSON(path, doc); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed writing resource")
		}
		log.Info().Str("path", path).Int("distinct_ngrams", len(model.AbsoluteFrequencies)).Msg("wrote language model")
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
