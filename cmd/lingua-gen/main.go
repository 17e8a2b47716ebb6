// Command lingua-gen derives the three benchmark fixture files the test-data
// generator of spec.md's external collaborators calls for: a corpus' full
// sentences verbatim, its distinct single words, and adjacent word pairs.
package main

import (
	"bufio"
	"flag"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rogierslag/lingua/internal/platform/logger"
)

func main() {
	log := logger.Named("lingua-gen")

	var (
		corpus = flag.String("corpus", "", "path to a line-oriented text corpus (required)")
		outDir = flag.String("out", ".", "output directory for the generated fixtures")
	)
	flag.Parse()

	if *corpus == "" {
		log.Fatal().Msg("-corpus is required")
	}

	lines, err := readLines(*corpus)
	if err != nil {
		log.Fatal().Err(err).Str("corpus", *corpus).Msg("failed reading corpus")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", *outDir).Msg("failed creating output directory")
	}

	words := make(map[string]struct{})
	var pairs []string
	for _, line := range lines {
		fields := strings.Fields(line)
		for i, w := range fields {
			words[w] = struct{}{}
			if i+1 < len(fields) {
				pairs = append(pairs, w+" "+fields[i+1])
			}
		}
	}

	uniqueWords := make([]string, 0, len(words))
	for w := range words {
		uniqueWords = append(uniqueWords, w)
	}
	sort.Strings(uniqueWords)

	if err := writeLines(filepath.Join(*outDir, "sentences.txt"), lines); err != nil {
		log.Fatal().Err(err).Msg("failed writing sentences.txt")
	}
	if err := writeLines(filepath.Join(*outDir, "single-words.txt"), uniqueWords); err != nil {
		log.Fatal().Err(err).Msg("failed writing single-words.txt")
	}
	if err := writeLines(filepath.Join(*outDir, "word-pairs.txt"), pairs); err != nil {
		log.Fatal().Err(err).Msg("failed writing word-pairs.txt")
	}

	log.Info().
		Int("sentences", len(lines)).
		Int("single_words", len(uniqueWords)).
		Int("word_pairs", len(pairs)).
		Msg("wrote benchmark fixtures")
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
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, l := range lines {
		if _, err := w.WriteString(l + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
