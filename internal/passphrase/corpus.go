// Package passphrase generates memorable word-based credentials. Words
// are drawn uniformly with replacement from a corpus and joined with a
// separator; the default corpus is compiled into the binary.
package passphrase

import (
	_ "embed"
	"strings"
)

//go:embed words.txt
var wordsFile string

// Corpus is a list of candidate passphrase words.
type Corpus []string

// ParseCorpus splits newline-separated word-list text into a corpus.
// Blank lines and surrounding whitespace are dropped; word case is
// preserved.
func ParseCorpus(text string) Corpus {
	lines := strings.Split(text, "\n")
	corpus := make(Corpus, 0, len(lines))
	for _, line := range lines {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		corpus = append(corpus, word)
	}
	return corpus
}

// DefaultCorpus returns the word list compiled into the binary.
func DefaultCorpus() Corpus {
	return ParseCorpus(wordsFile)
}
