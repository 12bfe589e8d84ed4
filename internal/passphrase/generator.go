package passphrase

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/custodia-labs/rosterpass-cli/internal/core/domain"
)

// Generator produces random passphrases from a fixed corpus. It is safe
// for sequential reuse across a whole batch; configuration is validated
// once at construction so Generate itself cannot fail.
type Generator struct {
	corpus    Corpus
	wordCount int
	separator string
}

// NewGenerator creates a generator that joins wordCount corpus words with
// the given separator. Returns domain.ErrGeneratorConfig for an empty
// corpus or a word count below one. No case transformation is applied;
// passphrases carry whatever case the corpus entries have.
func NewGenerator(corpus Corpus, wordCount int, separator string) (*Generator, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("%w: empty corpus", domain.ErrGeneratorConfig)
	}
	if wordCount < 1 {
		return nil, fmt.Errorf("%w: word count %d", domain.ErrGeneratorConfig, wordCount)
	}
	return &Generator{
		corpus:    corpus,
		wordCount: wordCount,
		separator: separator,
	}, nil
}

// Generate returns a fresh passphrase. Words are selected independently
// and uniformly with replacement from the corpus, using the process-wide
// random source; output is never deterministic across runs.
func (g *Generator) Generate() string {
	words := make([]string, g.wordCount)
	for i := range words {
		words[i] = g.corpus[rand.Intn(len(g.corpus))]
	}
	return strings.Join(words, g.separator)
}
