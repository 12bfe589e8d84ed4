package passphrase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rosterpass-cli/internal/core/domain"
)

func TestParseCorpus(t *testing.T) {
	t.Run("splits lines and drops blanks", func(t *testing.T) {
		corpus := ParseCorpus("apple\n\nberry\n  cedar  \n")

		assert.Equal(t, Corpus{"apple", "berry", "cedar"}, corpus)
	})

	t.Run("preserves word case", func(t *testing.T) {
		corpus := ParseCorpus("Apple\nBERRY")

		assert.Equal(t, Corpus{"Apple", "BERRY"}, corpus)
	})

	t.Run("empty text yields empty corpus", func(t *testing.T) {
		assert.Empty(t, ParseCorpus(""))
	})
}

func TestDefaultCorpus(t *testing.T) {
	corpus := DefaultCorpus()

	require.NotEmpty(t, corpus)
	for _, word := range corpus {
		assert.NotEmpty(t, word)
		assert.Equal(t, strings.TrimSpace(word), word)
	}
}

func TestNewGenerator(t *testing.T) {
	t.Run("rejects empty corpus", func(t *testing.T) {
		gen, err := NewGenerator(nil, 2, "-")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrGeneratorConfig)
		assert.Nil(t, gen)
	})

	t.Run("rejects word count below one", func(t *testing.T) {
		gen, err := NewGenerator(Corpus{"apple"}, 0, "-")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrGeneratorConfig)
		assert.Nil(t, gen)
	})

	t.Run("accepts a single-word corpus", func(t *testing.T) {
		gen, err := NewGenerator(Corpus{"apple"}, 3, "-")

		require.NoError(t, err)
		require.NotNil(t, gen)
		assert.Equal(t, "apple-apple-apple", gen.Generate())
	})
}

func TestGenerator_Generate(t *testing.T) {
	corpus := Corpus{"apple", "berry", "cedar", "dune", "ember"}

	t.Run("joins exactly the configured number of words", func(t *testing.T) {
		gen, err := NewGenerator(corpus, 3, "-")
		require.NoError(t, err)

		for i := 0; i < 50; i++ {
			words := strings.Split(gen.Generate(), "-")
			assert.Len(t, words, 3)
		}
	})

	t.Run("every word comes from the corpus", func(t *testing.T) {
		gen, err := NewGenerator(corpus, 3, "-")
		require.NoError(t, err)

		for i := 0; i < 50; i++ {
			for _, word := range strings.Split(gen.Generate(), "-") {
				assert.Contains(t, corpus, word)
			}
		}
	})

	t.Run("uses the configured separator", func(t *testing.T) {
		gen, err := NewGenerator(corpus, 2, ".")
		require.NoError(t, err)

		assert.Contains(t, gen.Generate(), ".")
	})

	t.Run("applies no case transformation", func(t *testing.T) {
		gen, err := NewGenerator(Corpus{"Apple"}, 2, "-")
		require.NoError(t, err)

		assert.Equal(t, "Apple-Apple", gen.Generate())
	})

	t.Run("successive calls vary", func(t *testing.T) {
		gen, err := NewGenerator(DefaultCorpus(), 3, "-")
		require.NoError(t, err)

		// With a 300+ word corpus and three words per phrase, 20 equal
		// outputs in a row would mean a broken random source.
		seen := make(map[string]struct{})
		for i := 0; i < 20; i++ {
			seen[gen.Generate()] = struct{}{}
		}
		assert.Greater(t, len(seen), 1)
	})
}
