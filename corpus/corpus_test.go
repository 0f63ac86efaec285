package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Corpus {
	return Corpus{
		{ID: "a1", Text: "Neurons fire in patterns.", Label: "bio"},
		{ID: "a2", Text: "Stars collapse into dwarfs.", Label: "astro"},
		{ID: "a3", Text: "Cells divide during mitosis.", Label: "bio"},
	}
}

func TestCorpusAccessors(t *testing.T) {
	docs := sample()

	assert.Equal(t, []string{"bio", "astro", "bio"}, docs.Labels())
	assert.Equal(t, []string{"astro", "bio"}, docs.Classes())

	texts := docs.Texts()
	require.Len(t, texts, 3)
	assert.Equal(t, "Stars collapse into dwarfs.", texts[1])
}

func TestCorpusTokenize(t *testing.T) {
	docs := Corpus{
		{ID: "a1", Text: "The cats were running!", Label: "bio"},
		{ID: "a2", Text: "12, 34!", Label: "astro"},
	}
	seqs := docs.Tokenize()
	require.Len(t, seqs, 2)
	assert.Equal(t, []string{"cat", "run"}, []string(seqs[0]))
	assert.Empty(t, seqs[1])
}
