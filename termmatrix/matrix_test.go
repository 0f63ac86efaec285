package termmatrix

import (
	"testing"

	"github.com/doccat/doccat/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMatrixCounts(t *testing.T) {
	seqs := []text.Tokens{
		{"gene", "cell", "gene"},
		{"orbit", "cell"},
		{},
	}
	vocab, err := BuildVocabulary(seqs[:2])
	require.NoError(t, err)
	m := BuildMatrix(seqs, vocab)

	require.Equal(t, 3, m.NumDocs())
	require.Equal(t, 3, m.NumTerms())

	gene, ok := vocab.Index("gene")
	require.True(t, ok)
	assert.Equal(t, 2, m.Count(0, gene))
	assert.Equal(t, 0, m.Count(1, gene))
	assert.Equal(t, 3, m.RowTotal(0))
	assert.Equal(t, 0, m.RowTotal(2))
}

func TestBuildMatrixIgnoresUnknownTokens(t *testing.T) {
	train := []text.Tokens{
		{"star", "orbit", "star"},
		{"cell", "divide"},
	}
	vocab, err := BuildVocabulary(train)
	require.NoError(t, err)

	// A held-out document projects onto the training vocabulary: known
	// tokens are counted, unknown ones skipped.
	test := []text.Tokens{{"star", "quasar", "divide", "star"}}
	m := BuildMatrix(test, vocab)

	assert.Equal(t, 3, m.RowTotal(0))
	_, ok := vocab.Index("quasar")
	assert.False(t, ok)
}

func TestMatrixRowConservation(t *testing.T) {
	seqs := []text.Tokens{
		{"ion", "plasma", "ion", "flux"},
		{"enzyme"},
		{},
	}
	vocab, err := BuildVocabulary(seqs)
	require.NoError(t, err)
	m := BuildMatrix(seqs, vocab)

	for di, seq := range seqs {
		assert.Equal(t, len(seq), m.RowTotal(di))
	}
}

func TestDocumentFrequency(t *testing.T) {
	seqs := []text.Tokens{
		{"cell", "gene"},
		{"cell"},
		{"orbit"},
	}
	vocab, err := BuildVocabulary(seqs)
	require.NoError(t, err)
	m := BuildMatrix(seqs, vocab)

	cell, _ := vocab.Index("cell")
	gene, _ := vocab.Index("gene")
	orbit, _ := vocab.Index("orbit")
	assert.Equal(t, 2, m.DocumentFrequency(cell))
	assert.Equal(t, 1, m.DocumentFrequency(gene))
	assert.Equal(t, 1, m.DocumentFrequency(orbit))
}

func TestDense(t *testing.T) {
	seqs := []text.Tokens{{"boson", "axion", "boson"}}
	vocab, err := BuildVocabulary(seqs)
	require.NoError(t, err)
	m := BuildMatrix(seqs, vocab)

	assert.Equal(t, []float64{1, 2}, m.DenseRow(0))

	dense := m.Dense()
	require.Len(t, dense, 1)
	assert.Equal(t, []float64{1, 2}, dense[0])
}
