package languagemodel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doccat/doccat/errors"
	"github.com/doccat/doccat/text"
)

func TestScorerPosterior(t *testing.T) {
	seqs := []text.Tokens{{"flux"}, {"flux"}, {"flux"}, {"flux"}}
	labels := []string{"bio", "bio", "bio", "astro"}
	lms, err := TrainScorer(seqs, labels)
	require.NoError(t, err)

	posteriors := lms.Posterior(text.Tokens{"flux"})
	bioProb := (3.0 / 4.0) * (3.01 / 13.01)
	astroProb := (1.0 / 4.0) * (1.01 / 11.01)
	exp := bioProb / (bioProb + astroProb)

	if math.Abs(posteriors["bio"]-exp) > 1e-8 {
		t.Errorf("expected %f, got %f\n", exp, posteriors["bio"])
	}
	assert.InDelta(t, 1.0, posteriors["bio"]+posteriors["astro"], 1e-8)
}

func TestScorerClassify(t *testing.T) {
	seqs := []text.Tokens{
		{"cell", "gene", "protein", "enzyme"},
		{"gene", "protein", "cell"},
		{"enzyme", "cell", "gene"},
		{"star", "orbit", "galaxy", "nebula"},
		{"orbit", "star", "galaxy"},
		{"nebula", "galaxy", "star"},
	}
	labels := []string{"bio", "bio", "bio", "astro", "astro", "astro"}
	lms, err := TrainScorer(seqs, labels)
	require.NoError(t, err)

	assert.Equal(t, "bio", lms.Classify(text.Tokens{"cell", "gene", "protein"}))
	assert.Equal(t, "astro", lms.Classify(text.Tokens{"star", "orbit", "galaxy"}))

	posteriors := lms.Posterior(text.Tokens{"cell", "gene"})
	assert.Greater(t, posteriors["bio"], posteriors["astro"])
}

func TestTrainScorerValidatesInputs(t *testing.T) {
	_, err := TrainScorer([]text.Tokens{{"a"}}, []string{"bio", "ml"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParam(err))

	_, err = TrainScorer(nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParam(err))
}
