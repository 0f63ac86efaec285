package crossval

import (
	"math"
	"testing"

	"github.com/doccat/doccat/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeatLabels(counts map[string]int) []string {
	var labels []string
	for class, n := range counts {
		for i := 0; i < n; i++ {
			labels = append(labels, class)
		}
	}
	return labels
}

func TestStratifiedPartition(t *testing.T) {
	labels := []string{"bio", "ml", "bio", "ml", "bio", "ml", "bio", "ml", "bio", "ml"}
	folds, err := Stratified(labels, 5, 1, 7)
	require.NoError(t, err)
	require.Len(t, folds, 5)

	seen := make(map[int]int)
	for _, fold := range folds {
		require.Len(t, fold.Holdout, 2)
		require.Len(t, fold.Train, 8)

		// Each holdout keeps the 50/50 class balance: one of each.
		byClass := make(map[string]int)
		for _, idx := range fold.Holdout {
			seen[idx]++
			byClass[labels[idx]]++
		}
		assert.Equal(t, 1, byClass["bio"])
		assert.Equal(t, 1, byClass["ml"])

		// Train and holdout are disjoint and together cover everything.
		covered := make(map[int]bool, len(labels))
		for _, idx := range fold.Holdout {
			covered[idx] = true
		}
		for _, idx := range fold.Train {
			assert.False(t, covered[idx])
			covered[idx] = true
		}
		assert.Len(t, covered, len(labels))
	}

	// Across one repetition every index is held out exactly once.
	require.Len(t, seen, len(labels))
	for idx, n := range seen {
		assert.Equal(t, 1, n, "index %d held out %d times", idx, n)
	}
}

func TestStratifiedRepeats(t *testing.T) {
	labels := repeatLabels(map[string]int{"bio": 6, "ml": 6})
	k, repeats := 3, 4
	folds, err := Stratified(labels, k, repeats, 11)
	require.NoError(t, err)
	require.Len(t, folds, k*repeats)

	for r := 0; r < repeats; r++ {
		seen := make(map[int]int)
		for _, fold := range folds[r*k : (r+1)*k] {
			for _, idx := range fold.Holdout {
				seen[idx]++
			}
		}
		require.Len(t, seen, len(labels))
		for _, n := range seen {
			assert.Equal(t, 1, n)
		}
	}
}

func TestStratifiedDeterministic(t *testing.T) {
	labels := repeatLabels(map[string]int{"bio": 15, "ml": 15})

	first, err := Stratified(labels, 5, 2, 42)
	require.NoError(t, err)
	second, err := Stratified(labels, 5, 2, 42)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := Stratified(labels, 5, 2, 43)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestStratifiedProportions(t *testing.T) {
	labels := repeatLabels(map[string]int{"bio": 10, "ml": 14, "psy": 16})
	k := 4
	folds, err := Stratified(labels, k, 1, 3)
	require.NoError(t, err)

	global := map[string]float64{
		"bio": 10.0 / 40.0,
		"ml":  14.0 / 40.0,
		"psy": 16.0 / 40.0,
	}
	eps := 1.0 / float64(k)
	for _, fold := range folds {
		byClass := make(map[string]int)
		for _, idx := range fold.Holdout {
			byClass[labels[idx]]++
		}
		for class, want := range global {
			got := float64(byClass[class]) / float64(len(fold.Holdout))
			assert.LessOrEqual(t, math.Abs(got-want), eps,
				"class %s proportion %f vs global %f", class, got, want)
		}
	}
}

func TestStratifiedClassTooSmall(t *testing.T) {
	labels := []string{"bio", "bio", "bio", "ml"}
	_, err := Stratified(labels, 2, 1, 1)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParam(err))
	assert.Contains(t, err.Error(), "ml")
}

func TestStratifiedBadParams(t *testing.T) {
	labels := []string{"bio", "bio", "ml", "ml"}

	_, err := Stratified(labels, 1, 1, 1)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParam(err))

	_, err = Stratified(labels, 2, 0, 1)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParam(err))

	_, err = Stratified(nil, 2, 1, 1)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParam(err))
}
