package decisiontree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doccat/doccat/errors"
)

func TestTrainSeparable(t *testing.T) {
	features := [][]float64{{-2}, {-1.5}, {-1}, {1}, {1.5}, {2}}
	labels := []string{"bio", "bio", "bio", "ml", "ml", "ml"}

	tree, err := Train(features, labels, Params{MaxDepth: 3, MinLeaf: 1})
	require.NoError(t, err)

	// One split at the midpoint separates the classes perfectly.
	assert.Equal(t, 1, tree.Depth)
	require.Len(t, tree.Nodes, 1)
	assert.Equal(t, 0.0, tree.Nodes[0].Threshold)

	for i, row := range features {
		assert.Equal(t, labels[i], tree.PredictRow(row))
	}
	assert.Equal(t, "bio", tree.PredictRow([]float64{-7}))
	assert.Equal(t, "ml", tree.PredictRow([]float64{0.4}))
}

func TestTrainDepthTwo(t *testing.T) {
	features := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	labels := []string{"bio", "bio", "ml", "psy"}

	tree, err := Train(features, labels, Params{MaxDepth: 2, MinLeaf: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Depth)

	for i, row := range features {
		assert.Equal(t, labels[i], tree.PredictRow(row))
	}
}

func TestTrainRespectsMaxDepth(t *testing.T) {
	features := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	labels := []string{"bio", "bio", "ml", "psy"}

	tree, err := Train(features, labels, Params{MaxDepth: 1, MinLeaf: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Depth)

	// The right leaf holds one "ml" and one "psy"; the count tie goes to
	// the alphabetically first class.
	assert.Equal(t, "ml", tree.PredictRow([]float64{1, 1}))
	assert.Equal(t, "bio", tree.PredictRow([]float64{0, 0}))
}

func TestTrainPureLabels(t *testing.T) {
	features := [][]float64{{1}, {2}, {3}}
	labels := []string{"bio", "bio", "bio"}

	tree, err := Train(features, labels, Params{MaxDepth: 4, MinLeaf: 1})
	require.NoError(t, err)
	assert.Empty(t, tree.Nodes)
	assert.Equal(t, 0, tree.Depth)
	assert.Equal(t, "bio", tree.PredictRow([]float64{9}))
}

func TestTrainMinLeafBlocksSplit(t *testing.T) {
	features := [][]float64{{-2}, {-1}, {1}, {2}, {3}}
	labels := []string{"bio", "bio", "bio", "ml", "ml"}

	tree, err := Train(features, labels, Params{MaxDepth: 3, MinLeaf: 5})
	require.NoError(t, err)
	assert.Empty(t, tree.Nodes)
	assert.Equal(t, "bio", tree.PredictRow([]float64{3}))
}

func TestTrainDeterministic(t *testing.T) {
	features := [][]float64{
		{0.3, 1.2}, {0.1, 0.9}, {2.2, 0.4}, {1.9, 0.2},
		{0.5, 1.1}, {2.4, 0.5}, {0.2, 1.4}, {2.0, 0.1},
	}
	labels := []string{"bio", "bio", "ml", "ml", "bio", "ml", "bio", "ml"}

	first, err := Train(features, labels, Params{MaxDepth: 3, MinLeaf: 1})
	require.NoError(t, err)
	second, err := Train(features, labels, Params{MaxDepth: 3, MinLeaf: 1})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTrainValidatesInputs(t *testing.T) {
	features := [][]float64{{1}, {2}}
	labels := []string{"bio", "ml"}

	_, err := Train(nil, nil, Params{MaxDepth: 1, MinLeaf: 1})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParam(err))

	_, err = Train(features, labels[:1], Params{MaxDepth: 1, MinLeaf: 1})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParam(err))

	_, err = Train(features, labels, Params{MaxDepth: 0, MinLeaf: 1})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParam(err))

	_, err = Train(features, labels, Params{MaxDepth: 1, MinLeaf: 0})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParam(err))

	_, err = Train([][]float64{{1}, {2, 3}}, labels, Params{MaxDepth: 1, MinLeaf: 1})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParam(err))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	features := [][]float64{{-2}, {-1}, {1}, {2}}
	labels := []string{"bio", "bio", "ml", "ml"}
	tree, err := Train(features, labels, Params{MaxDepth: 2, MinLeaf: 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, tree))
	loaded, err := Load(&buf)
	require.NoError(t, err)

	assert.Equal(t, tree, loaded)
	assert.Equal(t, "ml", loaded.PredictRow([]float64{1.5}))
}
