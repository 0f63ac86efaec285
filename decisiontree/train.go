package decisiontree

import (
	"fmt"
	"sort"

	"github.com/doccat/doccat/errors"
)

// Params are the hyperparameters of Train.
type Params struct {
	// MaxDepth caps the number of splits on any root-to-leaf path.
	MaxDepth int `json:"max_depth"`
	// MinLeaf is the smallest number of training rows a leaf may hold.
	MinLeaf int `json:"min_leaf"`
}

func (p Params) String() string {
	return fmt.Sprintf("maxDepth=%d minLeaf=%d", p.MaxDepth, p.MinLeaf)
}

// Train fits a CART-style classification tree: splits minimize weighted Gini
// impurity, thresholds sit midway between consecutive distinct feature
// values, and the first strict improvement in column-then-threshold order
// wins. Training is fully deterministic for identical input.
func Train(features [][]float64, labels []string, params Params) (*DecisionTree, error) {
	if len(features) == 0 {
		return nil, errors.InvalidParamf("no training rows")
	}
	if len(features) != len(labels) {
		return nil, errors.InvalidParamf("%d feature rows for %d labels", len(features), len(labels))
	}
	if params.MaxDepth < 1 {
		return nil, errors.InvalidParamf("max depth %d: need at least 1", params.MaxDepth)
	}
	if params.MinLeaf < 1 {
		return nil, errors.InvalidParamf("min leaf size %d: need at least 1", params.MinLeaf)
	}
	width := len(features[0])
	if width == 0 {
		return nil, errors.InvalidParamf("feature rows are empty")
	}
	for i, row := range features {
		if len(row) != width {
			return nil, errors.InvalidParamf("row %d has %d features, row 0 has %d", i, len(row), width)
		}
	}

	b := newBuilder(features, labels, params)
	idxs := make([]int, len(features))
	for i := range idxs {
		idxs[i] = i
	}
	b.grow(idxs, 0)

	return &DecisionTree{
		Nodes:       b.nodes,
		Outputs:     b.outputs,
		FeatureSize: width,
		Depth:       b.depth,
	}, nil
}

type builder struct {
	features [][]float64
	y        []int
	classes  []string
	params   Params

	nodes   []Node
	outputs []string
	depth   int
}

func newBuilder(features [][]float64, labels []string, params Params) *builder {
	seen := make(map[string]bool)
	var classes []string
	for _, label := range labels {
		if !seen[label] {
			seen[label] = true
			classes = append(classes, label)
		}
	}
	// Class order is fixed up front so every impurity sum and every
	// majority tie-break runs in the same order on every call.
	sort.Strings(classes)

	classIdx := make(map[string]int, len(classes))
	for i, class := range classes {
		classIdx[class] = i
	}
	y := make([]int, len(labels))
	for i, label := range labels {
		y[i] = classIdx[label]
	}

	return &builder{
		features: features,
		y:        y,
		classes:  classes,
		params:   params,
	}
}

// grow builds the subtree over idxs and returns its child link: a node index
// or, for a leaf, an output index.
func (b *builder) grow(idxs []int, depth int) (int, bool) {
	if depth >= b.params.MaxDepth || len(idxs) < 2*b.params.MinLeaf || b.pure(idxs) {
		return b.leaf(idxs), true
	}
	col, threshold, ok := b.bestSplit(idxs)
	if !ok {
		return b.leaf(idxs), true
	}

	var left, right []int
	for _, idx := range idxs {
		if b.features[idx][col] < threshold {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}

	ni := len(b.nodes)
	b.nodes = append(b.nodes, Node{})
	if depth+1 > b.depth {
		b.depth = depth + 1
	}
	lc, ll := b.grow(left, depth+1)
	rc, rl := b.grow(right, depth+1)
	b.nodes[ni] = Node{
		FeatureIndex: col,
		Threshold:    threshold,
		LeftChild:    lc,
		LeftIsLeaf:   ll,
		RightChild:   rc,
		RightIsLeaf:  rl,
	}
	return ni, false
}

func (b *builder) pure(idxs []int) bool {
	first := b.y[idxs[0]]
	for _, idx := range idxs[1:] {
		if b.y[idx] != first {
			return false
		}
	}
	return true
}

// leaf records the majority label of idxs as a new output bin. Count ties go
// to the alphabetically first class.
func (b *builder) leaf(idxs []int) int {
	counts := make([]int, len(b.classes))
	for _, idx := range idxs {
		counts[b.y[idx]]++
	}
	best := 0
	for c := 1; c < len(counts); c++ {
		if counts[c] > counts[best] {
			best = c
		}
	}
	b.outputs = append(b.outputs, b.classes[best])
	return len(b.outputs) - 1
}

// bestSplit scans every column for the threshold with the lowest weighted
// Gini impurity that still leaves MinLeaf rows on each side. It reports no
// split when nothing strictly improves on the parent impurity.
func (b *builder) bestSplit(idxs []int) (int, float64, bool) {
	n := len(idxs)
	total := make([]int, len(b.classes))
	for _, idx := range idxs {
		total[b.y[idx]]++
	}

	bestCol, bestThreshold, found := -1, 0.0, false
	bestScore := impurity(total, n)

	width := len(b.features[idxs[0]])
	sorted := make([]int, n)
	left := make([]int, len(b.classes))
	for col := 0; col < width; col++ {
		copy(sorted, idxs)
		sort.SliceStable(sorted, func(i, j int) bool {
			return b.features[sorted[i]][col] < b.features[sorted[j]][col]
		})

		for i := range left {
			left[i] = 0
		}
		var nl int
		for i := 0; i < n-1; i++ {
			idx := sorted[i]
			left[b.y[idx]]++
			nl++

			v, next := b.features[idx][col], b.features[sorted[i+1]][col]
			if v == next {
				continue
			}
			if nl < b.params.MinLeaf || n-nl < b.params.MinLeaf {
				continue
			}
			score := splitImpurity(total, left, nl, n)
			if score < bestScore-1e-12 {
				bestScore = score
				bestCol = col
				bestThreshold = (v + next) / 2
				found = true
			}
		}
	}
	return bestCol, bestThreshold, found
}

func impurity(counts []int, n int) float64 {
	g := 1.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		g -= p * p
	}
	return g
}

func splitImpurity(total, left []int, nl, n int) float64 {
	nr := n - nl
	gl, gr := 1.0, 1.0
	for ci, tc := range total {
		pl := float64(left[ci]) / float64(nl)
		pr := float64(tc-left[ci]) / float64(nr)
		gl -= pl * pl
		gr -= pr * pr
	}
	return (float64(nl)*gl + float64(nr)*gr) / float64(n)
}
