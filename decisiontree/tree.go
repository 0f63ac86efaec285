package decisiontree

// A Node represents a splitting decision of the form "x[FeatureIndex] < Threshold ?" in a decision tree
type Node struct {
	// FeatureIndex indicates which feature is used in this splitting decision
	FeatureIndex int `json:"feature_index"`
	// Threshold indicates the cutoff value between the left and right subtrees
	Threshold float64 `json:"threshold"`
	// LeftChild is the index of the node representing the left subtree
	LeftChild int `json:"left_child"`
	// LeftIsLeaf indicates whether the left subtree is a leaf node
	LeftIsLeaf bool `json:"left_is_leaf"`
	// RightChild is the index of the node representing the right subtree
	RightChild int `json:"right_child"`
	// RightIsLeaf indicates whether the right subtree is a leaf node
	RightIsLeaf bool `json:"right_is_leaf"`
}

// A DecisionTree maps a feature vector to a class label. Internal nodes are
// stored flat; leaf children index into Outputs.
type DecisionTree struct {
	// Nodes is a flat list of all internal nodes, root first. Empty for a
	// tree that never split (pure or unsplittable training data).
	Nodes []Node `json:"nodes"`
	// Outputs holds the class label of each leaf bin
	Outputs []string `json:"outputs"`
	// FeatureSize is the length of feature vectors processed by this tree
	FeatureSize int `json:"feature_size"`
	// Depth is the maximum number of splits on any root-to-leaf path
	Depth int `json:"depth"`
}

// Bin drops a feature vector down the tree and returns the index of the leaf
// bin it ends up in.
func (t *DecisionTree) Bin(x []float64) int {
	if len(x) != t.FeatureSize {
		panic("feature vector had incorrect length")
	}
	if len(t.Nodes) == 0 {
		return 0
	}
	cur := t.Nodes[0]
	for i := 0; i < t.Depth; i++ {
		if x[cur.FeatureIndex] < cur.Threshold {
			if cur.LeftIsLeaf {
				return cur.LeftChild
			}
			cur = t.Nodes[cur.LeftChild]
		} else {
			if cur.RightIsLeaf {
				return cur.RightChild
			}
			cur = t.Nodes[cur.RightChild]
		}
	}
	panic("tree traversal did not terminate")
}

// PredictRow drops a feature vector down the tree and returns the label of
// the bin it lands in.
func (t *DecisionTree) PredictRow(x []float64) string {
	return t.Outputs[t.Bin(x)]
}
