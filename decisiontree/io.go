package decisiontree

import (
	"encoding/json"
	"io"

	"github.com/doccat/doccat/errors"
)

// Load reads a JSON-encoded tree.
func Load(r io.Reader) (*DecisionTree, error) {
	var tree DecisionTree
	if err := json.NewDecoder(r).Decode(&tree); err != nil {
		return nil, errors.Wrapf(err, "decoding decision tree")
	}
	return &tree, nil
}

// Save writes the tree as JSON.
func Save(w io.Writer, t *DecisionTree) error {
	if err := json.NewEncoder(w).Encode(t); err != nil {
		return errors.Wrapf(err, "encoding decision tree")
	}
	return nil
}
