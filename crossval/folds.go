package crossval

import (
	"math/rand"
	"sort"

	"github.com/doccat/doccat/errors"
)

// Fold is one train/holdout split over the row indices of a training set.
// Within a single repetition the holdouts of the k folds partition the index
// set exactly once.
type Fold struct {
	Train   []int
	Holdout []int
}

// Stratified partitions the indices of labels into k class-proportion
// preserving groups per repetition; each group serves once as the holdout
// while the remaining groups form the training indices. It produces
// k*repeats folds, deterministic for a given seed. Returns an
// InvalidParameterError when k < 2, repeats < 1, labels is empty, or any
// class has fewer than k members (cannot stratify).
func Stratified(labels []string, k, repeats int, seed int64) ([]Fold, error) {
	if k < 2 {
		return nil, errors.InvalidParamf("fold count %d: need at least 2", k)
	}
	if repeats < 1 {
		return nil, errors.InvalidParamf("repeat count %d: need at least 1", repeats)
	}
	if len(labels) == 0 {
		return nil, errors.InvalidParamf("no labels to fold")
	}

	byClass := make(map[string][]int)
	for i, label := range labels {
		byClass[label] = append(byClass[label], i)
	}
	classes := make([]string, 0, len(byClass))
	for class := range byClass {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	for _, class := range classes {
		if n := len(byClass[class]); n < k {
			return nil, errors.InvalidParamf("class %q has %d samples, cannot stratify into %d folds", class, n, k)
		}
	}

	rng := rand.New(rand.NewSource(seed))
	folds := make([]Fold, 0, k*repeats)
	for r := 0; r < repeats; r++ {
		buckets := make([][]int, k)
		for _, class := range classes {
			members := append([]int(nil), byClass[class]...)
			rng.Shuffle(len(members), func(i, j int) {
				members[i], members[j] = members[j], members[i]
			})
			// Deal shuffled members round-robin, starting at a random bucket.
			start := rng.Intn(k)
			for j, idx := range members {
				b := (start + j) % k
				buckets[b] = append(buckets[b], idx)
			}
		}

		for b := 0; b < k; b++ {
			fold := Fold{
				Holdout: append([]int(nil), buckets[b]...),
			}
			for o := 0; o < k; o++ {
				if o != b {
					fold.Train = append(fold.Train, buckets[o]...)
				}
			}
			sort.Ints(fold.Train)
			sort.Ints(fold.Holdout)
			folds = append(folds, fold)
		}
	}
	return folds, nil
}
