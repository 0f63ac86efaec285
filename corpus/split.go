package corpus

import (
	"math/rand"
	"sort"

	"github.com/doccat/doccat/errors"
)

// Split is a disjoint train/test partition of a corpus. Both sides keep
// corpus order.
type Split struct {
	Train Corpus
	Test  Corpus
}

// StratifiedSplit moves testFraction of each class into Test so both sides
// approximate the corpus's class proportions. Membership is deterministic
// for a given seed. A class too small to give up a document stays entirely
// in Train; every class always keeps at least one training document.
func StratifiedSplit(docs Corpus, testFraction float64, seed int64) (Split, error) {
	if len(docs) == 0 {
		return Split{}, errors.InvalidParamf("empty corpus")
	}
	if testFraction <= 0 || testFraction >= 1 {
		return Split{}, errors.InvalidParamf("test fraction %v: need a value in (0, 1)", testFraction)
	}

	byClass := make(map[string][]int)
	for i, doc := range docs {
		if doc.Label == "" {
			return Split{}, errors.InvalidParamf("document %q has no label", doc.ID)
		}
		byClass[doc.Label] = append(byClass[doc.Label], i)
	}
	classes := make([]string, 0, len(byClass))
	for class := range byClass {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	rng := rand.New(rand.NewSource(seed))
	inTest := make([]bool, len(docs))
	for _, class := range classes {
		members := append([]int(nil), byClass[class]...)
		rng.Shuffle(len(members), func(i, j int) {
			members[i], members[j] = members[j], members[i]
		})
		nTest := int(float64(len(members))*testFraction + 0.5)
		if nTest >= len(members) {
			nTest = len(members) - 1
		}
		for _, idx := range members[:nTest] {
			inTest[idx] = true
		}
	}

	var split Split
	for i, doc := range docs {
		if inTest[i] {
			split.Test = append(split.Test, doc)
		} else {
			split.Train = append(split.Train, doc)
		}
	}
	return split, nil
}
