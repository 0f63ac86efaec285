package termmatrix

import (
	"sort"

	"github.com/doccat/doccat/errors"
	"github.com/doccat/doccat/text"
)

// Vocabulary is the set of distinct terms observed across a collection of
// token sequences, each assigned a stable column index and an identifier-safe
// feature name. Terms are kept sorted so repeated builds over the same input
// produce identical column indices.
type Vocabulary struct {
	Terms []string
	Names []string

	index map[string]int
}

// BuildVocabulary collects the distinct terms of seqs in sorted order. It
// returns an InvalidParameterError when no term survives preprocessing, and a
// fatal error when two terms sanitize to the same feature name.
func BuildVocabulary(seqs []text.Tokens) (*Vocabulary, error) {
	var all text.Tokens
	for _, seq := range seqs {
		all = append(all, seq...)
	}
	terms := text.Uniquify(all)
	if len(terms) == 0 {
		return nil, errors.InvalidParamf("empty vocabulary: no tokens survived preprocessing")
	}
	sort.Strings(terms)

	vocab := &Vocabulary{
		Terms: terms,
		Names: make([]string, 0, len(terms)),
		index: make(map[string]int, len(terms)),
	}
	byName := make(map[string]string, len(terms))
	for i, term := range vocab.Terms {
		name := FeatureName(term)
		if other, taken := byName[name]; taken {
			return nil, errors.Errorf("feature name %q collides for terms %q and %q", name, other, term)
		}
		byName[name] = term
		vocab.Names = append(vocab.Names, name)
		vocab.index[term] = i
	}
	return vocab, nil
}

// Size returns the number of terms (matrix columns).
func (v *Vocabulary) Size() int {
	return len(v.Terms)
}

// Index returns the column index of term, and whether term is in the
// vocabulary at all.
func (v *Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}
