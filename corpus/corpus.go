package corpus

import (
	"sort"

	"github.com/doccat/doccat/text"
)

// Document is one labeled text sample. Text may be empty; Label never is for
// training or evaluation data.
type Document struct {
	ID    string `csv:"id" json:"id"`
	Text  string `csv:"text" json:"text"`
	Label string `csv:"label" json:"label"`
}

// Corpus is an ordered document collection, loaded once and never mutated
// afterwards.
type Corpus []Document

// Labels returns every document's label, in corpus order.
func (c Corpus) Labels() []string {
	labels := make([]string, len(c))
	for i, doc := range c {
		labels[i] = doc.Label
	}
	return labels
}

// Texts returns every document's raw text, in corpus order.
func (c Corpus) Texts() []string {
	texts := make([]string, len(c))
	for i, doc := range c {
		texts[i] = doc.Text
	}
	return texts
}

// Classes returns the distinct labels, sorted.
func (c Corpus) Classes() []string {
	seen := make(map[string]bool)
	var classes []string
	for _, doc := range c {
		if !seen[doc.Label] {
			seen[doc.Label] = true
			classes = append(classes, doc.Label)
		}
	}
	sort.Strings(classes)
	return classes
}

// Tokenize runs the document tokenizer over every text, in corpus order.
func (c Corpus) Tokenize() []text.Tokens {
	seqs := make([]text.Tokens, len(c))
	for i, doc := range c {
		seqs[i] = text.TokenizeDocument(doc.Text)
	}
	return seqs
}
