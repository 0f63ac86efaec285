package tfidf

import (
	"math"

	"github.com/doccat/doccat/errors"
	"github.com/doccat/doccat/termmatrix"
)

// Transformer holds the inverse document frequencies fit on one corpus. The
// transformer fit on the training matrix is the same function object applied
// to held-out matrices, so train and test weights share a single IDF basis.
type Transformer struct {
	NumDocs int
	IDF     []float64
}

// Fit computes each column's IDF = log10(numDocs / documentFrequency) over m.
// Every vocabulary term appears in at least one document when the vocabulary
// and matrix come from the same corpus, so a zero document frequency signals
// a vocabulary/matrix mismatch and fails instead of producing -Inf weights.
func Fit(m *termmatrix.DocumentMatrix) (*Transformer, error) {
	df := make([]int, m.NumTerms())
	for _, row := range m.Rows {
		for col, c := range row {
			if c > 0 {
				df[col]++
			}
		}
	}

	t := &Transformer{
		NumDocs: m.NumDocs(),
		IDF:     make([]float64, m.NumTerms()),
	}
	for col, n := range df {
		if n == 0 {
			return nil, errors.Errorf("term %q appears in no document: matrix does not derive from its vocabulary", m.Vocab.Terms[col])
		}
		t.IDF[col] = math.Log10(float64(t.NumDocs) / float64(n))
	}
	return t, nil
}

// Transform derives the TF-IDF weights of m: each cell divided by its row
// total, times the fitted IDF of its column. Rows with a zero total (documents
// whose tokens were all filtered away) have undefined term frequencies and are
// replaced with all-zero rows, a required cleanup rather than an error.
func (t *Transformer) Transform(m *termmatrix.DocumentMatrix) (*WeightMatrix, error) {
	if m.NumTerms() != len(t.IDF) {
		return nil, errors.Errorf("matrix has %d columns, transformer was fit on %d", m.NumTerms(), len(t.IDF))
	}

	w := &WeightMatrix{
		Vocab: m.Vocab,
		Rows:  make([]map[int]float64, m.NumDocs()),
	}
	for di, row := range m.Rows {
		weights := make(map[int]float64, len(row))
		if total := m.RowTotal(di); total > 0 {
			for col, c := range row {
				weights[col] = float64(c) / float64(total) * t.IDF[col]
			}
		}
		w.Rows[di] = weights
	}
	return w, nil
}

// WeightMatrix is a sparse TF-IDF matrix with the same shape as the raw count
// matrix it was derived from. Every cell is defined; zero-total rows are all
// zeros.
type WeightMatrix struct {
	Vocab *termmatrix.Vocabulary
	Rows  []map[int]float64
}

// NumDocs returns the number of rows.
func (w *WeightMatrix) NumDocs() int {
	return len(w.Rows)
}

// NumTerms returns the number of columns.
func (w *WeightMatrix) NumTerms() int {
	return w.Vocab.Size()
}

// Weight returns the TF-IDF weight of column col in document doc.
func (w *WeightMatrix) Weight(doc, col int) float64 {
	return w.Rows[doc][col]
}

// DenseRow expands document doc into a dense feature vector.
func (w *WeightMatrix) DenseRow(doc int) []float64 {
	row := make([]float64, w.NumTerms())
	for col, weight := range w.Rows[doc] {
		row[col] = weight
	}
	return row
}

// Dense expands the whole matrix into dense feature vectors.
func (w *WeightMatrix) Dense() [][]float64 {
	rows := make([][]float64, w.NumDocs())
	for i := range rows {
		rows[i] = w.DenseRow(i)
	}
	return rows
}
