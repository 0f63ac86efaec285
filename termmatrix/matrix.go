package termmatrix

import "github.com/doccat/doccat/text"

// DocumentMatrix is a sparse document-term count matrix: one row per input
// sequence, one column per vocabulary term, cell = occurrence count. Most
// cells are zero, so rows store only their nonzero columns.
type DocumentMatrix struct {
	Vocab *Vocabulary
	Rows  []map[int]int
}

// BuildMatrix counts the vocabulary terms of each sequence. Tokens absent
// from vocab are ignored, which is how a held-out set projects onto a
// vocabulary built from training data alone.
func BuildMatrix(seqs []text.Tokens, vocab *Vocabulary) *DocumentMatrix {
	m := &DocumentMatrix{
		Vocab: vocab,
		Rows:  make([]map[int]int, len(seqs)),
	}
	for di, seq := range seqs {
		row := make(map[int]int)
		for _, tok := range seq {
			if col, ok := vocab.Index(tok); ok {
				row[col]++
			}
		}
		m.Rows[di] = row
	}
	return m
}

// NumDocs returns the number of rows.
func (m *DocumentMatrix) NumDocs() int {
	return len(m.Rows)
}

// NumTerms returns the number of columns.
func (m *DocumentMatrix) NumTerms() int {
	return m.Vocab.Size()
}

// Count returns the raw count of column col in document doc.
func (m *DocumentMatrix) Count(doc, col int) int {
	return m.Rows[doc][col]
}

// RowTotal returns document doc's total count over all vocabulary terms.
func (m *DocumentMatrix) RowTotal(doc int) int {
	var total int
	for _, c := range m.Rows[doc] {
		total += c
	}
	return total
}

// DocumentFrequency returns the number of documents with a positive count in
// column col.
func (m *DocumentMatrix) DocumentFrequency(col int) int {
	var df int
	for _, row := range m.Rows {
		if row[col] > 0 {
			df++
		}
	}
	return df
}

// DenseRow expands document doc into a dense feature vector.
func (m *DocumentMatrix) DenseRow(doc int) []float64 {
	row := make([]float64, m.NumTerms())
	for col, c := range m.Rows[doc] {
		row[col] = float64(c)
	}
	return row
}

// Dense expands the whole matrix into dense feature vectors, the form the
// model trainers consume.
func (m *DocumentMatrix) Dense() [][]float64 {
	rows := make([][]float64, m.NumDocs())
	for i := range rows {
		rows[i] = m.DenseRow(i)
	}
	return rows
}
