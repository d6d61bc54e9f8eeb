package categorizer

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var termPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// SparseVector is a document row with ascending term indices.
type SparseVector struct {
	Indices []int
	Values  []float64
}

// Norm returns the Euclidean length of the vector.
func (v SparseVector) Norm() float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Dot returns the inner product of two sparse vectors.
func (v SparseVector) Dot(o SparseVector) float64 {
	var dot float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(o.Indices) {
		switch {
		case v.Indices[i] == o.Indices[j]:
			dot += v.Values[i] * o.Values[j]
			i++
			j++
		case v.Indices[i] < o.Indices[j]:
			i++
		default:
			j++
		}
	}
	return dot
}

// Matrix is a read-only document-term matrix; row i belongs to document i.
type Matrix struct {
	rows  []SparseVector
	vocab []string
}

// Rows returns the number of documents.
func (m *Matrix) Rows() int { return len(m.rows) }

// Row returns the weight vector of document i.
func (m *Matrix) Row(i int) SparseVector { return m.rows[i] }

// Vocabulary returns the terms in column order.
func (m *Matrix) Vocabulary() []string {
	out := make([]string, len(m.vocab))
	copy(out, m.vocab)
	return out
}

// TfidfVectorizer weights terms by frequency times smoothed inverse document frequency.
// A vectorizer is fitted exactly once.
type TfidfVectorizer struct {
	stopWords map[string]struct{}
	vocab     map[string]int
	idf       []float64
	fitted    bool
}

// NewTfidfVectorizer returns a vectorizer excluding English stop words.
func NewTfidfVectorizer() *TfidfVectorizer {
	return &TfidfVectorizer{stopWords: EnglishStopWords()}
}

// Terms lowercases doc and returns its terms minus stop words.
func (v *TfidfVectorizer) Terms(doc string) []string {
	raw := termPattern.FindAllString(strings.ToLower(doc), -1)
	out := raw[:0]
	for _, t := range raw {
		if _, stop := v.stopWords[t]; stop {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FitTransform learns the vocabulary and idf weights from docs and returns
// one L2-normalized row per document.
func (v *TfidfVectorizer) FitTransform(docs []string) (*Matrix, error) {
	if v.fitted {
		return nil, ErrAlreadyFitted
	}
	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tf := make(map[string]int)
		for _, t := range v.Terms(doc) {
			tf[t]++
		}
		for t := range tf {
			df[t]++
		}
		counts[i] = tf
	}

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	v.vocab = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(docs))
	for i, t := range terms {
		v.vocab[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}
	v.fitted = true

	rows := make([]SparseVector, len(docs))
	for i, tf := range counts {
		rows[i] = v.weigh(tf)
	}
	return &Matrix{rows: rows, vocab: terms}, nil
}

func (v *TfidfVectorizer) weigh(tf map[string]int) SparseVector {
	type cell struct {
		col   int
		count int
	}
	cells := make([]cell, 0, len(tf))
	for t, c := range tf {
		cells = append(cells, cell{col: v.vocab[t], count: c})
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].col < cells[j].col })
	idx := make([]int, len(cells))
	vals := make([]float64, len(cells))
	var sum float64
	for i, c := range cells {
		w := float64(c.count) * v.idf[c.col]
		idx[i] = c.col
		vals[i] = w
		sum += w * w
	}
	if sum > 0 {
		norm := math.Sqrt(sum)
		for i := range vals {
			vals[i] /= norm
		}
	}
	return SparseVector{Indices: idx, Values: vals}
}
