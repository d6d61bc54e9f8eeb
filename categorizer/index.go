package categorizer

import (
	"fmt"
	"sort"
)

// Hit is a ranked reference document.
type Hit struct {
	Index int
	Score float64
}

// TopK ranks the rows at or after referenceStart by cosine similarity to the
// query row and returns at most k hits, best first. Equal scores keep the
// lower row index first.
func TopK(m *Matrix, query, k, referenceStart int) ([]Hit, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if query < 0 || query >= m.Rows() {
		return nil, fmt.Errorf("query row %d out of range [0,%d)", query, m.Rows())
	}
	if referenceStart < 0 || referenceStart > m.Rows() {
		return nil, fmt.Errorf("reference start %d out of range [0,%d]", referenceStart, m.Rows())
	}
	q := m.Row(query)
	hits := make([]Hit, 0, m.Rows()-referenceStart)
	for i := referenceStart; i < m.Rows(); i++ {
		hits = append(hits, Hit{Index: i, Score: cosineSimilarity(q, m.Row(i))})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

func cosineSimilarity(a, b SparseVector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	return a.Dot(b) / (na * nb)
}
