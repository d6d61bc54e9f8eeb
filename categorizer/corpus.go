package categorizer

import (
	"fmt"
	"strings"
)

// Segment tells which partition of the corpus a document belongs to.
type Segment int

const (
	// QuerySegment holds motion sentences.
	QuerySegment Segment = iota
	// ReferenceSegment holds policy code texts.
	ReferenceSegment
)

// Document is one normalized corpus entry.
type Document struct {
	Text    string
	Segment Segment
	// Motion and Example locate a query document; both are -1 for references.
	Motion  int
	Example int
	// Code is the reference code id; empty for queries.
	Code string
}

// Corpus is the ordered query segment followed by the reference segment.
type Corpus struct {
	docs     []Document
	boundary int
}

// BuildCorpus normalizes the first two fields of every example, in motion
// order, followed by the name and description of every reference code.
func BuildCorpus(n Normalizer, motions []Motion, refs []ReferenceCode) (*Corpus, error) {
	c := &Corpus{}
	for mi, m := range motions {
		for ei, ex := range m.Examples {
			for field := 0; field < 2; field++ {
				if field >= len(ex.Fields) {
					return nil, &MissingFieldError{MotionID: m.ID, Example: ei, Field: field}
				}
			}
			c.docs = append(c.docs, Document{
				Text:    joinNormalized(n, ex.Fields[0], ex.Fields[1]),
				Segment: QuerySegment,
				Motion:  mi,
				Example: ei,
			})
		}
	}
	c.boundary = len(c.docs)
	for _, ref := range refs {
		c.docs = append(c.docs, Document{
			Text:    joinNormalized(n, ref.Name, ref.Description),
			Segment: ReferenceSegment,
			Motion:  -1,
			Example: -1,
			Code:    ref.ID,
		})
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func joinNormalized(n Normalizer, a, b string) string {
	return strings.TrimSpace(strings.Join(NormalizeAll(n, []string{a, b}), " "))
}

// Len returns the total number of documents.
func (c *Corpus) Len() int { return len(c.docs) }

// Boundary is the index of the first reference document.
func (c *Corpus) Boundary() int { return c.boundary }

// QueryLen returns the number of query documents.
func (c *Corpus) QueryLen() int { return c.boundary }

// ReferenceLen returns the number of reference documents.
func (c *Corpus) ReferenceLen() int { return len(c.docs) - c.boundary }

// Document returns document i.
func (c *Corpus) Document(i int) Document { return c.docs[i] }

// Texts returns the normalized texts in corpus order.
func (c *Corpus) Texts() []string {
	out := make([]string, len(c.docs))
	for i, d := range c.docs {
		out[i] = d.Text
	}
	return out
}

// Validate checks that every query precedes every reference and the
// boundary splits them exactly.
func (c *Corpus) Validate() error {
	if c.boundary < 0 || c.boundary > len(c.docs) {
		return fmt.Errorf("corpus boundary %d out of range [0,%d]", c.boundary, len(c.docs))
	}
	for i, d := range c.docs {
		want := QuerySegment
		if i >= c.boundary {
			want = ReferenceSegment
		}
		if d.Segment != want {
			return fmt.Errorf("corpus document %d is in the wrong segment", i)
		}
	}
	if c.QueryLen()+c.ReferenceLen() != c.Len() {
		return fmt.Errorf("corpus segments %d+%d do not cover %d documents", c.QueryLen(), c.ReferenceLen(), c.Len())
	}
	return nil
}
