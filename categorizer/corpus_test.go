package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCorpusSegments(t *testing.T) {
	motions := []Motion{
		{ID: "a", Examples: []Example{
			{Fields: []string{"Title A", "First Sentence", "extra"}, Code: "201"},
			{Fields: []string{"Title A", "Second Sentence"}, Code: "101"},
		}},
		{ID: "b", Examples: []Example{{Fields: []string{"Title B", "Third"}, Code: "504"}}},
	}
	refs := []ReferenceCode{
		{ID: "101", Name: "Free Market", Description: "open trade"},
		{ID: "201", Name: "Welfare"},
	}
	c, err := BuildCorpus(lowerNormalizer{}, motions, refs)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, 3, c.Boundary())
	assert.Equal(t, 3, c.QueryLen())
	assert.Equal(t, 2, c.ReferenceLen())
	assert.Equal(t, c.Len(), c.QueryLen()+c.ReferenceLen())
	assert.Equal(t, []string{
		"title a first sentence",
		"title a second sentence",
		"title b third",
		"free market open trade",
		"welfare",
	}, c.Texts())

	d := c.Document(2)
	assert.Equal(t, QuerySegment, d.Segment)
	assert.Equal(t, 1, d.Motion)
	assert.Equal(t, 0, d.Example)
	ref := c.Document(3)
	assert.Equal(t, ReferenceSegment, ref.Segment)
	assert.Equal(t, "101", ref.Code)
	require.NoError(t, c.Validate())
}

func TestBuildCorpusMissingField(t *testing.T) {
	motions := []Motion{{ID: "m7", Examples: []Example{
		{Fields: []string{"title", "body"}, Code: "201"},
		{Fields: []string{"title only"}, Code: "201"},
	}}}
	_, err := BuildCorpus(lowerNormalizer{}, motions, nil)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "m7", missing.MotionID)
	assert.Equal(t, 1, missing.Example)
	assert.Equal(t, 1, missing.Field)
}

func TestBuildCorpusWelfareScenario(t *testing.T) {
	motions, refs := welfareFixture()
	c, err := BuildCorpus(lowerNormalizer{}, motions, refs)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 2, c.Boundary())
}
