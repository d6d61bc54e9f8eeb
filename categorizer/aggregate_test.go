package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMajority(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
		want  string
	}{
		{name: "empty", codes: nil, want: NeutralCode},
		{name: "clear winner", codes: []string{"A", "B", "A"}, want: "A"},
		{name: "tie keeps first seen", codes: []string{"A", "B"}, want: "A"},
		{name: "tie not lexical", codes: []string{"504", "201", "201", "504"}, want: "504"},
		{name: "later majority", codes: []string{"101", "201", "201"}, want: "201"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Majority(tt.codes))
		})
	}
}

func TestAggregateAnnotations(t *testing.T) {
	motions := []Motion{
		{ID: "1", Examples: []Example{{Code: "201"}, {Code: "000"}, {Code: "201"}}},
		{ID: "2"},
		{ID: "3", Examples: []Example{{Code: "504"}, {Code: "101"}}},
	}
	assert.Equal(t, []string{"201", NeutralCode, "504"}, AggregateAnnotations(motions))
}
