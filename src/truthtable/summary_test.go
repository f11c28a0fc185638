package truthtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRow(t *testing.T) {
	summary := &Summary{}
	summary.RecordRow(0, false)
	summary.RecordRow(1, true)
	summary.RecordRow(2, true)

	assert.Equal(t, []int{1, 2}, summary.TrueRows)
	assert.Equal(t, []int{0}, summary.FalseRows)
	assert.True(t, summary.IsSatisfiable())
	assert.Equal(t, Contingent, summary.Classification())
}

func TestTableSummary(t *testing.T) {
	testCases := map[string]struct {
		trueRows       []int
		falseRows      []int
		trueRatio      float64
		classification Classification
	}{
		"p ∧ q": {
			trueRows:       []int{3},
			falseRows:      []int{0, 1, 2},
			trueRatio:      0.25,
			classification: Contingent,
		},
		"p ∨ ~p": {
			trueRows:       []int{0, 1},
			trueRatio:      1,
			classification: Tautology,
		},
		"p ∧ ~p": {
			falseRows:      []int{0, 1},
			trueRatio:      0,
			classification: Contradiction,
		},
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			table, err := Generate(expression)
			require.NoError(t, err)

			summary := table.Summary()
			assert.Equal(t, expected.trueRows, summary.TrueRows)
			assert.Equal(t, expected.falseRows, summary.FalseRows)
			assert.InDelta(t, expected.trueRatio, summary.TrueRatio(), 1e-9)
			assert.Equal(t, expected.classification, summary.Classification())
		})
	}
}

func TestEmptySummary(t *testing.T) {
	summary := &Summary{}

	assert.False(t, summary.IsSatisfiable())
	assert.Equal(t, 0.0, summary.TrueRatio())
}
