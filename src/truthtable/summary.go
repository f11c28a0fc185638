package truthtable

import (
	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
)

type Classification int

const (
	Contingent Classification = iota
	Tautology
	Contradiction
)

func (c Classification) String() string {
	switch c {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	default:
		return "contingent"
	}
}

// Summary tells which rows of a table are satisfying and which are not.
type Summary struct {
	TrueRows  []int
	FalseRows []int
}

// RecordRow records the result of the row with the given index
func (s *Summary) RecordRow(index int, result bool) {
	if result {
		s.TrueRows = append(s.TrueRows, index)
	} else {
		s.FalseRows = append(s.FalseRows, index)
	}
}

func (s *Summary) IsSatisfiable() bool {
	return len(s.TrueRows) > 0
}

func (s *Summary) Classification() Classification {
	switch {
	case len(s.FalseRows) == 0 && len(s.TrueRows) > 0:
		return Tautology
	case len(s.TrueRows) == 0:
		return Contradiction
	default:
		return Contingent
	}
}

// TrueRatio is the share of rows that are satisfying, between 0 and 1.
func (s *Summary) TrueRatio() float64 {
	results := append(
		lo.Map(s.TrueRows, func(int, int) float64 { return 1 }),
		lo.Map(s.FalseRows, func(int, int) float64 { return 0 })...,
	)

	ratio, err := stats.Mean(results)
	if err != nil {
		// only fails for an empty summary
		return 0
	}
	return ratio
}

func (t *Table) Summary() *Summary {
	summary := &Summary{}
	for i, row := range t.Rows {
		summary.RecordRow(i, row.Result)
	}
	return summary
}
