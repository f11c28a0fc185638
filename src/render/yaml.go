package render

import (
	"fmt"
	"io"

	"github.com/eriklarko/truth-table/src/truthtable"
	"gopkg.in/yaml.v3"
)

// Document is the shape of the yaml output.
// Example:
//
//	expression: p ∧ q
//	variables: [p, q]
//	rows:
//	  - values: [false, false]
//	    result: false
//	  ...
//	summary:
//	  classification: contingent
//	  true-rows: 1
//	  false-rows: 3
//	  true-ratio: 0.25
type Document struct {
	Expression string          `yaml:"expression"`
	Variables  []string        `yaml:"variables,flow"`
	Rows       []DocumentRow   `yaml:"rows"`
	Summary    DocumentSummary `yaml:"summary"`
}

type DocumentRow struct {
	Values []bool `yaml:"values,flow"`
	Result bool   `yaml:"result"`
}

type DocumentSummary struct {
	Classification string  `yaml:"classification"`
	TrueRows       int     `yaml:"true-rows"`
	FalseRows      int     `yaml:"false-rows"`
	TrueRatio      float64 `yaml:"true-ratio"`
}

type yamlRenderer struct {
	options
}

func (r *yamlRenderer) Render(w io.Writer, table *truthtable.Table) error {
	summary := table.Summary()

	doc := Document{
		Expression: r.resultHeader(table),
		Variables:  table.Variables,
		Rows:       make([]DocumentRow, len(table.Rows)),
		Summary: DocumentSummary{
			Classification: summary.Classification().String(),
			TrueRows:       len(summary.TrueRows),
			FalseRows:      len(summary.FalseRows),
			TrueRatio:      summary.TrueRatio(),
		},
	}
	for i, row := range table.Rows {
		doc.Rows[i] = DocumentRow{Values: row.Values, Result: row.Result}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode table: %w", err)
	}
	return encoder.Close()
}
