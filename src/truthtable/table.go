package truthtable

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/samber/lo"
)

const (
	// DefaultMaxVariables bounds the number of distinct variables, and thereby
	// the 2^n rows, a single table may have.
	DefaultMaxVariables = 16
	// MaxVariablesCap is the largest bound a Generator can be configured with.
	MaxVariablesCap = 20
)

// Row is one line of a truth table. Values holds the truth value of each
// variable in the table's column order.
type Row struct {
	Values []bool
	Result bool
}

// Assignment returns the row as a map from variable name to truth value.
func (r Row) Assignment(variables []string) map[string]bool {
	assignment := make(map[string]bool, len(variables))
	for i, name := range variables {
		assignment[name] = r.Values[i]
	}
	return assignment
}

type Table struct {
	// Expression is the canonical form of the expression the table was built
	// from
	Expression string
	Variables  []string
	Rows       []Row
}

// Results returns the result column
func (t *Table) Results() []bool {
	return lo.Map(t.Rows, func(row Row, _ int) bool {
		return row.Result
	})
}

// Generator builds truth tables with at most MaxVariables distinct variables.
// The zero value uses DefaultMaxVariables.
type Generator struct {
	MaxVariables int
}

// NewGenerator creates a Generator, validating the variable bound.
func NewGenerator(maxVariables int) (*Generator, error) {
	if maxVariables < 1 || maxVariables > MaxVariablesCap {
		return nil, fmt.Errorf("max variables must be between 1 and %d, got %d", MaxVariablesCap, maxVariables)
	}
	return &Generator{MaxVariables: maxVariables}, nil
}

func (g *Generator) limit() int {
	if g == nil || g.MaxVariables <= 0 {
		return DefaultMaxVariables
	}
	return min(g.MaxVariables, MaxVariablesCap)
}

var defaultGenerator = &Generator{}

// Build enumerates every assignment of the given variables and solves the
// expression for each. For n variables the first variable varies slowest:
// row i assigns variable k the bit n-1-k of i.
//
// The variables are sorted and deduplicated first. They must be exactly the
// variables of the expression.
func Build(root *boolexpr.Node, variables []string) (*Table, error) {
	return defaultGenerator.Build(root, variables)
}

// Compute derives the variables of the expression and builds its table.
func Compute(root *boolexpr.Node) (*Table, error) {
	return defaultGenerator.Compute(root)
}

// Generate parses the expression and builds its table.
func Generate(expression string) (*Table, error) {
	return defaultGenerator.Generate(expression)
}

func (g *Generator) Generate(expression string) (*Table, error) {
	root, err := boolexpr.Parse(expression)
	if err != nil {
		return nil, err
	}
	return g.Compute(root)
}

func (g *Generator) Compute(root *boolexpr.Node) (*Table, error) {
	if root == nil {
		return nil, fmt.Errorf("cannot build truth table for a nil expression")
	}
	return g.Build(root, root.Variables())
}

func (g *Generator) Build(root *boolexpr.Node, variables []string) (*Table, error) {
	if root == nil {
		return nil, fmt.Errorf("cannot build truth table for a nil expression")
	}

	variables = lo.Uniq(variables)
	slices.Sort(variables)

	if len(variables) == 0 {
		return nil, fmt.Errorf("cannot build truth table: %w", boolexpr.ErrNoVariables)
	}
	if limit := g.limit(); len(variables) > limit {
		return nil, NewVariableLimitError(len(variables), limit)
	}
	if unused := lo.Without(variables, root.Variables()...); len(unused) > 0 {
		return nil, fmt.Errorf("variables %v do not occur in expression '%s'", unused, root)
	}

	n := len(variables)
	numRows := 1 << n

	// every row's values live in one backing slice
	values := make([]bool, numRows*n)
	rows := make([]Row, numRows)
	assignment := make(map[string]bool, n)

	for i := 0; i < numRows; i++ {
		rowValues := values[i*n : (i+1)*n : (i+1)*n]
		for k, name := range variables {
			value := i&(1<<(n-1-k)) != 0
			rowValues[k] = value
			assignment[name] = value
		}

		result, err := root.Solve(assignment)
		if err != nil {
			return nil, fmt.Errorf("failed to solve row %d: %w", i, err)
		}
		rows[i] = Row{Values: rowValues, Result: result}
	}

	slog.Debug("built truth table", "expression", root.String(), "variables", n, "rows", numRows)

	return &Table{
		Expression: root.String(),
		Variables:  variables,
		Rows:       rows,
	}, nil
}
