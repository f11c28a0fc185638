package boolexpr_test

import (
	"testing"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveVariables(t *testing.T) {
	assignment := map[string]bool{
		"A": true,
		"B": false,
	}
	tests := map[string]bool{
		"A": true,  // A is true in the assignment
		"B": false, // B is false in the assignment

		"~A": false,
		"~B": true,

		"A ∧ B": false,
		"A ∨ B": true,
	}
	runSolverTests(t, tests, assignment)
}

func TestNot(t *testing.T) {
	runSolverTestsForAll(t, "~p", []bool{true, false})
	runSolverTestsForAll(t, "~~p", []bool{false, true})
}

func TestAnd(t *testing.T) {
	runSolverTestsForAll(t, "p ∧ q", []bool{false, false, false, true})
}

func TestOr(t *testing.T) {
	runSolverTestsForAll(t, "p ∨ q", []bool{false, true, true, true})
}

func TestXor(t *testing.T) {
	runSolverTestsForAll(t, "p ⊕ q", []bool{false, true, true, false})
}

func TestIff(t *testing.T) {
	runSolverTestsForAll(t, "p ↔ q", []bool{true, false, false, true})
}

func TestImplies(t *testing.T) {
	runSolverTestsForAll(t, "p → q", []bool{true, true, false, true})
}

func TestRecursiveExpressions(t *testing.T) {
	assignment := map[string]bool{
		"T": true,
		"F": false,
	}
	tests := map[string]bool{
		"T ∧ ~F": true,
		"~F ∧ T": true,

		"T ∨ (F ∧ F)": true,
		"(T ∨ F) ∧ F": false,

		"T ∧ T ∧ T": true,
		"T ∧ T ∧ F": false,

		// implication is left-associative
		"F → T → F":   false,
		"F → (T → F)": true,

		"T ⊕ T ↔ F": true,
		"T ∧ F → F": true,
	}
	runSolverTests(t, tests, assignment)
}

// runSolverTestsForAll solves the two variable expression for (F,F), (F,T),
// (T,F), (T,T) of p and q, or for F, T of p when only one result per variable
// value is given
func runSolverTestsForAll(t *testing.T, expression string, expected []bool) {
	t.Helper()

	node, err := boolexpr.Parse(expression)
	require.NoError(t, err)

	for i, want := range expected {
		assignment := map[string]bool{"p": i&1 == 1}
		if len(expected) == 4 {
			assignment = map[string]bool{"p": i&2 != 0, "q": i&1 != 0}
		}

		result, err := node.Solve(assignment)
		require.NoError(t, err)
		assert.Equal(t, want, result, "%s with %v", expression, assignment)
	}
}

func runSolverTests(t *testing.T, tests map[string]bool, assignment map[string]bool) {
	for expression, expected := range tests {
		t.Run(expression, func(t *testing.T) {
			node, err := boolexpr.Parse(expression)
			require.NoError(t, err)

			result, err := node.Solve(assignment)
			require.NoError(t, err)
			assert.Equal(t, expected, result)
		})
	}
}

func TestUnknownVariable(t *testing.T) {
	// create an expression referencing variable A
	node, err := boolexpr.Parse("A ∧ B")
	require.NoError(t, err)

	// and try to solve it without providing a value for B
	_, err = node.Solve(map[string]bool{"A": true})

	var evalErr *boolexpr.EvalError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "B", evalErr.VariableName)
	assert.Contains(t, err.Error(), "unknown variable")
}

func TestSolveNil(t *testing.T) {
	var node *boolexpr.Node
	_, err := node.Solve(map[string]bool{})
	assert.Error(t, err)
}
