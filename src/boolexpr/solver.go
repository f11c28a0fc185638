package boolexpr

import (
	"fmt"
)

// Solve evaluates the expression under the given assignment. Every variable of
// the expression must be assigned, otherwise an *EvalError is returned.
func (n *Node) Solve(assignment map[string]bool) (bool, error) {
	if n == nil {
		return false, fmt.Errorf("cannot solve a nil expression")
	}

	if n.Operator == VARIABLE {
		value, ok := assignment[n.name]
		if !ok {
			return false, NewEvalError(n.name)
		}
		return value, nil
	}

	if n.Operator == NOT {
		result, err := n.Left.Solve(assignment)
		if err != nil {
			return false, err
		}
		return !result, nil
	}

	leftResult, err := n.Left.Solve(assignment)
	if err != nil {
		return false, err
	}
	rightResult, err := n.Right.Solve(assignment)
	if err != nil {
		return false, err
	}

	switch n.Operator {
	case AND:
		return leftResult && rightResult, nil
	case OR:
		return leftResult || rightResult, nil
	case XOR:
		return leftResult != rightResult, nil
	case IFF:
		return leftResult == rightResult, nil
	case IMPLIES:
		return !leftResult || rightResult, nil
	}

	return false, fmt.Errorf("unknown operator: %v", n.Operator)
}
