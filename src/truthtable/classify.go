package truthtable

import (
	"fmt"

	"github.com/crillab/gophersat/solver"
	"github.com/eriklarko/truth-table/src/boolexpr"
)

// Classify decides whether the expression is a tautology, a contradiction or
// neither by handing it and its negation to a SAT solver. It does not
// enumerate assignments, so it also answers for expressions with more
// variables than a table may have.
func Classify(root *boolexpr.Node) (Classification, error) {
	if root == nil {
		return Contingent, fmt.Errorf("cannot classify a nil expression")
	}

	negationSatisfiable, err := satisfiable(root, false)
	if err != nil {
		return Contingent, err
	}
	if !negationSatisfiable {
		return Tautology, nil
	}

	sat, err := satisfiable(root, true)
	if err != nil {
		return Contingent, err
	}
	if !sat {
		return Contradiction, nil
	}
	return Contingent, nil
}

// satisfiable reports whether some assignment makes the expression evaluate
// to want
func satisfiable(root *boolexpr.Node, want bool) (bool, error) {
	c := newCNF()
	top, err := c.encode(root)
	if err != nil {
		return false, fmt.Errorf("failed to convert expression to clauses: %w", err)
	}
	if !want {
		top = -top
	}
	c.add(top)

	s := solver.New(solver.ParseSlice(c.clauses))
	return s.Solve() == solver.Sat, nil
}

// cnf is a Tseitin encoding of an expression: every connective gets a fresh
// variable that the clauses force to equal the connective's value. Variables
// and literals are numbered from 1, negative numbers are negations.
type cnf struct {
	variables map[string]int
	nbVars    int
	clauses   [][]int
}

func newCNF() *cnf {
	return &cnf{variables: make(map[string]int)}
}

func (c *cnf) fresh() int {
	c.nbVars++
	return c.nbVars
}

// add appends a clause, removing repeated literals and skipping clauses that
// contain a literal and its negation
func (c *cnf) add(lits ...int) {
	seen := make(map[int]bool, len(lits))
	clause := make([]int, 0, len(lits))
	for _, lit := range lits {
		if seen[-lit] {
			return
		}
		if !seen[lit] {
			seen[lit] = true
			clause = append(clause, lit)
		}
	}
	c.clauses = append(c.clauses, clause)
}

// encode returns the literal equal to the value of n
func (c *cnf) encode(n *boolexpr.Node) (int, error) {
	if n == nil {
		return 0, fmt.Errorf("nil expression")
	}

	switch n.Operator {
	case boolexpr.VARIABLE:
		v, ok := c.variables[n.Name()]
		if !ok {
			v = c.fresh()
			c.variables[n.Name()] = v
		}
		return v, nil

	case boolexpr.NOT:
		operand, err := c.encode(n.Left)
		return -operand, err
	}

	l, err := c.encode(n.Left)
	if err != nil {
		return 0, err
	}
	r, err := c.encode(n.Right)
	if err != nil {
		return 0, err
	}

	g := c.fresh()
	switch n.Operator {
	case boolexpr.AND:
		c.and(g, l, r)
	case boolexpr.OR:
		c.or(g, l, r)
	case boolexpr.IMPLIES:
		c.or(g, -l, r)
	case boolexpr.XOR:
		c.xor(g, l, r)
	case boolexpr.IFF:
		c.xor(-g, l, r)
	default:
		return 0, fmt.Errorf("unknown operator: %v", n.Operator)
	}
	return g, nil
}

// g ↔ l ∧ r
func (c *cnf) and(g, l, r int) {
	c.add(-g, l)
	c.add(-g, r)
	c.add(g, -l, -r)
}

// g ↔ l ∨ r
func (c *cnf) or(g, l, r int) {
	c.add(g, -l)
	c.add(g, -r)
	c.add(-g, l, r)
}

// g ↔ l ⊕ r
func (c *cnf) xor(g, l, r int) {
	c.add(-g, l, r)
	c.add(-g, -l, -r)
	c.add(g, -l, r)
	c.add(g, l, -r)
}
