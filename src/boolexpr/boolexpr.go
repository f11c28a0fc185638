package boolexpr

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

type Operator int

const (
	VARIABLE Operator = iota
	NOT
	AND
	OR
	XOR
	IMPLIES
	IFF
)

func (o Operator) String() string {
	switch o {
	case VARIABLE:
		return "VARIABLE"
	case NOT:
		return "NOT"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case XOR:
		return "XOR"
	case IMPLIES:
		return "IMPLIES"
	case IFF:
		return "IFF"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// Node is one node of an expression tree. Variables are leaves, NOT only uses
// Left, the binary operators use both Left and Right.
type Node struct {
	Operator Operator
	Left     *Node
	Right    *Node

	name string
}

// Parse creates a new solvable boolean expression based on the given input string
// Example usage:
//
//	tree, err := boolexpr.Parse("(P ∧ Q) → R")
//	if err != nil {
//		log.Fatalf("failed to parse expression: %v", err)
//	}
//	fmt.Println(tree.Solve(map[string]bool{"P": true, "Q": true, "R": false})) // Output: false <nil>
func Parse(expression string) (*Node, error) {
	tokens, err := Tokenize(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expression '%s': %w", expression, err)
	}

	root, err := ParseTokens(tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expression '%s': %w", expression, err)
	}
	return root, nil
}

func Var(name string) *Node {
	return &Node{Operator: VARIABLE, name: name}
}

func Not(operand *Node) *Node {
	return &Node{Operator: NOT, Left: operand}
}

func And(left, right *Node) *Node {
	return &Node{Operator: AND, Left: left, Right: right}
}

func Or(left, right *Node) *Node {
	return &Node{Operator: OR, Left: left, Right: right}
}

func Xor(left, right *Node) *Node {
	return &Node{Operator: XOR, Left: left, Right: right}
}

func Implies(left, right *Node) *Node {
	return &Node{Operator: IMPLIES, Left: left, Right: right}
}

func Iff(left, right *Node) *Node {
	return &Node{Operator: IFF, Left: left, Right: right}
}

// Name returns the variable name of a VARIABLE node and "" for any other node.
func (n *Node) Name() string {
	return n.name
}

// Variables returns the distinct variable names of the expression in
// lexicographic order.
func (n *Node) Variables() []string {
	var names []string
	n.walk(func(node *Node) {
		if node.Operator == VARIABLE {
			names = append(names, node.name)
		}
	})

	names = lo.Uniq(names)
	slices.Sort(names)
	return names
}

func (n *Node) walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	n.Left.walk(visit)
	n.Right.walk(visit)
}

// SymbolSet decides how connectives are spelled when an expression is printed
type SymbolSet struct {
	Not     string
	And     string
	Or      string
	Xor     string
	Implies string
	Iff     string
}

var (
	UnicodeSymbols = SymbolSet{Not: "~", And: "∧", Or: "∨", Xor: "⊕", Implies: "→", Iff: "↔"}
	ASCIISymbols   = SymbolSet{Not: "!", And: "&", Or: "|", Xor: "^", Implies: "->", Iff: "<->"}
)

func (s SymbolSet) binary(o Operator) string {
	switch o {
	case AND:
		return s.And
	case OR:
		return s.Or
	case XOR:
		return s.Xor
	case IMPLIES:
		return s.Implies
	case IFF:
		return s.Iff
	}
	return "?"
}

// precedence follows the parser: a higher number binds tighter
func precedence(o Operator) int {
	switch o {
	case IFF:
		return 1
	case IMPLIES:
		return 2
	case XOR:
		return 3
	case OR:
		return 4
	case AND:
		return 5
	case NOT:
		return 6
	default:
		return 7
	}
}

func (n *Node) String() string {
	return n.Format(UnicodeSymbols)
}

// Format prints the expression with as few parentheses as the grammar allows.
// Parsing the output yields the same tree.
func (n *Node) Format(symbols SymbolSet) string {
	var sb strings.Builder
	n.format(&sb, symbols)
	return sb.String()
}

func (n *Node) format(sb *strings.Builder, symbols SymbolSet) {
	if n == nil {
		sb.WriteString("<nil>")
		return
	}

	switch n.Operator {
	case VARIABLE:
		sb.WriteString(n.name)

	case NOT:
		sb.WriteString(symbols.Not)
		n.Left.formatChild(sb, symbols, precedence(n.Left.Operator) < precedence(NOT))

	default:
		p := precedence(n.Operator)
		// left-associative: an equal-precedence left child needs no parentheses,
		// an equal-precedence right child does
		n.Left.formatChild(sb, symbols, precedence(n.Left.Operator) < p)
		sb.WriteString(" ")
		sb.WriteString(symbols.binary(n.Operator))
		sb.WriteString(" ")
		n.Right.formatChild(sb, symbols, precedence(n.Right.Operator) <= p)
	}
}

func (n *Node) formatChild(sb *strings.Builder, symbols SymbolSet, parenthesize bool) {
	if parenthesize {
		sb.WriteString("(")
		n.format(sb, symbols)
		sb.WriteString(")")
		return
	}
	n.format(sb, symbols)
}
