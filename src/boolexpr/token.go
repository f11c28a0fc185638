package boolexpr

import "fmt"

type TokenKind int

const (
	VARIABLE_TOKEN TokenKind = iota
	NOT_TOKEN
	AND_TOKEN
	OR_TOKEN
	XOR_TOKEN
	IMPLIES_TOKEN
	IFF_TOKEN
	LPAREN_TOKEN
	RPAREN_TOKEN
)

// Token is a single lexeme of an expression. Pos is the rune offset in the
// (width folded) input where the lexeme starts.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

func (k TokenKind) String() string {
	switch k {
	case VARIABLE_TOKEN:
		return "variable"
	case NOT_TOKEN:
		return "NOT"
	case AND_TOKEN:
		return "AND"
	case OR_TOKEN:
		return "OR"
	case XOR_TOKEN:
		return "XOR"
	case IMPLIES_TOKEN:
		return "IMPLIES"
	case IFF_TOKEN:
		return "IFF"
	case LPAREN_TOKEN:
		return "'('"
	case RPAREN_TOKEN:
		return "')'"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

func (t Token) String() string {
	switch t.Kind {
	case VARIABLE_TOKEN:
		return fmt.Sprintf("variable %s", t.Text)
	case LPAREN_TOKEN, RPAREN_TOKEN:
		return t.Kind.String()
	}
	return fmt.Sprintf("%s '%s'", t.Kind, t.Text)
}

// isBinary reports whether the token is one of the binary connectives
func (t Token) isBinary() bool {
	switch t.Kind {
	case AND_TOKEN, OR_TOKEN, XOR_TOKEN, IMPLIES_TOKEN, IFF_TOKEN:
		return true
	}
	return false
}
