package boolexpr

import (
	"unicode/utf8"

	"github.com/samber/lo"
)

// parser is a recursive descent parser with one method per precedence level,
// loosest first:
//
//	iff     = implies { "↔" implies }
//	implies = xor { "→" xor }
//	xor     = or { "⊕" or }
//	or      = and { "∨" and }
//	and     = not { "∧" not }
//	not     = "~" not | atom
//	atom    = variable | "(" iff ")"
//
// All binary connectives are left-associative, so "p → q → r" is
// "(p → q) → r".
type parser struct {
	tokens []Token
	pos    int
	end    int // rune offset just past the last token

	depth   int           // open parentheses and NOTs around the current token
	heights map[*Node]int // height of every node built so far
}

// MaxDepth bounds both how deeply parentheses and NOTs may nest and how tall
// the resulting tree may be. Every walk over a tree recurses once per level.
const MaxDepth = 10000

// ParseTokens builds the expression tree for the given tokens.
func ParseTokens(tokens []Token) (*Node, error) {
	if len(tokens) == 0 {
		return nil, NewParseError(0, "empty expression")
	}
	if !lo.ContainsBy(tokens, func(tok Token) bool { return tok.Kind == VARIABLE_TOKEN }) {
		return nil, &ParseError{Reason: "no variables found", Position: -1, Err: ErrNoVariables}
	}

	last := tokens[len(tokens)-1]
	p := &parser{
		tokens:  tokens,
		end:     last.Pos + utf8.RuneCountInString(last.Text),
		heights: make(map[*Node]int),
	}

	root, err := p.parseIff()
	if err != nil {
		return nil, err
	}

	if !p.eof() {
		tok := p.peek()
		switch tok.Kind {
		case RPAREN_TOKEN:
			return nil, NewParseError(tok.Pos, "unmatched ')'")
		default:
			return nil, NewParseError(tok.Pos, "missing operator before %s", tok)
		}
	}

	return root, nil
}

func (p *parser) eof() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

func (p *parser) accept(kind TokenKind) (Token, bool) {
	if p.eof() || p.peek().Kind != kind {
		return Token{}, false
	}
	return p.next(), true
}

// binaryLevel parses `operand { kind operand }` and folds the result to the
// left.
func (p *parser) binaryLevel(kind TokenKind, operator Operator, operand func() (*Node, error)) (*Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.accept(kind)
		if !ok {
			return left, nil
		}
		if p.eof() {
			return nil, NewParseError(p.end, "missing right operand for %s", op.Kind)
		}

		right, err := operand()
		if err != nil {
			return nil, err
		}
		if left, err = p.node(op, &Node{Operator: operator, Left: left, Right: right}); err != nil {
			return nil, err
		}
	}
}

// node records the height of n, failing when the tree grows too tall
func (p *parser) node(tok Token, n *Node) (*Node, error) {
	height := 1 + max(p.heights[n.Left], p.heights[n.Right])
	if height > MaxDepth {
		return nil, p.tooDeep(tok)
	}
	p.heights[n] = height
	return n, nil
}

// enter is called for every "(" and NOT, leave when the group they open has
// been parsed
func (p *parser) enter(tok Token) error {
	p.depth++
	if p.depth > MaxDepth {
		return p.tooDeep(tok)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) tooDeep(tok Token) error {
	return NewParseError(tok.Pos, "expression nests too deeply, at most %d levels are allowed", MaxDepth)
}

func (p *parser) parseIff() (*Node, error) {
	return p.binaryLevel(IFF_TOKEN, IFF, p.parseImplies)
}

func (p *parser) parseImplies() (*Node, error) {
	return p.binaryLevel(IMPLIES_TOKEN, IMPLIES, p.parseXor)
}

func (p *parser) parseXor() (*Node, error) {
	return p.binaryLevel(XOR_TOKEN, XOR, p.parseOr)
}

func (p *parser) parseOr() (*Node, error) {
	return p.binaryLevel(OR_TOKEN, OR, p.parseAnd)
}

func (p *parser) parseAnd() (*Node, error) {
	return p.binaryLevel(AND_TOKEN, AND, p.parseNot)
}

func (p *parser) parseNot() (*Node, error) {
	op, ok := p.accept(NOT_TOKEN)
	if !ok {
		return p.parseAtom()
	}
	if p.eof() {
		return nil, NewParseError(p.end, "missing operand for %s", op.Kind)
	}

	if err := p.enter(op); err != nil {
		return nil, err
	}
	defer p.leave()

	operand, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	return p.node(op, &Node{Operator: NOT, Left: operand})
}

func (p *parser) parseAtom() (*Node, error) {
	if p.eof() {
		return nil, NewParseError(p.end, "unexpected end of expression, expected a variable or '('")
	}

	tok := p.next()
	switch {
	case tok.Kind == VARIABLE_TOKEN:
		return p.node(tok, &Node{Operator: VARIABLE, name: tok.Text})

	case tok.Kind == LPAREN_TOKEN:
		if closing, ok := p.accept(RPAREN_TOKEN); ok {
			return nil, NewParseError(closing.Pos, "empty parentheses")
		}
		if err := p.enter(tok); err != nil {
			return nil, err
		}
		defer p.leave()

		inner, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if _, ok := p.accept(RPAREN_TOKEN); !ok {
			if p.eof() {
				return nil, NewParseError(tok.Pos, "unmatched '('")
			}
			return nil, NewParseError(p.peek().Pos, "missing operator before %s", p.peek())
		}
		return inner, nil

	case tok.Kind == RPAREN_TOKEN:
		return nil, NewParseError(tok.Pos, "unmatched ')'")

	case tok.isBinary():
		return nil, NewParseError(tok.Pos, "missing left operand for %s", tok.Kind)
	}

	return nil, NewParseError(tok.Pos, "unexpected %s", tok)
}
