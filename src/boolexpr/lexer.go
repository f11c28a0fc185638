package boolexpr

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

type symbol struct {
	text string
	kind TokenKind
}

// symbols lists every spelling the lexer accepts for a connective. Each
// spelling maps to exactly one token kind and no spelling is a prefix of
// another, so the first match is the only match.
var symbols = []symbol{
	{"<->", IFF_TOKEN},
	{"↔", IFF_TOKEN},
	{"⇔", IFF_TOKEN},
	{"->", IMPLIES_TOKEN},
	{"→", IMPLIES_TOKEN},
	{"⇒", IMPLIES_TOKEN},
	{"⊕", XOR_TOKEN},
	{"^", XOR_TOKEN},
	{"∨", OR_TOKEN},
	{"|", OR_TOKEN},
	{"∧", AND_TOKEN},
	{"&", AND_TOKEN},
	{"~", NOT_TOKEN},
	{"¬", NOT_TOKEN},
	{"!", NOT_TOKEN},
	{"(", LPAREN_TOKEN},
	{")", RPAREN_TOKEN},
}

// Tokenize splits the expression into tokens. Fullwidth characters are folded
// to their narrow counterparts first, so "（Ｐ）" lexes the same as "(P)".
// Every letter is a variable of its own; "pq" is two variables.
func Tokenize(expression string) ([]Token, error) {
	input := width.Fold.String(expression)

	var tokens []Token
	pos := 0 // in runes
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])

		if unicode.IsSpace(r) {
			i += size
			pos++
			continue
		}

		if unicode.IsLetter(r) {
			tokens = append(tokens, Token{Kind: VARIABLE_TOKEN, Text: string(r), Pos: pos})
			i += size
			pos++
			continue
		}

		sym, ok := matchSymbol(input[i:])
		if !ok {
			return nil, NewLexError(r, pos)
		}
		tokens = append(tokens, Token{Kind: sym.kind, Text: sym.text, Pos: pos})
		i += len(sym.text)
		pos += utf8.RuneCountInString(sym.text)
	}

	return tokens, nil
}

func matchSymbol(rest string) (symbol, bool) {
	for _, sym := range symbols {
		if strings.HasPrefix(rest, sym.text) {
			return sym, true
		}
	}
	return symbol{}, false
}
