package boolexpr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	testCases := map[string][]Token{
		"p": {
			{Kind: VARIABLE_TOKEN, Text: "p", Pos: 0},
		},
		"P ∧ Q": {
			{Kind: VARIABLE_TOKEN, Text: "P", Pos: 0},
			{Kind: AND_TOKEN, Text: "∧", Pos: 2},
			{Kind: VARIABLE_TOKEN, Text: "Q", Pos: 4},
		},
		"p->q": {
			{Kind: VARIABLE_TOKEN, Text: "p", Pos: 0},
			{Kind: IMPLIES_TOKEN, Text: "->", Pos: 1},
			{Kind: VARIABLE_TOKEN, Text: "q", Pos: 3},
		},
		"a<->b": {
			{Kind: VARIABLE_TOKEN, Text: "a", Pos: 0},
			{Kind: IFF_TOKEN, Text: "<->", Pos: 1},
			{Kind: VARIABLE_TOKEN, Text: "b", Pos: 4},
		},
		"~(pq)": {
			{Kind: NOT_TOKEN, Text: "~", Pos: 0},
			{Kind: LPAREN_TOKEN, Text: "(", Pos: 1},
			{Kind: VARIABLE_TOKEN, Text: "p", Pos: 2},
			{Kind: VARIABLE_TOKEN, Text: "q", Pos: 3},
			{Kind: RPAREN_TOKEN, Text: ")", Pos: 4},
		},
		"p ⊕ q ↔ r": {
			{Kind: VARIABLE_TOKEN, Text: "p", Pos: 0},
			{Kind: XOR_TOKEN, Text: "⊕", Pos: 2},
			{Kind: VARIABLE_TOKEN, Text: "q", Pos: 4},
			{Kind: IFF_TOKEN, Text: "↔", Pos: 6},
			{Kind: VARIABLE_TOKEN, Text: "r", Pos: 8},
		},
		"¬a|b^c": {
			{Kind: NOT_TOKEN, Text: "¬", Pos: 0},
			{Kind: VARIABLE_TOKEN, Text: "a", Pos: 1},
			{Kind: OR_TOKEN, Text: "|", Pos: 2},
			{Kind: VARIABLE_TOKEN, Text: "b", Pos: 3},
			{Kind: XOR_TOKEN, Text: "^", Pos: 4},
			{Kind: VARIABLE_TOKEN, Text: "c", Pos: 5},
		},
		"a ⇒ b ⇔ !c": {
			{Kind: VARIABLE_TOKEN, Text: "a", Pos: 0},
			{Kind: IMPLIES_TOKEN, Text: "⇒", Pos: 2},
			{Kind: VARIABLE_TOKEN, Text: "b", Pos: 4},
			{Kind: IFF_TOKEN, Text: "⇔", Pos: 6},
			{Kind: NOT_TOKEN, Text: "!", Pos: 8},
			{Kind: VARIABLE_TOKEN, Text: "c", Pos: 9},
		},

		// fullwidth forms are folded before lexing
		"（Ｐ）": {
			{Kind: LPAREN_TOKEN, Text: "(", Pos: 0},
			{Kind: VARIABLE_TOKEN, Text: "P", Pos: 1},
			{Kind: RPAREN_TOKEN, Text: ")", Pos: 2},
		},

		"  \t\n": nil,
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			tokens, err := Tokenize(expression)
			require.NoError(t, err)

			assert.Equal(t, expected, tokens)
		})
	}
}

func TestTokenizeIsCaseSensitive(t *testing.T) {
	tokens, err := Tokenize("p&P")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.Equal(t, "p", tokens[0].Text)
	assert.Equal(t, "P", tokens[2].Text)
}

func TestTokenizeRejectsUnknownCharacters(t *testing.T) {
	testCases := map[string]LexError{
		"p + q":  {Char: '+', Position: 2},
		"p - q":  {Char: '-', Position: 2},
		"p <- q": {Char: '<', Position: 2},
		"1":      {Char: '1', Position: 0},
		"p ∧ q;": {Char: ';', Position: 5},
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			_, err := Tokenize(expression)

			var lexErr *LexError
			require.True(t, errors.As(err, &lexErr), "expected a LexError, got %v", err)
			assert.Equal(t, expected, *lexErr)
		})
	}
}
