package boolexpr

import (
	"errors"
	"fmt"
)

// ErrNoVariables is returned for expressions that reference no variables at
// all. Such an expression has no truth table.
var ErrNoVariables = errors.New("no variables found")

// LexError is returned when the expression contains a character that is not a
// letter, whitespace, parenthesis or connective.
type LexError struct {
	Char     rune
	Position int
}

// NewLexError creates a new LexError for the character found at the given rune
// offset.
func NewLexError(char rune, position int) error {
	return &LexError{Char: char, Position: position}
}

func (e LexError) Error() string {
	return fmt.Sprintf("unrecognized character %q at position %d", e.Char, e.Position)
}

// ParseError is returned when the tokens do not form a well-formed expression.
type ParseError struct {
	Reason   string
	Position int // -1 when the error is not tied to a token

	Err error
}

// NewParseError creates a new ParseError. The position is the rune offset of
// the offending token, or the length of the input when the expression ended
// too early.
func NewParseError(position int, format string, a ...any) error {
	return &ParseError{Reason: fmt.Sprintf(format, a...), Position: position}
}

func (e ParseError) Error() string {
	if e.Position < 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s at position %d", e.Reason, e.Position)
}

func (e ParseError) Unwrap() error {
	return e.Err
}

// EvalError is returned when an expression is solved with an assignment that
// lacks one of its variables.
type EvalError struct {
	VariableName string
}

// NewEvalError creates a new EvalError with the given variable name.
func NewEvalError(variableName string) error {
	return &EvalError{VariableName: variableName}
}

func (e EvalError) Error() string {
	return fmt.Sprintf("unknown variable: %s", e.VariableName)
}
