package truthtable

import (
	"fmt"
)

// VariableLimitError is returned when an expression has more distinct
// variables than the generator is allowed to enumerate.
type VariableLimitError struct {
	Count int
	Limit int
}

// NewVariableLimitError creates a new VariableLimitError.
func NewVariableLimitError(count, limit int) error {
	return &VariableLimitError{Count: count, Limit: limit}
}

func (e VariableLimitError) Error() string {
	return fmt.Sprintf("expression has %d distinct variables, at most %d are allowed", e.Count, e.Limit)
}
