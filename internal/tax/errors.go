package tax

import (
	"errors"
	"fmt"
	"strings"
)

// ErrComputation marks a calculation that violated its own invariants
// (deductions exceeding gross, negative line items). It never fires for
// valid input against a valid regime; if it does, the regime definition is
// defective. Kept distinct from user-input errors so callers can report it
// as an internal failure.
var ErrComputation = errors.New("internal calculation error")

// InvalidInputError reports a gross salary that is malformed or negative.
type InvalidInputError struct {
	Input string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid gross salary %q: expected a non-negative amount like 100000 or 100,000", e.Input)
}

// UnknownCalculatorError reports a registry lookup for a key that was never
// registered.
type UnknownCalculatorError struct {
	Key       string
	Available []string
}

func (e *UnknownCalculatorError) Error() string {
	return fmt.Sprintf("unknown regime %q. Available regimes: %s", e.Key, strings.Join(e.Available, ", "))
}
