// Package state: ternary value type and sentinel errors shared by
// Object and Vector.
package state

import "errors"

// Ternary is a three-valued assignment for a single variable.
// The zero value is Any (don't-care), so a freshly built Object
// constrains nothing.
type Ternary uint8

const (
	// Any means the variable is unconstrained at this position.
	Any Ternary = iota

	// False pins the variable to false.
	False

	// True pins the variable to true.
	True
)

// String renders the value as a single letter: X, F or T.
func (t Ternary) String() string {
	switch t {
	case False:
		return "F"
	case True:
		return "T"
	default:
		return "X"
	}
}

// Sentinel errors for the state package. Callers match them with
// errors.Is; wrapping at call sites preserves matchability.
var (
	// ErrIndexOutOfRange indicates a position outside [0, Len).
	ErrIndexOutOfRange = errors.New("state: position out of range")

	// ErrBadTernary indicates a Ternary value other than Any/False/True.
	ErrBadTernary = errors.New("state: invalid ternary value")

	// ErrLengthMismatch indicates operands with different variable counts.
	ErrLengthMismatch = errors.New("state: variable count mismatch")

	// ErrNilVector indicates a nil *Vector operand.
	ErrNilVector = errors.New("state: nil vector")

	// ErrEmptyVector indicates a consolidated read on the empty vector
	// (the contradiction has no values to consolidate).
	ErrEmptyVector = errors.New("state: empty vector")

	// ErrNameCount indicates a name table whose size differs from the
	// vector's variable count.
	ErrNameCount = errors.New("state: name table size mismatch")
)
