package engine

import (
	"fmt"

	"github.com/katalvlaran/statealg/rule"
	"github.com/katalvlaran/statealg/state"
)

// Inference wraps the state vector a Predict call produced. An empty
// vector means the evidence contradicts the knowledge base; every
// accessor keeps working and reports that outcome explicitly.
type Inference struct {
	vec   *state.Vector
	names []string
	index map[string]int
}

// Contradiction reports whether no valid assignment remains.
func (r *Inference) Contradiction() bool { return r.vec.IsEmpty() }

// Len returns the number of state objects in the result.
func (r *Inference) Len() int { return r.vec.Len() }

// Vector exposes the underlying state vector; treat it as read-only.
func (r *Inference) Vector() *state.Vector { return r.vec }

// Value returns the consolidated value of one variable across the
// result: True or False when every permitted assignment agrees, Any
// otherwise. state.ErrEmptyVector on a contradiction,
// rule.ErrUnknownVariable for undeclared names.
func (r *Inference) Value(name string) (state.Ternary, error) {
	i, ok := r.index[name]
	if !ok {
		return state.Any, fmt.Errorf("%w: %q", rule.ErrUnknownVariable, name)
	}

	return r.vec.ValueAt(i)
}

// Assignments returns a lazy, restartable iterator over every concrete
// assignment the result permits.
func (r *Inference) Assignments() (*state.AssignmentIterator, error) {
	return r.vec.Assignments(r.names)
}

// String renders the result vector for diagnostics.
func (r *Inference) String() string { return r.vec.String() }
