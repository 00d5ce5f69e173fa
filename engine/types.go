// Package engine: sentinel errors, evidence bindings and functional
// options.
package engine

import (
	"errors"

	"github.com/hashicorp/go-hclog"
)

// Sentinel errors for engine construction and use. Variable-binding
// errors from rule strings and evidence reuse the rule package
// sentinels (rule.ErrParse, rule.ErrUnknownVariable).
var (
	// ErrNoVariables indicates construction with an empty variable list.
	ErrNoVariables = errors.New("engine: no variables declared")

	// ErrDuplicateVariable indicates a repeated name in the declared
	// variable list.
	ErrDuplicateVariable = errors.New("engine: duplicate variable")

	// ErrConflictingEvidence indicates the same variable pinned to both
	// values within a single evidence input.
	ErrConflictingEvidence = errors.New("engine: conflicting evidence")

	// ErrNotCompiled indicates a read that requires a compiled valid set.
	ErrNotCompiled = errors.New("engine: knowledge base not compiled")
)

// Internal panic messages for option constructors (programmer errors).
const (
	panicPredatorSize = "engine: WithMaxPredatorSize: size must be >= 1"
	panicClusterSize  = "engine: WithMaxClusterSize: size must be >= 1"
)

// Binding pins one variable to a boolean value. Evidence is a sequence
// of bindings rather than a map so that a single input can be checked
// for conflicting assignments to the same name.
type Binding struct {
	Name  string
	Value bool
}

// Bind is shorthand for constructing a Binding.
func Bind(name string, value bool) Binding {
	return Binding{Name: name, Value: value}
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithName attaches a display name used in diagnostics.
func WithName(name string) Option {
	return func(e *Engine) { e.name = name }
}

// WithVerbose enables Debug-level progress records from compilation and
// prediction.
func WithVerbose() Option {
	return func(e *Engine) { e.verbose = true }
}

// WithLogger routes diagnostics to the given logger instead of the
// engine's own. The logger's level still decides whether progress
// records appear.
func WithLogger(logger hclog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithMaxPredatorSize tunes the scheduler's predator threshold.
// Panics when size < 1.
func WithMaxPredatorSize(size int) Option {
	if size < 1 {
		panic(panicPredatorSize)
	}

	return func(e *Engine) { e.sched.MaxPredatorSize = size }
}

// WithMaxClusterSize tunes the scheduler's intermediate size cap.
// Panics when size < 1.
func WithMaxClusterSize(size int) Option {
	if size < 1 {
		panic(panicClusterSize)
	}

	return func(e *Engine) { e.sched.MaxClusterSize = size }
}
