package engine

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/statealg/rule"
	"github.com/katalvlaran/statealg/schedule"
	"github.com/katalvlaran/statealg/state"
)

// Rule is one accumulated rule: its source string, parsed AST and the
// state vector of assignments satisfying it.
type Rule struct {
	Source string
	AST    *rule.Node
	Vector *state.Vector
}

// Engine accumulates rules and evidence over a fixed variable ordering
// and compiles them into the valid set. The zero value is unusable;
// construct with New.
type Engine struct {
	name     string
	vars     []string
	index    map[string]int
	conv     *rule.Converter
	rules    []Rule
	evidence []*state.Vector
	validSet *state.Vector
	sched    schedule.Options
	logger   hclog.Logger
	verbose  bool
}

// New builds an Engine over the ordered variable list. Names must be
// unique (ErrDuplicateVariable) and at least one variable is required
// (ErrNoVariables).
func New(variables []string, opts ...Option) (*Engine, error) {
	if len(variables) == 0 {
		return nil, ErrNoVariables
	}
	index := make(map[string]int, len(variables))
	for i, name := range variables {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, name)
		}
		index[name] = i
	}

	e := &Engine{
		vars:  append([]string(nil), variables...),
		index: index,
		conv:  rule.NewConverter(variables),
		sched: schedule.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		if e.verbose {
			e.logger = hclog.New(&hclog.LoggerOptions{Name: "statealg", Level: hclog.Debug})
		} else {
			e.logger = hclog.NewNullLogger()
		}
	}
	e.sched.Logger = e.logger.Named("schedule")

	return e, nil
}

// Name returns the display name set with WithName, or "".
func (e *Engine) Name() string { return e.name }

// Variables returns a copy of the declared variable ordering.
func (e *Engine) Variables() []string {
	return append([]string(nil), e.vars...)
}

// Rules returns a copy of the accumulated rules.
func (e *Engine) Rules() []Rule {
	return append([]Rule(nil), e.rules...)
}

// Compiled reports whether a valid set is available.
func (e *Engine) Compiled() bool { return e.validSet != nil }

// ValidSet returns the compiled valid set, or nil before Compile.
// The returned vector is the engine's own; treat it as read-only.
func (e *Engine) ValidSet() *state.Vector { return e.validSet }

// AddRule parses and converts one rule string and stores it. On any
// error (rule.ErrParse, rule.ErrUnknownVariable) the engine is left
// unchanged. Adding a rule invalidates a previously compiled valid set.
func (e *Engine) AddRule(src string) error {
	ast, err := rule.Parse(src)
	if err != nil {
		return err
	}
	vec, err := e.conv.Convert(ast)
	if err != nil {
		return err
	}

	e.rules = append(e.rules, Rule{Source: src, AST: ast, Vector: vec})
	e.validSet = nil
	e.logger.Debug("rule added", "source", src, "size", vec.Len())

	return nil
}

// AddEvidence validates and stores one evidence input: each binding
// pins a declared variable, the rest stay don't-care. The same name may
// repeat with the same value; opposing values yield
// ErrConflictingEvidence, unknown names rule.ErrUnknownVariable, and in
// both cases the engine is left unchanged. Adding evidence invalidates
// a previously compiled valid set.
func (e *Engine) AddEvidence(bindings ...Binding) error {
	vec, err := e.evidenceVector(bindings)
	if err != nil {
		return err
	}

	e.evidence = append(e.evidence, vec)
	e.validSet = nil
	e.logger.Debug("evidence added", "bindings", len(bindings))

	return nil
}

// Compile multiplies all rules and stored evidence into the valid set.
// Idempotent; always recomputes from scratch. A contradiction is not an
// error: it latches an empty valid set, which callers detect through
// emptiness (Inference.Contradiction, state.ErrEmptyVector). An engine
// with no rules and no evidence compiles to the tautology.
func (e *Engine) Compile() error {
	inputs := e.inputs(nil)
	if len(inputs) == 0 {
		e.validSet = state.NewFull(len(e.vars))

		return nil
	}

	e.logger.Debug("compile start", "name", e.name, "rules", len(e.rules), "evidence", len(e.evidence))
	validSet, err := schedule.Reduce(inputs, &e.sched)
	if err != nil {
		return err
	}
	e.validSet = validSet
	e.logger.Debug("compile done", "size", validSet.Len(), "contradiction", validSet.IsEmpty())

	return nil
}

// Predict evaluates the knowledge base under additional evidence. On a
// compiled engine it multiplies the valid set by the evidence vector;
// otherwise it reduces rules, stored evidence and the call's evidence
// in one pass without persisting anything. Both paths yield the same
// assignment set. An empty result marks the evidence as contradicting
// the knowledge base.
func (e *Engine) Predict(bindings ...Binding) (*Inference, error) {
	evidence, err := e.evidenceVector(bindings)
	if err != nil {
		return nil, err
	}

	var vec *state.Vector
	if e.validSet != nil {
		vec, err = e.validSet.Multiply(evidence)
	} else {
		vec, err = schedule.Reduce(e.inputs(evidence), &e.sched)
	}
	if err != nil {
		return nil, err
	}
	e.logger.Debug("predict", "bindings", len(bindings), "size", vec.Len(), "contradiction", vec.IsEmpty())

	return &Inference{vec: vec, names: e.vars, index: e.index}, nil
}

// VariableValue returns the consolidated value of one variable across
// the compiled valid set: True or False when every permitted assignment
// agrees, Any otherwise. ErrNotCompiled before Compile;
// state.ErrEmptyVector when the valid set is a contradiction.
func (e *Engine) VariableValue(name string) (state.Ternary, error) {
	if e.validSet == nil {
		return state.Any, ErrNotCompiled
	}
	i, ok := e.index[name]
	if !ok {
		return state.Any, fmt.Errorf("%w: %q", rule.ErrUnknownVariable, name)
	}

	return e.validSet.ValueAt(i)
}

// ValidSetAssignments returns a lazy, restartable iterator over every
// concrete assignment the compiled valid set permits. ErrNotCompiled
// before Compile.
func (e *Engine) ValidSetAssignments() (*state.AssignmentIterator, error) {
	if e.validSet == nil {
		return nil, ErrNotCompiled
	}

	return e.validSet.Assignments(e.vars)
}

// inputs gathers rule vectors, stored evidence and one optional extra
// evidence vector for the scheduler.
func (e *Engine) inputs(extra *state.Vector) []*state.Vector {
	out := make([]*state.Vector, 0, len(e.rules)+len(e.evidence)+1)
	for _, r := range e.rules {
		out = append(out, r.Vector)
	}
	out = append(out, e.evidence...)
	if extra != nil {
		out = append(out, extra)
	}

	return out
}

// evidenceVector validates bindings and builds the single-member vector
// pinning each bound position.
func (e *Engine) evidenceVector(bindings []Binding) (*state.Vector, error) {
	obj := state.NewObject(len(e.vars))
	seen := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		i, ok := e.index[b.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", rule.ErrUnknownVariable, b.Name)
		}
		if prev, dup := seen[b.Name]; dup && prev != b.Value {
			return nil, fmt.Errorf("%w: %q", ErrConflictingEvidence, b.Name)
		}
		seen[b.Name] = b.Value

		value := state.False
		if b.Value {
			value = state.True
		}
		if err := obj.Set(i, value); err != nil {
			return nil, err
		}
	}

	vec := state.NewVector(len(e.vars))
	if err := vec.Add(obj); err != nil {
		return nil, err
	}

	return vec, nil
}
