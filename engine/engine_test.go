package engine_test

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statealg/engine"
	"github.com/katalvlaran/statealg/rule"
	"github.com/katalvlaran/statealg/state"
)

// TestNew_Validation verifies construction-time checks.
func TestNew_Validation(t *testing.T) {
	_, err := engine.New(nil)
	assert.ErrorIs(t, err, engine.ErrNoVariables)

	_, err = engine.New([]string{"a", "b", "a"})
	assert.ErrorIs(t, err, engine.ErrDuplicateVariable)
	assert.Contains(t, err.Error(), `"a"`)

	e, err := engine.New([]string{"a", "b"}, engine.WithName("kb"))
	require.NoError(t, err)
	assert.Equal(t, "kb", e.Name())
	assert.Equal(t, []string{"a", "b"}, e.Variables())
	assert.False(t, e.Compiled())
}

// TestOptions_PanicOnNonsense verifies size constructors reject
// programmer errors loudly.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { engine.WithMaxPredatorSize(0) })
	assert.Panics(t, func() { engine.WithMaxClusterSize(-1) })
	assert.NotPanics(t, func() { engine.WithMaxPredatorSize(1) })
}

// TestAddRule_Errors verifies parse and binding failures leave the
// engine unchanged.
func TestAddRule_Errors(t *testing.T) {
	e, err := engine.New([]string{"a", "b"})
	require.NoError(t, err)

	assert.ErrorIs(t, e.AddRule("a &&"), rule.ErrParse)
	assert.ErrorIs(t, e.AddRule("a && ghost"), rule.ErrUnknownVariable)
	assert.Empty(t, e.Rules(), "failed additions must not be retained")

	require.NoError(t, e.AddRule("a && b"))
	rules := e.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, "a && b", rules[0].Source)
	assert.NotNil(t, rules[0].AST)
	assert.Equal(t, 1, rules[0].Vector.Len())
}

// TestAddEvidence_Errors verifies evidence validation.
func TestAddEvidence_Errors(t *testing.T) {
	e, err := engine.New([]string{"a", "b"})
	require.NoError(t, err)

	assert.ErrorIs(t, e.AddEvidence(engine.Bind("ghost", true)), rule.ErrUnknownVariable)

	err = e.AddEvidence(engine.Bind("a", true), engine.Bind("a", false))
	assert.ErrorIs(t, err, engine.ErrConflictingEvidence)

	// The same value twice is redundant, not conflicting.
	assert.NoError(t, e.AddEvidence(engine.Bind("a", true), engine.Bind("a", true)))
}

// TestCompile_EmptyKnowledgeBase verifies an engine with nothing to say
// compiles to the tautology.
func TestCompile_EmptyKnowledgeBase(t *testing.T) {
	e, err := engine.New([]string{"a", "b"})
	require.NoError(t, err)

	require.NoError(t, e.Compile())
	require.True(t, e.Compiled())
	assert.Equal(t, 1, e.ValidSet().Len())

	for _, name := range []string{"a", "b"} {
		v, err := e.VariableValue(name)
		require.NoError(t, err)
		assert.Equal(t, state.Any, v)
	}
}

// TestVariableValue_Errors verifies the read guards.
func TestVariableValue_Errors(t *testing.T) {
	e, err := engine.New([]string{"a"})
	require.NoError(t, err)

	_, err = e.VariableValue("a")
	assert.ErrorIs(t, err, engine.ErrNotCompiled)
	_, err = e.ValidSetAssignments()
	assert.ErrorIs(t, err, engine.ErrNotCompiled)

	require.NoError(t, e.Compile())
	_, err = e.VariableValue("ghost")
	assert.ErrorIs(t, err, rule.ErrUnknownVariable)
}

// TestAddInvalidatesCompilation verifies new rules or evidence drop the
// stale valid set.
func TestAddInvalidatesCompilation(t *testing.T) {
	e, err := engine.New([]string{"a", "b"})
	require.NoError(t, err)
	require.NoError(t, e.AddRule("a || b"))
	require.NoError(t, e.Compile())
	require.True(t, e.Compiled())

	require.NoError(t, e.AddRule("a"))
	assert.False(t, e.Compiled(), "a new rule invalidates the valid set")

	require.NoError(t, e.Compile())
	require.NoError(t, e.AddEvidence(engine.Bind("b", true)))
	assert.False(t, e.Compiled(), "new evidence invalidates the valid set")
}

// TestCompile_Recomputes verifies compile is idempotent and always
// rebuilds from the accumulated inputs.
func TestCompile_Recomputes(t *testing.T) {
	e, err := engine.New([]string{"a", "b"})
	require.NoError(t, err)
	require.NoError(t, e.AddRule("a = b"))

	require.NoError(t, e.Compile())
	first := e.ValidSet().String()
	require.NoError(t, e.Compile())
	assert.Equal(t, first, e.ValidSet().String())
}

// TestPredict_EvidenceValidation verifies predict rejects bad evidence
// up front.
func TestPredict_EvidenceValidation(t *testing.T) {
	e, err := engine.New([]string{"a"})
	require.NoError(t, err)
	require.NoError(t, e.Compile())

	_, err = e.Predict(engine.Bind("ghost", true))
	assert.ErrorIs(t, err, rule.ErrUnknownVariable)
	_, err = e.Predict(engine.Bind("a", true), engine.Bind("a", false))
	assert.ErrorIs(t, err, engine.ErrConflictingEvidence)
}

// TestVerbose_EmitsDiagnostics verifies WithLogger receives compile
// progress when the level allows it.
func TestVerbose_EmitsDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Name: "kb-test", Level: hclog.Debug, Output: &buf})

	e, err := engine.New([]string{"a", "b", "c"}, engine.WithVerbose(), engine.WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, e.AddRule("a = (b && c)"))
	require.NoError(t, e.AddRule("b || c"))
	require.NoError(t, e.AddEvidence(engine.Bind("c", false)))
	require.NoError(t, e.Compile())

	out := buf.String()
	assert.Contains(t, out, "rule added")
	assert.Contains(t, out, "compile done")
}
