package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statealg/state"
)

// TestAssignments_ExpandsDontCares verifies don't-care positions expand
// to both values, false first, last free position fastest.
func TestAssignments_ExpandsDontCares(t *testing.T) {
	v := vec(t, "TXX")

	assert.Equal(t, []string{"TFF", "TFT", "TTF", "TTT"}, expansionSeq(t, v))
}

// TestAssignments_WalksMembersInOrder verifies members expand one after
// another.
func TestAssignments_WalksMembersInOrder(t *testing.T) {
	v := vec(t, "TF", "FX")

	assert.Equal(t, []string{"TF", "FF", "FT"}, expansionSeq(t, v))
}

// TestAssignments_Restartable verifies Reset and a fresh iterator both
// reproduce the exact sequence.
func TestAssignments_Restartable(t *testing.T) {
	v := vec(t, "TXF", "XFT")
	names := posNames(3)

	it, err := v.Assignments(names)
	require.NoError(t, err)

	var first []string
	for m, ok := it.Next(); ok; m, ok = it.Next() {
		first = append(first, render(names, m))
	}
	require.NotEmpty(t, first)

	it.Reset()
	var second []string
	for m, ok := it.Next(); ok; m, ok = it.Next() {
		second = append(second, render(names, m))
	}
	assert.Equal(t, first, second, "Reset must reproduce the sequence")

	fresh, err := v.Assignments(names)
	require.NoError(t, err)
	m, ok := fresh.Next()
	require.True(t, ok)
	assert.Equal(t, first[0], render(names, m), "a fresh iterator starts over")
}

// TestAssignments_EmptyVector verifies ⊥ yields an empty sequence.
func TestAssignments_EmptyVector(t *testing.T) {
	it, err := state.NewVector(2).Assignments(posNames(2))
	require.NoError(t, err)

	_, ok := it.Next()
	assert.False(t, ok)
}

// TestAssignments_NameTableValidation verifies the name table must
// match the width.
func TestAssignments_NameTableValidation(t *testing.T) {
	_, err := vec(t, "TX").Assignments([]string{"only"})
	assert.ErrorIs(t, err, state.ErrNameCount)
}

// TestAssignments_FullyPinnedMember verifies a member without
// don't-cares yields exactly one assignment.
func TestAssignments_FullyPinnedMember(t *testing.T) {
	assert.Equal(t, []string{"FTF"}, expansionSeq(t, vec(t, "FTF")))
}
