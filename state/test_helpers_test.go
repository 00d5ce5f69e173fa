package state_test

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statealg/state"
)

// obj builds an Object from a compact letter string: T, F or X per
// position.
func obj(t *testing.T, s string) *state.Object {
	t.Helper()

	o := state.NewObject(len(s))
	for i, ch := range s {
		var v state.Ternary
		switch ch {
		case 'T':
			v = state.True
		case 'F':
			v = state.False
		case 'X':
			v = state.Any
		default:
			t.Fatalf("bad ternary letter %q in %q", ch, s)
		}
		require.NoError(t, o.Set(i, v))
	}

	return o
}

// vec builds a Vector from compact member strings of equal width.
func vec(t *testing.T, members ...string) *state.Vector {
	t.Helper()
	require.NotEmpty(t, members, "vec helper needs at least one member")

	v := state.NewVector(len(members[0]))
	for _, m := range members {
		require.NoError(t, v.Add(obj(t, m)))
	}

	return v
}

// posNames returns a positional name table v0..v(n-1).
func posNames(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("v%d", i)
	}

	return out
}

// render flattens one assignment map into a TF string in position order.
func render(names []string, m map[string]bool) string {
	var sb strings.Builder
	for _, name := range names {
		if m[name] {
			sb.WriteByte('T')
		} else {
			sb.WriteByte('F')
		}
	}

	return sb.String()
}

// expansionSeq collects the full expansion sequence of a vector, in
// iterator order, one TF string per assignment.
func expansionSeq(t *testing.T, v *state.Vector) []string {
	t.Helper()

	names := posNames(v.Width())
	it, err := v.Assignments(names)
	require.NoError(t, err)

	var out []string
	for m, ok := it.Next(); ok; m, ok = it.Next() {
		require.Len(t, m, v.Width(), "expansion must bind every variable")
		out = append(out, render(names, m))
	}

	return out
}

// expansionSet collects the distinct assignments a vector covers,
// sorted, for semantic comparisons.
func expansionSet(t *testing.T, v *state.Vector) []string {
	t.Helper()

	seen := make(map[string]struct{})
	for _, s := range expansionSeq(t, v) {
		seen[s] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// requireCanonical asserts the two Simplify invariants: no member
// covers another, and no two members with equal masks differ in exactly
// one position.
func requireCanonical(t *testing.T, v *state.Vector) {
	t.Helper()

	objs := v.Objects()
	for i, a := range objs {
		for j, b := range objs {
			if i == j {
				continue
			}
			require.False(t, a.Covers(b), "member %d covers member %d in %s", i, j, v)
			if _, adj := a.Adjacent(b); adj {
				t.Fatalf("members %d and %d of %s are adjacent", i, j, v)
			}
		}
	}
}
