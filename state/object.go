package state

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Object is a ternary assignment over a fixed, ordered set of n
// variables. Position i constrains variable i only. Internally it keeps
// two bitsets: defined[i] is set iff position i is not don't-care, and
// value[i] holds the pinned boolean when defined. Bits of value outside
// defined are always zero, which makes equality, hashing and
// multiplication plain word-wise operations.
//
// The set of concrete boolean assignments an Object covers is the
// Cartesian expansion of its don't-care positions: the all-don't-care
// Object covers all 2^n assignments, an Object with every position
// defined covers exactly one.
type Object struct {
	n       int
	defined *bitset.BitSet
	value   *bitset.BitSet
}

// NewObject returns an Object of width n with every position don't-care.
func NewObject(n int) *Object {
	return &Object{
		n:       n,
		defined: bitset.New(uint(n)),
		value:   bitset.New(uint(n)),
	}
}

// Len returns the number of variable positions.
func (o *Object) Len() int { return o.n }

// DefinedCount returns how many positions are pinned to a value.
func (o *Object) DefinedCount() int { return int(o.defined.Count()) }

// At returns the ternary value at position i.
func (o *Object) At(i int) (Ternary, error) {
	if i < 0 || i >= o.n {
		return Any, ErrIndexOutOfRange
	}

	return o.at(uint(i)), nil
}

// at is the unchecked indexer used on hot paths.
func (o *Object) at(i uint) Ternary {
	if !o.defined.Test(i) {
		return Any
	}
	if o.value.Test(i) {
		return True
	}

	return False
}

// Set pins (or frees) position i. Setting Any clears the position back
// to don't-care.
func (o *Object) Set(i int, t Ternary) error {
	if i < 0 || i >= o.n {
		return ErrIndexOutOfRange
	}
	switch t {
	case Any:
		o.defined.Clear(uint(i))
		o.value.Clear(uint(i))
	case False:
		o.defined.Set(uint(i))
		o.value.Clear(uint(i))
	case True:
		o.defined.Set(uint(i))
		o.value.Set(uint(i))
	default:
		return ErrBadTernary
	}

	return nil
}

// Covers reports whether every assignment covered by other is also
// covered by o: every defined position of o must be defined in other
// with the same value. An Object covers itself.
func (o *Object) Covers(other *Object) bool {
	if other == nil || o.n != other.n {
		return false
	}
	// 1) o may only constrain positions other constrains too.
	if !other.defined.IsSuperSet(o.defined) {
		return false
	}
	// 2) values must agree on every position o defines.
	diff := o.value.SymmetricDifference(other.value)
	diff.InPlaceIntersection(o.defined)

	return diff.None()
}

// Adjacent reports whether o and other constrain exactly the same
// positions and disagree at exactly one of them. On success it returns
// that position. Such a pair merges into one Object with the position
// freed to don't-care.
func (o *Object) Adjacent(other *Object) (int, bool) {
	if other == nil || o.n != other.n || !o.defined.Equal(other.defined) {
		return 0, false
	}
	diff := o.value.SymmetricDifference(other.value)
	if diff.Count() != 1 {
		return 0, false
	}
	i, _ := diff.NextSet(0)

	return int(i), true
}

// Multiply returns the ternary conjunction of o and other: per position,
// don't-care yields the partner's value, equal pinned values stand, and
// opposing pinned values contradict. The second return is false when any
// position contradicts (the product is ⊥).
func (o *Object) Multiply(other *Object) (*Object, bool) {
	if other == nil || o.n != other.n {
		return nil, false
	}
	// A clash is a position defined on both sides with opposing values.
	clash := o.value.SymmetricDifference(other.value)
	clash.InPlaceIntersection(o.defined)
	clash.InPlaceIntersection(other.defined)
	if clash.Any() {
		return nil, false
	}

	return &Object{
		n:       o.n,
		defined: o.defined.Union(other.defined),
		value:   o.value.Union(other.value),
	}, true
}

// Equal reports full (defined, value) equality.
func (o *Object) Equal(other *Object) bool {
	return other != nil && o.n == other.n &&
		o.defined.Equal(other.defined) && o.value.Equal(other.value)
}

// Clone returns an independent copy.
func (o *Object) Clone() *Object {
	return &Object{n: o.n, defined: o.defined.Clone(), value: o.value.Clone()}
}

// Bindings exports the defined positions as a name→bool map using the
// supplied name table, which must list one name per position.
func (o *Object) Bindings(names []string) (map[string]bool, error) {
	if len(names) != o.n {
		return nil, ErrNameCount
	}
	out := make(map[string]bool, o.defined.Count())
	for i, e := o.defined.NextSet(0); e; i, e = o.defined.NextSet(i + 1) {
		out[names[i]] = o.value.Test(i)
	}

	return out, nil
}

// String renders one letter per position, e.g. "TFXX".
func (o *Object) String() string {
	var sb strings.Builder
	sb.Grow(o.n)
	for i := 0; i < o.n; i++ {
		sb.WriteString(o.at(uint(i)).String())
	}

	return sb.String()
}

// bitsKey folds a bitset's words into a string usable as a map key.
func bitsKey(b *bitset.BitSet) string {
	var sb strings.Builder
	for _, w := range b.Bytes() {
		fmt.Fprintf(&sb, "%016x", w)
	}

	return sb.String()
}
