package state

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Vector is a set of Objects over the same variable ordering, read as a
// disjunction: the assignments it covers are the union of the
// assignments its members cover. An empty Vector is the contradiction ⊥;
// a Vector holding the all-don't-care Object is the tautology ⊤.
//
// Vectors are built up with Add and canonicalized with Simplify.
// Multiply and Union return fresh, already simplified Vectors.
type Vector struct {
	n    int
	objs []*Object
}

// NewVector returns an empty Vector of width n (the contradiction until
// members are added).
func NewVector(n int) *Vector {
	return &Vector{n: n}
}

// NewFull returns the tautology of width n: one member with every
// position don't-care.
func NewFull(n int) *Vector {
	return &Vector{n: n, objs: []*Object{NewObject(n)}}
}

// Width returns the number of variable positions.
func (v *Vector) Width() int { return v.n }

// Len returns the number of member Objects.
func (v *Vector) Len() int { return len(v.objs) }

// IsEmpty reports whether the vector is the contradiction ⊥.
func (v *Vector) IsEmpty() bool { return len(v.objs) == 0 }

// Add appends a member. The member's width must match the vector's.
func (v *Vector) Add(o *Object) error {
	if o == nil {
		return ErrNilVector
	}
	if o.n != v.n {
		return ErrLengthMismatch
	}
	v.objs = append(v.objs, o)

	return nil
}

// At returns the member at index i.
func (v *Vector) At(i int) (*Object, error) {
	if i < 0 || i >= len(v.objs) {
		return nil, ErrIndexOutOfRange
	}

	return v.objs[i], nil
}

// Objects returns a copy of the member slice. The Objects themselves are
// shared; treat them as immutable.
func (v *Vector) Objects() []*Object {
	out := make([]*Object, len(v.objs))
	copy(out, v.objs)

	return out
}

// Clone returns a deep copy of the vector.
func (v *Vector) Clone() *Vector {
	out := &Vector{n: v.n, objs: make([]*Object, len(v.objs))}
	for i, o := range v.objs {
		out.objs[i] = o.Clone()
	}

	return out
}

// Multiply returns the product of v and other: the pairwise ternary
// conjunction of every member of v with every member of other,
// contradictory pairs dropped, the rest simplified. The product covers
// exactly the assignments covered by both operands. Commutative and
// associative up to semantic equality.
func (v *Vector) Multiply(other *Vector) (*Vector, error) {
	if other == nil {
		return nil, ErrNilVector
	}
	if v.n != other.n {
		return nil, ErrLengthMismatch
	}

	out := NewVector(v.n)
	for _, a := range v.objs {
		for _, b := range other.objs {
			if p, ok := a.Multiply(b); ok {
				out.objs = append(out.objs, p)
			}
		}
	}
	out.Simplify()

	return out, nil
}

// Union returns the disjunction of a and b: all members of both,
// simplified. Covers the assignments covered by either operand.
func Union(a, b *Vector) (*Vector, error) {
	if a == nil || b == nil {
		return nil, ErrNilVector
	}
	if a.n != b.n {
		return nil, ErrLengthMismatch
	}

	out := NewVector(a.n)
	out.objs = make([]*Object, 0, len(a.objs)+len(b.objs))
	out.objs = append(out.objs, a.objs...)
	out.objs = append(out.objs, b.objs...)
	out.Simplify()

	return out, nil
}

// ValueAt returns the consolidated value of position i across all
// members: True when every member pins it to True, False symmetrically,
// Any otherwise (including when any member leaves it don't-care).
// The empty vector has nothing to consolidate and yields ErrEmptyVector.
func (v *Vector) ValueAt(i int) (Ternary, error) {
	if i < 0 || i >= v.n {
		return Any, ErrIndexOutOfRange
	}
	if len(v.objs) == 0 {
		return Any, ErrEmptyVector
	}

	first := v.objs[0].at(uint(i))
	if first == Any {
		return Any, nil
	}
	for _, o := range v.objs[1:] {
		if o.at(uint(i)) != first {
			return Any, nil
		}
	}

	return first, nil
}

// Support returns the union of the members' defined masks: the set of
// positions at least one member constrains. The caller owns the result.
func (v *Vector) Support() *bitset.BitSet {
	out := bitset.New(uint(v.n))
	for _, o := range v.objs {
		out.InPlaceUnion(o.defined)
	}

	return out
}

// String renders the members in order, e.g. "{TFXX XXTF}".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, o := range v.objs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(o.String())
	}
	sb.WriteByte('}')

	return sb.String()
}
