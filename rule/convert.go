package rule

import (
	"fmt"

	"github.com/katalvlaran/statealg/state"
)

// Converter turns rule ASTs into state vectors over a fixed variable
// ordering. It is stateless between calls and safe to reuse for every
// rule of a knowledge base.
type Converter struct {
	n     int
	index map[string]int
}

// NewConverter builds a converter for the given ordered variable list.
// Name uniqueness is the caller's concern; with duplicates the last
// position wins.
func NewConverter(variables []string) *Converter {
	index := make(map[string]int, len(variables))
	for i, name := range variables {
		index[name] = i
	}

	return &Converter{n: len(variables), index: index}
}

// Convert returns the satisfying set of the AST: the state vector
// covering exactly the assignments under which the expression is true.
// References to undeclared names wrap ErrUnknownVariable.
func (c *Converter) Convert(ast *Node) (*state.Vector, error) {
	vec, err := c.convert(ast, false)
	if err != nil {
		return nil, err
	}
	vec.Simplify()

	return vec, nil
}

// convert produces the satisfying set of n, or of ¬n when negated is
// set. Negation is pushed down structurally: literals flip, connectives
// follow De Morgan, so the complement of a subexpression costs one more
// traversal, never an expansion over assignments.
func (c *Converter) convert(n *Node, negated bool) (*state.Vector, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	switch n.Kind {
	case KindVar:
		i, ok := c.index[n.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, n.Name)
		}

		return c.literal(i, !negated)
	case KindNot:
		return c.convert(n.Child, !negated)
	case KindBin:
		return c.binary(n, negated)
	default:
		return nil, ErrBadNode
	}
}

// binary dispatches one connective under the negation flag.
func (c *Converter) binary(n *Node, negated bool) (*state.Vector, error) {
	switch n.Op {
	case OpAnd:
		// L && R;  ¬: ¬L || ¬R
		if negated {
			return c.union(n.Left, n.Right, true, true)
		}

		return c.product(n.Left, n.Right, false, false)
	case OpOr:
		// L || R;  ¬: ¬L && ¬R
		if negated {
			return c.product(n.Left, n.Right, true, true)
		}

		return c.union(n.Left, n.Right, false, false)
	case OpXor, OpEquiv:
		// Equivalence keeps the agreeing pairs, xor the disagreeing
		// ones; negation swaps the two.
		var first, second *state.Vector
		var err error
		if agree := (n.Op == OpEquiv) != negated; agree {
			first, err = c.product(n.Left, n.Right, false, false)
			if err == nil {
				second, err = c.product(n.Left, n.Right, true, true)
			}
		} else {
			first, err = c.product(n.Left, n.Right, false, true)
			if err == nil {
				second, err = c.product(n.Left, n.Right, true, false)
			}
		}
		if err != nil {
			return nil, err
		}

		return state.Union(first, second)
	case OpImplies:
		// L <= R is ¬L || R;  ¬: L && ¬R
		if negated {
			return c.product(n.Left, n.Right, false, true)
		}

		return c.union(n.Left, n.Right, true, false)
	case OpImpliedBy:
		// L => R is L || ¬R;  ¬: ¬L && R
		if negated {
			return c.product(n.Left, n.Right, true, false)
		}

		return c.union(n.Left, n.Right, false, true)
	default:
		return nil, ErrBadNode
	}
}

// literal returns the single-member vector pinning position i to val.
func (c *Converter) literal(i int, val bool) (*state.Vector, error) {
	obj := state.NewObject(c.n)
	t := state.False
	if val {
		t = state.True
	}
	if err := obj.Set(i, t); err != nil {
		return nil, err
	}
	vec := state.NewVector(c.n)
	if err := vec.Add(obj); err != nil {
		return nil, err
	}

	return vec, nil
}

// product converts both children under their negation flags and
// multiplies the results.
func (c *Converter) product(l, r *Node, lneg, rneg bool) (*state.Vector, error) {
	lv, err := c.convert(l, lneg)
	if err != nil {
		return nil, err
	}
	rv, err := c.convert(r, rneg)
	if err != nil {
		return nil, err
	}

	return lv.Multiply(rv)
}

// union converts both children under their negation flags and unions
// the results.
func (c *Converter) union(l, r *Node, lneg, rneg bool) (*state.Vector, error) {
	lv, err := c.convert(l, lneg)
	if err != nil {
		return nil, err
	}
	rv, err := c.convert(r, rneg)
	if err != nil {
		return nil, err
	}

	return state.Union(lv, rv)
}
