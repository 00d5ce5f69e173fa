package rule

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar encodes the precedence ladder by rule nesting, loosest
// first: = , => , <= , ^^ , || , && , ! , atom. Every binary level is a
// left-folded chain over the next tighter level.

var ruleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Operator", Pattern: `=>|<=|\^\^|\|\||&&|[=!()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var ruleParser = participle.MustBuild[eqExpr](
	participle.Lexer(ruleLexer),
	participle.Elide("Whitespace"),
)

type eqExpr struct {
	Lhs *geExpr   `parser:"@@"`
	Rhs []*geExpr `parser:"( '=' @@ )*"`
}

type geExpr struct {
	Lhs *leExpr   `parser:"@@"`
	Rhs []*leExpr `parser:"( '=>' @@ )*"`
}

type leExpr struct {
	Lhs *xorExpr   `parser:"@@"`
	Rhs []*xorExpr `parser:"( '<=' @@ )*"`
}

type xorExpr struct {
	Lhs *orExpr   `parser:"@@"`
	Rhs []*orExpr `parser:"( '^^' @@ )*"`
}

type orExpr struct {
	Lhs *andExpr   `parser:"@@"`
	Rhs []*andExpr `parser:"( '||' @@ )*"`
}

type andExpr struct {
	Lhs *unaryExpr   `parser:"@@"`
	Rhs []*unaryExpr `parser:"( '&&' @@ )*"`
}

type unaryExpr struct {
	Neg  *unaryExpr `parser:"  '!' @@"`
	Atom *atomExpr  `parser:"| @@"`
}

type atomExpr struct {
	Name string  `parser:"  @Ident"`
	Sub  *eqExpr `parser:"| '(' @@ ')'"`
}

// Parse parses a rule string into its AST. Malformed input wraps
// ErrParse.
func Parse(src string) (*Node, error) {
	expr, err := ruleParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return expr.node(), nil
}

// fold chains a parsed level into left-associated binary nodes.
func fold[E interface{ node() *Node }](op Op, lhs *Node, rhs []E) *Node {
	n := lhs
	for _, r := range rhs {
		n = Bin(op, n, r.node())
	}

	return n
}

func (e *eqExpr) node() *Node  { return fold(OpEquiv, e.Lhs.node(), e.Rhs) }
func (e *geExpr) node() *Node  { return fold(OpImpliedBy, e.Lhs.node(), e.Rhs) }
func (e *leExpr) node() *Node  { return fold(OpImplies, e.Lhs.node(), e.Rhs) }
func (e *xorExpr) node() *Node { return fold(OpXor, e.Lhs.node(), e.Rhs) }
func (e *orExpr) node() *Node  { return fold(OpOr, e.Lhs.node(), e.Rhs) }
func (e *andExpr) node() *Node { return fold(OpAnd, e.Lhs.node(), e.Rhs) }

func (e *unaryExpr) node() *Node {
	if e.Neg != nil {
		return Not(e.Neg.node())
	}

	return e.Atom.node()
}

func (e *atomExpr) node() *Node {
	if e.Sub != nil {
		return e.Sub.node()
	}

	return Var(e.Name)
}
