// Package rule parses boolean rule strings and converts them into
// state vectors.
//
// A rule is a boolean expression over declared variable names built
// from !, &&, ||, ^^ (xor), <=, => and = (equivalence), with
// parentheses for grouping and insignificant whitespace. Parse yields a
// small tagged AST; Converter turns an AST into the state.Vector
// covering exactly the assignments that satisfy the expression.
//
// The two arrows order their operands like boolean inequalities with
// false < true: `p <= q` holds when p is at most q (p implies q), and
// `p => q` holds when p is at least q (q implies p).
//
// Complements are never computed by enumerating assignments: the
// converter walks the AST under a negation flag, flipping literals and
// applying De Morgan at each connective.
package rule
