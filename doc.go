// Package statealg is a propositional rule engine built on State
// Algebra: a boolean knowledge base over a fixed set of variables is
// held as a disjunction of ternary assignment vectors and manipulated
// by an algebra of multiplication (conjunction of valid states) and
// simplification (adjacency-based reduction to a compact canonical
// form).
//
// The module is organized under four subpackages:
//
//	state/    - ternary objects and state vectors: multiplication,
//	            union and the adjacency-reduction simplifier
//	rule/     - rule grammar, AST and the rule-to-vector converter
//	schedule/ - the compilation scheduler: predator-prey reduction
//	            followed by Jaccard-similarity clustering
//	engine/   - the facade: variables, rules, evidence, compile,
//	            predict and consolidated value queries
//
// A minimal session:
//
//	e, _ := engine.New([]string{"a", "b", "c"})
//	_ = e.AddRule("a = (b ^^ c)")
//	_ = e.Compile()
//	res, _ := e.Predict(engine.Bind("b", true))
//
// The engine is not a SAT solver: its heuristics target rule sets of
// tens to low hundreds of variables and rules, with no polynomial
// guarantees on adversarial inputs.
//
//	go get github.com/katalvlaran/statealg
package statealg
