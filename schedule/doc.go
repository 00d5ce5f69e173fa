// Package schedule multiplies a collection of state vectors into a
// single product - the valid set of a knowledge base - choosing the
// pair order heuristically so intermediate vectors stay small.
//
// A naive left-to-right fold is correct but the unsimplified product of
// m vectors can hold up to the product of their sizes. Reduce bounds the
// blow-up in two phases:
//
//  1. Predator-prey: vectors at or under MaxPredatorSize are strong
//     constraints; each is folded into every larger vector (shrinking
//     them, never growing the predator) and then retired.
//  2. Jaccard clustering: remaining vectors merge pairwise, most-similar
//     variable support first, since overlapping support is what makes the
//     simplifier bite immediately; disjoint supports only multiply.
//
// Picking a truly optimal multiplication order is NP-hard; these
// heuristics target rule sets of tens to low hundreds of variables and
// rules. Any empty intermediate short-circuits the whole reduction to
// the contradiction.
package schedule
