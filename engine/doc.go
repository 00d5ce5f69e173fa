// Package engine is the user-facing facade of the statealg rule
// engine.
//
// An Engine owns a fixed, ordered list of boolean variables and
// accumulates rules (boolean expressions over those variables) and
// evidence (pinned variable values). Compile multiplies everything into
// the valid set - the state vector of assignments permitted by the
// whole knowledge base - after which Predict answers queries under new
// evidence and VariableValue reads consolidated values.
//
// A contradiction is a first-class outcome, not an error: compiling an
// unsatisfiable knowledge base latches an empty valid set, and Predict
// under contradicting evidence returns an Inference whose Contradiction
// method reports true.
//
// The engine is single-threaded: no operation blocks or spawns
// goroutines, and concurrent mutation requires external
// synchronization. Read-only calls may run in parallel on snapshots.
package engine
