// Package rule: sentinel errors.
package rule

import "errors"

var (
	// ErrParse indicates a malformed rule string.
	ErrParse = errors.New("rule: malformed rule")

	// ErrUnknownVariable indicates a name outside the declared variable
	// list.
	ErrUnknownVariable = errors.New("rule: unknown variable")

	// ErrNilNode indicates a nil AST node handed to the converter.
	ErrNilNode = errors.New("rule: nil AST node")

	// ErrBadNode indicates an AST node with an unrecognized kind or
	// connective.
	ErrBadNode = errors.New("rule: invalid AST node")
)
