// Package schedule: configuration and sentinel errors.
package schedule

import (
	"errors"

	"github.com/hashicorp/go-hclog"
)

// Defaults for the reduction heuristics.
const (
	// DefaultMaxPredatorSize separates predators from prey: vectors at
	// or under this size are folded into larger vectors first.
	DefaultMaxPredatorSize = 4

	// DefaultMaxClusterSize caps the estimated size of an intermediate
	// product during the clustering phase.
	DefaultMaxClusterSize = 1024
)

// Sentinel errors for reduction input validation.
var (
	// ErrNoVectors indicates an empty input collection.
	ErrNoVectors = errors.New("schedule: no state vectors to reduce")

	// ErrBadOptions indicates an invalid options combination.
	ErrBadOptions = errors.New("schedule: invalid options")
)

// Options configures Reduce.
//
//	MaxPredatorSize - size at or under which a vector acts as a
//	                  predator during phase 1. Must be >= 1.
//	MaxClusterSize  - cap on the estimated intermediate product size
//	                  during phase 2; pairs over the cap are deferred in
//	                  favor of cheaper ones. Must be >= 1.
//	Logger          - destination for per-step progress records at Debug
//	                  level. nil silences them.
type Options struct {
	MaxPredatorSize int
	MaxClusterSize  int
	Logger          hclog.Logger
}

// DefaultOptions returns the documented defaults with no logger.
func DefaultOptions() Options {
	return Options{
		MaxPredatorSize: DefaultMaxPredatorSize,
		MaxClusterSize:  DefaultMaxClusterSize,
	}
}

// Validate checks that the sizes make sense. Returns ErrBadOptions
// otherwise.
func (o *Options) Validate() error {
	if o.MaxPredatorSize < 1 || o.MaxClusterSize < 1 {
		return ErrBadOptions
	}

	return nil
}

// logger returns the configured logger or a silent one.
func (o *Options) logger() hclog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return hclog.NewNullLogger()
}
