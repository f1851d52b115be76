// SPDX-License-Identifier: MIT
// Package fpgrowth: tunable options and error definitions for the miner.
//
// Options follow the functional-option convention: invalid values are
// recorded inside Options and surfaced as ErrOptionViolation when the
// mining entry point is invoked, so call sites stay clean.

package fpgrowth

import (
	"errors"
	"fmt"
)

// Sentinel errors for mining invocation.
var (
	// ErrSupportThreshold is returned when the support threshold is not a
	// positive integer. A threshold below 1 would mark every itemset
	// frequent and the result would be meaningless.
	ErrSupportThreshold = errors.New("fpgrowth: support threshold must be ≥ 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fpgrowth: invalid option supplied")
)

// DefaultWorkers is the worker-pool size used when WithWorkers is not
// supplied: 1, i.e. plain sequential mining.
const DefaultWorkers = 1

// Options holds parameters that customize mining execution.
//
// Workers – size of the worker pool applied to the top-level per-item
// loop. 1 mines strictly sequentially; n > 1 fans the loop out over n
// goroutines. The mined pattern map is identical either way.
type Options struct {
	Workers int

	// internal error recorded during option parsing
	err error
}

// Option configures mining behavior via functional arguments.
// If an Option is invalid (e.g. zero workers), it is recorded
// internally and surfaced as ErrOptionViolation on invocation.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
//   - sequential mining (Workers == DefaultWorkers)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Workers: DefaultWorkers,
		err:     nil,
	}
}

// WithWorkers sets the worker-pool size for the top-level item loop.
//
//	n == 1: sequential mining (the default)
//	n > 1:  fan out up to n goroutines
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
