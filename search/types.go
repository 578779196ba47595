package search

import (
	"context"
	"errors"
	"fmt"
	"math/big"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("search: invalid option supplied")

// DefaultMaxIterations is the dequeue budget applied when no
// WithMaxIterations option is given.
const DefaultMaxIterations = 1_000_000

// Option configures Reachable via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Reachable is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for the breadth-first walk.
type Options struct {
	// Ctx allows cancellation and deadlines for long walks.
	Ctx context.Context

	// MaxIterations caps how many states may be dequeued and expanded
	// before the walk gives up and answers false.
	MaxIterations int

	// OnExpand is called for every dequeued state with its coordinates
	// and the zero-based expansion count. The big.Int arguments are live
	// engine state and must not be mutated.
	OnExpand func(x, y *big.Int, iteration int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the documented defaults:
// background context, MaxIterations = DefaultMaxIterations, no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxIterations: DefaultMaxIterations,
		OnExpand:      func(*big.Int, *big.Int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxIterations overrides the dequeue budget.
//
//	n > 0:  expand at most n states
//	n == 0: explicit default (DefaultMaxIterations)
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.MaxIterations = DefaultMaxIterations
		default:
			o.MaxIterations = n
		}
	}
}

// WithOnExpand registers a callback observing every expanded state.
func WithOnExpand(fn func(x, y *big.Int, iteration int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
