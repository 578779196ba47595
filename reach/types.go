package reach

import (
	"errors"
	"fmt"
)

// Sentinel errors for the decision engine.
var (
	// ErrNonPositive is returned when any of a, b, c is nil or ≤ 0.
	ErrNonPositive = errors.New("reach: a, b and c must be strictly positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")

	// ErrMalformedNumber is returned by ParseDecimal for input that is not
	// a plain unsigned decimal integer.
	ErrMalformedNumber = errors.New("reach: not an unsigned decimal integer")
)

// DefaultWitnessBound is the number of candidate coefficients examined per
// search window when no WithWitnessBound option is given.
const DefaultWitnessBound = 10_000

// Option configures Reachable via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Reachable is invoked.
type Option func(*Options)

// Options holds the tunable parameters of the decision engine.
type Options struct {
	// WitnessBound caps how many candidate n values each of the two
	// witness-search windows examines. See the package doc for the
	// false-negative trade-off this implies.
	WitnessBound int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the documented defaults:
// WitnessBound = DefaultWitnessBound, error channel clear.
func DefaultOptions() Options {
	return Options{WitnessBound: DefaultWitnessBound}
}

// WithWitnessBound overrides the per-window candidate cap.
//
//	k > 0:  examine at most k candidates per window
//	k == 0: explicit default (DefaultWitnessBound)
//	k < 0:  invalid option → ErrOptionViolation
func WithWitnessBound(k int) Option {
	return func(o *Options) {
		switch {
		case k < 0:
			o.err = fmt.Errorf("%w: WitnessBound cannot be negative (%d)", ErrOptionViolation, k)
		case k == 0:
			o.WitnessBound = DefaultWitnessBound
		default:
			o.WitnessBound = k
		}
	}
}
