package verify

import (
	"context"
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors for the harness.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("verify: invalid option supplied")

	// ErrMalformedCase is returned by LoadCorpus for corpus entries that
	// do not decode into a usable Case.
	ErrMalformedCase = errors.New("verify: malformed corpus case")
)

// DefaultSearchIterations is the reference-walk budget the harness applies
// per case. Deliberately far below the engine default: corpus-scale
// instances resolve well within it, and unreachable targets burn the whole
// budget on every run.
const DefaultSearchIterations = 50_000

// Case is one scenario for both engines: decide whether C is reachable
// from the pair (A, B).
type Case struct {
	// Name labels the scenario in reports and failures.
	Name string

	// A, B are the generators, C the query target.
	A, B, C *big.Int

	// Expect pins the decision engine's verdict when HasExpect is set;
	// without it the case only asserts engine agreement.
	Expect    bool
	HasExpect bool

	// SkipSearch excludes the reference walk, for targets far beyond any
	// feasible iteration budget.
	SkipSearch bool
}

// Verdict is the per-case outcome kind.
type Verdict int

const (
	// Pass: expected verdict matched and (unless skipped) engines agreed.
	Pass Verdict = iota
	// Fail: a mismatch or an engine error.
	Fail
	// Skip: decision verdict accepted, reference walk not run.
	Skip
)

// String renders the verdict the way reports print it.
func (v Verdict) String() string {
	switch v {
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	case Skip:
		return "SKIP"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// CaseResult carries everything a reporter needs about one finished case.
type CaseResult struct {
	Case    Case
	Verdict Verdict

	// Decision is the closed-form verdict; valid unless Err is set.
	Decision bool

	// Search is the reference verdict; valid only when Searched.
	Search   bool
	Searched bool

	// Reason explains a Fail in one line.
	Reason string

	// Err is the engine error behind a Fail, if any.
	Err error
}

// Failure is the compact record kept in the Summary.
type Failure struct {
	Name   string
	Reason string
}

// Summary is the accumulator Run threads through the scenario loop and
// returns by value.
type Summary struct {
	Passed  int
	Failed  int
	Skipped int // cases whose reference walk was skipped (still counted as Passed or Failed)

	Failures []Failure
}

// OK reports whether the run had no failures.
func (s Summary) OK() bool { return s.Failed == 0 }

// Option configures Run via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds harness parameters and the reporting callback.
type Options struct {
	// Ctx is passed to the reference walk of every case.
	Ctx context.Context

	// SearchIterations is the per-case reference-walk budget.
	SearchIterations int

	// WitnessBound is forwarded to the decision engine.
	WitnessBound int

	// OnCase is called once per finished case, in corpus order.
	OnCase func(CaseResult)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the documented defaults:
// background context, SearchIterations = DefaultSearchIterations,
// engine-default witness bound, no-op reporter.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		SearchIterations: DefaultSearchIterations,
		OnCase:           func(CaseResult) {},
	}
}

// WithContext sets a custom context for the reference walks.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSearchIterations overrides the per-case reference-walk budget.
//
//	n > 0:  budget of n dequeues
//	n == 0: explicit default (DefaultSearchIterations)
//	n < 0:  invalid option → ErrOptionViolation
func WithSearchIterations(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: SearchIterations cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.SearchIterations = DefaultSearchIterations
		default:
			o.SearchIterations = n
		}
	}
}

// WithWitnessBound forwards a custom witness bound to the decision engine.
//
//	k > 0:  per-window candidate cap of k
//	k == 0: explicit engine default
//	k < 0:  invalid option → ErrOptionViolation
func WithWitnessBound(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: WitnessBound cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.WitnessBound = k
	}
}

// WithOnCase registers the per-case reporting callback.
func WithOnCase(fn func(CaseResult)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCase = fn
		}
	}
}
