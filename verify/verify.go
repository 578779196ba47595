// Package verify runs both reachability engines over a case corpus and
// accumulates an explicit pass/fail summary.
package verify

import (
	"fmt"

	"github.com/katalvlaran/sumreach/reach"
	"github.com/katalvlaran/sumreach/search"
)

// Run executes every case against the decision engine and, unless skipped,
// the reference walk, asserting expectations and engine agreement.
// The returned Summary is the complete accumulator; an error is returned
// only for invalid options, never for failing cases.
func Run(cases []Case, opts ...Option) (Summary, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Summary{}, o.err
	}

	var sum Summary
	for _, cs := range cases {
		res := o.runCase(cs)
		switch res.Verdict {
		case Fail:
			sum.Failed++
			sum.Failures = append(sum.Failures, Failure{Name: cs.Name, Reason: res.Reason})
		default:
			sum.Passed++
		}
		if cs.SkipSearch {
			sum.Skipped++
		}
		o.OnCase(res)
	}
	return sum, nil
}

// runCase resolves a single scenario into a CaseResult.
func (o *Options) runCase(cs Case) CaseResult {
	res := CaseResult{Case: cs}

	got, err := reach.Reachable(cs.A, cs.B, cs.C, reach.WithWitnessBound(o.WitnessBound))
	if err != nil {
		res.Verdict = Fail
		res.Reason = fmt.Sprintf("decision engine: %v", err)
		res.Err = err
		return res
	}
	res.Decision = got

	if cs.HasExpect && got != cs.Expect {
		res.Verdict = Fail
		res.Reason = fmt.Sprintf("decision engine answered %v, expected %v", got, cs.Expect)
		return res
	}
	if cs.SkipSearch {
		res.Verdict = Skip
		return res
	}

	ref, err := search.Reachable(cs.A, cs.B, cs.C,
		search.WithContext(o.Ctx),
		search.WithMaxIterations(o.SearchIterations),
	)
	if err != nil {
		res.Verdict = Fail
		res.Reason = fmt.Sprintf("reference search: %v", err)
		res.Err = err
		return res
	}
	res.Search = ref
	res.Searched = true

	if ref != got {
		res.Verdict = Fail
		res.Reason = fmt.Sprintf("engines disagree: decision %v, search %v", got, ref)
		return res
	}
	res.Verdict = Pass
	return res
}
