package verify

import (
	"math/big"

	"github.com/katalvlaran/sumreach/reach"
)

// Corpus returns the built-in scenario set: the documented concrete
// instances, one family per unreachability rule, and an
// arbitrary-precision target that only the decision engine can reach
// within any feasible walk budget.
//
// Every non-skipped case resolves comfortably within
// DefaultSearchIterations; unreachable targets burn the whole budget by
// construction (a small surviving coordinate keeps one chain alive), which
// is the expected cost of a negative.
func Corpus() []Case {
	return []Case{
		pinned("8 = 1·3 + 1·5", 3, 5, 8, true),
		pinned("11 = 2·3 + 1·5", 3, 5, 11, true),
		pinned("13 = 1·3 + 2·5", 3, 5, 13, true),
		pinned("20 from (4,6) only as non-coprime (2,2)", 4, 6, 20, false),
		pinned("22 = 4·4 + 1·6", 4, 6, 22, true),

		// base cases: generators count as reached
		pinned("generator a itself", 5, 7, 5, true),
		pinned("generator b itself", 5, 7, 7, true),
		pinned("degenerate equal pair", 9, 9, 9, true),

		// below both generators: operations only grow values
		pinned("target below both generators", 4, 9, 2, false),
		pinned("target below both, touching neither", 6, 10, 5, false),

		// gcd necessity
		pinned("odd target, even gcd", 4, 6, 7, false),
		pinned("gcd 3 cannot make 10", 6, 9, 10, false),

		// gap between the generators
		pinned("3 inside the (2,5) gap", 2, 5, 3, false),
		pinned("7 inside the (3,10) gap", 3, 10, 7, false),

		// above both generators but below a+b
		pinned("8 below 4+6", 4, 6, 8, false),
		pinned("7 below 3+5", 3, 5, 7, false),

		// deeper positive walks
		pinned("1000 from (2,3)", 2, 3, 1000, true),
		pinned("6 from the equal pair (2,2)", 2, 2, 6, true),

		// arbitrary precision: gcd(1,2)=1 makes every large value
		// reachable; far beyond any walk budget, decision engine only
		{
			Name:       "29-digit target from (1,2)",
			A:          big.NewInt(1),
			B:          big.NewInt(2),
			C:          mustDecimal("12345678901234567890123456789"),
			Expect:     true,
			HasExpect:  true,
			SkipSearch: true,
		},
	}
}

// pinned builds a small-integer case with an expected verdict.
func pinned(name string, a, b, c int64, want bool) Case {
	return Case{
		Name:      name,
		A:         big.NewInt(a),
		B:         big.NewInt(b),
		C:         big.NewInt(c),
		Expect:    want,
		HasExpect: true,
	}
}

// mustDecimal parses a corpus constant; the built-in corpus only carries
// valid literals.
func mustDecimal(s string) *big.Int {
	v, err := reach.ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return v
}
