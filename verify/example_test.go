package verify_test

import (
	"fmt"

	"github.com/katalvlaran/sumreach/verify"
)

// ExampleRun verifies the built-in corpus and inspects the summary
// accumulator.
func ExampleRun() {
	sum, err := verify.Run(verify.Corpus())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("ok:", sum.OK())
	fmt.Println("search skipped:", sum.Skipped)
	// Output:
	// ok: true
	// search skipped: 1
}

// ExampleRun_onCase streams per-case verdicts to a reporter, the way the
// CLI renders its colored output.
func ExampleRun_onCase() {
	cases := verify.Corpus()[:2]
	_, _ = verify.Run(cases, verify.WithOnCase(func(r verify.CaseResult) {
		fmt.Printf("%s %s\n", r.Verdict, r.Case.Name)
	}))
	// Output:
	// PASS 8 = 1·3 + 1·5
	// PASS 11 = 2·3 + 1·5
}
