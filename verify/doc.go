// Package verify cross-checks the two reachability engines: the closed-form
// decision in package reach and the breadth-first reference in package
// search.
//
// What
//
//   - Run drives both engines over a slice of Cases and returns a Summary,
//     an explicit accumulator threaded through the scenario loop, never
//     module-level counters.
//   - A case passes when the decision engine matches the expected verdict
//     (if one is pinned) and, unless SkipSearch is set, the reference walk
//     agrees with it.
//   - Corpus returns the built-in case set: the documented concrete
//     scenarios, one family per unreachability rule, and an
//     arbitrary-precision target that only the decision engine can touch.
//   - LoadCorpus decodes additional cases from YAML, with integers written
//     as unsigned decimal strings of any length.
//
// Why
//
//	The decision engine's bounded witness search is a documented
//	approximation; the reference walk is exact on bounded instances.
//	Agreement on a corpus is the practical evidence that the closed form
//	is implemented right.
//
// Reporting
//
//	Run is silent. Attach WithOnCase to stream per-case results to a
//	reporter (the sumreach CLI renders them as colored PASS/FAIL/SKIP
//	lines); inspect Summary.Failures for the aggregate.
package verify
