// Package sumreach answers a single question about the pair-sum process:
// starting from a pair of positive integers (a, b) and repeatedly replacing
// either component with the sum a+b, can the value c ever appear?
//
// Two independent engines implement the same predicate:
//
//	reach/  — closed-form decision via the coprime-representation theorem:
//	          every value reachable at or beyond a+b equals m·a + n·b for
//	          coprime m, n ≥ 1. Runs in a bounded number of steps no matter
//	          how large c is.
//	search/ — breadth-first enumeration of the generation tree with
//	          unordered-pair deduplication and an iteration cap; exact on
//	          bounded instances and used as ground truth for the first.
//
// A third package ties them together:
//
//	verify/ — drives both engines over a case corpus (built-in or YAML),
//	          asserts agreement, and returns an explicit pass/fail summary.
//
// All arithmetic is exact math/big: values far beyond 64-bit range are a
// core requirement, not an afterthought. Pure Go, no cgo.
//
// The cmd/sumreach binary exposes both engines on the command line:
//
//	sumreach query 3 5 11        → YES
//	sumreach verify              → colored per-case report + summary
package sumreach
