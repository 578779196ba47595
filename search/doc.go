// Package search provides the reference engine for pair-sum reachability:
// an exhaustive breadth-first enumeration of the generation tree rooted at
// the pair (a, b), used as ground truth against the closed-form engine in
// package reach.
//
// What
//
//   - Reachable(a, b, c) explores states {x, y} in generation order: each
//     state has exactly two children, (x+y, y) and (x, x+y).
//   - States are deduplicated as unordered pairs via their canonical
//     "min|max" key; a child with both coordinates beyond c is discarded
//     because the operations only ever grow values.
//   - The walk stops at MaxIterations dequeues (default 1,000,000) and
//     then answers false: a budget verdict, deliberately NOT
//     distinguishable from an exhaustive negative (see below).
//   - Hooks: WithOnExpand observes every expanded state; WithContext
//     aborts a long walk with the context's error.
//
// Why
//
//   - On bounded instances the frontier drains completely, making a false
//     answer a sound proof of unreachability, exactly what is needed to
//     cross-check the bounded witness search of package reach.
//
// Caveats
//
//	Positivity of the inputs is the caller's responsibility: unlike
//	package reach, nothing is validated here. With non-positive values the
//	growth pruning assumptions fail and the walk may only terminate
//	through the iteration cap. Budget exhaustion and exhaustive negative
//	both surface as plain false; callers that care can count expansions
//	through WithOnExpand, but the boolean contract stays unchanged.
//
// Complexity
//
//   - Time:   O(min(states with a coordinate ≤ c, MaxIterations))
//   - Memory: O(frontier + visited set), one key string per seen state
package search
