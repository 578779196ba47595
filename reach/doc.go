// Package reach provides the closed-form decision engine for pair-sum
// reachability: whether c can appear when, starting from (a, b), either
// component may repeatedly be replaced by a+b.
//
// What
//
//   - Reachable(a, b, c) answers membership without enumerating the
//     (potentially infinite) reachable set.
//   - Characterization: apart from the base cases c==a and c==b, a value
//     c ≥ a+b is reachable iff c = m·a + n·b for some coprime m, n ≥ 1.
//   - The coprime witness is located by a bounded search over n: the first
//     WitnessBound candidates from n=1 upward, plus, when c ≥ a·b, the
//     last WitnessBound candidates below maxN = (c−a)/b.
//   - ParseDecimal converts unsigned decimal strings of arbitrary length
//     into engine inputs.
//
// Why
//
//   - Decide reachability for c far beyond fixed-width integer range in
//     O(WitnessBound) arithmetic steps, independent of the magnitude of c.
//
// Approximation
//
//	The dual-window witness search is deliberately bounded (default 10,000
//	candidates per window). For adversarial (a, b, c) a witness could exist
//	only in the unexamined middle of the n-range, producing a false
//	negative. This trade-off is part of the documented contract; tune it
//	with WithWitnessBound rather than expecting an exhaustive scan.
//
// Numeric semantics
//
//	All arithmetic is exact math/big. Operands are strictly positive, so
//	truncating division coincides with floor division throughout. gcd is
//	the Euclidean algorithm on absolute values.
//
// Errors
//
//   - ErrNonPositive     if any of a, b, c is nil or ≤ 0.
//   - ErrOptionViolation if an invalid Option is supplied.
//   - ErrMalformedNumber from ParseDecimal for anything but unsigned digits.
package reach
