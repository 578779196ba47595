// Package reach decides pair-sum reachability in closed form: c is checked
// against a short ladder of exact number-theoretic conditions, ending in a
// bounded search for a coprime witness (m, n) with c = m·a + n·b.
package reach

import (
	"fmt"
	"math/big"
)

var one = big.NewInt(1)

// Reachable reports whether c can be produced from the pair (a, b) by
// repeatedly replacing either component with a+b.
// Returns ErrNonPositive if any input is nil or ≤ 0, or ErrOptionViolation
// for bad options. Subject to the bounded witness search described in the
// package doc: a false result for very large composite ranges may be a
// window miss rather than a proof.
func Reachable(a, b, c *big.Int, opts ...Option) (bool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return false, o.err
	}
	if !positive(a) || !positive(b) || !positive(c) {
		return false, fmt.Errorf("%w: got (%v, %v, %v)", ErrNonPositive, a, b, c)
	}

	// The generators themselves count as reached.
	if c.Cmp(a) == 0 || c.Cmp(b) == 0 {
		return true, nil
	}
	// Both operations strictly grow the pair; nothing below both
	// generators can ever be produced.
	if c.Cmp(a) < 0 && c.Cmp(b) < 0 {
		return false, nil
	}
	// Every non-base reachable value is m·a + n·b, hence a multiple of
	// gcd(a, b).
	g := gcd(a, b)
	if new(big.Int).Mod(c, g).Sign() != 0 {
		return false, nil
	}
	// With m, n ≥ 1 no combination lands strictly between the generators.
	lo, hi := a, b
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	if c.Cmp(lo) > 0 && c.Cmp(hi) < 0 {
		return false, nil
	}
	// Smallest non-base reachable value is a+b (m = n = 1).
	sum := new(big.Int).Add(a, b)
	if c.Cmp(sum) < 0 {
		return false, nil
	}

	return hasCoprimeWitness(a, b, c, o.WitnessBound), nil
}

// hasCoprimeWitness searches for coprime m, n ≥ 1 with c = m·a + n·b.
// It scans n over two windows of at most bound candidates each: upward
// from n = 1, and, when c ≥ a·b, downward from maxN = (c−a)/b.
// The unexamined middle of the n-range can hide a witness; callers accept
// that as the documented approximation.
func hasCoprimeWitness(a, b, c *big.Int, bound int) bool {
	// Largest n with m = (c − n·b)/a still able to reach 1.
	maxN := new(big.Int).Sub(c, a)
	maxN.Quo(maxN, b)

	n := new(big.Int).Set(one)
	for i := 0; i < bound && n.Cmp(maxN) <= 0; i++ {
		if witnessAt(a, b, c, n) {
			return true
		}
		n.Add(n, one)
	}

	// Second window only pays off once the n-range outgrows the first:
	// c ≥ a·b guarantees maxN well past the upward scan.
	if c.Cmp(new(big.Int).Mul(a, b)) < 0 {
		return false
	}
	floor := big.NewInt(int64(bound)) // upward window already covered n ≤ bound
	n.Set(maxN)
	for i := 0; i < bound && n.Cmp(floor) > 0; i++ {
		if witnessAt(a, b, c, n) {
			return true
		}
		n.Sub(n, one)
	}
	return false
}

// witnessAt reports whether the fixed coefficient n completes a coprime
// witness: (c − n·b) must be a positive exact multiple m of a with
// gcd(m, n) = 1.
func witnessAt(a, b, c, n *big.Int) bool {
	t := new(big.Int).Mul(n, b)
	t.Sub(c, t)
	if t.Sign() <= 0 {
		return false
	}
	m, r := new(big.Int).QuoRem(t, a, new(big.Int))
	if r.Sign() != 0 || m.Sign() <= 0 {
		return false
	}
	return gcd(m, n).Cmp(one) == 0
}

// gcd computes the greatest common divisor by the Euclidean algorithm on
// absolute values. Inputs are never mutated.
func gcd(x, y *big.Int) *big.Int {
	u := new(big.Int).Abs(x)
	v := new(big.Int).Abs(y)
	for v.Sign() != 0 {
		u, v = v, u.Mod(u, v)
	}
	return u
}

// positive reports whether v is a usable engine input: non-nil and > 0.
func positive(v *big.Int) bool {
	return v != nil && v.Sign() > 0
}
