package reach_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/katalvlaran/sumreach/reach"
)

func bi(v int64) *big.Int { return big.NewInt(v) }

// TestReachable_Errors verifies that invalid inputs and options are rejected.
func TestReachable_Errors(t *testing.T) {
	// nil operand
	if _, err := reach.Reachable(nil, bi(2), bi(3)); !errors.Is(err, reach.ErrNonPositive) {
		t.Errorf("nil a: want ErrNonPositive, got %v", err)
	}
	// zero and negative operands
	for _, tc := range [][3]int64{{0, 2, 3}, {2, 0, 3}, {2, 3, 0}, {-1, 2, 3}, {2, -5, 3}, {2, 3, -7}} {
		if _, err := reach.Reachable(bi(tc[0]), bi(tc[1]), bi(tc[2])); !errors.Is(err, reach.ErrNonPositive) {
			t.Errorf("inputs %v: want ErrNonPositive, got %v", tc, err)
		}
	}
	// negative witness bound is a violation
	if _, err := reach.Reachable(bi(3), bi(5), bi(8), reach.WithWitnessBound(-1)); !errors.Is(err, reach.ErrOptionViolation) {
		t.Errorf("negative bound: want ErrOptionViolation, got %v", err)
	}
}

// TestReachable_BaseCases covers c equal to a generator and c below both.
func TestReachable_BaseCases(t *testing.T) {
	cases := []struct {
		a, b, c int64
		want    bool
	}{
		{5, 7, 5, true},  // c == a
		{5, 7, 7, true},  // c == b
		{9, 9, 9, true},  // degenerate equal pair
		{4, 9, 2, false}, // below both generators
		{4, 9, 3, false},
	}
	for _, tc := range cases {
		got, err := reach.Reachable(bi(tc.a), bi(tc.b), bi(tc.c))
		if err != nil {
			t.Fatalf("(%d,%d,%d): unexpected error %v", tc.a, tc.b, tc.c, err)
		}
		if got != tc.want {
			t.Errorf("(%d,%d,%d) = %v; want %v", tc.a, tc.b, tc.c, got, tc.want)
		}
	}
}

// TestReachable_Divisibility checks the gcd necessity: c not a multiple of
// gcd(a,b) is never reachable.
func TestReachable_Divisibility(t *testing.T) {
	for _, tc := range [][3]int64{{4, 6, 7}, {4, 6, 13}, {6, 9, 10}, {10, 15, 26}} {
		if got, err := reach.Reachable(bi(tc[0]), bi(tc[1]), bi(tc[2])); err != nil || got {
			t.Errorf("(%d,%d,%d) = %v, %v; want false, nil", tc[0], tc[1], tc[2], got, err)
		}
	}
}

// TestReachable_Gap checks that nothing lands strictly between the generators.
func TestReachable_Gap(t *testing.T) {
	for _, tc := range [][3]int64{{2, 5, 3}, {2, 5, 4}, {3, 10, 7}, {10, 3, 7}} {
		if got, err := reach.Reachable(bi(tc[0]), bi(tc[1]), bi(tc[2])); err != nil || got {
			t.Errorf("(%d,%d,%d) = %v, %v; want false, nil", tc[0], tc[1], tc[2], got, err)
		}
	}
}

// TestReachable_BelowFirstSum checks that values above both generators but
// below a+b are unreachable.
func TestReachable_BelowFirstSum(t *testing.T) {
	// 8 > max(4,6) but 8 < 4+6, gcd(4,6)=2 divides 8. Still unreachable.
	if got, _ := reach.Reachable(bi(4), bi(6), bi(8)); got {
		t.Error("(4,6,8): want false")
	}
	if got, _ := reach.Reachable(bi(3), bi(5), bi(7)); got {
		t.Error("(3,5,7): want false")
	}
}

// TestReachable_Witness exercises the coprime-witness search on the
// documented concrete scenarios.
func TestReachable_Witness(t *testing.T) {
	cases := []struct {
		a, b, c int64
		want    bool
	}{
		{3, 5, 8, true},   // 8 = 1·3 + 1·5
		{3, 5, 11, true},  // 11 = 2·3 + 1·5
		{4, 6, 20, false}, // only m = n = 2, not coprime
		{2, 3, 9, true},   // 9 = 3·2 + 1·3
		{2, 2, 6, true},   // 6 = 1·2 + 2·2
		{4, 6, 22, true},  // 22 = 4·4 + 1·6
	}
	for _, tc := range cases {
		got, err := reach.Reachable(bi(tc.a), bi(tc.b), bi(tc.c))
		if err != nil {
			t.Fatalf("(%d,%d,%d): unexpected error %v", tc.a, tc.b, tc.c, err)
		}
		if got != tc.want {
			t.Errorf("(%d,%d,%d) = %v; want %v", tc.a, tc.b, tc.c, got, tc.want)
		}
	}
}

// TestReachable_BigTarget validates arbitrary-precision handling far beyond
// 64-bit range.
func TestReachable_BigTarget(t *testing.T) {
	c, err := reach.ParseDecimal("12345678901234567890123456789")
	if err != nil {
		t.Fatal(err)
	}
	// gcd(1,2)=1: every value ≥ 3 is reachable from (1,2).
	got, err := reach.Reachable(bi(1), bi(2), c)
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Error("(1,2,big) = false; want true")
	}

	// Huge even target from (2,4): 10^30 = m·2 + 1·4 with odd m, coprime.
	c = new(big.Int).Exp(bi(10), bi(30), nil)
	if got, _ = reach.Reachable(bi(2), bi(4), c); !got {
		t.Error("(2,4,10^30) = false; want true")
	}
}

// TestReachable_WitnessBound demonstrates the documented window miss: the
// only witness for (3,5,13) is n=2, invisible with a one-candidate window
// (13 < 3·5, so no downward window opens).
func TestReachable_WitnessBound(t *testing.T) {
	got, err := reach.Reachable(bi(3), bi(5), bi(13))
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Fatal("(3,5,13) with default bound: want true")
	}
	got, err = reach.Reachable(bi(3), bi(5), bi(13), reach.WithWitnessBound(1))
	if err != nil {
		t.Fatal(err)
	}
	if got {
		t.Error("(3,5,13) with bound 1: want the documented false negative")
	}
	// Explicit zero restores the default.
	if got, _ = reach.Reachable(bi(3), bi(5), bi(13), reach.WithWitnessBound(0)); !got {
		t.Error("(3,5,13) with bound 0 (default): want true")
	}
}

// TestReachable_DownwardWindow hits the second window: c ≥ a·b with the
// witness sitting at n = maxN (m = 1) while the upward window misses.
func TestReachable_DownwardWindow(t *testing.T) {
	// a=101, b=1, c=10^30: 10^4 ≡ 1 (mod 101), so c ≡ 100 (mod 101) and
	// the smallest upward n with 101 | (c−n) is 100, beyond a bound of 5.
	// Downward, n = maxN = c−101 yields m = 1 immediately.
	c := new(big.Int).Exp(bi(10), bi(30), nil)
	got, err := reach.Reachable(bi(101), bi(1), c, reach.WithWitnessBound(5))
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Error("(101,1,10^30) with bound 5: want true via downward window")
	}
}

// TestParseDecimal covers accepted and rejected encodings.
func TestParseDecimal(t *testing.T) {
	v, err := reach.ParseDecimal("12345678901234567890123456789")
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "12345678901234567890123456789" {
		t.Errorf("round trip mismatch: %s", v)
	}
	for _, bad := range []string{"", "-3", "+3", "3.5", "1e9", " 7", "0x1f", "12a"} {
		if _, err = reach.ParseDecimal(bad); !errors.Is(err, reach.ErrMalformedNumber) {
			t.Errorf("ParseDecimal(%q): want ErrMalformedNumber, got %v", bad, err)
		}
	}
}
