package reach

import (
	"fmt"
	"math/big"
)

// ParseDecimal converts an unsigned decimal string of arbitrary length into
// an engine input. No sign, no fractional part, no whitespace, no base
// prefixes: exactly the wire form the CLI and corpus files carry.
// Returns ErrMalformedNumber for anything else.
func ParseDecimal(s string) (*big.Int, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrMalformedNumber)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, fmt.Errorf("%w: %q", ErrMalformedNumber, s)
		}
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedNumber, s)
	}
	return v, nil
}
