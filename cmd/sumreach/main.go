// Command sumreach decides pair-sum reachability from the command line.
//
//	sumreach query 3 5 11                 → YES
//	sumreach query 4 6 20                 → NO
//	sumreach verify --corpus extra.yaml   → colored per-case report
//
// Exit status: 0 on success, 2 for missing or malformed input, 1 for
// anything else (including verification failures).
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sumreach:", err)
		if errors.Is(err, errBadInput) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
