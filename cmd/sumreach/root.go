package main

import (
	"errors"

	"github.com/spf13/cobra"
)

// errBadInput marks user mistakes (missing or malformed arguments) so main
// can exit 2 instead of 1.
var errBadInput = errors.New("invalid input")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sumreach",
		Short: "Pair-sum reachability for arbitrary-precision integers",
		Long: `sumreach decides whether c can appear when, starting from a pair of
positive integers (a, b), either component is repeatedly replaced by a+b.

Values of any length are accepted; arithmetic is exact throughout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newQueryCmd(), newVerifyCmd())
	return root
}
