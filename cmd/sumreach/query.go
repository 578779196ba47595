package main

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sumreach/reach"
	"github.com/katalvlaran/sumreach/search"
)

func newQueryCmd() *cobra.Command {
	var (
		bound         int
		useSearch     bool
		maxIterations int
	)
	cmd := &cobra.Command{
		Use:   "query A B C",
		Short: "Answer YES or NO: is C reachable from the pair (A, B)?",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums := make([]*big.Int, len(args))
			for i, arg := range args {
				v, err := reach.ParseDecimal(arg)
				if err != nil {
					return fmt.Errorf("%w: argument %d: %v", errBadInput, i+1, err)
				}
				if v.Sign() == 0 {
					return fmt.Errorf("%w: argument %d: must be positive", errBadInput, i+1)
				}
				nums[i] = v
			}

			var (
				ok  bool
				err error
			)
			if useSearch {
				ok, err = search.Reachable(nums[0], nums[1], nums[2],
					search.WithMaxIterations(maxIterations))
			} else {
				ok, err = reach.Reachable(nums[0], nums[1], nums[2],
					reach.WithWitnessBound(bound))
			}
			if err != nil {
				if errors.Is(err, reach.ErrNonPositive) {
					return fmt.Errorf("%w: %v", errBadInput, err)
				}
				return err
			}

			if ok {
				cmd.Println("YES")
			} else {
				cmd.Println("NO")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&bound, "bound", 0,
		"witness candidates per search window (0 = engine default)")
	cmd.Flags().BoolVar(&useSearch, "search", false,
		"answer with the exhaustive reference walk instead of the closed form")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 0,
		"reference-walk budget, only with --search (0 = engine default)")
	return cmd
}
