package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sumreach/verify"
)

func newVerifyCmd() *cobra.Command {
	var (
		corpusPath    string
		bound         int
		maxIterations int
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check both engines over the case corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cases := verify.Corpus()
			if corpusPath != "" {
				extra, err := loadCorpusFile(corpusPath)
				if err != nil {
					return err
				}
				cases = append(cases, extra...)
			}

			var (
				pass = color.New(color.FgGreen).SprintFunc()
				fail = color.New(color.FgRed).SprintFunc()
				skip = color.New(color.FgYellow).SprintFunc()
				out  = cmd.OutOrStdout()
			)
			sum, err := verify.Run(cases,
				verify.WithWitnessBound(bound),
				verify.WithSearchIterations(maxIterations),
				verify.WithOnCase(func(r verify.CaseResult) {
					switch r.Verdict {
					case verify.Fail:
						fmt.Fprintf(out, "%s %s — %s\n", fail(r.Verdict), r.Case.Name, r.Reason)
					case verify.Skip:
						fmt.Fprintf(out, "%s %s\n", skip(r.Verdict), r.Case.Name)
					default:
						fmt.Fprintf(out, "%s %s\n", pass(r.Verdict), r.Case.Name)
					}
				}),
			)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\n%d passed, %d failed, %d search-skipped\n",
				sum.Passed, sum.Failed, sum.Skipped)
			if !sum.OK() {
				return fmt.Errorf("%d of %d cases failed", sum.Failed, len(cases))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&corpusPath, "corpus", "",
		"YAML file with additional cases (see verify.LoadCorpus)")
	cmd.Flags().IntVar(&bound, "bound", 0,
		"witness candidates per search window (0 = engine default)")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 0,
		"per-case reference-walk budget (0 = harness default)")
	return cmd
}

func loadCorpusFile(path string) ([]verify.Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()
	return verify.LoadCorpus(f)
}
