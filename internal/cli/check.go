package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/beurling/pkg/errors"
	"github.com/matzehuels/beurling/pkg/factor"
	"github.com/matzehuels/beurling/pkg/pipeline"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		sequence, candidate, others string
		epsilon                     float64
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Test whether a value can come next in an ordering",
		Long: `Decide whether real logarithms can be assigned to the generators so that
the given sequence is strictly increasing, followed by the candidate, with
every one of the other values still larger than the candidate.

Values use the serial form "gen,exp|gen,exp" with 0-based generators;
"0,0" is the identity.`,
		Example: `  beurling check --sequence "0,0; 0,1; 1,1" --candidate 0,2 --others "0,1|1,1"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := parseSerials(sequence)
			if err != nil {
				return err
			}
			cand, err := factor.Parse(candidate)
			if err != nil {
				return err
			}
			rest, err := parseSerials(others)
			if err != nil {
				return err
			}
			if len(current) == 0 {
				return errs.New(errs.ErrCodeInvalidInput, "--sequence is required")
			}

			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.Check(cmd.Context(), pipeline.CheckOptions{
				Current:   current,
				Candidate: cand,
				Others:    rest,
				Epsilon:   epsilon,
			})
			if err != nil {
				return err
			}
			printVerdict(res.Feasible, "%s after %s", cand.DotString(), factor.NewSequence(current...))
			if res.Feasible {
				fmt.Fprintln(c.out, "feasible")
			} else {
				fmt.Fprintln(c.out, "infeasible")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sequence, "sequence", "", "current sequence, identity first")
	cmd.Flags().StringVar(&candidate, "candidate", "", "value to place next")
	cmd.Flags().StringVar(&others, "others", "", "values that must stay larger than the candidate")
	cmd.Flags().Float64Var(&epsilon, "epsilon", 0, "minimum gap between consecutive logarithms (0 = default)")
	_ = cmd.MarkFlagRequired("candidate")

	return cmd
}
