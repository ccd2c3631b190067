package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	snapio "github.com/matzehuels/beurling/pkg/io"
	"github.com/matzehuels/beurling/pkg/pipeline"
)

// walkCommand creates the walk command.
func (c *CLI) walkCommand() *cobra.Command {
	var (
		height, runs, maxPrimes int
		seed                    uint64
		output                  string
	)

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Sample random branches and average their statistics",
		Long: `Sample random branches of the exhaustive tree. At each depth one of the
admissible integers or the next generator is chosen uniformly. Prints, per
depth, the average number of generators, prime factors with and without
multiplicity, and available choices.`,
		Example: `  beurling walk --height 80 --runs 1000 --seed 42
  beurling walk --height 40 --max-primes 5 -o path.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config.Walk
			opts := pipeline.WalkOptions{
				Height:    pick(cmd, "height", height, cfg.Height),
				Runs:      pick(cmd, "runs", runs, cfg.Runs),
				MaxPrimes: pick(cmd, "max-primes", maxPrimes, cfg.MaxPrimes),
				Seed:      pick(cmd, "seed", seed, cfg.Seed),
			}

			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.Walk(cmd.Context(), opts)
			if err != nil {
				return err
			}
			printSuccess("Sampled %d paths of height %d", len(res.Paths), len(res.Depths)-1)
			fmt.Fprintln(c.out, renderDepthStats(res.Depths))

			if output != "" {
				last := res.Paths[len(res.Paths)-1]
				if err := snapio.ExportSnapshot(output, last.Tree()); err != nil {
					return err
				}
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&height, "height", pipeline.DefaultWalkHeight, "length of each path")
	cmd.Flags().IntVar(&runs, "runs", pipeline.DefaultWalkRuns, "number of paths to sample")
	cmd.Flags().IntVar(&maxPrimes, "max-primes", 0, "cap on generators along a path (0 = none)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for reproducible walks (0 = random)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the last sampled path as a snapshot")

	return cmd
}
