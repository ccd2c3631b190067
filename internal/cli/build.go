package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/beurling/pkg/beurling"
	errs "github.com/matzehuels/beurling/pkg/errors"
	snapio "github.com/matzehuels/beurling/pkg/io"
	"github.com/matzehuels/beurling/pkg/pipeline"
)

// buildFlags holds the command-line flags for the build command.
type buildFlags struct {
	policy        string
	height        int
	maxPrimes     int
	maxComposites int
	output        string // snapshot file
	triangle      bool
	noCache       bool
	refresh       bool
}

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	var f buildFlags

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the tree of admissible orderings",
		Long: `Build the tree of admissible orderings up to a height.

Policies:
  exhaustive    every admissible integer and the next generator
  prime-power   only prime powers; other products are admitted silently
  restricted    limit the number of generators and composites`,
		Example: `  beurling build --height 6 --triangle
  beurling build --policy restricted --max-primes 3 --max-composites 3 --height 6 -o tree.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config.Build
			opts := pipeline.BuildOptions{
				Policy:        pick(cmd, "policy", f.policy, cfg.Policy),
				Height:        pick(cmd, "height", f.height, cfg.Height),
				MaxPrimes:     pick(cmd, "max-primes", f.maxPrimes, cfg.MaxPrimes),
				MaxComposites: pick(cmd, "max-composites", f.maxComposites, cfg.MaxComposites),
				Refresh:       f.refresh,
			}
			return c.runBuild(cmd, opts, f)
		},
	}

	cmd.Flags().StringVar(&f.policy, "policy", "", "build policy: "+strings.Join(beurling.Policies(), ", "))
	cmd.Flags().IntVar(&f.height, "height", pipeline.DefaultHeight, "depth of the deepest nodes")
	cmd.Flags().IntVar(&f.maxPrimes, "max-primes", beurling.Unlimited, "generator budget for restricted builds, root included (-1 = unlimited)")
	cmd.Flags().IntVar(&f.maxComposites, "max-composites", beurling.Unlimited, "composite budget for restricted builds (-1 = unlimited)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write the tree as a snapshot file")
	cmd.Flags().BoolVar(&f.triangle, "triangle", false, "print the triangle of generator counts")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the snapshot cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "rebuild even when a cached tree exists")

	return cmd
}

func (c *CLI) runBuild(cmd *cobra.Command, opts pipeline.BuildOptions, f buildFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(f.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	sp := newSpinner(ctx, os.Stderr, "building")
	sp.Start()
	res, err := runner.Build(ctx, opts)
	sp.Stop()
	if err != nil {
		var inc *beurling.InconsistencyError
		if errors.As(err, &inc) {
			logger.Debug("multiplication table at failure\n" + inc.Table)
		}
		return err
	}
	prog.done("Build finished")

	policy := opts.Policy
	if policy == "" {
		policy = string(pipeline.DefaultPolicy)
	}
	if policy != string(beurling.PolicyRestricted) && (opts.MaxPrimes >= 0 || opts.MaxComposites >= 0) {
		printWarning("Budgets only apply to the restricted policy and were ignored")
	}
	printSuccess("Built %s tree of height %d", policy, opts.Height)
	printStats(res.Stats.Nodes, res.Stats.Leaves, res.CacheHit)

	if f.triangle {
		fmt.Fprintln(c.out, renderTriangle(beurling.Triangle(res.Tree)))
	}

	if f.output != "" {
		if err := errs.ValidatePath(f.output); err != nil {
			return err
		}
		if err := snapio.ExportSnapshot(f.output, res.Tree); err != nil {
			return err
		}
		printFile(f.output)
		printNextStep("Render it", "beurling render "+f.output+" --format svg -o tree.svg")
	}
	return nil
}
