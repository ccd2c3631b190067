package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/beurling/pkg/errors"
	"github.com/matzehuels/beurling/pkg/pipeline"
)

// diagonalCommand creates the diagonal command.
func (c *CLI) diagonalCommand() *cobra.Command {
	var (
		values           int
		noCache, refresh bool
	)

	cmd := &cobra.Command{
		Use:   "diagonal <d>",
		Short: "Extract the binomial formula of a triangle diagonal",
		Long: `Extract the closed form of diagonal d of the triangle, the counts of
orderings with d-1 composites, as a sum of binomial coefficients in the
number of generators n.`,
		Example: `  beurling diagonal 3
  beurling diagonal 4 --values 12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := strconv.Atoi(args[0])
			if err != nil {
				return errs.New(errs.ErrCodeInvalidInput, "diagonal must be an integer, got %q", args[0])
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.Diagonal(cmd.Context(), pipeline.DiagonalOptions{D: d, Refresh: refresh})
			if err != nil {
				return err
			}
			f := res.Formula

			printSuccess("Diagonal %d has %d terms", d, len(f.Terms))
			fmt.Fprint(c.out, f.String())

			var pairs []string
			for _, p := range f.Pairs() {
				pairs = append(pairs, fmt.Sprintf("(%d,%d)", p.Offset, p.K))
			}
			printKeyValue("pairs", strings.Join(pairs, " "))

			var vals []string
			for _, v := range f.Values(values) {
				vals = append(vals, strconv.FormatInt(v, 10))
			}
			printKeyValue("values", strings.Join(vals, ", "))
			return nil
		},
	}

	cmd.Flags().IntVar(&values, "values", pipeline.DefaultDiagonalValues, "number of values to print, from n = 1")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the snapshot cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "rebuild even when a cached tree exists")

	return cmd
}
