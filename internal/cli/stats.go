package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/beurling/pkg/beurling"
	snapio "github.com/matzehuels/beurling/pkg/io"
)

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "stats <snapshot>",
		Short:   "Print statistics of a stored tree",
		Example: `  beurling stats tree.txt`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := snapio.ImportSnapshot(args[0])
			if err != nil {
				return err
			}

			var levels []string
			for _, n := range beurling.LevelSizes(t) {
				levels = append(levels, strconv.Itoa(n))
			}
			printKeyValue("nodes", strconv.Itoa(t.Len()))
			printKeyValue("leaves", strconv.Itoa(len(t.Leaves())))
			printKeyValue("height", strconv.Itoa(t.Height()))
			printKeyValue("levels", strings.Join(levels, " "))
			fmt.Fprintln(c.out, renderTriangle(beurling.Triangle(t)))
			return nil
		},
	}
}
