package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/beurling/pkg/beurling"
	errs "github.com/matzehuels/beurling/pkg/errors"
	snapio "github.com/matzehuels/beurling/pkg/io"
	"github.com/matzehuels/beurling/pkg/render/nodelink"
)

const (
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatJSON = "json"
)

var renderFormats = []string{formatDOT, formatSVG, formatJSON}

// renderCommand creates the render command for exporting stored trees.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		format, output string
		plain          bool
	)

	cmd := &cobra.Command{
		Use:   "render <snapshot>",
		Short: "Export a stored tree as DOT, SVG or JSON",
		Example: `  beurling render tree.txt --format svg -o tree.svg
  beurling render tree.txt --plain | dot -Tpng > tree.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errs.ValidateFormat(format, renderFormats); err != nil {
				return err
			}
			t, err := snapio.ImportSnapshot(args[0])
			if err != nil {
				return err
			}
			data, err := renderTree(t, format, !plain)
			if err != nil {
				return err
			}
			if output == "" {
				_, err := c.out.Write(data)
				return err
			}
			if err := errs.ValidatePath(output); err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Rendered %d nodes as %s", t.Len(), format)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot, svg, json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&plain, "plain", false, "emit only labels and edges, without styling")

	return cmd
}

// renderTree encodes t in the given format.
func renderTree(t *beurling.Tree, format string, styled bool) ([]byte, error) {
	switch format {
	case formatSVG:
		return nodelink.RenderSVG(nodelink.ToDOT(t, nodelink.Options{Styled: styled}))
	case formatJSON:
		var buf bytes.Buffer
		if err := snapio.WriteJSON(&buf, t); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return []byte(nodelink.ToDOT(t, nodelink.Options{Styled: styled})), nil
	}
}

