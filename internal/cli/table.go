package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/beurling/pkg/pipeline"
)

var (
	styleTableHeader = lipgloss.NewStyle().Foreground(colorCyan).Bold(true).Padding(0, 1)
	styleTableCell   = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1).Align(lipgloss.Right)
	styleTableIndex  = lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1).Align(lipgloss.Right)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleTableHeader
			case col == 0:
				return styleTableIndex
			default:
				return styleTableCell
			}
		})
}

// renderTriangle lays out triangle rows by depth, one column per generator
// count. Entry (h, k) counts depth-h nodes with k+1 generators.
func renderTriangle(tri [][]int) string {
	if len(tri) == 0 {
		return ""
	}
	width := len(tri[len(tri)-1])
	headers := []string{"depth"}
	for k := 1; k <= width; k++ {
		headers = append(headers, strconv.Itoa(k))
	}
	t := newTable(headers...)
	for h, row := range tri {
		cells := make([]string, width+1)
		cells[0] = strconv.Itoa(h)
		for k, v := range row {
			cells[k+1] = strconv.Itoa(v)
		}
		t.Row(cells...)
	}
	return t.String()
}

// renderDepthStats lays out averaged walk statistics, one row per depth.
func renderDepthStats(depths []pipeline.DepthStats) string {
	t := newTable("depth", "primes", "Ω", "ω", "choices")
	for _, d := range depths {
		t.Row(
			strconv.Itoa(d.Depth),
			fmt.Sprintf("%.2f", d.Primes),
			fmt.Sprintf("%.2f", d.Omega),
			fmt.Sprintf("%.2f", d.Distinct),
			fmt.Sprintf("%.2f", d.Choices),
		)
	}
	return t.String()
}
