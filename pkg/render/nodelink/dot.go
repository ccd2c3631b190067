package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/beurling/pkg/beurling"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Styled adds layout attributes and fills generator nodes.
	// When false, the output holds only labels and edges.
	Styled bool
}

// ToDOT converts a tree to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(t *beurling.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if opts.Styled {
		buf.WriteString("\trankdir=TB;\n")
		buf.WriteString("\tbgcolor=\"transparent\";\n")
		buf.WriteString("\tnode [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
		buf.WriteString("\tranksep=0.5;\n")
		buf.WriteString("\tnodesep=0.3;\n")
	}

	counter := 0
	ids := make(map[int]int, t.Len())
	_ = t.DepthFirst(beurling.Visitor{
		Descend: func(n *beurling.Node) error {
			id := counter
			counter++
			ids[n.ID()] = id
			fmt.Fprintf(&buf, "\t%d [%s];\n", id, fmtAttrs(n, opts.Styled))
			if parent := n.Parent(); parent != nil {
				fmt.Fprintf(&buf, "\t%d->%d;\n", ids[parent.ID()], id)
			}
			return nil
		},
	})

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(n *beurling.Node, styled bool) string {
	attrs := fmt.Sprintf("label=%q", n.Value().DotString())
	if styled && n.Value().IsPrime() {
		attrs += ", fillcolor=lightgrey"
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz point-based size with a viewBox so
// the SVG scales with its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
