// Package nodelink renders factorization trees as node-link diagrams.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(t, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// # DOT Format
//
// [ToDOT] numbers nodes in descent order, root first, and writes one label
// statement and one edge statement per node:
//
//	digraph G {
//		0 [label="{(1,1)}"];
//		1 [label="{(1,2)}"];
//		0->1;
//	}
//
// Labels use 1-based generator indices. With [Options.Styled] the output gets
// a top-to-bottom layout with rounded boxes and generators highlighted.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
