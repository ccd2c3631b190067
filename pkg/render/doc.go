// Package render provides visualization of factorization trees.
//
// The [nodelink] subpackage renders trees as node-link diagrams through
// Graphviz DOT:
//
//	dot := nodelink.ToDOT(t, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [nodelink]: github.com/matzehuels/beurling/pkg/render/nodelink
package render
