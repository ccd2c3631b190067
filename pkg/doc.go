// Package pkg provides the libraries behind the beurling command.
//
// # Overview
//
// A Beurling generalized integer system is generated by an increasing
// sequence of reals greater than one. Its integers are the products of those
// generators, and each system fixes one total order on them. These packages
// enumerate the orders that are consistent with multiplication, building one
// admissible integer at a time, and analyse the resulting trees.
//
// # Architecture
//
//	[factor] factorizations and their bookkeeping order
//	    ↓
//	[table] multiplication table, frontier and candidates
//	    ↓
//	[tree] generic arena tree and traversals
//	    ↓
//	[beurling] tree builders under each policy, random walks, statistics
//	    ↓
//	[diagonal], [order] formula extraction and feasibility checks
//	    ↓
//	[io], [render/nodelink] snapshots, JSON, DOT and SVG
//	    ↓
//	[pipeline] caching, hooks and logging around the engine
//
// # Quick Start
//
// Build the exhaustive tree and print its triangle:
//
//	t, err := beurling.Exhaustive(6)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for h, row := range beurling.Triangle(t) {
//	    fmt.Println(h, row)
//	}
//
// Store it and render it:
//
//	if err := io.ExportSnapshot("tree.txt", t); err != nil {
//	    log.Fatal(err)
//	}
//	svg, err := nodelink.RenderSVG(nodelink.ToDOT(t, nodelink.Options{Styled: true}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := os.WriteFile("tree.svg", svg, 0644); err != nil {
//	    log.Fatal(err)
//	}
//
// # Main Packages
//
// [factor] - Factorizations as sorted (generator, exponent) lists with the
// identity as zero value. Multiplication, serial and display forms, and the
// total bookkeeping order used to sort candidates.
//
// [table] - The multiplication table of the current prefix. Its frontier and
// grouped candidates decide which integers may come next.
//
// [beurling] - Exhaustive, prime-power and restricted builders, seeded random
// walks, and the triangle of generator counts per depth.
//
// [diagonal] - Closed binomial forms for the diagonals of the triangle.
//
// [order] - Linear feasibility of a proposed order through a simplex oracle.
//
// [cache], [observability], [errors], [buildinfo] - Infrastructure shared by
// the pipeline and the CLI.
//
// [factor]: https://pkg.go.dev/github.com/matzehuels/beurling/pkg/factor
// [table]: https://pkg.go.dev/github.com/matzehuels/beurling/pkg/table
// [tree]: https://pkg.go.dev/github.com/matzehuels/beurling/pkg/tree
// [beurling]: https://pkg.go.dev/github.com/matzehuels/beurling/pkg/beurling
// [diagonal]: https://pkg.go.dev/github.com/matzehuels/beurling/pkg/diagonal
// [order]: https://pkg.go.dev/github.com/matzehuels/beurling/pkg/order
// [io]: https://pkg.go.dev/github.com/matzehuels/beurling/pkg/io
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/beurling/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/beurling/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/beurling/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/beurling/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/beurling/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/beurling/pkg/buildinfo
package pkg
