// Package table implements the multiplication table that drives order
// discovery.
//
// # Layout
//
// Row 0 of the table is the sequence of integers discovered so far, in
// increasing size: the identity, then generator 0, then whatever was chosen
// next. Row x holds the products row0[x]·row0[x+y] for y = 0, 1, ... that are
// already known to be among the discovered integers. Each cell stores the
// row-0 index of its value, so the table is a jagged upper triangle:
//
//	row 0: 1   p   p²  q   p³ ...
//	row 1: p²  p³  pq  ...
//	row 2: p⁴  ...
//
// # Frontier and candidates
//
// The next integer must be the smallest product not yet placed. Translation
// invariance means a cell can only be filled once the cell above it is
// filled, which gives the [Table.Frontier]. Grouping frontier products by
// value and keeping those that occupy at least [factor.Factorization.RequiredCount]
// frontier cells yields [Table.Candidates]; the next generator is always an
// additional option.
//
// # Push and pop
//
// The table is mutated in place while a builder descends a tree and restored
// on the way back up. [Table.PushComposite] must be undone by
// [Table.PopComposite] with the same candidate, and [Table.PushPrime] by
// [Table.PopPrime], in strict LIFO order.
package table
