// Package beurling builds trees of admissible orderings for Beurling
// generalized integers.
//
// # Overview
//
// Every branch of a tree built here is one legal order in which the integers
// of a Beurling system can be discovered, starting from the first generator.
// A node's children are the integers that may come next: the candidates of
// the multiplication table (see package table) and the next, not yet
// introduced, generator. Builds descend depth-first and share one mutable
// table, undoing every push on the way back up.
//
// # Policies
//
//   - [PolicyExhaustive]: every candidate and the next generator, to the
//     requested height
//   - [PolicyPrimePower]: only prime powers become nodes; other composites
//     are admitted silently on the way to the next prime-power node
//   - [PolicyRestricted]: as exhaustive, with budgets on the number of
//     generators and composites along any branch; a budget of 0 admits none
//     and [Unlimited] lifts it
//
// [Walk] samples a single branch uniformly at each step and records per-depth
// statistics instead of building the whole tree.
//
// # Statistics
//
// [Triangle] counts, for each depth, how many nodes see a given number of
// generators. For the exhaustive tree the first rows are
//
//	1
//	1 1
//	1 2 1
//	1 3 3 1
//	1 5 6 4 1
//
// # Failure
//
// When a restricted build or a capped walk runs out of generators while the
// composite budget still allows growth and the table offers no candidate, the
// build stops with an [*InconsistencyError] carrying a dump of the table.
// No partial tree is returned.
package beurling
