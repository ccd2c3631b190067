// Package order checks whether a proposed admission order can be realised by
// actual generator sizes.
//
// Writing x_g for the logarithm of generator g, an integer f has size
// Σ e_g·x_g. Admitting hi after lo asserts hi > lo, a linear inequality over
// the x_g. The multiplication table only enforces the binary-product part of
// the order; a sequence can pass that test and still be unrealisable. The
// [Checker] turns a sequence, a candidate and its pending siblings into
// constraints
//
//	Σ (hi_g - lo_g)·x_g ≥ ε
//
// and asks an [Oracle] whether they have a common solution.
//
// # Oracles
//
// [SimplexOracle] solves the problem with gonum's simplex implementation.
// Any other solver can be plugged in by implementing [Oracle]. An oracle that
// can neither prove nor refute feasibility must say so with
// [StatusUnknown]; the checker turns that into an [*IndeterminateError] rather
// than guessing.
package order
