// Package factor models the integers of a Beurling generalized number system
// as unique factorizations over abstract generators.
//
// # Overview
//
// A Beurling system is a free commutative monoid generated by an ordered set
// of generalized primes. Every integer in it is a finite multiset of
// generators, stored here as a [Factorization]: a sorted list of
// (generator index, exponent) [Pair] values. Generator 0 is the smallest
// generalized prime; the relative size of everything else is what the
// rest of the engine discovers.
//
// The zero value of [Factorization] is the identity. Its serial form is the
// sentinel "0,0":
//
//	number | DotString()    | String()
//	10       {(1,1),(3,1)}    0,1|2,1
//	24       {(1,3),(2,1)}    0,3|1,1
//
// # Arithmetic
//
// [Factorization.Mul] is the monoid operation. It is associative, commutative
// and has the identity as neutral element. Factorizations are immutable;
// every accessor returns a copy.
//
// # Ordering
//
// [Compare] is a bookkeeping order used to give candidate lists and sets a
// deterministic order. It is NOT the size order of the number system, which
// is unknown until discovered.
//
// # Sequences
//
// [Sequence] is a push/pop stack of factorizations with its own total order,
// used to group branches of a tree by the values they contain.
package factor
