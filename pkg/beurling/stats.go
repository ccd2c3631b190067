package beurling

import (
	"github.com/matzehuels/beurling/pkg/factor"
	"github.com/matzehuels/beurling/pkg/tree"
)

// Triangle counts nodes by depth and by the number of generators on their
// branch. Row d has one entry per generator count 1..k seen at depth d;
// entry i is the number of depth-d nodes whose branch holds i+1 generators.
func Triangle(t *Tree) [][]int {
	var (
		rows   [][]int
		depth  = -1
		primes = 0
	)
	enter := func(n *Node) {
		depth++
		if n.Value().IsPrime() {
			primes++
		}
		for len(rows) <= depth {
			rows = append(rows, nil)
		}
		for len(rows[depth]) < primes {
			rows[depth] = append(rows[depth], 0)
		}
		rows[depth][primes-1]++
	}
	leave := func(n *Node) {
		depth--
		if n.Value().IsPrime() {
			primes--
		}
	}

	_ = t.DepthFirst(Visitor{
		Descend: func(n *Node) error { enter(n); return nil },
		Ascend:  func(n *Node) error { leave(n); return nil },
	})
	return rows
}

// Visitor is a depth-first hook set over factorization trees.
type Visitor = tree.Visitor[factor.Factorization]

// LevelSizes returns the number of nodes at each depth of t.
func LevelSizes(t *Tree) []int { return t.LevelSizes() }
