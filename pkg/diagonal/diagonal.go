// Package diagonal derives closed forms for the diagonals of the
// prime-counting triangle.
//
// Diagonal d of the triangle counts branches with exactly d-1 composites as
// the number of generators n grows. The tree built with both budgets set to
// d-1 and height 2d-2 contains every distinct sequence of d-1 composites.
// Grouping its branches by that sequence, the branches sharing a sequence
// split off a common node prefix, and each group contributes one binomial
// term C(n+offset, k) to the diagonal.
package diagonal

import (
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/matzehuels/beurling/pkg/beurling"
	errs "github.com/matzehuels/beurling/pkg/errors"
	"github.com/matzehuels/beurling/pkg/factor"
)

// Term is one binomial summand C(n+Offset, K).
type Term struct {
	Composites factor.Sequence // Composite subsequence shared by the group
	Offset     int
	K          int
}

// Pair is the (offset, k) shape of a term.
type Pair struct {
	Offset int
	K      int
}

// Formula is the decomposition of diagonal D.
type Formula struct {
	D     int
	Terms []Term // Sorted by composite subsequence
}

// Extract builds the restricted tree for diagonal d and decomposes it.
func Extract(d int) (*Formula, error) {
	if err := errs.ValidateDiagonal(d); err != nil {
		return nil, err
	}
	t, err := beurling.Restricted(d-1, d-1, 2*d-2)
	if err != nil {
		return nil, fmt.Errorf("diagonal %d: %w", d, err)
	}
	return FromTree(d, t)
}

// FromTree decomposes a tree built with budgets d-1 and height 2d-2.
func FromTree(d int, t *beurling.Tree) (*Formula, error) {
	if err := errs.ValidateDiagonal(d); err != nil {
		return nil, err
	}
	seqs, err := compositeSequences(t)
	if err != nil {
		return nil, err
	}

	full := 2*d - 2
	f := &Formula{D: d, Terms: make([]Term, 0, len(seqs))}
	for _, s := range seqs {
		common, err := commonPrefix(t, s)
		if err != nil {
			return nil, err
		}
		composites := 0
		for _, id := range common {
			if !t.Node(id).Value().IsPrime() {
				composites++
			}
		}
		term := Term{Composites: s}
		if len(common) == full {
			term.K = composites
		} else {
			term.Offset = (d - 1) - len(common)
			term.K = (d - 1) - composites
		}
		f.Terms = append(f.Terms, term)
	}
	return f, nil
}

// compositeSequences returns the distinct composite subsequences over all
// branches, sorted.
func compositeSequences(t *beurling.Tree) ([]factor.Sequence, error) {
	var (
		cur  factor.Sequence
		seen = make(map[string]factor.Sequence)
	)
	push := func(n *beurling.Node) {
		if !n.Value().IsPrime() {
			cur.Push(n.Value())
		}
	}
	pop := func(n *beurling.Node) {
		if !n.Value().IsPrime() {
			cur.Pop()
		}
	}
	err := t.DepthFirst(beurling.Visitor{
		Descend: func(n *beurling.Node) error { push(n); return nil },
		Ascend:  func(n *beurling.Node) error { pop(n); return nil },
		Leaf: func(n *beurling.Node) error {
			push(n)
			if _, ok := seen[cur.Key()]; !ok {
				seen[cur.Key()] = cur.Clone()
			}
			pop(n)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]factor.Sequence, 0, len(seen))
	for _, s := range seen {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b factor.Sequence) int { return a.Compare(b) })
	return out, nil
}

// commonPrefix returns the node handles shared by every branch whose
// composite subsequence equals s.
func commonPrefix(t *beurling.Tree, s factor.Sequence) ([]int, error) {
	var (
		path   []int
		cur    factor.Sequence
		common []int
		found  bool
	)
	enter := func(n *beurling.Node) {
		path = append(path, n.ID())
		if !n.Value().IsPrime() {
			cur.Push(n.Value())
		}
	}
	leave := func(n *beurling.Node) {
		path = path[:len(path)-1]
		if !n.Value().IsPrime() {
			cur.Pop()
		}
	}
	err := t.DepthFirst(beurling.Visitor{
		Descend: func(n *beurling.Node) error { enter(n); return nil },
		Ascend:  func(n *beurling.Node) error { leave(n); return nil },
		Leaf: func(n *beurling.Node) error {
			enter(n)
			if cur.Equal(s) {
				if !found {
					common = slices.Clone(path)
					found = true
				} else {
					i := 0
					for i < len(common) && i < len(path) && common[i] == path[i] {
						i++
					}
					common = common[:i]
				}
			}
			leave(n)
			return nil
		},
	})
	return common, err
}

// Pairs returns the (offset, k) multiset sorted by offset, then k.
func (f *Formula) Pairs() []Pair {
	out := make([]Pair, len(f.Terms))
	for i, t := range f.Terms {
		out[i] = Pair{Offset: t.Offset, K: t.K}
	}
	slices.SortFunc(out, func(a, b Pair) int {
		if a.Offset != b.Offset {
			return a.Offset - b.Offset
		}
		return a.K - b.K
	})
	return out
}

// Eval returns Σ C(n+Offset, K), the diagonal entry for n generators.
func (f *Formula) Eval(n int) int64 {
	var sum int64
	for _, t := range f.Terms {
		sum += binomial(n+t.Offset, t.K)
	}
	return sum
}

// Values returns Eval(1..count).
func (f *Formula) Values(count int) []int64 {
	out := make([]int64, count)
	for i := range out {
		out[i] = f.Eval(i + 1)
	}
	return out
}

// String lists one term per line as "<sequence>: (n + offset) choose k".
func (f *Formula) String() string {
	var b strings.Builder
	for _, t := range f.Terms {
		fmt.Fprintf(&b, "%s: (n + %d) choose %d\n", t.Composites, t.Offset, t.K)
	}
	return b.String()
}

func binomial(n, k int) int64 {
	if k < 0 || n < 0 || n < k {
		return 0
	}
	return int64(combin.Binomial(n, k))
}
