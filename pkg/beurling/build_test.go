package beurling

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/beurling/pkg/errors"
	"github.com/matzehuels/beurling/pkg/factor"
	"github.com/matzehuels/beurling/pkg/table"
)

var (
	p = factor.Prime(0)
	q = factor.Prime(1)
	r = factor.Prime(2)
)

// replay rebuilds the table state at the end of a branch.
func replay(t *testing.T, values []factor.Factorization) *table.Table {
	t.Helper()
	tb := table.New()
	for _, v := range values[1:] {
		if v.Equal(factor.Prime(tb.Primes())) {
			tb.PushPrime()
			continue
		}
		found := false
		for _, c := range tb.Candidates() {
			if c.Value.Equal(v) {
				tb.PushComposite(c)
				found = true
				break
			}
		}
		require.True(t, found, "%s is not admissible after %v", v, values)
	}
	return tb
}

func pathValues(n *Node) []factor.Factorization {
	var out []factor.Factorization
	for _, m := range n.Path() {
		out = append(out, m.Value())
	}
	return out
}

func branches(tr *Tree) []string {
	var out []string
	for _, leaf := range tr.Leaves() {
		var parts []string
		for _, v := range pathValues(leaf) {
			parts = append(parts, v.DotString())
		}
		out = append(out, strings.Join(parts, " "))
	}
	return out
}

func TestExhaustiveLevelSizes(t *testing.T) {
	tr, err := Exhaustive(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 8, 17}, LevelSizes(tr))
	assert.True(t, tr.Root().Value().Equal(p))
}

func TestExhaustiveZeroHeight(t *testing.T) {
	tr, err := Exhaustive(0)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Len())
}

func TestExhaustiveBranching(t *testing.T) {
	const h = 4
	tr, err := Exhaustive(h)
	require.NoError(t, err)

	err = tr.DepthFirst(Visitor{
		Descend: func(n *Node) error {
			if n.Leaf() {
				return nil
			}
			tb := replay(t, pathValues(n))
			children := n.Children()
			cands := tb.Candidates()
			assert.Len(t, children, len(cands)+1, "children of %s", n.Value())
			for i, c := range cands {
				assert.True(t, children[i].Value().Equal(c.Value))
			}
			assert.True(t, children[len(children)-1].Value().Equal(factor.Prime(tb.Primes())),
				"last child is the next generator")
			return nil
		},
	})
	require.NoError(t, err)

	for _, leaf := range tr.Leaves() {
		assert.Equal(t, h, leaf.Depth())
	}
}

func TestTriangle(t *testing.T) {
	tr, err := Exhaustive(4)
	require.NoError(t, err)

	want := [][]int{
		{1},
		{1, 1},
		{1, 2, 1},
		{1, 3, 3, 1},
		{1, 5, 6, 4, 1},
	}
	assert.Equal(t, want, Triangle(tr))
}

func TestPrimePower(t *testing.T) {
	tr, err := PrimePower(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 9}, LevelSizes(tr))

	err = tr.DepthFirst(Visitor{
		Descend: func(n *Node) error {
			assert.True(t, n.Value().IsPrimePower(), "%s", n.Value())
			return nil
		},
	})
	require.NoError(t, err)

	q2 := factor.Power(1, 2)
	p3 := factor.Power(0, 3)
	underQ := tr.Root().Find(q.Equal)
	require.NotNil(t, underQ)
	underP2 := underQ.Find(factor.Power(0, 2).Equal)
	require.NotNil(t, underP2)

	var got []string
	for _, c := range underP2.Children() {
		got = append(got, c.Value().String())
	}
	assert.Equal(t, []string{q2.String(), p3.String(), r.String()}, got,
		"pq is folded away and the two routes to r are merged")
}

func TestRestricted(t *testing.T) {
	tr, err := Restricted(2, 2, 4)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"{(1,1)} {(1,2)} {(1,3)} {(2,1)}",
		"{(1,1)} {(1,2)} {(2,1)} {(1,3)}",
		"{(1,1)} {(2,1)} {(1,2)} {(1,1),(2,1)}",
	}, branches(tr))
	assert.Equal(t, []int{1, 2, 3, 3}, LevelSizes(tr))
}

func TestRestrictedUnlimitedMatchesExhaustive(t *testing.T) {
	restricted, err := Restricted(Unlimited, Unlimited, 4)
	require.NoError(t, err)
	exhaustive, err := Exhaustive(4)
	require.NoError(t, err)
	assert.Equal(t, branches(exhaustive), branches(restricted))
}

func TestRestrictedSingleGenerator(t *testing.T) {
	tr, err := Restricted(1, Unlimited, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"{(1,1)} {(1,2)} {(1,3)} {(1,4)}"}, branches(tr))
	assert.Equal(t, []int{1, 1, 1, 1}, LevelSizes(tr))
}

func TestRestrictedZeroCompositeBudget(t *testing.T) {
	tr, err := Restricted(Unlimited, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"{(1,1)} {(2,1)} {(3,1)} {(4,1)}"}, branches(tr))

	tr, err = Restricted(2, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, LevelSizes(tr))
	for _, leaf := range tr.Leaves() {
		for _, v := range pathValues(leaf) {
			assert.True(t, v.IsPrime(), "%s is a composite", v)
		}
	}
}

func TestRestrictedZeroPrimeBudget(t *testing.T) {
	tr, err := Restricted(0, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Len(), "the root alone")
}

func TestBuildValidation(t *testing.T) {
	_, err := Build(Options{Policy: "greedy", Height: 2})
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidPolicy))

	_, err = Build(Options{Height: -1})
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput))

	tr, err := Build(Options{Height: 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, LevelSizes(tr), "empty policy is exhaustive")
}

func TestParsePolicy(t *testing.T) {
	for _, name := range Policies() {
		got, err := ParsePolicy(name)
		require.NoError(t, err)
		assert.Equal(t, Policy(name), got)
	}
	_, err := ParsePolicy("random")
	assert.Error(t, err)
}

// Admitting pq straight after p leaves p²q as the only frontier product, and
// it needs two cells. With the generator budget spent after q, the builder
// has nothing left to offer.
func TestBuildReachesInconsistency(t *testing.T) {
	opts := Options{Policy: PolicyRestricted, Height: 3, MaxPrimes: 2, MaxComposites: Unlimited}
	b := newBuilder(opts)
	fresh := b.table.String()
	pq := table.Candidate{
		Value:   p.Mul(q),
		Entries: []table.Position{{Row: 1, Col: 0}},
	}

	var (
		tr       *Tree
		buildErr error
		prepared string
	)
	err := b.withComposite(pq, func() error {
		require.Empty(t, b.table.Candidates())
		prepared = b.table.String()
		tr, buildErr = b.run(opts)
		assert.Equal(t, prepared, b.table.String(), "deferred pops restore the prepared table")
		assert.Equal(t, 1, b.table.Primes())
		return nil
	})
	require.NoError(t, err)

	assert.Nil(t, tr)
	var inc *InconsistencyError
	require.ErrorAs(t, buildErr, &inc)
	assert.True(t, errs.Is(buildErr, errs.ErrCodeStructuralInconsistency))
	assert.Equal(t, 2, inc.Height)
	assert.Equal(t, 2, inc.Primes)
	assert.Equal(t, 1, inc.Composites)
	assert.Contains(t, inc.Table, "{(1,1),(2,1)}")

	assert.Equal(t, fresh, b.table.String())
	assert.Zero(t, b.composites)
	assert.Equal(t, 1, b.primes)
}

func TestInconsistencyError(t *testing.T) {
	var err error = &InconsistencyError{Height: 2, Primes: 3, Composites: 1, Table: "|{(1,0)}|\n"}
	assert.True(t, errs.Is(err, errs.ErrCodeStructuralInconsistency))
	assert.Contains(t, err.Error(), "remaining height 2")
}
