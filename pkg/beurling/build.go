package beurling

import (
	"fmt"

	"github.com/matzehuels/beurling/pkg/factor"
	"github.com/matzehuels/beurling/pkg/table"
	"github.com/matzehuels/beurling/pkg/tree"
)

// Build grows a tree according to opts.
func Build(opts Options) (*Tree, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Policy == "" {
		opts.Policy = PolicyExhaustive
	}

	return newBuilder(opts).run(opts)
}

// Exhaustive builds every admissible branch to height h.
func Exhaustive(h int) (*Tree, error) {
	return Build(Options{Policy: PolicyExhaustive, Height: h})
}

// PrimePower builds the tree of prime-power admission orders to height h.
func PrimePower(h int) (*Tree, error) {
	return Build(Options{Policy: PolicyPrimePower, Height: h})
}

// Restricted builds to height h with at most maxPrimes generators and
// maxComposites composites on any branch.
func Restricted(maxPrimes, maxComposites, h int) (*Tree, error) {
	return Build(Options{
		Policy:        PolicyRestricted,
		Height:        h,
		MaxPrimes:     maxPrimes,
		MaxComposites: maxComposites,
	})
}

type builder struct {
	table *table.Table
	tree  *Tree

	maxPrimes     int
	maxComposites int
	primes        int
	composites    int
}

func newBuilder(opts Options) *builder {
	return &builder{
		table:         table.New(),
		tree:          tree.New(factor.Prime(0)),
		maxPrimes:     opts.MaxPrimes,
		maxComposites: opts.MaxComposites,
		primes:        1,
	}
}

// run grows the tree from the current table state. No tree is returned on
// failure.
func (b *builder) run(opts Options) (*Tree, error) {
	var err error
	switch opts.Policy {
	case PolicyPrimePower:
		err = b.primePower(opts.Height, b.tree.Root())
	case PolicyRestricted:
		err = b.grow(opts.Height, b.tree.Root())
	default:
		b.maxPrimes, b.maxComposites = Unlimited, Unlimited
		err = b.grow(opts.Height, b.tree.Root())
	}
	if err != nil {
		return nil, fmt.Errorf("build %s tree of height %d: %w", opts.Policy, opts.Height, err)
	}
	return b.tree, nil
}

func (b *builder) primesLeft() bool {
	return b.maxPrimes < 0 || b.primes < b.maxPrimes
}

func (b *builder) compositesLeft() bool {
	return b.maxComposites < 0 || b.composites < b.maxComposites
}

// withComposite admits c for the duration of fn.
func (b *builder) withComposite(c table.Candidate, fn func() error) error {
	b.table.PushComposite(c)
	b.composites++
	defer func() {
		b.composites--
		b.table.PopComposite(c)
	}()
	return fn()
}

// withPrime admits the next generator for the duration of fn.
func (b *builder) withPrime(fn func() error) error {
	b.table.PushPrime()
	b.primes++
	defer func() {
		b.primes--
		b.table.PopPrime()
	}()
	return fn()
}

func (b *builder) inconsistency(h int) error {
	return &InconsistencyError{
		Height:     h,
		Primes:     b.primes,
		Composites: b.composites,
		Table:      b.table.String(),
	}
}

// grow expands n by every candidate and the next generator, within budgets.
func (b *builder) grow(h int, n *Node) error {
	if h == 0 {
		return nil
	}
	primesLeft := b.primesLeft()

	if b.compositesLeft() {
		candidates := b.table.Candidates()
		if len(candidates) == 0 && !primesLeft {
			return b.inconsistency(h)
		}
		for _, c := range candidates {
			child := b.tree.Add(n, c.Value)
			if h == 1 {
				continue
			}
			if err := b.withComposite(c, func() error { return b.grow(h-1, child) }); err != nil {
				return err
			}
		}
	}

	if primesLeft {
		child := b.tree.Add(n, factor.Prime(b.table.Primes()))
		if h > 1 {
			return b.withPrime(func() error { return b.grow(h-1, child) })
		}
	}
	return nil
}

// primePower expands n with prime-power children only. Other composites are
// admitted without a node and the expansion continues at the same height.
func (b *builder) primePower(h int, n *Node) error {
	if h == 0 {
		return nil
	}
	for _, c := range b.table.Candidates() {
		if !c.Value.IsPrimePower() {
			if err := b.withComposite(c, func() error { return b.primePower(h, n) }); err != nil {
				return err
			}
			continue
		}
		child := b.child(n, c.Value)
		if h > 1 {
			if err := b.withComposite(c, func() error { return b.primePower(h-1, child) }); err != nil {
				return err
			}
		}
	}

	child := b.child(n, factor.Prime(b.table.Primes()))
	if h > 1 {
		return b.withPrime(func() error { return b.primePower(h-1, child) })
	}
	return nil
}

// child returns the child of n holding v, adding it if needed.
func (b *builder) child(n *Node, v factor.Factorization) *Node {
	if c := n.Find(v.Equal); c != nil {
		return c
	}
	return b.tree.Add(n, v)
}
