package beurling

import (
	"encoding/binary"
	"fmt"

	"lukechampine.com/frand"

	errs "github.com/matzehuels/beurling/pkg/errors"
	"github.com/matzehuels/beurling/pkg/factor"
	"github.com/matzehuels/beurling/pkg/table"
	"github.com/matzehuels/beurling/pkg/tree"
)

// WalkOptions configures [Walk].
type WalkOptions struct {
	Height    int
	MaxPrimes int        // Cap on generators along the path, root included; ≤ 0 means none
	Rand      *frand.RNG // Defaults to a fresh frand.New()
}

// Step records one depth of a sampled path.
//
// The root is not chosen, so Steps[0].Choices holds the root's own branching:
// 2 for an uncapped walk (p² and the second generator), 1 with a prime cap of 1.
type Step struct {
	Value    factor.Factorization // Integer admitted at this depth
	Primes   int                  // Generators introduced so far, this step included
	Omega    int                  // Prime factors of Value with multiplicity
	Distinct int                  // Distinct generators dividing Value
	Choices  int                  // Options that were available at this depth
}


// Path is a single sampled branch. Steps[0] is the root.
type Path struct {
	Steps []Step
}

// Len returns the number of steps, root included.
func (p *Path) Len() int { return len(p.Steps) }

// Values returns the admitted integers in order.
func (p *Path) Values() []factor.Factorization {
	out := make([]factor.Factorization, len(p.Steps))
	for i, s := range p.Steps {
		out[i] = s.Value
	}
	return out
}

// Tree returns the path as a single-branch tree.
func (p *Path) Tree() *Tree {
	t := tree.New(p.Steps[0].Value)
	n := t.Root()
	for _, s := range p.Steps[1:] {
		n = t.Add(n, s.Value)
	}
	return t
}

// NewSeededRNG returns a deterministic generator for reproducible walks.
func NewSeededRNG(seed uint64) *frand.RNG {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return frand.NewCustom(key[:], 1024, 12)
}

// Walk samples one branch of the exhaustive tree, choosing uniformly at each
// depth among the candidates and the next generator.
func Walk(opts WalkOptions) (*Path, error) {
	if err := errs.ValidateHeight(opts.Height); err != nil {
		return nil, err
	}
	if err := errs.ValidateBudget("prime", opts.MaxPrimes); err != nil {
		return nil, err
	}
	rng := opts.Rand
	if rng == nil {
		rng = frand.New()
	}

	tb := table.New()
	primeOK := func() bool { return opts.MaxPrimes <= 0 || tb.Primes() < opts.MaxPrimes }
	options := func(candidates []table.Candidate) int {
		if primeOK() {
			return len(candidates) + 1
		}
		return len(candidates)
	}

	root := factor.Prime(0)
	path := &Path{Steps: make([]Step, 0, opts.Height+1)}
	path.Steps = append(path.Steps, Step{
		Value:    root,
		Primes:   1,
		Omega:    root.Omega(),
		Distinct: root.Distinct(),
		Choices:  options(tb.Candidates()),
	})

	for depth := 1; depth <= opts.Height; depth++ {
		candidates := tb.Candidates()
		choices := options(candidates)
		if choices == 0 {
			return nil, fmt.Errorf("walk at depth %d: %w", depth, &InconsistencyError{
				Height:     opts.Height - depth + 1,
				Primes:     tb.Primes(),
				Composites: tb.Len() - 1 - tb.Primes(),
				Table:      tb.String(),
			})
		}

		var v factor.Factorization
		if i := rng.Intn(choices); i < len(candidates) {
			v = candidates[i].Value
			tb.PushComposite(candidates[i])
		} else {
			v = factor.Prime(tb.Primes())
			tb.PushPrime()
		}
		path.Steps = append(path.Steps, Step{
			Value:    v,
			Primes:   tb.Primes(),
			Omega:    v.Omega(),
			Distinct: v.Distinct(),
			Choices:  choices,
		})
	}
	return path, nil
}
