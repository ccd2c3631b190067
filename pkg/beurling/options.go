package beurling

import (
	errs "github.com/matzehuels/beurling/pkg/errors"
	"github.com/matzehuels/beurling/pkg/factor"
	"github.com/matzehuels/beurling/pkg/tree"
)

// Tree is a tree of factorizations rooted at the first generator.
type Tree = tree.Tree[factor.Factorization]

// Node is a vertex of a [Tree].
type Node = tree.Node[factor.Factorization]

// Policy selects which children a build creates.
type Policy string

const (
	PolicyExhaustive Policy = "exhaustive"
	PolicyPrimePower Policy = "prime-power"
	PolicyRestricted Policy = "restricted"
)

// Policies lists the accepted policy names.
func Policies() []string {
	return []string{string(PolicyExhaustive), string(PolicyPrimePower), string(PolicyRestricted)}
}

// ParsePolicy validates a policy name. The empty string selects
// [PolicyExhaustive].
func ParsePolicy(name string) (Policy, error) {
	if name == "" {
		return PolicyExhaustive, nil
	}
	if err := errs.ValidatePolicy(name, Policies()); err != nil {
		return "", err
	}
	return Policy(name), nil
}

// Unlimited disables a budget.
const Unlimited = -1

// Options configures [Build].
type Options struct {
	Policy Policy
	Height int // Depth of the deepest nodes; 0 yields the root alone

	// Budgets apply to PolicyRestricted only. Negative values mean
	// unlimited and 0 admits nothing of that kind. The prime budget counts
	// the root generator, so a prime budget of 0 or 1 never adds one.
	MaxPrimes     int
	MaxComposites int
}

// Validate checks the options without building anything.
func (o Options) Validate() error {
	if _, err := ParsePolicy(string(o.Policy)); err != nil {
		return err
	}
	if err := errs.ValidateHeight(o.Height); err != nil {
		return err
	}
	if err := errs.ValidateBudget("prime", o.MaxPrimes); err != nil {
		return err
	}
	return errs.ValidateBudget("composite", o.MaxComposites)
}
