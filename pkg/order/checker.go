package order

import (
	"fmt"
	"strings"

	errs "github.com/matzehuels/beurling/pkg/errors"
	"github.com/matzehuels/beurling/pkg/factor"
)

// DefaultEpsilon approximates the strict inequalities.
const DefaultEpsilon = 0.01

// IndeterminateError reports that the oracle neither proved nor refuted
// feasibility.
type IndeterminateError struct {
	Flags []string
	Cause error // Set when the oracle itself failed
}

func (e *IndeterminateError) Error() string {
	msg := "oracle could not decide feasibility"
	if len(e.Flags) > 0 {
		msg += " (" + strings.Join(e.Flags, "; ") + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *IndeterminateError) Unwrap() error { return e.Cause }

// Code returns [errs.ErrCodeOracleIndeterminate].
func (e *IndeterminateError) Code() errs.Code { return errs.ErrCodeOracleIndeterminate }

// Checker asks an [Oracle] whether an admission order is realisable.
type Checker struct {
	Oracle  Oracle
	Epsilon float64
}

// NewChecker returns a checker backed by a [SimplexOracle].
func NewChecker() *Checker {
	return &Checker{Oracle: NewSimplexOracle(), Epsilon: DefaultEpsilon}
}

// Feasible reports whether candidate can follow current, identity first,
// while every one of others stays larger than candidate.
func (c *Checker) Feasible(current []factor.Factorization, candidate factor.Factorization, others []factor.Factorization) (bool, error) {
	if len(current) == 0 {
		return false, errs.New(errs.ErrCodeInvalidInput, "current sequence is empty")
	}
	eps := c.Epsilon
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	oracle := c.Oracle
	if oracle == nil {
		oracle = NewSimplexOracle()
	}

	pr := Problem{
		Rows:    Rows(current, candidate, others),
		Vars:    vars(current, candidate, others),
		Epsilon: eps,
	}
	out, err := oracle.Solve(pr)
	if err != nil {
		return false, &IndeterminateError{Cause: err}
	}
	switch out.Status {
	case StatusFeasible:
		return true, nil
	case StatusInfeasible:
		return false, nil
	default:
		return false, fmt.Errorf("check %s after %d values: %w",
			candidate.DotString(), len(current), &IndeterminateError{Flags: out.Flags})
	}
}

// Feasible is [Checker.Feasible] with the simplex oracle and [DefaultEpsilon].
func Feasible(current []factor.Factorization, candidate factor.Factorization, others []factor.Factorization) (bool, error) {
	return NewChecker().Feasible(current, candidate, others)
}
