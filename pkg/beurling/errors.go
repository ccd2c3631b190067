package beurling

import (
	"fmt"

	errs "github.com/matzehuels/beurling/pkg/errors"
)

// InconsistencyError reports that the table offered no candidate while the
// composite budget still allowed growth and no generator could be added.
type InconsistencyError struct {
	Height     int    // Remaining height at the failing node
	Primes     int    // Generators on the branch, root included
	Composites int    // Composites on the branch
	Table      string // Table dump at the failing node
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("no candidates at remaining height %d (primes=%d, composites=%d)",
		e.Height, e.Primes, e.Composites)
}

// Code returns [errs.ErrCodeStructuralInconsistency].
func (e *InconsistencyError) Code() errs.Code { return errs.ErrCodeStructuralInconsistency }
