package order

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Status is the verdict of an [Oracle].
type Status int

const (
	StatusUnknown Status = iota
	StatusFeasible
	StatusInfeasible
)

func (s Status) String() string {
	switch s {
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Problem is a system Rows·x ≥ Epsilon over Vars free variables.
type Problem struct {
	Rows    []Row
	Vars    int
	Epsilon float64
}

// Outcome is an oracle verdict. Flags carry solver diagnostics when Status is
// [StatusUnknown].
type Outcome struct {
	Status Status
	Flags  []string
}

// Oracle decides feasibility of a [Problem].
//
// An error return is reserved for problems the oracle cannot even pose; a
// solver that runs but gives up reports [StatusUnknown].
type Oracle interface {
	Solve(Problem) (Outcome, error)
}

// DefaultTolerance is the simplex pivot tolerance used by [NewSimplexOracle].
const DefaultTolerance = 1e-10

// SimplexOracle solves problems with gonum's simplex method.
type SimplexOracle struct {
	Tol float64
}

// NewSimplexOracle returns an oracle with [DefaultTolerance].
func NewSimplexOracle() *SimplexOracle {
	return &SimplexOracle{Tol: DefaultTolerance}
}

// Solve converts G·x ≥ ε with free x to standard form
//
//	[G | -G | -I]·[u v s]ᵀ = ε,  u, v, s ≥ 0
//
// with a zero objective and runs the simplex. Generators that appear in no row
// get no column.
func (o *SimplexOracle) Solve(pr Problem) (Outcome, error) {
	if pr.Epsilon <= 0 {
		return Outcome{}, fmt.Errorf("epsilon must be positive, got %g", pr.Epsilon)
	}
	if len(pr.Rows) == 0 {
		return Outcome{Status: StatusFeasible}, nil
	}

	var gens []int
	for _, row := range pr.Rows {
		if len(row) == 0 {
			// 0 ≥ ε
			return Outcome{Status: StatusInfeasible}, nil
		}
		for _, t := range row {
			if t.Gen < 0 || (pr.Vars > 0 && t.Gen >= pr.Vars) {
				return Outcome{}, fmt.Errorf("generator %d outside %d variables", t.Gen, pr.Vars)
			}
			gens = append(gens, t.Gen)
		}
	}
	slices.Sort(gens)
	gens = slices.Compact(gens)
	col := make(map[int]int, len(gens))
	for i, g := range gens {
		col[g] = i
	}

	m, k := len(pr.Rows), len(gens)
	a := mat.NewDense(m, 2*k+m, nil)
	b := make([]float64, m)
	for i, row := range pr.Rows {
		for _, t := range row {
			a.Set(i, col[t.Gen], t.Coeff)
			a.Set(i, k+col[t.Gen], -t.Coeff)
		}
		a.Set(i, 2*k+i, -1)
		b[i] = pr.Epsilon
	}
	c := make([]float64, 2*k+m)

	tol := o.Tol
	if tol <= 0 {
		tol = DefaultTolerance
	}
	_, _, err := lp.Simplex(c, a, b, tol, nil)
	switch {
	case err == nil:
		return Outcome{Status: StatusFeasible}, nil
	case errors.Is(err, lp.ErrInfeasible):
		return Outcome{Status: StatusInfeasible}, nil
	default:
		return Outcome{Status: StatusUnknown, Flags: []string{err.Error()}}, nil
	}
}
