package order

import (
	"fmt"
	"strings"

	"github.com/matzehuels/beurling/pkg/factor"
)

// Term is one non-zero coefficient of a constraint row.
type Term struct {
	Gen   int
	Coeff float64
}

// Row is a sparse constraint Σ Coeff·x_Gen ≥ ε, sorted by generator.
type Row []Term

// String renders the row as "+2x0 -1x1".
func (r Row) String() string {
	parts := make([]string, len(r))
	for i, t := range r {
		parts[i] = fmt.Sprintf("%+gx%d", t.Coeff, t.Gen)
	}
	return strings.Join(parts, " ")
}

// Coefficients returns hi - lo as a sparse row over generator indices.
func Coefficients(lo, hi factor.Factorization) Row {
	n := max(lo.MaxGen(), hi.MaxGen()) + 1
	dense := make([]int, n)
	for _, p := range hi.Pairs() {
		dense[p.Gen] += p.Exp
	}
	for _, p := range lo.Pairs() {
		dense[p.Gen] -= p.Exp
	}
	var row Row
	for g, c := range dense {
		if c != 0 {
			row = append(row, Term{Gen: g, Coeff: float64(c)})
		}
	}
	return row
}

// Rows builds the constraint rows for admitting candidate after current while
// others remain pending: one row per consecutive pair of current, one for
// (last of current, candidate) and one per (candidate, other).
func Rows(current []factor.Factorization, candidate factor.Factorization, others []factor.Factorization) []Row {
	rows := make([]Row, 0, len(current)+len(others))
	for i := 1; i < len(current); i++ {
		rows = append(rows, Coefficients(current[i-1], current[i]))
	}
	if len(current) > 0 {
		rows = append(rows, Coefficients(current[len(current)-1], candidate))
	}
	for _, o := range others {
		rows = append(rows, Coefficients(candidate, o))
	}
	return rows
}

// vars returns one past the largest generator index among fs.
func vars(current []factor.Factorization, candidate factor.Factorization, others []factor.Factorization) int {
	n := candidate.MaxGen()
	for _, f := range current {
		n = max(n, f.MaxGen())
	}
	for _, f := range others {
		n = max(n, f.MaxGen())
	}
	return n + 1
}
