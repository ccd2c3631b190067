package table

import (
	"slices"
	"strings"

	"github.com/matzehuels/beurling/pkg/factor"
)

// Cell is one filled entry of the table.
type Cell struct {
	Index int                  // Row-0 position of Value
	Value factor.Factorization // The product stored in the cell
}

// Position addresses a cell by row and accessor column: (x, y) is the
// product row0[x]·row0[x+y].
type Position struct {
	Row int
	Col int
}

// Candidate is a value that may be appended to row 0 next, together with the
// frontier cells it would fill.
type Candidate struct {
	Value   factor.Factorization
	Entries []Position // In frontier order
}

// Table is the jagged multiplication table.
//
// The zero value is not usable; create tables with [New].
// Table is not safe for concurrent use.
type Table struct {
	rows   [][]Cell
	primes int
}

// New returns a table holding the identity and generator 0.
func New() *Table {
	return &Table{
		rows: [][]Cell{{
			{Index: 0, Value: factor.Identity()},
			{Index: 1, Value: factor.Prime(0)},
		}},
		primes: 1,
	}
}

// Primes returns the number of generators introduced so far. It is also the
// index of the next generator.
func (t *Table) Primes() int { return t.primes }

// Len returns the length of row 0, the number of discovered integers
// including the identity.
func (t *Table) Len() int { return len(t.rows[0]) }

// Rows returns the number of rows.
func (t *Table) Rows() int { return len(t.rows) }

// Row returns a copy of row i.
func (t *Table) Row(i int) []Cell { return slices.Clone(t.rows[i]) }

// Sequence returns the discovered integers in increasing order, starting with
// the identity.
func (t *Table) Sequence() []factor.Factorization {
	out := make([]factor.Factorization, len(t.rows[0]))
	for i, c := range t.rows[0] {
		out[i] = c.Value
	}
	return out
}

// Frontier returns the fillable positions: for every row i ≥ 1 whose length is
// below len(row i-1) - 1, the next cell of row i; plus the first cell of a new
// row when the last row has at least two entries.
func (t *Table) Frontier() []Position {
	var out []Position
	for i := 1; i < len(t.rows); i++ {
		if len(t.rows[i]) < len(t.rows[i-1])-1 {
			out = append(out, Position{Row: i, Col: len(t.rows[i])})
		}
	}
	if len(t.rows[len(t.rows)-1]) >= 2 {
		out = append(out, Position{Row: len(t.rows), Col: 0})
	}
	return out
}

// Candidates returns the values that may be appended next, sorted by
// [factor.Compare]. A value qualifies when it occupies at least its
// RequiredCount frontier cells.
func (t *Table) Candidates() []Candidate {
	row0 := t.rows[0]
	byKey := make(map[string]*Candidate)
	var order []*Candidate
	for _, pos := range t.Frontier() {
		v := row0[pos.Row].Value.Mul(row0[pos.Row+pos.Col].Value)
		c, ok := byKey[v.Key()]
		if !ok {
			c = &Candidate{Value: v}
			byKey[v.Key()] = c
			order = append(order, c)
		}
		c.Entries = append(c.Entries, pos)
	}

	out := make([]Candidate, 0, len(order))
	for _, c := range order {
		if len(c.Entries) >= c.Value.RequiredCount() {
			out = append(out, *c)
		}
	}
	slices.SortFunc(out, func(a, b Candidate) int {
		return factor.Compare(a.Value, b.Value)
	})
	return out
}

// PushComposite appends c to row 0 and fills its frontier cells.
func (t *Table) PushComposite(c Candidate) {
	cell := Cell{Index: len(t.rows[0]), Value: c.Value}
	t.rows[0] = append(t.rows[0], cell)
	for _, e := range c.Entries {
		for e.Row >= len(t.rows) {
			t.rows = append(t.rows, nil)
		}
		t.rows[e.Row] = append(t.rows[e.Row], cell)
	}
}

// PopComposite undoes the matching [Table.PushComposite].
func (t *Table) PopComposite(c Candidate) {
	t.rows[0] = t.rows[0][:len(t.rows[0])-1]
	for _, e := range c.Entries {
		t.rows[e.Row] = t.rows[e.Row][:len(t.rows[e.Row])-1]
	}
	if last := len(t.rows) - 1; last > 0 && len(t.rows[last]) == 0 {
		t.rows = t.rows[:last]
	}
}

// PushPrime appends the next generator to row 0.
func (t *Table) PushPrime() {
	t.rows[0] = append(t.rows[0], Cell{Index: len(t.rows[0]), Value: factor.Prime(t.primes)})
	t.primes++
}

// PopPrime undoes the matching [Table.PushPrime].
func (t *Table) PopPrime() {
	t.primes--
	t.rows[0] = t.rows[0][:len(t.rows[0])-1]
}

// String dumps the table one row per line, each cell as "|{(g,e)}|".
func (t *Table) String() string {
	var b strings.Builder
	for _, row := range t.rows {
		for _, c := range row {
			b.WriteByte('|')
			b.WriteString(c.Value.DotString())
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
