package factor

import (
	"strconv"
	"strings"

	errs "github.com/matzehuels/beurling/pkg/errors"
)

// Pair is one prime-power factor: generator index Gen raised to Exp.
type Pair struct {
	Gen int // 0-based generator index
	Exp int // Positive exponent (0 only in the identity sentinel)
}

// Factorization is an element of the monoid, a product of generator powers.
//
// Pairs are kept strictly increasing by Gen with positive exponents. The zero
// value is the identity.
type Factorization struct {
	pairs []Pair // nil for the identity
}

// Identity returns the neutral element.
func Identity() Factorization { return Factorization{} }

// Prime returns the generator with index gen.
func Prime(gen int) Factorization {
	return Factorization{pairs: []Pair{{Gen: gen, Exp: 1}}}
}

// Power returns generator gen raised to exp. Power(gen, 0) is the identity.
func Power(gen, exp int) Factorization {
	if exp <= 0 {
		return Identity()
	}
	return Factorization{pairs: []Pair{{Gen: gen, Exp: exp}}}
}

// FromPairs builds a factorization from explicit pairs.
//
// Pairs must be strictly increasing by generator with positive exponents.
// The identity sentinel [{0 0}] and an empty list both yield the identity.
func FromPairs(pairs []Pair) (Factorization, error) {
	if len(pairs) == 0 || (len(pairs) == 1 && pairs[0] == Pair{}) {
		return Identity(), nil
	}
	for i, p := range pairs {
		if p.Gen < 0 {
			return Factorization{}, errs.New(errs.ErrCodeInvalidInput, "negative generator index %d", p.Gen)
		}
		if p.Exp <= 0 {
			return Factorization{}, errs.New(errs.ErrCodeInvalidInput, "non-positive exponent %d for generator %d", p.Exp, p.Gen)
		}
		if i > 0 && pairs[i-1].Gen >= p.Gen {
			return Factorization{}, errs.New(errs.ErrCodeInvalidInput, "generators not strictly increasing at position %d", i)
		}
	}
	return Factorization{pairs: append([]Pair(nil), pairs...)}, nil
}

// MustPairs is like [FromPairs] but panics on invalid input.
// It is intended for literals in tests and examples.
func MustPairs(pairs ...Pair) Factorization {
	f, err := FromPairs(pairs)
	if err != nil {
		panic(err)
	}
	return f
}

// Mul returns the product f·g, adding exponents of shared generators.
func (f Factorization) Mul(g Factorization) Factorization {
	if f.IsIdentity() {
		return g
	}
	if g.IsIdentity() {
		return f
	}
	out := make([]Pair, 0, len(f.pairs)+len(g.pairs))
	i, j := 0, 0
	for i < len(f.pairs) && j < len(g.pairs) {
		a, b := f.pairs[i], g.pairs[j]
		switch {
		case a.Gen < b.Gen:
			out = append(out, a)
			i++
		case a.Gen > b.Gen:
			out = append(out, b)
			j++
		default:
			out = append(out, Pair{Gen: a.Gen, Exp: a.Exp + b.Exp})
			i++
			j++
		}
	}
	out = append(out, f.pairs[i:]...)
	out = append(out, g.pairs[j:]...)
	return Factorization{pairs: out}
}

// IsIdentity reports whether f is the neutral element.
func (f Factorization) IsIdentity() bool { return len(f.pairs) == 0 }

// IsPrime reports whether f is a single generator to the first power.
func (f Factorization) IsPrime() bool {
	return len(f.pairs) == 1 && f.pairs[0].Exp == 1
}

// IsPrimePower reports whether f is a positive power of a single generator.
// Generators themselves are prime powers.
func (f Factorization) IsPrimePower() bool { return len(f.pairs) == 1 }

// Pairs returns a copy of the factor list. The identity yields the
// sentinel [{0 0}].
func (f Factorization) Pairs() []Pair {
	if f.IsIdentity() {
		return []Pair{{}}
	}
	return append([]Pair(nil), f.pairs...)
}

// MaxGen returns the largest generator index that divides f, or 0 for the
// identity.
func (f Factorization) MaxGen() int {
	if f.IsIdentity() {
		return 0
	}
	return f.pairs[len(f.pairs)-1].Gen
}

// Omega returns the number of prime factors counted with multiplicity.
func (f Factorization) Omega() int {
	n := 0
	for _, p := range f.pairs {
		n += p.Exp
	}
	return n
}

// Distinct returns the number of distinct generators dividing f.
func (f Factorization) Distinct() int { return len(f.pairs) }

// Exp returns the exponent of generator gen in f.
func (f Factorization) Exp(gen int) int {
	for _, p := range f.pairs {
		if p.Gen == gen {
			return p.Exp
		}
		if p.Gen > gen {
			break
		}
	}
	return 0
}

// RequiredCount returns the number of unordered binary products a·b = f with
// neither factor the identity: (∏(e+1) - 1) / 2.
//
// A value can enter the multiplication table only once that many of its
// products are on the frontier.
func (f Factorization) RequiredCount() int {
	count := 1
	for _, p := range f.pairs {
		count *= p.Exp + 1
	}
	return (count - 1) / 2
}

// Equal reports whether f and g are the same element.
func (f Factorization) Equal(g Factorization) bool {
	if len(f.pairs) != len(g.pairs) {
		return false
	}
	for i := range f.pairs {
		if f.pairs[i] != g.pairs[i] {
			return false
		}
	}
	return true
}

// Key returns a string usable as a map key. Equal factorizations have equal keys.
func (f Factorization) Key() string { return f.String() }

// String returns the serial form "gen,exp|gen,exp". The identity is "0,0".
func (f Factorization) String() string {
	if f.IsIdentity() {
		return "0,0"
	}
	var b strings.Builder
	for i, p := range f.pairs {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strconv.Itoa(p.Gen))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Exp))
	}
	return b.String()
}

// DotString returns the display form with 1-based generator labels,
// e.g. "{(1,1),(3,1)}" for the product of the first and third generators.
// The identity is "{(1,0)}".
func (f Factorization) DotString() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range f.Pairs() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(p.Gen + 1))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Exp))
		b.WriteByte(')')
	}
	b.WriteByte('}')
	return b.String()
}

// Parse reads the serial form produced by [Factorization.String].
func Parse(s string) (Factorization, error) {
	if s == "" {
		return Factorization{}, errs.New(errs.ErrCodeInvalidFormat, "empty factorization")
	}
	parts := strings.Split(s, "|")
	pairs := make([]Pair, 0, len(parts))
	for _, part := range parts {
		gen, exp, ok := strings.Cut(part, ",")
		if !ok {
			return Factorization{}, errs.New(errs.ErrCodeInvalidFormat, "pair %q: missing comma", part)
		}
		g, err := strconv.Atoi(gen)
		if err != nil {
			return Factorization{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "pair %q: generator", part)
		}
		e, err := strconv.Atoi(exp)
		if err != nil {
			return Factorization{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "pair %q: exponent", part)
		}
		pairs = append(pairs, Pair{Gen: g, Exp: e})
	}
	f, err := FromPairs(pairs)
	if err != nil {
		return Factorization{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "factorization %q", s)
	}
	return f, nil
}
