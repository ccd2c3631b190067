package factor

import "strings"

// Sequence is an ordered stack of factorizations.
// The zero value is an empty sequence ready to use.
type Sequence struct {
	items []Factorization
}

// NewSequence returns a sequence holding fs in order.
func NewSequence(fs ...Factorization) Sequence {
	return Sequence{items: append([]Factorization(nil), fs...)}
}

// Push appends f.
func (s *Sequence) Push(f Factorization) { s.items = append(s.items, f) }

// Pop removes and returns the last element. It panics on an empty sequence,
// which would mean an unbalanced push/pop pair.
func (s *Sequence) Pop() Factorization {
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

// Back returns the last element without removing it.
func (s Sequence) Back() Factorization { return s.items[len(s.items)-1] }

// At returns the i-th element.
func (s Sequence) At(i int) Factorization { return s.items[i] }

// Len returns the number of elements.
func (s Sequence) Len() int { return len(s.items) }

// Values returns a copy of the elements.
func (s Sequence) Values() []Factorization {
	return append([]Factorization(nil), s.items...)
}

// Clone returns an independent copy.
func (s Sequence) Clone() Sequence { return NewSequence(s.items...) }

// Equal reports whether both sequences hold equal elements in the same order.
func (s Sequence) Equal(o Sequence) bool { return s.Compare(o) == 0 }

// Compare orders sequences element-wise by [Compare], then by length.
func (s Sequence) Compare(o Sequence) int {
	n := min(len(s.items), len(o.items))
	for i := 0; i < n; i++ {
		if c := Compare(s.items[i], o.items[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(s.items) < len(o.items):
		return -1
	case len(s.items) > len(o.items):
		return 1
	}
	return 0
}

// String renders the sequence as "[{(1,2)},{(1,1),(2,1)}]".
func (s Sequence) String() string {
	parts := make([]string, len(s.items))
	for i, f := range s.items {
		parts[i] = f.DotString()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Key returns a string usable as a map key.
func (s Sequence) Key() string {
	parts := make([]string, len(s.items))
	for i, f := range s.items {
		parts[i] = f.String()
	}
	return strings.Join(parts, ";")
}
