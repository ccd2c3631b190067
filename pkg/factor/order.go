package factor

// Compare orders factorizations for bookkeeping. It returns -1, 0 or +1.
//
// The identity is minimal. Otherwise the first differing pair decides: a
// lower generator index sorts later, and for the same generator the smaller
// exponent sorts earlier. When one pair list is a prefix of the other, the
// shorter sorts earlier.
func Compare(a, b Factorization) int {
	switch {
	case a.IsIdentity() && b.IsIdentity():
		return 0
	case a.IsIdentity():
		return -1
	case b.IsIdentity():
		return 1
	}
	n := min(len(a.pairs), len(b.pairs))
	for i := 0; i < n; i++ {
		pa, pb := a.pairs[i], b.pairs[i]
		if pa.Gen != pb.Gen {
			if pa.Gen < pb.Gen {
				return 1
			}
			return -1
		}
		if pa.Exp != pb.Exp {
			if pa.Exp < pb.Exp {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a.pairs) < len(b.pairs):
		return -1
	case len(a.pairs) > len(b.pairs):
		return 1
	}
	return 0
}

// Less reports whether a sorts strictly before b under [Compare].
func Less(a, b Factorization) bool { return Compare(a, b) < 0 }
