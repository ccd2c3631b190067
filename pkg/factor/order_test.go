package factor

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	p2 := Power(0, 2)
	p3 := Power(0, 3)
	q2 := Power(1, 2)
	pq := p.Mul(q)

	tests := []struct {
		name string
		a, b Factorization
		want int
	}{
		{"identity equal", Identity(), Identity(), 0},
		{"identity minimal", Identity(), p, -1},
		{"identity minimal reversed", q2, Identity(), 1},
		{"lower generator sorts later", p, q, 1},
		{"smaller exponent first", p2, p3, -1},
		{"prefix first", p, pq, -1},
		{"q² before p³", q2, p3, -1},
		{"pq before p²", pq, p2, -1},
		{"equal", pq, p.Mul(q), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, Compare(tt.b, tt.a), "antisymmetric")
		})
	}
}

func TestCompareTotal(t *testing.T) {
	var all []Factorization
	for a := 0; a <= 2; a++ {
		for b := 0; b <= 2; b++ {
			for c := 0; c <= 1; c++ {
				all = append(all, Power(0, a).Mul(Power(1, b)).Mul(Power(2, c)))
			}
		}
	}

	slices.SortFunc(all, Compare)
	for i := 1; i < len(all); i++ {
		assert.Equal(t, -1, Compare(all[i-1], all[i]), "%s vs %s", all[i-1], all[i])
	}
	for i := range all {
		for j := range all {
			for k := range all {
				if Less(all[i], all[j]) && Less(all[j], all[k]) {
					assert.True(t, Less(all[i], all[k]), "transitive")
				}
			}
		}
	}
}
