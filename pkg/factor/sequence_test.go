package factor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequencePushPop(t *testing.T) {
	var s Sequence
	s.Push(p)
	s.Push(Power(0, 2))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Back().Equal(Power(0, 2)))

	clone := s.Clone()
	assert.True(t, s.Pop().Equal(Power(0, 2)))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, clone.Len(), "clone is independent")
}

func TestSequenceCompare(t *testing.T) {
	a := NewSequence(Power(0, 2), p.Mul(q))
	b := NewSequence(Power(0, 2), Power(0, 3))
	c := NewSequence(Power(0, 2))

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, -1, c.Compare(a), "shorter prefix first")
	assert.True(t, a.Equal(NewSequence(Power(0, 2), q.Mul(p))))
	assert.False(t, a.Equal(c))
}

func TestSequenceString(t *testing.T) {
	s := NewSequence(Power(0, 2), p.Mul(q))
	assert.Equal(t, "[{(1,2)},{(1,1),(2,1)}]", s.String())
	assert.Equal(t, "0,2;0,1|1,1", s.Key())
	assert.Equal(t, "[]", Sequence{}.String())
}
