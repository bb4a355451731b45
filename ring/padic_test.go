package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPadicRing(t *testing.T) {
	a := assert.New(t)

	_, err := NewPadicRing(4, 5)
	a.ErrorIs(err, errNotPrime)

	_, err = NewPadicRing(2, 0)
	a.ErrorIs(err, errPrecTooSmall)

	_, err = NewPadicRing(3, 64)
	a.ErrorIs(err, errPrecTooLarge)

	r, err := NewPadicRing(2, 5)
	a.NoError(err)
	a.Equal(uint64(2), r.Prime())
	a.Equal(5, r.Precision())
	a.False(r.IsExact())
	a.False(r.IsField())
}

func TestPadicValuation(t *testing.T) {
	a := assert.New(t)

	r, err := NewPadicRing(2, 5)
	require.NoError(t, err)

	cases := []struct {
		n   int64
		val int
	}{
		{1, 0}, {3, 0}, {2, 1}, {12, 2}, {16, 4}, {-8, 3},
	}

	for _, tc := range cases {
		v, finite := r.Valuation(r.FromInt(tc.n))
		a.True(finite)
		a.Equal(tc.val, v, "valuation of %d", tc.n)
	}

	_, finite := r.Valuation(r.Zero())
	a.False(finite)

	// 32 = 2^5 is indistinguishable from zero at precision 5.
	_, finite = r.Valuation(r.FromInt(32))
	a.False(finite)
}

func TestPadicPrecision(t *testing.T) {
	a := assert.New(t)

	r, err := NewPadicRing(2, 5)
	require.NoError(t, err)

	// 1 + O(2^2)
	e := r.FromIntWithPrec(1, 2)
	a.Equal("1 + O(2^2)", e.String())

	// lifting reinterprets the residue at the precision cap
	a.Equal("1", e.Lift().String())

	// 1 + O(2^2) and 5 + O(2^5) agree at precision 2
	a.True(r.Equal(e, r.FromInt(5)))
	a.False(r.Equal(r.FromInt(1), r.FromInt(5)))

	// multiplying by 2 gains one digit of absolute precision
	prod := r.Mul(e, r.FromInt(2))
	a.Equal("2 + O(2^3)", prod.String())
}

func TestPadicArithmetic(t *testing.T) {
	a := assert.New(t)

	r, err := NewPadicRing(2, 5)
	require.NoError(t, err)

	a.True(r.Add(r.FromInt(19), r.FromInt(13)).IsZero())
	a.True(r.Equal(r.FromInt(-3), r.FromInt(29)))
	a.True(r.Sub(r.FromInt(7), r.FromInt(7)).IsZero())
	a.True(r.Equal(r.Mul(r.FromInt(3), r.FromInt(11)), r.FromInt(1)))

	inv, err := r.Inverse(r.FromInt(3))
	a.NoError(err)
	a.True(r.Equal(inv, r.FromInt(11)))

	_, err = r.Inverse(r.FromInt(6))
	a.ErrorIs(err, errNotUnit)

	_, err = r.Inverse(r.Zero())
	a.ErrorIs(err, errNotUnit)
}

func TestPadicMixedRingPanics(t *testing.T) {
	r1, err := NewPadicRing(2, 5)
	require.NoError(t, err)
	r2, err := NewPadicRing(3, 5)
	require.NoError(t, err)

	assert.Panics(t, func() {
		r1.Add(r1.One(), r2.One())
	})
}
