package maclane

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueArithmetic(t *testing.T) {
	a := assert.New(t)

	a.True(NewValue(1, 2).Add(NewValue(1, 3)).Equal(NewValue(5, 6)))
	a.True(NewValue(1, 2).Sub(NewValue(1, 3)).Equal(NewValue(1, 6)))
	a.True(NewValue(1, 3).MulInt(6).Equal(ValueOf(2)))
	a.True(ValueOf(3).DivInt(2).Equal(NewValue(3, 2)))

	// normalization
	a.Equal("2/3", NewValue(4, 6).String())
	a.Equal("-2/3", NewValue(4, -6).String())
	a.Equal("5", NewValue(5, 1).String())
	a.Equal("0", NewValue(0, 7).String())

	// the zero Value is usable as the rational 0
	var zero Value
	a.True(zero.Equal(ValueOf(0)))
	a.True(zero.Add(ValueOf(3)).Equal(ValueOf(3)))
	a.Zero(zero.Sign())
}

func TestValueOrder(t *testing.T) {
	a := assert.New(t)

	a.Equal(-1, NewValue(1, 3).Cmp(NewValue(1, 2)))
	a.Equal(1, ValueOf(1).Cmp(NewValue(2, 3)))
	a.Equal(0, NewValue(2, 4).Cmp(NewValue(1, 2)))

	a.Equal(-1, ValueOf(-1).Sign())
	a.Equal(1, NewValue(1, 9).Sign())
}

func TestValueInfinity(t *testing.T) {
	a := assert.New(t)

	a.True(Infinity.IsInf())
	a.False(ValueOf(7).IsInf())

	a.Equal(1, Infinity.Cmp(ValueOf(1<<40)))
	a.Equal(-1, ValueOf(0).Cmp(Infinity))
	a.Equal(0, Infinity.Cmp(Infinity))

	a.True(Infinity.Add(ValueOf(1)).IsInf())
	a.True(ValueOf(1).Add(Infinity).IsInf())
	a.True(Infinity.MulInt(0).IsInf())
	a.Equal(1, Infinity.Sign())

	a.Equal("+Infinity", Infinity.String())
}

func TestMinValue(t *testing.T) {
	a := assert.New(t)

	a.True(MinValue([]Value{ValueOf(3), ValueOf(1), ValueOf(2)}).Equal(ValueOf(1)))
	a.True(MinValue([]Value{Infinity, ValueOf(5)}).Equal(ValueOf(5)))
	a.True(MinValue([]Value{Infinity, Infinity}).IsInf())
	a.True(MinValue([]Value{NewValue(1, 2), NewValue(1, 3)}).Equal(NewValue(1, 3)))

	a.Panics(func() { MinValue(nil) })
}
