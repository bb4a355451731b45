// Package maclane implements discrete valuations on univariate polynomial
// rings defined by phi-adic expansions with respect to a key polynomial.
package maclane

import (
	"math"
	"strconv"
)

// Value is an element of the value group: a rational number or the
// distinguished infinity assigned to zero. The zero Value is the rational 0.
//
// Arithmetic cross-multiplies the int64 components without overflow checks.
// Valuation chains produce small numerators and denominators (bounded by
// element valuations and polynomial degrees), which keeps the products far
// from the word size.
type Value struct {
	num, den int64 // den > 0 and gcd(num, den) = 1 for finite values
	inf      bool
}

// Infinity compares greater than every finite value.
var Infinity = Value{inf: true}

func NewValue(num, den int64) Value {
	if den == 0 {
		panic("maclane: zero denominator")
	}

	if den < 0 {
		num, den = -num, -den
	}

	g := gcd64(abs64(num), den)
	if g > 1 {
		num, den = num/g, den/g
	}

	return Value{num: num, den: den}
}

func ValueOf(n int64) Value {
	return Value{num: n, den: 1}
}

func (v Value) IsInf() bool { return v.inf }

func (v Value) norm() Value {
	if v.den == 0 && !v.inf {
		// the zero Value, before normalization
		return Value{den: 1}
	}

	return v
}

func (v Value) Add(w Value) Value {
	if v.inf || w.inf {
		return Infinity
	}

	v, w = v.norm(), w.norm()

	return NewValue(v.num*w.den+w.num*v.den, v.den*w.den)
}

func (v Value) Sub(w Value) Value {
	if v.inf || w.inf {
		return Infinity
	}

	v, w = v.norm(), w.norm()

	return NewValue(v.num*w.den-w.num*v.den, v.den*w.den)
}

func (v Value) MulInt(n int64) Value {
	if v.inf {
		return Infinity
	}

	v = v.norm()

	return NewValue(v.num*n, v.den)
}

func (v Value) DivInt(n int64) Value {
	if v.inf {
		return Infinity
	}

	v = v.norm()

	return NewValue(v.num, v.den*n)
}

// Cmp returns -1, 0 or 1; infinity compares equal to itself and greater than
// every finite value.
func (v Value) Cmp(w Value) int {
	switch {
	case v.inf && w.inf:
		return 0
	case v.inf:
		return 1
	case w.inf:
		return -1
	}

	v, w = v.norm(), w.norm()

	l, r := v.num*w.den, w.num*v.den
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

func (v Value) Equal(w Value) bool {
	return v.Cmp(w) == 0
}

func (v Value) Sign() int {
	if v.inf {
		return 1
	}

	v = v.norm()

	switch {
	case v.num < 0:
		return -1
	case v.num > 0:
		return 1
	default:
		return 0
	}
}

// Float64 is a lossy view for plotting and diagnostics.
func (v Value) Float64() float64 {
	if v.inf {
		return math.Inf(1)
	}

	v = v.norm()

	return float64(v.num) / float64(v.den)
}

func (v Value) String() string {
	if v.inf {
		return "+Infinity"
	}

	v = v.norm()
	if v.den == 1 {
		return strconv.FormatInt(v.num, 10)
	}

	return strconv.FormatInt(v.num, 10) + "/" + strconv.FormatInt(v.den, 10)
}

// MinValue returns the minimum of a non-empty sequence.
func MinValue(vals []Value) Value {
	if len(vals) == 0 {
		panic("maclane: minimum of empty value sequence")
	}

	res := vals[0]
	for _, v := range vals[1:] {
		if v.Cmp(res) < 0 {
			res = v
		}
	}

	return res
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
