package ring

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"lukechampine.com/uint128"
)

var (
	errPrecTooLarge = errors.New("p^prec must fit in 63 bits")
	errPrecTooSmall = errors.New("precision must be at least 1")
)

// PadicRing is the ring of p-adic integers truncated at a fixed absolute
// precision N: elements are residues mod p^k for some k <= N, and k is
// tracked per element. It is the canonical inexact coefficient ring of this
// module (e.g. NewPadicRing(2, 5) is the "5-digit 2-adic" ring).
type PadicRing struct {
	p    uint64
	prec int
	pows []uint64 // pows[k] = p^k, k = 0..prec
}

type padicElem struct {
	r    *PadicRing
	v    uint64 // residue mod p^prec
	prec int    // absolute precision of this element
}

func NewPadicRing(p uint64, prec int) (*PadicRing, error) {
	if prec < 1 {
		return nil, errPrecTooSmall
	}

	b := (&big.Int{}).SetUint64(p)
	if !b.ProbablyPrime(1) {
		return nil, errNotPrime
	}

	pows := make([]uint64, prec+1)
	pows[0] = 1
	for k := 1; k <= prec; k++ {
		next := uint128.From64(pows[k-1]).Mul64(p)
		if next.Hi != 0 || next.Lo >= 1<<maxPrimeBits {
			return nil, errPrecTooLarge
		}
		pows[k] = next.Lo
	}

	return &PadicRing{p: p, prec: prec, pows: pows}, nil
}

func (r *PadicRing) Prime() uint64  { return r.p }
func (r *PadicRing) Precision() int { return r.prec }

func (r *PadicRing) elem(a Elem) padicElem {
	e, ok := a.(padicElem)
	if !ok || e.r != r {
		panic("ring: element does not belong to this p-adic ring")
	}

	return e
}

// FromIntWithPrec reduces n mod p^prec and tracks that precision, mirroring
// elements like 1 + O(2^2) in a ring capped at O(2^5).
func (r *PadicRing) FromIntWithPrec(n int64, prec int) Elem {
	if prec < 1 || prec > r.prec {
		prec = r.prec
	}

	pk := r.pows[prec]
	v := n % int64(pk)
	if v < 0 {
		v += int64(pk)
	}

	return padicElem{r: r, v: uint64(v), prec: prec}
}

func (r *PadicRing) FromInt(n int64) Elem {
	return r.FromIntWithPrec(n, r.prec)
}

func (r *PadicRing) Zero() Elem { return padicElem{r: r, prec: r.prec} }
func (r *PadicRing) One() Elem  { return padicElem{r: r, v: 1, prec: r.prec} }

// Valuation returns the p-adic valuation of a and whether it is finite. A
// residue of zero is indistinguishable from zero at the element's precision
// and reports an infinite valuation.
func (r *PadicRing) Valuation(a Elem) (int, bool) {
	e := r.elem(a)
	if e.v == 0 {
		return 0, false
	}

	v := 0
	for x := e.v; x%r.p == 0; x /= r.p {
		v++
	}

	return v, true
}

func (r *PadicRing) Add(a, b Elem) Elem {
	x, y := r.elem(a), r.elem(b)
	prec := min(x.prec, y.prec)
	pk := r.pows[prec]

	sum := x.v%pk + y.v%pk
	if sum >= pk {
		sum -= pk
	}

	return padicElem{r: r, v: sum, prec: prec}
}

func (r *PadicRing) Neg(a Elem) Elem {
	x := r.elem(a)
	pk := r.pows[x.prec]
	v := x.v % pk
	if v != 0 {
		v = pk - v
	}

	return padicElem{r: r, v: v, prec: x.prec}
}

func (r *PadicRing) Sub(a, b Elem) Elem {
	return r.Add(a, r.Neg(b))
}

func (r *PadicRing) Mul(a, b Elem) Elem {
	x, y := r.elem(a), r.elem(b)

	// Absolute precision of a product grows with the valuation of the other
	// factor: prec(ab) = min(prec(a)+v(b), prec(b)+v(a), N).
	va, _ := r.Valuation(x)
	vb, _ := r.Valuation(y)
	prec := min(x.prec+vb, y.prec+va, r.prec)

	prod := uint128.From64(x.v).Mul64(y.v).Mod64(r.pows[prec])

	return padicElem{r: r, v: prod, prec: prec}
}

var errNotUnit = errors.New("element is not a unit")

func (r *PadicRing) Inverse(a Elem) (Elem, error) {
	x := r.elem(a)
	if x.v == 0 || x.v%r.p == 0 {
		return nil, fmt.Errorf("%w: %v", errNotUnit, a)
	}

	pk := (&big.Int{}).SetUint64(r.pows[x.prec])
	inv := (&big.Int{}).ModInverse((&big.Int{}).SetUint64(x.v), pk)

	return padicElem{r: r, v: inv.Uint64(), prec: x.prec}, nil
}

// Equal compares at the common precision of the two elements.
func (r *PadicRing) Equal(a, b Elem) bool {
	x, y := r.elem(a), r.elem(b)
	pk := r.pows[min(x.prec, y.prec)]

	return x.v%pk == y.v%pk
}

func (r *PadicRing) IsExact() bool { return false }
func (r *PadicRing) IsField() bool { return false }

func (r *PadicRing) String() string {
	return fmt.Sprintf("%d-adic ring with precision %d", r.p, r.prec)
}

func (e padicElem) IsZero() bool { return e.v == 0 }

// Lift raises the element to the precision cap of its ring, reinterpreting
// the stored residue exactly.
func (e padicElem) Lift() Elem {
	return padicElem{r: e.r, v: e.v, prec: e.r.prec}
}

func (e padicElem) String() string {
	s := strconv.FormatUint(e.v, 10)
	if e.prec == e.r.prec {
		return s
	}

	return fmt.Sprintf("%s + O(%d^%d)", s, e.r.p, e.prec)
}
