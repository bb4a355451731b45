package ring

import (
	"math/big"
)

// Rationals is the exact field of rational numbers, the classical base for
// valuations on Q[x].
type Rationals struct{}

type ratElem struct {
	q *Rationals
	v *big.Rat
}

func NewRationals() *Rationals {
	return &Rationals{}
}

func (q *Rationals) elem(a Elem) ratElem {
	e, ok := a.(ratElem)
	if !ok || e.q != q {
		panic("ring: element does not belong to this rational field")
	}

	return e
}

func (q *Rationals) FromInt(n int64) Elem {
	return ratElem{q: q, v: new(big.Rat).SetInt64(n)}
}

func (q *Rationals) FromFrac(num, den int64) Elem {
	return ratElem{q: q, v: big.NewRat(num, den)}
}

func (q *Rationals) Zero() Elem { return q.FromInt(0) }
func (q *Rationals) One() Elem  { return q.FromInt(1) }

func (q *Rationals) Add(a, b Elem) Elem {
	return ratElem{q: q, v: new(big.Rat).Add(q.elem(a).v, q.elem(b).v)}
}

func (q *Rationals) Sub(a, b Elem) Elem {
	return ratElem{q: q, v: new(big.Rat).Sub(q.elem(a).v, q.elem(b).v)}
}

func (q *Rationals) Neg(a Elem) Elem {
	return ratElem{q: q, v: new(big.Rat).Neg(q.elem(a).v)}
}

func (q *Rationals) Mul(a, b Elem) Elem {
	return ratElem{q: q, v: new(big.Rat).Mul(q.elem(a).v, q.elem(b).v)}
}

func (q *Rationals) Inverse(a Elem) (Elem, error) {
	e := q.elem(a)
	if e.v.Sign() == 0 {
		return nil, errNoInverse
	}

	return ratElem{q: q, v: new(big.Rat).Inv(e.v)}, nil
}

func (q *Rationals) Equal(a, b Elem) bool {
	return q.elem(a).v.Cmp(q.elem(b).v) == 0
}

func (q *Rationals) IsExact() bool { return true }
func (q *Rationals) IsField() bool { return true }

func (q *Rationals) String() string { return "QQ" }

func (e ratElem) IsZero() bool { return e.v.Sign() == 0 }
func (e ratElem) Lift() Elem   { return e }

func (e ratElem) String() string {
	return e.v.RatString()
}

// PadicValuation returns v_p(a) = v_p(num) - v_p(den), and false for a = 0.
func (q *Rationals) PadicValuation(a Elem, p uint64) (int, bool) {
	e := q.elem(a)
	if e.v.Sign() == 0 {
		return 0, false
	}

	bp := (&big.Int{}).SetUint64(p)

	return padicOrder(e.v.Num(), bp) - padicOrder(e.v.Denom(), bp), true
}

func padicOrder(n *big.Int, p *big.Int) int {
	x := new(big.Int).Abs(n)
	q, m := new(big.Int), new(big.Int)

	ord := 0
	for {
		q.QuoRem(x, p, m)
		if m.Sign() != 0 {
			return ord
		}

		x.Set(q)
		ord++
	}
}
