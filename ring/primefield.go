package ring

import (
	"errors"
	"math/big"
	"math/bits"
	"strconv"

	lring "github.com/tuneinsight/lattigo/v6/ring"
)

var (
	errPrimeTooLarge = errors.New("supporting up to 63-bit prime")
	errNotPrime      = errors.New("order of a prime field must be prime")
)

const maxPrimeBits = 63

// PrimeField is the exact field GF(p) for a word-sized prime p.
type PrimeField struct {
	prime     uint64
	generator uint64
	factors   []uint64
}

type pfElem struct {
	f *PrimeField
	v uint64
}

/*
NewPrimeField constructs GF(prime). The multiplicative generator is computed
eagerly; it is exposed for collaborators that reduce into this field.
*/
func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime > (1 << maxPrimeBits) {
		return nil, errPrimeTooLarge
	}

	b := (&big.Int{}).SetUint64(prime)
	// Probably prime is 100% accurate for 64-bit numbers, one base check suffices.
	if !b.ProbablyPrime(1) {
		return nil, errNotPrime
	}

	g, factors, err := lring.PrimitiveRoot(prime, nil)
	if err != nil {
		return nil, err
	}

	return &PrimeField{
		prime:     prime,
		generator: g,
		factors:   factors,
	}, nil
}

func (f *PrimeField) Modulus() uint64 {
	return f.prime
}

func (f *PrimeField) Generator() uint64 {
	return f.generator
}

func (f *PrimeField) Factors() []uint64 {
	return f.factors
}

func (f *PrimeField) elem(a Elem) pfElem {
	e, ok := a.(pfElem)
	if !ok || e.f != f {
		panic("ring: element does not belong to this prime field")
	}

	return e
}

func (f *PrimeField) FromUint(v uint64) Elem {
	return pfElem{f: f, v: v % f.prime}
}

func (f *PrimeField) FromInt(n int64) Elem {
	if n >= 0 {
		return f.FromUint(uint64(n))
	}

	return f.Neg(f.FromUint(uint64(-n)))
}

func (f *PrimeField) Zero() Elem { return pfElem{f: f} }
func (f *PrimeField) One() Elem  { return pfElem{f: f, v: 1} }

func (f *PrimeField) Add(a, b Elem) Elem {
	x, y := f.elem(a), f.elem(b)

	tmp := x.v + y.v // can't overflow, both below 2^63.
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return pfElem{f: f, v: tmp}
}

func (f *PrimeField) Sub(a, b Elem) Elem {
	x, y := f.elem(a), f.elem(b)
	if x.v < y.v {
		return pfElem{f: f, v: f.prime - (y.v - x.v)}
	}

	return pfElem{f: f, v: x.v - y.v}
}

func (f *PrimeField) Neg(a Elem) Elem {
	x := f.elem(a)
	if x.v == 0 {
		return x
	}

	return pfElem{f: f, v: f.prime - x.v}
}

func (f *PrimeField) Mul(a, b Elem) Elem {
	x, y := f.elem(a), f.elem(b)
	if x.v == 0 || y.v == 0 {
		return pfElem{f: f}
	}

	return pfElem{f: f, v: fieldMul(x.v, y.v, f.prime)}
}

func fieldMul(a, b uint64, mod uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, mod)

	return rem
}

// Pow computes base^exp by exponentiation by squaring.
func (f *PrimeField) Pow(base, exp uint64) uint64 {
	mod := f.prime

	x := uint64(1)
	for exp > 0 {
		if exp%2 == 1 {
			x = fieldMul(x, base, mod)
		}

		base = fieldMul(base, base, mod)
		exp /= 2
	}

	return x % mod
}

var errNoInverse = errors.New("element has no inverse")

func (f *PrimeField) Inverse(a Elem) (Elem, error) {
	x := f.elem(a)
	if x.v == 0 {
		return nil, errNoInverse
	}

	// Fermat's little theorem: a^(p-2) is the inverse of a mod p.
	return pfElem{f: f, v: f.Pow(x.v, f.prime-2)}, nil
}

func (f *PrimeField) Equal(a, b Elem) bool {
	return f.elem(a).v == f.elem(b).v
}

func (f *PrimeField) IsExact() bool { return true }
func (f *PrimeField) IsField() bool { return true }

func (f *PrimeField) String() string {
	return "GF(" + strconv.FormatUint(f.prime, 10) + ")"
}

func (e pfElem) IsZero() bool { return e.v == 0 }
func (e pfElem) Lift() Elem   { return e }

func (e pfElem) String() string {
	return strconv.FormatUint(e.v, 10)
}

// Uint returns the canonical representative of a in [0, p).
func (f *PrimeField) Uint(a Elem) uint64 { return f.elem(a).v }
