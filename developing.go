package maclane

import (
	"errors"
	"fmt"
	"iter"
	"sync"

	"github.com/jonathanmweiss/go-maclane/ring"
)

// TermValuer yields the valuations of the terms f_i*phi^i of the phi-adic
// expansion of a non-zero polynomial f, one Value per coefficient, in order.
// Entry i is infinite whenever f_i is zero.
//
// Every concrete valuation variant (Gauss, augmented, ...) implements this
// capability; the engine only consumes the resulting sequence.
type TermValuer interface {
	Valuations(f *ring.Polynomial) ([]Value, error)
}

// Valuation is the public surface of a phi-adic valuation.
type Valuation interface {
	TermValuer

	Domain() *ring.PolyRing
	Phi() *ring.Polynomial
	Coefficients(f *ring.Polynomial) (iter.Seq[*ring.Polynomial], error)
	Evaluate(f *ring.Polynomial) (Value, error)
	EffectiveDegree(f *ring.Polynomial) (int, error)
	NewtonPolygon(f *ring.Polynomial) (*NewtonPolygon, error)
	MakeMonicIntegral(g *ring.Polynomial) (*ring.Polynomial, error)
	String() string
}

var (
	ErrNoTermValuer     = errors.New("no term-valuation capability supplied")
	ErrKeyNotMonic      = errors.New("key polynomial must be monic and non-constant")
	ErrNotInDomain      = errors.New("polynomial is not in the domain of the valuation")
	ErrZeroPolynomial   = errors.New("the effective degree is only defined for non-zero polynomials")
	ErrNotMonicIntegral = errors.New("no means to rewrite the polynomial into monic integral form")
)

type quoRemPair struct {
	quo, rem *ring.Polynomial
}

// DevelopingValuation is the phi-adic expansion engine. It owns the key
// polynomial phi and a per-instance cache of monomial divisions by phi; the
// term-valuation capability is supplied by the concrete variant built on top
// of it.
//
// The instance is immutable after construction apart from the fill-on-first-use
// division cache, which is safe for concurrent callers.
type DevelopingValuation struct {
	domain *ring.PolyRing
	phi    *ring.Polynomial
	terms  TermValuer

	mu      sync.RWMutex
	monomQR map[int]quoRemPair
}

// NewDevelopingValuation coerces phi into domain and validates it. The terms
// argument is the variant that computes term valuations; it may embed the
// returned engine.
func NewDevelopingValuation(domain *ring.PolyRing, phi *ring.Polynomial, terms TermValuer) (*DevelopingValuation, error) {
	phi, err := domain.Coerce(phi)
	if err != nil {
		return nil, err
	}

	if phi.IsConstant() || !phi.IsMonic() {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotMonic, phi)
	}

	return &DevelopingValuation{
		domain:  domain,
		phi:     phi,
		terms:   terms,
		monomQR: make(map[int]quoRemPair),
	}, nil
}

func (v *DevelopingValuation) Domain() *ring.PolyRing { return v.domain }

// Phi returns the key polynomial of this valuation.
func (v *DevelopingValuation) Phi() *ring.Polynomial { return v.phi }

func (v *DevelopingValuation) checkDomain(f *ring.Polynomial) error {
	if f.Ring() != v.domain {
		return fmt.Errorf("%w: %v is not in %v", ErrNotInDomain, f, v.domain)
	}

	return nil
}

// quoRemMonomial returns x^d = quo*phi + rem, computing the division once per
// degree for the lifetime of the valuation.
func (v *DevelopingValuation) quoRemMonomial(d int) quoRemPair {
	v.mu.RLock()
	qr, ok := v.monomQR[d]
	v.mu.RUnlock()
	if ok {
		return qr
	}

	// Build outside the lock; the division is pure in (d, phi).
	quo, rem, err := v.domain.QuoRem(v.domain.Monomial(d), v.phi)
	if err != nil {
		// phi is monic, its leading coefficient is always a unit.
		panic(err)
	}

	qr = quoRemPair{quo: quo, rem: rem}

	v.mu.Lock()
	if prev, ok := v.monomQR[d]; ok {
		qr = prev
	} else {
		v.monomQR[d] = qr
	}
	v.mu.Unlock()

	return qr
}

// Coefficients returns the phi-adic expansion [f_0, f_1, ...] of f, so that
// f = sum_i f_i*phi^i with deg(f_i) < deg(phi). Each call yields a fresh
// single-pass sequence; the zero polynomial expands to the empty sequence.
func (v *DevelopingValuation) Coefficients(f *ring.Polynomial) (iter.Seq[*ring.Polynomial], error) {
	if err := v.checkDomain(f); err != nil {
		return nil, err
	}

	if v.phi.Degree() == 1 {
		list := v.linearCoefficients(f)

		return func(yield func(*ring.Polynomial) bool) {
			for _, c := range list {
				if !yield(c) {
					return
				}
			}
		}, nil
	}

	return v.iterCoefficients(f), nil
}

// linearCoefficients handles phi = x + c: the expansion of f in base phi is
// the ordinary coefficient list of f(x - c). Division by a linear key is a
// shift, so the whole expansion costs O(deg f).
func (v *DevelopingValuation) linearCoefficients(f *ring.Polynomial) []*ring.Polynomial {
	base := v.domain.BaseRing()

	shifted := v.domain.TaylorShift(f, base.Neg(v.phi.Coeff(0)))

	out := make([]*ring.Polynomial, 0, shifted.Degree()+1)
	for i := 0; i <= shifted.Degree(); i++ {
		// Coefficients pulled out of the shifted polynomial are lifted so an
		// inexact base ring does not leak truncated precision into the
		// reconstruction identity.
		out = append(out, v.domain.Constant(shifted.Coeff(i).Lift()))
	}

	return out
}

// iterCoefficients handles deg(phi) >= 2 by iterative division: the remainder
// of the running polynomial by phi is the next coefficient, the quotient is
// carried into the next round.
func (v *DevelopingValuation) iterCoefficients(f *ring.Polynomial) iter.Seq[*ring.Polynomial] {
	return func(yield func(*ring.Polynomial) bool) {
		cur := f
		for cur.Degree() >= 0 {
			quo, rem := v.quoRemByPhi(cur)
			if !yield(rem) {
				return
			}

			cur = quo
		}
	}
}

// quoRemByPhi divides f by phi through the monomial cache: writing
// f = sum_d c_d*x^d and x^d = q_d*phi + r_d, the quotient is sum_d c_d*q_d
// and the remainder sum_d c_d*r_d.
func (v *DevelopingValuation) quoRemByPhi(f *ring.Polynomial) (quo, rem *ring.Polynomial) {
	quo, rem = v.domain.Zero(), v.domain.Zero()

	for d := 0; d <= f.Degree(); d++ {
		c := f.Coeff(d)
		if c.IsZero() {
			continue
		}

		qr := v.quoRemMonomial(d)
		quo = v.domain.Add(quo, v.domain.MulScalar(qr.quo, c))
		rem = v.domain.Add(rem, v.domain.MulScalar(qr.rem, c))
	}

	return quo, rem
}

// Valuations delegates to the injected term-valuation capability. Concrete
// variants shadow this with their own weighting scheme.
func (v *DevelopingValuation) Valuations(f *ring.Polynomial) ([]Value, error) {
	if v.terms == nil {
		return nil, ErrNoTermValuer
	}

	return v.terms.Valuations(f)
}

// Evaluate returns the valuation of f: infinity for the zero polynomial,
// otherwise the minimum over the term valuations of the expansion.
func (v *DevelopingValuation) Evaluate(f *ring.Polynomial) (Value, error) {
	if err := v.checkDomain(f); err != nil {
		return Value{}, err
	}

	if f.IsZero() {
		return Infinity, nil
	}

	vals, err := v.Valuations(f)
	if err != nil {
		return Value{}, err
	}

	return MinValue(vals), nil
}

// EffectiveDegree returns the largest index i such that the valuation of
// f_i*phi^i equals the valuation of f (see [ML1936'] p.497). Among all terms
// achieving the minimum, ties break toward the highest phi-degree.
func (v *DevelopingValuation) EffectiveDegree(f *ring.Polynomial) (int, error) {
	if err := v.checkDomain(f); err != nil {
		return 0, err
	}

	if f.IsZero() {
		return 0, ErrZeroPolynomial
	}

	vals, err := v.Valuations(f)
	if err != nil {
		return 0, err
	}

	minVal := MinValue(vals)

	deg := 0
	for i, w := range vals {
		if w.Equal(minVal) {
			deg = i
		}
	}

	return deg, nil
}

// NewtonPolygon returns the lower convex hull of the points
// (i, valuation of f_i*phi^i).
func (v *DevelopingValuation) NewtonPolygon(f *ring.Polynomial) (*NewtonPolygon, error) {
	if err := v.checkDomain(f); err != nil {
		return nil, err
	}

	if f.IsZero() {
		return NewNewtonPolygon(nil), nil
	}

	vals, err := v.Valuations(f)
	if err != nil {
		return nil, err
	}

	return NewNewtonPolygon(vals), nil
}

// MakeMonicIntegral returns g unchanged when it is already monic with
// non-negative valuation. This base engine cannot rewrite anything else;
// richer variants that know how to rescale override it.
func (v *DevelopingValuation) MakeMonicIntegral(g *ring.Polynomial) (*ring.Polynomial, error) {
	if err := v.checkDomain(g); err != nil {
		return nil, err
	}

	if g.IsMonic() {
		val, err := v.Evaluate(g)
		if err != nil {
			return nil, err
		}

		if val.Sign() >= 0 {
			return g, nil
		}
	}

	return nil, fmt.Errorf("%w: %v under %v", ErrNotMonicIntegral, g, v)
}

func (v *DevelopingValuation) String() string {
	return fmt.Sprintf("`%v`-adic valuation of %v", v.phi, v.domain)
}
