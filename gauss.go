package maclane

import (
	"errors"
	"fmt"

	"github.com/jonathanmweiss/go-maclane/ring"
)

// BaseValuation is a discrete valuation on a coefficient ring, the seed a
// Gauss valuation lifts to the polynomial ring above it.
type BaseValuation interface {
	Ring() ring.Ring

	// Value returns the valuation of c, Infinity exactly for c = 0.
	Value(c ring.Elem) Value
}

type padicBase struct {
	r *ring.PadicRing
}

// NewPadicValuation is the p-adic valuation on a capped-precision p-adic
// ring.
func NewPadicValuation(r *ring.PadicRing) BaseValuation {
	return padicBase{r: r}
}

func (b padicBase) Ring() ring.Ring { return b.r }

func (b padicBase) Value(c ring.Elem) Value {
	v, finite := b.r.Valuation(c)
	if !finite {
		return Infinity
	}

	return ValueOf(int64(v))
}

type rationalPadicBase struct {
	q *ring.Rationals
	p uint64
}

// NewRationalPadicValuation is the p-adic valuation v_p on the rationals.
func NewRationalPadicValuation(q *ring.Rationals, p uint64) BaseValuation {
	return rationalPadicBase{q: q, p: p}
}

func (b rationalPadicBase) Ring() ring.Ring { return b.q }

func (b rationalPadicBase) Value(c ring.Elem) Value {
	v, finite := b.q.PadicValuation(c, b.p)
	if !finite {
		return Infinity
	}

	return ValueOf(int64(v))
}

type trivialBase struct {
	r ring.Ring
}

// NewTrivialValuation assigns zero to every non-zero element, the base
// valuation for function-field style valuations over exact fields.
func NewTrivialValuation(r ring.Ring) BaseValuation {
	return trivialBase{r: r}
}

func (b trivialBase) Ring() ring.Ring { return b.r }

func (b trivialBase) Value(c ring.Elem) Value {
	if c.IsZero() {
		return Infinity
	}

	return Value{}
}

// GaussValuation extends a base valuation v0 to the polynomial ring by
// v(sum a_i x^i) = min v0(a_i). Its key polynomial is the generator x, so
// the phi-adic coefficients are the ordinary ones and each term valuation is
// the base valuation of a constant.
type GaussValuation struct {
	*DevelopingValuation
	base BaseValuation
}

var ErrBaseRingMismatch = errors.New("base valuation is not defined on the coefficient ring of the domain")

func NewGaussValuation(domain *ring.PolyRing, base BaseValuation) (*GaussValuation, error) {
	if base.Ring() != domain.BaseRing() {
		return nil, fmt.Errorf("%w: %v vs %v", ErrBaseRingMismatch, base.Ring(), domain.BaseRing())
	}

	g := &GaussValuation{base: base}

	dv, err := NewDevelopingValuation(domain, domain.Gen(), g)
	if err != nil {
		return nil, err
	}

	g.DevelopingValuation = dv

	return g, nil
}

func (v *GaussValuation) Valuations(f *ring.Polynomial) ([]Value, error) {
	if err := v.checkDomain(f); err != nil {
		return nil, err
	}

	vals := make([]Value, f.Degree()+1)
	for i := range vals {
		vals[i] = v.base.Value(f.Coeff(i))
	}

	return vals, nil
}

// Extension augments this valuation with a new key polynomial phi of assigned
// value mu.
func (v *GaussValuation) Extension(phi *ring.Polynomial, mu Value) (*AugmentedValuation, error) {
	return NewAugmentedValuation(v, phi, mu)
}

func (v *GaussValuation) String() string {
	return fmt.Sprintf("Gauss valuation on %v", v.Domain())
}
