package ring

import (
	"strconv"
	"strings"
)

// Polynomial is a dense univariate polynomial. Coefficients are ordered from
// lowest to highest degree and the slice carries no trailing zeroes, so the
// zero polynomial has an empty coefficient slice and degree -1.
//
// A polynomial belongs to exactly one PolyRing; domain membership throughout
// this module is pointer identity of the parent ring.
type Polynomial struct {
	ring   *PolyRing
	coeffs []Elem
}

func (p *Polynomial) Ring() *PolyRing { return p.ring }

func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

func (p *Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

func (p *Polynomial) IsConstant() bool {
	return len(p.coeffs) <= 1
}

func (p *Polynomial) IsMonic() bool {
	if p.IsZero() {
		return false
	}

	base := p.ring.base

	return base.Equal(p.coeffs[len(p.coeffs)-1], base.One())
}

// Coeff returns the coefficient of x^i, the base ring's zero beyond the
// degree.
func (p *Polynomial) Coeff(i int) Elem {
	if i < 0 || i >= len(p.coeffs) {
		return p.ring.base.Zero()
	}

	return p.coeffs[i]
}

func (p *Polynomial) LeadCoeff() Elem {
	if p.IsZero() {
		return p.ring.base.Zero()
	}

	return p.coeffs[len(p.coeffs)-1]
}

func (p *Polynomial) Equal(q *Polynomial) bool {
	if p.ring != q.ring || len(p.coeffs) != len(q.coeffs) {
		return false
	}

	for i := range p.coeffs {
		if !p.ring.base.Equal(p.coeffs[i], q.coeffs[i]) {
			return false
		}
	}

	return true
}

func (p *Polynomial) Copy() *Polynomial {
	cp := make([]Elem, len(p.coeffs))
	copy(cp, p.coeffs)

	return &Polynomial{ring: p.ring, coeffs: cp}
}

// Lift lifts every coefficient to maximal precision.
func (p *Polynomial) Lift() *Polynomial {
	cp := make([]Elem, len(p.coeffs))
	for i, c := range p.coeffs {
		cp[i] = c.Lift()
	}

	return &Polynomial{ring: p.ring, coeffs: cp}
}

func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}

	x := p.ring.varname

	bldr := strings.Builder{}
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if p.coeffs[i].IsZero() {
			continue
		}

		if bldr.Len() > 0 {
			bldr.WriteString(" + ")
		}

		one := p.ring.base.Equal(p.coeffs[i], p.ring.base.One())
		if !one || i == 0 {
			bldr.WriteString(p.coeffs[i].String())
		}

		switch {
		case i == 0:
		case i == 1:
			if !one {
				bldr.WriteString("*")
			}
			bldr.WriteString(x)
		default:
			if !one {
				bldr.WriteString("*")
			}
			bldr.WriteString(x)
			bldr.WriteString("^")
			bldr.WriteString(strconv.Itoa(i))
		}
	}

	return bldr.String()
}
