package ring

import (
	"errors"
	"fmt"
)

// PolyRing is a univariate polynomial ring over a coefficient Ring. Two
// polynomials live in the same domain only if their parent PolyRing is the
// same instance.
type PolyRing struct {
	base    Ring
	varname string
}

func NewPolyRing(base Ring, varname string) *PolyRing {
	if varname == "" {
		varname = "x"
	}

	return &PolyRing{base: base, varname: varname}
}

func (r *PolyRing) BaseRing() Ring {
	return r.base
}

func (r *PolyRing) Varname() string {
	return r.varname
}

// trim drops trailing zeroes so that degree is len-1.
func (r *PolyRing) trim(coeffs []Elem) []Elem {
	i := len(coeffs)
	for i > 0 && coeffs[i-1].IsZero() {
		i--
	}

	return coeffs[:i]
}

func (r *PolyRing) FromElems(coeffs []Elem) *Polynomial {
	cp := make([]Elem, len(coeffs))
	copy(cp, coeffs)

	return &Polynomial{ring: r, coeffs: r.trim(cp)}
}

func (r *PolyRing) FromInts(coeffs ...int64) *Polynomial {
	elems := make([]Elem, len(coeffs))
	for i, c := range coeffs {
		elems[i] = r.base.FromInt(c)
	}

	return &Polynomial{ring: r, coeffs: r.trim(elems)}
}

func (r *PolyRing) Zero() *Polynomial {
	return &Polynomial{ring: r}
}

func (r *PolyRing) One() *Polynomial {
	return &Polynomial{ring: r, coeffs: []Elem{r.base.One()}}
}

func (r *PolyRing) Constant(c Elem) *Polynomial {
	return &Polynomial{ring: r, coeffs: r.trim([]Elem{c})}
}

// Gen returns the generator x of the ring.
func (r *PolyRing) Gen() *Polynomial {
	return r.Monomial(1)
}

// Monomial returns x^d.
func (r *PolyRing) Monomial(d int) *Polynomial {
	coeffs := make([]Elem, d+1)
	for i := 0; i < d; i++ {
		coeffs[i] = r.base.Zero()
	}
	coeffs[d] = r.base.One()

	return &Polynomial{ring: r, coeffs: coeffs}
}

func (r *PolyRing) check(p *Polynomial) {
	if p.ring != r {
		panic("ring: polynomial does not belong to this ring")
	}
}

func (r *PolyRing) Add(a, b *Polynomial) *Polynomial {
	r.check(a)
	r.check(b)

	n := max(len(a.coeffs), len(b.coeffs))
	out := make([]Elem, n)
	for i := 0; i < n; i++ {
		out[i] = r.base.Add(a.Coeff(i), b.Coeff(i))
	}

	return &Polynomial{ring: r, coeffs: r.trim(out)}
}

func (r *PolyRing) Sub(a, b *Polynomial) *Polynomial {
	r.check(a)
	r.check(b)

	n := max(len(a.coeffs), len(b.coeffs))
	out := make([]Elem, n)
	for i := 0; i < n; i++ {
		out[i] = r.base.Sub(a.Coeff(i), b.Coeff(i))
	}

	return &Polynomial{ring: r, coeffs: r.trim(out)}
}

func (r *PolyRing) Neg(a *Polynomial) *Polynomial {
	r.check(a)

	out := make([]Elem, len(a.coeffs))
	for i, c := range a.coeffs {
		out[i] = r.base.Neg(c)
	}

	return &Polynomial{ring: r, coeffs: out}
}

// Mul performs schoolbook convolution: out[i+j] += a[i]*b[j].
func (r *PolyRing) Mul(a, b *Polynomial) *Polynomial {
	r.check(a)
	r.check(b)

	if a.IsZero() || b.IsZero() {
		return r.Zero()
	}

	out := make([]Elem, len(a.coeffs)+len(b.coeffs)-1)
	for i := range out {
		out[i] = r.base.Zero()
	}

	for i, ai := range a.coeffs {
		if ai.IsZero() {
			continue
		}

		for j, bj := range b.coeffs {
			out[i+j] = r.base.Add(out[i+j], r.base.Mul(ai, bj))
		}
	}

	return &Polynomial{ring: r, coeffs: r.trim(out)}
}

func (r *PolyRing) MulScalar(a *Polynomial, c Elem) *Polynomial {
	r.check(a)

	out := make([]Elem, len(a.coeffs))
	for i, ai := range a.coeffs {
		out[i] = r.base.Mul(ai, c)
	}

	return &Polynomial{ring: r, coeffs: r.trim(out)}
}

// Pow computes a^n by repeated squaring.
func (r *PolyRing) Pow(a *Polynomial, n int) *Polynomial {
	r.check(a)
	if n < 0 {
		panic("ring: negative polynomial power")
	}

	res := r.One()
	sq := a
	for n > 0 {
		if n%2 == 1 {
			res = r.Mul(res, sq)
		}

		sq = r.Mul(sq, sq)
		n /= 2
	}

	return res
}

var (
	ErrDivisionByZero    = errors.New("polynomial division by zero")
	ErrLeadCoeffNotUnit  = errors.New("leading coefficient of the divisor is not a unit")
	ErrIncompatibleRings = errors.New("polynomial cannot be coerced into this ring")
)

// QuoRem returns q, rem such that a = q*b + rem with deg(rem) < deg(b).
//
// Following Algorithm 2.5 (Polynomial division with remainder) in
// `Modern Computer Algebra` by Joachim von zur Gathen and Jürgen Gerhard.
func (r *PolyRing) QuoRem(a, b *Polynomial) (q, rem *Polynomial, err error) {
	r.check(a)
	r.check(b)

	if b.IsZero() {
		return nil, nil, ErrDivisionByZero
	}

	u, err := r.base.Inverse(b.LeadCoeff())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrLeadCoeffNotUnit, b.LeadCoeff())
	}

	n, m := a.Degree(), b.Degree()
	if n < m {
		return r.Zero(), a.Copy(), nil
	}

	remc := make([]Elem, len(a.coeffs))
	copy(remc, a.coeffs)

	qc := make([]Elem, n-m+1)
	for i := range qc {
		qc[i] = r.base.Zero()
	}

	for i := n - m; i >= 0; i-- {
		lead := remc[m+i]
		if lead.IsZero() {
			continue
		}

		qi := r.base.Mul(lead, u)
		qc[i] = qi

		// rem -= qi * x^i * b
		for j := 0; j <= m; j++ {
			remc[i+j] = r.base.Sub(remc[i+j], r.base.Mul(qi, b.coeffs[j]))
		}
	}

	q = &Polynomial{ring: r, coeffs: r.trim(qc)}
	rem = &Polynomial{ring: r, coeffs: r.trim(remc[:m])}

	return q, rem, nil
}

// TaylorShift returns f(x + c), computed by Horner's rule on the linear
// substitution.
func (r *PolyRing) TaylorShift(f *Polynomial, c Elem) *Polynomial {
	r.check(f)

	if f.IsZero() {
		return r.Zero()
	}

	shift := r.FromElems([]Elem{c, r.base.One()}) // x + c

	res := r.Constant(f.coeffs[len(f.coeffs)-1])
	for i := len(f.coeffs) - 2; i >= 0; i-- {
		res = r.Add(r.Mul(res, shift), r.Constant(f.coeffs[i]))
	}

	return res
}

// Coerce maps f into this ring: the identity when f already lives here, a
// re-parenting when f's base ring is the same instance, an error otherwise.
func (r *PolyRing) Coerce(f *Polynomial) (*Polynomial, error) {
	if f.ring == r {
		return f, nil
	}

	if f.ring.base == r.base {
		return &Polynomial{ring: r, coeffs: r.trim(append([]Elem(nil), f.coeffs...))}, nil
	}

	return nil, fmt.Errorf("%w: %v into %v", ErrIncompatibleRings, f.ring, r)
}

func (r *PolyRing) String() string {
	return fmt.Sprintf("%s[%s]", r.base, r.varname)
}
