package maclane

import (
	"errors"
	"fmt"

	"github.com/jonathanmweiss/go-maclane/ring"
)

// AugmentedValuation extends a prior valuation v by a key polynomial phi with
// an assigned value mu > v(phi): the term f_i*phi^i is valued at
// v(f_i) + i*mu.
type AugmentedValuation struct {
	*DevelopingValuation

	prev  Valuation
	muVal Value
}

var ErrAssignedValueTooSmall = errors.New("assigned value must exceed the prior valuation of the key polynomial")

func NewAugmentedValuation(prev Valuation, phi *ring.Polynomial, mu Value) (*AugmentedValuation, error) {
	a := &AugmentedValuation{prev: prev, muVal: mu}

	dv, err := NewDevelopingValuation(prev.Domain(), phi, a)
	if err != nil {
		return nil, err
	}

	prevOfPhi, err := prev.Evaluate(dv.Phi())
	if err != nil {
		return nil, err
	}

	if mu.Cmp(prevOfPhi) <= 0 {
		return nil, fmt.Errorf("%w: v(%v) = %v, assigned %v", ErrAssignedValueTooSmall, dv.Phi(), prevOfPhi, mu)
	}

	a.DevelopingValuation = dv

	return a, nil
}

// Prev returns the valuation this one augments.
func (v *AugmentedValuation) Prev() Valuation { return v.prev }

// Mu returns the assigned value of the key polynomial.
func (v *AugmentedValuation) Mu() Value { return v.muVal }

func (v *AugmentedValuation) Valuations(f *ring.Polynomial) ([]Value, error) {
	if err := v.checkDomain(f); err != nil {
		return nil, err
	}

	coeffs, err := v.Coefficients(f)
	if err != nil {
		return nil, err
	}

	var vals []Value

	i := int64(0)
	for c := range coeffs {
		if c.IsZero() {
			vals = append(vals, Infinity)
		} else {
			w, err := v.prev.Evaluate(c)
			if err != nil {
				return nil, err
			}

			// the constant term carries no factor of phi, so mu never
			// contributes to it, not even an infinite mu
			if i > 0 {
				w = w.Add(v.muVal.MulInt(i))
			}

			vals = append(vals, w)
		}

		i++
	}

	return vals, nil
}

// Extension augments this valuation one level further.
func (v *AugmentedValuation) Extension(phi *ring.Polynomial, mu Value) (*AugmentedValuation, error) {
	return NewAugmentedValuation(v, phi, mu)
}

func (v *AugmentedValuation) String() string {
	return fmt.Sprintf("[ %v, v(%v) = %v ]", v.prev, v.Phi(), v.muVal)
}
