// Package ring provides the coefficient rings and the univariate polynomial
// arithmetic that the valuation engine is built on.
package ring

// Elem is a single coefficient. Concrete element types belong to exactly one
// Ring implementation; mixing elements of different rings panics.
type Elem interface {
	IsZero() bool

	// Lift returns the element at the maximal precision its ring can
	// represent. For exact rings this is the identity.
	Lift() Elem

	String() string
}

// Ring is a commutative coefficient ring. Implementations own their element
// representation and type-assert the Elem values handed to them.
type Ring interface {
	Zero() Elem
	One() Elem
	FromInt(n int64) Elem

	Add(a, b Elem) Elem
	Sub(a, b Elem) Elem
	Neg(a Elem) Elem
	Mul(a, b Elem) Elem

	// Inverse returns a^-1, or an error if a is not a unit.
	Inverse(a Elem) (Elem, error)

	Equal(a, b Elem) bool

	// IsExact reports whether elements carry no precision information.
	IsExact() bool
	IsField() bool

	String() string
}
