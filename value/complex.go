package value

import "github.com/DinaGala/computor-v2/rational"

// Complex is a pair of Rationals (re, im). A Complex with im == 0 is
// always collapsed back to a Rational before being handed back to a
// caller (spec §3, "Collapse"); Complex values that escape this package
// therefore always have a nonzero imaginary part.
type Complex struct {
	Re, Im rational.Rational
}

func (Complex) isValue() {}

// NewComplex builds a Complex from two Rationals, without collapsing.
// Callers that want the collapse rule applied should use collapse.
func NewComplex(re, im rational.Rational) Complex {
	return Complex{Re: re, Im: im}
}

// collapse returns a Rational when c.Im is exactly zero, else c itself.
func collapse(c Complex) Value {
	if c.Im.IsZero() {
		return Rational{c.Re}
	}
	return c
}

func (c Complex) addC(d Complex) Complex {
	return Complex{c.Re.Add(d.Re), c.Im.Add(d.Im)}
}

func (c Complex) subC(d Complex) Complex {
	return Complex{c.Re.Sub(d.Re), c.Im.Sub(d.Im)}
}

func (c Complex) mulC(d Complex) Complex {
	re := c.Re.Mul(d.Re).Sub(c.Im.Mul(d.Im))
	im := c.Re.Mul(d.Im).Add(c.Im.Mul(d.Re))
	return Complex{re, im}
}

// divC divides c by d. Panics with a DomainError if d is zero.
func (c Complex) divC(d Complex) Complex {
	if d.Re.IsZero() && d.Im.IsZero() {
		panicDomain("complex division by zero")
	}
	denom := d.Re.Mul(d.Re).Add(d.Im.Mul(d.Im))
	re := c.Re.Mul(d.Re).Add(c.Im.Mul(d.Im)).Div(denom)
	im := c.Im.Mul(d.Re).Sub(c.Re.Mul(d.Im)).Div(denom)
	return Complex{re, im}
}

func (c Complex) negC() Complex {
	return Complex{c.Re.Neg(), c.Im.Neg()}
}

// powIntC raises c to a non-negative integer power by repeated squaring.
func (c Complex) powIntC(n int64) Complex {
	result := Complex{rational.One, rational.Zero}
	base := c
	for n > 0 {
		if n&1 == 1 {
			result = result.mulC(base)
		}
		base = base.mulC(base)
		n >>= 1
	}
	return result
}

// magnitudeSquared returns re^2 + im^2 as a Rational.
func (c Complex) magnitudeSquared() rational.Rational {
	return c.Re.Mul(c.Re).Add(c.Im.Mul(c.Im))
}
