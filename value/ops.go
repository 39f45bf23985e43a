package value

import "github.com/DinaGala/computor-v2/rational"

// Add, Sub, Mul, Div, and Pow implement the promotion table from spec
// §4.3. Each follows the same shape as the teacher's value.Binary: widen
// both operands to a common kind, then dispatch to the kind-specific
// implementation, following the table in the spec rather than ivy's own
// {Int, BigInt, BigRat, Vector, Matrix} lattice.

// Add implements +.
func Add(a, b Value) Value {
	switch x := a.(type) {
	case Rational:
		switch y := b.(type) {
		case Rational:
			return Rational{x.Rational.Add(y.Rational)}
		case Complex:
			return collapse(asComplex(x).addC(y))
		case Matrix:
			panicType("+ : rational + matrix is not defined")
		}
	case Complex:
		switch y := b.(type) {
		case Rational:
			return collapse(x.addC(asComplex(y)))
		case Complex:
			return collapse(x.addC(y))
		case Matrix:
			panicType("+ : complex + matrix is not defined")
		}
	case Matrix:
		if y, ok := b.(Matrix); ok {
			return x.addM(y)
		}
		panicType("+ : matrix + scalar is not defined")
	}
	panicType("+ : unsupported operand types")
	return nil
}

// Sub implements -.
func Sub(a, b Value) Value {
	switch x := a.(type) {
	case Rational:
		switch y := b.(type) {
		case Rational:
			return Rational{x.Rational.Sub(y.Rational)}
		case Complex:
			return collapse(asComplex(x).subC(y))
		case Matrix:
			panicType("- : rational - matrix is not defined")
		}
	case Complex:
		switch y := b.(type) {
		case Rational:
			return collapse(x.subC(asComplex(y)))
		case Complex:
			return collapse(x.subC(y))
		case Matrix:
			panicType("- : complex - matrix is not defined")
		}
	case Matrix:
		if y, ok := b.(Matrix); ok {
			return x.subM(y)
		}
		panicType("- : matrix - scalar is not defined")
	}
	panicType("- : unsupported operand types")
	return nil
}

// Mul implements *, including scalar-matrix broadcast in both orders.
func Mul(a, b Value) Value {
	switch x := a.(type) {
	case Rational:
		switch y := b.(type) {
		case Rational:
			return Rational{x.Rational.Mul(y.Rational)}
		case Complex:
			return collapse(asComplex(x).mulC(y))
		case Matrix:
			return y.scale(x)
		}
	case Complex:
		switch y := b.(type) {
		case Rational:
			return collapse(x.mulC(asComplex(y)))
		case Complex:
			return collapse(x.mulC(y))
		case Matrix:
			return y.scale(x)
		}
	case Matrix:
		switch y := b.(type) {
		case Matrix:
			return x.mulM(y)
		case Rational, Complex:
			return x.scale(y)
		}
	}
	panicType("* : unsupported operand types")
	return nil
}

// Div implements /.
func Div(a, b Value) Value {
	switch x := a.(type) {
	case Rational:
		switch y := b.(type) {
		case Rational:
			return Rational{x.Rational.Div(y.Rational)}
		case Complex:
			return collapse(asComplex(x).divC(y))
		case Matrix:
			panicType("/ : scalar / matrix is not defined")
		}
	case Complex:
		switch y := b.(type) {
		case Rational:
			return collapse(x.divC(asComplex(y)))
		case Complex:
			return collapse(x.divC(y))
		case Matrix:
			panicType("/ : complex / matrix is not defined")
		}
	case Matrix:
		switch y := b.(type) {
		case Rational, Complex:
			return x.divScalar(y)
		case Matrix:
			panicType("/ : matrix / matrix is not defined; use inv()")
		}
	}
	panicType("/ : unsupported operand types")
	return nil
}

// Pow implements ^. The exponent must evaluate to an integer Rational
// (spec §4.3): its denominator must be 1.
func Pow(a, b Value) Value {
	exp, ok := b.(Rational)
	if !ok {
		panicType("^ : exponent must be a rational number")
	}
	if !exp.Rational.IsInt() {
		errsDomainNonIntegerExponent()
	}
	n, _ := exp.Rational.Int64()
	switch x := a.(type) {
	case Rational:
		if n < 0 && x.Rational.IsZero() {
			panicDomain("zero cannot be raised to a negative power")
		}
		return Rational{x.Rational.Pow(n)}
	case Complex:
		if n < 0 {
			panicDomain("complex power requires a non-negative integer exponent")
		}
		return collapse(x.powIntC(n))
	case Matrix:
		return x.powInt(n)
	}
	panicType("^ : unsupported base type")
	return nil
}

// Neg implements unary negation as 0 - v (spec §4.4: "Neg(e) => 0 - eval(e)
// using the algebra, so Neg inherits promotion").
func Neg(v Value) Value {
	return Sub(Zero, v)
}

func errsDomainNonIntegerExponent() {
	panicDomain("exponent must be an integer")
}

// asComplex embeds a Rational as a Complex with zero imaginary part,
// implementing the Rational -> Complex promotion step of spec §3.
func asComplex(r Rational) Complex {
	return Complex{Re: r.Rational, Im: rational.Zero}
}
