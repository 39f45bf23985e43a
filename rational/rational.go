// Package rational implements exact arbitrary-precision rational numbers,
// following the teacher's value.BigRat: a normalized wrapper around
// math/big, re-reduced after every construction.
package rational

import (
	"errors"
	"math/big"

	"github.com/DinaGala/computor-v2/errs"
)

// errZeroDivisor is the underlying cause wrapped into every DomainError
// raised for a zero denominator or divisor, distinguishing "caller passed a
// zero divisor" from any other Domain failure at the errs.Error.Unwrap level.
var errZeroDivisor = errors.New("zero denominator or divisor")

// Rational is an exact fraction num/den with den > 0 and gcd(|num|, den) = 1.
// approx marks a value produced from a float64 (a transcendental's binary
// floating-point approximation, per spec §9's "distinguished approximate
// constructor"); it only affects rendering, never arithmetic.
type Rational struct {
	r      *big.Rat
	approx bool
}

// Zero is the additive identity.
var Zero = Rational{r: big.NewRat(0, 1)}

// One is the multiplicative identity.
var One = Rational{r: big.NewRat(1, 1)}

// FromInt64 builds an exact integer Rational.
func FromInt64(n int64) Rational {
	return Rational{r: big.NewRat(n, 1)}
}

// FromInts builds num/den, normalizing and reducing. den must not be zero.
func FromInts(num, den int64) Rational {
	if den == 0 {
		errs.RaiseWrap(errZeroDivisor, errs.Domain, "division by zero")
	}
	return Rational{r: big.NewRat(num, den)}
}

// FromBigInts builds num/den from arbitrary-precision integers.
func FromBigInts(num, den *big.Int) Rational {
	if den.Sign() == 0 {
		errs.RaiseWrap(errZeroDivisor, errs.Domain, "division by zero")
	}
	r := new(big.Rat).SetFrac(num, den)
	return Rational{r: r}
}

// FromDecimalDigits builds the exact rational digits/10^fracLen, as the
// lexer does for a decimal literal like "3.14" (digits="314", fracLen=2).
func FromDecimalDigits(digits string, fracLen int) (Rational, bool) {
	num, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Rational{}, false
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(fracLen)), nil)
	return Rational{r: new(big.Rat).SetFrac(num, den)}, true
}

// FromString parses an integer or num/den literal.
func FromString(s string) (Rational, bool) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, false
	}
	return Rational{r: r}, true
}

// FromFloat64 builds the exact binary-fraction Rational equal to f, tagged
// as an approximation for rendering purposes. This is how transcendental
// built-ins (§4.5) represent a "binary floating approximation" (§9) within
// the Rational type rather than introducing a separate Value variant.
func FromFloat64(f float64) Rational {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		errs.Raise(errs.Domain, "value has no finite binary representation")
	}
	return Rational{r: r, approx: true}
}

// IsApprox reports whether this value is a floating approximation rather
// than an exact result.
func (a Rational) IsApprox() bool { return a.approx }

// Num and Den return the reduced numerator and denominator.
func (a Rational) Num() *big.Int { return a.r.Num() }
func (a Rational) Den() *big.Int { return a.r.Denom() }

// IsInt reports whether the denominator is 1.
func (a Rational) IsInt() bool { return a.r.IsInt() }

// Int64 returns the value as an int64 when it is an exact integer small
// enough to fit; ok is false otherwise.
func (a Rational) Int64() (n int64, ok bool) {
	if !a.IsInt() {
		return 0, false
	}
	if !a.r.Num().IsInt64() {
		return 0, false
	}
	return a.r.Num().Int64(), true
}

// Float64 returns the nearest binary float64 approximation (spec §3:
// "conversion to binary float").
func (a Rational) Float64() float64 {
	f, _ := a.r.Float64()
	return f
}

func wrap(r *big.Rat, approx bool) Rational { return Rational{r: r, approx: approx} }

// Add returns a + b.
func (a Rational) Add(b Rational) Rational {
	return wrap(new(big.Rat).Add(a.r, b.r), a.approx || b.approx)
}

// Sub returns a - b.
func (a Rational) Sub(b Rational) Rational {
	return wrap(new(big.Rat).Sub(a.r, b.r), a.approx || b.approx)
}

// Mul returns a * b.
func (a Rational) Mul(b Rational) Rational {
	return wrap(new(big.Rat).Mul(a.r, b.r), a.approx || b.approx)
}

// Div returns a / b. Panics with a DomainError if b is zero.
func (a Rational) Div(b Rational) Rational {
	if b.IsZero() {
		errs.RaiseWrap(errZeroDivisor, errs.Domain, "division by zero")
	}
	return wrap(new(big.Rat).Quo(a.r, b.r), a.approx || b.approx)
}

// Neg returns -a.
func (a Rational) Neg() Rational {
	return wrap(new(big.Rat).Neg(a.r), a.approx)
}

// Pow returns a raised to the integer power n. Negative n requires a != 0.
func (a Rational) Pow(n int64) Rational {
	if n == 0 {
		return One
	}
	if n < 0 {
		if a.IsZero() {
			errs.Raise(errs.Domain, "zero cannot be raised to a negative power")
		}
		return a.Pow(-n).Inverse()
	}
	result := One
	base := a
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	result.approx = a.approx
	return result
}

// Inverse returns 1/a. Panics with a DomainError if a is zero.
func (a Rational) Inverse() Rational {
	if a.IsZero() {
		errs.RaiseWrap(errZeroDivisor, errs.Domain, "division by zero")
	}
	return wrap(new(big.Rat).Inv(a.r), a.approx)
}

// IsZero reports whether a == 0.
func (a Rational) IsZero() bool { return a.r.Sign() == 0 }

// IsNegative reports whether a < 0.
func (a Rational) IsNegative() bool { return a.r.Sign() < 0 }

// Sign returns -1, 0, or 1.
func (a Rational) Sign() int { return a.r.Sign() }

// Cmp compares a to b: -1, 0, or 1.
func (a Rational) Cmp(b Rational) int { return a.r.Cmp(b.r) }

// Equal reports whether a == b.
func (a Rational) Equal(b Rational) bool { return a.r.Cmp(b.r) == 0 }

// Abs returns the magnitude of a.
func (a Rational) Abs() Rational {
	if a.IsNegative() {
		return a.Neg()
	}
	return a
}

// SqrtExact returns (sqrt(a), true) when a is non-negative and a perfect
// square of rationals (both numerator and denominator are perfect squares
// of integers after reduction); otherwise (_, false).
func (a Rational) SqrtExact() (Rational, bool) {
	if a.IsNegative() {
		return Rational{}, false
	}
	numRoot, ok := isqrt(a.Num())
	if !ok {
		return Rational{}, false
	}
	denRoot, ok := isqrt(a.Den())
	if !ok {
		return Rational{}, false
	}
	return wrap(new(big.Rat).SetFrac(numRoot, denRoot), a.approx), true
}

// isqrt returns the exact integer square root of n and whether n is a
// perfect square.
func isqrt(n *big.Int) (*big.Int, bool) {
	if n.Sign() < 0 {
		return nil, false
	}
	root := new(big.Int).Sqrt(n)
	check := new(big.Int).Mul(root, root)
	if check.Cmp(n) != 0 {
		return nil, false
	}
	return root, true
}
