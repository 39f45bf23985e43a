// Package builtins implements the fixed built-in function table of spec
// §4.5: sin, cos, tan, exp, log, sqrt, abs, floor, ceil, norm, inv. Each
// follows the teacher's floating-fallback idiom (value/sqrt.go,
// value/log.go, value/sin.go computed a result over BigFloat when no
// exact form exists) but dispatches over float64 via the standard math
// package, since the spec's own Non-goals exclude arbitrary-precision
// transcendentals.
package builtins

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/DinaGala/computor-v2/config"
	"github.com/DinaGala/computor-v2/errs"
	"github.com/DinaGala/computor-v2/rational"
	"github.com/DinaGala/computor-v2/value"
)

// Names lists every built-in in table order.
var Names = []string{"sin", "cos", "tan", "exp", "log", "sqrt", "abs", "floor", "ceil", "norm", "inv"}

// IsBuiltin reports whether name is one of the fixed built-ins.
func IsBuiltin(name string) bool {
	_, ok := table[name]
	return ok
}

// Call dispatches to the named built-in. cfg supplies the angle mode
// consulted by sin/cos/tan. Panics with an *errs.Error on domain/type
// violations, following every other package in this repo.
func Call(name string, arg value.Value, cfg *config.Config) value.Value {
	fn, ok := table[name]
	if !ok {
		errs.Raise(errs.Name, "undefined function %q", name)
	}
	return fn(arg, cfg)
}

var table = map[string]func(value.Value, *config.Config) value.Value{
	"sin":   trig(math.Sin),
	"cos":   trig(math.Cos),
	"tan":   trig(math.Tan),
	"exp":   unaryFloat(math.Exp),
	"log":   unaryFloat(logDomain),
	"sqrt":  sqrtFn,
	"abs":   absFn,
	"floor": roundFn(math.Floor),
	"ceil":  roundFn(math.Ceil),
	"norm":  normFn,
	"inv":   invFn,
}

func logDomain(f float64) float64 {
	if f <= 0 {
		errs.Raise(errs.Domain, "log is undefined for non-positive values")
	}
	return math.Log(f)
}

// asFloat64 extracts the scalar value as a float64, accepting Rational or
// Complex with zero imaginary part (the math/exp/log/sqrt domain is real).
func asFloat64(v value.Value) (float64, bool) {
	switch t := v.(type) {
	case value.Rational:
		return t.Float64(), true
	case value.Complex:
		if t.Im.IsZero() {
			return t.Re.Float64(), true
		}
	}
	return 0, false
}

// trig wraps a real trig function, consulting the angle mode to convert
// degrees to radians before calling it (spec §4.5).
func trig(f func(float64) float64) func(value.Value, *config.Config) value.Value {
	return func(v value.Value, cfg *config.Config) value.Value {
		x, ok := asFloat64(v)
		if !ok {
			errs.Raise(errs.Type, "trigonometric functions require a real argument")
		}
		if cfg.AngleMode() == config.Degrees {
			x = x * math.Pi / 180
		}
		return value.Rational{Rational: rational.FromFloat64(f(x))}
	}
}

func unaryFloat(f func(float64) float64) func(value.Value, *config.Config) value.Value {
	return func(v value.Value, _ *config.Config) value.Value {
		x, ok := asFloat64(v)
		if !ok {
			errs.Raise(errs.Type, "this function requires a real or pure-real-complex argument")
		}
		return value.Rational{Rational: rational.FromFloat64(f(x))}
	}
}

func roundFn(f func(float64) float64) func(value.Value, *config.Config) value.Value {
	return func(v value.Value, _ *config.Config) value.Value {
		r, ok := v.(value.Rational)
		if !ok {
			errs.Raise(errs.Type, "floor/ceil require a Rational with zero imaginary component")
		}
		rounded := f(r.Float64())
		return value.Rational{Rational: rational.FromFloat64(rounded)}
	}
}

// sqrtFn implements the principal square root per spec §4.5: exact
// rational root when possible, negative Rational promotes to Complex,
// Complex argument uses the complex principal square root.
func sqrtFn(v value.Value, _ *config.Config) value.Value {
	switch t := v.(type) {
	case value.Rational:
		if t.IsNegative() {
			root, exact := t.Neg().SqrtExact()
			if !exact {
				root = rational.FromFloat64(math.Sqrt(-t.Float64()))
			}
			return value.NewComplex(rational.Zero, root)
		}
		if root, exact := t.SqrtExact(); exact {
			return value.Rational{Rational: root}
		}
		return value.Rational{Rational: rational.FromFloat64(math.Sqrt(t.Float64()))}
	case value.Complex:
		return complexSqrt(t)
	}
	errs.Raise(errs.Type, "sqrt is undefined for this operand type")
	panic("unreachable")
}

// complexSqrt computes the principal square root of a+bi via the standard
// closed-form re/im formula, promoting to float when an exact rational
// root of the intermediate magnitude is unavailable.
func complexSqrt(c value.Complex) value.Value {
	mag := value.MagnitudeSquared(c)
	var modulus rational.Rational
	if root, exact := mag.SqrtExact(); exact {
		modulus = root
	} else {
		modulus = rational.FromFloat64(math.Sqrt(mag.Float64()))
	}
	twoRe := modulus.Add(c.Re)
	re2 := twoRe.Div(rational.FromInt64(2))
	var re rational.Rational
	if root, exact := re2.SqrtExact(); exact {
		re = root
	} else {
		re = rational.FromFloat64(math.Sqrt(re2.Float64()))
	}
	im2 := modulus.Sub(c.Re).Div(rational.FromInt64(2))
	var im rational.Rational
	if root, exact := im2.SqrtExact(); exact {
		im = root
	} else {
		im = rational.FromFloat64(math.Sqrt(im2.Float64()))
	}
	if c.Im.IsNegative() {
		im = im.Neg()
	}
	return value.NewComplex(re, im)
}

// absFn implements spec §4.5: Rational magnitude, Complex modulus, Matrix
// is unsupported (use norm).
func absFn(v value.Value, _ *config.Config) value.Value {
	switch v.(type) {
	case value.Rational, value.Complex:
		mag := value.MagnitudeSquared(v)
		if root, exact := mag.SqrtExact(); exact {
			return value.Rational{Rational: root}
		}
		return value.Rational{Rational: rational.FromFloat64(math.Sqrt(mag.Float64()))}
	}
	errs.Raise(errs.Type, "abs is undefined for matrices; use norm")
	panic("unreachable")
}

// normFn implements spec §4.5: scalar behaves as abs, vector shape (1xn
// or nx1) and general matrix both use the Frobenius norm. The floating
// fallback path (no exact rational root of the sum of squares) computes
// the norm with gonum/floats rather than a hand-rolled sqrt, per
// SPEC_FULL §11.
func normFn(v value.Value, cfg *config.Config) value.Value {
	m, ok := v.(value.Matrix)
	if !ok {
		return absFn(v, cfg)
	}
	sumSq := value.FrobeniusSquared(m)
	if root, exact := sumSq.SqrtExact(); exact {
		return value.Rational{Rational: root}
	}
	cells := make([]float64, len(m.Data))
	for i, cell := range m.Data {
		cells[i] = math.Sqrt(value.MagnitudeSquared(cell).Float64())
	}
	return value.Rational{Rational: rational.FromFloat64(floats.Norm(cells, 2))}
}

func invFn(v value.Value, _ *config.Config) value.Value {
	m, ok := v.(value.Matrix)
	if !ok {
		errs.Raise(errs.Type, "inv requires a matrix argument")
	}
	return m.Inverse()
}
