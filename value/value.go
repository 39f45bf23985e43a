// Package value implements the tagged-union Value algebra: Rational,
// Complex, Matrix, and Function, with the cross-type promotion rules from
// spec §3-4.3. It follows the shape of the teacher's value package (a
// closed set of concrete types satisfying a common interface, dispatched
// through small per-type op tables) adapted from ivy's {Int, BigInt,
// BigRat, Vector, Matrix} lattice to this spec's {Rational, Complex,
// Matrix, Function} lattice.
package value

import (
	"github.com/DinaGala/computor-v2/ast"
	"github.com/DinaGala/computor-v2/config"
	"github.com/DinaGala/computor-v2/rational"
)

// Value is satisfied by every runtime value the evaluator can produce.
// Sprint renders a value honoring a presentation config (float precision,
// output base); String renders it at the default precision and base,
// following the teacher's split between Value.String (debug) and
// Value.Sprint(conf) (config-aware REPL output).
type Value interface {
	String() string
	Sprint(cfg *config.Config) string
	isValue()
}

// Rational is an exact fraction, promoted to Complex or Matrix as needed.
type Rational struct {
	rational.Rational
}

func (Rational) isValue() {}

// NewRational wraps a rational.Rational as a Value.
func NewRational(r rational.Rational) Rational { return Rational{r} }

// String renders r at the default precision and base (§6).
func (r Rational) String() string {
	return r.Rational.String()
}

// Sprint renders r honoring cfg's FloatSigFigs/OutputBase (SPEC_FULL §10).
func (r Rational) Sprint(cfg *config.Config) string {
	return r.Rational.Format(cfg.FloatSigFigs(), cfg.OutputBase())
}

// Function is a user-defined single-argument mapping: a formal parameter
// name and an AST body, evaluated in a child scope at call time (spec
// §3: "Function").
type Function struct {
	Param string
	Body  ast.Expr
}

func (Function) isValue() {}

func (f Function) String() string {
	return f.Param + " -> " + f.Body.String()
}

// Sprint renders f the same way as String: a function's rendering has no
// numeric format or base to honor.
func (f Function) Sprint(*config.Config) string {
	return f.String()
}

// Zero and One are the Rational identities, used throughout the algebra
// and by the polynomial solver.
var (
	Zero = Rational{rational.Zero}
	One  = Rational{rational.One}
)

// IsZero reports whether v is the exact zero value: Rational 0, or a
// Complex with zero real and imaginary parts. Matrices are never zero in
// this sense (the predicate is only meaningful for scalars).
func IsZero(v Value) bool {
	switch t := v.(type) {
	case Rational:
		return t.Rational.IsZero()
	case Complex:
		return t.Re.IsZero() && t.Im.IsZero()
	}
	return false
}
