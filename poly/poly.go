// Package poly implements the Polynomial Reducer and Solver of spec
// §4.6: reducing an equation query's AST into a bounded coefficient map
// in the single unknown, then solving it by degree (0, 1, or 2). There is
// no direct teacher analog (ivy has no equation solver); the map
// arithmetic (add, scale, polynomial multiply) is written in the shape of
// the rest of this repo's small pure functions over the Value algebra
// (value/ops.go), applied to a new domain.
package poly

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/DinaGala/computor-v2/ast"
	"github.com/DinaGala/computor-v2/builtins"
	"github.com/DinaGala/computor-v2/config"
	"github.com/DinaGala/computor-v2/errs"
	"github.com/DinaGala/computor-v2/internal/obs"
	"github.com/DinaGala/computor-v2/rational"
	"github.com/DinaGala/computor-v2/value"
)

// maxTrackedDegree bounds the coefficient map during reduction. An
// intermediate term or product that would need an index past 6 is an
// immediate failure rather than an unbounded computation; indices from 3
// to 6 are kept so that terms which cancel still trim to degree <= 2.
const maxTrackedDegree = 6

// coeffMap maps a non-negative exponent of the unknown to its Value
// coefficient. A missing key means zero.
type coeffMap map[int]value.Value

// EvalLeaf evaluates a unknown-free subexpression to a Value, supplied by
// package eval so this package never needs an Environment or a second
// evaluator.
type EvalLeaf func(ast.Expr) value.Value

// Solve reduces eq and renders the full multi-line report of spec §6:
// the reduced form, the degree, the discriminant (degree 2 only), and the
// solution text. cfg may be nil; it supplies the float precision and
// output base every rendered value uses, and the flag for the optional
// )debug poly float64 cross-check (SPEC_FULL §11).
func Solve(eq ast.EquationQuery, leaf EvalLeaf, cfg *config.Config) string {
	diff := ast.BinOp{Op: "-", Left: eq.Lhs, Right: eq.Rhs}
	coeffs := reduce(diff, eq.Unknown, leaf)
	degree := trim(coeffs)

	var b strings.Builder
	b.WriteString("Reduced form: ")
	b.WriteString(render(coeffs, degree, eq.Unknown, cfg))
	b.WriteString(" = 0\n")
	b.WriteString("Polynomial degree: ")
	b.WriteString(strconv.Itoa(degree))

	switch {
	case degree == 0:
		b.WriteString("\n")
		b.WriteString(solveDegree0(coeffs))
	case degree == 1:
		b.WriteString("\n")
		b.WriteString(solveDegree1(coeffs, cfg))
	case degree == 2:
		delta := discriminant(coeffs)
		traceDiscriminantCrossCheck(cfg, coeffs, delta)
		b.WriteString("\nDiscriminant: ")
		b.WriteString(delta.Sprint(cfg))
		b.WriteString("\n")
		b.WriteString(solveDegree2(coeffs, delta, cfg))
	default:
		errs.Raise(errs.Unsupported, "degree > 2 unsupported")
	}
	return b.String()
}

// traceDiscriminantCrossCheck recomputes b^2-4ac in float64 via
// gonum/floats and logs a mismatch against the exact Value-algebra
// result, purely as a )debug poly consistency check: it never alters the
// solution returned to the user, only what gets traced.
func traceDiscriminantCrossCheck(cfg *config.Config, c coeffMap, exact value.Value) {
	tr := obs.New("poly", cfg.Debug)
	a, aok := coeffOrZero(c, 2).(value.Rational)
	b, bok := coeffOrZero(c, 1).(value.Rational)
	cc, cok := coeffOrZero(c, 0).(value.Rational)
	if !aok || !bok || !cok {
		return
	}
	terms := []float64{b.Float64() * b.Float64(), -4 * a.Float64() * cc.Float64()}
	approx := floats.Sum(terms)
	if exactR, ok := exact.(value.Rational); ok {
		if diff := approx - exactR.Float64(); diff > 1e-6 || diff < -1e-6 {
			tr.Trace("discriminant cross-check mismatch: exact=%v float64=%v", exactR.Float64(), approx)
		}
	}
}

func coeffOrZero(c coeffMap, k int) value.Value {
	if v, ok := c[k]; ok {
		return v
	}
	return value.Zero
}

// trim drops trailing zero coefficients and returns the resulting degree
// (0 if the map reduces to the zero polynomial).
func trim(c coeffMap) int {
	d := 0
	for k, v := range c {
		if k > d && !value.IsZero(v) {
			d = k
		}
	}
	for k := range c {
		if k > d {
			delete(c, k)
		}
	}
	return d
}

func solveDegree0(c coeffMap) string {
	if value.IsZero(coeffOrZero(c, 0)) {
		return "any real number is a solution"
	}
	return "no solution"
}

func solveDegree1(c coeffMap, cfg *config.Config) string {
	a := coeffOrZero(c, 1)
	b := coeffOrZero(c, 0)
	root := value.Div(value.Neg(b), a)
	return "The solution is:\n" + root.Sprint(cfg)
}

func discriminant(c coeffMap) value.Value {
	a := coeffOrZero(c, 2)
	b := coeffOrZero(c, 1)
	cc := coeffOrZero(c, 0)
	four := value.Rational{Rational: rational.FromInt64(4)}
	return value.Sub(value.Mul(b, b), value.Mul(four, value.Mul(a, cc)))
}

func solveDegree2(c coeffMap, delta value.Value, cfg *config.Config) string {
	a := coeffOrZero(c, 2)
	b := coeffOrZero(c, 1)
	two := value.Rational{Rational: rational.FromInt64(2)}
	twoA := value.Mul(two, a)
	negB := value.Neg(b)

	if r, ok := delta.(value.Rational); ok {
		switch {
		case r.IsZero():
			root := value.Div(negB, twoA)
			return "Discriminant is zero, the solution is:\n" + root.Sprint(cfg)
		case r.IsNegative():
			sqrtAbs := builtins.Call("sqrt", value.Neg(r), nil)
			r1 := value.Div(value.Add(negB, value.Mul(sqrtAbs, imagUnit())), twoA)
			r2 := value.Div(value.Sub(negB, value.Mul(sqrtAbs, imagUnit())), twoA)
			return "Discriminant is strictly negative, the two complex solutions are:\n" +
				r1.Sprint(cfg) + "\n" + r2.Sprint(cfg)
		default:
			sqrtDelta := builtins.Call("sqrt", r, nil)
			r1 := value.Div(value.Add(negB, sqrtDelta), twoA)
			r2 := value.Div(value.Sub(negB, sqrtDelta), twoA)
			return "Discriminant is strictly positive, the two solutions are:\n" +
				r1.Sprint(cfg) + "\n" + r2.Sprint(cfg)
		}
	}

	// Non-real discriminant: use the principal complex square root (spec
	// §4.6, "Δ is Complex").
	sqrtDelta := builtins.Call("sqrt", delta, nil)
	r1 := value.Div(value.Add(negB, sqrtDelta), twoA)
	r2 := value.Div(value.Sub(negB, sqrtDelta), twoA)
	return "Discriminant is strictly negative, the two complex solutions are:\n" +
		r1.Sprint(cfg) + "\n" + r2.Sprint(cfg)
}

func imagUnit() value.Value {
	return value.NewComplex(rational.Zero, rational.One)
}

// render prints the canonical "Σ Cₖ·uᵏ" form in descending k (the
// ordering used by spec.md's own literal scenarios, which this repo
// follows over the prose's "ascending" wording — see DESIGN.md). The
// coefficient of magnitude 1 is elided for k >= 1, matching the literal
// scenario "x^2 - 5 * x + 6" rather than "1 * x^2 ...".
func render(c coeffMap, degree int, unknown string, cfg *config.Config) string {
	type term struct {
		k    int
		coef value.Value
	}
	var terms []term
	for k := degree; k >= 0; k-- {
		v := coeffOrZero(c, k)
		if k != degree && value.IsZero(v) {
			continue
		}
		terms = append(terms, term{k, v})
	}
	if len(terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range terms {
		neg := isNegative(t.coef)
		mag := t.coef
		if neg {
			mag = value.Neg(t.coef)
		}
		if i == 0 {
			if neg {
				b.WriteString("-")
			}
		} else if neg {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		b.WriteString(monomial(mag, t.k, unknown, cfg))
	}
	return b.String()
}

func isNegative(v value.Value) bool {
	if r, ok := v.(value.Rational); ok {
		return r.IsNegative()
	}
	return false
}

func monomial(coef value.Value, k int, unknown string, cfg *config.Config) string {
	one := value.Rational{Rational: rational.One}
	isOne := false
	if r, ok := coef.(value.Rational); ok {
		isOne = r.Equal(one.Rational)
	}
	switch {
	case k == 0:
		return coef.Sprint(cfg)
	case k == 1:
		if isOne {
			return unknown
		}
		return coef.Sprint(cfg) + " * " + unknown
	default:
		power := unknown + "^" + strconv.Itoa(k)
		if isOne {
			return power
		}
		return coef.Sprint(cfg) + " * " + power
	}
}

func containsUnknown(e ast.Expr, u string) bool {
	switch n := e.(type) {
	case ast.Ident:
		return n.Name == u
	case ast.Neg:
		return containsUnknown(n.X, u)
	case ast.BinOp:
		return containsUnknown(n.Left, u) || containsUnknown(n.Right, u)
	case ast.Call:
		return containsUnknown(n.Arg, u)
	case ast.MatrixLit:
		for _, row := range n.Rows {
			for _, cell := range row {
				if containsUnknown(cell, u) {
					return true
				}
			}
		}
	}
	return false
}

// reduce walks e and collects its coefficients in the unknown u, per the
// rules of spec §4.6. Any unknown-free subexpression is evaluated
// directly through leaf and contributes to C[0] via the scalar paths
// below.
func reduce(e ast.Expr, u string, leaf EvalLeaf) coeffMap {
	if !containsUnknown(e, u) {
		return coeffMap{0: leaf(e)}
	}
	switch n := e.(type) {
	case ast.Ident:
		return coeffMap{1: value.One}
	case ast.Neg:
		return negateMap(reduce(n.X, u, leaf))
	case ast.BinOp:
		switch n.Op {
		case "+":
			return addMaps(reduce(n.Left, u, leaf), reduce(n.Right, u, leaf))
		case "-":
			return subMaps(reduce(n.Left, u, leaf), reduce(n.Right, u, leaf))
		case "*":
			leftHas := containsUnknown(n.Left, u)
			rightHas := containsUnknown(n.Right, u)
			if leftHas && rightHas {
				return mulMaps(reduce(n.Left, u, leaf), reduce(n.Right, u, leaf))
			}
			if leftHas {
				return scaleMap(reduce(n.Left, u, leaf), leaf(n.Right))
			}
			return scaleMap(reduce(n.Right, u, leaf), leaf(n.Left))
		case "/":
			if containsUnknown(n.Right, u) {
				errs.Raise(errs.Unsupported, "division by a term containing the unknown is not supported")
			}
			scalar := leaf(n.Right)
			return divMap(reduce(n.Left, u, leaf), scalar)
		case "^":
			base, ok := n.Left.(ast.Ident)
			if !ok || base.Name != u {
				errs.Raise(errs.Unsupported, "only %s^k with a literal non-negative integer k is supported", u)
			}
			litK, ok := n.Right.(ast.Number)
			if !ok || !litK.Value.IsInt() || litK.Value.IsNegative() {
				errs.Raise(errs.Unsupported, "only %s^k with a literal non-negative integer k is supported", u)
			}
			k64, _ := litK.Value.Int64()
			k := int(k64)
			if k > maxTrackedDegree {
				errs.Raise(errs.Unsupported, "degree > 2 unsupported")
			}
			return coeffMap{k: value.One}
		}
	}
	errs.Raise(errs.Unsupported, "non-polynomial term in equation")
	panic("unreachable")
}

func addMaps(a, b coeffMap) coeffMap {
	out := coeffMap{}
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = value.Add(coeffOrZero(out, k), v)
	}
	return out
}

func subMaps(a, b coeffMap) coeffMap {
	return addMaps(a, negateMap(b))
}

func negateMap(a coeffMap) coeffMap {
	out := coeffMap{}
	for k, v := range a {
		out[k] = value.Neg(v)
	}
	return out
}

func scaleMap(a coeffMap, scalar value.Value) coeffMap {
	out := coeffMap{}
	for k, v := range a {
		out[k] = value.Mul(v, scalar)
	}
	return out
}

func divMap(a coeffMap, scalar value.Value) coeffMap {
	out := coeffMap{}
	for k, v := range a {
		out[k] = value.Div(v, scalar)
	}
	return out
}

// mulMaps computes the polynomial product of two coefficient maps,
// failing immediately if the resulting degree would exceed
// maxTrackedDegree (spec §9's overflow-detection cap).
func mulMaps(a, b coeffMap) coeffMap {
	out := coeffMap{}
	for ka, va := range a {
		for kb, vb := range b {
			k := ka + kb
			if k > maxTrackedDegree {
				errs.Raise(errs.Unsupported, "degree > 2 unsupported")
			}
			out[k] = value.Add(coeffOrZero(out, k), value.Mul(va, vb))
		}
	}
	return out
}
