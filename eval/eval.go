// Package eval implements the single recursive AST walk against an
// Environment (spec §4.4), plus the top-level dispatcher that routes a
// parsed statement to the Evaluator, the Environment (for Assign/FunDef),
// or the Polynomial Reducer + Solver (for an EquationQuery), following
// the teacher's value.Eval entry point (value/eval.go) and its
// Binary/Unary dispatch, restructured over this spec's Value algebra.
package eval

import (
	"github.com/DinaGala/computor-v2/ast"
	"github.com/DinaGala/computor-v2/builtins"
	"github.com/DinaGala/computor-v2/config"
	"github.com/DinaGala/computor-v2/env"
	"github.com/DinaGala/computor-v2/errs"
	"github.com/DinaGala/computor-v2/internal/obs"
	"github.com/DinaGala/computor-v2/poly"
	"github.com/DinaGala/computor-v2/value"
)

// Outcome is the result of running one top-level statement: either a
// printable Value, a printable solver Report, or a silent FunDef install.
type Outcome struct {
	Value  value.Value
	Report string
	Silent bool
}

// Run dispatches a parsed statement per spec §2: expressions and
// assignments evaluate through the Evaluator; a FunDef installs a
// callable and prints nothing; an EquationQuery goes to the Polynomial
// Reducer and Solver.
func Run(stmt ast.Expr, e *env.Environment, cfg *config.Config) Outcome {
	tracer(cfg).Trace("run %T", stmt)
	switch n := stmt.(type) {
	case ast.Assign:
		v := Eval(n.Expr, e, cfg)
		e.Assign(n.Name, v)
		return Outcome{Value: v}
	case ast.FunDef:
		e.Assign(n.Name, value.Function{Param: n.Param, Body: n.Body})
		return Outcome{Silent: true}
	case ast.EquationQuery:
		report := poly.Solve(n, func(expr ast.Expr) value.Value {
			return Eval(expr, e, cfg)
		}, cfg)
		return Outcome{Report: report}
	default:
		return Outcome{Value: Eval(stmt, e, cfg)}
	}
}

// Eval evaluates a single expression node against e, per the contract in
// spec §4.4.
func Eval(expr ast.Expr, e *env.Environment, cfg *config.Config) value.Value {
	switch n := expr.(type) {
	case ast.Number:
		return value.Rational{Rational: n.Value}
	case ast.ImagUnit:
		return value.NewComplex(zeroRat(), oneRat())
	case ast.Ident:
		v, ok := e.Lookup(n.Name)
		if !ok {
			errs.Raise(errs.Name, "undefined identifier %q", n.Name)
		}
		return v
	case ast.Neg:
		return value.Neg(Eval(n.X, e, cfg))
	case ast.BinOp:
		return evalBinOp(n, e, cfg)
	case ast.MatrixLit:
		return evalMatrixLit(n, e, cfg)
	case ast.Call:
		return evalCall(n, e, cfg)
	}
	errs.Raise(errs.Parse, "cannot evaluate expression of type %T", expr)
	panic("unreachable")
}

func zeroRat() value.Rational { return value.Zero.Rational }
func oneRat() value.Rational  { return value.One.Rational }

// tracer builds a fresh obs.Tracer bound to cfg's own Debug flag on every
// call. Cheap to construct; tracing itself is a no-op unless )debug eval
// is on, so this never costs anything on the hot path.
func tracer(cfg *config.Config) *obs.Tracer {
	return obs.New("eval", cfg.Debug)
}

func evalBinOp(n ast.BinOp, e *env.Environment, cfg *config.Config) value.Value {
	l := Eval(n.Left, e, cfg)
	r := Eval(n.Right, e, cfg)
	switch n.Op {
	case "+":
		return value.Add(l, r)
	case "-":
		return value.Sub(l, r)
	case "*":
		return value.Mul(l, r)
	case "/":
		return value.Div(l, r)
	case "^":
		return value.Pow(l, r)
	}
	errs.Raise(errs.Parse, "unknown operator %q", n.Op)
	panic("unreachable")
}

// evalMatrixLit evaluates every cell; every row must already be the same
// length (the parser guarantees this), and no cell may itself evaluate to
// a Matrix or Function (spec §4.4).
func evalMatrixLit(n ast.MatrixLit, e *env.Environment, cfg *config.Config) value.Value {
	rows := make([][]value.Value, len(n.Rows))
	for i, row := range n.Rows {
		cells := make([]value.Value, len(row))
		for j, cellExpr := range row {
			cell := Eval(cellExpr, e, cfg)
			switch cell.(type) {
			case value.Matrix, value.Function:
				errs.Raise(errs.Type, "matrix cells cannot themselves be matrices or functions")
			}
			cells[j] = cell
		}
		rows[i] = cells
	}
	return value.NewMatrixFromRows(rows)
}

// evalCall dispatches a call: a built-in, a user-defined Function (in a
// fresh child scope binding only the parameter), or an undefined-function
// failure (spec §4.4).
func evalCall(n ast.Call, e *env.Environment, cfg *config.Config) value.Value {
	tracer(cfg).Trace("call %s", n.Name)
	if builtins.IsBuiltin(n.Name) {
		arg := Eval(n.Arg, e, cfg)
		return builtins.Call(n.Name, arg, cfg)
	}
	bound, ok := e.Lookup(n.Name)
	if !ok {
		errs.Raise(errs.Name, "undefined function %q", n.Name)
	}
	fn, ok := bound.(value.Function)
	if !ok {
		errs.Raise(errs.Type, "%q is not a function", n.Name)
	}
	arg := Eval(n.Arg, e, cfg)
	e.PushCall(fn.Param, arg)
	defer e.PopCall()
	return Eval(fn.Body, e, cfg)
}
