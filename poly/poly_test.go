package poly

import (
	"strings"
	"testing"

	"github.com/DinaGala/computor-v2/ast"
	"github.com/DinaGala/computor-v2/rational"
	"github.com/DinaGala/computor-v2/value"
)

func r(n, d int64) value.Value {
	return value.Rational{Rational: rational.FromInts(n, d)}
}

func noLeaf(e ast.Expr) value.Value {
	switch n := e.(type) {
	case ast.Number:
		return value.Rational{Rational: n.Value}
	}
	panic("unexpected leaf in test")
}

// x^2 - 5*x + 6 = 0
func scenario5() ast.EquationQuery {
	lhs := ast.BinOp{
		Op: "+",
		Left: ast.BinOp{
			Op:    "-",
			Left:  ast.BinOp{Op: "^", Left: ast.Ident{Name: "x"}, Right: ast.Number{Value: rational.FromInt64(2)}},
			Right: ast.BinOp{Op: "*", Left: ast.Number{Value: rational.FromInt64(5)}, Right: ast.Ident{Name: "x"}},
		},
		Right: ast.Number{Value: rational.FromInt64(6)},
	}
	return ast.EquationQuery{Lhs: lhs, Rhs: ast.Number{Value: rational.Zero}, Unknown: "x"}
}

func TestSolveDegree2PositiveDiscriminant(t *testing.T) {
	report := Solve(scenario5(), noLeaf, nil)
	if !strings.Contains(report, "Reduced form: x^2 - 5 * x + 6 = 0") {
		t.Errorf("unexpected reduced form in report:\n%s", report)
	}
	if !strings.Contains(report, "Polynomial degree: 2") {
		t.Errorf("unexpected degree in report:\n%s", report)
	}
	if !strings.Contains(report, "Discriminant: 1") {
		t.Errorf("unexpected discriminant in report:\n%s", report)
	}
	if !strings.Contains(report, "Discriminant is strictly positive") {
		t.Errorf("unexpected solution kind in report:\n%s", report)
	}
	if !strings.Contains(report, "3") || !strings.Contains(report, "2") {
		t.Errorf("expected roots 3 and 2 in report:\n%s", report)
	}
}

// x^2 + x + 1 = 0
func scenario6() ast.EquationQuery {
	lhs := ast.BinOp{
		Op: "+",
		Left: ast.BinOp{
			Op:   "+",
			Left: ast.BinOp{Op: "^", Left: ast.Ident{Name: "x"}, Right: ast.Number{Value: rational.FromInt64(2)}},
			Right: ast.Ident{Name: "x"},
		},
		Right: ast.Number{Value: rational.One},
	}
	return ast.EquationQuery{Lhs: lhs, Rhs: ast.Number{Value: rational.Zero}, Unknown: "x"}
}

func TestSolveDegree2NegativeDiscriminant(t *testing.T) {
	report := Solve(scenario6(), noLeaf, nil)
	if !strings.Contains(report, "Discriminant: -3") {
		t.Errorf("unexpected discriminant in report:\n%s", report)
	}
	if !strings.Contains(report, "strictly negative") {
		t.Errorf("expected complex-root branch:\n%s", report)
	}
}

// 2*x + 4 = 0 -> x = -2
func TestSolveDegree1(t *testing.T) {
	lhs := ast.BinOp{Op: "+", Left: ast.BinOp{Op: "*", Left: ast.Number{Value: rational.FromInt64(2)}, Right: ast.Ident{Name: "x"}}, Right: ast.Number{Value: rational.FromInt64(4)}}
	eq := ast.EquationQuery{Lhs: lhs, Rhs: ast.Number{Value: rational.Zero}, Unknown: "x"}
	report := Solve(eq, noLeaf, nil)
	if !strings.Contains(report, "The solution is:\n-2") {
		t.Errorf("unexpected report:\n%s", report)
	}
}

// x = x -> identity
func TestSolveDegree0Identity(t *testing.T) {
	eq := ast.EquationQuery{Lhs: ast.Ident{Name: "x"}, Rhs: ast.Ident{Name: "x"}, Unknown: "x"}
	report := Solve(eq, noLeaf, nil)
	if !strings.Contains(report, "any real number is a solution") {
		t.Errorf("unexpected report:\n%s", report)
	}
}

// x + 1 = x -> contradiction (no solution)
func TestSolveDegree0Contradiction(t *testing.T) {
	lhs := ast.BinOp{Op: "+", Left: ast.Ident{Name: "x"}, Right: ast.Number{Value: rational.One}}
	eq := ast.EquationQuery{Lhs: lhs, Rhs: ast.Ident{Name: "x"}, Unknown: "x"}
	report := Solve(eq, noLeaf, nil)
	if !strings.Contains(report, "no solution") {
		t.Errorf("unexpected report:\n%s", report)
	}
}

func TestDegreeAboveTwoFails(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for degree > 2")
		}
	}()
	lhs := ast.BinOp{Op: "^", Left: ast.Ident{Name: "x"}, Right: ast.Number{Value: rational.FromInt64(3)}}
	eq := ast.EquationQuery{Lhs: lhs, Rhs: ast.Number{Value: rational.Zero}, Unknown: "x"}
	Solve(eq, noLeaf, nil)
}

func TestDivisionByUnknownFails(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for division by a term containing the unknown")
		}
	}()
	lhs := ast.BinOp{Op: "/", Left: ast.Number{Value: rational.One}, Right: ast.Ident{Name: "x"}}
	eq := ast.EquationQuery{Lhs: lhs, Rhs: ast.Number{Value: rational.Zero}, Unknown: "x"}
	Solve(eq, noLeaf, nil)
}
