package parser

import (
	"testing"

	"github.com/DinaGala/computor-v2/ast"
)

// fakeEnv implements EnvLookup for tests.
type fakeEnv map[string]bool

func (f fakeEnv) IsDefined(name string) bool { return f[name] }

func TestBareExpressionPrecedence(t *testing.T) {
	e := ParseLine("1 + 2 * 3", fakeEnv{})
	got := e.String()
	want := "(1 + (2 * 3))"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestPowerRightAssociative(t *testing.T) {
	e := ParseLine("2 ^ 3 ^ 2", fakeEnv{})
	want := "(2 ^ (3 ^ 2))"
	if got := e.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestUnaryMinus(t *testing.T) {
	e := ParseLine("-2 + 3", fakeEnv{})
	want := "(-2 + 3)"
	if got := e.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestAssignment(t *testing.T) {
	e := ParseLine("x = 3 + 4", fakeEnv{})
	a, ok := e.(ast.Assign)
	if !ok {
		t.Fatalf("got %T, want ast.Assign", e)
	}
	if a.Name != "x" {
		t.Errorf("got name %s, want x", a.Name)
	}
}

func TestFunctionDefinition(t *testing.T) {
	e := ParseLine("f(x) = x * x", fakeEnv{})
	fn, ok := e.(ast.FunDef)
	if !ok {
		t.Fatalf("got %T, want ast.FunDef", e)
	}
	if fn.Name != "f" || fn.Param != "x" {
		t.Errorf("got %+v", fn)
	}
}

func TestCallExpression(t *testing.T) {
	e := ParseLine("sqrt(4)", fakeEnv{})
	c, ok := e.(ast.Call)
	if !ok || c.Name != "sqrt" {
		t.Fatalf("got %T %+v", e, e)
	}
}

func TestImaginaryUnit(t *testing.T) {
	e := ParseLine("i * i", fakeEnv{})
	b, ok := e.(ast.BinOp)
	if !ok {
		t.Fatalf("got %T", e)
	}
	if _, ok := b.Left.(ast.ImagUnit); !ok {
		t.Errorf("left operand not ImagUnit: %T", b.Left)
	}
}

func TestReservedIAsLvalueFails(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic assigning to reserved name i")
		}
	}()
	ParseLine("i = 3", fakeEnv{})
}

func TestMatrixLiteral(t *testing.T) {
	e := ParseLine("[[1,2],[3,4]]", fakeEnv{})
	m, ok := e.(ast.MatrixLit)
	if !ok {
		t.Fatalf("got %T", e)
	}
	if len(m.Rows) != 2 || len(m.Rows[0]) != 2 {
		t.Errorf("got %+v", m)
	}
}

func TestMatrixLiteralRaggedFails(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on ragged matrix literal")
		}
	}()
	ParseLine("[[1,2],[3]]", fakeEnv{})
}

func TestEquationQuerySingleUnknown(t *testing.T) {
	e := ParseLine("x^2 - 5*x + 6 = 0 ?", fakeEnv{})
	eq, ok := e.(ast.EquationQuery)
	if !ok {
		t.Fatalf("got %T", e)
	}
	if eq.Unknown != "x" {
		t.Errorf("got unknown %q, want x", eq.Unknown)
	}
}

func TestEquationQueryAmbiguousUnknownFails(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-singleton unknown set")
		}
	}()
	ParseLine("x + y = 0 ?", fakeEnv{})
}

func TestEquationQueryDefinedIdentifiersAreNotUnknowns(t *testing.T) {
	e := ParseLine("x + y = 0 ?", fakeEnv{"y": true})
	eq, ok := e.(ast.EquationQuery)
	if !ok {
		t.Fatalf("got %T", e)
	}
	if eq.Unknown != "x" {
		t.Errorf("got unknown %q, want x", eq.Unknown)
	}
}

func TestDecimalLiteralParsesExact(t *testing.T) {
	e := ParseLine("3.14", fakeEnv{})
	n, ok := e.(ast.Number)
	if !ok {
		t.Fatalf("got %T", e)
	}
	if n.Value.String() != "157/50" {
		t.Errorf("got %s, want 157/50", n.Value.String())
	}
}
