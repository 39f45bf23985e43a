package ast

import (
	"testing"

	"github.com/DinaGala/computor-v2/rational"
)

func TestStringRendering(t *testing.T) {
	tests := []struct {
		expr Expr
		want string
	}{
		{Number{rational.FromInt64(7)}, "7"},
		{ImagUnit{}, "i"},
		{Ident{"x"}, "x"},
		{Neg{Ident{"x"}}, "-x"},
		{BinOp{"+", Ident{"x"}, Number{rational.FromInt64(1)}}, "(x + 1)"},
		{Call{"sqrt", Ident{"x"}}, "sqrt(x)"},
		{Assign{"x", Number{rational.FromInt64(3)}}, "x = 3"},
		{FunDef{"f", "x", BinOp{"+", Ident{"x"}, Ident{"x"}}}, "f(x) = (x + x)"},
	}
	for _, tt := range tests {
		if got := tt.expr.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
