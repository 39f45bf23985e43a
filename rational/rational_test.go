package rational

import (
	"errors"
	"testing"

	"github.com/DinaGala/computor-v2/errs"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		a, b Rational
		op   func(a, b Rational) Rational
		want string
	}{
		{FromInts(1, 2), FromInts(1, 3), Rational.Add, "5/6"},
		{FromInts(1, 2), FromInts(1, 3), Rational.Sub, "1/6"},
		{FromInts(2, 3), FromInts(3, 4), Rational.Mul, "1/2"},
		{FromInts(7, 1), FromInts(2, 1), Rational.Div, "7/2"},
		{FromInts(4, 2), FromInts(1, 1), Rational.Add, "3"},
	}
	for _, tt := range tests {
		got := tt.op(tt.a, tt.b).String()
		if got != tt.want {
			t.Errorf("got %s, want %s", got, tt.want)
		}
	}
}

func TestNormalization(t *testing.T) {
	r := FromInts(6, 4)
	if r.String() != "3/2" {
		t.Errorf("6/4 did not reduce: got %s", r.String())
	}
	r = FromInts(-6, 4)
	if r.String() != "-3/2" {
		t.Errorf("sign not carried on numerator: got %s", r.String())
	}
	r = FromInts(6, -4)
	if r.String() != "-3/2" {
		t.Errorf("negative denominator not normalized: got %s", r.String())
	}
}

func TestDivisionByZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on division by zero")
		}
	}()
	FromInts(1, 1).Div(Zero)
}

func TestDivisionByZeroWrapsCause(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on division by zero")
		}
		e, ok := r.(*errs.Error)
		if !ok {
			t.Fatalf("got panic of type %T, want *errs.Error", r)
		}
		if e.Kind != errs.Domain {
			t.Errorf("got kind %v, want Domain", e.Kind)
		}
		if !errors.Is(e, errZeroDivisor) {
			t.Error("expected errors.Is(e, errZeroDivisor) to hold")
		}
	}()
	FromInts(1, 1).Div(Zero)
}

func TestPow(t *testing.T) {
	tests := []struct {
		base Rational
		exp  int64
		want string
	}{
		{FromInts(2, 1), 3, "8"},
		{FromInts(2, 1), -1, "1/2"},
		{FromInts(2, 1), 0, "1"},
		{FromInts(1, 2), -2, "4"},
	}
	for _, tt := range tests {
		got := tt.base.Pow(tt.exp).String()
		if got != tt.want {
			t.Errorf("%v^%d: got %s, want %s", tt.base, tt.exp, got, tt.want)
		}
	}
}

func TestSqrtExact(t *testing.T) {
	if r, ok := FromInts(9, 4).SqrtExact(); !ok || r.String() != "3/2" {
		t.Errorf("sqrt(9/4): got %v, %v", r, ok)
	}
	if _, ok := FromInts(2, 1).SqrtExact(); ok {
		t.Errorf("sqrt(2) should not be exact")
	}
	if _, ok := FromInts(-4, 1).SqrtExact(); ok {
		t.Errorf("sqrt of negative should not be exact")
	}
}

func TestFromDecimalDigits(t *testing.T) {
	r, ok := FromDecimalDigits("314", 2)
	if !ok || r.String() != "157/50" {
		t.Errorf("3.14: got %v, %v", r, ok)
	}
}
