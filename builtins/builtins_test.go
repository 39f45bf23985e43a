package builtins

import (
	"math"
	"testing"

	"github.com/DinaGala/computor-v2/config"
	"github.com/DinaGala/computor-v2/rational"
	"github.com/DinaGala/computor-v2/value"
)

func r(n, d int64) value.Rational {
	return value.Rational{Rational: rational.FromInts(n, d)}
}

func TestSqrtExactPerfectSquare(t *testing.T) {
	got := Call("sqrt", r(9, 1), config.New())
	if got.String() != "3" {
		t.Errorf("got %s, want 3", got.String())
	}
}

func TestSqrtNegativePromotesToComplex(t *testing.T) {
	got := Call("sqrt", r(-4, 1), config.New())
	c, ok := got.(value.Complex)
	if !ok {
		t.Fatalf("got %T, want Complex", got)
	}
	if c.Re.String() != "0" || c.Im.String() != "2" {
		t.Errorf("got %s, want 0 + 2i", got.String())
	}
}

func TestAbsOfRational(t *testing.T) {
	got := Call("abs", r(-5, 1), config.New())
	if got.String() != "5" {
		t.Errorf("got %s, want 5", got.String())
	}
}

func TestAbsOfMatrixFails(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling abs on a matrix")
		}
	}()
	m := value.NewMatrixFromRows([][]value.Value{{r(1, 1)}})
	Call("abs", m, config.New())
}

func TestFloorCeil(t *testing.T) {
	if got := Call("floor", r(7, 2), config.New()); got.String() != "3" {
		t.Errorf("floor(7/2) got %s, want 3", got.String())
	}
	if got := Call("ceil", r(7, 2), config.New()); got.String() != "4" {
		t.Errorf("ceil(7/2) got %s, want 4", got.String())
	}
}

func TestInvDispatchesToMatrixInverse(t *testing.T) {
	m := value.NewMatrixFromRows([][]value.Value{
		{r(1, 1), r(2, 1)},
		{r(3, 1), r(4, 1)},
	})
	got := Call("inv", m, config.New())
	if got.String() != "[ [ -2 , 1 ] ; [ 3/2 , -1/2 ] ]" {
		t.Errorf("got %s", got.String())
	}
}

func TestNormOfScalarIsAbs(t *testing.T) {
	got := Call("norm", r(-3, 1), config.New())
	if got.String() != "3" {
		t.Errorf("got %s, want 3", got.String())
	}
}

func TestNormOfVector(t *testing.T) {
	m := value.NewMatrixFromRows([][]value.Value{{r(3, 1), r(4, 1)}})
	got := Call("norm", m, config.New())
	if got.String() != "5" {
		t.Errorf("got %s, want 5", got.String())
	}
}

func TestTrigConsultsAngleMode(t *testing.T) {
	cfg := config.New()
	cfg.SetAngleMode(config.Degrees)
	got := Call("sin", r(90, 1), cfg)
	f, ok := got.(value.Rational)
	if !ok {
		t.Fatalf("got %T", got)
	}
	if math.Abs(f.Float64()-1) > 1e-9 {
		t.Errorf("sin(90 degrees) got %v, want ~1", f.Float64())
	}
}

func TestLogOfNonPositiveFails(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling log on a non-positive value")
		}
	}()
	Call("log", r(0, 1), config.New())
}

func TestUndefinedBuiltinFails(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling an undefined built-in")
		}
	}()
	Call("frobnicate", r(1, 1), config.New())
}
