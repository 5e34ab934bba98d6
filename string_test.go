package gograph_test

import (
	"math"
	"testing"

	"github.com/njchilds90/gograph"
)

func TestString(t *testing.T) {
	x := gograph.X()
	cases := []struct {
		in   gograph.Expr
		want string
	}{
		{gograph.N(-3), "-3"},
		{gograph.AddOf(x, gograph.N(1)), "x + 1"},
		{gograph.SubOf(gograph.PowOf(x, gograph.N(2)), gograph.N(4)), "x^2 - 4"},
		{gograph.SubOf(gograph.N(0), x), "-x"},
		{gograph.SubOf(x, gograph.N(-3)), "x + 3"},
		{gograph.DivOf(x, gograph.N(2)), "x / 2"},
		{gograph.MulOf(gograph.N(5), x), "5x"},
		{gograph.MulOf(x, gograph.N(3)), "3x"},
		{gograph.MulOf(gograph.N(-2), x), "-2x"},
		{gograph.MulOf(gograph.N(3), gograph.AddOf(x, gograph.N(1))), "3(x + 1)"},
		{gograph.PowOf(x, gograph.DivOf(gograph.N(1), gograph.N(2))), "x^(1 / 2)"},
		{gograph.PowOf(gograph.AddOf(x, gograph.N(1)), gograph.N(2)), "(x + 1)^2"},
		{gograph.PowOf(x, gograph.N(-1)), "x^(-1)"},
		{gograph.AddOf(gograph.DivOf(x, gograph.N(2)), gograph.DivOf(x, gograph.N(3))), "(x / 2) + (x / 3)"},
		{gograph.DivOf(gograph.N(3), gograph.MulOf(gograph.N(2), x)), "3 / (2x)"},
		{gograph.DivOf(gograph.N(1), gograph.MulOf(x, gograph.SubOf(gograph.N(5), x))), "1 / (x(5 - x))"},
		{gograph.DivOf(gograph.N(1), gograph.SubOf(gograph.N(0), x)), "1 / (-x)"},
		{gograph.DivOf(gograph.N(1), gograph.SubOf(x, gograph.N(1))), "1 / (x - 1)"},
		{gograph.DivOf(gograph.MulOf(gograph.N(2), x), gograph.N(3)), "2x / 3"},
	}
	for _, c := range cases {
		if got := gograph.String(c.in); got != c.want {
			t.Errorf("String(%s): want %q, got %q", gograph.Literal(c.in), c.want, got)
		}
	}
}

func TestString_LogAndRoot(t *testing.T) {
	x := gograph.X()
	cases := []struct {
		in   gograph.Expr
		want string
	}{
		{gograph.LogOf(gograph.N(10), x), "logx"},
		{gograph.LogOf(gograph.N(2), x), "log₂x"},
		{gograph.LogOf(gograph.N(2), gograph.AddOf(x, gograph.N(1))), "log₂(x + 1)"},
		{gograph.LogOf(x, gograph.N(8)), "log<x>8"},
		{gograph.RootOf(gograph.N(2), x), "√(x)"},
		{gograph.RootOf(gograph.N(3), x), "³√x"},
		{gograph.RootOf(gograph.N(3), gograph.N(8)), "³√(8)"},
		{gograph.RootOf(x, gograph.N(8)), "ˣ√(8)"},
		{gograph.RootOf(gograph.N(3), gograph.MulOf(gograph.N(2), x)), "³√(2x)"},
	}
	for _, c := range cases {
		if got := gograph.String(c.in); got != c.want {
			t.Errorf("String(%s): want %q, got %q", gograph.Literal(c.in), c.want, got)
		}
	}
}

func TestString_MethodMatchesFunction(t *testing.T) {
	e := gograph.MulOf(gograph.N(5), gograph.X())
	if e.String() != gograph.String(e) {
		t.Errorf("want %s, got %s", gograph.String(e), e.String())
	}
}

// Printed text parses back to an expression with the same values, both
// for the tree as built and for its simplified form.
func TestString_ParsesBack(t *testing.T) {
	x := gograph.X()
	cases := []gograph.Expr{
		gograph.DivOf(gograph.N(3), gograph.MulOf(gograph.N(2), x)),
		gograph.DivOf(gograph.N(1), gograph.MulOf(x, gograph.SubOf(gograph.N(5), x))),
		gograph.DivOf(gograph.AddOf(x, gograph.N(1)), gograph.MulOf(x, gograph.SubOf(gograph.N(6), x))),
		gograph.DivOf(gograph.N(1), gograph.SubOf(gograph.N(0), x)),
		gograph.LogOf(gograph.N(2), x),
		gograph.LogOf(gograph.N(10), x),
		gograph.LogOf(gograph.N(3), gograph.N(5)),
		gograph.LogOf(x, gograph.N(8)),
		gograph.MulOf(gograph.N(2), gograph.LogOf(gograph.N(2), x)),
		gograph.PowOf(x, gograph.DivOf(gograph.N(3), gograph.N(2))),
		gograph.RootOf(gograph.N(3), x),
		gograph.RootOf(gograph.N(3), gograph.MulOf(gograph.N(2), x)),
	}
	for _, e := range cases {
		for _, tree := range []gograph.Expr{e, gograph.Simplify(e)} {
			text := gograph.String(tree)
			back, err := gograph.Parse(text)
			if err != nil {
				t.Errorf("Parse(%q): unexpected error: %v", text, err)
				continue
			}
			for _, v := range []float64{0.7, 2, 3.5} {
				want, got := gograph.EvaluateAt(e, v), gograph.EvaluateAt(back, v)
				if math.Abs(want-got) > 1e-9 {
					t.Errorf("%q at %v: want %v, got %v", text, v, want, got)
				}
			}
		}
	}
}
