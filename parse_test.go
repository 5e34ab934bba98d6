package gograph_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/njchilds90/gograph"
)

// ============================================================
// Building
// ============================================================

func TestParse_LikeTerms(t *testing.T) {
	got, err := gograph.Parse("2x + 3x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := gograph.AddOf(
		gograph.MulOf(gograph.N(2), gograph.X()),
		gograph.MulOf(gograph.N(3), gograph.X()),
	)
	if !got.Equal(want) {
		t.Errorf("want %s, got %s", gograph.Literal(want), gograph.Literal(got))
	}
}

func TestParse_Precedence(t *testing.T) {
	got := gograph.MustParse("2*x + 4")
	want := gograph.AddOf(gograph.MulOf(gograph.N(2), gograph.X()), gograph.N(4))
	if !got.Equal(want) {
		t.Errorf("want %s, got %s", gograph.Literal(want), gograph.Literal(got))
	}

	got = gograph.MustParse("x^2 - 4")
	want2 := gograph.SubOf(gograph.PowOf(gograph.X(), gograph.N(2)), gograph.N(4))
	if !got.Equal(want2) {
		t.Errorf("want %s, got %s", gograph.Literal(want2), gograph.Literal(got))
	}
}

func TestParse_UnaryMinus(t *testing.T) {
	got := gograph.MustParse("-x^2")
	want := gograph.SubOf(gograph.N(0), gograph.PowOf(gograph.X(), gograph.N(2)))
	if !got.Equal(want) {
		t.Errorf("want %s, got %s", gograph.Literal(want), gograph.Literal(got))
	}
}

func TestParse_Functions(t *testing.T) {
	cases := []struct {
		in   string
		want gograph.Expr
	}{
		{"log(100)", gograph.LogOf(gograph.N(10), gograph.N(100))},
		{"log2(8)", gograph.LogOf(gograph.N(2), gograph.N(8))},
		{"sqrt(x)", gograph.RootOf(gograph.N(2), gograph.X())},
		{"2(x+1)", gograph.MulOf(gograph.N(2), gograph.AddOf(gograph.X(), gograph.N(1)))},
	}
	for _, c := range cases {
		got, err := gograph.Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", c.in, err)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("Parse(%q): want %s, got %s", c.in, gograph.Literal(c.want), gograph.Literal(got))
		}
	}
}

// The log and root forms String writes read back as the same tree.
func TestParse_Glyphs(t *testing.T) {
	x := gograph.X()
	cases := []struct {
		in   string
		want gograph.Expr
	}{
		{"log₂x", gograph.LogOf(gograph.N(2), x)},
		{"logx", gograph.LogOf(gograph.N(10), x)},
		{"log₃5", gograph.LogOf(gograph.N(3), gograph.N(5))},
		{"log₂(x + 1)", gograph.LogOf(gograph.N(2), gograph.AddOf(x, gograph.N(1)))},
		{"log<x>8", gograph.LogOf(x, gograph.N(8))},
		{"√(x^3)", gograph.RootOf(gograph.N(2), gograph.PowOf(x, gograph.N(3)))},
		{"³√x", gograph.RootOf(gograph.N(3), x)},
		{"³√(2x)", gograph.RootOf(gograph.N(3), gograph.MulOf(gograph.N(2), x))},
		{"ˣ√(8)", gograph.RootOf(x, gograph.N(8))},
		{"2log₂x", gograph.MulOf(gograph.N(2), gograph.LogOf(gograph.N(2), x))},
	}
	for _, c := range cases {
		got, err := gograph.Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", c.in, err)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("Parse(%q): want %s, got %s", c.in, gograph.Literal(c.want), gograph.Literal(got))
		}
	}
}

func TestParse_DoubleMinus(t *testing.T) {
	got := gograph.MustParse("x--x")
	want := gograph.AddOf(gograph.X(), gograph.X())
	if !got.Equal(want) {
		t.Errorf("want %s, got %s", gograph.Literal(want), gograph.Literal(got))
	}
	if v := gograph.EvaluateAt(gograph.MustParse("--x"), 3); v != 3 {
		t.Errorf("want 3, got %v", v)
	}
}

func TestParseFunction_Prefixes(t *testing.T) {
	want := gograph.MustParse("2x + 3")
	for _, in := range []string{"y = 2x + 3", "f(x) = 2x + 3", "Y=2x+3", "2x + 3"} {
		got, err := gograph.ParseFunction(in)
		if err != nil {
			t.Errorf("ParseFunction(%q): unexpected error: %v", in, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseFunction(%q): want %s, got %s", in, gograph.Literal(want), gograph.Literal(got))
		}
	}
}

// ============================================================
// Errors
// ============================================================

func TestParse_ErrorKinds(t *testing.T) {
	cases := []struct {
		in   string
		kind error
	}{
		{"", gograph.ErrEmpty},
		{"(x + 1", gograph.ErrUnbalanced},
		{"x + 1)", gograph.ErrUnbalanced},
		{"2y", gograph.ErrInvalidTerm},
		{"2 3", gograph.ErrMalformed},
		{"log0(x)", gograph.ErrInvalidTerm},
		{"log1(5)", gograph.ErrInvalidTerm},
		{"root1(x)", gograph.ErrInvalidTerm},
		{"log<1>(5)", gograph.ErrInvalidTerm},
		{"root<0>(x)", gograph.ErrInvalidTerm},
	}
	for _, c := range cases {
		_, err := gograph.Parse(c.in)
		if !errors.Is(err, c.kind) {
			t.Errorf("Parse(%q): want %v, got %v", c.in, c.kind, err)
		}
		var pe *gograph.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Parse(%q): want *ParseError, got %T", c.in, err)
		}
	}
}

func TestParseError_Snippet(t *testing.T) {
	_, err := gograph.Parse("2y")
	var pe *gograph.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("want *ParseError, got %v", err)
	}
	snip := pe.Snippet()
	if !strings.Contains(snip, "| 2y") || !strings.HasSuffix(snip, "| ^") {
		t.Errorf("unexpected snippet:\n%s", snip)
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustParse should panic on bad input")
		}
	}()
	gograph.MustParse("(")
}
