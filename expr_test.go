package gograph_test

import (
	"testing"

	"github.com/njchilds90/gograph"
)

// ============================================================
// Equality
// ============================================================

func TestEqual_AddCommutes(t *testing.T) {
	a := gograph.AddOf(gograph.N(1), gograph.X())
	b := gograph.AddOf(gograph.X(), gograph.N(1))
	if !a.Equal(b) {
		t.Errorf("want %s == %s", gograph.Literal(a), gograph.Literal(b))
	}
}

func TestEqual_MulCommutes(t *testing.T) {
	a := gograph.MulOf(gograph.N(5), gograph.X())
	b := gograph.MulOf(gograph.X(), gograph.N(5))
	if !a.Equal(b) {
		t.Errorf("want %s == %s", gograph.Literal(a), gograph.Literal(b))
	}
}

func TestEqual_SubIsOrdered(t *testing.T) {
	a := gograph.SubOf(gograph.N(1), gograph.X())
	b := gograph.SubOf(gograph.X(), gograph.N(1))
	if a.Equal(b) {
		t.Errorf("1 - x should differ from x - 1")
	}
}

func TestEqual_DifferentKinds(t *testing.T) {
	if gograph.AddOf(gograph.X(), gograph.N(1)).Equal(gograph.MulOf(gograph.X(), gograph.N(1))) {
		t.Errorf("x + 1 should differ from x * 1")
	}
	if gograph.N(2).Equal(gograph.X()) {
		t.Errorf("2 should differ from x")
	}
}

// ============================================================
// Negation
// ============================================================

func TestNegate(t *testing.T) {
	cases := []struct {
		in, want gograph.Expr
	}{
		{gograph.N(3), gograph.N(-3)},
		{gograph.N(-3), gograph.N(3)},
		{gograph.SubOf(gograph.N(0), gograph.X()), gograph.X()},
		{gograph.X(), gograph.SubOf(gograph.N(0), gograph.X())},
	}
	for _, c := range cases {
		if got := gograph.Negate(c.in); !got.Equal(c.want) {
			t.Errorf("Negate(%s): want %s, got %s", gograph.Literal(c.in), gograph.Literal(c.want), gograph.Literal(got))
		}
	}
}

func TestIsNegative(t *testing.T) {
	if !gograph.IsNegative(gograph.N(-1)) {
		t.Errorf("-1 should be negative")
	}
	if !gograph.IsNegative(gograph.SubOf(gograph.N(0), gograph.X())) {
		t.Errorf("0 - x should be negative")
	}
	if gograph.IsNegative(gograph.SubOf(gograph.N(1), gograph.X())) {
		t.Errorf("1 - x should not be negative")
	}
	if gograph.IsNegative(gograph.N(0)) {
		t.Errorf("0 should not be negative")
	}
}

// ============================================================
// Contains / Replace
// ============================================================

func TestContainsVariable(t *testing.T) {
	if !gograph.ContainsVariable(gograph.LogOf(gograph.N(2), gograph.AddOf(gograph.X(), gograph.N(1)))) {
		t.Errorf("log2(x + 1) mentions x")
	}
	if gograph.ContainsVariable(gograph.PowOf(gograph.N(2), gograph.N(3))) {
		t.Errorf("2^3 does not mention x")
	}
}

func TestContains(t *testing.T) {
	sq := gograph.PowOf(gograph.X(), gograph.N(2))
	e := gograph.AddOf(gograph.MulOf(gograph.N(3), gograph.PowOf(gograph.X(), gograph.N(2))), gograph.N(1))
	if !gograph.Contains(e, sq) {
		t.Errorf("want %s to contain x^2", gograph.Literal(e))
	}
	if gograph.Contains(e, gograph.N(4)) {
		t.Errorf("want %s not to contain 4", gograph.Literal(e))
	}
}

func TestReplaceX(t *testing.T) {
	e := gograph.AddOf(gograph.MulOf(gograph.N(2), gograph.X()), gograph.X())
	got := gograph.ReplaceX(e, gograph.N(7))
	want := gograph.AddOf(gograph.MulOf(gograph.N(2), gograph.N(7)), gograph.N(7))
	if !got.Equal(want) {
		t.Errorf("want %s, got %s", gograph.Literal(want), gograph.Literal(got))
	}
	if !gograph.ContainsVariable(e) {
		t.Errorf("ReplaceX must not modify its input")
	}
}

func TestReplace_Subtree(t *testing.T) {
	e := gograph.DivOf(gograph.AddOf(gograph.X(), gograph.N(1)), gograph.N(2))
	got := gograph.Replace(e, gograph.AddOf(gograph.N(1), gograph.X()), gograph.N(4))
	want := gograph.DivOf(gograph.N(4), gograph.N(2))
	if !got.Equal(want) {
		t.Errorf("want %s, got %s", gograph.Literal(want), gograph.Literal(got))
	}
}

// ============================================================
// Literal / Operands
// ============================================================

func TestLiteral(t *testing.T) {
	got := gograph.Literal(gograph.AddOf(gograph.N(2), gograph.X()))
	if got != "AddOf(N(2), X())" {
		t.Errorf("want AddOf(N(2), X()), got %s", got)
	}
	got = gograph.Literal(gograph.RootOf(gograph.N(3), gograph.LogOf(gograph.N(10), gograph.X())))
	if got != "RootOf(N(3), LogOf(N(10), X()))" {
		t.Errorf("want RootOf(N(3), LogOf(N(10), X())), got %s", got)
	}
}

func TestOperands(t *testing.T) {
	l, r, ok := gograph.Operands(gograph.PowOf(gograph.X(), gograph.N(2)))
	if !ok || !l.Equal(gograph.X()) || !r.Equal(gograph.N(2)) {
		t.Errorf("want x and 2, got %v %v %v", l, r, ok)
	}
	if _, _, ok := gograph.Operands(gograph.N(1)); ok {
		t.Errorf("a literal has no operands")
	}
}
