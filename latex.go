package gograph

import (
	"strconv"

	"github.com/dlclark/regexp2"
)

// ============================================================
// LaTeX rendering
// ============================================================

// scaledVariable collapses \left(3 \cdot x\right) into 3x.
var scaledVariable = regexp2.MustCompile(`\\left\(([\+-]?\d+) \\cdot x\\right\)`, regexp2.None)

// LaTeX renders e as LaTeX math markup.
func LaTeX(e Expr) string {
	s := stripOuterBraces(latex(e))
	if out, err := scaledVariable.Replace(s, "${1}x", -1, -1); err == nil {
		s = out
	}
	return s
}

// juxtaposable reports the operands that may follow a coefficient
// without an explicit \cdot.
func juxtaposable(e Expr) bool {
	return isLog(e) || isPow(e) || isRoot(e) || isSub(e) || isAdd(e)
}

func latex(e Expr) string {
	switch t := e.(type) {
	case *Num:
		if t.v < 0 {
			return `\left(` + strconv.Itoa(t.v) + `\right)`
		}
		return strconv.Itoa(t.v)
	case *Var:
		return "x"
	case *Add:
		return `\left(` + latex(t.l) + " + " + latex(t.r) + `\right)`
	case *Sub:
		if isNum(t.l, 0) {
			return "-" + latex(t.r)
		}
		return `\left(` + latex(t.l) + " - " + latex(t.r) + `\right)`
	case *Mul:
		return latexProduct(t)
	case *Div:
		return `\frac{` + stripOuterBraces(latex(t.l)) + "}{" + stripOuterBraces(latex(t.r)) + "}"
	case *Pow:
		return latex(t.l) + "^{" + stripOuterBraces(latex(t.r)) + "}"
	case *Log:
		return `\mathrm{log}_{` + latexLogOperand(t.l) + "}" + latexLogOperand(t.r)
	case *Root:
		if isNum(t.l, 2) {
			return `\sqrt{` + latex(t.r) + "}"
		}
		return `\sqrt[` + latex(t.l) + "]{" + latex(t.r) + "}"
	}
	return "?"
}

func latexLogOperand(e Expr) string {
	if isDiv(e) || isPow(e) || isRoot(e) {
		return `\left(` + latex(e) + `\right)`
	}
	return latex(e)
}

func latexProduct(m *Mul) string {
	a, b := m.l, m.r

	// fraction next to a juxtaposable term
	if isDiv(b) && juxtaposable(a) {
		a, b = b, a
	}
	if isDiv(a) && juxtaposable(b) {
		if IsNegative(b) {
			return latex(Negate(a)) + latex(Negate(b))
		}
		return latex(a) + latex(b)
	}

	// coefficient
	n, rest := a, b
	if _, ok := b.(*Num); ok && juxtaposable(a) {
		n, rest = b, a
	}
	if c, ok := n.(*Num); ok && juxtaposable(rest) {
		if IsNegative(rest) {
			return strconv.Itoa(-c.v) + latex(rest)[1:]
		}
		return strconv.Itoa(c.v) + latex(rest)
	}

	// scaled variable
	for _, pair := range [][2]Expr{{a, b}, {b, a}} {
		sv, other := pair[0], pair[1]
		if isLog(other) || !juxtaposable(other) {
			continue
		}
		if c, ok := scaledX(sv); ok {
			if IsNegative(other) {
				return strconv.Itoa(-c) + "x" + latex(other)[1:]
			}
			return strconv.Itoa(c) + "x" + latex(other)
		}
	}

	// bare variable
	for _, pair := range [][2]Expr{{a, b}, {b, a}} {
		v, other := pair[0], pair[1]
		if !isVar(v) || isLog(other) || !juxtaposable(other) {
			continue
		}
		if IsNegative(other) {
			return "-x" + latex(other)[1:]
		}
		return "x" + latex(other)
	}

	return `\left(` + latex(a) + ` \cdot ` + latex(b) + `\right)`
}

// scaledX matches n*x and x*n.
func scaledX(e Expr) (int, bool) {
	g, n, ok := scaledBy(e)
	if !ok || !isVar(g) {
		return 0, false
	}
	return n, true
}
