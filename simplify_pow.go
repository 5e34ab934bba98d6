package gograph

// ============================================================
// Exponentiation
// ============================================================

// foldLimit bounds |base| and |exp| for literal powers folded to a number.
const foldLimit = 15

func (p *Pow) reduce() Expr {
	l, r := p.l.reduce(), p.r.reduce()
	if x, y, ok := nums(l, r); ok && y > 0 && abs(x) <= foldLimit && y <= foldLimit {
		if v, ok := ipow(x, y); ok {
			return N(v)
		}
	}
	return firstMatch(powRules, l, r, PowOf(l, r))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

var powRules = []rule{
	{"0^0", func(l, r Expr) (Expr, bool) {
		if isNum(l, 0) && isNum(r, 0) {
			invariant("simplify", "0^0 is not a number")
		}
		return nil, false
	}},
	{"x^0 = 1", func(l, r Expr) (Expr, bool) {
		if isNum(r, 0) {
			return N(1), true
		}
		return nil, false
	}},
	{"0^x = 0", func(l, r Expr) (Expr, bool) {
		if isNum(l, 0) {
			return N(0), true
		}
		return nil, false
	}},
	{"1^x = 1", func(l, r Expr) (Expr, bool) {
		if isNum(l, 1) {
			return N(1), true
		}
		return nil, false
	}},
	{"x^1 = x", func(l, r Expr) (Expr, bool) {
		if isNum(r, 1) {
			return l, true
		}
		return nil, false
	}},
	{"(x/y)^-e = (y/x)^e", func(l, r Expr) (Expr, bool) {
		if x, y, ok := as[*Div](l); ok && IsNegative(r) {
			return simp(PowOf(DivOf(y, x), Negate(r))), true
		}
		return nil, false
	}},
	{"(a^b)^c = a^(bc)", func(l, r Expr) (Expr, bool) {
		if a, b, ok := as[*Pow](l); ok {
			return simp(PowOf(a, MulOf(b, r))), true
		}
		return nil, false
	}},
	{"a^-b = 1 / a^b", func(l, r Expr) (Expr, bool) {
		if IsNegative(r) {
			return simp(DivOf(N(1), PowOf(l, Negate(r)))), true
		}
		return nil, false
	}},
	{"x^log_x(y) = y", func(l, r Expr) (Expr, bool) {
		if x, y, ok := as[*Log](r); ok && x.Equal(l) {
			return y, true
		}
		return nil, false
	}},
	{"x^(a log_x(y)) = y^a", func(l, r Expr) (Expr, bool) {
		for _, f := range logFactors(r) {
			if f.base.Equal(l) {
				return PowOf(f.arg, f.p), true
			}
		}
		return nil, false
	}},
	{"n^y in the lowest base", func(l, r Expr) (Expr, bool) {
		x, ok := num(l)
		if !ok {
			return nil, false
		}
		if pp, ok := asPower(x); ok {
			return simp(PowOf(N(pp.base), MulOf(N(pp.exp), r))), true
		}
		return PowOf(l, r), true
	}},
}

// ============================================================
// Logarithms
// ============================================================

func (g *Log) reduce() Expr {
	l, r := g.l.reduce(), g.r.reduce()
	return firstMatch(logRules, l, r, LogOf(l, r))
}

var logRules = []rule{
	{"log base below 2", func(l, r Expr) (Expr, bool) {
		if b, ok := num(l); ok && b < 2 {
			invariant("simplify", "log base must be an integer of at least 2")
		}
		return nil, false
	}},
	{"log_b(1) = 0", func(l, r Expr) (Expr, bool) {
		if isNum(r, 1) {
			return N(0), true
		}
		return nil, false
	}},
	{"log_x(x) = 1", func(l, r Expr) (Expr, bool) {
		if l.Equal(r) {
			return N(1), true
		}
		return nil, false
	}},
	{"log_(ˣ√y)(y) = x", func(l, r Expr) (Expr, bool) {
		if x, y, ok := as[*Root](l); ok && y.Equal(r) {
			return x, true
		}
		if x, y, ok := reciprocalRoot(l); ok && isReciprocalOf(r, y) {
			return x, true
		}
		return nil, false
	}},
	{"log_(1/ˣ√y)(y) = -x", func(l, r Expr) (Expr, bool) {
		if x, y, ok := reciprocalRoot(l); ok && y.Equal(r) {
			return Negate(x), true
		}
		if x, y, ok := as[*Root](l); ok && isReciprocalOf(r, y) {
			return Negate(x), true
		}
		return nil, false
	}},
	{"log_(1/a)(1/b) = log_a(b)", func(l, r Expr) (Expr, bool) {
		a, ok1 := reciprocal(l)
		b, ok2 := reciprocal(r)
		if ok1 && ok2 {
			return simp(LogOf(a, b)), true
		}
		return nil, false
	}},
	{"log_(1/a)(b) = -log_a(b)", func(l, r Expr) (Expr, bool) {
		if a, ok := reciprocal(l); ok {
			return simp(Negate(LogOf(a, r))), true
		}
		if b, ok := reciprocal(r); ok {
			return simp(Negate(LogOf(l, b))), true
		}
		return nil, false
	}},
	{"log_(a^x)(b^x) = log_a(b)", func(l, r Expr) (Expr, bool) {
		a, x1, ok1 := as[*Pow](l)
		b, x2, ok2 := as[*Pow](r)
		if !ok1 || !ok2 {
			return nil, false
		}
		if x1.Equal(x2) {
			return simp(LogOf(a, b)), true
		}
		return simp(MulOf(DivOf(x2, x1), LogOf(a, b))), true
	}},
	{"log_b(x^y) = y log_b(x)", func(l, r Expr) (Expr, bool) {
		if x, y, ok := as[*Pow](r); ok {
			return simp(MulOf(y, LogOf(l, x))), true
		}
		if y, b, ok := as[*Root](l); ok {
			return simp(MulOf(y, LogOf(b, r))), true
		}
		return nil, false
	}},
	{"log_(y^b)(x) = (1/b) log_y(x)", func(l, r Expr) (Expr, bool) {
		if y, b, ok := as[*Pow](l); ok {
			return simp(MulOf(DivOf(N(1), b), LogOf(y, r))), true
		}
		return nil, false
	}},
	{"log_x(xy) = 1 + log_x(y)", func(l, r Expr) (Expr, bool) {
		if y, ok := coefficient(r, l); ok {
			return simp(AddOf(N(1), LogOf(l, y))), true
		}
		return nil, false
	}},
	{"log_x(x/y) = 1 - log_x(y)", func(l, r Expr) (Expr, bool) {
		if x, y, ok := as[*Div](r); ok && x.Equal(l) {
			return simp(SubOf(N(1), LogOf(l, y))), true
		}
		return nil, false
	}},
	{"log_n(m) over perfect powers", func(l, r Expr) (Expr, bool) {
		x, y, ok := nums(l, r)
		if !ok {
			return nil, false
		}
		px, okx := asPower(x)
		py, oky := asPower(y)
		switch {
		case okx && oky:
			if px.exp == py.exp {
				return simp(LogOf(N(px.base), N(py.base))), true
			}
			a := gcd(px.exp, py.exp)
			if a == px.exp {
				return simp(MulOf(N(py.exp/a), LogOf(N(px.base), N(py.base)))), true
			}
			return simp(MulOf(DivOf(N(py.exp/a), N(px.exp/a)), LogOf(N(px.base), N(py.base)))), true
		case okx:
			return simp(MulOf(DivOf(N(1), N(px.exp)), LogOf(N(px.base), N(y)))), true
		case oky:
			return simp(MulOf(N(py.exp), LogOf(N(x), N(py.base)))), true
		}
		return LogOf(l, r), true
	}},
	{"log_(b^e)(y) = (1/e) log_b(y)", func(l, r Expr) (Expr, bool) {
		x, ok := num(l)
		if !ok {
			return nil, false
		}
		pp, ok := asPower(x)
		if !ok {
			return LogOf(l, r), true
		}
		out := MulOf(DivOf(N(1), N(pp.exp)), LogOf(N(pp.base), r))
		if isVar(r) {
			return out, true
		}
		return simp(out), true
	}},
	{"log_x(b^e) = e log_x(b)", func(l, r Expr) (Expr, bool) {
		y, ok := num(r)
		if !ok {
			return nil, false
		}
		pp, ok := asPower(y)
		if !ok {
			return LogOf(l, r), true
		}
		out := MulOf(N(pp.exp), LogOf(l, N(pp.base)))
		if isVar(l) {
			return out, true
		}
		return simp(out), true
	}},
}

// reciprocal matches 1/a.
func reciprocal(e Expr) (Expr, bool) {
	if one, a, ok := as[*Div](e); ok && isNum(one, 1) {
		return a, true
	}
	return nil, false
}

// reciprocalRoot matches 1/ˣ√y.
func reciprocalRoot(e Expr) (x, y Expr, ok bool) {
	a, ok := reciprocal(e)
	if !ok {
		return nil, nil, false
	}
	return as[*Root](a)
}

func isReciprocalOf(e, y Expr) bool {
	a, ok := reciprocal(e)
	return ok && a.Equal(y)
}
