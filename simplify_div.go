package gograph

import "math"

// ============================================================
// Division
// ============================================================

func (d *Div) reduce() Expr {
	l, r := d.l.reduce(), d.r.reduce()
	return firstMatch(divRules, l, r, DivOf(l, r))
}

// combinedTerm matches (ax ± bx) / x and (ax ± bx) / cx. It returns the
// combined coefficient with c, which is nil for the bare x form.
func combinedTerm(sum func(a, b Expr) Expr, ll, lr, r Expr) (Expr, Expr, bool) {
	for _, f := range commonFactors(ll, lr) {
		if f.x.Equal(r) {
			return sum(f.a, f.b), nil, true
		}
	}
	for _, f := range commonFactors(ll, lr) {
		if c, ok := coefficient(r, f.x); ok {
			return sum(f.a, f.b), c, true
		}
	}
	return nil, nil, false
}

var divRules = []rule{
	{"x / 0", func(l, r Expr) (Expr, bool) {
		if isNum(r, 0) {
			invariant("simplify", "division by zero")
		}
		return nil, false
	}},
	{"0 / x = 0", func(l, r Expr) (Expr, bool) {
		if isNum(l, 0) {
			return N(0), true
		}
		return nil, false
	}},
	{"-x / -y = x / y", func(l, r Expr) (Expr, bool) {
		if IsNegative(l) && IsNegative(r) {
			return simp(DivOf(Negate(l), Negate(r))), true
		}
		return nil, false
	}},
	{"-x / y = 0 - x/y", func(l, r Expr) (Expr, bool) {
		if IsNegative(l) {
			return SubOf(N(0), simp(DivOf(Negate(l), r))), true
		}
		return nil, false
	}},
	{"x / -y = 0 - x/y", func(l, r Expr) (Expr, bool) {
		if IsNegative(r) {
			return SubOf(N(0), simp(DivOf(l, Negate(r)))), true
		}
		return nil, false
	}},
	{"x / 1 = x", func(l, r Expr) (Expr, bool) {
		if isNum(r, 1) {
			return l, true
		}
		return nil, false
	}},
	{"x / x = 1", func(l, r Expr) (Expr, bool) {
		if l.Equal(r) {
			return N(1), true
		}
		return nil, false
	}},
	{"xy / x = y", func(l, r Expr) (Expr, bool) {
		if y, ok := coefficient(l, r); ok {
			return y, true
		}
		return nil, false
	}},
	{"x / (x/y) = y", func(l, r Expr) (Expr, bool) {
		if x, y, ok := as[*Div](r); ok && x.Equal(l) {
			return y, true
		}
		return nil, false
	}},
	{"(a/b) / c = a / bc", func(l, r Expr) (Expr, bool) {
		if a, b, ok := as[*Div](l); ok {
			return simp(DivOf(a, MulOf(b, r))), true
		}
		return nil, false
	}},
	{"a / (x/y) = a(y/x)", func(l, r Expr) (Expr, bool) {
		if x, y, ok := as[*Div](r); ok {
			return simp(MulOf(l, DivOf(y, x))), true
		}
		return nil, false
	}},
	{"ax / bx = a / b", func(l, r Expr) (Expr, bool) {
		if f, ok := commonFactor(l, r); ok {
			return simp(DivOf(f.a, f.b)), true
		}
		return nil, false
	}},
	{"x / xy = 1 / y", func(l, r Expr) (Expr, bool) {
		if y, ok := coefficient(r, l); ok {
			return DivOf(N(1), y), true
		}
		return nil, false
	}},
	{"(ax + bx) / cx = (a + b) / c", func(l, r Expr) (Expr, bool) {
		ll, lr, ok := as[*Add](l)
		if !ok {
			return nil, false
		}
		ab, c, ok := combinedTerm(func(a, b Expr) Expr { return AddOf(a, b) }, ll, lr, r)
		if !ok {
			return nil, false
		}
		if c == nil {
			return simp(ab), true
		}
		return simp(DivOf(ab, c)), true
	}},
	{"(ax - bx) / cx = (a - b) / c", func(l, r Expr) (Expr, bool) {
		ll, lr, ok := as[*Sub](l)
		if !ok {
			return nil, false
		}
		ab, c, ok := combinedTerm(func(a, b Expr) Expr { return SubOf(a, b) }, ll, lr, r)
		if !ok {
			return nil, false
		}
		if c == nil {
			return simp(ab), true
		}
		return simp(DivOf(ab, c)), true
	}},
	{"x^y / x = x^(y - 1)", func(l, r Expr) (Expr, bool) {
		if x, y, ok := as[*Pow](l); ok && x.Equal(r) {
			return simp(PowOf(x, SubOf(y, N(1)))), true
		}
		return nil, false
	}},
	{"x / x^y = x^(1 - y)", func(l, r Expr) (Expr, bool) {
		if x, y, ok := as[*Pow](r); ok && x.Equal(l) {
			return simp(PowOf(x, SubOf(N(1), y))), true
		}
		return nil, false
	}},
	{"x^a / x^b = x^(a - b)", func(l, r Expr) (Expr, bool) {
		x1, a, ok1 := as[*Pow](l)
		x2, b, ok2 := as[*Pow](r)
		if ok1 && ok2 && x1.Equal(x2) {
			return simp(PowOf(x1, SubOf(a, b))), true
		}
		return nil, false
	}},
	{"ax^y / x = ax^(y - 1)", func(l, r Expr) (Expr, bool) {
		if a, y, ok := withPow(l, r); ok {
			return simp(MulOf(a, PowOf(r, SubOf(y, N(1))))), true
		}
		return nil, false
	}},
	{"x^y / ax = (1/a)x^(y - 1)", func(l, r Expr) (Expr, bool) {
		x, y, ok := as[*Pow](l)
		if !ok {
			return nil, false
		}
		if a, ok := coefficient(r, x); ok {
			return simp(MulOf(DivOf(N(1), a), PowOf(x, SubOf(y, N(1))))), true
		}
		return nil, false
	}},
	{"ax^y / bx = (a/b)x^(y - 1)", func(l, r Expr) (Expr, bool) {
		for _, f := range powFactors(l) {
			if b, ok := coefficient(r, f.base); ok {
				return simp(MulOf(DivOf(f.p, b), PowOf(f.base, SubOf(f.exp, N(1))))), true
			}
		}
		return nil, false
	}},
	{"x / ax^y = (1/a)x^(1 - y)", func(l, r Expr) (Expr, bool) {
		if a, y, ok := withPow(r, l); ok {
			return simp(MulOf(DivOf(N(1), a), PowOf(l, SubOf(N(1), y)))), true
		}
		return nil, false
	}},
	{"ax / x^y = ax^(1 - y)", func(l, r Expr) (Expr, bool) {
		x, y, ok := as[*Pow](r)
		if !ok {
			return nil, false
		}
		if a, ok := coefficient(l, x); ok {
			return simp(MulOf(a, PowOf(x, SubOf(N(1), y)))), true
		}
		return nil, false
	}},
	{"ax / bx^y = (a/b)x^(1 - y)", func(l, r Expr) (Expr, bool) {
		for _, f := range powFactors(r) {
			if a, ok := coefficient(l, f.base); ok {
				return simp(MulOf(DivOf(a, f.p), PowOf(f.base, SubOf(N(1), f.exp)))), true
			}
		}
		return nil, false
	}},
	{"x^g / ax^h = (1/a)x^(g - h)", func(l, r Expr) (Expr, bool) {
		x, g, ok := as[*Pow](l)
		if !ok {
			return nil, false
		}
		if a, h, ok := withPow(r, x); ok {
			return simp(MulOf(DivOf(N(1), a), PowOf(x, SubOf(g, h)))), true
		}
		return nil, false
	}},
	{"ax^g / x^h = ax^(g - h)", func(l, r Expr) (Expr, bool) {
		x, h, ok := as[*Pow](r)
		if !ok {
			return nil, false
		}
		if a, g, ok := withPow(l, x); ok {
			return simp(MulOf(a, PowOf(x, SubOf(g, h)))), true
		}
		return nil, false
	}},
	{"ax^g / bx^h = (a/b)x^(g - h)", func(l, r Expr) (Expr, bool) {
		for _, f := range powFactors(l) {
			if b, h, ok := withPow(r, f.base); ok {
				return simp(MulOf(DivOf(f.p, b), PowOf(f.base, SubOf(f.exp, h)))), true
			}
		}
		return nil, false
	}},
	{"n / b^c with n a power of b", func(l, r Expr) (Expr, bool) {
		a, ok1 := num(l)
		base, c, ok2 := as[*Pow](r)
		if !ok1 || !ok2 {
			return nil, false
		}
		b, ok := num(base)
		if !ok {
			return nil, false
		}
		if pp, ok := asPower(a); ok && pp.base == b {
			return simp(PowOf(N(b), SubOf(N(pp.exp), c))), true
		}
		return DivOf(l, r), true
	}},
	{"b^c / n with n a power of b", func(l, r Expr) (Expr, bool) {
		base, c, ok1 := as[*Pow](l)
		a, ok2 := num(r)
		if !ok1 || !ok2 {
			return nil, false
		}
		b, ok := num(base)
		if !ok {
			return nil, false
		}
		if pp, ok := asPower(a); ok && pp.base == b {
			return simp(PowOf(N(b), SubOf(c, N(pp.exp)))), true
		}
		return DivOf(l, r), true
	}},
	{"n / m exact", func(l, r Expr) (Expr, bool) {
		if x, y, ok := nums(l, r); ok && x%y == 0 {
			return N(x / y), true
		}
		return nil, false
	}},
	{"n / m in lowest terms", func(l, r Expr) (Expr, bool) {
		x, y, ok := nums(l, r)
		if !ok {
			return nil, false
		}
		g := gcd(x, y)
		nx, ny := x/g, y/g
		if nx == x {
			return DivOf(l, r), true
		}
		if py, ok := asPower(ny); ok {
			if nx == 1 {
				return PowOf(N(py.base), N(-py.exp)), true
			}
			bx := math.Pow(float64(nx), 1/float64(py.exp))
			if root := int(math.Round(bx)); root > 1 {
				if p, ok := ipow(root, py.exp); ok && p == nx {
					return PowOf(DivOf(N(root), N(py.base)), N(py.exp)), true
				}
			}
		}
		return DivOf(N(nx), N(ny)), true
	}},
	{"log_x(a) / log_x(b) = log_b(a)", func(l, r Expr) (Expr, bool) {
		x, a, ok1 := as[*Log](l)
		y, b, ok2 := as[*Log](r)
		if ok1 && ok2 && x.Equal(y) {
			return simp(LogOf(b, a)), true
		}
		return nil, false
	}},
	{"x log_y(a) / log_y(b) = x log_b(a)", func(l, r Expr) (Expr, bool) {
		y, b, ok := as[*Log](r)
		if !ok {
			return nil, false
		}
		for _, f := range logFactors(l) {
			if f.base.Equal(y) {
				return simp(MulOf(f.p, LogOf(b, f.arg))), true
			}
		}
		return nil, false
	}},
	{"log_y(a) / x log_y(b) = (1/x) log_b(a)", func(l, r Expr) (Expr, bool) {
		y, a, ok := as[*Log](l)
		if !ok {
			return nil, false
		}
		for _, f := range logFactors(r) {
			if f.base.Equal(y) {
				return simp(MulOf(DivOf(N(1), f.p), LogOf(f.arg, a))), true
			}
		}
		return nil, false
	}},
	{"x log_y(a) / z log_y(b) = (x/z) log_b(a)", func(l, r Expr) (Expr, bool) {
		for _, lf := range logFactors(l) {
			for _, rf := range logFactors(r) {
				if lf.base.Equal(rf.base) {
					return simp(MulOf(DivOf(lf.p, rf.p), LogOf(rf.arg, lf.arg))), true
				}
			}
		}
		return nil, false
	}},
	{"a log_x(y) / b = (a/b) log_x(y)", func(l, r Expr) (Expr, bool) {
		if fs := logFactors(l); len(fs) > 0 {
			f := fs[0]
			return simp(MulOf(DivOf(f.p, r), LogOf(f.base, f.arg))), true
		}
		return nil, false
	}},
	{"x / log_a(b) = x log_b(a)", func(l, r Expr) (Expr, bool) {
		if a, b, ok := as[*Log](r); ok {
			return simp(MulOf(l, LogOf(b, a))), true
		}
		return nil, false
	}},
}
