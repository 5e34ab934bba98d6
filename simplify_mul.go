package gograph

// ============================================================
// Multiplication
// ============================================================

func (m *Mul) reduce() Expr {
	l, r := m.l.reduce(), m.r.reduce()
	return firstMatch(mulRules, l, r, MulOf(l, r))
}

var mulRules = []rule{
	{"0x = 0", func(l, r Expr) (Expr, bool) {
		if isNum(l, 0) || isNum(r, 0) {
			return N(0), true
		}
		return nil, false
	}},
	{"1x = x", func(l, r Expr) (Expr, bool) {
		if isNum(r, 1) {
			return l, true
		}
		if isNum(l, 1) {
			return r, true
		}
		return nil, false
	}},
	{"-1x = -x", func(l, r Expr) (Expr, bool) {
		if isNum(r, -1) {
			return Negate(l), true
		}
		if isNum(l, -1) {
			return Negate(r), true
		}
		return nil, false
	}},
	{"x * x = x^2", func(l, r Expr) (Expr, bool) {
		if l.Equal(r) {
			return simp(PowOf(l, N(2))), true
		}
		return nil, false
	}},
	{"a(bx) = (ab)x", func(l, r Expr) (Expr, bool) {
		if a, ok := num(l); ok {
			if x, b, ok := scaledBy(r); ok {
				return MulOf(N(a*b), x), true
			}
		}
		if b, ok := num(r); ok {
			if x, a, ok := scaledBy(l); ok {
				return MulOf(N(a*b), x), true
			}
		}
		return nil, false
	}},
	{"b(a/b) = a", func(l, r Expr) (Expr, bool) {
		if a, b, ok := as[*Div](r); ok && b.Equal(l) {
			return a, true
		}
		if a, b, ok := as[*Div](l); ok && b.Equal(r) {
			return a, true
		}
		return nil, false
	}},
	{"n(a/m) reduced by gcd(n, m)", func(l, r Expr) (Expr, bool) {
		n, frac := l, r
		if isDiv(l) {
			n, frac = r, l
		}
		x, ok1 := num(n)
		a, den, ok2 := as[*Div](frac)
		if !ok1 || !ok2 {
			return nil, false
		}
		b, ok := num(den)
		if !ok {
			return nil, false
		}
		g := gcd(b, x)
		return simp(DivOf(MulOf(N(x/g), a), N(b/g))), true
	}},
	{"x * x^y = x^(y + 1)", func(l, r Expr) (Expr, bool) {
		x, y, ok := as[*Pow](r)
		if !ok || !x.Equal(l) {
			x, y, ok = as[*Pow](l)
			if !ok || !x.Equal(r) {
				return nil, false
			}
		}
		if v, isN := num(y); isN {
			return simp(PowOf(x, N(v+1))), true
		}
		return simp(PowOf(x, AddOf(N(1), y))), true
	}},
	{"(1/d) * n = n/d", func(l, r Expr) (Expr, bool) {
		if one, d, ok := as[*Div](l); ok && isNum(one, 1) {
			return simp(DivOf(r, d)), true
		}
		if one, d, ok := as[*Div](r); ok && isNum(one, 1) {
			return simp(DivOf(l, d)), true
		}
		return nil, false
	}},
	{"(-1/d) * n = -n/d", func(l, r Expr) (Expr, bool) {
		n := r
		one, d, ok := as[*Div](l)
		if !ok || !isNum(one, -1) {
			n = l
			one, d, ok = as[*Div](r)
			if !ok || !isNum(one, -1) {
				return nil, false
			}
		}
		if v, isN := num(n); isN {
			return simp(DivOf(N(-v), d)), true
		}
		if v, isN := num(d); isN {
			return simp(DivOf(n, N(-v))), true
		}
		return simp(DivOf(SubOf(N(0), n), d)), true
	}},
	{"(x/y)(y/x) = 1", func(l, r Expr) (Expr, bool) {
		x1, y1, ok1 := as[*Div](l)
		y2, x2, ok2 := as[*Div](r)
		if ok1 && ok2 && x1.Equal(x2) && y1.Equal(y2) {
			return N(1), true
		}
		return nil, false
	}},
	{"(a/b)(x/y) cross reduced", func(l, r Expr) (Expr, bool) {
		ln, ld, ok1 := as[*Div](l)
		rn, rd, ok2 := as[*Div](r)
		if !ok1 || !ok2 {
			return nil, false
		}
		a, b, ok3 := nums(ln, ld)
		x, y, ok4 := nums(rn, rd)
		if !ok3 || !ok4 {
			return nil, false
		}
		ay, bx := gcd(a, y), gcd(b, x)
		return simp(DivOf(N((a/ay)*(x/bx)), N((y/ay)*(b/bx)))), true
	}},
	{"(n/b)(x/m) cross reduced", func(l, r Expr) (Expr, bool) {
		ln, b, ok1 := as[*Div](l)
		x, rd, ok2 := as[*Div](r)
		if !ok1 || !ok2 {
			return nil, false
		}
		a, y, ok := nums(ln, rd)
		if !ok {
			return nil, false
		}
		g := gcd(a, y)
		return simp(DivOf(MulOf(N(a/g), x), MulOf(N(y/g), b))), true
	}},
	{"(a/n)(m/y) cross reduced", func(l, r Expr) (Expr, bool) {
		a, ld, ok1 := as[*Div](l)
		rn, y, ok2 := as[*Div](r)
		if !ok1 || !ok2 {
			return nil, false
		}
		b, x, ok := nums(ld, rn)
		if !ok {
			return nil, false
		}
		g := gcd(b, x)
		return simp(DivOf(MulOf(a, N(x/g)), MulOf(y, N(b/g)))), true
	}},
	{"a(x/y) = ax/y", func(l, r Expr) (Expr, bool) {
		if x, y, ok := as[*Div](r); ok && !isLog(l) {
			return simp(DivOf(MulOf(l, x), y)), true
		}
		if x, y, ok := as[*Div](l); ok && !isLog(r) {
			return simp(DivOf(MulOf(r, x), y)), true
		}
		return nil, false
	}},
	{"x^a x^b = x^(a + b)", func(l, r Expr) (Expr, bool) {
		x1, a, ok1 := as[*Pow](l)
		x2, b, ok2 := as[*Pow](r)
		if ok1 && ok2 && x1.Equal(x2) {
			return simp(PowOf(x1, AddOf(a, b))), true
		}
		return nil, false
	}},
	{"x^a (px^b) = p x^(a + b)", func(l, r Expr) (Expr, bool) {
		if x, a, ok := as[*Pow](l); ok {
			if p, b, ok := withPow(r, x); ok {
				return simp(MulOf(p, PowOf(x, AddOf(a, b)))), true
			}
		}
		if x, b, ok := as[*Pow](r); ok {
			if p, a, ok := withPow(l, x); ok {
				return simp(MulOf(p, PowOf(x, AddOf(a, b)))), true
			}
		}
		return nil, false
	}},
	{"(px^a)(qx^b) = pq x^(a + b)", func(l, r Expr) (Expr, bool) {
		for _, f := range powFactors(l) {
			if q, b, ok := withPow(r, f.base); ok {
				return simp(MulOf(MulOf(f.p, q), PowOf(f.base, AddOf(f.exp, b)))), true
			}
		}
		return nil, false
	}},
	{"n * b^c with n a power of b", func(l, r Expr) (Expr, bool) {
		n, p := l, r
		if isPow(l) {
			n, p = r, l
		}
		a, ok1 := num(n)
		base, c, ok2 := as[*Pow](p)
		if !ok1 || !ok2 {
			return nil, false
		}
		b, ok := num(base)
		if !ok {
			return nil, false
		}
		pp, ok := asPower(a)
		if !ok || pp.base != b {
			return MulOf(l, r), true
		}
		return simp(PowOf(N(b), AddOf(N(pp.exp), c))), true
	}},
	{"x(xy) = y x^2", func(l, r Expr) (Expr, bool) {
		if y, ok := coefficient(r, l); ok {
			return MulOf(y, PowOf(l, N(2))), true
		}
		if y, ok := coefficient(l, r); ok {
			return MulOf(y, PowOf(r, N(2))), true
		}
		return nil, false
	}},
	{"log_x(a) log_a(y) = log_x(y)", func(l, r Expr) (Expr, bool) {
		x, a, ok1 := as[*Log](l)
		b, y, ok2 := as[*Log](r)
		if ok1 && ok2 && a.Equal(b) {
			return simp(LogOf(x, y)), true
		}
		return nil, false
	}},
	{"n * m", func(l, r Expr) (Expr, bool) {
		if a, b, ok := nums(l, r); ok {
			return N(a * b), true
		}
		return nil, false
	}},
}
