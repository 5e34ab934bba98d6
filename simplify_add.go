package gograph

// ============================================================
// Addition
// ============================================================

func (a *Add) reduce() Expr {
	l, r := a.l.reduce(), a.r.reduce()
	return firstMatch(addRules, l, r, AddOf(l, r))
}

var addRules = []rule{
	{"x + 0 = x", func(l, r Expr) (Expr, bool) {
		if isNum(r, 0) {
			return l, true
		}
		if isNum(l, 0) {
			return r, true
		}
		return nil, false
	}},
	{"n + -n = 0", func(l, r Expr) (Expr, bool) {
		a, b, ok := nums(l, r)
		if ok && a == -b {
			return N(0), true
		}
		return nil, false
	}},
	{"x + (0 - x) = 0", func(l, r Expr) (Expr, bool) {
		if z, y, ok := as[*Sub](r); ok && isNum(z, 0) && l.Equal(y) {
			return N(0), true
		}
		if z, y, ok := as[*Sub](l); ok && isNum(z, 0) && r.Equal(y) {
			return N(0), true
		}
		return nil, false
	}},
	{"x + -y = x - y", func(l, r Expr) (Expr, bool) {
		if !IsNegative(l) && IsNegative(r) {
			return simp(SubOf(l, Negate(r))), true
		}
		if IsNegative(l) && !IsNegative(r) {
			return simp(SubOf(r, Negate(l))), true
		}
		return nil, false
	}},
	{"x + (y - x) = y", func(l, r Expr) (Expr, bool) {
		if y, x, ok := as[*Sub](r); ok && x.Equal(l) {
			return y, true
		}
		if y, x, ok := as[*Sub](l); ok && x.Equal(r) {
			return y, true
		}
		return nil, false
	}},
	{"x + x = 2x", func(l, r Expr) (Expr, bool) {
		if _, isN := num(l); !isN && l.Equal(r) {
			return simp(MulOf(N(2), l)), true
		}
		return nil, false
	}},
	{"ax + bx = (a + b)x", func(l, r Expr) (Expr, bool) {
		if f, ok := commonFactor(l, r); ok {
			return simp(MulOf(AddOf(f.a, f.b), f.x)), true
		}
		return nil, false
	}},
	{"x + ax = (a + 1)x", func(l, r Expr) (Expr, bool) {
		if a, ok := coefficient(r, l); ok {
			return simp(MulOf(plusOne(a), l)), true
		}
		if a, ok := coefficient(l, r); ok {
			return simp(MulOf(plusOne(a), r)), true
		}
		return nil, false
	}},
	{"a/x + b/x = (a + b)/x", func(l, r Expr) (Expr, bool) {
		a, x1, ok1 := as[*Div](l)
		b, x2, ok2 := as[*Div](r)
		if ok1 && ok2 && x1.Equal(x2) {
			return simp(DivOf(AddOf(a, b), x1)), true
		}
		return nil, false
	}},
	{"a/x + b/xy = (ay + b)/xy", func(l, r Expr) (Expr, bool) {
		a, x, ok1 := as[*Div](l)
		b, xy, ok2 := as[*Div](r)
		if !ok1 || !ok2 {
			return nil, false
		}
		if y, ok := coefficient(xy, x); ok {
			return simp(DivOf(AddOf(MulOf(a, y), b), MulOf(x, y))), true
		}
		// b/xy + a/x, names swapped
		if y, ok := coefficient(x, xy); ok {
			return simp(DivOf(AddOf(MulOf(b, y), a), MulOf(xy, y))), true
		}
		return nil, false
	}},
	{"a/m + b/n over lcm(m, n)", func(l, r Expr) (Expr, bool) {
		a, m, ok1 := as[*Div](l)
		b, n, ok2 := as[*Div](r)
		if !ok1 || !ok2 {
			return nil, false
		}
		x, y, ok := nums(m, n)
		if !ok {
			return nil, false
		}
		d := lcm(x, y)
		return simp(DivOf(AddOf(MulOf(a, N(d/x)), MulOf(b, N(d/y))), N(d))), true
	}},
	{"a + b/x = (ax + b)/x", func(l, r Expr) (Expr, bool) {
		if b, x, ok := as[*Div](r); ok {
			return simp(DivOf(AddOf(MulOf(l, x), b), x)), true
		}
		if b, x, ok := as[*Div](l); ok {
			return simp(DivOf(AddOf(MulOf(r, x), b), x)), true
		}
		return nil, false
	}},
	{"log_x(a) + log_x(b) = log_x(ab)", func(l, r Expr) (Expr, bool) {
		x, a, ok1 := as[*Log](l)
		y, b, ok2 := as[*Log](r)
		if ok1 && ok2 && x.Equal(y) {
			return simp(LogOf(x, MulOf(a, b))), true
		}
		return nil, false
	}},
	{"n + m", func(l, r Expr) (Expr, bool) {
		if a, b, ok := nums(l, r); ok {
			return N(a + b), true
		}
		return nil, false
	}},
}

// ============================================================
// Subtraction
// ============================================================

func (s *Sub) reduce() Expr {
	l, r := s.l.reduce(), s.r.reduce()
	return firstMatch(subRules, l, r, SubOf(l, r))
}

var subRules = []rule{
	{"x - 0 = x", func(l, r Expr) (Expr, bool) {
		if isNum(r, 0) {
			return l, true
		}
		return nil, false
	}},
	{"x - x = 0", func(l, r Expr) (Expr, bool) {
		if l.Equal(r) {
			return N(0), true
		}
		return nil, false
	}},
	{"0 - n = -n", func(l, r Expr) (Expr, bool) {
		if v, ok := num(r); ok && isNum(l, 0) {
			return N(-v), true
		}
		return nil, false
	}},
	{"0 - (0 - n) = n", func(l, r Expr) (Expr, bool) {
		if isNum(l, 0) && IsNegative(r) {
			return Negate(r), true
		}
		return nil, false
	}},
	{"x - (x + y) = -y", func(l, r Expr) (Expr, bool) {
		if p, q, ok := as[*Add](r); ok {
			if p.Equal(l) {
				return Negate(q), true
			}
			if q.Equal(l) {
				return Negate(p), true
			}
		}
		if x, y, ok := as[*Sub](l); ok && x.Equal(r) {
			return Negate(y), true
		}
		return nil, false
	}},
	{"(x + y) - x = y", func(l, r Expr) (Expr, bool) {
		if p, q, ok := as[*Add](l); ok {
			if p.Equal(r) {
				return q, true
			}
			if q.Equal(r) {
				return p, true
			}
		}
		if x, y, ok := as[*Sub](r); ok && x.Equal(l) {
			return y, true
		}
		return nil, false
	}},
	{"ax - bx = (a - b)x", func(l, r Expr) (Expr, bool) {
		if f, ok := commonFactor(l, r); ok {
			return simp(MulOf(SubOf(f.a, f.b), f.x)), true
		}
		return nil, false
	}},
	{"x - ax = (1 - a)x", func(l, r Expr) (Expr, bool) {
		a, ok := coefficient(r, l)
		if !ok {
			return nil, false
		}
		if v, isN := num(a); isN {
			return simp(MulOf(N(1-v), l)), true
		}
		return simp(MulOf(SubOf(N(1), a), l)), true
	}},
	{"ax - x = (a - 1)x", func(l, r Expr) (Expr, bool) {
		a, ok := coefficient(l, r)
		if !ok {
			return nil, false
		}
		if v, isN := num(a); isN {
			return simp(MulOf(N(v-1), r)), true
		}
		return simp(MulOf(SubOf(a, N(1)), r)), true
	}},
	{"a/x - b/x = (a - b)/x", func(l, r Expr) (Expr, bool) {
		a, x1, ok1 := as[*Div](l)
		b, x2, ok2 := as[*Div](r)
		if ok1 && ok2 && x1.Equal(x2) {
			return simp(DivOf(SubOf(a, b), x1)), true
		}
		return nil, false
	}},
	{"a/x - b/xy = (ay - b)/xy", func(l, r Expr) (Expr, bool) {
		a, x, ok1 := as[*Div](l)
		b, xy, ok2 := as[*Div](r)
		if !ok1 || !ok2 {
			return nil, false
		}
		if y, ok := coefficient(xy, x); ok {
			return simp(DivOf(SubOf(MulOf(a, y), b), MulOf(x, y))), true
		}
		return nil, false
	}},
	{"a/xy - b/x = (a - by)/xy", func(l, r Expr) (Expr, bool) {
		a, xy, ok1 := as[*Div](l)
		b, x, ok2 := as[*Div](r)
		if !ok1 || !ok2 {
			return nil, false
		}
		if y, ok := coefficient(xy, x); ok {
			return simp(DivOf(SubOf(a, MulOf(b, y)), MulOf(x, y))), true
		}
		return nil, false
	}},
	{"a/m - b/n over lcm(m, n)", func(l, r Expr) (Expr, bool) {
		a, m, ok1 := as[*Div](l)
		b, n, ok2 := as[*Div](r)
		if !ok1 || !ok2 {
			return nil, false
		}
		x, y, ok := nums(m, n)
		if !ok {
			return nil, false
		}
		d := lcm(x, y)
		return simp(DivOf(SubOf(MulOf(a, N(d/x)), MulOf(b, N(d/y))), N(d))), true
	}},
	{"a/gm - b/gn over g*lcm(m, n)", func(l, r Expr) (Expr, bool) {
		a, gm, ok1 := as[*Div](l)
		b, gn, ok2 := as[*Div](r)
		if !ok1 || !ok2 {
			return nil, false
		}
		g1, m, ok3 := scaledBy(gm)
		g2, n, ok4 := scaledBy(gn)
		if !ok3 || !ok4 || !g1.Equal(g2) {
			return nil, false
		}
		d := lcm(m, n)
		return simp(DivOf(SubOf(MulOf(a, N(d/m)), MulOf(b, N(d/n))), MulOf(N(d), g1))), true
	}},
	{"log_x(a) - log_x(b) = log_x(a/b)", func(l, r Expr) (Expr, bool) {
		x, a, ok1 := as[*Log](l)
		y, b, ok2 := as[*Log](r)
		if ok1 && ok2 && x.Equal(y) {
			return simp(LogOf(x, DivOf(a, b))), true
		}
		return nil, false
	}},
	{"n - m", func(l, r Expr) (Expr, bool) {
		if a, b, ok := nums(l, r); ok {
			return N(a - b), true
		}
		return nil, false
	}},
}
