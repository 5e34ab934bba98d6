package gograph

// ============================================================
// Simplify
// ============================================================
//
// Each operator owns an ordered rule list. A node first simplifies its
// children, then tries its rules top to bottom; the first rule that
// matches decides the result. Rules that build a new composite node
// re-simplify it before returning.

// maxRounds bounds the whole-tree passes of the core fixpoint.
const maxRounds = 16

// Simplify rewrites e with the core rules, expands differences of
// squares, rewrites again, and finally turns half-integer powers back
// into square roots. It panics with an *InvariantError on division by
// the literal 0, a log base below 2, or 0^0.
func Simplify(e Expr) Expr {
	e = fixpoint(e)
	e = removeDifferenceOfSquares(e)
	e = fixpoint(e)
	return reconstructSquareRoots(e)
}

// TrySimplify is Simplify with the invariant panic returned as an error.
func TrySimplify(e Expr) (out Expr, err error) {
	defer recoverInvariant(&err)
	return Simplify(e), nil
}

func fixpoint(e Expr) Expr {
	for i := 0; i < maxRounds; i++ {
		next := e.reduce()
		if next.Equal(e) {
			return next
		}
		e = next
	}
	return e
}

// simp applies one core pass to e. Rules call it instead of a concrete
// reduce method.
func simp(e Expr) Expr { return e.reduce() }

func (n *Num) reduce() Expr { return n }
func (v *Var) reduce() Expr { return v }

// ˣ√r = r^(1/x)
func (r *Root) reduce() Expr {
	degree, radicand := r.l.reduce(), r.r.reduce()
	return simp(PowOf(radicand, DivOf(N(1), degree)))
}

// ============================================================
// Rule machinery
// ============================================================

type rule struct {
	name  string
	apply func(l, r Expr) (Expr, bool)
}

func firstMatch(rules []rule, l, r Expr, fallback Expr) Expr {
	for _, rl := range rules {
		if out, ok := rl.apply(l, r); ok {
			return out
		}
	}
	return fallback
}

type node interface {
	Expr
	operands() (Expr, Expr)
}

// as destructures e when it is a T.
func as[T node](e Expr) (Expr, Expr, bool) {
	t, ok := e.(T)
	if !ok {
		return nil, nil, false
	}
	l, r := t.operands()
	return l, r, true
}

// coefficient returns a when m is a*x or x*a.
func coefficient(m, x Expr) (Expr, bool) {
	a, b, ok := as[*Mul](m)
	if !ok {
		return nil, false
	}
	if b.Equal(x) {
		return a, true
	}
	if a.Equal(x) {
		return b, true
	}
	return nil, false
}

type factorPair struct{ a, b, x Expr }

// commonFactors lists every way l = a*x, r = b*x share a factor x.
func commonFactors(l, r Expr) []factorPair {
	ll, lr, ok1 := as[*Mul](l)
	rl, rr, ok2 := as[*Mul](r)
	if !ok1 || !ok2 {
		return nil
	}
	var out []factorPair
	for _, lc := range [][2]Expr{{ll, lr}, {lr, ll}} {
		for _, rc := range [][2]Expr{{rl, rr}, {rr, rl}} {
			if lc[1].Equal(rc[1]) {
				out = append(out, factorPair{lc[0], rc[0], lc[1]})
			}
		}
	}
	return out
}

func commonFactor(l, r Expr) (factorPair, bool) {
	if fs := commonFactors(l, r); len(fs) > 0 {
		return fs[0], true
	}
	return factorPair{}, false
}

type powFactor struct{ p, base, exp Expr }

// powFactors lists the ways m = p * base^exp.
func powFactors(m Expr) []powFactor {
	a, b, ok := as[*Mul](m)
	if !ok {
		return nil
	}
	var out []powFactor
	if base, exp, ok := as[*Pow](b); ok {
		out = append(out, powFactor{a, base, exp})
	}
	if base, exp, ok := as[*Pow](a); ok {
		out = append(out, powFactor{b, base, exp})
	}
	return out
}

// withPow finds m = p * base^exp for the given base.
func withPow(m, base Expr) (p, exp Expr, ok bool) {
	for _, f := range powFactors(m) {
		if f.base.Equal(base) {
			return f.p, f.exp, true
		}
	}
	return nil, nil, false
}

type logFactor struct{ p, base, arg Expr }

// logFactors lists the ways m = p * log_base(arg).
func logFactors(m Expr) []logFactor {
	a, b, ok := as[*Mul](m)
	if !ok {
		return nil
	}
	var out []logFactor
	if base, arg, ok := as[*Log](b); ok {
		out = append(out, logFactor{a, base, arg})
	}
	if base, arg, ok := as[*Log](a); ok {
		out = append(out, logFactor{b, base, arg})
	}
	return out
}

// scaledBy splits m = g * n for an integer literal n.
func scaledBy(m Expr) (g Expr, n int, ok bool) {
	a, b, isMul := as[*Mul](m)
	if !isMul {
		return nil, 0, false
	}
	if v, isN := num(b); isN {
		return a, v, true
	}
	if v, isN := num(a); isN {
		return b, v, true
	}
	return nil, 0, false
}

func nums(l, r Expr) (int, int, bool) {
	a, ok1 := num(l)
	b, ok2 := num(r)
	return a, b, ok1 && ok2
}

// plusOne is n+1 folded for literals.
func plusOne(e Expr) Expr {
	if v, ok := num(e); ok {
		return N(v + 1)
	}
	return AddOf(e, N(1))
}

// ============================================================
// Satellite passes
// ============================================================

// removeDifferenceOfSquares expands (a+b)(a-b) into a^2 - b^2.
func removeDifferenceOfSquares(e Expr) Expr {
	l, r, ok := Operands(e)
	if !ok {
		return e
	}
	l, r = removeDifferenceOfSquares(l), removeDifferenceOfSquares(r)
	if _, isMul := e.(*Mul); isMul {
		if a, b, ok := differenceOfSquares(l, r); ok {
			return simp(SubOf(PowOf(a, N(2)), PowOf(b, N(2))))
		}
	}
	return rebuild(e, l, r)
}

func differenceOfSquares(l, r Expr) (Expr, Expr, bool) {
	sum, diff := l, r
	if isSub(l) {
		sum, diff = r, l
	}
	sa, sb, ok1 := as[*Add](sum)
	a, b, ok2 := as[*Sub](diff)
	if !ok1 || !ok2 {
		return nil, nil, false
	}
	if (sa.Equal(a) && sb.Equal(b)) || (sb.Equal(a) && sa.Equal(b)) {
		return a, b, true
	}
	return nil, nil, false
}

// reconstructSquareRoots rewrites a^(b/2) as √(a^b). A plain a^(1/2)
// stays a power, and so does one whose a^b no longer simplifies to a
// power, so simplified output is stable under Simplify.
func reconstructSquareRoots(e Expr) Expr {
	l, r, ok := Operands(e)
	if !ok {
		return e
	}
	l, r = reconstructSquareRoots(l), reconstructSquareRoots(r)
	if _, ok := e.(*Pow); ok {
		if b, two, ok := as[*Div](r); ok && isNum(two, 2) && !isNum(b, 1) {
			if inner := simp(PowOf(l, b)); isPow(inner) {
				return RootOf(N(2), inner)
			}
		}
	}
	return rebuild(e, l, r)
}
