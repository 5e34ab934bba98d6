package gograph

import "strings"

// ============================================================
// Equations
// ============================================================

// Equation is LHS = RHS where the right side is written in terms of the
// function value. Both sides use the single variable node; the right
// side's x stands for y and is printed that way.
type Equation struct {
	LHS, RHS Expr
}

func (q Equation) String() string {
	return String(q.LHS) + " = " + asY(String(q.RHS))
}

func (q Equation) LaTeX() string {
	return LaTeX(q.LHS) + " = " + asY(LaTeX(q.RHS))
}

func (q Equation) simplified() Equation {
	return Equation{LHS: Simplify(q.LHS), RHS: Simplify(q.RHS)}
}

func asY(s string) string { return strings.ReplaceAll(s, "x", "y") }

// DescribeSolution renders a solution of y = f(x) with its variable
// named y.
func DescribeSolution(e Expr) string { return asY(String(e)) }

// ============================================================
// Isolation
// ============================================================

// maxIsolateDepth bounds the isolation recursion. A branch that reaches
// it is treated as stuck.
const maxIsolateDepth = 64

type isolator struct {
	steps []Equation
}

// isolate peels one layer off the left side and recurses on every branch
// it produces. A branch ends when no step applies; the caller checks
// whether its left side is the bare variable.
func (iso *isolator) isolate(q Equation, depth int) []Equation {
	iso.steps = append(iso.steps, q)
	if depth >= maxIsolateDepth {
		return []Equation{q}
	}
	next, terminal := isolateStep(q)
	if terminal {
		return next
	}
	var out []Equation
	for _, branch := range next {
		out = append(out, iso.isolate(branch.simplified(), depth+1)...)
	}
	return out
}

func constant(e Expr) bool { return !ContainsVariable(e) }

// isolateStep returns the equations one step produces and whether they
// are final without further isolation.
func isolateStep(q Equation) ([]Equation, bool) {
	lhs, rhs := q.LHS, q.RHS
	one := func(l, r Expr) ([]Equation, bool) { return []Equation{{LHS: l, RHS: r}}, false }

	switch t := lhs.(type) {
	case *Pow:
		a, exp := t.l, t.r
		// a^log_b(c) = y  =>  log_b(c) log_b(a) = log_b(y)
		if b, c, ok := as[*Log](exp); ok && constant(b) {
			return one(MulOf(LogOf(b, c), LogOf(b, a)), LogOf(b, rhs))
		}
		for _, f := range logFactors(exp) {
			if constant(f.base) {
				return one(MulOf(f.p, MulOf(LogOf(f.base, f.arg), LogOf(f.base, a))), LogOf(f.base, rhs))
			}
		}
		// a^n = y  =>  a = ⁿ√y, and a = -ⁿ√y for even n
		if n, ok := num(exp); ok {
			root := RootOf(N(n), rhs)
			if n%2 == 0 {
				return []Equation{{LHS: a, RHS: root}, {LHS: a, RHS: Negate(root)}}, false
			}
			return one(a, root)
		}
		// a^b = y  =>  b log₂(a) = log₂(y)
		return one(MulOf(exp, LogOf(N(2), a)), LogOf(N(2), rhs))

	case *Root:
		if constant(t.l) {
			return one(t.r, PowOf(rhs, t.l))
		}

	case *Log:
		b, x := t.l, t.r
		if constant(b) {
			return one(x, PowOf(b, rhs))
		}
		if constant(x) {
			return one(b, PowOf(x, DivOf(N(1), rhs)))
		}

	case *Mul:
		if constant(t.l) {
			return one(t.r, DivOf(rhs, t.l))
		}
		if constant(t.r) {
			return one(t.l, DivOf(rhs, t.r))
		}

	case *Div:
		a, b := t.l, t.r
		if constant(b) {
			return one(a, MulOf(rhs, b))
		}
		if constant(a) {
			return one(b, DivOf(a, rhs))
		}

	case *Add:
		if constant(t.r) {
			return one(t.l, SubOf(rhs, t.r))
		}
		if constant(t.l) {
			return one(t.r, SubOf(rhs, t.l))
		}

	case *Sub:
		a, b := t.l, t.r
		if constant(a) {
			return one(b, SubOf(a, rhs))
		}
		// a - b = y  =>  a = a + y, kept as the historical rewrite
		if constant(b) {
			return one(a, AddOf(a, rhs))
		}
	}

	x := ExtractTerms(lhs, false)
	switch x.Kind {
	case ExtractSingle:
		return one(x.Rest, SubOf(rhs, x.Terms))
	case ExtractAll:
		return []Equation{{LHS: SubOf(lhs, x.Terms), RHS: N(0)}}, true
	}
	return []Equation{q}, true
}

// ============================================================
// Solving
// ============================================================

// SolveResult reports a solve of y = Function for x.
type SolveResult struct {
	Function  Expr
	Solutions []Expr
	Steps     []Equation
	Error     string
}

// SolveForX solves y = e for x. Solutions are written in terms of the
// variable node, which stands for y. It returns ErrNoVariable when e
// does not mention x and ErrCannotSolve when some branch cannot be
// isolated. Invariant violations hit while simplifying are returned as
// *InvariantError.
func SolveForX(e Expr) ([]Expr, error) {
	res, err := solve(e)
	if err != nil {
		return nil, err
	}
	return res.Solutions, nil
}

// Solve is SolveForX with the simplified function and the intermediate
// equations kept. Failures are reported in Error.
func Solve(e Expr) SolveResult {
	res, err := solve(e)
	if err != nil {
		res.Solutions = nil
		res.Error = err.Error()
	}
	return res
}

func solve(e Expr) (res SolveResult, err error) {
	if !ContainsVariable(e) {
		return SolveResult{Function: e}, ErrNoVariable
	}
	iso := &isolator{}
	defer func() { res.Steps = iso.steps }()
	defer recoverInvariant(&err)

	res.Function = Simplify(e)
	branches := iso.isolate(Equation{LHS: res.Function, RHS: X()}, 0)
	for _, b := range branches {
		if !isVar(b.LHS) {
			return res, ErrCannotSolve
		}
	}
	for _, b := range branches {
		res.Solutions = append(res.Solutions, Simplify(b.RHS))
	}
	return res, nil
}
