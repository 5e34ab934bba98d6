package gograph

// ============================================================
// Term extraction
// ============================================================

// ExtractionKind classifies how an expression splits into the terms
// that match a predicate and the terms that do not.
type ExtractionKind int

const (
	// ExtractNone: nothing could be separated. Rest holds the expression.
	ExtractNone ExtractionKind = iota
	// ExtractSingle: the expression is Terms + Rest.
	ExtractSingle
	// ExtractAll: every term matches. Terms holds the expression.
	ExtractAll
)

func (k ExtractionKind) String() string {
	switch k {
	case ExtractSingle:
		return "single"
	case ExtractAll:
		return "all"
	}
	return "none"
}

// Extraction is the result of ExtractTerms.
type Extraction struct {
	Kind  ExtractionKind
	Terms Expr
	Rest  Expr
}

func none(e Expr) Extraction         { return Extraction{Kind: ExtractNone, Rest: e} }
func all(e Expr) Extraction          { return Extraction{Kind: ExtractAll, Terms: e} }
func single(t, rest Expr) Extraction { return Extraction{Kind: ExtractSingle, Terms: t, Rest: rest} }
func (x Extraction) sum() Expr       { return AddOf(x.Terms, x.Rest) }

// whole reassembles the extraction into one expression.
func (x Extraction) whole() Expr {
	switch x.Kind {
	case ExtractAll:
		return x.Terms
	case ExtractNone:
		return x.Rest
	}
	return x.sum()
}

// ExtractTerms splits e into the additive terms that mention x (when
// containingVariables is true) or that are constant (when false), and
// the remainder. The split is structural: nothing is simplified.
func ExtractTerms(e Expr, containingVariables bool) Extraction {
	switch t := e.(type) {
	case *Var:
		if containingVariables {
			return all(t)
		}
		return none(t)
	case *Num:
		if containingVariables {
			return none(t)
		}
		return all(t)
	}

	l, r, _ := Operands(e)
	a := ExtractTerms(l, containingVariables)
	b := ExtractTerms(r, containingVariables)
	switch e.(type) {
	case *Log:
		return extractLog(a, b, containingVariables)
	case *Root:
		return extractRoot(e, a, b)
	}
	if a.Kind == ExtractNone && b.Kind == ExtractNone {
		return none(e)
	}
	switch e.(type) {
	case *Add:
		return extractAdd(e, a, b)
	case *Sub:
		return extractSub(e, a, b)
	case *Mul:
		return extractMul(e, a, b)
	case *Div:
		return extractDiv(e, a, b)
	}
	return extractPow(e, a, b)
}

func extractAdd(e Expr, a, b Extraction) Extraction {
	switch {
	case a.Kind == ExtractAll && b.Kind == ExtractAll:
		return all(e)
	case a.Kind == ExtractAll && b.Kind == ExtractNone:
		return single(a.Terms, b.Rest)
	case a.Kind == ExtractNone && b.Kind == ExtractAll:
		return single(b.Terms, a.Rest)
	case a.Kind == ExtractAll && b.Kind == ExtractSingle:
		return single(AddOf(a.Terms, b.Terms), b.Rest)
	case a.Kind == ExtractSingle && b.Kind == ExtractAll:
		return single(AddOf(b.Terms, a.Terms), a.Rest)
	case a.Kind == ExtractSingle && b.Kind == ExtractSingle:
		return single(AddOf(a.Terms, b.Terms), AddOf(a.Rest, b.Rest))
	case a.Kind == ExtractSingle:
		return single(a.Terms, AddOf(a.Rest, b.Rest))
	}
	return single(b.Terms, AddOf(b.Rest, a.Rest))
}

func extractSub(e Expr, a, b Extraction) Extraction {
	switch {
	case a.Kind == ExtractAll && b.Kind == ExtractAll:
		return all(e)
	case a.Kind == ExtractAll && b.Kind == ExtractNone:
		return single(a.Terms, Negate(b.Rest))
	case a.Kind == ExtractNone && b.Kind == ExtractAll:
		return single(Negate(b.Terms), a.Rest)
	case a.Kind == ExtractAll && b.Kind == ExtractSingle:
		return single(SubOf(a.Terms, b.Terms), Negate(b.Rest))
	case a.Kind == ExtractSingle && b.Kind == ExtractAll:
		return single(SubOf(a.Terms, b.Terms), a.Rest)
	case a.Kind == ExtractSingle && b.Kind == ExtractSingle:
		return single(SubOf(a.Terms, b.Terms), SubOf(a.Rest, b.Rest))
	case a.Kind == ExtractSingle:
		return single(a.Terms, SubOf(a.Rest, b.Rest))
	}
	return single(Negate(b.Terms), SubOf(a.Rest, b.Rest))
}

func extractMul(e Expr, a, b Extraction) Extraction {
	switch {
	case a.Kind == ExtractAll && b.Kind == ExtractAll:
		return all(e)
	case a.Kind == ExtractAll && b.Kind == ExtractNone:
		return none(MulOf(a.Terms, b.Rest))
	case a.Kind == ExtractNone && b.Kind == ExtractAll:
		return none(MulOf(b.Terms, a.Rest))
	// a(b + x) = ab + ax
	case a.Kind == ExtractAll && b.Kind == ExtractSingle:
		return single(MulOf(a.Terms, b.Terms), MulOf(a.Terms, b.Rest))
	case a.Kind == ExtractSingle && b.Kind == ExtractAll:
		return single(MulOf(b.Terms, a.Terms), MulOf(b.Terms, a.Rest))
	// (a + x)(b + y) = ab + (ay + bx + xy)
	case a.Kind == ExtractSingle && b.Kind == ExtractSingle:
		cross := AddOf(AddOf(MulOf(a.Terms, b.Rest), MulOf(b.Terms, a.Rest)), MulOf(a.Rest, b.Rest))
		return single(MulOf(a.Terms, b.Terms), cross)
	case a.Kind == ExtractSingle:
		return none(AddOf(MulOf(b.Rest, a.Terms), MulOf(b.Rest, a.Rest)))
	}
	return none(AddOf(MulOf(a.Rest, b.Terms), MulOf(a.Rest, b.Rest)))
}

func extractDiv(e Expr, a, b Extraction) Extraction {
	switch {
	case a.Kind == ExtractAll && b.Kind == ExtractAll:
		return all(e)
	case a.Kind == ExtractSingle && b.Kind == ExtractAll:
		return single(DivOf(a.Terms, b.Terms), DivOf(a.Rest, b.Terms))
	case a.Kind != ExtractSingle && b.Kind != ExtractSingle:
		return none(e)
	}
	return none(DivOf(a.whole(), b.whole()))
}

func extractPow(e Expr, a, b Extraction) Extraction {
	switch {
	case a.Kind == ExtractAll && b.Kind == ExtractAll:
		return all(e)
	case a.Kind != ExtractSingle && b.Kind != ExtractSingle:
		return none(e)
	case b.Kind == ExtractSingle:
		// a^(b1 + b2) = a^b1 * a^b2
		base := a.whole()
		return none(MulOf(PowOf(base, b.Terms), PowOf(base, b.Rest)))
	}
	return none(PowOf(a.sum(), b.whole()))
}

// extractLog splits log_a(bc) and log_a(b/c) into a sum of logs when
// exactly one factor of the argument matches.
func extractLog(a, b Extraction, containingVariables bool) Extraction {
	matches := func(e Expr) bool { return ContainsVariable(e) == containingVariables }

	if a.Kind == ExtractAll && b.Kind == ExtractNone {
		base := a.Terms
		if p, q, ok := as[*Mul](b.Rest); ok {
			if matches(p) {
				return single(LogOf(base, p), LogOf(base, q))
			}
			if matches(q) {
				return single(LogOf(base, q), LogOf(base, p))
			}
		}
		if p, q, ok := as[*Div](b.Rest); ok {
			if matches(p) {
				return single(LogOf(base, p), SubOf(N(0), LogOf(base, q)))
			}
			if matches(q) {
				return single(SubOf(N(0), LogOf(base, q)), LogOf(base, p))
			}
		}
	}
	switch {
	case a.Kind == ExtractNone && b.Kind == ExtractNone:
		return none(LogOf(a.Rest, b.Rest))
	case a.Kind == ExtractAll && b.Kind == ExtractAll:
		return all(LogOf(a.Terms, b.Terms))
	}
	return none(LogOf(a.whole(), b.whole()))
}

func extractRoot(e Expr, a, b Extraction) Extraction {
	if a.Kind == ExtractAll && b.Kind == ExtractAll {
		return all(e)
	}
	return none(RootOf(a.whole(), b.whole()))
}
