package gograph

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// ============================================================
// String rendering
// ============================================================

// String renders e as infix text. Nested operations are parenthesized,
// products are written by adjacency ("5x", "3(x + 1)") and the outermost
// pair of brackets is dropped.
func String(e Expr) string { return stripOuterBraces(describe(e)) }

func describe(e Expr) string {
	switch t := e.(type) {
	case *Num:
		return strconv.Itoa(t.v)
	case *Var:
		return "x"
	case *Add:
		return "(" + describe(t.l) + " + " + describe(t.r) + ")"
	case *Sub:
		if isNum(t.l, 0) {
			s := describe(t.r)
			if strings.HasPrefix(s, "-") {
				return s[1:]
			}
			return "-" + s
		}
		s := describe(t.r)
		if strings.HasPrefix(s, "-") {
			return "(" + describe(t.l) + " + " + s[1:] + ")"
		}
		return "(" + describe(t.l) + " - " + s + ")"
	case *Mul:
		return describeProduct(t)
	case *Div:
		return "(" + describe(t.l) + " / " + denominator(t.r) + ")"
	case *Pow:
		return powerOperand(t.l) + "^" + powerOperand(t.r)
	case *Log:
		return describeLog(t)
	case *Root:
		return describeRoot(t)
	}
	return "?"
}

// denominator brackets a product or negation so it divides as a whole.
func denominator(e Expr) string {
	s := describe(e)
	switch e.(type) {
	case *Mul, *Sub:
		if stripOuterBraces(s) == s {
			return "(" + s + ")"
		}
	}
	return s
}

func atomic(e Expr) bool {
	if v, ok := num(e); ok {
		return v >= 0
	}
	return isVar(e)
}

func powerOperand(e Expr) string {
	if atomic(e) {
		return describe(e)
	}
	return "(" + stripOuterBraces(describe(e)) + ")"
}

// multiplicationChain flattens nested products left to right.
func multiplicationChain(e Expr) []Expr {
	m, ok := e.(*Mul)
	if !ok {
		return []Expr{e}
	}
	return append(multiplicationChain(m.l), multiplicationChain(m.r)...)
}

func chainRank(e Expr) int {
	switch e.(type) {
	case *Num:
		return 0
	case *Var:
		return 1
	case *Log:
		return 3
	}
	return 2
}

func describeProduct(m *Mul) string {
	chain := multiplicationChain(m)
	negative := false
	for i, f := range chain {
		if IsNegative(f) {
			chain[i] = Negate(f)
			negative = !negative
		}
	}
	slices.SortStableFunc(chain, func(a, b Expr) int { return chainRank(a) - chainRank(b) })

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	rest := chain
	if n, ok := chain[0].(*Num); ok {
		sb.WriteString(strconv.Itoa(n.v))
		rest = chain[1:]
		if len(rest) > 0 && isVar(rest[0]) {
			sb.WriteByte('x')
			rest = rest[1:]
		}
	} else if isVar(chain[0]) {
		sb.WriteByte('x')
		rest = chain[1:]
	}
	for _, f := range rest {
		if isLog(f) {
			sb.WriteString(describe(f))
			continue
		}
		sb.WriteString("(" + stripOuterBraces(describe(f)) + ")")
	}
	return sb.String()
}

var (
	subscripts   = strings.NewReplacer("0", "₀", "1", "₁", "2", "₂", "3", "₃", "4", "₄", "5", "₅", "6", "₆", "7", "₇", "8", "₈", "9", "₉", "-", "₋")
	superscripts = strings.NewReplacer("0", "⁰", "1", "¹", "2", "²", "3", "³", "4", "⁴", "5", "⁵", "6", "⁶", "7", "⁷", "8", "⁸", "9", "⁹", "-", "⁻")
)

func describeLog(g *Log) string {
	arg := describe(g.r)
	if !atomic(g.r) {
		arg = "(" + stripOuterBraces(arg) + ")"
	}
	if b, ok := num(g.l); ok {
		if b == 10 {
			return "log" + arg
		}
		return "log" + subscripts.Replace(strconv.Itoa(b)) + arg
	}
	return "log<" + stripOuterBraces(describe(g.l)) + ">" + arg
}

func describeRoot(r *Root) string {
	radicand := describe(r.r)
	if !isVar(r.r) {
		radicand = "(" + stripOuterBraces(radicand) + ")"
	}
	if isVar(r.l) {
		return "ˣ√" + radicand
	}
	if d, ok := num(r.l); ok {
		if d == 2 {
			return "√(" + stripOuterBraces(describe(r.r)) + ")"
		}
		return superscripts.Replace(strconv.Itoa(d)) + "√" + radicand
	}
	return "root<" + stripOuterBraces(describe(r.l)) + ">" + radicand
}

// ============================================================
// Outermost bracket stripping
// ============================================================

var bracePairs = map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'}

// stripOuterBraces removes one pair of brackets enclosing all of s,
// including a LaTeX \left( ... \right) pair. Brackets that close early,
// as in "(a) + (b)", are kept.
func stripOuterBraces(s string) string {
	str := strings.TrimPrefix(s, `\left`)
	if str == "" {
		return s
	}
	open := str[0]
	closer, ok := bracePairs[open]
	if !ok || str[len(str)-1] != closer {
		return s
	}
	level := 0
	for i := 0; i < len(str)-1; i++ {
		switch str[i] {
		case open:
			level++
		case closer:
			level--
		}
		if level == 0 {
			return s
		}
	}
	if level != 1 {
		return s
	}
	if right := `\right` + string(closer); strings.HasSuffix(s, right) && len(str) >= 1+len(right) {
		return str[1 : len(str)-len(right)]
	}
	return str[1 : len(str)-1]
}
