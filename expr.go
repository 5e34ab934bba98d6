// Package gograph is a symbolic algebra kernel for single-variable
// expressions.
//
// Design goals:
//   - Integer literals and one free variable, x
//   - Ordered, first-match rewrite rules for simplification
//   - Isolation-based solving of f(x) = y for x
//   - Stable plain-text and LaTeX output
//   - JSON and MCP-ready tool APIs
package gograph

import (
	"fmt"
)

// ============================================================
// Core Interface
// ============================================================

type Expr interface {
	String() string
	LaTeX() string
	Equal(other Expr) bool
	eval(x float64, bound bool) float64
	reduce() Expr
	exprType() string
	toJSON() map[string]interface{}
}

// ============================================================
// Num - integer literal
// ============================================================

type Num struct{ v int }

func N(n int) *Num { return &Num{v: n} }

func (n *Num) Int() int                   { return n.v }
func (n *Num) String() string             { return String(n) }
func (n *Num) LaTeX() string              { return LaTeX(n) }
func (n *Num) Equal(other Expr) bool      { o, ok := other.(*Num); return ok && n.v == o.v }
func (n *Num) exprType() string           { return "num" }
func (n *Num) eval(float64, bool) float64 { return float64(n.v) }

// ============================================================
// Var - the free variable x
// ============================================================

type Var struct{}

func X() *Var { return &Var{} }

func (v *Var) String() string        { return "x" }
func (v *Var) LaTeX() string         { return "x" }
func (v *Var) Equal(other Expr) bool { _, ok := other.(*Var); return ok }
func (v *Var) exprType() string      { return "x" }
func (v *Var) eval(x float64, bound bool) float64 {
	if !bound {
		invariant("evaluate", "x requires a value")
	}
	return x
}

// ============================================================
// Binary nodes
// ============================================================

type binary struct{ l, r Expr }

func (b binary) operands() (Expr, Expr) { return b.l, b.r }

func (b binary) equal(o binary) bool { return b.l.Equal(o.l) && b.r.Equal(o.r) }

func (b binary) commutedEqual(o binary) bool {
	return b.equal(o) || (b.l.Equal(o.r) && b.r.Equal(o.l))
}

type Add struct{ binary }
type Sub struct{ binary }
type Mul struct{ binary }
type Div struct{ binary }

// Pow is base^exponent.
type Pow struct{ binary }

// Log is log_base(argument); the left operand is the base.
type Log struct{ binary }

// Root is the degree-th root of the radicand; the left operand is the degree.
type Root struct{ binary }

// Constructors return the node as written. Nothing is simplified.
func AddOf(a, b Expr) *Add               { return &Add{binary{a, b}} }
func SubOf(a, b Expr) *Sub               { return &Sub{binary{a, b}} }
func MulOf(a, b Expr) *Mul               { return &Mul{binary{a, b}} }
func DivOf(a, b Expr) *Div               { return &Div{binary{a, b}} }
func PowOf(base, exp Expr) *Pow          { return &Pow{binary{base, exp}} }
func LogOf(base, arg Expr) *Log          { return &Log{binary{base, arg}} }
func RootOf(degree, radicand Expr) *Root { return &Root{binary{degree, radicand}} }

func (a *Add) Equal(other Expr) bool  { o, ok := other.(*Add); return ok && a.commutedEqual(o.binary) }
func (s *Sub) Equal(other Expr) bool  { o, ok := other.(*Sub); return ok && s.equal(o.binary) }
func (m *Mul) Equal(other Expr) bool  { o, ok := other.(*Mul); return ok && m.commutedEqual(o.binary) }
func (d *Div) Equal(other Expr) bool  { o, ok := other.(*Div); return ok && d.equal(o.binary) }
func (p *Pow) Equal(other Expr) bool  { o, ok := other.(*Pow); return ok && p.equal(o.binary) }
func (g *Log) Equal(other Expr) bool  { o, ok := other.(*Log); return ok && g.equal(o.binary) }
func (r *Root) Equal(other Expr) bool { o, ok := other.(*Root); return ok && r.equal(o.binary) }

func (a *Add) exprType() string  { return "add" }
func (s *Sub) exprType() string  { return "subtract" }
func (m *Mul) exprType() string  { return "multiply" }
func (d *Div) exprType() string  { return "divide" }
func (p *Pow) exprType() string  { return "power" }
func (g *Log) exprType() string  { return "log" }
func (r *Root) exprType() string { return "root" }

func (a *Add) String() string  { return String(a) }
func (s *Sub) String() string  { return String(s) }
func (m *Mul) String() string  { return String(m) }
func (d *Div) String() string  { return String(d) }
func (p *Pow) String() string  { return String(p) }
func (g *Log) String() string  { return String(g) }
func (r *Root) String() string { return String(r) }

func (a *Add) LaTeX() string  { return LaTeX(a) }
func (s *Sub) LaTeX() string  { return LaTeX(s) }
func (m *Mul) LaTeX() string  { return LaTeX(m) }
func (d *Div) LaTeX() string  { return LaTeX(d) }
func (p *Pow) LaTeX() string  { return LaTeX(p) }
func (g *Log) LaTeX() string  { return LaTeX(g) }
func (r *Root) LaTeX() string { return LaTeX(r) }

// Operands returns the two children of a binary node.
func Operands(e Expr) (Expr, Expr, bool) {
	b, ok := e.(interface{ operands() (Expr, Expr) })
	if !ok {
		return nil, nil, false
	}
	l, r := b.operands()
	return l, r, true
}

// rebuild returns a node of the same kind as e with new operands.
func rebuild(e Expr, l, r Expr) Expr {
	switch e.(type) {
	case *Add:
		return AddOf(l, r)
	case *Sub:
		return SubOf(l, r)
	case *Mul:
		return MulOf(l, r)
	case *Div:
		return DivOf(l, r)
	case *Pow:
		return PowOf(l, r)
	case *Log:
		return LogOf(l, r)
	case *Root:
		return RootOf(l, r)
	}
	panic(fmt.Sprintf("gograph: rebuild of leaf %s", e.exprType()))
}

// ============================================================
// Predicates
// ============================================================

func num(e Expr) (int, bool) {
	n, ok := e.(*Num)
	if !ok {
		return 0, false
	}
	return n.v, true
}

func isNum(e Expr, v int) bool { n, ok := num(e); return ok && n == v }

func isVar(e Expr) bool  { _, ok := e.(*Var); return ok }
func isAdd(e Expr) bool  { _, ok := e.(*Add); return ok }
func isSub(e Expr) bool  { _, ok := e.(*Sub); return ok }
func isDiv(e Expr) bool  { _, ok := e.(*Div); return ok }
func isPow(e Expr) bool  { _, ok := e.(*Pow); return ok }
func isLog(e Expr) bool  { _, ok := e.(*Log); return ok }
func isRoot(e Expr) bool { _, ok := e.(*Root); return ok }

// IsNegative reports whether e is written as a negative quantity: a
// negative literal or 0 - a.
func IsNegative(e Expr) bool {
	switch t := e.(type) {
	case *Num:
		return t.v < 0
	case *Sub:
		return isNum(t.l, 0)
	}
	return false
}

// Negate returns -e without simplifying.
func Negate(e Expr) Expr {
	switch t := e.(type) {
	case *Num:
		return N(-t.v)
	case *Sub:
		if isNum(t.l, 0) {
			return t.r
		}
	}
	return SubOf(N(0), e)
}

// ============================================================
// Contains / Replace
// ============================================================

func ContainsFunc(e Expr, pred func(Expr) bool) bool {
	if pred(e) {
		return true
	}
	l, r, ok := Operands(e)
	return ok && (ContainsFunc(l, pred) || ContainsFunc(r, pred))
}

func Contains(e, sub Expr) bool {
	return ContainsFunc(e, func(n Expr) bool { return n.Equal(sub) })
}

func ContainsVariable(e Expr) bool { return ContainsFunc(e, isVar) }

// Replace substitutes with for every subtree equal to of.
func Replace(e, of, with Expr) Expr {
	if e.Equal(of) {
		return with
	}
	l, r, ok := Operands(e)
	if !ok {
		return e
	}
	return rebuild(e, Replace(l, of, with), Replace(r, of, with))
}

func ReplaceX(e, with Expr) Expr { return Replace(e, X(), with) }

// ============================================================
// Literal - constructor-style dump
// ============================================================

// Literal renders e as the Go constructor calls that build it, e.g.
// MulOf(N(5), X()).
func Literal(e Expr) string {
	switch t := e.(type) {
	case *Num:
		return fmt.Sprintf("N(%d)", t.v)
	case *Var:
		return "X()"
	}
	l, r, _ := Operands(e)
	var ctor string
	switch e.(type) {
	case *Add:
		ctor = "AddOf"
	case *Sub:
		ctor = "SubOf"
	case *Mul:
		ctor = "MulOf"
	case *Div:
		ctor = "DivOf"
	case *Pow:
		ctor = "PowOf"
	case *Log:
		ctor = "LogOf"
	case *Root:
		ctor = "RootOf"
	}
	return ctor + "(" + Literal(l) + ", " + Literal(r) + ")"
}
