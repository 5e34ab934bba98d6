package gograph

import (
	"math"
)

// ============================================================
// Evaluation
// ============================================================

// Evaluate computes a constant expression. It panics with an
// *InvariantError if e mentions x.
func Evaluate(e Expr) float64 { return e.eval(0, false) }

// EvaluateAt computes e with x bound to the given value. Float division
// by zero and domain errors follow IEEE 754 and do not panic.
func EvaluateAt(e Expr, x float64) float64 { return e.eval(x, true) }

// TryEvaluate is Evaluate with the invariant panic returned as an error.
func TryEvaluate(e Expr) (v float64, err error) {
	defer recoverInvariant(&err)
	return Evaluate(e), nil
}

func (a *Add) eval(x float64, bound bool) float64 { return a.l.eval(x, bound) + a.r.eval(x, bound) }
func (s *Sub) eval(x float64, bound bool) float64 { return s.l.eval(x, bound) - s.r.eval(x, bound) }
func (m *Mul) eval(x float64, bound bool) float64 { return m.l.eval(x, bound) * m.r.eval(x, bound) }
func (d *Div) eval(x float64, bound bool) float64 { return d.l.eval(x, bound) / d.r.eval(x, bound) }
func (p *Pow) eval(x float64, bound bool) float64 {
	return math.Pow(p.l.eval(x, bound), p.r.eval(x, bound))
}

func (g *Log) eval(x float64, bound bool) float64 {
	arg := g.r.eval(x, bound)
	switch {
	case isNum(g.l, 10):
		return math.Log10(arg)
	case isNum(g.l, 2):
		return math.Log2(arg)
	}
	return math.Log(arg) / math.Log(g.l.eval(x, bound))
}

func (r *Root) eval(x float64, bound bool) float64 {
	degree := r.l.eval(x, bound)
	radicand := r.r.eval(x, bound)
	switch degree {
	case 2:
		return math.Sqrt(radicand)
	case 3:
		return math.Cbrt(radicand)
	}
	return math.Pow(radicand, 1/degree)
}

// ============================================================
// Sampling for plotters and tables
// ============================================================

// Sample evaluates e at x and reports false where e is undefined
// (division by zero, log of a non-positive value, even root of a
// negative value).
func Sample(e Expr, x float64) (float64, bool) {
	y := EvaluateAt(e, x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, false
	}
	return y, true
}

type Point struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Defined bool    `json:"defined"`
}

// SampleRange samples e at steps+1 evenly spaced points of [from, to].
func SampleRange(e Expr, from, to float64, steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	pts := make([]Point, 0, steps+1)
	dx := (to - from) / float64(steps)
	for i := 0; i <= steps; i++ {
		x := from + float64(i)*dx
		y, ok := Sample(e, x)
		pts = append(pts, Point{X: x, Y: y, Defined: ok})
	}
	return pts
}
