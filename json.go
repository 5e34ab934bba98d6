package gograph

import (
	"encoding/json"
	"fmt"
	"math"
)

// ============================================================
// JSON Serialization
// ============================================================
//
//	{"type": "num", "value": 5}
//	{"type": "x"}
//	{"type": "add", "lhs": {...}, "rhs": {...}}   also subtract, multiply, divide
//	{"type": "power", "base": {...}, "exp": {...}}
//	{"type": "log", "base": {...}, "arg": {...}}
//	{"type": "root", "degree": {...}, "radicand": {...}}

// operandFields names the two child fields of each binary node type.
var operandFields = map[string][2]string{
	"add":      {"lhs", "rhs"},
	"subtract": {"lhs", "rhs"},
	"multiply": {"lhs", "rhs"},
	"divide":   {"lhs", "rhs"},
	"power":    {"base", "exp"},
	"log":      {"base", "arg"},
	"root":     {"degree", "radicand"},
}

func (n *Num) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "num", "value": n.v}
}

func (v *Var) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "x"}
}

func binaryJSON(e Expr) map[string]interface{} {
	l, r, _ := Operands(e)
	f := operandFields[e.exprType()]
	return map[string]interface{}{"type": e.exprType(), f[0]: l.toJSON(), f[1]: r.toJSON()}
}

func (a *Add) toJSON() map[string]interface{}  { return binaryJSON(a) }
func (s *Sub) toJSON() map[string]interface{}  { return binaryJSON(s) }
func (m *Mul) toJSON() map[string]interface{}  { return binaryJSON(m) }
func (d *Div) toJSON() map[string]interface{}  { return binaryJSON(d) }
func (p *Pow) toJSON() map[string]interface{}  { return binaryJSON(p) }
func (g *Log) toJSON() map[string]interface{}  { return binaryJSON(g) }
func (r *Root) toJSON() map[string]interface{} { return binaryJSON(r) }

func ToJSON(e Expr) (string, error) {
	b, err := json.Marshal(e.toJSON())
	return string(b), err
}

// FromJSON rebuilds an expression from its decoded JSON object, as
// produced by encoding/json into map[string]interface{}.
func FromJSON(data map[string]interface{}) (Expr, error) {
	if data == nil {
		return nil, fmt.Errorf("expression must be an object")
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, fmt.Errorf("missing 'type' field")
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("field 'type' must be a non-empty string")
	}

	subExpr := func(field string) (Expr, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an object", typ, field)
		}
		e, err := FromJSON(m)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", typ, field, err)
		}
		return e, nil
	}

	switch typ {
	case "num":
		valAny, ok := data["value"]
		if !ok {
			return nil, fmt.Errorf("num: missing 'value'")
		}
		val, ok := valAny.(float64)
		if !ok {
			return nil, fmt.Errorf("num: 'value' must be a number")
		}
		if val != math.Trunc(val) || math.Abs(val) > math.MaxInt32 {
			return nil, fmt.Errorf("num: 'value' must be an integer, got %v", val)
		}
		return N(int(val)), nil

	case "x":
		return X(), nil
	}

	fields, ok := operandFields[typ]
	if !ok {
		return nil, fmt.Errorf("unknown expression type: %s", typ)
	}
	l, err := subExpr(fields[0])
	if err != nil {
		return nil, err
	}
	r, err := subExpr(fields[1])
	if err != nil {
		return nil, err
	}
	switch typ {
	case "add":
		return AddOf(l, r), nil
	case "subtract":
		return SubOf(l, r), nil
	case "multiply":
		return MulOf(l, r), nil
	case "divide":
		return DivOf(l, r), nil
	case "power":
		return PowOf(l, r), nil
	case "log":
		return LogOf(l, r), nil
	}
	return RootOf(l, r), nil
}
