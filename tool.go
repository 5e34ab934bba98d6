package gograph

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ============================================================
// MCP Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type toolSpec struct {
	name, description string
	required          []string
	props             map[string]string
}

// Every tool that takes an expression accepts it either as text in
// "input" or as a JSON tree in "expr".
var exprProps = map[string]string{"input": "string", "expr": "object"}

var toolSpecs = []toolSpec{
	{"parse", "Parse text such as \"2x + 3\" or \"y = log(x)\" into an expression tree", nil, exprProps},
	{"format", "Show the normalized text the parser reads", []string{"input"}, map[string]string{"input": "string"}},
	{"simplify", "Simplify an expression", nil, exprProps},
	{"evaluate", "Evaluate an expression, at x when given", nil, withProps(exprProps, "x", "number")},
	{"solve", "Solve y = f(x) for x", nil, exprProps},
	{"to_latex", "Convert to LaTeX", nil, exprProps},
	{"describe", "Plain-text, constructor and type descriptions of an expression", nil, exprProps},
	{"sample", "Sample y = f(x) on [from, to]. Optional: steps (integer, default 10)", []string{"from", "to"},
		withProps(withProps(withProps(exprProps, "from", "number"), "to", "number"), "steps", "integer")},
	{"mcp_spec", "Return this tool schema", []string{}, map[string]string{}},
}

func withProps(base map[string]string, key, typ string) map[string]string {
	out := maps.Clone(base)
	out[key] = typ
	return out
}

// HandleToolCall runs one tool request. Malformed trees that violate an
// invariant during simplification or evaluation are reported in Error.
func HandleToolCall(req ToolRequest) (resp ToolResponse) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*InvariantError)
			if !ok {
				panic(r)
			}
			resp = ToolResponse{Error: ie.Error()}
		}
	}()

	if !slices.ContainsFunc(toolSpecs, func(t toolSpec) bool { return t.name == req.Tool }) {
		return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
	}

	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	getNumber := func(key string) (float64, bool, error) {
		v, ok := req.Params[key]
		if !ok {
			return 0, false, nil
		}
		f, ok := v.(float64)
		if !ok {
			return 0, false, fmt.Errorf("param %s must be a number", key)
		}
		return f, true, nil
	}
	getExpr := func() (Expr, error) {
		if v, ok := req.Params["expr"]; ok {
			val, ok := v.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("invalid type for param expr")
			}
			return FromJSON(val)
		}
		if _, ok := req.Params["input"]; ok {
			s, err := getString("input")
			if err != nil {
				return nil, err
			}
			return ParseFunction(s)
		}
		return nil, fmt.Errorf("missing param: input or expr")
	}
	respond := func(e Expr) ToolResponse {
		return ToolResponse{Result: e.toJSON(), LaTeX: LaTeX(e), String: String(e)}
	}

	switch req.Tool {
	case "format":
		s, err := getString("input")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		f := Format(s)
		return ToolResponse{Result: f, String: f}

	case "mcp_spec":
		return ToolResponse{Result: MCPToolSpec(), String: "MCP tool specification"}
	}

	e, err := getExpr()
	if err != nil {
		return ToolResponse{Error: err.Error()}
	}

	switch req.Tool {
	case "parse":
		return respond(e)

	case "simplify":
		return respond(Simplify(e))

	case "to_latex":
		l := LaTeX(e)
		return ToolResponse{Result: l, LaTeX: l, String: String(e)}

	case "describe":
		return ToolResponse{
			Result: map[string]interface{}{
				"type":    e.exprType(),
				"literal": Literal(e),
				"string":  String(e),
			},
			LaTeX:  LaTeX(e),
			String: String(e),
		}

	case "evaluate":
		x, bound, err := getNumber("x")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		var v float64
		if bound {
			v = EvaluateAt(e, x)
		} else {
			v = Evaluate(e)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ToolResponse{Error: fmt.Sprintf("undefined: %v", v), String: fmt.Sprint(v)}
		}
		return ToolResponse{Result: v, String: fmt.Sprint(v)}

	case "solve":
		res := Solve(e)
		if res.Error != "" {
			return ToolResponse{Error: res.Error}
		}
		sols := make([]string, len(res.Solutions))
		latex := make([]string, len(res.Solutions))
		for i, s := range res.Solutions {
			sols[i] = DescribeSolution(s)
			latex[i] = asY(LaTeX(s))
		}
		steps := make([]string, len(res.Steps))
		for i, q := range res.Steps {
			steps[i] = q.String()
		}
		return ToolResponse{
			Result: map[string]interface{}{
				"function":  String(res.Function),
				"solutions": sols,
				"steps":     steps,
			},
			LaTeX:  strings.Join(latex, ", "),
			String: "x = " + strings.Join(sols, ", "),
		}

	case "sample":
		from, ok1, err1 := getNumber("from")
		to, ok2, err2 := getNumber("to")
		if err1 != nil || err2 != nil || !ok1 || !ok2 {
			return ToolResponse{Error: "params from and to must be numbers"}
		}
		steps := 10
		if n, ok, err := getNumber("steps"); err != nil {
			return ToolResponse{Error: err.Error()}
		} else if ok {
			steps = int(n)
		}
		if steps < 1 || steps > 10000 {
			return ToolResponse{Error: "param steps must be between 1 and 10000"}
		}
		return ToolResponse{Result: SampleRange(e, from, to, steps), String: String(e)}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// ============================================================
// MCP spec
// ============================================================

func MCPToolSpec() string {
	tools := make([]map[string]interface{}, len(toolSpecs))
	for i, t := range toolSpecs {
		required := t.required
		if required == nil {
			required = []string{}
		}
		tools[i] = ts(t.name, t.description, required, t.props)
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
