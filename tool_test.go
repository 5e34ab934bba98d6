package gograph_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/njchilds90/gograph"
)

func call(tool string, params map[string]interface{}) gograph.ToolResponse {
	return gograph.HandleToolCall(gograph.ToolRequest{Tool: tool, Params: params})
}

func TestHandleToolCall_Simplify(t *testing.T) {
	resp := call("simplify", map[string]interface{}{"input": "2x + 3x"})
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if resp.String != "5x" {
		t.Errorf("want 5x, got %s", resp.String)
	}
	tree, ok := resp.Result.(map[string]interface{})
	if !ok || tree["type"] != "multiply" {
		t.Errorf("want a multiply tree, got %v", resp.Result)
	}
}

func TestHandleToolCall_Format(t *testing.T) {
	resp := call("format", map[string]interface{}{"input": "2x+3x"})
	if resp.Result != "2 * x + 3 * x" {
		t.Errorf("want 2 * x + 3 * x, got %v", resp.Result)
	}
}

func TestHandleToolCall_Evaluate(t *testing.T) {
	resp := call("evaluate", map[string]interface{}{"input": "x^2 + 1", "x": 2.0})
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if v, ok := resp.Result.(float64); !ok || v != 5 {
		t.Errorf("want 5, got %v", resp.Result)
	}

	resp = call("evaluate", map[string]interface{}{"input": "1/x", "x": 0.0})
	if resp.Error == "" {
		t.Errorf("want an error for 1/0, got %v", resp.Result)
	}

	resp = call("evaluate", map[string]interface{}{"input": "x + 1"})
	if !strings.Contains(resp.Error, "invariant") {
		t.Errorf("want an invariant error, got %q", resp.Error)
	}

	resp = call("evaluate", map[string]interface{}{"input": "x", "x": "two"})
	if resp.Error == "" {
		t.Errorf("want an error for a string x")
	}
}

func TestHandleToolCall_SimplifyDivisionByZero(t *testing.T) {
	expr := map[string]interface{}{
		"type": "divide",
		"lhs":  map[string]interface{}{"type": "x"},
		"rhs":  map[string]interface{}{"type": "num", "value": 0.0},
	}
	resp := call("simplify", map[string]interface{}{"expr": expr})
	if !strings.Contains(resp.Error, "division by zero") {
		t.Errorf("want division by zero, got %q", resp.Error)
	}
}

func TestHandleToolCall_Solve(t *testing.T) {
	resp := call("solve", map[string]interface{}{"input": "y = 2*x + 4"})
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if resp.String != "x = (y - 4) / 2" {
		t.Errorf("want x = (y - 4) / 2, got %s", resp.String)
	}
	res := resp.Result.(map[string]interface{})
	if sols := res["solutions"].([]string); len(sols) != 1 {
		t.Errorf("want 1 solution, got %v", sols)
	}

	resp = call("solve", map[string]interface{}{"input": "5"})
	if resp.Error != gograph.ErrNoVariable.Error() {
		t.Errorf("want %q, got %q", gograph.ErrNoVariable, resp.Error)
	}
}

func TestHandleToolCall_Sample(t *testing.T) {
	resp := call("sample", map[string]interface{}{"input": "x", "from": 0.0, "to": 1.0, "steps": 4.0})
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if pts := resp.Result.([]gograph.Point); len(pts) != 5 {
		t.Errorf("want 5 points, got %d", len(pts))
	}

	resp = call("sample", map[string]interface{}{"input": "x", "to": 1.0})
	if resp.Error == "" {
		t.Errorf("want an error without from")
	}
	resp = call("sample", map[string]interface{}{"input": "x", "from": 0.0, "to": 1.0, "steps": 0.0})
	if resp.Error == "" {
		t.Errorf("want an error for zero steps")
	}
}

func TestHandleToolCall_Describe(t *testing.T) {
	resp := call("describe", map[string]interface{}{"input": "2x"})
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	res := resp.Result.(map[string]interface{})
	if res["literal"] != "MulOf(N(2), X())" || res["type"] != "multiply" {
		t.Errorf("unexpected description: %v", res)
	}
}

func TestHandleToolCall_ToLaTeX(t *testing.T) {
	resp := call("to_latex", map[string]interface{}{"input": "x/2"})
	if resp.Result != `\frac{x}{2}` {
		t.Errorf("want \\frac{x}{2}, got %v", resp.Result)
	}
}

func TestHandleToolCall_BadRequests(t *testing.T) {
	if resp := call("nope", nil); resp.Error != "unknown tool: nope" {
		t.Errorf("want unknown tool, got %q", resp.Error)
	}
	if resp := call("simplify", map[string]interface{}{}); resp.Error != "missing param: input or expr" {
		t.Errorf("want missing param, got %q", resp.Error)
	}
	if resp := call("parse", map[string]interface{}{"input": "(x"}); resp.Error == "" {
		t.Errorf("want a parse error")
	}
	if resp := call("parse", map[string]interface{}{"expr": "x"}); resp.Error == "" {
		t.Errorf("want an error for a string expr")
	}
}

func TestMCPToolSpec(t *testing.T) {
	var spec struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	if err := json.Unmarshal([]byte(gograph.MCPToolSpec()), &spec); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	names := map[string]bool{}
	for _, tool := range spec.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"parse", "format", "simplify", "evaluate", "solve", "to_latex", "describe", "sample", "mcp_spec"} {
		if !names[want] {
			t.Errorf("schema is missing tool %s", want)
		}
	}
}
