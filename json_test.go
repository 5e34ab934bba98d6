package gograph_test

import (
	"encoding/json"
	"testing"

	"github.com/njchilds90/gograph"
)

func TestToJSON(t *testing.T) {
	j, err := gograph.ToJSON(gograph.MulOf(gograph.N(2), gograph.X()))
	if err != nil {
		t.Fatalf("ToJSON error: %v", err)
	}
	want := `{"lhs":{"type":"num","value":2},"rhs":{"type":"x"},"type":"multiply"}`
	if j != want {
		t.Errorf("want %s, got %s", want, j)
	}

	j, _ = gograph.ToJSON(gograph.PowOf(gograph.X(), gograph.N(2)))
	want = `{"base":{"type":"x"},"exp":{"type":"num","value":2},"type":"power"}`
	if j != want {
		t.Errorf("want %s, got %s", want, j)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	x := gograph.X()
	e := gograph.RootOf(gograph.N(3), gograph.LogOf(gograph.N(2), gograph.DivOf(
		gograph.SubOf(gograph.PowOf(x, gograph.N(2)), gograph.N(1)),
		gograph.MulOf(gograph.N(-4), gograph.AddOf(x, gograph.N(1))),
	)))
	j, err := gograph.ToJSON(e)
	if err != nil {
		t.Fatalf("ToJSON error: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(j), &m); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	got, err := gograph.FromJSON(m)
	if err != nil {
		t.Fatalf("FromJSON error: %v", err)
	}
	if !got.Equal(e) {
		t.Errorf("want %s, got %s", gograph.Literal(e), gograph.Literal(got))
	}
}

func TestFromJSON_Errors(t *testing.T) {
	cases := []map[string]interface{}{
		nil,
		{"value": 1.0},
		{"type": "bogus"},
		{"type": "num", "value": 2.5},
		{"type": "num", "value": "2"},
		{"type": "add", "lhs": map[string]interface{}{"type": "x"}},
		{"type": "log", "base": "10", "arg": map[string]interface{}{"type": "x"}},
	}
	for _, c := range cases {
		if _, err := gograph.FromJSON(c); err == nil {
			t.Errorf("FromJSON(%v): want an error", c)
		}
	}
}
