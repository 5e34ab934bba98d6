package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestConvertIfUtf16(t *testing.T) {
	var b []byte
	for _, c := range []byte("x+1\n") {
		b = append(b, c, 0)
	}
	if got := convertIfUtf16(string(b)); got != "x+1\n" {
		t.Errorf("want %q, got %q", "x+1\n", got)
	}
	if got := convertIfUtf16("2x + 3x"); got != "2x + 3x" {
		t.Errorf("plain text should pass through, got %q", got)
	}
}

func TestExpressionLines(t *testing.T) {
	got := expressionLines("# functions\n\n2x + 3x\r\n  y = x^2 \n")
	if len(got) != 2 || got[0] != "2x + 3x" || got[1] != "y = x^2" {
		t.Errorf("unexpected lines: %q", got)
	}
}

func TestReplLine(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2x + 3x", "5x\n"},
		{"2 + 3", "5\n  ≈ 5\n"},
		{":at 3 x^2", "9\n"},
		{":latex x/2", "\\frac{x}{2}\n"},
		{":solve 2*x + 4", "x = (y - 4) / 2\n"},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		if err := replLine(&buf, c.in); err != nil {
			t.Errorf("%q: unexpected error: %v", c.in, err)
			continue
		}
		if buf.String() != c.want {
			t.Errorf("%q: want %q, got %q", c.in, c.want, buf.String())
		}
	}
}

func TestReplLine_Errors(t *testing.T) {
	var buf bytes.Buffer
	if err := replLine(&buf, ":bogus x"); err == nil || !strings.Contains(err.Error(), ":bogus") {
		t.Errorf("want unknown command error, got %v", err)
	}
	if err := replLine(&buf, ":at two x"); err == nil {
		t.Errorf("want an error for a non-numeric x")
	}
	if err := replLine(&buf, ":solve 5"); err == nil {
		t.Errorf("want an error solving a constant")
	}
	if err := replLine(&buf, "2y"); err == nil {
		t.Errorf("want a parse error")
	}
}
