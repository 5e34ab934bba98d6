package gograph_test

import (
	"testing"

	"github.com/alecthomas/repr"

	"github.com/njchilds90/gograph"
)

func TestExtractTerms_Leaves(t *testing.T) {
	if got := gograph.ExtractTerms(gograph.N(4), false); got.Kind != gograph.ExtractAll {
		t.Errorf("want all, got %s", repr.String(got))
	}
	if got := gograph.ExtractTerms(gograph.N(4), true); got.Kind != gograph.ExtractNone {
		t.Errorf("want none, got %s", repr.String(got))
	}
	got := gograph.ExtractTerms(gograph.X(), false)
	if got.Kind != gograph.ExtractNone || !got.Rest.Equal(gograph.X()) {
		t.Errorf("want none with rest x, got %s", repr.String(got))
	}
}

func TestExtractTerms_ConstantTerm(t *testing.T) {
	e := gograph.AddOf(gograph.MulOf(gograph.N(2), gograph.X()), gograph.N(3))
	got := gograph.ExtractTerms(e, false)
	if got.Kind != gograph.ExtractSingle {
		t.Fatalf("want single, got %s", got.Kind)
	}
	if !got.Terms.Equal(gograph.N(3)) || !got.Rest.Equal(gograph.MulOf(gograph.N(2), gograph.X())) {
		t.Errorf("want 3 and 2x, got %s and %s", gograph.Literal(got.Terms), gograph.Literal(got.Rest))
	}
}

func TestExtractTerms_VariableTerm(t *testing.T) {
	got := gograph.ExtractTerms(gograph.AddOf(gograph.X(), gograph.N(3)), true)
	if got.Kind != gograph.ExtractSingle {
		t.Fatalf("want single, got %s", got.Kind)
	}
	if !got.Terms.Equal(gograph.X()) || !got.Rest.Equal(gograph.N(3)) {
		t.Errorf("want x and 3, got %s and %s", gograph.Literal(got.Terms), gograph.Literal(got.Rest))
	}
}

func TestExtractTerms_Subtraction(t *testing.T) {
	got := gograph.ExtractTerms(gograph.SubOf(gograph.X(), gograph.N(3)), true)
	if got.Kind != gograph.ExtractSingle {
		t.Fatalf("want single, got %s", got.Kind)
	}
	if !got.Terms.Equal(gograph.X()) || !got.Rest.Equal(gograph.N(-3)) {
		t.Errorf("want x and -3, got %s and %s", gograph.Literal(got.Terms), gograph.Literal(got.Rest))
	}
}

func TestExtractTerms_LogOfProduct(t *testing.T) {
	e := gograph.LogOf(gograph.N(2), gograph.MulOf(gograph.N(8), gograph.X()))
	got := gograph.ExtractTerms(e, false)
	if got.Kind != gograph.ExtractSingle {
		t.Fatalf("want single, got %s", repr.String(got))
	}
	wantTerms := gograph.LogOf(gograph.N(2), gograph.N(8))
	wantRest := gograph.LogOf(gograph.N(2), gograph.X())
	if !got.Terms.Equal(wantTerms) || !got.Rest.Equal(wantRest) {
		t.Errorf("want %s and %s, got %s and %s",
			gograph.Literal(wantTerms), gograph.Literal(wantRest), gograph.Literal(got.Terms), gograph.Literal(got.Rest))
	}
}

func TestExtractionKind_String(t *testing.T) {
	for k, want := range map[gograph.ExtractionKind]string{
		gograph.ExtractNone:   "none",
		gograph.ExtractSingle: "single",
		gograph.ExtractAll:    "all",
	} {
		if got := k.String(); got != want {
			t.Errorf("want %s, got %s", want, got)
		}
	}
}
