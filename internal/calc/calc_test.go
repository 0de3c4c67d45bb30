package calc

import (
	"math"
	"testing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10/4", 2.5},
		{"1 + 2 * 3", 7},
		{"2^10", 1024},
		{"2^3^2", 512}, // right-associative
		{"-3^2", -9},
		{"(-3)^2", 9},
		{"--5", 5},
		{"√16", 4},
		{"√(9+16)", 5},
		{"50%", 0.5},
		{"200*10%", 20},
		{"100*(1+5%)^3", 115.7625},
		{"2(3+1)", 8},
		{"(1+2)(3+4)", 21},
		{"3,5+1,5", 5},
		{"6×7", 42},
		{"10÷4", 2.5},
		{"8−3", 5},
		{"0,1+0,2", 0.3},
		{"1 000 + 500", 1500},
		{"12 345,50", 12345.50},
		{"150 000*0,035", 5250},
		{"1 000*2", 2000}, // non-breaking grouping space, as the prompts render
	}
	for _, tc := range tests {
		got, err := Eval(tc.expr)
		if err != nil {
			t.Errorf("Eval(%q): unexpected error %v", tc.expr, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Eval(%q) = %v, want %v", tc.expr, got, tc.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	for _, expr := range []string{
		"",
		"2+",
		"(1+2",
		"1+2)",
		"2 & 3",
		"1..2",
		"abc",
	} {
		if got, err := Eval(expr); err == nil {
			t.Errorf("Eval(%q) = %v, want error", expr, got)
		}
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	// Mirrors float semantics of the course calculator: no panic, Inf result.
	got, err := Eval("1/0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("Eval(1/0) = %v, want +Inf", got)
	}
}
