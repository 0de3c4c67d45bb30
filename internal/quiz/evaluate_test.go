package quiz

import (
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"42", 42, false},
		{"3.5", 3.5, false},
		{"3,5", 3.5, false},
		{"-12,75", -12.75, false},
		{" 1 234,56 ", 1234.56, false},
		{"1 234,56", 1234.56, false}, // narrow grouping space
		{"", 0, true},
		{"abc", 0, true},
		{"12,34,56", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseNumber(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseNumber(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseNumber(%q): unexpected error %v", tc.in, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("ParseNumber(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestEvaluateCalculation(t *testing.T) {
	q := Question{
		Kind:   KindCalculation,
		Answer: 100,
	}

	tests := []struct {
		input  string
		policy TolerancePolicy
		want   bool
	}{
		{"100", PracticeTolerance, true},
		{"100,05", PracticeTolerance, true},  // within relative 0.1 tolerance
		{"100,3", PracticeTolerance, false},  // beyond floor 0.1
		{"100,3", ExamTolerance, true},       // exam floor is 0.5
		{"105", ExamTolerance, false},
		{"", ExamTolerance, false},
		{"n/a", ExamTolerance, false},
	}
	for _, tc := range tests {
		if got := Evaluate(q, tc.input, tc.policy); got != tc.want {
			t.Errorf("Evaluate(100, %q, %+v) = %v, want %v", tc.input, tc.policy, got, tc.want)
		}
	}
}

func TestEvaluateRelativeToleranceScalesWithAnswer(t *testing.T) {
	// For a 100 000 answer, exam tolerance is 0.5% = 500.
	q := Question{Kind: KindCalculation, Answer: 100000}

	if !Evaluate(q, "100400", ExamTolerance) {
		t.Error("100400 should be accepted within 0.5% of 100000")
	}
	if Evaluate(q, "100600", ExamTolerance) {
		t.Error("100600 should be rejected beyond 0.5% of 100000")
	}
}

func TestEvaluateTheory(t *testing.T) {
	q := Question{
		Kind:       KindTheory,
		AnswerText: "Le taux de marque",
		Choices:    []string{"Le taux de marge", "Le taux de marque"},
	}

	if !Evaluate(q, "Le taux de marque", ExamTolerance) {
		t.Error("exact option should be accepted")
	}
	if Evaluate(q, "le taux de marque", ExamTolerance) {
		t.Error("theory grading is exact, case included")
	}
	if Evaluate(q, "", ExamTolerance) {
		t.Error("empty submission should be incorrect")
	}
}

func TestTolerancePolicy(t *testing.T) {
	p := TolerancePolicy{AbsoluteFloor: 0.5, RelativeFraction: 0.005}

	if got := p.Tolerance(10); got != 0.5 {
		t.Errorf("Tolerance(10) = %v, want floor 0.5", got)
	}
	if got := p.Tolerance(1000); got != 5 {
		t.Errorf("Tolerance(1000) = %v, want relative 5", got)
	}
	if got := p.Tolerance(-1000); got != 5 {
		t.Errorf("Tolerance(-1000) = %v, want 5 (absolute value)", got)
	}
}
