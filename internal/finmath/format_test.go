package finmath

import "testing"

func TestFormatEUR(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0,00 €"},
		{999, "999,00 €"},
		{1000, "1 000,00 €"},
		{12345.5, "12 345,50 €"},
		{1234567.89, "1 234 567,89 €"},
		{-1234.56, "-1 234,56 €"},
	}
	for _, tc := range tests {
		if got := FormatEUR(tc.in); got != tc.want {
			t.Errorf("FormatEUR(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(3.456); got != "3,46%" {
		t.Errorf("FormatPercent(3.456) = %q, want %q", got, "3,46%")
	}
	if got := FormatPercent(5); got != "5,00%" {
		t.Errorf("FormatPercent(5) = %q, want %q", got, "5,00%")
	}
}
