package finmath

import (
	"math"
	"testing"
)

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestSimpleInterestValue(t *testing.T) {
	// 1000 € at 6% simple interest for 6 months.
	got := SimpleInterestValue(1000, 0.5, 6)
	if !approx(got, 1030, 1e-9) {
		t.Errorf("SimpleInterestValue(1000, 0.5, 6) = %v, want 1030", got)
	}
}

func TestCompoundInterestValue(t *testing.T) {
	got := CompoundInterestValue(1000, 2, 10)
	if !approx(got, 1210, 1e-9) {
		t.Errorf("CompoundInterestValue(1000, 2, 10) = %v, want 1210", got)
	}

	// Worked example from the course sheets.
	got = CompoundInterestValue(1000, 5, 4)
	if math.Abs(got-1216.65) > 0.01 {
		t.Errorf("CompoundInterestValue(1000, 5, 4) = %v, want 1216.65", got)
	}
}

func TestCompoundExceedsSimpleBeyondOnePeriod(t *testing.T) {
	for _, n := range []float64{2, 5, 10} {
		simple := SimpleInterestValue(1000, n, 5)
		compound := CompoundInterestValue(1000, n, 5)
		if compound <= simple {
			t.Errorf("n=%v: compound %v should exceed simple %v", n, compound, simple)
		}
	}
}

func TestPresentValueInvertsCompounding(t *testing.T) {
	tests := []struct {
		c0, n, rate float64
	}{
		{1000, 2, 10},
		{2500, 7, 3.5},
		{180, 12, 0.75},
	}
	for _, tc := range tests {
		cn := CompoundInterestValue(tc.c0, tc.n, tc.rate)
		back := PresentValue(cn, tc.n, tc.rate)
		if !approx(back, tc.c0, 1e-6) {
			t.Errorf("PresentValue(CompoundInterestValue(%v, %v, %v)) = %v, want %v",
				tc.c0, tc.n, tc.rate, back, tc.c0)
		}
	}
}

func TestCompoundRateAndDuration(t *testing.T) {
	rate := CompoundRate(1000, 1210, 2)
	if !approx(rate, 10, 1e-9) {
		t.Errorf("CompoundRate(1000, 1210, 2) = %v, want 10", rate)
	}

	n := CompoundDuration(1000, 1210, 10)
	if !approx(n, 2, 1e-9) {
		t.Errorf("CompoundDuration(1000, 1210, 10) = %v, want 2", n)
	}
}

func TestCumulativeInterest(t *testing.T) {
	got := CumulativeInterest(1000, 2, 10)
	if !approx(got, 210, 1e-9) {
		t.Errorf("CumulativeInterest(1000, 2, 10) = %v, want 210", got)
	}
}

func TestEquivalentRateComposesBackToAnnual(t *testing.T) {
	for _, tc := range []struct {
		annual float64
		k      float64
	}{
		{12, 12},
		{6, 4},
		{4.5, 2},
	} {
		im := EquivalentRate(tc.annual, tc.k)
		recomposed := (math.Pow(1+im/100, tc.k) - 1) * 100
		if !approx(recomposed, tc.annual, 1e-9) {
			t.Errorf("EquivalentRate(%v, %v): recomposed annual %v, want %v",
				tc.annual, tc.k, recomposed, tc.annual)
		}
		// Equivalent rate is always below the proportional rate.
		if im >= tc.annual/tc.k {
			t.Errorf("EquivalentRate(%v, %v) = %v, should be below proportional %v",
				tc.annual, tc.k, im, tc.annual/tc.k)
		}
	}
}

func TestConstantAnnuityZeroRate(t *testing.T) {
	got := ConstantAnnuity(1200, 12, 0)
	if !approx(got, 100, 1e-9) {
		t.Errorf("ConstantAnnuity(1200, 12, 0) = %v, want 100", got)
	}
}

func TestConstantAnnuityAmortizesExactly(t *testing.T) {
	// The present value of n constant annuities at rate i must equal the
	// borrowed principal.
	k0, n, rate := 150000.0, 20.0, 3.5
	a := ConstantAnnuity(k0, n, rate)

	var pv float64
	for p := 1.0; p <= n; p++ {
		pv += PresentValue(a, p, rate)
	}
	if !approx(pv, k0, 1e-6) {
		t.Errorf("sum of discounted annuities = %v, want %v", pv, k0)
	}
}
