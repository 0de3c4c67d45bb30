package finmath

import (
	"math"
	"testing"
)

func TestAmortizationScheduleShape(t *testing.T) {
	rows := AmortizationSchedule(100000, 10, 4)

	if len(rows) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(rows))
	}
	if rows[0].Period != 1 || rows[9].Period != 10 {
		t.Errorf("periods should run 1..10, got %d..%d", rows[0].Period, rows[9].Period)
	}
	if rows[0].RemainingStart != 100000 {
		t.Errorf("first row opens at %v, want 100000", rows[0].RemainingStart)
	}
}

func TestAmortizationScheduleFirstPeriodInterest(t *testing.T) {
	// 150 000 € over 20 years at 3.5%: first-year interest is simply K0 * i.
	rows := AmortizationSchedule(150000, 20, 3.5)
	if got := rows[0].Interest; math.Abs(got-5250) > 1e-9 {
		t.Errorf("first period interest = %v, want 5250", got)
	}
}

func TestAmortizationScheduleCloses(t *testing.T) {
	rows := AmortizationSchedule(80000, 15, 2.75)

	last := rows[len(rows)-1]
	if math.Abs(last.RemainingEnd) > 1e-6 {
		t.Errorf("final balance = %v, want 0", last.RemainingEnd)
	}

	var amortized float64
	for _, r := range rows {
		amortized += r.Amortization
	}
	if math.Abs(amortized-80000) > 1e-6 {
		t.Errorf("total amortization = %v, want 80000", amortized)
	}
}

func TestAmortizationScheduleChains(t *testing.T) {
	rows := AmortizationSchedule(50000, 8, 5)
	for i := 1; i < len(rows); i++ {
		if math.Abs(rows[i].RemainingStart-rows[i-1].RemainingEnd) > 1e-9 {
			t.Errorf("row %d opens at %v but row %d closed at %v",
				i+1, rows[i].RemainingStart, i, rows[i-1].RemainingEnd)
		}
		// Annuity is constant across the table.
		if math.Abs(rows[i].Annuity-rows[0].Annuity) > 1e-9 {
			t.Errorf("row %d annuity %v differs from %v", i+1, rows[i].Annuity, rows[0].Annuity)
		}
	}
}
