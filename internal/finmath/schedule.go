package finmath

import "math"

// ScheduleRow is one period of a constant-annuity amortization table.
type ScheduleRow struct {
	Period         int
	RemainingStart float64
	Interest       float64
	Amortization   float64
	Annuity        float64
	RemainingEnd   float64
}

// AmortizationSchedule builds the constant-annuity table for a loan of k0
// over n periods at iPercent. For each period p:
//
//	interest     = remainingStart * i
//	amortization = annuity - interest
//	remainingEnd = remainingStart - amortization
//
// The closing balance is clamped at zero so floating-point drift on the last
// period never leaves a negative residual.
func AmortizationSchedule(k0 float64, n int, iPercent float64) []ScheduleRow {
	i := iPercent / 100
	annuity := ConstantAnnuity(k0, float64(n), iPercent)
	rows := make([]ScheduleRow, 0, n)

	balance := k0
	for p := 1; p <= n; p++ {
		interest := balance * i
		amortization := annuity - interest
		remainingEnd := math.Max(0, balance-amortization)

		rows = append(rows, ScheduleRow{
			Period:         p,
			RemainingStart: balance,
			Interest:       interest,
			Amortization:   amortization,
			Annuity:        annuity,
			RemainingEnd:   remainingEnd,
		})

		balance = remainingEnd
	}

	return rows
}
