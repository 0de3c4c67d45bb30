// Package finmath implements the closed-form financial formulas used by the
// question generator and the course sheets: capitalisation (simple and
// compound), discounting, rate equivalence and constant-annuity loans.
//
// All functions are pure and never guard against degenerate inputs (zero
// rates in divisions, zero durations); callers are responsible for sampling
// parameters that keep the math well-defined. Durations and rates share the
// banking convention of the course material: a 360-day commercial year and
// rates expressed in percent.
package finmath

import "math"

// SimpleInterestValue returns the acquired value of a principal c0 placed at
// iPercent simple interest for n periods: Cn = C0 (1 + n*i).
// n is in the unit of the rate; callers pass fractional years for durations
// stated in months (n/12).
func SimpleInterestValue(c0, n, iPercent float64) float64 {
	return c0 * (1 + n*(iPercent/100))
}

// CompoundInterestValue returns the acquired value at compound interest:
// Cn = C0 (1 + i)^n.
func CompoundInterestValue(c0, n, iPercent float64) float64 {
	return c0 * math.Pow(1+iPercent/100, n)
}

// PresentValue discounts a future value cn back over n periods:
// C0 = Cn (1 + i)^-n. Inverse of CompoundInterestValue.
func PresentValue(cn, n, iPercent float64) float64 {
	return cn * math.Pow(1+iPercent/100, -n)
}

// CompoundRate solves Cn = C0 (1+i)^n for the rate, in percent:
// i = (Cn/C0)^(1/n) - 1.
func CompoundRate(c0, cn, n float64) float64 {
	return (math.Pow(cn/c0, 1/n) - 1) * 100
}

// CompoundDuration solves Cn = C0 (1+i)^n for n:
// n = ln(Cn/C0) / ln(1+i).
func CompoundDuration(c0, cn, iPercent float64) float64 {
	return math.Log(cn/c0) / math.Log(1+iPercent/100)
}

// CumulativeInterest returns the total interest earned by c0 at compound
// interest over n periods: I = Cn - C0.
func CumulativeInterest(c0, n, iPercent float64) float64 {
	return CompoundInterestValue(c0, n, iPercent) - c0
}

// EquivalentRate converts an annual compound rate to the equivalent rate of a
// sub-period, in percent: im = (1+ia)^(1/k) - 1 with k sub-periods per year.
// Dividing the annual rate by k is the proportional rate, not the equivalent
// one; the course insists on the distinction.
func EquivalentRate(annualRatePercent, subPeriodsPerYear float64) float64 {
	return (math.Pow(1+annualRatePercent/100, 1/subPeriodsPerYear) - 1) * 100
}

// ConstantAnnuity returns the constant periodic payment that amortizes a loan
// of k0 over n periods at iPercent: a = K0 * i / (1 - (1+i)^-n).
// A zero rate degenerates to straight division of the principal.
func ConstantAnnuity(k0, n, iPercent float64) float64 {
	i := iPercent / 100
	if i == 0 {
		return k0 / n
	}
	return k0 * (i / (1 - math.Pow(1+i, -n)))
}
