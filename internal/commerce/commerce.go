// Package commerce implements the commercial-management formulas of the
// course: margins, markup, VAT conversions, pricing coefficients, stock
// rotation and break-even analysis.
//
// Like finmath, everything here is pure and unguarded; question templates
// sample parameters that keep denominators away from zero. Day counts use
// the 360-day commercial year.
package commerce

// MarginValue is the gross margin: PV HT - PA HT.
func MarginValue(pvHT, paHT float64) float64 {
	return pvHT - paHT
}

// MarginRatePercent is the taux de marge, margin over purchase cost.
func MarginRatePercent(margin, paHT float64) float64 {
	return margin / paHT * 100
}

// MarkupRatePercent is the taux de marque, margin over selling price.
// Always below the margin rate for a positive margin; the two are the
// classic exam trap.
func MarkupRatePercent(margin, pvHT float64) float64 {
	return margin / pvHT * 100
}

// MultiplierCoefficient is PV TTC / PA HT.
func MultiplierCoefficient(pvTTC, paHT float64) float64 {
	return pvTTC / paHT
}

// HTFromTTC strips VAT from a tax-inclusive price.
func HTFromTTC(ttc, vatPercent float64) float64 {
	return ttc / (1 + vatPercent/100)
}

// TTCFromHT applies VAT to a tax-exclusive price.
func TTCFromHT(ht, vatPercent float64) float64 {
	return ht * (1 + vatPercent/100)
}

// PriceFromMarkup derives the selling price HT from the purchase price and a
// target markup rate: PV HT = PA HT / (1 - taux de marque).
func PriceFromMarkup(paHT, markupPercent float64) float64 {
	return paHT / (1 - markupPercent/100)
}

// CostPrice is the coût de revient: purchase price minus reductions plus
// purchase costs.
func CostPrice(pa, reductions, costs float64) float64 {
	return pa - reductions + costs
}

// StockTurnoverDays is the average storage delay in days:
// (average stock value / cost of goods sold) * 360.
func StockTurnoverDays(avgStockValue, cogs float64) float64 {
	return avgStockValue / cogs * 360
}

// BreakEvenRevenue is the seuil de rentabilité:
// fixed costs / contribution margin rate.
func BreakEvenRevenue(fixedCosts, contributionMarginRatePercent float64) float64 {
	return fixedCosts / (contributionMarginRatePercent / 100)
}

// BreakEvenDate is the point mort in days of the commercial year:
// (break-even revenue / annual revenue) * 360.
func BreakEvenDate(breakEven, annualRevenue float64) float64 {
	return breakEven / annualRevenue * 360
}
