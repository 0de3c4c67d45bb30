package quiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/mbriand/finquiz/internal/commerce"
	"github.com/mbriand/finquiz/internal/finmath"
)

// Management theme keys.
const (
	ThemeMargins       = "margins"
	ThemePricing       = "pricing"
	ThemeStocks        = "stocks"
	ThemeProfitability = "profitability"
)

var managementTemplates = []template{
	{id: "m_marge", themeKey: ThemeMargins, build: buildMarginRate},
	{id: "m_marque", themeKey: ThemeMargins, build: buildMarkupRate},
	{id: "m_pricing", themeKey: ThemePricing, build: buildPriceFormation},
	{id: "m_ht", themeKey: ThemePricing, build: buildHTFromTTC},
	{id: "m_coeff", themeKey: ThemePricing, build: buildMultiplier},
	{id: "m_stock", themeKey: ThemeStocks, build: buildStockDelay},
	{id: "m_sr", themeKey: ThemeProfitability, build: buildBreakEven},
	{id: "m_pm", themeKey: ThemeProfitability, build: buildBreakEvenDate},
}

func buildMarginRate(rng *rand.Rand) Question {
	pa := float64(randRange(rng, 40, 120))
	pv := pa + float64(randRange(rng, 20, 60))
	margin := commerce.MarginValue(pv, pa)
	res := commerce.MarginRatePercent(margin, pa)

	return Question{
		ID:         "m_marge",
		Module:     ModuleManagement,
		Theme:      "Taux de Marge",
		Difficulty: DifficultyMedium,
		Kind:       KindCalculation,
		Text: fmt.Sprintf("Un commerçant achète un produit %.0f € HT et le revend %.0f € HT. Quel est son taux de marge ?",
			pa, pv),
		Answer:         roundTo(res, 2),
		Decimals:       2,
		Unit:           "%",
		CourseReminder: "Taux de marge = Marge / PA HT",
		Method:         "1. Calculer la marge brute (PV - PA). 2. Diviser par le coût d'achat HT.",
		Explanation: fmt.Sprintf("Marge = %.0f €. Taux = (%.0f / %.0f) × 100 = %.2f%%",
			margin, margin, pa, res),
		TrapWarning: "Confusion classique : le taux de MARGE se calcule sur l'ACHAT, le taux de MARQUE sur la VENTE.",
	}
}

func buildMarkupRate(rng *rand.Rand) Question {
	pa := float64(randRange(rng, 40, 120))
	pv := pa + float64(randRange(rng, 20, 60))
	margin := commerce.MarginValue(pv, pa)
	res := commerce.MarkupRatePercent(margin, pv)

	return Question{
		ID:         "m_marque",
		Module:     ModuleManagement,
		Theme:      "Taux de Marque",
		Difficulty: DifficultyMedium,
		Kind:       KindCalculation,
		Text: fmt.Sprintf("Un commerçant achète un produit %.0f € HT et le revend %.0f € HT. Quel est son taux de marque ?",
			pa, pv),
		Answer:         roundTo(res, 2),
		Decimals:       2,
		Unit:           "%",
		CourseReminder: "Taux de marque = Marge / PV HT",
		Method:         "1. Calculer la marge brute (PV - PA). 2. Diviser par le prix de vente HT.",
		Explanation: fmt.Sprintf("Marge = %.0f €. Taux = (%.0f / %.0f) × 100 = %.2f%%",
			margin, margin, pv, res),
		TrapWarning: "Confusion classique : le taux de MARGE se calcule sur l'ACHAT, le taux de MARQUE sur la VENTE.",
	}
}

func buildPriceFormation(rng *rand.Rand) Question {
	pa := float64(randRange(rng, 50, 200))
	markup := float64(randRange(rng, 4, 8) * 5) // 20..40%
	vat := 20.0
	pvHT := commerce.PriceFromMarkup(pa, markup)
	res := commerce.TTCFromHT(pvHT, vat)

	return Question{
		ID:         "m_pricing",
		Module:     ModuleManagement,
		Theme:      "Formation des Prix",
		Difficulty: DifficultyEasy,
		Kind:       KindCalculation,
		Text: fmt.Sprintf("Un article est acheté %.0f € HT. Le commerçant applique un taux de marque de %.0f%% et une TVA de %.0f%%. Quel est le prix de vente TTC ?",
			pa, markup, vat),
		Answer:         roundTo(res, 2),
		Decimals:       2,
		Unit:           "€",
		CourseReminder: "PV HT = PA HT / (1 - Taux de Marque)",
		Method:         "1. Trouver le PV HT en utilisant le taux de marque. 2. Appliquer la TVA.",
		Explanation: fmt.Sprintf("PV HT = %.0f / (1 - %.2f) = %.2f €. TTC = %.2f × %.2f = %.2f €",
			pa, markup/100, pvHT, pvHT, 1+vat/100, res),
	}
}

func buildHTFromTTC(rng *rand.Rand) Question {
	vats := []float64{5.5, 10, 20}
	vat := vats[rng.IntN(len(vats))]
	ttc := float64(randRange(rng, 50, 500))
	res := commerce.HTFromTTC(ttc, vat)

	return Question{
		ID:         "m_ht",
		Module:     ModuleManagement,
		Theme:      "Formation des Prix",
		Difficulty: DifficultyEasy,
		Kind:       KindCalculation,
		Text: fmt.Sprintf("Un article est affiché %.0f € TTC avec une TVA de %.1f%%. Quel est son prix HT ?",
			ttc, vat),
		Answer:         roundTo(res, 2),
		Decimals:       2,
		Unit:           "€",
		CourseReminder: "HT = TTC / (1 + taux de TVA)",
		Method:         "Diviser le prix TTC par le coefficient de TVA.",
		Explanation: fmt.Sprintf("HT = %.0f / %.3f = %.2f €",
			ttc, 1+vat/100, res),
		TrapWarning: "On divise par (1 + TVA), on ne retranche pas le pourcentage du TTC.",
	}
}

func buildMultiplier(rng *rand.Rand) Question {
	pa := float64(randRange(rng, 40, 150))
	pvTTC := commerce.TTCFromHT(pa+float64(randRange(rng, 20, 80)), 20)
	res := commerce.MultiplierCoefficient(pvTTC, pa)

	return Question{
		ID:         "m_coeff",
		Module:     ModuleManagement,
		Theme:      "Formation des Prix",
		Difficulty: DifficultyMedium,
		Kind:       KindCalculation,
		Text: fmt.Sprintf("Un produit acheté %.0f € HT est revendu %.2f € TTC. Quel est le coefficient multiplicateur ?",
			pa, pvTTC),
		Answer:         roundTo(res, 2),
		Decimals:       2,
		Unit:           "",
		CourseReminder: "Coefficient = PV TTC / PA HT",
		Method:         "Diviser le prix de vente TTC par le prix d'achat HT.",
		Explanation: fmt.Sprintf("Coefficient = %.2f / %.0f = %.2f",
			pvTTC, pa, res),
	}
}

func buildStockDelay(rng *rand.Rand) Question {
	stock := float64(randRange(rng, 20, 90) * 1000)
	cogs := float64(randRange(rng, 200, 600) * 1000)
	res := commerce.StockTurnoverDays(stock, cogs)

	return Question{
		ID:         "m_stock",
		Module:     ModuleManagement,
		Theme:      "Rotation des Stocks",
		Difficulty: DifficultyMedium,
		Kind:       KindCalculation,
		Text: fmt.Sprintf("Le stock moyen d'une entreprise est valorisé %s et son coût d'achat des marchandises vendues est de %s. Quel est le délai moyen de stockage (en jours) ?",
			finmath.FormatEUR(stock), finmath.FormatEUR(cogs)),
		Answer:         roundTo(res, 2),
		Decimals:       2,
		Unit:           "jours",
		CourseReminder: "Délai = (Stock moyen / CAMV) × 360",
		Method:         "Rapporter le stock moyen au coût d'achat des marchandises vendues, sur l'année commerciale.",
		Explanation: fmt.Sprintf("Délai = (%.0f / %.0f) × 360 = %.2f jours",
			stock, cogs, res),
		TrapWarning: "L'année commerciale compte 360 jours, pas 365.",
	}
}

func buildBreakEven(rng *rand.Rand) Question {
	fixed := float64(randRange(rng, 50, 300) * 1000)
	mcv := float64(randRange(rng, 20, 60))
	res := commerce.BreakEvenRevenue(fixed, mcv)

	return Question{
		ID:         "m_sr",
		Module:     ModuleManagement,
		Theme:      "Seuil de Rentabilité",
		Difficulty: DifficultyMedium,
		Kind:       KindCalculation,
		Text: fmt.Sprintf("Les charges fixes d'une entreprise s'élèvent à %s et son taux de MCV est de %.0f%%. Quel est son seuil de rentabilité ?",
			finmath.FormatEUR(fixed), mcv),
		Answer:         roundTo(res, 2),
		Decimals:       2,
		Unit:           "€",
		CourseReminder: "SR = Charges Fixes / Taux de MCV",
		Method:         "Diviser les charges fixes par le taux de marge sur coûts variables.",
		Explanation: fmt.Sprintf("SR = %.0f / %.2f = %.2f €",
			fixed, mcv/100, res),
	}
}

func buildBreakEvenDate(rng *rand.Rand) Question {
	fixed := float64(randRange(rng, 80, 250) * 1000)
	mcv := float64(randRange(rng, 30, 60))
	sr := commerce.BreakEvenRevenue(fixed, mcv)
	// Annual revenue comfortably above the break-even so the date lands
	// inside the year.
	ca := roundTo(sr*float64(randRange(rng, 13, 30))/10/1000, 0) * 1000
	res := commerce.BreakEvenDate(sr, ca)

	return Question{
		ID:         "m_pm",
		Module:     ModuleManagement,
		Theme:      "Seuil de Rentabilité",
		Difficulty: DifficultyHard,
		Kind:       KindCalculation,
		Text: fmt.Sprintf("Charges fixes : %s. Taux de MCV : %.0f%%. Chiffre d'affaires annuel : %s. Au bout de combien de jours le point mort est-il atteint ?",
			finmath.FormatEUR(fixed), mcv, finmath.FormatEUR(ca)),
		Answer:         roundTo(res, 2),
		Decimals:       2,
		Unit:           "jours",
		CourseReminder: "Point mort = (SR / CA annuel) × 360",
		Method:         "1. Calculer le SR. 2. Le rapporter au CA annuel sur 360 jours.",
		Explanation: fmt.Sprintf("SR = %.2f €. Point mort = (%.2f / %.0f) × 360 = %.2f jours",
			sr, sr, ca, res),
		TrapWarning: "L'année commerciale compte 360 jours, pas 365.",
	}
}
