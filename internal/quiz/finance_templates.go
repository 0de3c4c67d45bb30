package quiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/mbriand/finquiz/internal/finmath"
)

// Finance theme keys.
const (
	ThemeCapitalization = "capitalization"
	ThemeActualization  = "actualization"
	ThemeRates          = "rates"
	ThemeDuration       = "duration"
	ThemeEquivalents    = "equivalents"
	ThemeAnnuity        = "annuity"
	ThemeAmortization   = "amortization"
)

var financeTemplates = []template{
	{id: "f_cap_s", themeKey: ThemeCapitalization, build: buildSimpleCapitalization},
	{id: "f_cap_c", themeKey: ThemeCapitalization, build: buildCompoundCapitalization},
	{id: "f_interest", themeKey: ThemeCapitalization, build: buildCumulativeInterest},
	{id: "f_actu", themeKey: ThemeActualization, build: buildPresentValue},
	{id: "f_rate", themeKey: ThemeRates, build: buildSolveRate},
	{id: "f_period", themeKey: ThemeDuration, build: buildSolveDuration},
	{id: "f_equiv", themeKey: ThemeEquivalents, build: buildEquivalentRate},
	{id: "f_annuity", themeKey: ThemeAnnuity, build: buildConstantAnnuity},
	{id: "f_amort_int", themeKey: ThemeAmortization, build: buildScheduleInterest},
	{id: "f_amort_bal", themeKey: ThemeAmortization, build: buildScheduleBalance},
}

func buildSimpleCapitalization(rng *rand.Rand) Question {
	c0 := float64(randRange(rng, 10, 50) * 100)
	i := float64(randRange(rng, 2, 8))
	months := float64(randRange(rng, 2, 12))
	res := finmath.SimpleInterestValue(c0, months/12, i)

	return Question{
		ID:         "f_cap_s",
		Module:     ModuleFinance,
		Theme:      "Capitalisation Simple",
		Difficulty: DifficultyMedium,
		Kind:       KindCalculation,
		Text: fmt.Sprintf("Un artisan place %s sur un livret à %.0f%% d'intérêts simples pendant %.0f mois. Quelle est la valeur acquise ?",
			finmath.FormatEUR(c0), i, months),
		Answer:         roundTo(res, 2),
		Decimals:       2,
		Unit:           "€",
		CourseReminder: "Cₙ = C₀ (1 + i × n)",
		Method:         "1. Convertir n en années (n/12). 2. Appliquer la formule des intérêts simples.",
		Explanation: fmt.Sprintf("%.0f × (1 + %.2f × %.0f/12) = %.2f €",
			c0, i/100, months, res),
		TrapWarning: "Attention : n doit être exprimé en années. Si la durée est en mois, divisez par 12.",
	}
}

func buildCompoundCapitalization(rng *rand.Rand) Question {
	c0 := float64(randRange(rng, 10, 50) * 100)
	i := float64(randRange(rng, 2, 8))
	n := float64(randRange(rng, 2, 12))
	res := finmath.CompoundInterestValue(c0, n, i)

	return Question{
		ID:         "f_cap_c",
		Module:     ModuleFinance,
		Theme:      "Capitalisation Composée",
		Difficulty: DifficultyMedium,
		Kind:       KindCalculation,
		Text: fmt.Sprintf("Calculer la valeur acquise d'un capital de %s placé à %.0f%% (intérêts composés) pendant %.0f ans.",
			finmath.FormatEUR(c0), i, n),
		Answer:         roundTo(res, 2),
		Decimals:       2,
		Unit:           "€",
		CourseReminder: "Cₙ = C₀ (1 + i)ⁿ",
		Method:         "Appliquer la puissance n au coefficient de capitalisation (1+i).",
		Explanation: fmt.Sprintf("%.0f × (1 + %.2f)^%.0f = %.2f €",
			c0, i/100, n, res),
	}
}

func buildCumulativeInterest(rng *rand.Rand) Question {
	c0 := float64(randRange(rng, 20, 100) * 100)
	i := float64(randRange(rng, 1, 9))
	n := float64(randRange(rng, 3, 15))
	cn := finmath.CompoundInterestValue(c0, n, i)
	res := cn - c0

	return Question{
		ID:         "f_interest",
		Module:     ModuleFinance,
		Theme:      "Capitalisation Composée",
		Difficulty: DifficultyEasy,
		Kind:       KindCalculation,
		Text: fmt.Sprintf("Combien d'intérêts cumulés (I) un placement de %s rapporte-t-il après %.0f ans à un taux composé de %.0f%% ?",
			finmath.FormatEUR(c0), n, i),
		Answer:         roundTo(res, 2),
		Decimals:       2,
		Unit:           "€",
		CourseReminder: "I = Cₙ - C₀",
		Method:         "1. Capitaliser C₀ sur n ans. 2. Retrancher le capital initial.",
		Explanation: fmt.Sprintf("I = Cₙ - C₀ = %.2f - %.0f = %.2f €",
			cn, c0, res),
	}
}

func buildPresentValue(rng *rand.Rand) Question {
	cn := float64(randRange(rng, 50, 150) * 100)
	i := float64(randRange(rng, 2, 8))
	n := float64(randRange(rng, 2, 10))
	res := finmath.PresentValue(cn, n, i)

	return Question{
		ID:         "f_actu",
		Module:     ModuleFinance,
		Theme:      "Actualisation",
		Difficulty: DifficultyMedium,
		Kind:       KindCalculation,
		Text: fmt.Sprintf("Quel capital initial (C₀) faut-il placer à un taux composé de %.0f%% pendant %.0f ans pour obtenir une valeur acquise de %s ?",
			i, n, finmath.FormatEUR(cn)),
		Answer:         roundTo(res, 2),
		Decimals:       2,
		Unit:           "€",
		CourseReminder: "C₀ = Cₙ (1 + i)⁻ⁿ",
		Method:         "Actualiser la valeur future en divisant par (1+i)ⁿ.",
		Explanation: fmt.Sprintf("C₀ = %.0f / (1 + %.2f)^%.0f = %.2f €",
			cn, i/100, n, res),
		TrapWarning: "L'actualisation est l'inverse de la capitalisation : on divise, on ne multiplie pas.",
	}
}

func buildSolveRate(rng *rand.Rand) Question {
	c0 := float64(randRange(rng, 20, 100) * 100)
	i := float64(randRange(rng, 1, 9))
	n := float64(randRange(rng, 3, 15))
	// Round the target to a clean ten so the prompt reads like a bank
	// statement, then solve against the rounded figure.
	target := roundTo(finmath.CompoundInterestValue(c0, n, i)*1.2/10, 0) * 10
	res := finmath.CompoundRate(c0, target, n)

	return Question{
		ID:         "f_rate",
		Module:     ModuleFinance,
		Theme:      "Taux Composé",
		Difficulty: DifficultyHard,
		Kind:       KindCalculation,
		Text: fmt.Sprintf("À quel taux d'intérêt composé annuel (en %%) un capital de %s a-t-il été placé s'il est devenu %s après %.0f ans ?",
			finmath.FormatEUR(c0), finmath.FormatEUR(target), n),
		Answer:         roundTo(res, 2),
		Decimals:       2,
		Unit:           "%",
		CourseReminder: "i = (Cₙ / C₀)^(1/n) - 1",
		Method:         "Extraire la racine n-ième du rapport Cₙ/C₀, puis retrancher 1.",
		Explanation: fmt.Sprintf("i = (%.0f / %.0f)^(1/%.0f) - 1 = %.4f soit %.2f%%",
			target, c0, n, res/100, res),
	}
}

func buildSolveDuration(rng *rand.Rand) Question {
	c0 := float64(randRange(rng, 20, 100) * 100)
	i := float64(randRange(rng, 1, 9))
	n := float64(randRange(rng, 3, 15))
	target := roundTo(finmath.CompoundInterestValue(c0, n, i)*1.5/10, 0) * 10
	res := finmath.CompoundDuration(c0, target, i)

	return Question{
		ID:         "f_period",
		Module:     ModuleFinance,
		Theme:      "Durée de Placement",
		Difficulty: DifficultyHard,
		Kind:       KindCalculation,
		Text: fmt.Sprintf("Pendant combien d'années (n) faut-il placer %s à un taux de %.0f%% composé pour atteindre au moins %s ?",
			finmath.FormatEUR(c0), i, finmath.FormatEUR(target)),
		Answer:         roundTo(res, 2),
		Decimals:       2,
		Unit:           "ans",
		CourseReminder: "n = ln(Cₙ / C₀) / ln(1 + i)",
		Method:         "Passer au logarithme pour faire descendre l'exposant n.",
		Explanation: fmt.Sprintf("n = ln(%.0f / %.0f) / ln(1 + %.2f) = %.2f ans",
			target, c0, i/100, res),
	}
}

func buildEquivalentRate(rng *rand.Rand) Question {
	ia := float64(randRange(rng, 3, 9))
	res := finmath.EquivalentRate(ia, 12)

	return Question{
		ID:         "f_equiv",
		Module:     ModuleFinance,
		Theme:      "Taux Équivalents",
		Difficulty: DifficultyHard,
		Kind:       KindCalculation,
		Text: fmt.Sprintf("Une banque affiche un taux annuel de %.0f%%. Quel est le taux mensuel équivalent (iₘ) ?",
			ia),
		Answer:         roundTo(res, 4),
		Decimals:       4,
		Unit:           "%",
		CourseReminder: "(1+iₐ) = (1+iₘ)¹²",
		Method:         "Extraire la racine 12ème : iₘ = (1+iₐ)^(1/12) - 1",
		Explanation: fmt.Sprintf("(1 + %.2f)^(1/12) - 1 = %.6f soit %.4f%%",
			ia/100, res/100, res),
		TrapWarning: "Ne pas diviser simplement par 12 ! En intérêts composés, on utilise la puissance fractionnaire.",
	}
}

func buildConstantAnnuity(rng *rand.Rand) Question {
	k0 := float64(randRange(rng, 50, 300) * 1000)
	n := float64(randRange(rng, 5, 25))
	i := float64(randRange(rng, 2, 6))
	res := finmath.ConstantAnnuity(k0, n, i)

	return Question{
		ID:         "f_annuity",
		Module:     ModuleFinance,
		Theme:      "Annuité Constante",
		Difficulty: DifficultyMedium,
		Kind:       KindCalculation,
		Text: fmt.Sprintf("Un emprunt de %s est remboursé par annuités constantes sur %.0f ans au taux de %.0f%%. Quel est le montant de l'annuité ?",
			finmath.FormatEUR(k0), n, i),
		Answer:         roundTo(res, 2),
		Decimals:       2,
		Unit:           "€",
		CourseReminder: "a = K₀ × i / (1 - (1+i)⁻ⁿ)",
		Method:         "Appliquer directement la formule de l'annuité constante.",
		Explanation: fmt.Sprintf("a = %.0f × %.2f / (1 - (1 + %.2f)^-%.0f) = %.2f €",
			k0, i/100, i/100, n, res),
	}
}

func buildScheduleInterest(rng *rand.Rand) Question {
	k0 := float64(randRange(rng, 50, 300) * 1000)
	n := randRange(rng, 5, 20)
	i := float64(randRange(rng, 2, 6))
	period := randRange(rng, 1, 3)
	rows := finmath.AmortizationSchedule(k0, n, i)
	row := rows[period-1]

	return Question{
		ID:         "f_amort_int",
		Module:     ModuleFinance,
		Theme:      "Tableau d'Amortissement",
		Difficulty: DifficultyHard,
		Kind:       KindCalculation,
		Text: fmt.Sprintf("Un emprunt de %s sur %d ans à %.0f%% est amorti par annuités constantes. Quel est le montant des intérêts de la période %d ?",
			finmath.FormatEUR(k0), n, i, period),
		Answer:         roundTo(row.Interest, 2),
		Decimals:       2,
		Unit:           "€",
		CourseReminder: "Intérêts = Capital restant dû × i",
		Method:         "1. Dérouler le tableau jusqu'à la période demandée. 2. Multiplier le capital restant dû par le taux.",
		Explanation: fmt.Sprintf("Capital restant dû en période %d : %.2f €. Intérêts = %.2f × %.2f = %.2f €",
			period, row.RemainingStart, row.RemainingStart, i/100, row.Interest),
		TrapWarning: "Les intérêts se calculent sur le capital restant dû en début de période, pas sur K₀.",
	}
}

func buildScheduleBalance(rng *rand.Rand) Question {
	k0 := float64(randRange(rng, 50, 300) * 1000)
	n := randRange(rng, 5, 20)
	i := float64(randRange(rng, 2, 6))
	period := randRange(rng, 1, 3)
	rows := finmath.AmortizationSchedule(k0, n, i)
	row := rows[period-1]

	return Question{
		ID:         "f_amort_bal",
		Module:     ModuleFinance,
		Theme:      "Tableau d'Amortissement",
		Difficulty: DifficultyHard,
		Kind:       KindCalculation,
		Text: fmt.Sprintf("Un emprunt de %s sur %d ans à %.0f%% est amorti par annuités constantes. Quel est le capital restant dû à la fin de la période %d ?",
			finmath.FormatEUR(k0), n, i, period),
		Answer:         roundTo(row.RemainingEnd, 2),
		Decimals:       2,
		Unit:           "€",
		CourseReminder: "CRD fin = CRD début - Amortissement, avec Amortissement = a - Intérêts",
		Method:         "1. Calculer l'annuité constante. 2. Dérouler ligne par ligne : intérêts, amortissement, capital restant.",
		Explanation: fmt.Sprintf("a = %.2f €. En période %d : intérêts %.2f €, amortissement %.2f €, restant %.2f €",
			row.Annuity, period, row.Interest, row.Amortization, row.RemainingEnd),
	}
}
