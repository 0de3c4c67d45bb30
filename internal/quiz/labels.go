package quiz

import (
	"fmt"

	"github.com/mbriand/finquiz/internal/finmath"
)

var themeLabels = map[string]string{
	ThemeCapitalization: "Capitalisation",
	ThemeActualization:  "Actualisation",
	ThemeRates:          "Taux composés",
	ThemeDuration:       "Durée de placement",
	ThemeEquivalents:    "Taux équivalents",
	ThemeAnnuity:        "Annuités",
	ThemeAmortization:   "Tableau d'amortissement",

	ThemeMargins:       "Marges et marques",
	ThemePricing:       "Formation des prix",
	ThemeStocks:        "Rotation des stocks",
	ThemeProfitability: "Seuil de rentabilité",
}

// ThemeLabel returns the display name of a theme key, or the key itself
// when no label is registered.
func ThemeLabel(key string) string {
	if l, ok := themeLabels[key]; ok {
		return l
	}
	return key
}

// ModuleLabel returns the display name of a module.
func ModuleLabel(m Module) string {
	if m == ModuleManagement {
		return "Gestion commerciale"
	}
	return "Mathématiques financières"
}

// FormatAnswer renders the expected answer of a question with its display
// unit, for corrections and summaries.
func FormatAnswer(q Question) string {
	if q.Kind == KindTheory {
		return q.AnswerText
	}
	switch q.Unit {
	case "€":
		return finmath.FormatEUR(q.Answer)
	case "%":
		return fmt.Sprintf("%.*f %%", q.Decimals, q.Answer)
	case "":
		return fmt.Sprintf("%.*f", q.Decimals, q.Answer)
	default:
		return fmt.Sprintf("%.*f %s", q.Decimals, q.Answer, q.Unit)
	}
}
