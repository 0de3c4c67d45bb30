// Package course holds the static reference sheets: one chapter per theme
// with the formulas and pitfalls of the course material. Presentation only;
// nothing here affects generation or scoring.
package course

import "github.com/mbriand/finquiz/internal/quiz"

// Sheet is one chapter of the reference course.
type Sheet struct {
	Module   quiz.Module
	ThemeKey string
	Title    string
	Summary  string
	Formulas []Formula
	Pitfall  string
}

// Formula is a named formula with an optional usage note.
type Formula struct {
	Label string
	Expr  string
	Note  string
}

// Sheets returns the chapters of a module, in course order.
func Sheets(module quiz.Module) []Sheet {
	if module == quiz.ModuleManagement {
		return managementSheets
	}
	return financeSheets
}

var financeSheets = []Sheet{
	{
		Module:   quiz.ModuleFinance,
		ThemeKey: quiz.ThemeCapitalization,
		Title:    "La Capitalisation",
		Summary:  "La capitalisation est le mécanisme par lequel un capital produit des intérêts : transformer le temps en valeur monétaire.",
		Formulas: []Formula{
			{Label: "Intérêts simples", Expr: "Cₙ = C₀ × (1 + n × i)", Note: "Court terme, intérêts non réinvestis."},
			{Label: "Intérêts composés", Expr: "Cₙ = C₀ × (1 + i)ⁿ", Note: "Long terme, les intérêts produisent des intérêts."},
			{Label: "Intérêts cumulés", Expr: "I = Cₙ - C₀"},
		},
		Pitfall: "En intérêts simples, une durée en mois se convertit en années (n/12) avant d'appliquer la formule.",
	},
	{
		Module:   quiz.ModuleFinance,
		ThemeKey: quiz.ThemeActualization,
		Title:    "L'Actualisation",
		Summary:  "L'actualisation est l'opération inverse de la capitalisation : ramener une valeur future à aujourd'hui.",
		Formulas: []Formula{
			{Label: "Valeur actuelle", Expr: "C₀ = Cₙ × (1 + i)⁻ⁿ"},
		},
		Pitfall: "On divise par (1+i)ⁿ, on ne multiplie pas.",
	},
	{
		Module:   quiz.ModuleFinance,
		ThemeKey: quiz.ThemeEquivalents,
		Title:    "L'Équivalence des Taux",
		Summary:  "Deux taux sont équivalents s'ils produisent la même valeur acquise sur la même durée.",
		Formulas: []Formula{
			{Label: "En simple", Expr: "proratisation linéaire", Note: "6% par an = 0,5% par mois."},
			{Label: "En composé", Expr: "(1 + iₐ) = (1 + iₘ)¹²", Note: "iₘ = (1+iₐ)^(1/12) - 1."},
		},
		Pitfall: "En composé, ne jamais diviser le taux annuel par 12 : utiliser la puissance fractionnaire.",
	},
	{
		Module:   quiz.ModuleFinance,
		ThemeKey: quiz.ThemeAnnuity,
		Title:    "Les Emprunts Indivis",
		Summary:  "Chaque annuité comprend des intérêts et une part de capital : a = I + M. Le système le plus courant est l'annuité constante.",
		Formulas: []Formula{
			{Label: "Annuité constante", Expr: "a = K₀ × i / (1 - (1+i)⁻ⁿ)"},
			{Label: "Intérêts de la période", Expr: "I = i × Kₚ₋₁"},
			{Label: "Amortissement", Expr: "M = a - I"},
		},
		Pitfall: "Les intérêts se calculent sur le capital restant dû, jamais sur le capital initial.",
	},
}

var managementSheets = []Sheet{
	{
		Module:   quiz.ModuleManagement,
		ThemeKey: quiz.ThemeMargins,
		Title:    "Marges et Taux",
		Summary:  "La marge commerciale rapporte le prix de vente au coût d'achat ; les deux taux la mesurent sur des bases différentes.",
		Formulas: []Formula{
			{Label: "Marge", Expr: "Marge = PV HT - PA HT"},
			{Label: "Taux de marge", Expr: "Marge / PA HT × 100", Note: "Base achat."},
			{Label: "Taux de marque", Expr: "Marge / PV HT × 100", Note: "Base vente."},
		},
		Pitfall: "Taux de MARGE sur l'ACHAT, taux de MARQUE sur la VENTE : le taux de marque est toujours le plus petit.",
	},
	{
		Module:   quiz.ModuleManagement,
		ThemeKey: quiz.ThemePricing,
		Title:    "Formation des Prix",
		Summary:  "Du prix d'achat au prix de vente TTC, en passant par le taux de marque et la TVA.",
		Formulas: []Formula{
			{Label: "PV HT", Expr: "PA HT / (1 - taux de marque)"},
			{Label: "TTC", Expr: "HT × (1 + TVA)"},
			{Label: "HT", Expr: "TTC / (1 + TVA)"},
			{Label: "Coefficient multiplicateur", Expr: "PV TTC / PA HT"},
		},
		Pitfall: "Pour retrouver le HT on divise par (1 + TVA) ; retrancher 20% du TTC est faux.",
	},
	{
		Module:   quiz.ModuleManagement,
		ThemeKey: quiz.ThemeStocks,
		Title:    "Rotation des Stocks",
		Summary:  "Le délai moyen de stockage mesure le temps d'immobilisation de la marchandise.",
		Formulas: []Formula{
			{Label: "Délai moyen", Expr: "(Stock moyen / CAMV) × 360"},
		},
		Pitfall: "L'année commerciale compte 360 jours.",
	},
	{
		Module:   quiz.ModuleManagement,
		ThemeKey: quiz.ThemeProfitability,
		Title:    "Seuil de Rentabilité",
		Summary:  "Le seuil de rentabilité est le chiffre d'affaires pour lequel la marge sur coûts variables couvre exactement les charges fixes.",
		Formulas: []Formula{
			{Label: "SR", Expr: "Charges fixes / Taux de MCV"},
			{Label: "Point mort", Expr: "(SR / CA annuel) × 360"},
		},
		Pitfall: "Le point mort s'exprime en jours d'année commerciale (360).",
	},
}
