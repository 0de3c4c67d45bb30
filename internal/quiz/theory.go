package quiz

import "math/rand/v2"

// theoryItem is the static source of one multiple-choice question. Options
// are shuffled at generation time.
type theoryItem struct {
	id      string
	prompt  string
	answer  string
	options []string
}

var financeTheory = []theoryItem{
	{
		id:      "t_fin_simple",
		prompt:  "Quelle est la formule des intérêts simples ?",
		answer:  "C0 × (1 + n×i)",
		options: []string{"C0 × (1 + i)^n", "C0 × (1 + n×i)", "C0 / (1 + i)^n", "C0 × i × n / 360"},
	},
	{
		id:      "t_fin_equiv",
		prompt:  "En intérêts composés, l'équivalence des taux se base sur :",
		answer:  "(1+ia) = (1+im)^12",
		options: []string{"ia = im × 12", "(1+ia) = (1+im)^12", "ia = im / 12", "ia = im^12"},
	},
	{
		id:      "t_fin_annuity",
		prompt:  "Que signifie « Annuités Constantes » ?",
		answer:  "Le montant payé chaque période est identique",
		options: []string{"Le capital remboursé est identique", "Le montant payé chaque période est identique", "Les intérêts sont identiques", "L'emprunt est gratuit"},
	},
	{
		id:      "t_fin_capital",
		prompt:  "La capitalisation transforme :",
		answer:  "Le temps en valeur monétaire",
		options: []string{"Les euros en dollars", "Le temps en valeur monétaire", "Le risque en certitude", "Le capital en dette"},
	},
	{
		id:      "t_fin_amort",
		prompt:  "Dans « a = I + M », que représente M ?",
		answer:  "L'amortissement du capital",
		options: []string{"Le montant des intérêts", "La marge de la banque", "L'amortissement du capital", "La mensualité totale"},
	},
}

var managementTheory = []theoryItem{
	{
		id:      "t_mgmt_marge",
		prompt:  "Le taux de marge se calcule par rapport :",
		answer:  "Au prix d'achat HT",
		options: []string{"Au prix de vente HT", "Au prix d'achat HT", "Au prix de vente TTC", "Au chiffre d'affaires"},
	},
	{
		id:      "t_mgmt_marque",
		prompt:  "Le taux de marque se calcule par rapport :",
		answer:  "Au prix de vente HT",
		options: []string{"Au prix de vente HT", "Au prix d'achat HT", "Au coût de revient", "À la marge brute"},
	},
	{
		id:      "t_mgmt_sr",
		prompt:  "Le seuil de rentabilité est atteint lorsque :",
		answer:  "La MCV couvre exactement les charges fixes",
		options: []string{"Le CA dépasse les charges variables", "La MCV couvre exactement les charges fixes", "Le résultat est maximal", "Les stocks sont épuisés"},
	},
	{
		id:      "t_mgmt_coeff",
		prompt:  "Le coefficient multiplicateur relie :",
		answer:  "Le PV TTC au PA HT",
		options: []string{"Le PV HT au PA TTC", "Le PV TTC au PA HT", "La marge au CA", "Le TTC au HT"},
	},
	{
		id:      "t_mgmt_year",
		prompt:  "L'année commerciale utilisée pour les délais de stockage compte :",
		answer:  "360 jours",
		options: []string{"365 jours", "360 jours", "366 jours", "52 semaines exactement"},
	},
}

// theoryTemplates wraps a module's static theory pool as draw templates so
// the same non-repetition window applies to them.
func theoryTemplates(module Module) []template {
	pool := financeTheory
	if module == ModuleManagement {
		pool = managementTheory
	}

	templates := make([]template, len(pool))
	for idx, item := range pool {
		item := item
		templates[idx] = template{
			id:       item.id,
			themeKey: "theory",
			build: func(rng *rand.Rand) Question {
				choices := make([]string, len(item.options))
				copy(choices, item.options)
				rng.Shuffle(len(choices), func(a, b int) {
					choices[a], choices[b] = choices[b], choices[a]
				})
				return Question{
					ID:         item.id,
					Module:     module,
					Theme:      "Théorie",
					Difficulty: DifficultyEasy,
					Kind:       KindTheory,
					Text:       item.prompt,
					AnswerText: item.answer,
					Choices:    choices,
				}
			},
		}
	}
	return templates
}
