package quiz

import (
	"math/rand/v2"
	"testing"
)

func seededGenerator(cfg Config) *Generator {
	return NewWithRand(cfg, rand.New(rand.NewPCG(7, 11)))
}

func TestThemes(t *testing.T) {
	finance := Themes(ModuleFinance)
	if len(finance) != 7 {
		t.Errorf("finance themes = %v, want 7 entries", finance)
	}
	management := Themes(ModuleManagement)
	if len(management) != 4 {
		t.Errorf("management themes = %v, want 4 entries", management)
	}

	seen := make(map[string]bool)
	for _, k := range append(finance, management...) {
		if seen[k] {
			t.Errorf("duplicate theme key %q", k)
		}
		seen[k] = true
		if ThemeLabel(k) == k {
			t.Errorf("theme key %q has no display label", k)
		}
	}
}

func TestGenerateRespectsThemeFilter(t *testing.T) {
	g := seededGenerator(DefaultConfig())
	for i := 0; i < 50; i++ {
		q := g.Generate(ModuleFinance, ThemeAmortization)
		if q.Theme != "Tableau d'Amortissement" {
			t.Fatalf("draw %d: got theme %q for amortization filter", i, q.Theme)
		}
		if q.Module != ModuleFinance {
			t.Fatalf("draw %d: got module %q", i, q.Module)
		}
	}
}

func TestGenerateUnknownThemeFallsBack(t *testing.T) {
	g := seededGenerator(DefaultConfig())
	q := g.Generate(ModuleManagement, "no-such-theme")
	if q.Module != ModuleManagement {
		t.Errorf("fallback question has module %q", q.Module)
	}
	if q.Text == "" {
		t.Error("fallback question has empty text")
	}
}

func TestGenerateAvoidsRecentTemplates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HistoryWindow = 4
	g := seededGenerator(cfg)

	var ids []string
	for i := 0; i < 200; i++ {
		ids = append(ids, g.Generate(ModuleFinance, "").ID)
	}

	// With a window of 4, any run of 5 consecutive draws is distinct.
	for i := 4; i < len(ids); i++ {
		window := ids[i-4 : i+1]
		seen := make(map[string]bool)
		for _, id := range window {
			if seen[id] {
				t.Fatalf("draws %d-%d repeat template %q: %v", i-4, i, id, window)
			}
			seen[id] = true
		}
	}
}

func TestGenerateSucceedsWhenPoolSmallerThanWindow(t *testing.T) {
	// The actualization theme has a single template; once the redraw budget
	// is exhausted the draw proceeds anyway instead of spinning.
	g := seededGenerator(Config{HistoryWindow: 5, MaxDrawAttempts: 3})
	for i := 0; i < 10; i++ {
		q := g.Generate(ModuleFinance, ThemeActualization)
		if q.ID != "f_actu" {
			t.Fatalf("draw %d: got %q, want f_actu", i, q.ID)
		}
	}
}

func TestGenerateCalculationQuestionShape(t *testing.T) {
	g := seededGenerator(DefaultConfig())
	for i := 0; i < 100; i++ {
		module := ModuleFinance
		if i%2 == 1 {
			module = ModuleManagement
		}
		q := g.Generate(module, "")

		if q.Kind != KindCalculation {
			t.Fatalf("practice config produced a %q question", q.Kind)
		}
		if q.Text == "" || q.Theme == "" || q.ID == "" {
			t.Fatalf("incomplete question: %+v", q)
		}
		if q.Decimals != 0 && q.Decimals != 2 && q.Decimals != 4 {
			t.Errorf("%s: unexpected decimals %d", q.ID, q.Decimals)
		}
		if q.Method == "" || q.Explanation == "" {
			t.Errorf("%s: missing correction text", q.ID)
		}
	}
}

func TestGenerateTheoryMix(t *testing.T) {
	g := seededGenerator(DefaultExamConfig())

	theory := 0
	const n = 1000
	for i := 0; i < n; i++ {
		q := g.Generate(ModuleFinance, "")
		if q.Kind != KindTheory {
			continue
		}
		theory++
		if len(q.Choices) < 2 {
			t.Fatalf("theory question %q has %d choices", q.ID, len(q.Choices))
		}
		found := false
		for _, c := range q.Choices {
			if c == q.AnswerText {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("theory question %q: answer %q not among choices %v", q.ID, q.AnswerText, q.Choices)
		}
	}

	ratio := float64(theory) / n
	if ratio < 0.3 || ratio > 0.5 {
		t.Errorf("theory ratio = %v, want around 0.4", ratio)
	}
}

func TestGenerateThemeFilterDisablesTheory(t *testing.T) {
	g := seededGenerator(DefaultExamConfig())
	for i := 0; i < 50; i++ {
		q := g.Generate(ModuleManagement, ThemeProfitability)
		if q.Kind != KindCalculation {
			t.Fatalf("themed draw produced a %q question", q.Kind)
		}
	}
}
