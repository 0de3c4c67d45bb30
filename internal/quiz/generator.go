package quiz

import (
	"math"
	"math/rand/v2"
	"time"
)

// template binds a stable identifier and theme tag to the closure that
// samples parameters and builds a question instance.
type template struct {
	id       string
	themeKey string
	build    func(rng *rand.Rand) Question
}

// Generator draws questions for one subject module at a time, remembering a
// short window of recently issued template IDs so the same kind of question
// is not asked twice in a row. Not safe for concurrent use; the app has a
// single actor driving it.
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	recent []string
}

// New creates a time-seeded Generator.
func New(cfg Config) *Generator {
	now := uint64(time.Now().UnixNano())
	return NewWithRand(cfg, rand.New(rand.NewPCG(now, now>>32)))
}

// NewWithRand creates a Generator with a caller-supplied source, which tests
// use for deterministic draws.
func NewWithRand(cfg Config, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// Generate returns a fresh question for the module. A non-empty theme
// restricts the draw to templates tagged with that theme key; an unknown
// theme falls back to the module's full pool. Generation always succeeds.
//
// The draw is a single stage over templates, so themes with more templates
// come up more often when no theme is given. That matches the historical
// behavior of the course app and is kept deliberately.
func (g *Generator) Generate(module Module, theme string) Question {
	if g.cfg.TheoryRatio > 0 && theme == "" && g.rng.Float64() < g.cfg.TheoryRatio {
		return g.draw(theoryTemplates(module))
	}

	pool := calculationTemplates(module)
	if theme != "" {
		if filtered := filterByTheme(pool, theme); len(filtered) > 0 {
			pool = filtered
		}
	}
	return g.draw(pool)
}

// Themes lists the distinct theme keys of a module's calculation templates,
// in declaration order.
func Themes(module Module) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, t := range calculationTemplates(module) {
		if !seen[t.themeKey] {
			seen[t.themeKey] = true
			keys = append(keys, t.themeKey)
		}
	}
	return keys
}

// draw picks a template avoiding the recent-history window, retrying up to
// the configured attempt budget before giving up on the restriction.
func (g *Generator) draw(pool []template) Question {
	picked := pool[g.rng.IntN(len(pool))]
	for attempt := 0; attempt < g.cfg.MaxDrawAttempts && g.recentlyUsed(picked.id); attempt++ {
		picked = pool[g.rng.IntN(len(pool))]
	}
	g.remember(picked.id)
	return picked.build(g.rng)
}

func (g *Generator) recentlyUsed(id string) bool {
	for _, r := range g.recent {
		if r == id {
			return true
		}
	}
	return false
}

func (g *Generator) remember(id string) {
	g.recent = append(g.recent, id)
	if g.cfg.HistoryWindow > 0 && len(g.recent) > g.cfg.HistoryWindow {
		g.recent = g.recent[len(g.recent)-g.cfg.HistoryWindow:]
	}
}

func filterByTheme(pool []template, themeKey string) []template {
	var out []template
	for _, t := range pool {
		if t.themeKey == themeKey {
			out = append(out, t)
		}
	}
	return out
}

func calculationTemplates(module Module) []template {
	if module == ModuleManagement {
		return managementTemplates
	}
	return financeTemplates
}

// randRange returns a uniform integer in [min, max].
func randRange(rng *rand.Rand, min, max int) int {
	return rng.IntN(max-min+1) + min
}

// roundTo rounds to a fixed number of decimals. Applied to final answers
// only, never to intermediate computation.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
