package quiz

// Config controls draw behavior of a Generator.
type Config struct {
	// HistoryWindow is how many recently issued template IDs are remembered
	// for repetition avoidance.
	HistoryWindow int

	// MaxDrawAttempts bounds the redraw loop when a drawn template collides
	// with the history window. Once exhausted the draw proceeds
	// unrestricted, which guards pools smaller than the window.
	MaxDrawAttempts int

	// TheoryRatio is the probability of drawing a multiple-choice theory
	// question instead of a calculation one. Zero disables theory questions
	// (practice mode); exam mode uses DefaultExamConfig.
	TheoryRatio float64
}

// DefaultConfig returns the practice-mode configuration: calculation
// questions only.
func DefaultConfig() Config {
	return Config{
		HistoryWindow:   8,
		MaxDrawAttempts: 15,
	}
}

// DefaultExamConfig returns the exam-mode configuration, which mixes in
// theory questions at the ratio the original exam used.
func DefaultExamConfig() Config {
	cfg := DefaultConfig()
	cfg.TheoryRatio = 0.4
	return cfg
}

// TolerancePolicy decides how far a parsed numeric answer may stray from the
// ground truth: max(AbsoluteFloor, RelativeFraction * |answer|).
type TolerancePolicy struct {
	AbsoluteFloor    float64
	RelativeFraction float64
}

// Tolerance returns the allowed absolute deviation for a given correct answer.
func (p TolerancePolicy) Tolerance(correctAnswer float64) float64 {
	rel := p.RelativeFraction * abs(correctAnswer)
	if rel > p.AbsoluteFloor {
		return rel
	}
	return p.AbsoluteFloor
}

// PracticeTolerance is the tight policy of practice mode.
var PracticeTolerance = TolerancePolicy{AbsoluteFloor: 0.1, RelativeFraction: 0.001}

// ExamTolerance is the slightly looser policy used under time pressure.
var ExamTolerance = TolerancePolicy{AbsoluteFloor: 0.5, RelativeFraction: 0.005}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
