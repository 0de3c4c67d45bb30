// Package quiz generates parameterized exercises for the finance and
// management modules and grades submitted answers.
//
// Each exercise template is a closure that samples its own numeric
// parameters, computes the ground truth through finmath/commerce, and
// renders a French prompt with the sampled values substituted. Templates
// carry a stable identifier per formula family + phrasing; the generator
// uses those identifiers to avoid asking the same kind of question twice in
// a short window.
package quiz

// Module is the subject area of a question. Finance templates never mix
// with management templates.
type Module string

const (
	ModuleFinance    Module = "finance"
	ModuleManagement Module = "management"
)

// Difficulty is informational only; it never affects scoring.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Kind discriminates the two question variants. Calculation questions carry
// a numeric Answer; theory questions carry AnswerText plus Choices.
type Kind string

const (
	KindCalculation Kind = "calculation"
	KindTheory      Kind = "theory"
)

// Question is a fully-formed exercise instance. It is immutable once
// generated and discarded after being answered; only derived attempt
// records survive it.
type Question struct {
	// ID is the stable template identifier (formula family + phrasing),
	// shared by every instance the template produces. It exists for
	// repetition avoidance, not global uniqueness.
	ID string

	Module     Module
	Theme      string
	Difficulty Difficulty
	Kind       Kind

	// Text is the rendered prompt with sampled values substituted.
	Text string

	// Answer is the ground truth for calculation questions, already rounded
	// to Decimals places. Unset for theory questions.
	Answer float64

	// Decimals is the rounding applied to Answer: 2 for currency and
	// day-count results, 4 for equivalence-rate percentages.
	Decimals int

	// Unit is the display unit: "€", "%", "jours", "ans" or empty.
	Unit string

	// AnswerText is the correct option for theory questions. Unset for
	// calculation questions.
	AnswerText string

	// Choices holds the shuffled options of a theory question, one of which
	// equals AnswerText.
	Choices []string

	// Pedagogical text. Never used in scoring.
	Explanation    string
	Method         string
	CourseReminder string
	TrapWarning    string
}
