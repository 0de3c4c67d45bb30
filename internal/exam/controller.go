// Package exam drives a timed exam session: a small state machine cycling
// setup → active → finished, serving an unbounded stream of generated
// questions until the countdown runs out.
package exam

import (
	"time"

	"github.com/google/uuid"

	"github.com/mbriand/finquiz/internal/progress"
	"github.com/mbriand/finquiz/internal/quiz"
)

// Status is the session phase.
type Status int

const (
	StatusSetup Status = iota
	StatusActive
	StatusFinished
)

// TimeLimits are the selectable exam durations, in minutes.
var TimeLimits = []int{10, 15, 20}

// AttemptRecord pairs an answered question with the raw submission and the
// verdict. Records live only for the current session; the persisted summary
// is the progress.ExamAttempt built at the end.
type AttemptRecord struct {
	Question quiz.Question
	RawInput string
	Correct  bool
}

// Controller owns the state of one exam session. It has no timer of its own:
// the caller (the TUI tick loop) calls Tick once per second while the
// session is active, which keeps at-most-one-timer a presentation concern.
type Controller struct {
	gen   *quiz.Generator
	store *progress.Store

	status    Status
	module    quiz.Module
	sessionID string
	startedAt time.Time

	limitMins int
	remaining int // seconds

	score    int
	attempts []AttemptRecord
	current  quiz.Question
	hasQ     bool
}

// NewController creates a Controller in the setup state.
func NewController(gen *quiz.Generator, store *progress.Store) *Controller {
	return &Controller{gen: gen, store: store}
}

func (c *Controller) Status() Status          { return c.status }
func (c *Controller) Module() quiz.Module     { return c.module }
func (c *Controller) RemainingSeconds() int   { return c.remaining }
func (c *Controller) Score() int              { return c.score }
func (c *Controller) Answered() int           { return len(c.attempts) }
func (c *Controller) Attempts() []AttemptRecord { return c.attempts }

// Current returns the question being displayed. ok is false outside the
// active phase.
func (c *Controller) Current() (quiz.Question, bool) {
	return c.current, c.hasQ && c.status == StatusActive
}

// Accuracy is score/answered for the summary view.
func (c *Controller) Accuracy() float64 {
	if len(c.attempts) == 0 {
		return 0
	}
	return float64(c.score) / float64(len(c.attempts))
}

// Start resets all session state and enters the active phase with the first
// question already generated.
func (c *Controller) Start(module quiz.Module, limitMins int) {
	c.status = StatusActive
	c.module = module
	c.sessionID = uuid.New().String()
	c.startedAt = time.Now()
	c.limitMins = limitMins
	c.remaining = limitMins * 60
	c.score = 0
	c.attempts = nil
	c.next()
}

// Tick consumes one second of the countdown. It reports whether the session
// just finished, in which case the exam summary has been persisted. Ticks
// outside the active phase are ignored, so a stale timer can never
// double-decrement a later session.
func (c *Controller) Tick() (finished bool, err error) {
	if c.status != StatusActive {
		return false, nil
	}
	c.remaining--
	if c.remaining > 0 {
		return false, nil
	}
	c.remaining = 0
	return true, c.finish()
}

// Submit grades the raw input against the current question, records the
// attempt and moves straight to the next question; the exam never pauses
// between questions. Unparseable numeric input counts as a wrong answer.
func (c *Controller) Submit(rawInput string) (correct bool, err error) {
	if c.status != StatusActive || !c.hasQ {
		return false, nil
	}

	q := c.current
	correct = quiz.Evaluate(q, rawInput, quiz.ExamTolerance)
	if correct {
		c.score++
	}
	c.attempts = append(c.attempts, AttemptRecord{
		Question: q,
		RawInput: rawInput,
		Correct:  correct,
	})

	err = c.store.RecordAnswer(string(q.Module), q.Theme, correct)

	c.next()
	return correct, err
}

// Restart unconditionally discards the session and returns to setup.
// Anything already persisted per-question stays persisted.
func (c *Controller) Restart() {
	c.status = StatusSetup
	c.attempts = nil
	c.score = 0
	c.remaining = 0
	c.hasQ = false
}

func (c *Controller) next() {
	c.current = c.gen.Generate(c.module, "")
	c.hasQ = true
}

// finish transitions to the terminal phase and persists the summary record.
func (c *Controller) finish() error {
	c.status = StatusFinished
	c.hasQ = false

	attempt := progress.ExamAttempt{
		ID:           c.sessionID,
		Date:         time.Now(),
		Module:       string(c.module),
		Score:        c.score,
		Total:        len(c.attempts),
		DurationSecs: c.limitMins * 60,
		MissedThemes: c.missedThemes(),
	}
	return c.store.RecordExamAttempt(attempt)
}

// missedThemes lists the distinct themes of wrongly answered questions, in
// first-miss order.
func (c *Controller) missedThemes() []string {
	var themes []string
	seen := make(map[string]bool)
	for _, a := range c.attempts {
		if a.Correct || seen[a.Question.Theme] {
			continue
		}
		seen[a.Question.Theme] = true
		themes = append(themes, a.Question.Theme)
	}
	return themes
}
