package exam

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	examctl "github.com/mbriand/finquiz/internal/exam"
	"github.com/mbriand/finquiz/internal/progress"
	"github.com/mbriand/finquiz/internal/quiz"
	"github.com/mbriand/finquiz/internal/router"
	"github.com/mbriand/finquiz/internal/screen"
	"github.com/mbriand/finquiz/internal/ui/components"
	"github.com/mbriand/finquiz/internal/ui/layout"
	"github.com/mbriand/finquiz/internal/ui/theme"
)

type setupStep int

const (
	stepModule setupStep = iota
	stepDuration
)

// timerTickMsg carries the tick epoch so ticks from an abandoned run are
// dropped instead of double-decrementing a restarted timer.
type timerTickMsg struct {
	epoch int
}

// ExamScreen drives a timed exam session: setup, the countdown run, and
// the final summary.
type ExamScreen struct {
	ctl *examctl.Controller

	step         setupStep
	moduleMenu   components.Menu
	durationMenu components.Menu
	module       quiz.Module

	input       components.TextInput
	choice      components.MultiChoice
	quitConfirm bool
	tickEpoch   int
	saveErr     error
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.EscHandler = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)

type moduleChosenMsg struct{ module quiz.Module }
type durationChosenMsg struct{ minutes int }

// New creates an ExamScreen at the setup step.
func New(store *progress.Store) *ExamScreen {
	gen := quiz.New(quiz.DefaultExamConfig())
	e := &ExamScreen{
		ctl: examctl.NewController(gen, store),
	}
	e.moduleMenu = components.NewMenu([]components.MenuItem{
		{Label: "Mathématiques financières", Action: pickModule(quiz.ModuleFinance)},
		{Label: "Gestion commerciale", Action: pickModule(quiz.ModuleManagement)},
	})
	e.durationMenu = components.NewMenu(durationItems())
	return e
}

func pickModule(m quiz.Module) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return moduleChosenMsg{module: m} }
	}
}

func durationItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(examctl.TimeLimits))
	for _, mins := range examctl.TimeLimits {
		m := mins
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%d minutes", m),
			Action: func() tea.Cmd {
				return func() tea.Msg { return durationChosenMsg{minutes: m} }
			},
		})
	}
	return items
}

func (e *ExamScreen) Init() tea.Cmd {
	return nil
}

func (e *ExamScreen) HandlesEsc() bool {
	return e.ctl.Status() == examctl.StatusActive ||
		(e.ctl.Status() == examctl.StatusSetup && e.step == stepDuration)
}

func (e *ExamScreen) KeyHints() []layout.KeyHint {
	switch e.ctl.Status() {
	case examctl.StatusActive:
		if e.quitConfirm {
			return []layout.KeyHint{
				{Key: "O", Description: "Abandonner"},
				{Key: "N", Description: "Continuer"},
			}
		}
		return []layout.KeyHint{
			{Key: "Entrée", Description: "Valider"},
			{Key: "Échap", Description: "Abandonner"},
		}
	case examctl.StatusFinished:
		return []layout.KeyHint{
			{Key: "R", Description: "Recommencer"},
			{Key: "Échap", Description: "Retour"},
		}
	}
	return nil
}

func (e *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case moduleChosenMsg:
		e.module = msg.module
		e.step = stepDuration
		return e, nil

	case durationChosenMsg:
		return e.startExam(msg.minutes)

	case timerTickMsg:
		return e.handleTick(msg)

	case tea.KeyMsg:
		return e.handleKey(msg)
	}

	if e.ctl.Status() == examctl.StatusActive && !e.isTheory() {
		var cmd tea.Cmd
		e.input, cmd = e.input.Update(msg)
		return e, cmd
	}

	return e, nil
}

func (e *ExamScreen) startExam(minutes int) (screen.Screen, tea.Cmd) {
	e.ctl.Start(e.module, minutes)
	e.quitConfirm = false
	e.saveErr = nil
	e.tickEpoch++
	e.prepareQuestion()
	return e, tea.Batch(e.input.Init(), e.tickCmd())
}

func (e *ExamScreen) tickCmd() tea.Cmd {
	epoch := e.tickEpoch
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{epoch: epoch}
	})
}

func (e *ExamScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.epoch != e.tickEpoch {
		return e, nil
	}
	finished, err := e.ctl.Tick()
	if err != nil {
		e.saveErr = err
	}
	if finished || e.ctl.Status() != examctl.StatusActive {
		return e, nil
	}
	return e, e.tickCmd()
}

func (e *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch e.ctl.Status() {
	case examctl.StatusSetup:
		if e.step == stepModule {
			var cmd tea.Cmd
			e.moduleMenu, cmd = e.moduleMenu.Update(msg)
			return e, cmd
		}
		if key == "esc" {
			e.step = stepModule
			return e, nil
		}
		var cmd tea.Cmd
		e.durationMenu, cmd = e.durationMenu.Update(msg)
		return e, cmd

	case examctl.StatusActive:
		return e.handleActiveKey(msg)

	case examctl.StatusFinished:
		if key == "r" || key == "R" {
			e.ctl.Restart()
			e.step = stepModule
			e.quitConfirm = false
			e.tickEpoch++
			return e, nil
		}
		return e, nil
	}

	return e, nil
}

func (e *ExamScreen) handleActiveKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if e.quitConfirm {
		switch key {
		case "o", "O", "y", "Y":
			e.tickEpoch++
			return e, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			e.quitConfirm = false
		}
		return e, nil
	}

	switch key {
	case "esc":
		e.quitConfirm = true
		return e, nil
	case "enter":
		return e.submit()
	}

	if e.isTheory() {
		var cmd tea.Cmd
		e.choice, cmd = e.choice.Update(msg)
		// The component marks itself submitted on enter; navigation keys
		// just move the cursor.
		return e, cmd
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd
}

func (e *ExamScreen) submit() (screen.Screen, tea.Cmd) {
	var raw string
	if e.isTheory() {
		if e.choice.ChosenIndex < 0 && e.choice.Selected >= 0 {
			e.choice.Submitted = true
			e.choice.ChosenIndex = e.choice.Selected
		}
		raw = e.choice.Chosen()
	} else {
		raw = e.input.Value()
	}

	// Unlike training, the exam accepts any submission: an answer that
	// does not parse simply scores as wrong.
	if _, err := e.ctl.Submit(raw); err != nil {
		e.saveErr = err
	}

	if e.ctl.Status() == examctl.StatusActive {
		e.prepareQuestion()
		return e, e.input.Init()
	}
	return e, nil
}

func (e *ExamScreen) prepareQuestion() {
	q, ok := e.ctl.Current()
	if !ok {
		return
	}
	e.input = components.NewTextInput("Votre réponse…", true, 16)
	if q.Kind == quiz.KindTheory {
		correctIdx := 0
		for i, c := range q.Choices {
			if c == q.AnswerText {
				correctIdx = i
				break
			}
		}
		e.choice = components.NewMultiChoice(q.Text, q.Choices, correctIdx)
	}
}

func (e *ExamScreen) isTheory() bool {
	q, ok := e.ctl.Current()
	return ok && q.Kind == quiz.KindTheory
}

func (e *ExamScreen) View(width, height int) string {
	center := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	switch e.ctl.Status() {
	case examctl.StatusSetup:
		return center.Render(e.renderSetup())
	case examctl.StatusActive:
		return center.Render(e.renderActive(width))
	case examctl.StatusFinished:
		return center.Render(e.renderSummary(width))
	}
	return ""
}

func (e *ExamScreen) renderSetup() string {
	if e.step == stepModule {
		return theme.Title.Render("Mode examen") + "\n\n" +
			theme.Body.Render("Choisissez un module :") + "\n\n" +
			e.moduleMenu.View()
	}
	return theme.Title.Render(quiz.ModuleLabel(e.module)) + "\n\n" +
		theme.Body.Render("Durée de l'épreuve :") + "\n\n" +
		e.durationMenu.View() + "\n" +
		theme.Hint.Render("Pas de correction pendant l'épreuve — enchaînez les questions.")
}

func (e *ExamScreen) renderActive(width int) string {
	cardWidth := width - 20
	if cardWidth > 76 {
		cardWidth = 76
	}
	if cardWidth < 40 {
		cardWidth = 40
	}

	if e.quitConfirm {
		return theme.Card.Width(cardWidth).Render(
			theme.Warning.Render("Abandonner l'examen ?") + "\n\n" +
				theme.Body.Render("La session en cours sera perdue.") + "\n\n" +
				theme.Hint.Render("O : abandonner    N : continuer"))
	}

	q, ok := e.ctl.Current()
	if !ok {
		return theme.Hint.Render("Préparation de la question…")
	}

	remaining := e.ctl.RemainingSeconds()
	timerStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if remaining <= 60 {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s   %s   %s\n\n",
		timerStyle.Render(fmt.Sprintf("⏱ %02d:%02d", remaining/60, remaining%60)),
		theme.Hint.Render(fmt.Sprintf("question %d", e.ctl.Answered()+1)),
		theme.Hint.Render(q.Theme)))

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(cardWidth-6).
		Render(q.Text) + "\n\n")

	if q.Kind == quiz.KindTheory {
		b.WriteString(e.choice.View())
	} else {
		prompt := e.input.View()
		if q.Unit != "" {
			prompt += " " + theme.Hint.Render("("+q.Unit+")")
		}
		b.WriteString(prompt)
	}

	if e.saveErr != nil {
		b.WriteString("\n\n" + theme.Warning.Render("⚠ Progression non enregistrée : "+e.saveErr.Error()))
	}

	return theme.Card.Width(cardWidth).Render(b.String())
}

func (e *ExamScreen) renderSummary(width int) string {
	cardWidth := width - 20
	if cardWidth > 76 {
		cardWidth = 76
	}
	if cardWidth < 40 {
		cardWidth = 40
	}

	score := e.ctl.Score()
	total := e.ctl.Answered()
	accuracy := e.ctl.Accuracy()

	verdict := theme.Incorrect.Render("Il reste du travail — retournez aux fiches de cours.")
	if accuracy >= 0.8 {
		verdict = theme.Correct.Render("Excellent ! Vous êtes prêt pour l'épreuve.")
	} else if accuracy >= 0.5 {
		verdict = lipgloss.NewStyle().Foreground(theme.Accent).Render("Pas mal, continuez à vous entraîner.")
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Examen terminé") + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n",
		theme.Body.Render("Score :"),
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("%d / %d  (%.0f%%)", score, total, accuracy*100))))
	b.WriteString(fmt.Sprintf("%s +%d\n\n", theme.Body.Render("Points gagnés :"), score*10))
	b.WriteString(verdict + "\n")

	if missed := e.missedThemes(); len(missed) > 0 {
		b.WriteString("\n" + theme.Subtitle.Render("Thèmes à revoir") + "\n")
		for _, t := range missed {
			b.WriteString("  • " + lipgloss.NewStyle().Foreground(theme.Text).Render(t) + "\n")
		}
	}

	if wrong := e.wrongAttempts(); len(wrong) > 0 {
		b.WriteString("\n" + theme.Subtitle.Render("Vos erreurs") + "\n")
		for i, a := range wrong {
			if i >= 3 {
				b.WriteString(theme.Hint.Render(fmt.Sprintf("  … et %d autres", len(wrong)-3)) + "\n")
				break
			}
			b.WriteString(theme.Hint.Render("  "+truncate(a.Question.Text, cardWidth-12)) + "\n")
			b.WriteString("    " + theme.Incorrect.Render(displayInput(a.RawInput)) +
				lipgloss.NewStyle().Foreground(theme.Text).Render(" → ") +
				theme.Correct.Render(quiz.FormatAnswer(a.Question)) + "\n")
		}
	}

	if e.saveErr != nil {
		b.WriteString("\n" + theme.Warning.Render("⚠ Progression non enregistrée : "+e.saveErr.Error()))
	}

	return theme.Card.Width(cardWidth).Render(b.String())
}

func (e *ExamScreen) missedThemes() []string {
	var out []string
	seen := make(map[string]bool)
	for _, a := range e.ctl.Attempts() {
		if a.Correct || seen[a.Question.Theme] {
			continue
		}
		seen[a.Question.Theme] = true
		out = append(out, a.Question.Theme)
	}
	return out
}

func (e *ExamScreen) wrongAttempts() []examctl.AttemptRecord {
	var out []examctl.AttemptRecord
	for _, a := range e.ctl.Attempts() {
		if !a.Correct {
			out = append(out, a)
		}
	}
	return out
}

func displayInput(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "(vide)"
	}
	return raw
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if max < 4 || len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func (e *ExamScreen) Title() string {
	return "Examen"
}
