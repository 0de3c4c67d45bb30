package practice

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mbriand/finquiz/internal/progress"
	"github.com/mbriand/finquiz/internal/quiz"
	"github.com/mbriand/finquiz/internal/screen"
	"github.com/mbriand/finquiz/internal/ui/components"
	"github.com/mbriand/finquiz/internal/ui/layout"
	"github.com/mbriand/finquiz/internal/ui/theme"
)

type phase int

const (
	phaseModule phase = iota
	phaseTheme
	phaseQuestion
	phaseFeedback
)

// PracticeScreen runs the free training mode: pick a module and theme, then
// answer questions one by one with full corrections in between.
type PracticeScreen struct {
	phase    phase
	store    *progress.Store
	gen      *quiz.Generator
	module   quiz.Module
	themeKey string

	moduleMenu components.Menu
	themeMenu  components.Menu

	question    quiz.Question
	input       components.TextInput
	inputErr    string
	lastCorrect bool
	saveErr     error

	answered int
	correct  int
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.EscHandler = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

type moduleChosenMsg struct{ module quiz.Module }
type themeChosenMsg struct{ key string }

// New creates a PracticeScreen at the module picker.
func New(store *progress.Store) *PracticeScreen {
	p := &PracticeScreen{
		store: store,
		gen:   quiz.New(quiz.DefaultConfig()),
	}
	p.moduleMenu = components.NewMenu([]components.MenuItem{
		{Label: "Mathématiques financières", Action: pickModule(quiz.ModuleFinance)},
		{Label: "Gestion commerciale", Action: pickModule(quiz.ModuleManagement)},
	})
	return p
}

func pickModule(m quiz.Module) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return moduleChosenMsg{module: m} }
	}
}

func pickTheme(key string) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return themeChosenMsg{key: key} }
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (p *PracticeScreen) HandlesEsc() bool {
	return p.phase != phaseModule
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	switch p.phase {
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "Entrée", Description: "Valider"},
			{Key: "Échap", Description: "Changer de thème"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "une touche", Description: "Question suivante"},
			{Key: "Échap", Description: "Changer de thème"},
		}
	}
	return nil
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case moduleChosenMsg:
		p.module = msg.module
		p.themeMenu = components.NewMenu(p.themeItems())
		p.phase = phaseTheme
		return p, nil

	case themeChosenMsg:
		p.themeKey = msg.key
		p.nextQuestion()
		return p, p.input.Init()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.phase == phaseQuestion {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	return p, nil
}

func (p *PracticeScreen) themeItems() []components.MenuItem {
	items := []components.MenuItem{
		{Label: "Tous les thèmes", Action: pickTheme("")},
	}
	for _, key := range quiz.Themes(p.module) {
		items = append(items, components.MenuItem{
			Label:  quiz.ThemeLabel(key),
			Action: pickTheme(key),
		})
	}
	return items
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch p.phase {
	case phaseModule:
		var cmd tea.Cmd
		p.moduleMenu, cmd = p.moduleMenu.Update(msg)
		return p, cmd

	case phaseTheme:
		if key == "esc" {
			p.phase = phaseModule
			return p, nil
		}
		var cmd tea.Cmd
		p.themeMenu, cmd = p.themeMenu.Update(msg)
		return p, cmd

	case phaseQuestion:
		switch key {
		case "esc":
			p.phase = phaseTheme
			return p, nil
		case "enter":
			return p.submit()
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd

	case phaseFeedback:
		if key == "esc" {
			p.phase = phaseTheme
			return p, nil
		}
		p.nextQuestion()
		return p, p.input.Init()
	}

	return p, nil
}

// submit grades the current input. A submission that does not parse as a
// number is rejected on the spot: the learner fixes it instead of losing
// the question.
func (p *PracticeScreen) submit() (screen.Screen, tea.Cmd) {
	raw := p.input.Value()
	if _, err := quiz.ParseNumber(raw); err != nil {
		p.inputErr = "Entrez un nombre valide (virgule ou point décimal)."
		return p, nil
	}
	p.inputErr = ""

	correct := quiz.Evaluate(p.question, raw, quiz.PracticeTolerance)
	p.input.Submit(correct)
	p.lastCorrect = correct
	p.answered++
	if correct {
		p.correct++
	}

	if p.store != nil {
		p.saveErr = p.store.RecordAnswer(string(p.question.Module), p.question.Theme, correct)
	}

	p.phase = phaseFeedback
	return p, nil
}

func (p *PracticeScreen) nextQuestion() {
	p.question = p.gen.Generate(p.module, p.themeKey)
	p.input = components.NewTextInput("Votre réponse…", true, 16)
	p.inputErr = ""
	p.phase = phaseQuestion
}

func (p *PracticeScreen) View(width, height int) string {
	center := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	switch p.phase {
	case phaseModule:
		return center.Render(
			theme.Title.Render("Entraînement") + "\n\n" +
				theme.Body.Render("Choisissez un module :") + "\n\n" +
				p.moduleMenu.View())

	case phaseTheme:
		return center.Render(
			theme.Title.Render(quiz.ModuleLabel(p.module)) + "\n\n" +
				theme.Body.Render("Choisissez un thème :") + "\n\n" +
				p.themeMenu.View())

	case phaseQuestion:
		return center.Render(p.renderQuestion(width))

	case phaseFeedback:
		return center.Render(p.renderFeedback(width))
	}

	return ""
}

func (p *PracticeScreen) renderQuestion(width int) string {
	cardWidth := width - 20
	if cardWidth > 76 {
		cardWidth = 76
	}
	if cardWidth < 40 {
		cardWidth = 40
	}

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%s  •  question %d", p.question.Theme, p.answered+1)) + "\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(cardWidth-6).
		Render(p.question.Text) + "\n\n")

	prompt := p.input.View()
	if p.question.Unit != "" {
		prompt += " " + theme.Hint.Render("("+p.question.Unit+")")
	}
	b.WriteString(prompt)

	if p.inputErr != "" {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(p.inputErr))
	}

	return theme.Card.Width(cardWidth).Render(b.String())
}

func (p *PracticeScreen) renderFeedback(width int) string {
	cardWidth := width - 20
	if cardWidth > 76 {
		cardWidth = 76
	}
	if cardWidth < 40 {
		cardWidth = 40
	}

	var b strings.Builder
	if p.lastCorrect {
		b.WriteString(theme.Correct.Render("✓ Bonne réponse !") + "\n\n")
	} else {
		b.WriteString(theme.Incorrect.Render("✗ Mauvaise réponse") + "\n\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("Réponse attendue : ") +
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(quiz.FormatAnswer(p.question)) + "\n\n")

	if p.question.Method != "" {
		b.WriteString(theme.Subtitle.Render("Méthode") + "\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cardWidth-6).Render(p.question.Method) + "\n\n")
	}
	if p.question.Explanation != "" {
		b.WriteString(theme.Subtitle.Render("Détail du calcul") + "\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cardWidth-6).Render(p.question.Explanation) + "\n\n")
	}
	if p.question.CourseReminder != "" {
		b.WriteString(theme.Hint.Render("Rappel : "+p.question.CourseReminder) + "\n")
	}
	if !p.lastCorrect && p.question.TrapWarning != "" {
		b.WriteString("\n" + theme.Warning.Render("⚠ ") +
			lipgloss.NewStyle().Foreground(theme.Text).Width(cardWidth-10).Render(p.question.TrapWarning) + "\n")
	}

	b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf("Session : %d/%d bonnes réponses", p.correct, p.answered)))

	if p.saveErr != nil {
		b.WriteString("\n" + theme.Warning.Render("⚠ Progression non enregistrée : "+p.saveErr.Error()))
	}

	return theme.Card.Width(cardWidth).Render(b.String())
}

func (p *PracticeScreen) Title() string {
	return "Entraînement"
}
