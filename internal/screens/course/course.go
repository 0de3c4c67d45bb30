package course

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mbriand/finquiz/internal/course"
	"github.com/mbriand/finquiz/internal/quiz"
	"github.com/mbriand/finquiz/internal/screen"
	"github.com/mbriand/finquiz/internal/ui/components"
	"github.com/mbriand/finquiz/internal/ui/layout"
	"github.com/mbriand/finquiz/internal/ui/theme"
)

type phase int

const (
	phaseModule phase = iota
	phaseSheets
)

// CourseScreen browses the reference sheets, one chapter per theme.
type CourseScreen struct {
	phase      phase
	moduleMenu components.Menu
	module     quiz.Module
	sheets     []course.Sheet
	selected   int
}

var _ screen.Screen = (*CourseScreen)(nil)
var _ screen.EscHandler = (*CourseScreen)(nil)
var _ screen.KeyHintProvider = (*CourseScreen)(nil)

// New creates a new CourseScreen at the module picker.
func New() *CourseScreen {
	c := &CourseScreen{}
	c.moduleMenu = components.NewMenu([]components.MenuItem{
		{Label: "Mathématiques financières", Action: func() tea.Cmd {
			return selectModule(quiz.ModuleFinance)
		}},
		{Label: "Gestion commerciale", Action: func() tea.Cmd {
			return selectModule(quiz.ModuleManagement)
		}},
	})
	return c
}

type moduleChosenMsg struct {
	module quiz.Module
}

func selectModule(m quiz.Module) tea.Cmd {
	return func() tea.Msg { return moduleChosenMsg{module: m} }
}

func (c *CourseScreen) Init() tea.Cmd {
	return nil
}

func (c *CourseScreen) HandlesEsc() bool {
	return c.phase == phaseSheets
}

func (c *CourseScreen) KeyHints() []layout.KeyHint {
	if c.phase == phaseSheets {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Chapitre"},
			{Key: "Échap", Description: "Retour"},
		}
	}
	return nil
}

func (c *CourseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case moduleChosenMsg:
		c.module = msg.module
		c.sheets = course.Sheets(msg.module)
		c.selected = 0
		c.phase = phaseSheets
		return c, nil

	case tea.KeyMsg:
		if c.phase == phaseSheets {
			switch msg.String() {
			case "esc":
				c.phase = phaseModule
				return c, nil
			case "up", "k":
				if c.selected > 0 {
					c.selected--
				}
				return c, nil
			case "down", "j":
				if c.selected < len(c.sheets)-1 {
					c.selected++
				}
				return c, nil
			}
			return c, nil
		}
	}

	if c.phase == phaseModule {
		var cmd tea.Cmd
		c.moduleMenu, cmd = c.moduleMenu.Update(msg)
		return c, cmd
	}

	return c, nil
}

func (c *CourseScreen) View(width, height int) string {
	if c.phase == phaseModule {
		content := theme.Title.Render("Fiches de cours") + "\n\n" +
			theme.Body.Render("Choisissez un module :") + "\n\n" +
			c.moduleMenu.View()
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(content)
	}

	listWidth := 32
	detailWidth := width - listWidth - 6
	if detailWidth < 20 {
		detailWidth = 20
	}

	var list strings.Builder
	list.WriteString(theme.Subtitle.Render(quiz.ModuleLabel(c.module)) + "\n\n")
	for i, sheet := range c.sheets {
		if i == c.selected {
			list.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("▸ "+sheet.Title) + "\n")
		} else {
			list.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("  "+sheet.Title) + "\n")
		}
	}

	detail := c.renderSheet(detailWidth)

	left := lipgloss.NewStyle().Width(listWidth).Render(list.String())
	right := theme.Card.Width(detailWidth).Render(detail)

	content := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(content)
}

func (c *CourseScreen) renderSheet(width int) string {
	if c.selected < 0 || c.selected >= len(c.sheets) {
		return ""
	}
	sheet := c.sheets[c.selected]

	var b strings.Builder
	b.WriteString(theme.Title.Render(sheet.Title) + "\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width-4).
		Render(sheet.Summary) + "\n\n")

	for _, f := range sheet.Formulas {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(f.Label) + "\n")
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Render(f.Expr) + "\n")
		if f.Note != "" {
			b.WriteString("  " + theme.Hint.Render(f.Note) + "\n")
		}
		b.WriteString("\n")
	}

	if sheet.Pitfall != "" {
		b.WriteString(theme.Warning.Render("⚠ Piège : ") +
			lipgloss.NewStyle().Foreground(theme.Text).Width(width-12).Render(sheet.Pitfall))
	}

	return b.String()
}

func (c *CourseScreen) Title() string {
	return "Cours"
}
