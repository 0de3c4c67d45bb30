package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mbriand/finquiz/internal/progress"
	"github.com/mbriand/finquiz/internal/router"
	"github.com/mbriand/finquiz/internal/screen"
	"github.com/mbriand/finquiz/internal/screens/course"
	"github.com/mbriand/finquiz/internal/screens/dashboard"
	"github.com/mbriand/finquiz/internal/screens/exam"
	"github.com/mbriand/finquiz/internal/screens/home"
	"github.com/mbriand/finquiz/internal/screens/practice"
	"github.com/mbriand/finquiz/internal/ui/layout"
)

// Options carries the dependencies the TUI needs. Start names the screen
// pushed over home at launch: "practice", "exam", "course" or "dashboard".
type Options struct {
	Progress *progress.Store
	Start    string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	progress *progress.Store
	width    int
	height   int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Progress)
	r := router.New(homeScreen)

	switch opts.Start {
	case "practice":
		r.Push(practice.New(opts.Progress))
	case "exam":
		r.Push(exam.New(opts.Progress))
	case "course":
		r.Push(course.New())
	case "dashboard":
		r.Push(dashboard.New(opts.Progress))
	}

	return AppModel{
		router:   r,
		progress: opts.Progress,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that manage their own esc handling (exam in
			// progress, feedback overlays) intercept it below.
			if m.router.Depth() > 1 {
				if active, ok := m.router.Active().(screen.EscHandler); ok && active.HandlesEsc() {
					break
				}
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	points := 0
	if m.progress != nil {
		points = m.progress.Read().TotalPoints
	}

	header := layout.RenderHeader(title, points, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Échap", Description: "Retour"},
			{Key: "Ctrl+C", Description: "Quitter"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Entrée", Description: "Valider"},
		{Key: "Ctrl+C", Description: "Quitter"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
