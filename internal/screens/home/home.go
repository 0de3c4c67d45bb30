package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mbriand/finquiz/internal/progress"
	"github.com/mbriand/finquiz/internal/router"
	"github.com/mbriand/finquiz/internal/screen"
	courseview "github.com/mbriand/finquiz/internal/screens/course"
	"github.com/mbriand/finquiz/internal/screens/dashboard"
	examscreen "github.com/mbriand/finquiz/internal/screens/exam"
	practicescreen "github.com/mbriand/finquiz/internal/screens/practice"
	"github.com/mbriand/finquiz/internal/ui/components"
	"github.com/mbriand/finquiz/internal/ui/theme"
)

// HomeScreen is the landing screen with the main navigation menu.
type HomeScreen struct {
	menu     components.Menu
	progress *progress.Store
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(store *progress.Store) *HomeScreen {
	items := []components.MenuItem{
		{Label: "ENTRAÎNEMENT", Hint: "questions libres par thème", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practicescreen.New(store)}
			}
		}},
		{Label: "MODE EXAMEN", Hint: "session chronométrée", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: examscreen.New(store)}
			}
		}},
		{Label: "FICHES DE COURS", Hint: "formules et pièges", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: courseview.New()}
			}
		}},
		{Label: "TABLEAU DE BORD", Hint: "progression et historique", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(store)}
			}
		}},
		{Label: "QUITTER", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		progress: store,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("FinQuiz — Révisions ISTEC")
	subtitle := theme.Subtitle.Render("Mathématiques financières & Gestion commerciale")
	sections = append(sections, title, subtitle, "")

	if h.progress != nil {
		data := h.progress.Read()
		stats := fmt.Sprintf("★ %d points   •   %d examens passés   •   %.0f%% de réussite globale",
			data.TotalPoints, len(data.History), data.GlobalAccuracy()*100)
		sections = append(sections, theme.Hint.Render(stats), "")
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Accueil"
}
