package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mbriand/finquiz/internal/progress"
	"github.com/mbriand/finquiz/internal/screen"
	"github.com/mbriand/finquiz/internal/ui/components"
	"github.com/mbriand/finquiz/internal/ui/theme"
)

const maxHistoryRows = 6

// DashboardScreen shows points, global accuracy, per-theme accuracy and the
// exam history.
type DashboardScreen struct {
	data *progress.Data
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates a DashboardScreen from the current persisted state.
func New(store *progress.Store) *DashboardScreen {
	var data *progress.Data
	if store != nil {
		data = store.Read()
	} else {
		data = &progress.Data{}
	}
	return &DashboardScreen{data: data}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	colWidth := (width - 8) / 2
	if colWidth < 30 {
		colWidth = 30
	}

	left := theme.Card.Width(colWidth).Render(d.renderSummary() + "\n\n" + d.renderThemes(colWidth-6))
	right := theme.Card.Width(colWidth).Render(d.renderHistory())

	content := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(theme.Title.Render("Tableau de bord") + "\n\n" + content)
}

func (d *DashboardScreen) renderSummary() string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Progression") + "\n\n")
	b.WriteString(fmt.Sprintf("%s %d\n",
		lipgloss.NewStyle().Foreground(theme.Accent).Render("★ Points :"),
		d.data.TotalPoints))
	b.WriteString(fmt.Sprintf("%s %d\n",
		lipgloss.NewStyle().Foreground(theme.Text).Render("Examens passés :"),
		len(d.data.History)))
	b.WriteString(fmt.Sprintf("%s %.0f%%",
		lipgloss.NewStyle().Foreground(theme.Text).Render("Réussite globale :"),
		d.data.GlobalAccuracy()*100))
	return b.String()
}

func (d *DashboardScreen) renderThemes(width int) string {
	if len(d.data.Stats) == 0 {
		return theme.Hint.Render("Aucune réponse enregistrée pour l'instant.")
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Par thème") + "\n\n")
	for _, s := range d.data.Stats {
		if s.TotalAnswered == 0 {
			continue
		}
		acc := float64(s.CorrectAnswers) / float64(s.TotalAnswered)
		label := fmt.Sprintf("%-24s", truncate(s.Theme, 24))
		bar := components.AccuracyBar(label, acc, width)
		b.WriteString(bar.View() + "\n")
	}
	return b.String()
}

func (d *DashboardScreen) renderHistory() string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Derniers examens") + "\n\n")

	if len(d.data.History) == 0 {
		b.WriteString(theme.Hint.Render("Aucun examen passé pour l'instant."))
		return b.String()
	}

	// Most recent first.
	history := d.data.History
	start := len(history) - 1
	shown := 0
	for i := start; i >= 0 && shown < maxHistoryRows; i-- {
		a := history[i]
		accuracy := 0.0
		if a.Total > 0 {
			accuracy = float64(a.Score) / float64(a.Total)
		}
		style := lipgloss.NewStyle().Foreground(theme.Error)
		if accuracy >= 0.5 {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			theme.Hint.Render(a.Date.Format("02/01 15:04")),
			moduleShort(a.Module),
			style.Render(fmt.Sprintf("%d/%d", a.Score, a.Total))))
		if len(a.MissedThemes) > 0 {
			b.WriteString("   " + theme.Hint.Render("À revoir : "+strings.Join(a.MissedThemes, ", ")) + "\n")
		}
		shown++
	}
	return b.String()
}

func moduleShort(module string) string {
	if module == "management" {
		return "Gestion"
	}
	return "Finance"
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func (d *DashboardScreen) Title() string {
	return "Tableau de bord"
}
