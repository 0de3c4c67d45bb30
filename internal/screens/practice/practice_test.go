package practice

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mbriand/finquiz/internal/progress"
	"github.com/mbriand/finquiz/internal/quiz"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func startedPractice(t *testing.T) (*PracticeScreen, *progress.Store) {
	t.Helper()
	store := progress.NewStore(progress.NewMemoryBlob())
	p := New(store)
	p.Update(moduleChosenMsg{module: quiz.ModuleFinance})
	p.Update(themeChosenMsg{key: ""})
	if p.phase != phaseQuestion {
		t.Fatal("practice session did not reach the question phase")
	}
	return p, store
}

func TestUnparseableSubmissionIsBlocked(t *testing.T) {
	p, store := startedPractice(t)

	p.input.Model.SetValue("12,,3")
	p.Update(specialKey(tea.KeyEnter))

	if p.phase != phaseQuestion {
		t.Error("invalid input should keep the question on screen")
	}
	if p.inputErr == "" {
		t.Error("invalid input should surface an error message")
	}
	if p.answered != 0 {
		t.Error("blocked submission must not count as answered")
	}
	if n := len(store.Read().Stats); n != 0 {
		t.Errorf("blocked submission persisted %d stat entries", n)
	}
}

func TestCorrectSubmissionRecordsAndShowsFeedback(t *testing.T) {
	p, store := startedPractice(t)

	q := p.question
	p.input.Model.SetValue(fmt.Sprintf("%.*f", q.Decimals, q.Answer))
	p.Update(specialKey(tea.KeyEnter))

	if p.phase != phaseFeedback {
		t.Fatalf("phase = %v, want feedback", p.phase)
	}
	if !p.lastCorrect {
		t.Error("ground-truth answer graded incorrect")
	}
	if p.answered != 1 || p.correct != 1 {
		t.Errorf("session counters = %d/%d, want 1/1", p.correct, p.answered)
	}

	d := store.Read()
	if len(d.Stats) != 1 {
		t.Fatalf("persisted stats = %d entries, want 1", len(d.Stats))
	}
	if d.Stats[0].Theme != q.Theme || d.Stats[0].CorrectAnswers != 1 {
		t.Errorf("unexpected stat entry: %+v", d.Stats[0])
	}
}

func TestCommaDecimalAccepted(t *testing.T) {
	p, _ := startedPractice(t)

	q := p.question
	raw := fmt.Sprintf("%.*f", q.Decimals, q.Answer)
	// Submit with the French decimal separator.
	for i, r := range raw {
		if r == '.' {
			raw = raw[:i] + "," + raw[i+1:]
			break
		}
	}
	p.input.Model.SetValue(raw)
	p.Update(specialKey(tea.KeyEnter))

	if !p.lastCorrect {
		t.Errorf("comma-decimal submission %q graded incorrect for %v", raw, q.Answer)
	}
}

// brokenBlob accepts reads but fails every write.
type brokenBlob struct{}

func (brokenBlob) Load() ([]byte, bool, error) { return nil, false, nil }
func (brokenBlob) Save([]byte) error           { return fmt.Errorf("disque plein") }

func TestFailedSaveIsSurfacedInFeedback(t *testing.T) {
	p := New(progress.NewStore(brokenBlob{}))
	p.Update(moduleChosenMsg{module: quiz.ModuleFinance})
	p.Update(themeChosenMsg{key: ""})

	q := p.question
	p.input.Model.SetValue(fmt.Sprintf("%.*f", q.Decimals, q.Answer))
	p.Update(specialKey(tea.KeyEnter))

	if p.saveErr == nil {
		t.Fatal("write failure was not captured")
	}
	if view := p.View(100, 40); !strings.Contains(view, "Progression non enregistrée") {
		t.Error("feedback view does not mention the failed save")
	}
}

func TestAnyKeyAdvancesFromFeedback(t *testing.T) {
	p, _ := startedPractice(t)

	p.input.Model.SetValue("0")
	p.Update(specialKey(tea.KeyEnter))
	if p.phase != phaseFeedback {
		t.Fatal("expected feedback phase")
	}

	p.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	if p.phase != phaseQuestion {
		t.Errorf("phase = %v, want a fresh question", p.phase)
	}
}
