package exam

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	examctl "github.com/mbriand/finquiz/internal/exam"
	"github.com/mbriand/finquiz/internal/progress"
	"github.com/mbriand/finquiz/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func startedScreen(t *testing.T) *ExamScreen {
	t.Helper()
	e := New(progress.NewStore(progress.NewMemoryBlob()))
	e.Update(moduleChosenMsg{module: quiz.ModuleFinance})
	e.Update(durationChosenMsg{minutes: 10})
	if e.ctl.Status() != examctl.StatusActive {
		t.Fatal("exam did not start")
	}
	return e
}

func TestStartServesFirstQuestion(t *testing.T) {
	e := startedScreen(t)

	if _, ok := e.ctl.Current(); !ok {
		t.Error("active exam has no current question")
	}
	if e.ctl.RemainingSeconds() != 600 {
		t.Errorf("remaining = %d, want 600", e.ctl.RemainingSeconds())
	}
}

func TestStaleTickIsDropped(t *testing.T) {
	e := startedScreen(t)
	epoch := e.tickEpoch

	// A tick tagged with an older epoch must not consume time.
	e.Update(timerTickMsg{epoch: epoch - 1})
	if e.ctl.RemainingSeconds() != 600 {
		t.Errorf("stale tick consumed time: remaining = %d", e.ctl.RemainingSeconds())
	}

	e.Update(timerTickMsg{epoch: epoch})
	if e.ctl.RemainingSeconds() != 599 {
		t.Errorf("current tick not applied: remaining = %d", e.ctl.RemainingSeconds())
	}
}

func TestRestartInvalidatesRunningTimer(t *testing.T) {
	e := startedScreen(t)
	oldEpoch := e.tickEpoch

	// Run the clock out to reach the summary.
	for {
		finished, _ := e.ctl.Tick()
		if finished {
			break
		}
	}
	e.Update(keyPress('r'))
	if e.ctl.Status() != examctl.StatusSetup {
		t.Fatalf("status after restart = %v, want setup", e.ctl.Status())
	}

	e.Update(moduleChosenMsg{module: quiz.ModuleFinance})
	e.Update(durationChosenMsg{minutes: 10})
	if e.tickEpoch <= oldEpoch {
		t.Error("restart should advance the tick epoch")
	}

	// The first run's timer cannot touch the new session.
	e.Update(timerTickMsg{epoch: oldEpoch})
	if e.ctl.RemainingSeconds() != 600 {
		t.Errorf("old timer reached new session: remaining = %d", e.ctl.RemainingSeconds())
	}
}

func TestEscapeShowsQuitConfirm(t *testing.T) {
	e := startedScreen(t)

	if !e.HandlesEsc() {
		t.Fatal("active exam should own the escape key")
	}

	e.Update(specialKey(tea.KeyEscape))
	if !e.quitConfirm {
		t.Fatal("escape should raise the quit confirmation")
	}

	e.Update(keyPress('n'))
	if e.quitConfirm {
		t.Error("'n' should dismiss the confirmation")
	}
	if e.ctl.Status() != examctl.StatusActive {
		t.Errorf("declining quit changed status to %v", e.ctl.Status())
	}
}

// brokenBlob accepts reads but fails every write.
type brokenBlob struct{}

func (brokenBlob) Load() ([]byte, bool, error) { return nil, false, nil }
func (brokenBlob) Save([]byte) error           { return fmt.Errorf("disque plein") }

func TestFailedSaveIsSurfacedDuringExam(t *testing.T) {
	e := New(progress.NewStore(brokenBlob{}))
	e.Update(moduleChosenMsg{module: quiz.ModuleFinance})
	e.Update(durationChosenMsg{minutes: 10})

	e.input.Model.SetValue("123")
	e.Update(specialKey(tea.KeyEnter))

	if e.saveErr == nil {
		t.Fatal("write failure was not captured")
	}
	if view := e.View(100, 40); !strings.Contains(view, "Progression non enregistrée") {
		t.Error("exam view does not mention the failed save")
	}

	// A fresh session starts clean.
	e.startExam(10)
	if e.saveErr != nil {
		t.Error("restart should clear the stale warning")
	}
}

func TestSubmitServesNextQuestion(t *testing.T) {
	e := startedScreen(t)

	before := e.ctl.Answered()
	q, _ := e.ctl.Current()

	if q.Kind == quiz.KindTheory {
		e.Update(specialKey(tea.KeyEnter))
	} else {
		e.input.Model.SetValue("123")
		e.Update(specialKey(tea.KeyEnter))
	}

	if e.ctl.Answered() != before+1 {
		t.Errorf("answered = %d, want %d", e.ctl.Answered(), before+1)
	}
	if _, ok := e.ctl.Current(); !ok {
		t.Error("no follow-up question after submit")
	}
}
