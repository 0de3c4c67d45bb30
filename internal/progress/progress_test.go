package progress

import (
	"testing"
	"time"
)

func TestReadAbsentBlobReturnsDefault(t *testing.T) {
	s := NewStore(NewMemoryBlob())
	d := s.Read()

	if d.SchemaVersion != SchemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", d.SchemaVersion, SchemaVersion)
	}
	if d.TotalPoints != 0 || len(d.Stats) != 0 || len(d.History) != 0 {
		t.Errorf("default data not empty: %+v", d)
	}
}

func TestReadCorruptBlobReturnsDefault(t *testing.T) {
	for name, raw := range map[string]string{
		"not json":         "{{{",
		"wrong shape":      `{"schemaVersion": "one", "totalPoints": 0}`,
		"missing required": `{"stats": []}`,
		"negative points":  `{"schemaVersion": 1, "totalPoints": -5}`,
		"future schema":    `{"schemaVersion": 2, "totalPoints": 10}`,
	} {
		blob := NewMemoryBlob()
		blob.Seed([]byte(raw))
		d := NewStore(blob).Read()
		if d.TotalPoints != 0 || len(d.Stats) != 0 {
			t.Errorf("%s: corrupt blob should yield default, got %+v", name, d)
		}
	}
}

func TestRecordAnswerAccumulates(t *testing.T) {
	s := NewStore(NewMemoryBlob())

	if err := s.RecordAnswer("finance", "Actualisation", true); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordAnswer("finance", "Actualisation", false); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordAnswer("management", "Taux de Marge", true); err != nil {
		t.Fatal(err)
	}

	d := s.Read()
	if len(d.Stats) != 2 {
		t.Fatalf("expected 2 stat entries, got %d", len(d.Stats))
	}

	actu := d.Stats[0]
	if actu.Module != "finance" || actu.Theme != "Actualisation" {
		t.Fatalf("unexpected first entry: %+v", actu)
	}
	if actu.TotalAnswered != 2 || actu.CorrectAnswers != 1 {
		t.Errorf("Actualisation stats = %d/%d, want 2/1", actu.TotalAnswered, actu.CorrectAnswers)
	}

	wantAcc := 2.0 / 3.0
	if got := d.GlobalAccuracy(); got < wantAcc-1e-9 || got > wantAcc+1e-9 {
		t.Errorf("GlobalAccuracy = %v, want %v", got, wantAcc)
	}
}

func TestRecordExamAttemptCreditsPoints(t *testing.T) {
	s := NewStore(NewMemoryBlob())

	attempt := ExamAttempt{
		ID:           "a1",
		Date:         time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		Module:       "finance",
		Score:        7,
		Total:        10,
		DurationSecs: 600,
		MissedThemes: []string{"Actualisation"},
	}
	if err := s.RecordExamAttempt(attempt); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordExamAttempt(ExamAttempt{ID: "a2", Date: attempt.Date, Module: "finance", Score: 3, Total: 5}); err != nil {
		t.Fatal(err)
	}

	d := s.Read()
	if len(d.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(d.History))
	}
	if d.TotalPoints != 100 {
		t.Errorf("TotalPoints = %d, want 100 (7*10 + 3*10)", d.TotalPoints)
	}
	if d.History[0].MissedThemes[0] != "Actualisation" {
		t.Errorf("missed themes not preserved: %+v", d.History[0])
	}
}

func TestRoundTripThroughBlob(t *testing.T) {
	blob := NewMemoryBlob()
	s := NewStore(blob)

	if err := s.RecordAnswer("finance", "Annuité Constante", true); err != nil {
		t.Fatal(err)
	}

	// A fresh store over the same blob sees the same data, and the stored
	// payload passes its own schema.
	d := NewStore(blob).Read()
	if len(d.Stats) != 1 || d.Stats[0].CorrectAnswers != 1 {
		t.Errorf("re-read data = %+v", d)
	}

	raw, found, err := blob.Load()
	if err != nil || !found {
		t.Fatalf("blob not persisted: found=%v err=%v", found, err)
	}
	if err := validatePayload(raw); err != nil {
		t.Errorf("persisted payload fails validation: %v", err)
	}
}

func TestReset(t *testing.T) {
	s := NewStore(NewMemoryBlob())
	if err := s.RecordExamAttempt(ExamAttempt{ID: "a", Date: time.Now(), Module: "finance", Score: 5, Total: 5}); err != nil {
		t.Fatal(err)
	}
	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}

	d := s.Read()
	if d.TotalPoints != 0 || len(d.History) != 0 || len(d.Stats) != 0 {
		t.Errorf("reset left data behind: %+v", d)
	}
}
