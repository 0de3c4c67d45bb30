// Package progress persists the learner's aggregate results: per-theme
// answer counts, exam history and the cumulative point total.
//
// The aggregate is one JSON blob behind a small storage port, so the store
// works the same over SQLite (the default adapter in internal/store) and the
// in-memory fake used by tests. Every update is a whole-blob
// read-modify-write; the app has a single actor so no locking is needed.
package progress

import (
	"encoding/json"
	"fmt"
	"time"
)

// SchemaVersion is embedded in the payload so a future format change can be
// detected instead of silently misread.
const SchemaVersion = 1

// Blob is the storage port. Load reports found=false when nothing has been
// persisted yet.
type Blob interface {
	Load() (data []byte, found bool, err error)
	Save(data []byte) error
}

// UserStats accumulates results for one (module, theme) pair. Entries are
// created lazily on first answer and never deleted.
type UserStats struct {
	Module         string `json:"module"`
	Theme          string `json:"theme"`
	TotalAnswered  int    `json:"totalAnswered"`
	CorrectAnswers int    `json:"correctAnswers"`
}

// ExamAttempt summarizes one finished exam session. Append-only.
type ExamAttempt struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Module       string    `json:"module"`
	Score        int       `json:"score"`
	Total        int       `json:"total"`
	DurationSecs int       `json:"durationSecs"`
	MissedThemes []string  `json:"missedThemes,omitempty"`
}

// Data is the root persisted aggregate.
type Data struct {
	SchemaVersion int           `json:"schemaVersion"`
	Stats         []UserStats   `json:"stats"`
	History       []ExamAttempt `json:"history"`
	TotalPoints   int           `json:"totalPoints"`
}

// GlobalAccuracy returns correct/total over all themes, or 0 with no answers.
func (d *Data) GlobalAccuracy() float64 {
	var total, correct int
	for _, s := range d.Stats {
		total += s.TotalAnswered
		correct += s.CorrectAnswers
	}
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

// Store reads and updates the persisted aggregate through a Blob port.
type Store struct {
	blob Blob
}

// NewStore creates a Store over the given storage port.
func NewStore(blob Blob) *Store {
	return &Store{blob: blob}
}

func defaultData() *Data {
	return &Data{SchemaVersion: SchemaVersion}
}

// Read returns the persisted aggregate. An absent, unreadable or
// schema-invalid blob yields the empty default; corruption is never surfaced
// as an error to callers.
func (s *Store) Read() *Data {
	raw, found, err := s.blob.Load()
	if err != nil || !found {
		return defaultData()
	}
	if err := validatePayload(raw); err != nil {
		return defaultData()
	}
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return defaultData()
	}
	return &d
}

// RecordAnswer increments the (module, theme) stats entry, creating it on
// first use, and persists the whole aggregate back.
func (s *Store) RecordAnswer(module, theme string, isCorrect bool) error {
	d := s.Read()

	var stat *UserStats
	for idx := range d.Stats {
		if d.Stats[idx].Module == module && d.Stats[idx].Theme == theme {
			stat = &d.Stats[idx]
			break
		}
	}
	if stat == nil {
		d.Stats = append(d.Stats, UserStats{Module: module, Theme: theme})
		stat = &d.Stats[len(d.Stats)-1]
	}

	stat.TotalAnswered++
	if isCorrect {
		stat.CorrectAnswers++
	}

	return s.write(d)
}

// RecordExamAttempt appends the attempt to the history and credits
// score*10 points. TotalPoints only ever grows.
func (s *Store) RecordExamAttempt(attempt ExamAttempt) error {
	d := s.Read()
	d.History = append(d.History, attempt)
	d.TotalPoints += attempt.Score * 10
	return s.write(d)
}

// Reset overwrites the aggregate with the empty default.
func (s *Store) Reset() error {
	return s.write(defaultData())
}

func (s *Store) write(d *Data) error {
	d.SchemaVersion = SchemaVersion
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := s.blob.Save(raw); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
