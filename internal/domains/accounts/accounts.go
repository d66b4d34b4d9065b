package accounts

import (
	"time"

	"github.com/google/uuid"
)

const (
	EntryTypeIncome  = "income"
	EntryTypeExpense = "expense"
)

// Entry is one financial record extracted from a voice note.
type Entry struct {
	ID                    uuid.UUID  `json:"id"`
	EntryType             string     `json:"entry_type"`
	Amount                float64    `json:"amount"`
	Currency              string     `json:"currency"`
	Note                  string     `json:"note"`
	Date                  *time.Time `json:"date,omitempty"`
	SourceTranscriptionID *uuid.UUID `json:"source_transcription_id,omitempty"`
}

type Repository interface {
	Create(e *Entry) error
	Latest(limit int) ([]Entry, error)
}
