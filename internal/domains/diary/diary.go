package diary

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one diary record derived from a voice note.
type Entry struct {
	ID                    uuid.UUID  `json:"id"`
	Content               string     `json:"content"`
	EntryDate             time.Time  `json:"entry_date"`
	Mood                  string     `json:"mood,omitempty"`
	Tags                  []string   `json:"tags,omitempty"`
	SourceTranscriptionID *uuid.UUID `json:"source_transcription_id,omitempty"`
}

type Repository interface {
	Create(e *Entry) error
	Latest(limit int) ([]Entry, error)
}
