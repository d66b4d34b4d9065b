package todo

import (
	"time"

	"github.com/google/uuid"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"

	StatusPending = "pending"
)

// Task is one to-do item extracted from a voice note.
type Task struct {
	ID                    uuid.UUID  `json:"id"`
	Task                  string     `json:"task"`
	DueDate               *time.Time `json:"due_date,omitempty"`
	Priority              string     `json:"priority"`
	Status                string     `json:"status"`
	SourceTranscriptionID *uuid.UUID `json:"source_transcription_id,omitempty"`
}

type Repository interface {
	Create(t *Task) error
	Pending(limit int) ([]Task, error)
}
