package transcription

import (
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence contract for transcription records.
type Repository interface {
	Create(t *Transcription) error
	GetByID(id uuid.UUID) (*Transcription, error)
	MarkProcessed(id uuid.UUID, destinationTable string, destinationID uuid.UUID) error
	Latest(limit int) ([]Transcription, error)
	Search(query string, limit int) ([]Transcription, error)
	ByDateRange(from, to time.Time) ([]Transcription, error)
	Unprocessed(limit int) ([]Transcription, error)
}
