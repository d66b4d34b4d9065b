package contacts

import (
	"github.com/google/uuid"
)

// Contact is a person mentioned in a voice note, with whatever details
// could be pulled out of the text.
type Contact struct {
	ID                    uuid.UUID  `json:"id"`
	FirstName             string     `json:"first_name"`
	LastName              string     `json:"last_name"`
	Phone                 string     `json:"phone"`
	Email                 string     `json:"email"`
	Note                  string     `json:"note"`
	SourceTranscriptionID *uuid.UUID `json:"source_transcription_id,omitempty"`
}

type Repository interface {
	Create(c *Contact) error
	Search(query string, limit int) ([]Contact, error)
}
