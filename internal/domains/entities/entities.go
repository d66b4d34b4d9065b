package entities

import (
	"github.com/google/uuid"
)

// Entity is a named thing worth tracking across notes: a project, a
// place, an organization, a recurring topic.
type Entity struct {
	ID                    uuid.UUID  `json:"id"`
	Name                  string     `json:"name"`
	Type                  string     `json:"type"`
	Context               string     `json:"context"`
	RelevanceScore        float64    `json:"relevance_score"`
	SourceTranscriptionID *uuid.UUID `json:"source_transcription_id,omitempty"`
}

type Repository interface {
	Create(e *Entity) error
	ByName(name string, limit int) ([]Entity, error)
}
