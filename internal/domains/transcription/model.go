package transcription

import (
	"time"

	"github.com/google/uuid"
)

// Transcription is one raw voice-note record. When the classifier splits a
// note into several entries, each entry is stored as its own record with
// its own processed flag.
type Transcription struct {
	ID               uuid.UUID  `json:"id"`
	Content          string     `json:"content"`
	Filename         string     `json:"filename,omitempty"`
	AudioPath        string     `json:"audio_path,omitempty"`
	DurationSeconds  float64    `json:"duration_seconds,omitempty"`
	ModelUsed        string     `json:"model_used,omitempty"`
	TranscribedAt    time.Time  `json:"transcribed_at"`
	Tag              string     `json:"tag,omitempty"`
	DestinationTable string     `json:"destination_table,omitempty"`
	DestinationID    *uuid.UUID `json:"destination_id,omitempty"`
	IsProcessed      bool       `json:"is_processed"`
	CreatedAt        time.Time  `json:"created_at"`
}

// SaveRequest carries a new record into the store.
type SaveRequest struct {
	Content         string
	Filename        string
	AudioPath       string
	DurationSeconds float64
	ModelUsed       string
	Tag             string
}
