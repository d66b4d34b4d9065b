package calendar

import (
	"time"

	"github.com/google/uuid"
)

// Event mirrors the Google Calendar event shape the extraction model is
// asked to produce; the flat columns keep the relational store simple.
type Event struct {
	ID                    uuid.UUID  `json:"id"`
	Summary               string     `json:"summary"`
	Location              string     `json:"location,omitempty"`
	Description           string     `json:"description,omitempty"`
	StartDateTime         string     `json:"start_datetime,omitempty"`
	StartTimeZone         string     `json:"start_timezone,omitempty"`
	EndDateTime           string     `json:"end_datetime,omitempty"`
	EndTimeZone           string     `json:"end_timezone,omitempty"`
	Attendees             string     `json:"attendees,omitempty"`
	Recurrence            string     `json:"recurrence,omitempty"`
	Visibility            string     `json:"visibility,omitempty"`
	Transparency          string     `json:"transparency,omitempty"`
	Status                string     `json:"status,omitempty"`
	GoogleCalendarLink    string     `json:"google_calendar_link,omitempty"`
	SourceTranscriptionID *uuid.UUID `json:"source_transcription_id,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

type Repository interface {
	Create(e *Event) error
	Upcoming(from time.Time, limit int) ([]Event, error)
}
