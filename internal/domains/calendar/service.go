package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xpanvictor/jassist/internal/domains/transcription"
	"github.com/xpanvictor/jassist/pkg/Logger"
	"github.com/xpanvictor/jassist/pkg/assistant"
	"github.com/xpanvictor/jassist/pkg/jsonx"
)

const destinationTable = "calendar_events"

const extractPrompt = "You convert a spoken note about an appointment into a " +
	"Google Calendar event. Reply with JSON only, in this shape:\n" +
	`{"summary": "...", "location": "...", "description": "...",` +
	` "start": {"dateTime": "RFC3339", "timeZone": "IANA zone"},` +
	` "end": {"dateTime": "RFC3339", "timeZone": "IANA zone"},` +
	` "attendees": ["email or name"], "recurrence": ["RRULE:..."]}` + "\n" +
	"Omit fields you cannot infer. Assume a one hour duration when no end is given."

// eventPayload is the wire shape the extraction model replies with.
type eventPayload struct {
	Summary     string `json:"summary"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Start       struct {
		DateTime string `json:"dateTime"`
		TimeZone string `json:"timeZone"`
	} `json:"start"`
	End struct {
		DateTime string `json:"dateTime"`
		TimeZone string `json:"timeZone"`
	} `json:"end"`
	Attendees    []string `json:"attendees"`
	Recurrence   []string `json:"recurrence"`
	Visibility   string   `json:"visibility"`
	Transparency string   `json:"transparency"`
	Status       string   `json:"status"`
}

// Sync pushes a stored event to an external calendar and returns a link to
// the created entry.
type Sync interface {
	InsertEvent(ctx context.Context, e *Event) (string, error)
}

type Service interface {
	Handle(ctx context.Context, text string, sourceID *uuid.UUID) error
	Upcoming(ctx context.Context, limit int) ([]Event, error)
}

type calendarService struct {
	repository     Repository
	transcriptions transcription.Service
	extractor      assistant.Assistant
	sync           Sync
	logger         *Logger.Logger
}

// NewService builds the calendar handler. sync may be nil when Google
// Calendar is not configured; events are then only stored locally.
func NewService(repository Repository, transcriptions transcription.Service, extractor assistant.Assistant, sync Sync, logger *Logger.Logger) Service {
	return &calendarService{
		repository:     repository,
		transcriptions: transcriptions,
		extractor:      extractor,
		sync:           sync,
		logger:         logger,
	}
}

// Handle extracts a structured event from the text, stores it and then
// pushes it to the external calendar. The push is best effort: once the
// row exists the handler reports success even if the sync fails.
func (s *calendarService) Handle(ctx context.Context, text string, sourceID *uuid.UUID) error {
	reply, err := assistant.Ask(ctx, s.extractor, extractPrompt, text)
	if err != nil {
		return fmt.Errorf("event extraction failed: %w", err)
	}

	var payload eventPayload
	if err := jsonx.Extract(reply, &payload); err != nil {
		return fmt.Errorf("event extraction reply had no JSON: %w", err)
	}
	if payload.Summary == "" {
		return fmt.Errorf("event extraction returned no summary")
	}

	event := &Event{
		Summary:               payload.Summary,
		Location:              payload.Location,
		Description:           payload.Description,
		StartDateTime:         payload.Start.DateTime,
		StartTimeZone:         payload.Start.TimeZone,
		EndDateTime:           payload.End.DateTime,
		EndTimeZone:           payload.End.TimeZone,
		Attendees:             strings.Join(payload.Attendees, ", "),
		Recurrence:            strings.Join(payload.Recurrence, "\n"),
		Visibility:            payload.Visibility,
		Transparency:          payload.Transparency,
		Status:                payload.Status,
		SourceTranscriptionID: sourceID,
	}

	if err := s.repository.Create(event); err != nil {
		return fmt.Errorf("failed to save calendar event: %w", err)
	}
	s.logger.Infof("calendar event saved with ID: %s", event.ID)

	if sourceID != nil {
		if err := s.transcriptions.MarkProcessed(ctx, *sourceID, destinationTable, event.ID); err != nil {
			s.logger.Warnf("could not mark transcription %s processed: %v", sourceID, err)
		}
	}

	if s.sync != nil {
		link, err := s.sync.InsertEvent(ctx, event)
		if err != nil {
			s.logger.Warnf("google calendar insert failed: %v", err)
		} else {
			event.GoogleCalendarLink = link
			s.logger.Infof("google calendar event created at: %s", link)
		}
	}
	return nil
}

func (s *calendarService) Upcoming(ctx context.Context, limit int) ([]Event, error) {
	return s.repository.Upcoming(time.Now(), limit)
}
