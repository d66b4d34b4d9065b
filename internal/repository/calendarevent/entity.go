package calendarevent

import (
	"time"

	"github.com/google/uuid"
	"github.com/xpanvictor/jassist/internal/domains/calendar"
	"gorm.io/gorm"
)

type EventEntity struct {
	ID                    uuid.UUID  `gorm:"primaryKey;type:char(36);not null"`
	Summary               string     `gorm:"column:summary"`
	Location              string     `gorm:"column:location"`
	Description           string     `gorm:"column:description;type:text"`
	StartDateTime         string     `gorm:"column:start_datetime;index"`
	StartTimeZone         string     `gorm:"column:start_timezone"`
	EndDateTime           string     `gorm:"column:end_datetime"`
	EndTimeZone           string     `gorm:"column:end_timezone"`
	Attendees             string     `gorm:"column:attendees;type:text"`
	Recurrence            string     `gorm:"column:recurrence;type:text"`
	Visibility            string     `gorm:"column:visibility"`
	Transparency          string     `gorm:"column:transparency"`
	Status                string     `gorm:"column:status"`
	GoogleCalendarLink    string     `gorm:"column:google_calendar_link"`
	SourceTranscriptionID *uuid.UUID `gorm:"column:source_transcription_id;type:char(36)"`
	CreatedAt             time.Time  `gorm:"autoCreateTime(3)"`
}

func (EventEntity) TableName() string {
	return "calendar_events"
}

func (e *EventEntity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *EventEntity) ToDomain() *calendar.Event {
	return &calendar.Event{
		ID:                    e.ID,
		Summary:               e.Summary,
		Location:              e.Location,
		Description:           e.Description,
		StartDateTime:         e.StartDateTime,
		StartTimeZone:         e.StartTimeZone,
		EndDateTime:           e.EndDateTime,
		EndTimeZone:           e.EndTimeZone,
		Attendees:             e.Attendees,
		Recurrence:            e.Recurrence,
		Visibility:            e.Visibility,
		Transparency:          e.Transparency,
		Status:                e.Status,
		GoogleCalendarLink:    e.GoogleCalendarLink,
		SourceTranscriptionID: e.SourceTranscriptionID,
		CreatedAt:             e.CreatedAt,
	}
}

func (e *EventEntity) FromDomain(d *calendar.Event) {
	e.ID = d.ID
	e.Summary = d.Summary
	e.Location = d.Location
	e.Description = d.Description
	e.StartDateTime = d.StartDateTime
	e.StartTimeZone = d.StartTimeZone
	e.EndDateTime = d.EndDateTime
	e.EndTimeZone = d.EndTimeZone
	e.Attendees = d.Attendees
	e.Recurrence = d.Recurrence
	e.Visibility = d.Visibility
	e.Transparency = d.Transparency
	e.Status = d.Status
	e.GoogleCalendarLink = d.GoogleCalendarLink
	e.SourceTranscriptionID = d.SourceTranscriptionID
	e.CreatedAt = d.CreatedAt
}
