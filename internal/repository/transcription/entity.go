package transcription

import (
	"time"

	"github.com/google/uuid"
	"github.com/xpanvictor/jassist/internal/domains/transcription"
	"gorm.io/gorm"
)

// TranscriptionEntity is the GORM mapping for transcription records.
type TranscriptionEntity struct {
	ID               uuid.UUID  `gorm:"primaryKey;type:char(36);not null"`
	Content          string     `gorm:"column:content;type:text;not null"`
	Filename         string     `gorm:"column:filename"`
	AudioPath        string     `gorm:"column:audio_path"`
	DurationSeconds  float64    `gorm:"column:duration_seconds"`
	ModelUsed        string     `gorm:"column:model_used"`
	TranscribedAt    time.Time  `gorm:"column:transcribed_at"`
	Tag              string     `gorm:"column:tag;type:text"`
	DestinationTable string     `gorm:"column:destination_table"`
	DestinationID    *uuid.UUID `gorm:"column:destination_id;type:char(36)"`
	IsProcessed      bool       `gorm:"column:is_processed;default:false;index"`
	CreatedAt        time.Time  `gorm:"autoCreateTime(3);index"`
}

func (TranscriptionEntity) TableName() string {
	return "transcriptions"
}

func (t *TranscriptionEntity) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *TranscriptionEntity) ToDomain() *transcription.Transcription {
	return &transcription.Transcription{
		ID:               t.ID,
		Content:          t.Content,
		Filename:         t.Filename,
		AudioPath:        t.AudioPath,
		DurationSeconds:  t.DurationSeconds,
		ModelUsed:        t.ModelUsed,
		TranscribedAt:    t.TranscribedAt,
		Tag:              t.Tag,
		DestinationTable: t.DestinationTable,
		DestinationID:    t.DestinationID,
		IsProcessed:      t.IsProcessed,
		CreatedAt:        t.CreatedAt,
	}
}

func (t *TranscriptionEntity) FromDomain(d *transcription.Transcription) {
	t.ID = d.ID
	t.Content = d.Content
	t.Filename = d.Filename
	t.AudioPath = d.AudioPath
	t.DurationSeconds = d.DurationSeconds
	t.ModelUsed = d.ModelUsed
	t.TranscribedAt = d.TranscribedAt
	t.Tag = d.Tag
	t.DestinationTable = d.DestinationTable
	t.DestinationID = d.DestinationID
	t.IsProcessed = d.IsProcessed
	t.CreatedAt = d.CreatedAt
}
