package diary

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/xpanvictor/jassist/internal/domains/diary"
	"gorm.io/gorm"
)

// TagList stores string slices as a JSON column.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "[]", nil
	}
	return json.Marshal(t)
}

func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = TagList{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		*t = TagList{}
		return nil
	}
}

type DiaryEntity struct {
	ID                    uuid.UUID  `gorm:"primaryKey;type:char(36);not null"`
	Content               string     `gorm:"column:content;type:text;not null"`
	EntryDate             time.Time  `gorm:"column:entry_date;index"`
	Mood                  string     `gorm:"column:mood"`
	Tags                  TagList    `gorm:"column:tags;type:json"`
	SourceTranscriptionID *uuid.UUID `gorm:"column:source_transcription_id;type:char(36)"`
	CreatedAt             time.Time  `gorm:"autoCreateTime(3)"`
}

func (DiaryEntity) TableName() string {
	return "diary"
}

func (e *DiaryEntity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *DiaryEntity) ToDomain() *diary.Entry {
	tags := []string(e.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &diary.Entry{
		ID:                    e.ID,
		Content:               e.Content,
		EntryDate:             e.EntryDate,
		Mood:                  e.Mood,
		Tags:                  tags,
		SourceTranscriptionID: e.SourceTranscriptionID,
	}
}

func (e *DiaryEntity) FromDomain(d *diary.Entry) {
	e.ID = d.ID
	e.Content = d.Content
	e.EntryDate = d.EntryDate
	e.Mood = d.Mood
	e.Tags = TagList(d.Tags)
	e.SourceTranscriptionID = d.SourceTranscriptionID
}
