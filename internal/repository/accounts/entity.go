package accounts

import (
	"time"

	"github.com/google/uuid"
	"github.com/xpanvictor/jassist/internal/domains/accounts"
	"gorm.io/gorm"
)

type EntryEntity struct {
	ID                    uuid.UUID  `gorm:"primaryKey;type:char(36);not null"`
	EntryType             string     `gorm:"column:entry_type;not null;index"`
	Amount                float64    `gorm:"column:amount;not null"`
	Currency              string     `gorm:"column:currency;type:char(3);not null"`
	Note                  string     `gorm:"column:note;type:text"`
	Date                  *time.Time `gorm:"column:date;index"`
	SourceTranscriptionID *uuid.UUID `gorm:"column:source_transcription_id;type:char(36)"`
	CreatedAt             time.Time  `gorm:"autoCreateTime(3)"`
}

func (EntryEntity) TableName() string {
	return "accounts"
}

func (e *EntryEntity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *EntryEntity) ToDomain() *accounts.Entry {
	return &accounts.Entry{
		ID:                    e.ID,
		EntryType:             e.EntryType,
		Amount:                e.Amount,
		Currency:              e.Currency,
		Note:                  e.Note,
		Date:                  e.Date,
		SourceTranscriptionID: e.SourceTranscriptionID,
	}
}

func (e *EntryEntity) FromDomain(d *accounts.Entry) {
	e.ID = d.ID
	e.EntryType = d.EntryType
	e.Amount = d.Amount
	e.Currency = d.Currency
	e.Note = d.Note
	e.Date = d.Date
	e.SourceTranscriptionID = d.SourceTranscriptionID
}
