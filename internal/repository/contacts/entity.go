package contacts

import (
	"time"

	"github.com/google/uuid"
	"github.com/xpanvictor/jassist/internal/domains/contacts"
	"gorm.io/gorm"
)

type ContactEntity struct {
	ID                    uuid.UUID  `gorm:"primaryKey;type:char(36);not null"`
	FirstName             string     `gorm:"column:first_name;index"`
	LastName              string     `gorm:"column:last_name;index"`
	Phone                 string     `gorm:"column:phone"`
	Email                 string     `gorm:"column:email"`
	Note                  string     `gorm:"column:note;type:text"`
	SourceTranscriptionID *uuid.UUID `gorm:"column:source_transcription_id;type:char(36)"`
	CreatedAt             time.Time  `gorm:"autoCreateTime(3)"`
}

func (ContactEntity) TableName() string {
	return "contacts"
}

func (e *ContactEntity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *ContactEntity) ToDomain() *contacts.Contact {
	return &contacts.Contact{
		ID:                    e.ID,
		FirstName:             e.FirstName,
		LastName:              e.LastName,
		Phone:                 e.Phone,
		Email:                 e.Email,
		Note:                  e.Note,
		SourceTranscriptionID: e.SourceTranscriptionID,
	}
}

func (e *ContactEntity) FromDomain(c *contacts.Contact) {
	e.ID = c.ID
	e.FirstName = c.FirstName
	e.LastName = c.LastName
	e.Phone = c.Phone
	e.Email = c.Email
	e.Note = c.Note
	e.SourceTranscriptionID = c.SourceTranscriptionID
}
