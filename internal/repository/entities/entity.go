package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/xpanvictor/jassist/internal/domains/entities"
	"gorm.io/gorm"
)

type EntityEntity struct {
	ID                    uuid.UUID  `gorm:"primaryKey;type:char(36);not null"`
	Name                  string     `gorm:"column:name;not null;index"`
	Type                  string     `gorm:"column:type;index"`
	Context               string     `gorm:"column:context;type:text"`
	RelevanceScore        float64    `gorm:"column:relevance_score"`
	SourceTranscriptionID *uuid.UUID `gorm:"column:source_transcription_id;type:char(36)"`
	CreatedAt             time.Time  `gorm:"autoCreateTime(3)"`
}

func (EntityEntity) TableName() string {
	return "entities"
}

func (e *EntityEntity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *EntityEntity) ToDomain() *entities.Entity {
	return &entities.Entity{
		ID:                    e.ID,
		Name:                  e.Name,
		Type:                  e.Type,
		Context:               e.Context,
		RelevanceScore:        e.RelevanceScore,
		SourceTranscriptionID: e.SourceTranscriptionID,
	}
}

func (e *EntityEntity) FromDomain(d *entities.Entity) {
	e.ID = d.ID
	e.Name = d.Name
	e.Type = d.Type
	e.Context = d.Context
	e.RelevanceScore = d.RelevanceScore
	e.SourceTranscriptionID = d.SourceTranscriptionID
}
