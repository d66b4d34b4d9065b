package todo

import (
	"time"

	"github.com/google/uuid"
	"github.com/xpanvictor/jassist/internal/domains/todo"
	"gorm.io/gorm"
)

type TaskEntity struct {
	ID                    uuid.UUID  `gorm:"primaryKey;type:char(36);not null"`
	Task                  string     `gorm:"column:task;type:text;not null"`
	DueDate               *time.Time `gorm:"column:due_date;index"`
	Priority              string     `gorm:"column:priority"`
	Status                string     `gorm:"column:status;default:pending"`
	SourceTranscriptionID *uuid.UUID `gorm:"column:source_transcription_id;type:char(36)"`
	CreatedAt             time.Time  `gorm:"autoCreateTime(3)"`
}

func (TaskEntity) TableName() string {
	return "to_do"
}

func (e *TaskEntity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *TaskEntity) ToDomain() *todo.Task {
	return &todo.Task{
		ID:                    e.ID,
		Task:                  e.Task,
		DueDate:               e.DueDate,
		Priority:              e.Priority,
		Status:                e.Status,
		SourceTranscriptionID: e.SourceTranscriptionID,
	}
}

func (e *TaskEntity) FromDomain(d *todo.Task) {
	e.ID = d.ID
	e.Task = d.Task
	e.DueDate = d.DueDate
	e.Priority = d.Priority
	e.Status = d.Status
	e.SourceTranscriptionID = d.SourceTranscriptionID
}
