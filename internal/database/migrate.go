package database

import (
	"github.com/xpanvictor/jassist/internal/repository/accounts"
	"github.com/xpanvictor/jassist/internal/repository/calendarevent"
	"github.com/xpanvictor/jassist/internal/repository/contacts"
	"github.com/xpanvictor/jassist/internal/repository/diary"
	"github.com/xpanvictor/jassist/internal/repository/entities"
	"github.com/xpanvictor/jassist/internal/repository/todo"
	"github.com/xpanvictor/jassist/internal/repository/transcription"
	"gorm.io/gorm"
)

func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&transcription.TranscriptionEntity{},
		&diary.DiaryEntity{},
		&todo.TaskEntity{},
		&calendarevent.EventEntity{},
		&accounts.EntryEntity{},
		&contacts.ContactEntity{},
		&entities.EntityEntity{},
	)
}
