package todo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xpanvictor/jassist/internal/domains/transcription"
	"github.com/xpanvictor/jassist/pkg/Logger"
)

const destinationTable = "to_do"

type Service interface {
	Handle(ctx context.Context, text string, sourceID *uuid.UUID) error
	Pending(ctx context.Context, limit int) ([]Task, error)
}

type todoService struct {
	repository     Repository
	transcriptions transcription.Service
	logger         *Logger.Logger
	now            func() time.Time
}

func NewService(repository Repository, transcriptions transcription.Service, logger *Logger.Logger) Service {
	return &todoService{
		repository:     repository,
		transcriptions: transcriptions,
		logger:         logger,
		now:            time.Now,
	}
}

// Handle stores the text as a pending task, with due date and priority
// picked out of the phrasing where possible.
func (s *todoService) Handle(ctx context.Context, text string, sourceID *uuid.UUID) error {
	task := &Task{
		Task:                  text,
		DueDate:               extractDueDate(text, s.now()),
		Priority:              extractPriority(text),
		Status:                StatusPending,
		SourceTranscriptionID: sourceID,
	}

	if err := s.repository.Create(task); err != nil {
		return fmt.Errorf("failed to save to-do entry: %w", err)
	}
	s.logger.Infof("to-do entry saved with ID: %s (priority=%s)", task.ID, task.Priority)

	if sourceID != nil {
		if err := s.transcriptions.MarkProcessed(ctx, *sourceID, destinationTable, task.ID); err != nil {
			s.logger.Warnf("could not mark transcription %s processed: %v", sourceID, err)
		}
	}
	return nil
}

func (s *todoService) Pending(ctx context.Context, limit int) ([]Task, error) {
	return s.repository.Pending(limit)
}
