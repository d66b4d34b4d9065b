package transcription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xpanvictor/jassist/pkg/Logger"
)

var ErrTranscriptionNotFound = errors.New("transcription not found")

// Service is the persistence gateway the rest of the pipeline talks to.
type Service interface {
	Save(ctx context.Context, req SaveRequest) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*Transcription, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, destinationTable string, destinationID uuid.UUID) error
	Latest(ctx context.Context, limit int) ([]Transcription, error)
	Search(ctx context.Context, query string, limit int) ([]Transcription, error)
	ByDateRange(ctx context.Context, from, to time.Time) ([]Transcription, error)
	Unprocessed(ctx context.Context, limit int) ([]Transcription, error)
}

type transcriptionService struct {
	repository Repository
	logger     *Logger.Logger
}

func NewService(repository Repository, logger *Logger.Logger) Service {
	return &transcriptionService{
		repository: repository,
		logger:     logger,
	}
}

func (s *transcriptionService) Save(ctx context.Context, req SaveRequest) (uuid.UUID, error) {
	if req.Content == "" {
		return uuid.Nil, errors.New("transcription content is empty")
	}

	t := &Transcription{
		Content:         req.Content,
		Filename:        req.Filename,
		AudioPath:       req.AudioPath,
		DurationSeconds: req.DurationSeconds,
		ModelUsed:       req.ModelUsed,
		TranscribedAt:   time.Now(),
		Tag:             req.Tag,
	}
	if err := s.repository.Create(t); err != nil {
		s.logger.Errorf("error saving transcription: %v", err)
		return uuid.Nil, fmt.Errorf("failed to save transcription: %w", err)
	}

	s.logger.Infof("transcription saved with ID: %s", t.ID)
	return t.ID, nil
}

func (s *transcriptionService) Get(ctx context.Context, id uuid.UUID) (*Transcription, error) {
	return s.repository.GetByID(id)
}

func (s *transcriptionService) MarkProcessed(ctx context.Context, id uuid.UUID, destinationTable string, destinationID uuid.UUID) error {
	if err := s.repository.MarkProcessed(id, destinationTable, destinationID); err != nil {
		s.logger.Errorf("error marking transcription %s processed: %v", id, err)
		return fmt.Errorf("failed to mark transcription processed: %w", err)
	}
	s.logger.Infof("transcription %s marked processed, destination %s/%s", id, destinationTable, destinationID)
	return nil
}

func (s *transcriptionService) Latest(ctx context.Context, limit int) ([]Transcription, error) {
	return s.repository.Latest(limit)
}

func (s *transcriptionService) Search(ctx context.Context, query string, limit int) ([]Transcription, error) {
	return s.repository.Search(query, limit)
}

func (s *transcriptionService) ByDateRange(ctx context.Context, from, to time.Time) ([]Transcription, error) {
	return s.repository.ByDateRange(from, to)
}

func (s *transcriptionService) Unprocessed(ctx context.Context, limit int) ([]Transcription, error) {
	return s.repository.Unprocessed(limit)
}
