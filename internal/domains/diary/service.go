package diary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xpanvictor/jassist/internal/domains/transcription"
	"github.com/xpanvictor/jassist/pkg/Logger"
	"github.com/xpanvictor/jassist/pkg/assistant"
	"github.com/xpanvictor/jassist/pkg/jsonx"
)

const destinationTable = "diary"

const moodPrompt = "You annotate personal diary entries. " +
	"Given an entry, reply with JSON only: " +
	`{"mood": "one or two words describing the mood", "tags": ["up to five short topic tags"]}`

type Service interface {
	Handle(ctx context.Context, text string, sourceID *uuid.UUID) error
	Latest(ctx context.Context, limit int) ([]Entry, error)
}

type diaryService struct {
	repository     Repository
	transcriptions transcription.Service
	annotator      assistant.Assistant
	logger         *Logger.Logger
}

// NewService builds the diary handler. annotator may be nil, in which case
// entries are stored without mood/tags.
func NewService(repository Repository, transcriptions transcription.Service, annotator assistant.Assistant, logger *Logger.Logger) Service {
	return &diaryService{
		repository:     repository,
		transcriptions: transcriptions,
		annotator:      annotator,
		logger:         logger,
	}
}

// Handle saves the entry text as a diary record. Mood and tag annotation is
// best effort: an unreachable or confused model must never lose an entry.
func (s *diaryService) Handle(ctx context.Context, text string, sourceID *uuid.UUID) error {
	entry := &Entry{
		Content:               text,
		EntryDate:             time.Now(),
		SourceTranscriptionID: sourceID,
	}

	if s.annotator != nil {
		var annotation struct {
			Mood string   `json:"mood"`
			Tags []string `json:"tags"`
		}
		reply, err := assistant.Ask(ctx, s.annotator, moodPrompt, text)
		if err != nil {
			s.logger.Warnf("diary annotation failed: %v", err)
		} else if err := jsonx.Extract(reply, &annotation); err != nil {
			s.logger.Warnf("diary annotation reply had no JSON: %v", err)
		} else {
			entry.Mood = annotation.Mood
			entry.Tags = annotation.Tags
		}
	}

	if err := s.repository.Create(entry); err != nil {
		return fmt.Errorf("failed to save diary entry: %w", err)
	}
	s.logger.Infof("diary entry saved with ID: %s", entry.ID)

	if sourceID != nil {
		if err := s.transcriptions.MarkProcessed(ctx, *sourceID, destinationTable, entry.ID); err != nil {
			s.logger.Warnf("could not mark transcription %s processed: %v", sourceID, err)
		}
	}
	return nil
}

func (s *diaryService) Latest(ctx context.Context, limit int) ([]Entry, error) {
	return s.repository.Latest(limit)
}
