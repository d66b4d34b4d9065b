package entities

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xpanvictor/jassist/internal/domains/transcription"
	"github.com/xpanvictor/jassist/pkg/Logger"
	"github.com/xpanvictor/jassist/pkg/assistant"
	"github.com/xpanvictor/jassist/pkg/jsonx"
)

const destinationTable = "entities"

const extractPrompt = "You identify the single most important named entity " +
	"in a spoken note: a project, place, organization, product or topic. " +
	"Reply with JSON only, in this shape:\n" +
	`{"name": "...", "type": "...", "context": "...", "relevance_score": 0.0}` + "\n" +
	"relevance_score is between 0 and 1. context is one sentence on why the " +
	"entity matters in this note."

type entityPayload struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Context        string  `json:"context"`
	RelevanceScore float64 `json:"relevance_score"`
}

const defaultRelevance = 0.5

type Service interface {
	Handle(ctx context.Context, text string, sourceID *uuid.UUID) error
	ByName(ctx context.Context, name string, limit int) ([]Entity, error)
}

type entitiesService struct {
	repository     Repository
	transcriptions transcription.Service
	extractor      assistant.Assistant
	logger         *Logger.Logger
}

func NewService(repository Repository, transcriptions transcription.Service, extractor assistant.Assistant, logger *Logger.Logger) Service {
	return &entitiesService{
		repository:     repository,
		transcriptions: transcriptions,
		extractor:      extractor,
		logger:         logger,
	}
}

// Handle extracts the note's main entity and stores it. Unlike contacts,
// a missing name is a hard failure: an entity row without a name is
// useless for later lookup.
func (s *entitiesService) Handle(ctx context.Context, text string, sourceID *uuid.UUID) error {
	reply, err := assistant.Ask(ctx, s.extractor, extractPrompt, text)
	if err != nil {
		return fmt.Errorf("entity extraction failed: %w", err)
	}

	var payload entityPayload
	if err := jsonx.Extract(reply, &payload); err != nil {
		return fmt.Errorf("entity extraction reply had no JSON: %w", err)
	}
	if payload.Name == "" {
		return fmt.Errorf("entity extraction returned no name")
	}

	score := payload.RelevanceScore
	if score <= 0 {
		score = defaultRelevance
	} else if score > 1 {
		score = 1
	}

	entity := &Entity{
		Name:                  payload.Name,
		Type:                  payload.Type,
		Context:               payload.Context,
		RelevanceScore:        score,
		SourceTranscriptionID: sourceID,
	}

	if err := s.repository.Create(entity); err != nil {
		return fmt.Errorf("failed to save entity: %w", err)
	}
	s.logger.Infof("entity saved with ID: %s (%s)", entity.ID, entity.Name)

	if sourceID != nil {
		if err := s.transcriptions.MarkProcessed(ctx, *sourceID, destinationTable, entity.ID); err != nil {
			s.logger.Warnf("could not mark transcription %s processed: %v", sourceID, err)
		}
	}
	return nil
}

func (s *entitiesService) ByName(ctx context.Context, name string, limit int) ([]Entity, error) {
	return s.repository.ByName(name, limit)
}
