package contacts

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xpanvictor/jassist/internal/domains/transcription"
	"github.com/xpanvictor/jassist/pkg/Logger"
	"github.com/xpanvictor/jassist/pkg/assistant"
	"github.com/xpanvictor/jassist/pkg/jsonx"
)

const destinationTable = "contacts"

const extractPrompt = "You pull contact details out of a spoken note. " +
	"Reply with JSON only, in this shape:\n" +
	`{"first_name": "...", "last_name": "...", "phone": "...", "email": "...", "note": "..."}` + "\n" +
	"Use empty strings for fields the note does not mention. Put anything " +
	"worth remembering about the person into note."

type contactPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Note      string `json:"note"`
}

type Service interface {
	Handle(ctx context.Context, text string, sourceID *uuid.UUID) error
	Search(ctx context.Context, query string, limit int) ([]Contact, error)
}

type contactsService struct {
	repository     Repository
	transcriptions transcription.Service
	extractor      assistant.Assistant
	logger         *Logger.Logger
}

func NewService(repository Repository, transcriptions transcription.Service, extractor assistant.Assistant, logger *Logger.Logger) Service {
	return &contactsService{
		repository:     repository,
		transcriptions: transcriptions,
		extractor:      extractor,
		logger:         logger,
	}
}

// Handle extracts contact fields from the text and stores the contact.
// A note with no recognizable name still gets saved; the raw text goes
// into the note column so nothing is lost.
func (s *contactsService) Handle(ctx context.Context, text string, sourceID *uuid.UUID) error {
	contact := &Contact{
		Note:                  text,
		SourceTranscriptionID: sourceID,
	}

	reply, err := assistant.Ask(ctx, s.extractor, extractPrompt, text)
	if err != nil {
		s.logger.Warnf("contact extraction failed, saving raw note: %v", err)
	} else {
		var payload contactPayload
		if err := jsonx.Extract(reply, &payload); err != nil {
			s.logger.Warnf("contact extraction reply had no JSON, saving raw note: %v", err)
		} else {
			contact.FirstName = payload.FirstName
			contact.LastName = payload.LastName
			contact.Phone = payload.Phone
			contact.Email = payload.Email
			if payload.Note != "" {
				contact.Note = payload.Note
			}
		}
	}

	if err := s.repository.Create(contact); err != nil {
		return fmt.Errorf("failed to save contact: %w", err)
	}
	s.logger.Infof("contact saved with ID: %s", contact.ID)

	if sourceID != nil {
		if err := s.transcriptions.MarkProcessed(ctx, *sourceID, destinationTable, contact.ID); err != nil {
			s.logger.Warnf("could not mark transcription %s processed: %v", sourceID, err)
		}
	}
	return nil
}

func (s *contactsService) Search(ctx context.Context, query string, limit int) ([]Contact, error) {
	return s.repository.Search(query, limit)
}
