package accounts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xpanvictor/jassist/internal/domains/transcription"
	"github.com/xpanvictor/jassist/pkg/Logger"
)

const destinationTable = "accounts"

type Service interface {
	Handle(ctx context.Context, text string, sourceID *uuid.UUID) error
	Latest(ctx context.Context, limit int) ([]Entry, error)
}

type accountsService struct {
	repository     Repository
	transcriptions transcription.Service
	logger         *Logger.Logger
	now            func() time.Time
}

func NewService(repository Repository, transcriptions transcription.Service, logger *Logger.Logger) Service {
	return &accountsService{
		repository:     repository,
		transcriptions: transcriptions,
		logger:         logger,
		now:            time.Now,
	}
}

// Handle records a financial entry. A note without any detectable amount
// is rejected; everything else defaults sensibly (expense, EUR, no date).
func (s *accountsService) Handle(ctx context.Context, text string, sourceID *uuid.UUID) error {
	amount, currency, found := extractAmountAndCurrency(text)
	if !found {
		return fmt.Errorf("could not extract amount from text")
	}

	entry := &Entry{
		EntryType:             detectEntryType(text),
		Amount:                amount,
		Currency:              currency,
		Note:                  text,
		Date:                  extractDate(text, s.now()),
		SourceTranscriptionID: sourceID,
	}

	if err := s.repository.Create(entry); err != nil {
		return fmt.Errorf("failed to save accounts entry: %w", err)
	}
	s.logger.Infof("accounts entry saved with ID: %s (%s %.2f %s)", entry.ID, entry.EntryType, entry.Amount, entry.Currency)

	if sourceID != nil {
		if err := s.transcriptions.MarkProcessed(ctx, *sourceID, destinationTable, entry.ID); err != nil {
			s.logger.Warnf("could not mark transcription %s processed: %v", sourceID, err)
		}
	}
	return nil
}

func (s *accountsService) Latest(ctx context.Context, limit int) ([]Entry, error) {
	return s.repository.Latest(limit)
}
