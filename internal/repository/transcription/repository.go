package transcription

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xpanvictor/jassist/internal/domains/transcription"
	"gorm.io/gorm"
)

type GormTranscriptionRepo struct {
	db *gorm.DB
}

func NewGormTranscriptionRepo(db *gorm.DB) transcription.Repository {
	return &GormTranscriptionRepo{db: db}
}

// Create implements transcription.Repository
func (g *GormTranscriptionRepo) Create(t *transcription.Transcription) error {
	entity := &TranscriptionEntity{}
	entity.FromDomain(t)
	if err := g.db.Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create transcription: %w", err)
	}
	*t = *entity.ToDomain()
	return nil
}

// GetByID implements transcription.Repository
func (g *GormTranscriptionRepo) GetByID(id uuid.UUID) (*transcription.Transcription, error) {
	var entity TranscriptionEntity
	if err := g.db.Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, transcription.ErrTranscriptionNotFound
		}
		return nil, fmt.Errorf("failed to get transcription by ID: %w", err)
	}
	return entity.ToDomain(), nil
}

// MarkProcessed implements transcription.Repository
func (g *GormTranscriptionRepo) MarkProcessed(id uuid.UUID, destinationTable string, destinationID uuid.UUID) error {
	result := g.db.Model(&TranscriptionEntity{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_processed":      true,
		"destination_table": destinationTable,
		"destination_id":    destinationID,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to mark transcription processed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return transcription.ErrTranscriptionNotFound
	}
	return nil
}

// Latest implements transcription.Repository
func (g *GormTranscriptionRepo) Latest(limit int) ([]transcription.Transcription, error) {
	var entities []TranscriptionEntity
	query := g.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list transcriptions: %w", err)
	}
	return toDomainSlice(entities), nil
}

// Search implements transcription.Repository
func (g *GormTranscriptionRepo) Search(query string, limit int) ([]transcription.Transcription, error) {
	var entities []TranscriptionEntity
	q := g.db.Where("content LIKE ? OR tag LIKE ? OR filename LIKE ?",
		"%"+query+"%", "%"+query+"%", "%"+query+"%").Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to search transcriptions: %w", err)
	}
	return toDomainSlice(entities), nil
}

// ByDateRange implements transcription.Repository
func (g *GormTranscriptionRepo) ByDateRange(from, to time.Time) ([]transcription.Transcription, error) {
	var entities []TranscriptionEntity
	if err := g.db.Where("created_at BETWEEN ? AND ?", from, to).
		Order("created_at DESC").Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list transcriptions by date range: %w", err)
	}
	return toDomainSlice(entities), nil
}

// Unprocessed implements transcription.Repository
func (g *GormTranscriptionRepo) Unprocessed(limit int) ([]transcription.Transcription, error) {
	var entities []TranscriptionEntity
	query := g.db.Where("is_processed = ?", false).Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list unprocessed transcriptions: %w", err)
	}
	return toDomainSlice(entities), nil
}

func toDomainSlice(entities []TranscriptionEntity) []transcription.Transcription {
	out := make([]transcription.Transcription, len(entities))
	for i, entity := range entities {
		out[i] = *entity.ToDomain()
	}
	return out
}
