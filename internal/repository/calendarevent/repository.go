package calendarevent

import (
	"fmt"
	"time"

	"github.com/xpanvictor/jassist/internal/domains/calendar"
	"gorm.io/gorm"
)

type GormCalendarRepo struct {
	db *gorm.DB
}

func NewGormCalendarRepo(db *gorm.DB) calendar.Repository {
	return &GormCalendarRepo{db: db}
}

// Create implements calendar.Repository
func (g *GormCalendarRepo) Create(e *calendar.Event) error {
	entity := &EventEntity{}
	entity.FromDomain(e)
	if err := g.db.Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create calendar event: %w", err)
	}
	*e = *entity.ToDomain()
	return nil
}

// Upcoming implements calendar.Repository. Start times are stored as
// RFC3339 strings, which order correctly as text.
func (g *GormCalendarRepo) Upcoming(from time.Time, limit int) ([]calendar.Event, error) {
	var entities []EventEntity
	query := g.db.Where("start_datetime >= ?", from.Format(time.RFC3339)).
		Order("start_datetime ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	out := make([]calendar.Event, len(entities))
	for i, entity := range entities {
		out[i] = *entity.ToDomain()
	}
	return out, nil
}
