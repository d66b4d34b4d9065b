package diary

import (
	"fmt"

	"github.com/xpanvictor/jassist/internal/domains/diary"
	"gorm.io/gorm"
)

type GormDiaryRepo struct {
	db *gorm.DB
}

func NewGormDiaryRepo(db *gorm.DB) diary.Repository {
	return &GormDiaryRepo{db: db}
}

// Create implements diary.Repository
func (g *GormDiaryRepo) Create(e *diary.Entry) error {
	entity := &DiaryEntity{}
	entity.FromDomain(e)
	if err := g.db.Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create diary entry: %w", err)
	}
	*e = *entity.ToDomain()
	return nil
}

// Latest implements diary.Repository
func (g *GormDiaryRepo) Latest(limit int) ([]diary.Entry, error) {
	var entities []DiaryEntity
	query := g.db.Order("entry_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list diary entries: %w", err)
	}
	out := make([]diary.Entry, len(entities))
	for i, entity := range entities {
		out[i] = *entity.ToDomain()
	}
	return out, nil
}
