package entities

import (
	"fmt"

	"github.com/xpanvictor/jassist/internal/domains/entities"
	"gorm.io/gorm"
)

type GormEntitiesRepo struct {
	db *gorm.DB
}

func NewGormEntitiesRepo(db *gorm.DB) entities.Repository {
	return &GormEntitiesRepo{db: db}
}

// Create implements entities.Repository
func (g *GormEntitiesRepo) Create(e *entities.Entity) error {
	entity := &EntityEntity{}
	entity.FromDomain(e)
	if err := g.db.Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create entity: %w", err)
	}
	*e = *entity.ToDomain()
	return nil
}

// ByName implements entities.Repository
func (g *GormEntitiesRepo) ByName(name string, limit int) ([]entities.Entity, error) {
	var rows []EntityEntity
	q := g.db.Where("name LIKE ?", "%"+name+"%").
		Order("relevance_score DESC, created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to look up entities: %w", err)
	}
	out := make([]entities.Entity, len(rows))
	for i, row := range rows {
		out[i] = *row.ToDomain()
	}
	return out, nil
}
