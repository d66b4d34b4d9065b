package accounts

import (
	"fmt"

	"github.com/xpanvictor/jassist/internal/domains/accounts"
	"gorm.io/gorm"
)

type GormAccountsRepo struct {
	db *gorm.DB
}

func NewGormAccountsRepo(db *gorm.DB) accounts.Repository {
	return &GormAccountsRepo{db: db}
}

// Create implements accounts.Repository
func (g *GormAccountsRepo) Create(e *accounts.Entry) error {
	entity := &EntryEntity{}
	entity.FromDomain(e)
	if err := g.db.Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create accounts entry: %w", err)
	}
	*e = *entity.ToDomain()
	return nil
}

// Latest implements accounts.Repository
func (g *GormAccountsRepo) Latest(limit int) ([]accounts.Entry, error) {
	var entities []EntryEntity
	query := g.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts entries: %w", err)
	}
	out := make([]accounts.Entry, len(entities))
	for i, entity := range entities {
		out[i] = *entity.ToDomain()
	}
	return out, nil
}
