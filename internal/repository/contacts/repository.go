package contacts

import (
	"fmt"

	"github.com/xpanvictor/jassist/internal/domains/contacts"
	"gorm.io/gorm"
)

type GormContactsRepo struct {
	db *gorm.DB
}

func NewGormContactsRepo(db *gorm.DB) contacts.Repository {
	return &GormContactsRepo{db: db}
}

// Create implements contacts.Repository
func (g *GormContactsRepo) Create(c *contacts.Contact) error {
	entity := &ContactEntity{}
	entity.FromDomain(c)
	if err := g.db.Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	*c = *entity.ToDomain()
	return nil
}

// Search implements contacts.Repository
func (g *GormContactsRepo) Search(query string, limit int) ([]contacts.Contact, error) {
	var entities []ContactEntity
	pattern := "%" + query + "%"
	q := g.db.Where(
		"first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR note LIKE ?",
		pattern, pattern, pattern, pattern,
	).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}
	out := make([]contacts.Contact, len(entities))
	for i, entity := range entities {
		out[i] = *entity.ToDomain()
	}
	return out, nil
}
