package todo

import (
	"fmt"

	"github.com/xpanvictor/jassist/internal/domains/todo"
	"gorm.io/gorm"
)

type GormTodoRepo struct {
	db *gorm.DB
}

func NewGormTodoRepo(db *gorm.DB) todo.Repository {
	return &GormTodoRepo{db: db}
}

// Create implements todo.Repository
func (g *GormTodoRepo) Create(t *todo.Task) error {
	entity := &TaskEntity{}
	entity.FromDomain(t)
	if err := g.db.Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create to-do entry: %w", err)
	}
	*t = *entity.ToDomain()
	return nil
}

// Pending implements todo.Repository
func (g *GormTodoRepo) Pending(limit int) ([]todo.Task, error) {
	var entities []TaskEntity
	query := g.db.Where("status = ?", todo.StatusPending).Order("due_date IS NULL, due_date ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending tasks: %w", err)
	}
	out := make([]todo.Task, len(entities))
	for i, entity := range entities {
		out[i] = *entity.ToDomain()
	}
	return out, nil
}
