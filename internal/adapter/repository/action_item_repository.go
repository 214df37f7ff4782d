package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/internal/domain/repositories"
)

// actionItemRepository implements the ActionItemRepository interface
type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) repositories.ActionItemRepository {
	return &actionItemRepository{db: db}
}

// Create persists a new action item
func (r *actionItemRepository) Create(ctx context.Context, item *entities.ActionItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByID retrieves an action item by its ID
func (r *actionItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	var item entities.ActionItem
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&item).Error

	if err != nil {
		return nil, err
	}
	return &item, nil
}
