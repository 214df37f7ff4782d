package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
)

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	// Create persists a new action item
	Create(ctx context.Context, item *entities.ActionItem) error

	// FindByID retrieves an action item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error)
}
