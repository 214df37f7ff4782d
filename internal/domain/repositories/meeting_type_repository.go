package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
)

// MeetingTypeRepository defines the interface for meeting type reference data
type MeetingTypeRepository interface {
	// List retrieves all meeting types ordered by id
	List(ctx context.Context) ([]*entities.MeetingType, error)

	// FindByID retrieves a meeting type by its id
	FindByID(ctx context.Context, id int) (*entities.MeetingType, error)
}
