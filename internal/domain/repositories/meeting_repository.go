package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create persists a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting with its type, statuses and their items
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// List retrieves meetings newest-first with optional filters
	List(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, error)

	// CountByType counts meetings of the given type
	CountByType(ctx context.Context, meetingTypeID int) (int64, error)
}

// MeetingFilters represents filter options for listing meetings
type MeetingFilters struct {
	MeetingTypeID *int
	Limit         int
	Offset        int
}
