package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
)

// ItemStatusRepository defines the interface for item status data access
type ItemStatusRepository interface {
	// Create persists a new status row
	Create(ctx context.Context, status *entities.ItemStatus) error

	// FindByID retrieves a status row with its action item and meeting
	FindByID(ctx context.Context, id uuid.UUID) (*entities.ItemStatus, error)

	// ListByMeetingType retrieves every status row whose owning meeting has
	// the given type, ordered by the owning meeting's date descending. The
	// query deliberately starts from status rows so action items that never
	// participated in a meeting of this type do not appear.
	ListByMeetingType(ctx context.Context, meetingTypeID int) ([]*entities.ItemStatus, error)

	// ListByActionItem retrieves every status row of one action item across
	// all meetings, newest meeting first
	ListByActionItem(ctx context.Context, actionItemID uuid.UUID) ([]*entities.ItemStatus, error)

	// UpdateByActionItem overwrites status, comment and updated_on on every
	// status row of the action item and reports how many rows changed
	UpdateByActionItem(ctx context.Context, actionItemID uuid.UUID, patch StatusPatch) (int64, error)
}

// StatusPatch is the set of fields the propagation workflow overwrites
type StatusPatch struct {
	Status  string
	Comment string
}
