package minutes

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
)

// Service defines the interface for the meeting minutes use cases
type Service interface {
	// GenerateCode computes the next meeting code for a type without
	// reserving it. Read-only; uniqueness is enforced at creation time.
	GenerateCode(ctx context.Context, meetingTypeID int) (string, error)

	// ResolvePreviousItems finds the carry-forward candidates for a new
	// meeting of the given type
	ResolvePreviousItems(ctx context.Context, meetingTypeID int) (*PreviousItems, error)

	// CreateMeeting creates a meeting together with the carried-forward
	// status rows the caller selected, atomically
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error)

	// AddItem creates a standalone action item and its initial "Open"
	// status row under the given meeting
	AddItem(ctx context.Context, input AddItemInput) (*entities.ActionItem, error)

	// UpdateStatus overwrites the status of an action item on every meeting
	// that references it and returns the number of rows updated
	UpdateStatus(ctx context.Context, actionItemID uuid.UUID, input UpdateStatusInput) (int64, error)

	// GetMeeting retrieves a meeting with its type and item statuses
	GetMeeting(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// ListMeetings retrieves meetings newest-first, optionally filtered by type
	ListMeetings(ctx context.Context, meetingTypeID *int) ([]*entities.Meeting, error)

	// ListMeetingTypes retrieves the meeting type reference data
	ListMeetingTypes(ctx context.Context) ([]*entities.MeetingType, error)

	// GetItemStatus retrieves one status row with its action item
	GetItemStatus(ctx context.Context, id uuid.UUID) (*entities.ItemStatus, error)
}

// ItemSelection is one carry-forward candidate offered to the user
type ItemSelection struct {
	ActionItemID      uuid.UUID
	Title             string
	ResponsiblePerson string
	LastStatus        string
	Selected          bool
}

// PreviousItems is the carry-forward resolver output. Items is empty (not an
// error) when no meeting of the type was ever held; MostRecentMeetingDate is
// nil in that case.
type PreviousItems struct {
	Items                 []ItemSelection
	MostRecentMeetingDate *time.Time
}

// CarryForwardSelection identifies one item the user chose to carry forward
type CarryForwardSelection struct {
	ActionItemID uuid.UUID
	LastStatus   string
}

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	MeetingTypeID int
	MeetingDate   time.Time
	CarryForward  []CarryForwardSelection
}

// AddItemInput represents input for adding a standalone action item
type AddItemInput struct {
	MeetingID         uuid.UUID
	Title             string
	ResponsiblePerson string
	Description       string
}

// UpdateStatusInput represents the fields the propagation workflow overwrites
type UpdateStatusInput struct {
	Status  string
	Comment string
}

// Ensure MinutesService implements Service interface
var _ Service = (*MinutesService)(nil)
