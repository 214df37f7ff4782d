package minutes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-minutes/internal/usecase/errors"
)

// createRetries is how often meeting creation is replayed after losing the
// generate-code race to a concurrent creation of the same type.
const createRetries = 2

// MinutesService handles the meeting minutes business logic
type MinutesService struct {
	repos  repositories.Set
	atomic repositories.Atomic
}

// NewMinutesService creates a new minutes service
func NewMinutesService(repos repositories.Set, atomic repositories.Atomic) *MinutesService {
	return &MinutesService{
		repos:  repos,
		atomic: atomic,
	}
}

// GenerateCode computes the next meeting code for a type. The count-then-
// format sequence is not reserved; two callers can see the same code. The
// creation workflow resolves that race against the unique index, so this
// stays a pure read.
func (s *MinutesService) GenerateCode(ctx context.Context, meetingTypeID int) (string, error) {
	if meetingTypeID <= 0 {
		return "", usecaseErrors.ErrInvalidMeetingType
	}

	count, err := s.repos.Meetings.CountByType(ctx, meetingTypeID)
	if err != nil {
		return "", fmt.Errorf("failed to count meetings for type %d: %w", meetingTypeID, err)
	}

	return formatCode(codePrefix(meetingTypeID), count+1), nil
}

// ResolvePreviousItems finds the latest status of every action item ever
// discussed under the given meeting type. The query starts from status rows,
// so items that never participated in a meeting of this type do not appear.
// Rows arrive newest meeting first; the first row per action item wins, which
// deduplicates the selection list down to one entry per item.
func (s *MinutesService) ResolvePreviousItems(ctx context.Context, meetingTypeID int) (*PreviousItems, error) {
	if meetingTypeID <= 0 {
		return nil, usecaseErrors.ErrInvalidMeetingType
	}

	statuses, err := s.repos.ItemStatuses.ListByMeetingType(ctx, meetingTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous items for type %d: %w", meetingTypeID, err)
	}

	result := &PreviousItems{Items: []ItemSelection{}}
	if len(statuses) == 0 {
		return result, nil
	}

	if statuses[0].Meeting != nil {
		date := statuses[0].Meeting.MeetingDate
		result.MostRecentMeetingDate = &date
	}

	seen := make(map[uuid.UUID]bool, len(statuses))
	for _, status := range statuses {
		if seen[status.ActionItemID] {
			continue
		}
		seen[status.ActionItemID] = true

		selection := ItemSelection{
			ActionItemID: status.ActionItemID,
			LastStatus:   status.Status,
			Selected:     false,
		}
		if status.ActionItem != nil {
			selection.Title = status.ActionItem.Title
			selection.ResponsiblePerson = status.ActionItem.ResponsiblePerson
		}
		result.Items = append(result.Items, selection)
	}

	return result, nil
}

// CreateMeeting creates a meeting and the carry-forward status rows the
// caller selected. Code generation, the meeting insert and all status inserts
// run in one transaction; if the generated code loses a race to a concurrent
// creation the whole transaction is replayed with a fresh count.
func (s *MinutesService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error) {
	if input.MeetingTypeID <= 0 {
		return nil, usecaseErrors.ErrInvalidMeetingType
	}
	if input.MeetingDate.IsZero() {
		return nil, usecaseErrors.ErrMeetingDateRequired
	}

	if _, err := s.repos.MeetingTypes.FindByID(ctx, input.MeetingTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingTypeNotFound
		}
		return nil, fmt.Errorf("failed to load meeting type %d: %w", input.MeetingTypeID, err)
	}

	selections := dedupeSelections(input.CarryForward)

	var meeting *entities.Meeting
	attempt := func() error {
		err := s.atomic.Transaction(ctx, func(repos repositories.Set) error {
			count, err := repos.Meetings.CountByType(ctx, input.MeetingTypeID)
			if err != nil {
				return fmt.Errorf("failed to count meetings: %w", err)
			}

			m := &entities.Meeting{
				MeetingTypeID: input.MeetingTypeID,
				MeetingCode:   formatCode(codePrefix(input.MeetingTypeID), count+1),
				MeetingDate:   input.MeetingDate,
			}
			if err := repos.Meetings.Create(ctx, m); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return entities.ErrMeetingCodeConflict
				}
				return fmt.Errorf("failed to create meeting: %w", err)
			}

			now := time.Now().UTC()
			for _, sel := range selections {
				status := sel.LastStatus
				if status == "" {
					status = entities.StatusOpen
				}
				row := &entities.ItemStatus{
					MeetingID:    m.ID,
					ActionItemID: sel.ActionItemID,
					Status:       status,
					Comment:      entities.CommentCarriedForward,
					UpdatedOn:    now,
				}
				if err := repos.ItemStatuses.Create(ctx, row); err != nil {
					return fmt.Errorf("failed to carry forward item %s: %w", sel.ActionItemID, err)
				}
			}

			meeting = m
			return nil
		})

		if err != nil && !errors.Is(err, entities.ErrMeetingCodeConflict) {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), createRetries), ctx)
	if err := backoff.Retry(attempt, policy); err != nil {
		return nil, err
	}

	return meeting, nil
}

// AddItem creates a standalone action item plus its initial status row under
// the given meeting, atomically. Blank title or responsible person fails
// before anything is written.
func (s *MinutesService) AddItem(ctx context.Context, input AddItemInput) (*entities.ActionItem, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, usecaseErrors.ErrTitleRequired
	}
	if strings.TrimSpace(input.ResponsiblePerson) == "" {
		return nil, usecaseErrors.ErrResponsibleRequired
	}

	if _, err := s.repos.Meetings.FindByID(ctx, input.MeetingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to load meeting %s: %w", input.MeetingID, err)
	}

	var item *entities.ActionItem
	err := s.atomic.Transaction(ctx, func(repos repositories.Set) error {
		it := &entities.ActionItem{
			Title:             strings.TrimSpace(input.Title),
			ResponsiblePerson: strings.TrimSpace(input.ResponsiblePerson),
			Description:       input.Description,
		}
		if err := repos.ActionItems.Create(ctx, it); err != nil {
			return fmt.Errorf("failed to create action item: %w", err)
		}

		row := &entities.ItemStatus{
			MeetingID:    input.MeetingID,
			ActionItemID: it.ID,
			Status:       entities.StatusOpen,
			Comment:      entities.CommentAddedInMeeting,
			UpdatedOn:    time.Now().UTC(),
		}
		if err := repos.ItemStatuses.Create(ctx, row); err != nil {
			return fmt.Errorf("failed to create initial status: %w", err)
		}

		item = it
		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateStatus overwrites status, comment and updated_on on every status row
// of the action item, across all meetings, so the item reads consistently no
// matter which meeting's page displays it. Status transition history is not
// preserved.
func (s *MinutesService) UpdateStatus(ctx context.Context, actionItemID uuid.UUID, input UpdateStatusInput) (int64, error) {
	if strings.TrimSpace(input.Status) == "" {
		return 0, usecaseErrors.ErrStatusRequired
	}

	var updated int64
	err := s.atomic.Transaction(ctx, func(repos repositories.Set) error {
		count, err := repos.ItemStatuses.UpdateByActionItem(ctx, actionItemID, repositories.StatusPatch{
			Status:  strings.TrimSpace(input.Status),
			Comment: input.Comment,
		})
		if err != nil {
			return fmt.Errorf("failed to update statuses for item %s: %w", actionItemID, err)
		}
		if count == 0 {
			return entities.ErrActionItemNotFound
		}
		updated = count
		return nil
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}

// GetMeeting retrieves a meeting with its type and item statuses
func (s *MinutesService) GetMeeting(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.repos.Meetings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting %s: %w", id, err)
	}
	return meeting, nil
}

// ListMeetings retrieves meetings newest-first, optionally filtered by type
func (s *MinutesService) ListMeetings(ctx context.Context, meetingTypeID *int) ([]*entities.Meeting, error) {
	filters := repositories.MeetingFilters{}
	if meetingTypeID != nil && *meetingTypeID > 0 {
		filters.MeetingTypeID = meetingTypeID
	}

	meetings, err := s.repos.Meetings.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// ListMeetingTypes retrieves the meeting type reference data
func (s *MinutesService) ListMeetingTypes(ctx context.Context) ([]*entities.MeetingType, error) {
	types, err := s.repos.MeetingTypes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meeting types: %w", err)
	}
	return types, nil
}

// GetItemStatus retrieves one status row with its action item
func (s *MinutesService) GetItemStatus(ctx context.Context, id uuid.UUID) (*entities.ItemStatus, error) {
	status, err := s.repos.ItemStatuses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrItemStatusNotFound
		}
		return nil, fmt.Errorf("failed to get status %s: %w", id, err)
	}
	return status, nil
}

// dedupeSelections drops repeated action item ids from the caller's carry
// forward selection, keeping the first occurrence. The unique index on
// (meeting_id, action_item_id) would reject duplicates anyway; deduping here
// keeps a sloppy client from failing the whole creation.
func dedupeSelections(selections []CarryForwardSelection) []CarryForwardSelection {
	if len(selections) < 2 {
		return selections
	}

	seen := make(map[uuid.UUID]bool, len(selections))
	out := selections[:0]
	for _, sel := range selections {
		if seen[sel.ActionItemID] {
			continue
		}
		seen[sel.ActionItemID] = true
		out = append(out, sel)
	}
	return out
}
