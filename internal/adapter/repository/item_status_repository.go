package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/internal/domain/repositories"
)

// itemStatusRepository implements the ItemStatusRepository interface
type itemStatusRepository struct {
	db *gorm.DB
}

// NewItemStatusRepository creates a new item status repository
func NewItemStatusRepository(db *gorm.DB) repositories.ItemStatusRepository {
	return &itemStatusRepository{db: db}
}

// Create persists a new status row
func (r *itemStatusRepository) Create(ctx context.Context, status *entities.ItemStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

// FindByID retrieves a status row with its action item and meeting
func (r *itemStatusRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.ItemStatus, error) {
	var status entities.ItemStatus
	err := r.db.WithContext(ctx).
		Preload("ActionItem").
		Preload("Meeting").
		Where("id = ?", id).
		First(&status).Error

	if err != nil {
		return nil, err
	}
	return &status, nil
}

// ListByMeetingType retrieves every status row whose owning meeting has the
// given type, ordered by the owning meeting's date descending
func (r *itemStatusRepository) ListByMeetingType(ctx context.Context, meetingTypeID int) ([]*entities.ItemStatus, error) {
	var statuses []*entities.ItemStatus
	err := r.db.WithContext(ctx).
		Joins("JOIN meetings ON meetings.id = item_statuses.meeting_id").
		Where("meetings.meeting_type_id = ?", meetingTypeID).
		Order("meetings.meeting_date DESC").
		Preload("Meeting").
		Preload("ActionItem").
		Find(&statuses).Error
	return statuses, err
}

// ListByActionItem retrieves every status row of one action item across all
// meetings, newest meeting first
func (r *itemStatusRepository) ListByActionItem(ctx context.Context, actionItemID uuid.UUID) ([]*entities.ItemStatus, error) {
	var statuses []*entities.ItemStatus
	err := r.db.WithContext(ctx).
		Joins("JOIN meetings ON meetings.id = item_statuses.meeting_id").
		Where("item_statuses.action_item_id = ?", actionItemID).
		Order("meetings.meeting_date DESC").
		Preload("Meeting").
		Find(&statuses).Error
	return statuses, err
}

// UpdateByActionItem overwrites status, comment and updated_on on every status
// row of the action item and reports how many rows changed
func (r *itemStatusRepository) UpdateByActionItem(ctx context.Context, actionItemID uuid.UUID, patch repositories.StatusPatch) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.ItemStatus{}).
		Where("action_item_id = ?", actionItemID).
		Updates(map[string]interface{}{
			"status":     patch.Status,
			"comment":    patch.Comment,
			"updated_on": time.Now().UTC(),
		})
	return result.RowsAffected, result.Error
}
