package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create persists a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a meeting with its type, statuses and their items
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Preload("MeetingType").
		Preload("ItemStatuses", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_statuses.updated_on DESC")
		}).
		Preload("ItemStatuses.ActionItem").
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// List retrieves meetings newest-first with optional filters
func (r *meetingRepository) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting

	query := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Preload("MeetingType").
		Order("meeting_date DESC")

	if filters.MeetingTypeID != nil {
		query = query.Where("meeting_type_id = ?", *filters.MeetingTypeID)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&meetings).Error
	return meetings, err
}

// CountByType counts meetings of the given type
func (r *meetingRepository) CountByType(ctx context.Context, meetingTypeID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("meeting_type_id = ?", meetingTypeID).
		Count(&count).Error
	return count, err
}
