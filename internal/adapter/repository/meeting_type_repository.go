package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/internal/domain/repositories"
)

// meetingTypeRepository implements the MeetingTypeRepository interface
type meetingTypeRepository struct {
	db *gorm.DB
}

// NewMeetingTypeRepository creates a new meeting type repository
func NewMeetingTypeRepository(db *gorm.DB) repositories.MeetingTypeRepository {
	return &meetingTypeRepository{db: db}
}

// List retrieves all meeting types ordered by id
func (r *meetingTypeRepository) List(ctx context.Context) ([]*entities.MeetingType, error) {
	var types []*entities.MeetingType
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&types).Error
	return types, err
}

// FindByID retrieves a meeting type by its id
func (r *meetingTypeRepository) FindByID(ctx context.Context, id int) (*entities.MeetingType, error) {
	var mt entities.MeetingType
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&mt).Error

	if err != nil {
		return nil, err
	}
	return &mt, nil
}
