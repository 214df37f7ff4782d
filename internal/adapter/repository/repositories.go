package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-minutes/internal/domain/repositories"
)

// NewSet builds a repository set bound to the given gorm handle. The same
// constructor serves both the request scope (plain *gorm.DB) and the
// transaction scope (the *gorm.DB passed into a transaction callback).
func NewSet(db *gorm.DB) repositories.Set {
	return repositories.Set{
		MeetingTypes: NewMeetingTypeRepository(db),
		Meetings:     NewMeetingRepository(db),
		ActionItems:  NewActionItemRepository(db),
		ItemStatuses: NewItemStatusRepository(db),
	}
}

// atomic implements repositories.Atomic on gorm's native transaction scope
type atomic struct {
	db *gorm.DB
}

// NewAtomic creates a transaction manager for the given database
func NewAtomic(db *gorm.DB) repositories.Atomic {
	return &atomic{db: db}
}

// Transaction runs fn against transaction-bound repositories, committing on a
// nil return and rolling back on error or panic.
func (a *atomic) Transaction(ctx context.Context, fn func(repos repositories.Set) error) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewSet(tx))
	})
}
