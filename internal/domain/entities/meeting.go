package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meeting represents one held meeting of a given type. Created once by the
// meeting creation workflow and immutable afterwards.
//
// MeetingCode is unique per type and monotonically increasing within that
// type; the composite unique index backs the conflict-retry in the creation
// workflow.
type Meeting struct {
	ID            uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	MeetingTypeID int          `gorm:"not null;index;uniqueIndex:idx_meetings_type_code" json:"meeting_type_id"`
	MeetingType   *MeetingType `gorm:"foreignKey:MeetingTypeID" json:"meeting_type,omitempty"`
	MeetingCode   string       `gorm:"type:varchar(20);not null;uniqueIndex:idx_meetings_type_code" json:"meeting_code"`
	MeetingDate   time.Time    `gorm:"not null;index" json:"meeting_date"`
	ItemStatuses  []ItemStatus `gorm:"foreignKey:MeetingID" json:"item_statuses,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// BeforeCreate assigns the primary key app-side so behavior is identical
// across postgres and the sqlite test databases.
func (m *Meeting) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
