package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusOpen is the status a freshly added action item starts in. The status
// column itself is free text; no closed set is enforced.
const StatusOpen = "Open"

// Comments written by the workflows when they create status rows.
const (
	CommentCarriedForward = "Carried forward from previous meeting"
	CommentAddedInMeeting = "Added in this meeting"
)

// ItemStatus records the state of one action item as captured at one meeting.
// An action item has at most one status row per meeting (composite unique
// index). The item's "current status" is a derived view, namely its status
// row under the most recent meeting, never a stored field.
type ItemStatus struct {
	ID           uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	MeetingID    uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_item_statuses_meeting_item" json:"meeting_id"`
	Meeting      *Meeting    `gorm:"foreignKey:MeetingID" json:"meeting,omitempty"`
	ActionItemID uuid.UUID   `gorm:"type:uuid;not null;index;uniqueIndex:idx_item_statuses_meeting_item" json:"action_item_id"`
	ActionItem   *ActionItem `gorm:"foreignKey:ActionItemID" json:"action_item,omitempty"`
	Status       string      `gorm:"type:varchar(50);not null" json:"status"`
	Comment      string      `gorm:"type:text" json:"comment"`
	UpdatedOn    time.Time   `gorm:"not null" json:"updated_on"`
}

// TableName specifies the table name for ItemStatus
func (ItemStatus) TableName() string {
	return "item_statuses"
}

func (s *ItemStatus) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
