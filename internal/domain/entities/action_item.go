package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActionItem is a recurring discussion topic. It is created once, either
// standalone during a meeting or referenced again via carry-forward status
// rows, and is immutable after creation.
type ActionItem struct {
	ID                uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	Title             string       `gorm:"type:varchar(255);not null" json:"title"`
	ResponsiblePerson string       `gorm:"type:varchar(255);not null" json:"responsible_person"`
	Description       string       `gorm:"type:text" json:"description"`
	StatusHistory     []ItemStatus `gorm:"foreignKey:ActionItemID" json:"status_history,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

func (a *ActionItem) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
