package entities

// MeetingType is static reference data describing a category of recurring
// meeting (e.g. MANCO, Finance, PTL). Rows are seeded by migration and never
// mutated by the workflows.
type MeetingType struct {
	ID   int    `gorm:"primary_key" json:"id"`
	Name string `gorm:"type:varchar(100);not null;unique" json:"name"`
}

// TableName specifies the table name for MeetingType
func (MeetingType) TableName() string {
	return "meeting_types"
}
