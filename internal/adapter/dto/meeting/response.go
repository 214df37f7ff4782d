package meeting

import "time"

// MeetingTypeResponse represents one meeting type
type MeetingTypeResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MeetingResponse represents one meeting
type MeetingResponse struct {
	ID            string                `json:"id"`
	MeetingTypeID int                   `json:"meeting_type_id"`
	MeetingType   *MeetingTypeResponse  `json:"meeting_type,omitempty"`
	MeetingCode   string                `json:"meeting_code"`
	MeetingDate   string                `json:"meeting_date"`
	ItemStatuses  []*ItemStatusResponse `json:"item_statuses,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

// MeetingListResponse represents a list of meetings
type MeetingListResponse struct {
	Meetings []*MeetingResponse `json:"meetings"`
	Total    int                `json:"total"`
}

// ActionItemResponse represents one action item
type ActionItemResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	ResponsiblePerson string    `json:"responsible_person"`
	Description       string    `json:"description,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// ItemStatusResponse represents the status of one action item at one meeting
type ItemStatusResponse struct {
	ID           string              `json:"id"`
	MeetingID    string              `json:"meeting_id"`
	ActionItemID string              `json:"action_item_id"`
	ActionItem   *ActionItemResponse `json:"action_item,omitempty"`
	Status       string              `json:"status"`
	Comment      string              `json:"comment,omitempty"`
	UpdatedOn    time.Time           `json:"updated_on"`
}

// ItemSelectionResponse is one carry-forward candidate
type ItemSelectionResponse struct {
	ActionItemID      string `json:"action_item_id"`
	Title             string `json:"title"`
	ResponsiblePerson string `json:"responsible_person"`
	LastStatus        string `json:"last_status"`
	Selected          bool   `json:"selected"`
}

// PreviousItemsResponse is the carry-forward resolver output
type PreviousItemsResponse struct {
	Items                 []ItemSelectionResponse `json:"items"`
	MostRecentMeetingDate *string                 `json:"most_recent_meeting_date,omitempty"`
}

// NextCodeResponse carries the code the generator would currently produce.
// Code is empty for an invalid meeting type; the endpoint never errors.
type NextCodeResponse struct {
	Code string `json:"code"`
}

// UpdateStatusResponse reports how many status rows the propagation touched
type UpdateStatusResponse struct {
	UpdatedRows int64 `json:"updated_rows"`
}
