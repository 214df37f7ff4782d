package meeting

// CreateMeetingRequest represents the request to create a meeting
type CreateMeetingRequest struct {
	MeetingTypeID int                            `json:"meeting_type_id" validate:"required,gt=0"`
	MeetingDate   string                         `json:"meeting_date" validate:"required"`
	CarryForward  []CarryForwardSelectionRequest `json:"carry_forward,omitempty" validate:"omitempty,dive"`
}

// CarryForwardSelectionRequest is one previous item the user ticked for
// carry-forward into the new meeting
type CarryForwardSelectionRequest struct {
	ActionItemID string `json:"action_item_id" validate:"required,uuid"`
	LastStatus   string `json:"last_status,omitempty"`
}

// AddItemRequest represents the request to add a standalone action item
type AddItemRequest struct {
	Title             string `json:"title" validate:"required,notblank,max=255"`
	ResponsiblePerson string `json:"responsible_person" validate:"required,notblank,max=255"`
	Description       string `json:"description,omitempty"`
}

// UpdateStatusRequest represents the request to update an action item's status
type UpdateStatusRequest struct {
	Status  string `json:"status" validate:"required,notblank,max=50"`
	Comment string `json:"comment,omitempty"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	MeetingTypeID *int `query:"meeting_type_id" validate:"omitempty,gt=0"`
}
