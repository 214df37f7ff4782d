package entities

import "errors"

// Domain errors
var (
	ErrMeetingTypeNotFound = errors.New("meeting type not found")
	ErrMeetingNotFound     = errors.New("meeting not found")
	ErrActionItemNotFound  = errors.New("action item not found")
	ErrItemStatusNotFound  = errors.New("item status not found")

	// Raised when the (meeting type, meeting code) pair is already taken,
	// i.e. two creations raced on the same generated code
	ErrMeetingCodeConflict = errors.New("meeting code already taken for this type")
)
