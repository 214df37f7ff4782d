package errors

import "errors"

// Validation errors. Workflows raise these before touching storage; the
// handler maps them to field-level 400 responses.
var (
	ErrInvalidMeetingType  = errors.New("invalid meeting type")
	ErrMeetingDateRequired = errors.New("meeting date is required")
	ErrTitleRequired       = errors.New("title is required")
	ErrResponsibleRequired = errors.New("responsible person is required")
	ErrStatusRequired      = errors.New("status is required")
)
