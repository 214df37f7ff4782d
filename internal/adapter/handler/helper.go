package handler

import (
	stdErrors "errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-minutes/errors"
	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-minutes/internal/usecase/errors"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// toAppError maps domain and workflow sentinels onto the AppError taxonomy.
// Anything unrecognized is treated as a persistence/internal failure.
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, entities.ErrMeetingTypeNotFound):
		return errors.ErrNotFound("meeting type")
	case stdErrors.Is(err, entities.ErrMeetingNotFound):
		return errors.ErrNotFound("meeting")
	case stdErrors.Is(err, entities.ErrActionItemNotFound):
		return errors.ErrNotFound("action item")
	case stdErrors.Is(err, entities.ErrItemStatusNotFound):
		return errors.ErrNotFound("item status")
	case stdErrors.Is(err, entities.ErrMeetingCodeConflict):
		return errors.ErrDBConstraintViolation("meeting code", err)
	case stdErrors.Is(err, usecaseErrors.ErrInvalidMeetingType):
		return errors.ErrValidationFailed("meeting_type_id", "must be a positive meeting type id")
	case stdErrors.Is(err, usecaseErrors.ErrMeetingDateRequired):
		return errors.ErrValidationFailed("meeting_date", "required")
	case stdErrors.Is(err, usecaseErrors.ErrTitleRequired):
		return errors.ErrValidationFailed("title", "required")
	case stdErrors.Is(err, usecaseErrors.ErrResponsibleRequired):
		return errors.ErrValidationFailed("responsible_person", "required")
	case stdErrors.Is(err, usecaseErrors.ErrStatusRequired):
		return errors.ErrValidationFailed("status", "required")
	default:
		return errors.ErrInternal(err)
	}
}

// HandleSuccess writes a standardized success response
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging. The raw cause is
// logged, never sent to the client.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err)

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	}

	return c.JSON(appErr.HTTPCode, body)
}

// dateLayouts are the accepted formats for meeting_date in requests
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate parses a meeting date from the wire
func parseDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// bindAndValidate binds the request body and runs struct validation, writing
// the 400 itself when either fails
func bindAndValidate(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, errs{
			Code:    errors.ErrorCode_INVALID_PAYLOAD,
			Message: "Invalid payload",
		})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, errs{
			Code:    errors.ErrorCode_VALIDATION_FAILED,
			Message: "Validation failed",
			Details: map[string]string{"reason": err.Error()},
		})
	}
	return true, nil
}
