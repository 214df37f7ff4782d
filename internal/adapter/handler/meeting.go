package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-minutes/errors"
	"github.com/johnquangdev/meeting-minutes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-minutes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-minutes/internal/usecase/minutes"
)

// Meeting handles meeting minutes HTTP requests
type Meeting struct {
	svc    minutes.Service
	logger *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(svc minutes.Service, logger *zap.Logger) *Meeting {
	return &Meeting{svc: svc, logger: logger}
}

// ListMeetingTypes handles GET /meeting-types
// @Summary      List meeting types
// @Description  Returns the static meeting type reference data
// @Tags         MeetingTypes
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "Meeting types"
// @Router       /meeting-types [get]
func (h *Meeting) ListMeetingTypes(c echo.Context) error {
	types, err := h.svc.ListMeetingTypes(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingTypeListResponse(types))
}

// ListMeetings handles GET /meetings
// @Summary      List meetings
// @Description  Returns meetings newest-first, optionally filtered by meeting type
// @Tags         Meetings
// @Produce      json
// @Param        meeting_type_id  query     int  false  "Meeting type filter"
// @Success      200  {object}  meeting.MeetingListResponse  "List of meetings"
// @Failure      400  {object}  map[string]interface{}       "Invalid request"
// @Router       /meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	var req meeting.ListMeetingsRequest
	if ok, resp := bindAndValidate(c, &req); !ok {
		return resp
	}

	meetings, err := h.svc.ListMeetings(c.Request().Context(), req.MeetingTypeID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingListResponse(meetings))
}

// NextCode handles GET /meetings/next-code
// @Summary      Preview the next meeting code
// @Description  Returns the code the generator would currently produce for a type. Returns an empty code for an invalid type; never errors.
// @Tags         Meetings
// @Produce      json
// @Param        meeting_type_id  query     int  true  "Meeting type id"
// @Success      200  {object}  meeting.NextCodeResponse  "Next code"
// @Router       /meetings/next-code [get]
func (h *Meeting) NextCode(c echo.Context) error {
	typeID, err := strconv.Atoi(c.QueryParam("meeting_type_id"))
	if err != nil || typeID <= 0 {
		return c.JSON(http.StatusOK, meeting.NextCodeResponse{Code: ""})
	}

	code, err := h.svc.GenerateCode(c.Request().Context(), typeID)
	if err != nil {
		// Contract: this endpoint never surfaces an error, only an empty code
		h.logger.Error("failed to generate next code",
			zap.Int("meeting_type_id", typeID),
			zap.Error(err),
		)
		return c.JSON(http.StatusOK, meeting.NextCodeResponse{Code: ""})
	}

	return c.JSON(http.StatusOK, meeting.NextCodeResponse{Code: code})
}

// PreviousItems handles GET /meetings/previous-items
// @Summary      List carry-forward candidates
// @Description  Returns the latest status of every action item previously discussed under the given meeting type. An empty list means no prior meetings exist; that is not an error.
// @Tags         Meetings
// @Produce      json
// @Param        meeting_type_id  query     int  true  "Meeting type id"
// @Success      200  {object}  meeting.PreviousItemsResponse  "Carry-forward candidates"
// @Failure      400  {object}  map[string]interface{}         "Invalid meeting type id"
// @Router       /meetings/previous-items [get]
func (h *Meeting) PreviousItems(c echo.Context) error {
	typeID, err := strconv.Atoi(c.QueryParam("meeting_type_id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed("meeting_type_id", "must be an integer"))
	}

	prev, err := h.svc.ResolvePreviousItems(c.Request().Context(), typeID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToPreviousItemsResponse(prev))
}

// CreateMeeting handles POST /meetings
// @Summary      Create a meeting
// @Description  Creates a meeting with a freshly generated code and one carried-forward status row per selected previous item, atomically
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting creation request"
// @Success      201      {object}  meeting.MeetingResponse  "Meeting created"
// @Failure      400      {object}  map[string]interface{}   "Invalid request or validation failed"
// @Failure      404      {object}  map[string]interface{}   "Meeting type not found"
// @Failure      409      {object}  map[string]interface{}   "Meeting code conflict persisted across retries"
// @Router       /meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meeting.CreateMeetingRequest
	if ok, resp := bindAndValidate(c, &req); !ok {
		return resp
	}

	date, err := parseDate(req.MeetingDate)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed("meeting_date", "must be YYYY-MM-DD"))
	}

	input := minutes.CreateMeetingInput{
		MeetingTypeID: req.MeetingTypeID,
		MeetingDate:   date,
	}
	for _, sel := range req.CarryForward {
		itemID, err := uuid.Parse(sel.ActionItemID)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrValidationFailed("carry_forward.action_item_id", "must be a valid UUID"))
		}
		input.CarryForward = append(input.CarryForward, minutes.CarryForwardSelection{
			ActionItemID: itemID,
			LastStatus:   sel.LastStatus,
		})
	}

	created, err := h.svc.CreateMeeting(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToMeetingResponse(created))
}

// GetMeeting handles GET /meetings/:id
// @Summary      Get meeting details
// @Description  Returns a meeting together with its type and every item status recorded at it
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  meeting.MeetingResponse  "Meeting details"
// @Failure      400  {object}  map[string]interface{}   "Invalid meeting ID"
// @Failure      404  {object}  map[string]interface{}   "Meeting not found"
// @Router       /meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting ID must be a valid UUID"))
	}

	m, err := h.svc.GetMeeting(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingResponse(m))
}

// AddItem handles POST /meetings/:id/items
// @Summary      Add an action item to a meeting
// @Description  Creates a new action item and links it to the meeting with an initial "Open" status row
// @Tags         ActionItems
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Meeting ID (UUID)"
// @Param        request  body      meeting.AddItemRequest  true  "Action item"
// @Success      201      {object}  meeting.ActionItemResponse  "Action item created"
// @Failure      400      {object}  map[string]interface{}      "Validation failed"
// @Failure      404      {object}  map[string]interface{}      "Meeting not found"
// @Router       /meetings/{id}/items [post]
func (h *Meeting) AddItem(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting ID must be a valid UUID"))
	}

	var req meeting.AddItemRequest
	if ok, resp := bindAndValidate(c, &req); !ok {
		return resp
	}

	item, err := h.svc.AddItem(c.Request().Context(), minutes.AddItemInput{
		MeetingID:         meetingID,
		Title:             req.Title,
		ResponsiblePerson: req.ResponsiblePerson,
		Description:       req.Description,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToActionItemResponse(item))
}

// UpdateStatus handles PUT /action-items/:id/status
// @Summary      Update an action item's status everywhere
// @Description  Overwrites status and comment on every status row of the action item, across all meetings, so the item reads consistently on every page
// @Tags         ActionItems
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Action item ID (UUID)"
// @Param        request  body      meeting.UpdateStatusRequest  true  "New status"
// @Success      200      {object}  meeting.UpdateStatusResponse  "Rows updated"
// @Failure      400      {object}  map[string]interface{}        "Validation failed"
// @Failure      404      {object}  map[string]interface{}        "Action item has no status rows"
// @Router       /action-items/{id}/status [put]
func (h *Meeting) UpdateStatus(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("action item ID must be a valid UUID"))
	}

	var req meeting.UpdateStatusRequest
	if ok, resp := bindAndValidate(c, &req); !ok {
		return resp
	}

	updated, err := h.svc.UpdateStatus(c.Request().Context(), itemID, minutes.UpdateStatusInput{
		Status:  req.Status,
		Comment: req.Comment,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, meeting.UpdateStatusResponse{UpdatedRows: updated})
}

// GetItemStatus handles GET /statuses/:id
// @Summary      Get one status row
// @Description  Returns a single item status row with its linked action item, as shown on the update-status screen
// @Tags         ActionItems
// @Produce      json
// @Param        id   path      string  true  "Status ID (UUID)"
// @Success      200  {object}  meeting.ItemStatusResponse  "Status row"
// @Failure      400  {object}  map[string]interface{}      "Invalid status ID"
// @Failure      404  {object}  map[string]interface{}      "Status not found"
// @Router       /statuses/{id} [get]
func (h *Meeting) GetItemStatus(c echo.Context) error {
	statusID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("status ID must be a valid UUID"))
	}

	status, err := h.svc.GetItemStatus(c.Request().Context(), statusID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToItemStatusResponse(status))
}
