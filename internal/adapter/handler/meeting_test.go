package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/internal/usecase/minutes"
	pkgvalidator "github.com/johnquangdev/meeting-minutes/pkg/validator"
)

// stubService overrides the service methods a test cares about; calling
// anything else panics through the embedded nil interface.
type stubService struct {
	minutes.Service
	generateCodeF func(meetingTypeID int) (string, error)
	getMeetingF   func(id uuid.UUID) (*entities.Meeting, error)
	addItemF      func(input minutes.AddItemInput) (*entities.ActionItem, error)
	updateStatusF func(id uuid.UUID, input minutes.UpdateStatusInput) (int64, error)
}

func (s *stubService) GenerateCode(_ context.Context, meetingTypeID int) (string, error) {
	return s.generateCodeF(meetingTypeID)
}

func (s *stubService) GetMeeting(_ context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return s.getMeetingF(id)
}

func (s *stubService) AddItem(_ context.Context, input minutes.AddItemInput) (*entities.ActionItem, error) {
	return s.addItemF(input)
}

func (s *stubService) UpdateStatus(_ context.Context, id uuid.UUID, input minutes.UpdateStatusInput) (int64, error) {
	return s.updateStatusF(id, input)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = pkgvalidator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestNextCode_ReturnsCode(t *testing.T) {
	svc := &stubService{generateCodeF: func(meetingTypeID int) (string, error) {
		assert.Equal(t, 2, meetingTypeID)
		return "F02", nil
	}}
	h := NewMeetingHandler(svc, zap.NewNop())

	c, rec := newTestContext(t, http.MethodGet, "/v1/meetings/next-code?meeting_type_id=2", "")
	require.NoError(t, h.NextCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "F02", decodeBody(t, rec)["code"])
}

func TestNextCode_InvalidTypeYieldsEmptyCode(t *testing.T) {
	called := false
	svc := &stubService{generateCodeF: func(int) (string, error) {
		called = true
		return "", nil
	}}
	h := NewMeetingHandler(svc, zap.NewNop())

	for _, query := range []string{"", "meeting_type_id=abc", "meeting_type_id=0", "meeting_type_id=-3"} {
		c, rec := newTestContext(t, http.MethodGet, "/v1/meetings/next-code?"+query, "")
		require.NoError(t, h.NextCode(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "", decodeBody(t, rec)["code"])
	}
	assert.False(t, called)
}

func TestNextCode_ServiceErrorYieldsEmptyCode(t *testing.T) {
	svc := &stubService{generateCodeF: func(int) (string, error) {
		return "", assert.AnError
	}}
	h := NewMeetingHandler(svc, zap.NewNop())

	c, rec := newTestContext(t, http.MethodGet, "/v1/meetings/next-code?meeting_type_id=2", "")
	require.NoError(t, h.NextCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", decodeBody(t, rec)["code"])
}

func TestGetMeeting_InvalidID(t *testing.T) {
	h := NewMeetingHandler(&stubService{}, zap.NewNop())

	c, rec := newTestContext(t, http.MethodGet, "/v1/meetings/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	require.NoError(t, h.GetMeeting(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMeeting_NotFound(t *testing.T) {
	svc := &stubService{getMeetingF: func(uuid.UUID) (*entities.Meeting, error) {
		return nil, entities.ErrMeetingNotFound
	}}
	h := NewMeetingHandler(svc, zap.NewNop())

	id := uuid.New().String()
	c, rec := newTestContext(t, http.MethodGet, "/v1/meetings/"+id, "")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.GetMeeting(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMeeting_Success(t *testing.T) {
	meetingID := uuid.New()
	svc := &stubService{getMeetingF: func(id uuid.UUID) (*entities.Meeting, error) {
		assert.Equal(t, meetingID, id)
		return &entities.Meeting{
			ID:            meetingID,
			MeetingTypeID: 2,
			MeetingCode:   "F01",
			MeetingDate:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		}, nil
	}}
	h := NewMeetingHandler(svc, zap.NewNop())

	c, rec := newTestContext(t, http.MethodGet, "/v1/meetings/"+meetingID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(meetingID.String())
	require.NoError(t, h.GetMeeting(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "F01", data["meeting_code"])
	assert.Equal(t, "2024-01-10", data["meeting_date"])
}

func TestAddItem_BlankTitleRejectedBeforeService(t *testing.T) {
	called := false
	svc := &stubService{addItemF: func(minutes.AddItemInput) (*entities.ActionItem, error) {
		called = true
		return nil, nil
	}}
	h := NewMeetingHandler(svc, zap.NewNop())

	id := uuid.New().String()
	c, rec := newTestContext(t, http.MethodPost, "/v1/meetings/"+id+"/items",
		`{"title":"   ","responsible_person":"Alice"}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.AddItem(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestAddItem_Success(t *testing.T) {
	meetingID := uuid.New()
	svc := &stubService{addItemF: func(input minutes.AddItemInput) (*entities.ActionItem, error) {
		assert.Equal(t, meetingID, input.MeetingID)
		assert.Equal(t, "Budget review", input.Title)
		return &entities.ActionItem{ID: uuid.New(), Title: input.Title, ResponsiblePerson: input.ResponsiblePerson}, nil
	}}
	h := NewMeetingHandler(svc, zap.NewNop())

	c, rec := newTestContext(t, http.MethodPost, "/v1/meetings/"+meetingID.String()+"/items",
		`{"title":"Budget review","responsible_person":"Alice"}`)
	c.SetParamNames("id")
	c.SetParamValues(meetingID.String())
	require.NoError(t, h.AddItem(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "Budget review", data["title"])
}

func TestUpdateStatus_ReportsUpdatedRows(t *testing.T) {
	itemID := uuid.New()
	svc := &stubService{updateStatusF: func(id uuid.UUID, input minutes.UpdateStatusInput) (int64, error) {
		assert.Equal(t, itemID, id)
		assert.Equal(t, "Closed", input.Status)
		return 3, nil
	}}
	h := NewMeetingHandler(svc, zap.NewNop())

	c, rec := newTestContext(t, http.MethodPut, "/v1/action-items/"+itemID.String()+"/status",
		`{"status":"Closed","comment":"Done"}`)
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())
	require.NoError(t, h.UpdateStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["updated_rows"])
}

func TestUpdateStatus_NoRowsIsNotFound(t *testing.T) {
	svc := &stubService{updateStatusF: func(uuid.UUID, minutes.UpdateStatusInput) (int64, error) {
		return 0, entities.ErrActionItemNotFound
	}}
	h := NewMeetingHandler(svc, zap.NewNop())

	id := uuid.New().String()
	c, rec := newTestContext(t, http.MethodPut, "/v1/action-items/"+id+"/status", `{"status":"Closed"}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.UpdateStatus(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
