package presenter

import (
	"github.com/johnquangdev/meeting-minutes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/internal/usecase/minutes"
)

// dateLayout is how meeting dates appear on the wire
const dateLayout = "2006-01-02"

// ToMeetingTypeResponse converts a MeetingType entity to its DTO
func ToMeetingTypeResponse(mt *entities.MeetingType) *meeting.MeetingTypeResponse {
	if mt == nil {
		return nil
	}
	return &meeting.MeetingTypeResponse{
		ID:   mt.ID,
		Name: mt.Name,
	}
}

// ToMeetingTypeListResponse converts a slice of MeetingType entities
func ToMeetingTypeListResponse(types []*entities.MeetingType) []*meeting.MeetingTypeResponse {
	responses := make([]*meeting.MeetingTypeResponse, len(types))
	for i, mt := range types {
		responses[i] = ToMeetingTypeResponse(mt)
	}
	return responses
}

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	response := &meeting.MeetingResponse{
		ID:            m.ID.String(),
		MeetingTypeID: m.MeetingTypeID,
		MeetingType:   ToMeetingTypeResponse(m.MeetingType),
		MeetingCode:   m.MeetingCode,
		MeetingDate:   m.MeetingDate.Format(dateLayout),
		CreatedAt:     m.CreatedAt,
	}

	if len(m.ItemStatuses) > 0 {
		response.ItemStatuses = make([]*meeting.ItemStatusResponse, len(m.ItemStatuses))
		for i := range m.ItemStatuses {
			response.ItemStatuses[i] = ToItemStatusResponse(&m.ItemStatuses[i])
		}
	}

	return response
}

// ToMeetingListResponse converts a slice of Meeting entities
func ToMeetingListResponse(meetings []*entities.Meeting) *meeting.MeetingListResponse {
	responses := make([]*meeting.MeetingResponse, len(meetings))
	for i, m := range meetings {
		responses[i] = ToMeetingResponse(m)
	}
	return &meeting.MeetingListResponse{
		Meetings: responses,
		Total:    len(responses),
	}
}

// ToActionItemResponse converts an ActionItem entity to its DTO
func ToActionItemResponse(item *entities.ActionItem) *meeting.ActionItemResponse {
	if item == nil {
		return nil
	}
	return &meeting.ActionItemResponse{
		ID:                item.ID.String(),
		Title:             item.Title,
		ResponsiblePerson: item.ResponsiblePerson,
		Description:       item.Description,
		CreatedAt:         item.CreatedAt,
	}
}

// ToItemStatusResponse converts an ItemStatus entity to its DTO
func ToItemStatusResponse(status *entities.ItemStatus) *meeting.ItemStatusResponse {
	if status == nil {
		return nil
	}
	return &meeting.ItemStatusResponse{
		ID:           status.ID.String(),
		MeetingID:    status.MeetingID.String(),
		ActionItemID: status.ActionItemID.String(),
		ActionItem:   ToActionItemResponse(status.ActionItem),
		Status:       status.Status,
		Comment:      status.Comment,
		UpdatedOn:    status.UpdatedOn,
	}
}

// ToPreviousItemsResponse converts the carry-forward resolver output
func ToPreviousItemsResponse(prev *minutes.PreviousItems) *meeting.PreviousItemsResponse {
	response := &meeting.PreviousItemsResponse{
		Items: make([]meeting.ItemSelectionResponse, len(prev.Items)),
	}

	for i, item := range prev.Items {
		response.Items[i] = meeting.ItemSelectionResponse{
			ActionItemID:      item.ActionItemID.String(),
			Title:             item.Title,
			ResponsiblePerson: item.ResponsiblePerson,
			LastStatus:        item.LastStatus,
			Selected:          item.Selected,
		}
	}

	if prev.MostRecentMeetingDate != nil {
		date := prev.MostRecentMeetingDate.Format(dateLayout)
		response.MostRecentMeetingDate = &date
	}

	return response
}
