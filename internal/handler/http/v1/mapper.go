package v1

import (
	"time"

	"github.com/shenikar/civic_issue_map/internal/bookmark"
	"github.com/shenikar/civic_issue_map/internal/geo"
	"github.com/shenikar/civic_issue_map/internal/models"
	"github.com/shenikar/civic_issue_map/internal/nearby"
	"github.com/shenikar/civic_issue_map/internal/service"
)

// ModelToIssueResponse преобразует доменную модель в DTO для ответа
func ModelToIssueResponse(model *models.Issue) IssueResponse {
	resp := IssueResponse{
		ID:           model.ID,
		Summary:      model.Summary,
		Description:  model.Description,
		Status:       model.Status,
		StatusClass:  service.StatusClass(model.Status),
		Address:      model.Address,
		CreatedAt:    optionalTime(model.CreatedAt),
		UpdatedAt:    optionalTime(model.UpdatedAt),
		URL:          model.URL,
		Link:         bookmark.IssueLink(model.ID),
		VoteCount:    model.VoteCount,
		CommentCount: model.CommentCount,
		ServiceArea:  model.ServiceArea,
		Reporter:     model.Reporter,
		Tags:         model.Tags,
		ImageURLs:    model.ImageURLs,
		VideoURL:     model.VideoURL,
		DistanceFeet: model.DistanceFeet,
	}
	if model.Location != nil {
		resp.Location = coordinateResponse(*model.Location)
	}
	return resp
}

// ModelsToIssueResponses преобразует слайс моделей в слайс DTO
func ModelsToIssueResponses(issues []models.Issue) []IssueResponse {
	responses := make([]IssueResponse, len(issues))
	for i := range issues {
		responses[i] = ModelToIssueResponse(&issues[i])
	}
	return responses
}

func modelsToCommentResponses(comments []models.Comment) []CommentResponse {
	responses := make([]CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = CommentResponse{
			Author:    comment.Author,
			Role:      comment.Role,
			CreatedAt: optionalTime(comment.CreatedAt),
			Body:      comment.Body,
			ImageURL:  comment.ImageURL,
			VideoURL:  comment.VideoURL,
		}
	}
	return responses
}

func modelsToMarkerResponses(markers []models.Marker) []MarkerResponse {
	responses := make([]MarkerResponse, len(markers))
	for i, marker := range markers {
		responses[i] = MarkerResponse{
			Lat:       marker.Coordinate.Lat,
			Lng:       marker.Coordinate.Lng,
			Color:     marker.Color,
			PopupHTML: marker.PopupHTML,
		}
	}
	return responses
}

// ModelToAreaResponse преобразует карту области в DTO
func ModelToAreaResponse(area *models.AreaView) *AreaResponse {
	return &AreaResponse{
		Center: *coordinateResponse(area.Center),
		Label:  area.Label,
		BoundingBox: BoundingBoxResponse{
			MinLat: area.BoundingBox.MinLat,
			MinLng: area.BoundingBox.MinLng,
			MaxLat: area.BoundingBox.MaxLat,
			MaxLng: area.BoundingBox.MaxLng,
		},
		RadiusFeet:    area.RadiusFeet,
		Statuses:      area.Statuses,
		BookmarkQuery: area.BookmarkQuery,
		Issues:        ModelsToIssueResponses(area.Issues),
		Markers:       modelsToMarkerResponses(area.Markers),
		StatusMessage: area.StatusMessage,
	}
}

// ModelToIssueDetailResponse преобразует карточку обращения в DTO
func ModelToIssueDetailResponse(detail *models.IssueDetail) *IssueDetailResponse {
	return &IssueDetailResponse{
		Issue:          ModelToIssueResponse(detail.Issue),
		Comments:       modelsToCommentResponses(detail.Comments),
		CommentsStatus: detail.CommentsStatus,
	}
}

// ModelToNearbyResponse преобразует страницу ближайших обращений в DTO.
// Даты фильтра отдаются включительными днями, как их вводит пользователь.
func ModelToNearbyResponse(page *models.NearbyView) *NearbyResponse {
	resp := &NearbyResponse{
		RadiusFeet:    page.RadiusFeet,
		Sort:          string(page.SortMode),
		RangeLabel:    page.RangeLabel,
		Items:         ModelsToIssueResponses(page.Items),
		Page:          page.Page,
		TotalPages:    page.TotalPages,
		Total:         page.Total,
		Markers:       modelsToMarkerResponses(page.Markers),
		StatusMessage: page.StatusMessage,
	}
	if page.Origin != nil {
		resp.Origin = coordinateResponse(*page.Origin)
	}
	if page.CreatedAfter != nil {
		resp.CreatedStart = nearby.FormatDateInput(*page.CreatedAfter)
	}
	if page.CreatedBefore != nil {
		resp.CreatedEnd = nearby.FormatDateInput(page.CreatedBefore.Add(-24 * time.Hour))
	}
	return resp
}

func coordinateResponse(c geo.Coordinate) *CoordinateResponse {
	return &CoordinateResponse{Lat: c.Lat, Lng: c.Lng}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
