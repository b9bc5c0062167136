package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/civic_issue_map/internal/geo"
	"github.com/shenikar/civic_issue_map/internal/models"
	"github.com/shenikar/civic_issue_map/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIssueService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIssueService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	handler := NewHandler(mockService, logger)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware(logger))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetArea_WithLocation(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	center := geo.Coordinate{Lat: 47.25, Lng: -122.44}
	expectedArea := &models.AreaView{
		Center:        center,
		Label:         "your current location",
		RadiusFeet:    2000,
		Statuses:      []string{"open", "closed"},
		BookmarkQuery: "max_lat=47.26&max_lng=-122.43&min_lat=47.24&min_lng=-122.45&status=open%2Cclosed",
		Issues:        []models.Issue{{ID: "101", Summary: "Pothole", Status: "Open", Location: &center}},
		Markers:       []models.Marker{{Coordinate: center, Color: "#d64545", PopupHTML: "<strong>Pothole</strong>"}},
		StatusMessage: "Loaded 1 nearby issues.",
	}

	mockService.EXPECT().
		LoadArea(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.AreaRequest) (*models.AreaView, error) {
			assert.Equal(t, "tab-1", req.SessionID)
			require.NotNil(t, req.Center)
			assert.Equal(t, center, *req.Center)
			assert.Nil(t, req.BBox)
			assert.Equal(t, []string{"open", "closed"}, req.Statuses)
			return expectedArea, nil
		}).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/area?lat=47.25&lng=-122.44&status=open,closed", nil,
		map[string]string{HeaderViewSession: "tab-1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))

	var resp AreaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "your current location", resp.Label)
	require.Len(t, resp.Issues, 1)
	assert.Equal(t, "open", resp.Issues[0].StatusClass)
	assert.Equal(t, "issue.html?id=101", resp.Issues[0].Link)
	require.Len(t, resp.Markers, 1)
	assert.Equal(t, "#d64545", resp.Markers[0].Color)
}

func TestGetArea_Bookmark(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		LoadArea(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.AreaRequest) (*models.AreaView, error) {
			require.NotNil(t, req.BBox)
			assert.Equal(t, geo.BoundingBox{MinLat: 47.2, MinLng: -122.5, MaxLat: 47.3, MaxLng: -122.4}, *req.BBox)
			assert.NoError(t, req.BBoxErr)
			assert.Equal(t, []string{"open"}, req.Statuses)
			return &models.AreaView{Label: "bookmarked area"}, nil
		}).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/area?min_lat=47.2&min_lng=-122.5&max_lat=47.3&max_lng=-122.4", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bookmarked area")
}

func TestGetArea_InvalidBookmarkIsPassedOn(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		LoadArea(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.AreaRequest) (*models.AreaView, error) {
			assert.Nil(t, req.BBox)
			assert.ErrorIs(t, req.BBoxErr, models.ErrInvalidBoundingBox)
			return &models.AreaView{StatusMessage: "Bookmarked area is invalid."}, nil
		}).Times(1)

	// Юг севернее севера
	w := makeRequest(router, http.MethodGet, "/api/v1/area?min_lat=48&min_lng=-122.5&max_lat=47&max_lng=-122.4", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetArea_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().LoadArea(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodGet, "/api/v1/area?lat=123&lng=10", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Lat' failed on the 'latitude' tag")
}

func TestGetArea_LatWithoutLng(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().LoadArea(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/area?lat=47.25", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "lat and lng must be provided together")
}

func TestGetArea_Stale(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		LoadArea(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrStaleResponse).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/area", nil, map[string]string{HeaderViewSession: "tab-1"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetIssue_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	detail := &models.IssueDetail{
		Issue:    &models.Issue{ID: "101", Summary: "Pothole", Status: "Acknowledged", CreatedAt: created},
		Comments: []models.Comment{{Author: "Anonymous", Body: "Still there"}},
	}

	mockService.EXPECT().GetIssueDetail(gomock.Any(), "101").Return(detail, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/issues/101", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp IssueDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "101", resp.Issue.ID)
	assert.Equal(t, "acknowledged", resp.Issue.StatusClass)
	require.NotNil(t, resp.Issue.CreatedAt)
	assert.True(t, created.Equal(*resp.Issue.CreatedAt))
	assert.Nil(t, resp.Issue.UpdatedAt)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "Still there", resp.Comments[0].Body)
}

func TestGetIssue_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", fmt.Errorf("service: could not get issue: %w", models.ErrIssueNotFound), http.StatusNotFound},
		{"network", fmt.Errorf("service: could not get issue: %w", models.ErrNetwork), http.StatusBadGateway},
		{"invalid response", fmt.Errorf("service: could not get issue: %w", models.ErrInvalidResponse), http.StatusBadGateway},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().GetIssueDetail(gomock.Any(), "101").Return(nil, tt.err).Times(1)

			w := makeRequest(router, http.MethodGet, "/api/v1/issues/101", nil)

			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestGetNearby_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	origin := geo.Coordinate{Lat: 47.25, Lng: -122.44}
	after := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	distance := 120.5

	mockService.EXPECT().
		GetNearby(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.NearbyRequest) (*models.NearbyView, error) {
			assert.Equal(t, "101", req.IssueID)
			assert.Equal(t, models.SortByRecency, req.SortMode)
			assert.Equal(t, 2, req.Page)
			require.NotNil(t, req.CreatedStart)
			require.NotNil(t, req.CreatedEnd)
			assert.Equal(t, after, *req.CreatedStart)
			assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *req.CreatedEnd)
			return &models.NearbyView{
				Origin:        &origin,
				RadiusFeet:    400,
				SortMode:      models.SortByRecency,
				CreatedAfter:  &after,
				CreatedBefore: &before,
				RangeLabel:    "2024-03-01 – 2024-03-10",
				Items:         []models.Issue{{ID: "202", Summary: "Graffiti", DistanceFeet: &distance}},
				Page:          2,
				TotalPages:    2,
				Total:         11,
			}, nil
		}).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/issues/101/nearby?sort=recency&page=2&created_start=2024-03-01&created_end=2024-03-10", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp NearbyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "recency", resp.Sort)
	assert.Equal(t, "2024-03-01", resp.CreatedStart)
	assert.Equal(t, "2024-03-10", resp.CreatedEnd)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 11, resp.Total)
	require.Len(t, resp.Items, 1)
	require.NotNil(t, resp.Items[0].DistanceFeet)
	assert.InDelta(t, distance, *resp.Items[0].DistanceFeet, 1e-9)
}

func TestGetNearby_Defaults(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		GetNearby(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.NearbyRequest) (*models.NearbyView, error) {
			assert.Equal(t, models.SortByDistance, req.SortMode)
			assert.Equal(t, 1, req.Page)
			assert.Nil(t, req.CreatedStart)
			assert.Nil(t, req.CreatedEnd)
			return &models.NearbyView{SortMode: models.SortByDistance, Page: 1, TotalPages: 1}, nil
		}).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/issues/101/nearby", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetNearby_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"unknown sort", "sort=alphabetical"},
		{"bad date", "created_start=03/01/2024"},
		{"invalid end date", "created_end=2024-13-01"},
		{"negative page", "page=-1"},
		{"non-numeric page", "page=two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().GetNearby(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

			w := makeRequest(router, http.MethodGet, "/api/v1/issues/101/nearby?"+tt.query, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetNearby_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetNearby(gomock.Any(), gomock.Any()).Return(nil, models.ErrIssueNotFound).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/issues/999/nearby", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "issue not found")
}

func TestRequestID_PreservesClientValue(t *testing.T) {
	_, _, router := newTestHandler(t)
	requestID := uuid.NewString()

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil, map[string]string{HeaderRequestID: requestID})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, requestID, w.Header().Get(HeaderRequestID))
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestNewHandler_Dependencies(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIssueService(ctrl)
	logger := logrus.New()

	// Действие
	handler := NewHandler(mockService, logger)

	// Проверки
	assert.Same(t, logger, handler.logger)
	assert.Equal(t, mockService, handler.issueService)
	assert.NotNil(t, handler.validate)
}
