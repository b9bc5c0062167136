package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/civic_issue_map/internal/bookmark"
	"github.com/shenikar/civic_issue_map/internal/geo"
	"github.com/shenikar/civic_issue_map/internal/models"
	"github.com/shenikar/civic_issue_map/internal/nearby"
	"github.com/shenikar/civic_issue_map/internal/service"
	"github.com/sirupsen/logrus"
)

// HeaderViewSession - заголовок, которым клиент помечает свою вкладку.
// Ответы на устаревшие запросы той же вкладки отбрасываются.
const HeaderViewSession = "X-View-Session"

type Handler struct {
	issueService service.IssueService
	logger       *logrus.Logger
	validate     *validator.Validate
}

func NewHandler(issueService service.IssueService, logger *logrus.Logger) *Handler {
	return &Handler{
		issueService: issueService,
		logger:       logger,
		validate:     validator.New(),
	}
}

// @Summary Load issues for a map area
// @Description Load issues inside a bookmarked rectangle, around a given point, or around the default location.
// @Tags Area
// @Accept json
// @Produce json
// @Param min_lat query number false "Bookmarked south latitude"
// @Param min_lng query number false "Bookmarked west longitude"
// @Param max_lat query number false "Bookmarked north latitude"
// @Param max_lng query number false "Bookmarked east longitude"
// @Param status query string false "Comma-separated statuses" default(open)
// @Param lat query number false "Current latitude"
// @Param lng query number false "Current longitude"
// @Param X-View-Session header string false "Client view session"
// @Success 200 {object} AreaResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 409 {object} map[string]string "Superseded by a newer request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /area [get]
func (h *Handler) getArea(c *gin.Context) {
	var input AreaQuery
	log := h.logger.WithField("method", "getArea")

	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if (input.Lat == nil) != (input.Lng == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng must be provided together"})
		return
	}

	req := models.AreaRequest{
		SessionID: c.GetHeader(HeaderViewSession),
		Statuses:  bookmark.ParseStatuses(input.Status),
	}
	if input.Lat != nil {
		req.Center = &geo.Coordinate{Lat: *input.Lat, Lng: *input.Lng}
	}

	query := c.Request.URL.Query()
	if bookmark.HasBoundingBox(query) {
		box, err := bookmark.Decode(query)
		if err != nil {
			req.BBoxErr = err
		} else {
			req.BBox = &box
		}
	}

	area, err := h.issueService.LoadArea(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAreaResponse(area))
}

// @Summary Get issue by ID
// @Description Get a single issue with its comments.
// @Tags Issues
// @Accept json
// @Produce json
// @Param id path string true "Issue ID"
// @Success 200 {object} IssueDetailResponse
// @Failure 400 {object} map[string]string "Invalid issue ID"
// @Failure 404 {object} map[string]string "Issue not found"
// @Failure 502 {object} map[string]string "Upstream feed error"
// @Router /issues/{id} [get]
func (h *Handler) getIssue(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid issue ID"})
		return
	}
	log := h.logger.WithField("method", "getIssue").WithField("id", id)

	detail, err := h.issueService.GetIssueDetail(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIssueDetailResponse(detail))
}

// @Summary Get issues near an issue
// @Description Get a page of issues within the nearby radius of the given issue.
// @Tags Issues
// @Accept json
// @Produce json
// @Param id path string true "Issue ID"
// @Param sort query string false "Sort mode" Enums(distance, recency) default(distance)
// @Param page query int false "Page number" default(1)
// @Param created_start query string false "First day, YYYY-MM-DD"
// @Param created_end query string false "Last day, YYYY-MM-DD"
// @Param X-View-Session header string false "Client view session"
// @Success 200 {object} NearbyResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Issue not found"
// @Failure 409 {object} map[string]string "Superseded by a newer request"
// @Failure 502 {object} map[string]string "Upstream feed error"
// @Router /issues/{id}/nearby [get]
func (h *Handler) getNearby(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getNearby").WithField("id", id)

	var input NearbyQuery
	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := models.NearbyRequest{
		SessionID: c.GetHeader(HeaderViewSession),
		IssueID:   id,
		SortMode:  models.ParseSortMode(input.Sort),
		Page:      input.Page,
	}
	if req.Page == 0 {
		req.Page = 1
	}
	req.CreatedStart = parseOptionalDate(input.CreatedStart)
	req.CreatedEnd = parseOptionalDate(input.CreatedEnd)

	page, err := h.issueService.GetNearby(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToNearbyResponse(page))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError переводит ошибку сервиса в HTTP-ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrIssueNotFound):
		log.WithError(err).Warn("Issue not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "issue not found"})
	case errors.Is(err, models.ErrStaleResponse):
		log.Info("Request superseded by a newer one")
		c.JSON(http.StatusConflict, gin.H{"error": "superseded by a newer request"})
	case errors.Is(err, models.ErrInvalidBoundingBox):
		log.WithError(err).Warn("Invalid bounding box")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bounding box"})
	case errors.Is(err, models.ErrNetwork), errors.Is(err, models.ErrInvalidResponse):
		log.WithError(err).Error("Upstream feed failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to reach SeeClickFix"})
	default:
		log.WithError(err).Error("Failed to handle request in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseOptionalDate - строка уже проверена валидатором, пустая строка означает "не задано"
func parseOptionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := nearby.ParseDateInput(value)
	if err != nil {
		return nil
	}
	return &t
}
