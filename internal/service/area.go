package service

import (
	"context"
	"fmt"

	"github.com/shenikar/civic_issue_map/internal/bookmark"
	"github.com/shenikar/civic_issue_map/internal/geo"
	"github.com/shenikar/civic_issue_map/internal/metrics"
	"github.com/shenikar/civic_issue_map/internal/models"
	"github.com/shenikar/civic_issue_map/internal/nearby"
	"github.com/shenikar/civic_issue_map/internal/view"
	"github.com/sirupsen/logrus"
)

const (
	labelBookmarked = "bookmarked area"
	labelCurrent    = "your current location"
)

// LoadArea строит карту обращений: из закладки, по присланной точке или вокруг точки по умолчанию
func (s *issueService) LoadArea(ctx context.Context, req models.AreaRequest) (*models.AreaView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "issue",
		"method":     "LoadArea",
		"session_id": req.SessionID,
	})
	token := s.tracker.Begin(req.SessionID, view.ScopeArea)

	statuses := req.Statuses
	if len(statuses) == 0 {
		statuses = []string{bookmark.DefaultStatus}
	}

	area := &models.AreaView{
		Statuses: statuses,
		Issues:   []models.Issue{},
		Markers:  []models.Marker{},
	}

	var notice string
	if req.BBoxErr != nil {
		log.WithError(req.BBoxErr).Warn("Ignoring invalid bookmarked bounding box")
		notice = "Bookmarked area is invalid."
	}

	// Точная отсечка по кругу нужна только для области, построенной вокруг точки
	circular := true
	switch {
	case req.BBox != nil:
		if err := req.BBox.Validate(); err != nil {
			return nil, fmt.Errorf("service: could not load area: %w", err)
		}
		area.BoundingBox = *req.BBox
		area.Center = req.BBox.Center()
		area.Label = labelBookmarked
		circular = false
	case req.Center != nil:
		area.Center = *req.Center
		area.Label = labelCurrent
	default:
		area.Center = geo.Coordinate{Lat: s.cfg.DefaultLat, Lng: s.cfg.DefaultLng}
		area.Label = s.cfg.DefaultLabel
		notice = joinMessages(notice, fmt.Sprintf("No location provided. Showing issues near %s instead.", s.cfg.DefaultLabel))
	}

	if circular {
		box, err := geo.BoundingBoxFromCenter(area.Center, s.cfg.AreaRadiusFeet)
		if err != nil {
			log.WithError(err).Warn("Failed to build bounding box around center")
			return nil, fmt.Errorf("service: could not load area: %w", err)
		}
		area.BoundingBox = box
		area.RadiusFeet = s.cfg.AreaRadiusFeet
	}
	area.BookmarkQuery = bookmark.Encode(area.BoundingBox, statuses)

	log = log.WithField("label", area.Label)
	log.Infof("Finding issues within %s feet of %s", formatFeet(s.cfg.AreaRadiusFeet), area.Label)

	issues, err := s.repo.ListIssues(ctx, models.IssueQuery{
		BBox:          area.BoundingBox,
		Statuses:      statuses,
		Sort:          "created_at",
		SortDirection: "desc",
		PerPage:       s.cfg.FeedPerPage,
	})
	if !s.tracker.IsCurrent(token) {
		metrics.StaleResponses.WithLabelValues(string(view.ScopeArea)).Inc()
		log.Info("Discarding superseded area response")
		return nil, models.ErrStaleResponse
	}
	if err != nil {
		log.WithError(err).Error("Failed to list area issues from repository")
		area.StatusMessage = joinMessages(notice, "Unable to load issues from SeeClickFix.")
		return area, nil
	}

	if circular {
		issues = nearby.Ingest(area.Center, issues, s.cfg.AreaRadiusFeet, "")
	}
	issues = nearby.Sort(issues, models.SortByRecency)

	area.Issues = issues
	area.Markers = areaMarkers(issues)

	switch {
	case len(issues) == 0 && circular:
		area.StatusMessage = joinMessages(notice, fmt.Sprintf("No issues found within %s feet.", formatFeet(s.cfg.AreaRadiusFeet)))
	case len(issues) == 0:
		area.StatusMessage = joinMessages(notice, "No issues found in this area.")
	default:
		area.StatusMessage = joinMessages(notice, fmt.Sprintf("Loaded %d nearby issues.", len(issues)))
	}

	log.WithField("count", len(issues)).Info("Area issues loaded successfully")
	return area, nil
}
