package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/civic_issue_map/internal/bookmark"
	"github.com/shenikar/civic_issue_map/internal/geo"
	"github.com/shenikar/civic_issue_map/internal/metrics"
	"github.com/shenikar/civic_issue_map/internal/models"
	"github.com/shenikar/civic_issue_map/internal/nearby"
	"github.com/shenikar/civic_issue_map/internal/view"
	"github.com/sirupsen/logrus"
)

// GetNearby строит страницу обращений рядом с выбранным обращением
func (s *issueService) GetNearby(ctx context.Context, req models.NearbyRequest) (*models.NearbyView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "issue",
		"method":     "GetNearby",
		"issue_id":   req.IssueID,
		"session_id": req.SessionID,
	})
	token := s.tracker.Begin(req.SessionID, view.ScopeNearby)

	issue, err := s.repo.GetByID(ctx, req.IssueID)
	if err != nil {
		log.WithError(err).Error("Failed to get origin issue from repository")
		return nil, fmt.Errorf("service: could not get issue for nearby: %w", err)
	}

	sortMode := req.SortMode
	if sortMode == "" {
		sortMode = models.SortByDistance
	}

	result := &models.NearbyView{
		RadiusFeet: s.cfg.NearbyRadiusFeet,
		SortMode:   sortMode,
		RangeLabel: nearby.RangeLabel(nil, nil),
		Items:      []models.Issue{},
		Page:       1,
		TotalPages: 1,
		Markers:    []models.Marker{},
	}

	if issue.Location == nil {
		log.WithError(models.ErrMissingLocation).Warn("Origin issue has no coordinates")
		result.StatusMessage = "Location unavailable for nearby issues."
		return result, nil
	}
	origin := *issue.Location
	result.Origin = &origin

	after, before := s.nearbyDateRange(issue, req)
	result.CreatedAfter = &after
	result.CreatedBefore = &before
	result.RangeLabel = nearby.RangeLabel(&after, &before)

	box, err := geo.BoundingBoxFromCenter(origin, s.cfg.NearbyRadiusFeet)
	if err != nil {
		log.WithError(err).Warn("Failed to build nearby bounding box")
		result.StatusMessage = "Location unavailable for nearby issues."
		return result, nil
	}

	raw, err := s.repo.ListIssues(ctx, models.IssueQuery{
		BBox:          box,
		Statuses:      bookmark.KnownStatuses,
		Sort:          "created_at",
		SortDirection: "desc",
		PerPage:       s.cfg.FeedPerPage,
		After:         &after,
		Before:        &before,
	})
	if !s.tracker.IsCurrent(token) {
		metrics.StaleResponses.WithLabelValues(string(view.ScopeNearby)).Inc()
		log.Info("Discarding superseded nearby response")
		return nil, models.ErrStaleResponse
	}
	if err != nil {
		log.WithError(err).Error("Failed to list nearby issues from repository")
		result.StatusMessage = "Unable to load nearby issues."
		return result, nil
	}

	page := nearby.Render(raw, nearby.State{
		Origin:     origin,
		RadiusFeet: s.cfg.NearbyRadiusFeet,
		ExcludeID:  issue.ID,
		Filter: models.FilterState{
			CreatedAfter:  &after,
			CreatedBefore: &before,
			SortMode:      sortMode,
			Page:          req.Page,
		},
		PageSize: s.cfg.NearbyPageSize,
	})

	result.Items = page.Items
	result.Page = page.ClampedPage
	result.TotalPages = page.TotalPages
	result.Total = page.Total
	result.Markers = nearbyMarkers(origin, page.Items)
	if page.Empty {
		result.StatusMessage = fmt.Sprintf("No nearby issues found within %s feet.", formatFeet(s.cfg.NearbyRadiusFeet))
	}

	log.WithFields(logrus.Fields{
		"fetched": len(raw),
		"total":   page.Total,
		"page":    page.ClampedPage,
	}).Info("Nearby issues rendered successfully")
	return result, nil
}

// nearbyDateRange выбирает диапазон дат: явно заданный пользователем или по дате обращения.
// Дни приводятся к [NearbyMinDate, сегодня], результат - полуинтервал [after, before).
func (s *issueService) nearbyDateRange(issue *models.Issue, req models.NearbyRequest) (time.Time, time.Time) {
	now := s.now()
	minDay := s.cfg.NearbyMinDate
	today := truncateToDay(now)

	var start, end time.Time
	switch {
	case req.CreatedStart == nil && req.CreatedEnd == nil:
		start, end = nearby.DefaultRange(issue.CreatedAt, minDay, now)
	default:
		start, end = minDay, today
		if req.CreatedStart != nil {
			start = clampDay(*req.CreatedStart, minDay, today)
		}
		if req.CreatedEnd != nil {
			end = clampDay(*req.CreatedEnd, minDay, today)
		}
	}

	return nearby.BetweenDates(start, end)
}

func clampDay(t, minDay, maxDay time.Time) time.Time {
	d := truncateToDay(t)
	if d.Before(minDay) {
		return truncateToDay(minDay)
	}
	if d.After(maxDay) {
		return maxDay
	}
	return d
}

func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
