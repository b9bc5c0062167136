// Package feed - клиент ленты обращений SeeClickFix (только чтение).
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/civic_issue_map/internal/config"
	"github.com/shenikar/civic_issue_map/internal/metrics"
	"github.com/shenikar/civic_issue_map/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	maxBodyBytes = 10 << 20

	endpointListIssues   = "list_issues"
	endpointGetIssue     = "get_issue"
	endpointListComments = "list_comments"

	outcomeOK              = "ok"
	outcomeInvalidResponse = "invalid_response"
	outcomeNetworkError    = "network_error"
	outcomeHTTPError       = "http_error"
)

// StatusError - неуспешный HTTP-статус ответа ленты
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// Client - HTTP-клиент ленты обращений
type Client struct {
	baseURL    string
	perPage    int
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает клиент ленты по конфигурации
func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.FeedBaseURL, "/"),
		perPage: cfg.FeedPerPage,
		httpClient: &http.Client{
			Timeout: cfg.FeedTimeout,
		},
		logger: logger,
	}
}

// ListIssues запрашивает обращения внутри прямоугольника
func (c *Client) ListIssues(ctx context.Context, q models.IssueQuery) ([]models.Issue, error) {
	body, started, err := c.get(ctx, endpointListIssues, "/issues", c.issuesQuery(q))
	if err != nil {
		return nil, err
	}

	issues, err := c.decodeIssues(body)
	observeDecoded(endpointListIssues, started, err)
	return issues, err
}

// GetIssue запрашивает одно обращение с подробностями
func (c *Client) GetIssue(ctx context.Context, id string) (*models.Issue, error) {
	query := url.Values{}
	query.Set("details", "true")

	body, started, err := c.get(ctx, endpointGetIssue, "/issues/"+url.PathEscape(id), query)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", models.ErrIssueNotFound, id)
		}
		return nil, err
	}

	issue, err := decodeIssue(body, id)
	observeDecoded(endpointGetIssue, started, err)
	return issue, err
}

// ListComments запрашивает комментарии к обращению
func (c *Client) ListComments(ctx context.Context, id string) ([]models.Comment, error) {
	body, started, err := c.get(ctx, endpointListComments, "/issues/"+url.PathEscape(id)+"/comments", nil)
	if err != nil {
		return nil, err
	}

	comments, err := decodeComments(body)
	observeDecoded(endpointListComments, started, err)
	return comments, err
}

func (c *Client) decodeIssues(body []byte) ([]models.Issue, error) {
	var envelope issuesEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decode issues: %v", models.ErrInvalidResponse, err)
	}

	issues := make([]models.Issue, 0, len(envelope.Issues))
	for i, w := range envelope.Issues {
		issue, ok := w.toModel()
		if !ok {
			c.logger.WithField("index", i).Warn("Skipping feed issue without id")
			continue
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

// decodeIssue понимает как {"issue": {...}}, так и просто объект
func decodeIssue(body []byte, id string) (*models.Issue, error) {
	raw := json.RawMessage(body)
	var envelope issueEnvelope
	if firstByte(body) == '{' {
		if err := json.Unmarshal(body, &envelope); err == nil && firstByte(envelope.Issue) == '{' {
			raw = envelope.Issue
		}
	}
	if firstByte(raw) != '{' {
		return nil, fmt.Errorf("%w: issue %s is not an object", models.ErrInvalidResponse, id)
	}

	var w wireIssue
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("%w: decode issue %s: %v", models.ErrInvalidResponse, id, err)
	}
	issue, ok := w.toModel()
	if !ok {
		// идентификатор известен из запроса
		w.ID = json.RawMessage(strconv.Quote(id))
		issue, _ = w.toModel()
	}
	return &issue, nil
}

func decodeComments(body []byte) ([]models.Comment, error) {
	var wires []wireComment
	switch firstByte(body) {
	case '[':
		if err := json.Unmarshal(body, &wires); err != nil {
			return nil, fmt.Errorf("%w: decode comments: %v", models.ErrInvalidResponse, err)
		}
	case '{':
		var envelope commentsEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("%w: decode comments: %v", models.ErrInvalidResponse, err)
		}
		wires = envelope.Comments
	default:
		return nil, fmt.Errorf("%w: comments payload is neither array nor object", models.ErrInvalidResponse)
	}

	comments := make([]models.Comment, 0, len(wires))
	for _, w := range wires {
		comments = append(comments, w.toModel())
	}
	return comments, nil
}

// observeDecoded записывает исход запроса, тело которого дошло до разбора
func observeDecoded(endpoint string, started time.Time, err error) {
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeInvalidResponse
	}
	metrics.ObserveFeedRequest(endpoint, outcome, started)
}

func (c *Client) issuesQuery(q models.IssueQuery) url.Values {
	values := url.Values{}
	values.Set("min_lat", formatFloat(q.BBox.MinLat))
	values.Set("min_lng", formatFloat(q.BBox.MinLng))
	values.Set("max_lat", formatFloat(q.BBox.MaxLat))
	values.Set("max_lng", formatFloat(q.BBox.MaxLng))
	values.Set("status", strings.Join(q.Statuses, ","))

	sortField := q.Sort
	if sortField == "" {
		sortField = "created_at"
	}
	values.Set("sort", sortField)

	direction := q.SortDirection
	if direction == "" {
		direction = "desc"
	}
	values.Set("sort_direction", direction)

	perPage := q.PerPage
	if perPage < 1 {
		perPage = c.perPage
	}
	values.Set("per_page", strconv.Itoa(perPage))

	if q.After != nil {
		values.Set("after", q.After.UTC().Format(time.RFC3339))
	}
	if q.Before != nil {
		values.Set("before", q.Before.UTC().Format(time.RFC3339))
	}
	return values
}

// get выполняет запрос. Неудачи транспорта и статуса учитываются здесь,
// успешный ответ учитывает вызывающий после разбора тела.
func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values) ([]byte, time.Time, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	log := c.logger.WithFields(logrus.Fields{
		"component": "feed",
		"endpoint":  endpoint,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: build %s request: %w", models.ErrNetwork, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	log.WithField("url", target).Debug("Fetching from issue feed")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveFeedRequest(endpoint, outcomeNetworkError, started)
		log.WithError(err).Warn("Issue feed request failed")
		return nil, started, fmt.Errorf("%w: %s: %w", models.ErrNetwork, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.ObserveFeedRequest(endpoint, outcomeHTTPError, started)
		log.WithField("status_code", resp.StatusCode).Warn("Issue feed returned non-success status")
		return nil, started, fmt.Errorf("%w: %s: %w", models.ErrNetwork, endpoint, &StatusError{Code: resp.StatusCode})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		metrics.ObserveFeedRequest(endpoint, outcomeNetworkError, started)
		return nil, started, fmt.Errorf("%w: read %s body: %w", models.ErrNetwork, endpoint, err)
	}

	log.WithField("duration_ms", time.Since(started).Milliseconds()).Debug("Issue feed responded")
	return body, started, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
