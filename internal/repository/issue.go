package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/civic_issue_map/internal/feed"
	"github.com/shenikar/civic_issue_map/internal/metrics"
	"github.com/shenikar/civic_issue_map/internal/models"
	"github.com/shenikar/civic_issue_map/internal/service"
	"github.com/sirupsen/logrus"
)

// IssueRepository читает обращения из ленты и кеширует ответы в Redis.
// Без клиента Redis каждый вызов уходит в ленту.
type IssueRepository struct {
	feed        *feed.Client
	redisClient *redis.Client
	ttl         time.Duration
	logger      *logrus.Logger
}

func NewIssueRepository(feedClient *feed.Client, redisClient *redis.Client, ttl time.Duration, logger *logrus.Logger) service.IssueRepository {
	return &IssueRepository{
		feed:        feedClient,
		redisClient: redisClient,
		ttl:         ttl,
		logger:      logger,
	}
}

// ListIssues возвращает обращения в прямоугольнике по фильтрам запроса
func (r *IssueRepository) ListIssues(ctx context.Context, query models.IssueQuery) ([]models.Issue, error) {
	key, err := issuesKey(query)
	if err != nil {
		return nil, fmt.Errorf("failed to build cache key: %w", err)
	}

	var cached []models.Issue
	if r.getCache(ctx, "list_issues", key, &cached) {
		return cached, nil
	}

	issues, err := r.feed.ListIssues(ctx, query)
	if err != nil {
		return nil, err
	}
	r.setCache(ctx, key, issues)
	return issues, nil
}

// GetByID возвращает обращение по его идентификатору
func (r *IssueRepository) GetByID(ctx context.Context, id string) (*models.Issue, error) {
	key := fmt.Sprintf("issue:%s", id)

	cached := &models.Issue{}
	if r.getCache(ctx, "get_issue", key, cached) {
		return cached, nil
	}

	issue, err := r.feed.GetIssue(ctx, id)
	if err != nil {
		return nil, err
	}
	r.setCache(ctx, key, issue)
	return issue, nil
}

// ListComments возвращает комментарии к обращению
func (r *IssueRepository) ListComments(ctx context.Context, id string) ([]models.Comment, error) {
	key := fmt.Sprintf("comments:%s", id)

	var cached []models.Comment
	if r.getCache(ctx, "list_comments", key, &cached) {
		return cached, nil
	}

	comments, err := r.feed.ListComments(ctx, id)
	if err != nil {
		return nil, err
	}
	r.setCache(ctx, key, comments)
	return comments, nil
}

// getCache пытается прочитать значение из Redis. Ошибки кеша не прерывают запрос.
func (r *IssueRepository) getCache(ctx context.Context, operation, key string, dst any) bool {
	if r.redisClient == nil {
		return false
	}

	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.WithError(err).WithField("key", key).Warn("Failed to get value from cache")
		}
		metrics.CacheMisses.WithLabelValues(operation).Inc()
		return false
	}

	if err := json.Unmarshal(val, dst); err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("Failed to unmarshal value from cache")
		metrics.CacheMisses.WithLabelValues(operation).Inc()
		return false
	}

	metrics.CacheHits.WithLabelValues(operation).Inc()
	return true
}

// setCache сохраняет значение в Redis на время ttl
func (r *IssueRepository) setCache(ctx context.Context, key string, value any) {
	if r.redisClient == nil || r.ttl <= 0 {
		return
	}

	val, err := json.Marshal(value)
	if err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("Failed to marshal value for cache")
		return
	}
	if err := r.redisClient.Set(ctx, key, val, r.ttl).Err(); err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("Failed to set value in cache")
	}
}

func issuesKey(query models.IssueQuery) (string, error) {
	raw, err := json.Marshal(query)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return "issues:" + hex.EncodeToString(sum[:]), nil
}
