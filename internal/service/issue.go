package service

//go:generate mockgen -source=issue.go -destination=mocks/mock_issue.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/civic_issue_map/internal/config"
	"github.com/shenikar/civic_issue_map/internal/models"
	"github.com/shenikar/civic_issue_map/internal/view"
	"github.com/sirupsen/logrus"
)

// IssueRepository определяет контракт для чтения обращений из ленты
type IssueRepository interface {
	ListIssues(ctx context.Context, query models.IssueQuery) ([]models.Issue, error)
	GetByID(ctx context.Context, id string) (*models.Issue, error)
	ListComments(ctx context.Context, id string) ([]models.Comment, error)
}

// IssueService определяет контракт бизнес-логики карты и карточки обращения
type IssueService interface {
	LoadArea(ctx context.Context, req models.AreaRequest) (*models.AreaView, error)
	GetIssueDetail(ctx context.Context, id string) (*models.IssueDetail, error)
	GetNearby(ctx context.Context, req models.NearbyRequest) (*models.NearbyView, error)
}

type issueService struct {
	repo    IssueRepository
	logger  *logrus.Logger
	cfg     *config.Config
	tracker *view.Tracker
	now     func() time.Time
}

func NewIssueService(repo IssueRepository, logger *logrus.Logger, cfg *config.Config, tracker *view.Tracker) IssueService {
	return &issueService{
		repo:    repo,
		logger:  logger,
		cfg:     cfg,
		tracker: tracker,
		now:     time.Now,
	}
}

// GetIssueDetail получает обращение и его комментарии.
// Ошибка загрузки комментариев не мешает показать само обращение.
func (s *issueService) GetIssueDetail(ctx context.Context, id string) (*models.IssueDetail, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "issue",
		"method":   "GetIssueDetail",
		"issue_id": id,
	})
	log.Info("Fetching issue details")

	issue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get issue from repository")
		return nil, fmt.Errorf("service: could not get issue: %w", err)
	}

	detail := &models.IssueDetail{
		Issue:    issue,
		Comments: []models.Comment{},
	}

	comments, err := s.repo.ListComments(ctx, id)
	switch {
	case err != nil:
		log.WithError(err).Warn("Failed to load comments")
		detail.CommentsStatus = "Unable to load comments."
	case len(comments) == 0:
		detail.CommentsStatus = "No comments yet."
	default:
		detail.Comments = comments
	}

	log.WithField("comments", len(detail.Comments)).Info("Issue details fetched successfully")
	return detail, nil
}
