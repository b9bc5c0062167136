package models

import (
	"time"

	"github.com/shenikar/civic_issue_map/internal/geo"
)

// Issue - обращение из ленты SeeClickFix после разбора и проверки
type Issue struct {
	ID           string          `json:"id"`
	Summary      string          `json:"summary"`
	Description  string          `json:"description,omitempty"`
	Status       string          `json:"status"`
	Address      string          `json:"address,omitempty"`
	Location     *geo.Coordinate `json:"location,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	CreatedAtRaw string          `json:"created_at_raw,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at"`
	URL          string          `json:"url,omitempty"`
	VoteCount    int             `json:"vote_count"`
	CommentCount int             `json:"comment_count"`
	ServiceArea  string          `json:"service_area,omitempty"`
	Reporter     string          `json:"reporter,omitempty"`
	Tags         []string        `json:"tags,omitempty"`
	ImageURLs    []string        `json:"image_urls,omitempty"`
	VideoURL     string          `json:"video_url,omitempty"`

	// DistanceFeet заполняется только движком ближайших обращений
	DistanceFeet *float64 `json:"distance_feet,omitempty"`
}

// HasCreatedAt сообщает, удалось ли разобрать дату создания
func (i Issue) HasCreatedAt() bool {
	return !i.CreatedAt.IsZero()
}

// Comment - комментарий к обращению
type Comment struct {
	Author    string    `json:"author"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Body      string    `json:"body"`
	ImageURL  string    `json:"image_url,omitempty"`
	VideoURL  string    `json:"video_url,omitempty"`
}

// IssueQuery - параметры запроса списка обращений к удаленному API
type IssueQuery struct {
	BBox          geo.BoundingBox
	Statuses      []string
	Sort          string
	SortDirection string
	PerPage       int
	After         *time.Time
	Before        *time.Time
}
