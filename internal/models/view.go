package models

import (
	"time"

	"github.com/shenikar/civic_issue_map/internal/geo"
)

// Marker - маркер для виджета карты
type Marker struct {
	Coordinate geo.Coordinate `json:"coordinate"`
	Color      string         `json:"color"`
	PopupHTML  string         `json:"popup_html"`
}

// AreaRequest - запрос карты обращений в области
type AreaRequest struct {
	SessionID string
	// BBox задан, если область пришла из закладки или нарисована пользователем
	BBox *geo.BoundingBox
	// BBoxErr - ошибка разбора закладки, если она была передана, но оказалась некорректной
	BBoxErr  error
	Center   *geo.Coordinate
	Statuses []string
}

// AreaView - результат для карты области
type AreaView struct {
	Center        geo.Coordinate  `json:"center"`
	Label         string          `json:"label"`
	BoundingBox   geo.BoundingBox `json:"bounding_box"`
	RadiusFeet    float64         `json:"radius_feet,omitempty"`
	Statuses      []string        `json:"statuses"`
	BookmarkQuery string          `json:"bookmark_query"`
	Issues        []Issue         `json:"issues"`
	Markers       []Marker        `json:"markers"`
	StatusMessage string          `json:"status_message"`
}

// IssueDetail - карточка обращения с комментариями
type IssueDetail struct {
	Issue          *Issue    `json:"issue"`
	Comments       []Comment `json:"comments"`
	CommentsStatus string    `json:"comments_status,omitempty"`
}

// NearbyRequest - запрос панели ближайших обращений
type NearbyRequest struct {
	SessionID    string
	IssueID      string
	SortMode     SortMode
	Page         int
	CreatedStart *time.Time
	CreatedEnd   *time.Time
}

// NearbyView - страница ближайших обращений
type NearbyView struct {
	Origin        *geo.Coordinate `json:"origin,omitempty"`
	RadiusFeet    float64         `json:"radius_feet"`
	SortMode      SortMode        `json:"sort_mode"`
	CreatedAfter  *time.Time      `json:"created_after,omitempty"`
	CreatedBefore *time.Time      `json:"created_before,omitempty"`
	RangeLabel    string          `json:"range_label"`
	Items         []Issue         `json:"items"`
	Page          int             `json:"page"`
	TotalPages    int             `json:"total_pages"`
	Total         int             `json:"total"`
	Markers       []Marker        `json:"markers"`
	StatusMessage string          `json:"status_message"`
}
