package v1

import "time"

// AreaQuery DTO для запроса карты области
// @Description Параметры запроса карты: прямоугольник из закладки или точка
type AreaQuery struct {
	Lat    *float64 `form:"lat" validate:"omitempty,latitude"`
	Lng    *float64 `form:"lng" validate:"omitempty,longitude"`
	Status string   `form:"status" validate:"omitempty,max=255"`
}

// NearbyQuery DTO для запроса ближайших обращений
// @Description Фильтры панели ближайших обращений
type NearbyQuery struct {
	Sort         string `form:"sort" validate:"omitempty,oneof=distance recency"`
	Page         int    `form:"page" validate:"omitempty,gte=1"`
	CreatedStart string `form:"created_start" validate:"omitempty,datetime=2006-01-02"`
	CreatedEnd   string `form:"created_end" validate:"omitempty,datetime=2006-01-02"`
}

// CoordinateResponse DTO с координатами точки
type CoordinateResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BoundingBoxResponse DTO прямоугольника на карте
type BoundingBoxResponse struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// MarkerResponse DTO маркера карты
// @Description Маркер с цветом и HTML всплывающей подсказки
type MarkerResponse struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Color     string  `json:"color"`
	PopupHTML string  `json:"popup_html"`
}

// IssueResponse DTO для ответа с информацией об обращении
// @Description DTO для ответа с информацией об обращении
type IssueResponse struct {
	ID           string              `json:"id"`
	Summary      string              `json:"summary"`
	Description  string              `json:"description,omitempty"`
	Status       string              `json:"status"`
	StatusClass  string              `json:"status_class"`
	Address      string              `json:"address,omitempty"`
	Location     *CoordinateResponse `json:"location,omitempty"`
	CreatedAt    *time.Time          `json:"created_at,omitempty"`
	UpdatedAt    *time.Time          `json:"updated_at,omitempty"`
	URL          string              `json:"url,omitempty"`
	Link         string              `json:"link,omitempty"`
	VoteCount    int                 `json:"vote_count"`
	CommentCount int                 `json:"comment_count"`
	ServiceArea  string              `json:"service_area,omitempty"`
	Reporter     string              `json:"reporter,omitempty"`
	Tags         []string            `json:"tags,omitempty"`
	ImageURLs    []string            `json:"image_urls,omitempty"`
	VideoURL     string              `json:"video_url,omitempty"`
	DistanceFeet *float64            `json:"distance_feet,omitempty"`
}

// CommentResponse DTO комментария
type CommentResponse struct {
	Author    string     `json:"author"`
	Role      string     `json:"role,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Body      string     `json:"body"`
	ImageURL  string     `json:"image_url,omitempty"`
	VideoURL  string     `json:"video_url,omitempty"`
}

// AreaResponse DTO для ответа с картой области
// @Description Обращения в области, маркеры и строка закладки
type AreaResponse struct {
	Center        CoordinateResponse  `json:"center"`
	Label         string              `json:"label"`
	BoundingBox   BoundingBoxResponse `json:"bounding_box"`
	RadiusFeet    float64             `json:"radius_feet,omitempty"`
	Statuses      []string            `json:"statuses"`
	BookmarkQuery string              `json:"bookmark_query"`
	Issues        []IssueResponse     `json:"issues"`
	Markers       []MarkerResponse    `json:"markers"`
	StatusMessage string              `json:"status_message,omitempty"`
}

// IssueDetailResponse DTO карточки обращения
// @Description Обращение с комментариями
type IssueDetailResponse struct {
	Issue          IssueResponse     `json:"issue"`
	Comments       []CommentResponse `json:"comments"`
	CommentsStatus string            `json:"comments_status,omitempty"`
}

// NearbyResponse DTO страницы ближайших обращений
// @Description Страница ближайших обращений с фильтрами
type NearbyResponse struct {
	Origin        *CoordinateResponse `json:"origin,omitempty"`
	RadiusFeet    float64             `json:"radius_feet"`
	Sort          string              `json:"sort"`
	CreatedStart  string              `json:"created_start,omitempty"`
	CreatedEnd    string              `json:"created_end,omitempty"`
	RangeLabel    string              `json:"range_label"`
	Items         []IssueResponse     `json:"items"`
	Page          int                 `json:"page"`
	TotalPages    int                 `json:"total_pages"`
	Total         int                 `json:"total"`
	Markers       []MarkerResponse    `json:"markers"`
	StatusMessage string              `json:"status_message,omitempty"`
}
