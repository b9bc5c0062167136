// Package bookmark кодирует состояние карты в параметры URL и обратно.
package bookmark

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shenikar/civic_issue_map/internal/geo"
)

const (
	ParamMinLat = "min_lat"
	ParamMinLng = "min_lng"
	ParamMaxLat = "max_lat"
	ParamMaxLng = "max_lng"
	ParamStatus = "status"
	ParamID     = "id"

	// DefaultStatus используется, когда ни один статус не выбран
	DefaultStatus = "open"
)

// KnownStatuses - статусы, которые понимает фильтр карты
var KnownStatuses = []string{"open", "acknowledged", "closed", "archived"}

// Encode собирает строку запроса для закладки
func Encode(bbox geo.BoundingBox, statuses []string) string {
	values := url.Values{}
	values.Set(ParamMinLat, formatFloat(bbox.MinLat))
	values.Set(ParamMinLng, formatFloat(bbox.MinLng))
	values.Set(ParamMaxLat, formatFloat(bbox.MaxLat))
	values.Set(ParamMaxLng, formatFloat(bbox.MaxLng))
	values.Set(ParamStatus, JoinStatuses(statuses))
	// url.Values.Encode сортирует ключи, строка детерминирована
	return values.Encode()
}

// Decode восстанавливает прямоугольник из параметров запроса
func Decode(values url.Values) (geo.BoundingBox, error) {
	var (
		box geo.BoundingBox
		err error
	)
	if box.MinLat, err = parseParam(values, ParamMinLat); err != nil {
		return geo.BoundingBox{}, err
	}
	if box.MinLng, err = parseParam(values, ParamMinLng); err != nil {
		return geo.BoundingBox{}, err
	}
	if box.MaxLat, err = parseParam(values, ParamMaxLat); err != nil {
		return geo.BoundingBox{}, err
	}
	if box.MaxLng, err = parseParam(values, ParamMaxLng); err != nil {
		return geo.BoundingBox{}, err
	}
	if err := box.Validate(); err != nil {
		return geo.BoundingBox{}, err
	}
	return box, nil
}

// DecodeQuery - Decode для сырой строки запроса (с ведущим '?' или без)
func DecodeQuery(raw string) (geo.BoundingBox, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return geo.BoundingBox{}, fmt.Errorf("%w: %v", geo.ErrInvalidBoundingBox, err)
	}
	return Decode(values)
}

// HasBoundingBox сообщает, есть ли в запросе хотя бы один параметр прямоугольника
func HasBoundingBox(values url.Values) bool {
	for _, key := range []string{ParamMinLat, ParamMinLng, ParamMaxLat, ParamMaxLng} {
		if _, ok := values[key]; ok {
			return true
		}
	}
	return false
}

// ParseStatuses разбирает список статусов через запятую.
// Неизвестные значения и повторы отбрасываются; пустой результат заменяется на "open".
func ParseStatuses(raw string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		status := strings.ToLower(strings.TrimSpace(part))
		if status == "" || seen[status] || !isKnownStatus(status) {
			continue
		}
		seen[status] = true
		out = append(out, status)
	}
	if len(out) == 0 {
		return []string{DefaultStatus}
	}
	return out
}

// JoinStatuses склеивает статусы для параметра status
func JoinStatuses(statuses []string) string {
	if len(statuses) == 0 {
		return DefaultStatus
	}
	return strings.Join(statuses, ",")
}

// IssueLink - ссылка на страницу обращения
func IssueLink(id string) string {
	if id == "" {
		return ""
	}
	return "issue.html?" + ParamID + "=" + url.QueryEscape(id)
}

func parseParam(values url.Values, key string) (float64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return 0, fmt.Errorf("%w: missing %s", geo.ErrInvalidBoundingBox, key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not a number", geo.ErrInvalidBoundingBox, key)
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isKnownStatus(status string) bool {
	for _, known := range KnownStatuses {
		if known == status {
			return true
		}
	}
	return false
}
