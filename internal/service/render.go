package service

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/shenikar/civic_issue_map/internal/bookmark"
	"github.com/shenikar/civic_issue_map/internal/geo"
	"github.com/shenikar/civic_issue_map/internal/models"
)

const (
	originMarkerColor = "#e23d28"
	nearbyMarkerColor = "#f4c542"
)

// statusColors - цвета маркеров по классу статуса
var statusColors = map[string]string{
	"open":         "#d64545",
	"acknowledged": "#f4a640",
	"closed":       "#3e9b5f",
	"archived":     "#7a828c",
	"other":        "#4e79a7",
}

// StatusClass сводит произвольный статус ленты к одному из классов карты
func StatusClass(status string) string {
	key := strings.ToLower(status)
	switch {
	case key == "":
		return "other"
	case strings.Contains(key, "open"):
		return "open"
	case strings.Contains(key, "ack"):
		return "acknowledged"
	case strings.Contains(key, "closed"):
		return "closed"
	case strings.Contains(key, "arch"):
		return "archived"
	default:
		return "other"
	}
}

// StatusColor - цвет маркера для статуса
func StatusColor(status string) string {
	if color, ok := statusColors[StatusClass(status)]; ok {
		return color
	}
	return statusColors["other"]
}

func areaMarkers(issues []models.Issue) []models.Marker {
	markers := make([]models.Marker, 0, len(issues))
	for _, issue := range issues {
		if issue.Location == nil {
			continue
		}

		popup := fmt.Sprintf("<strong>%s</strong><br>%s",
			html.EscapeString(orDefault(issue.Summary, "Untitled")),
			html.EscapeString(orDefault(issue.Status, "Unknown status")))
		if link := bookmark.IssueLink(issue.ID); link != "" {
			popup += `<br><a class="issue-link" href="` + html.EscapeString(link) + `">See Issue</a>`
		}

		markers = append(markers, models.Marker{
			Coordinate: *issue.Location,
			Color:      StatusColor(issue.Status),
			PopupHTML:  popup,
		})
	}
	return markers
}

func nearbyMarkers(origin geo.Coordinate, issues []models.Issue) []models.Marker {
	markers := make([]models.Marker, 0, len(issues)+1)
	markers = append(markers, models.Marker{
		Coordinate: origin,
		Color:      originMarkerColor,
		PopupHTML:  "Current issue",
	})
	for _, issue := range issues {
		if issue.Location == nil {
			continue
		}
		markers = append(markers, models.Marker{
			Coordinate: *issue.Location,
			Color:      nearbyMarkerColor,
			PopupHTML:  html.EscapeString(orDefault(issue.Summary, "Nearby issue")),
		})
	}
	return markers
}

// formatFeet печатает радиус с разделителем тысяч: 2000 -> "2,000"
func formatFeet(feet float64) string {
	digits := strconv.FormatInt(int64(feet), 10)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func joinMessages(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
