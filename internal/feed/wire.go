package feed

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/civic_issue_map/internal/geo"
	"github.com/shenikar/civic_issue_map/internal/models"
)

// Структуры ниже повторяют ответ SeeClickFix v2 ровно настолько, насколько он нужен.
// Поля с плавающим типом читаются как json.RawMessage и разбираются вручную.

type wireName struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type wireMedia struct {
	ImageFull string `json:"image_full"`
	Image     string `json:"image"`
	VideoURL  string `json:"video_url"`
}

type wireIssue struct {
	ID           json.RawMessage `json:"id"`
	IssueID      json.RawMessage `json:"issue_id"`
	IssueIDCamel json.RawMessage `json:"issueId"`
	Summary      string          `json:"summary"`
	Description  string          `json:"description"`
	Status       string          `json:"status"`
	Address      string          `json:"address"`
	Lat          json.RawMessage `json:"lat"`
	Lng          json.RawMessage `json:"lng"`
	CreatedAt    json.RawMessage `json:"created_at"`
	UpdatedAt    json.RawMessage `json:"updated_at"`
	URL          string          `json:"url"`
	HTMLURL      string          `json:"html_url"`
	VoteCount    json.RawMessage `json:"vote_count"`
	CommentCount json.RawMessage `json:"comment_count"`
	ServiceArea  *wireName       `json:"service_area"`
	Reporter     *wireName       `json:"reporter"`
	Tags         json.RawMessage `json:"tags"`
	Media        *wireMedia      `json:"media"`
	ImageFull    string          `json:"image_full"`
	Image        string          `json:"image"`
}

type wireComment struct {
	Comment     string          `json:"comment"`
	Body        string          `json:"body"`
	Text        string          `json:"text"`
	Description string          `json:"description"`
	Commenter   *wireName       `json:"commenter"`
	Reporter    *wireName       `json:"reporter"`
	User        *wireName       `json:"user"`
	CreatedAt   json.RawMessage `json:"created_at"`
	Media       *wireMedia      `json:"media"`
	ImageFull   string          `json:"image_full"`
	Image       string          `json:"image"`
	VideoURL    string          `json:"video_url"`
}

type issuesEnvelope struct {
	Issues []wireIssue `json:"issues"`
}

type issueEnvelope struct {
	Issue json.RawMessage `json:"issue"`
}

type commentsEnvelope struct {
	Comments []wireComment `json:"comments"`
}

// toModel переводит запись ленты в доменную модель. ok == false, если у записи нет идентификатора.
func (w wireIssue) toModel() (models.Issue, bool) {
	id := firstID(w.ID, w.IssueID, w.IssueIDCamel)
	if id == "" {
		return models.Issue{}, false
	}

	issue := models.Issue{
		ID:          id,
		Summary:     w.Summary,
		Description: w.Description,
		Status:      w.Status,
		Address:     w.Address,
		URL:         firstNonEmpty(w.URL, w.HTMLURL),
		Tags:        parseStringList(w.Tags),
	}

	issue.CreatedAt, issue.CreatedAtRaw = parseTime(w.CreatedAt)
	issue.UpdatedAt, _ = parseTime(w.UpdatedAt)
	issue.VoteCount = parseInt(w.VoteCount)
	issue.CommentCount = parseInt(w.CommentCount)

	lat, okLat := parseFloat(w.Lat)
	lng, okLng := parseFloat(w.Lng)
	if okLat && okLng {
		c := geo.Coordinate{Lat: lat, Lng: lng}
		if c.Valid() {
			issue.Location = &c
		}
	}

	if w.ServiceArea != nil {
		issue.ServiceArea = w.ServiceArea.Name
	}
	if w.Reporter != nil {
		issue.Reporter = w.Reporter.Name
	}

	var media wireMedia
	if w.Media != nil {
		media = *w.Media
	}
	issue.ImageURLs = uniqueURLs(media.ImageFull, w.ImageFull, w.Image)
	issue.VideoURL = cleanMediaURL(media.VideoURL)

	return issue, true
}

func (w wireComment) toModel() models.Comment {
	comment := models.Comment{
		Author: "Anonymous",
		Body:   firstNonEmpty(w.Comment, w.Body, w.Text, w.Description),
	}
	if comment.Body == "" {
		comment.Body = "No comment text provided."
	}

	for _, person := range []*wireName{w.Commenter, w.Reporter, w.User} {
		if person != nil && person.Name != "" {
			comment.Author = person.Name
			break
		}
	}
	for _, person := range []*wireName{w.Commenter, w.User} {
		if person != nil && person.Role != "" {
			comment.Role = person.Role
			break
		}
	}

	comment.CreatedAt, _ = parseTime(w.CreatedAt)

	var media wireMedia
	if w.Media != nil {
		media = *w.Media
	}
	comment.ImageURL = cleanMediaURL(firstNonEmpty(media.ImageFull, media.Image, w.ImageFull, w.Image))
	comment.VideoURL = cleanMediaURL(firstNonEmpty(media.VideoURL, w.VideoURL))
	return comment
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTime понимает строку или объект вида {"date_time": "..."}
func parseTime(raw json.RawMessage) (time.Time, string) {
	if isNull(raw) {
		return time.Time{}, ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var nested struct {
			DateTime json.RawMessage `json:"date_time"`
		}
		if err := json.Unmarshal(raw, &nested); err != nil || isNull(nested.DateTime) {
			return time.Time{}, ""
		}
		return parseTime(nested.DateTime)
	}

	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, s
		}
	}
	return time.Time{}, s
}

// firstID возвращает первый непустой идентификатор (число или строка)
func firstID(raws ...json.RawMessage) string {
	for _, raw := range raws {
		if isNull(raw) {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
			continue
		}
		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil && n.String() != "0" {
			return n.String()
		}
	}
	return ""
}

func parseFloat(raw json.RawMessage) (float64, bool) {
	if isNull(raw) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseInt(raw json.RawMessage) int {
	f, ok := parseFloat(raw)
	if !ok {
		return 0
	}
	return int(f)
}

func parseStringList(raw json.RawMessage) []string {
	if isNull(raw) {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	var out []string
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil && s != "" {
			out = append(out, s)
			continue
		}
		var named wireName
		if err := json.Unmarshal(item, &named); err == nil && named.Name != "" {
			out = append(out, named.Name)
		}
	}
	return out
}

// cleanMediaURL отбрасывает пустые значения и строку "null", которую API отдает вместо null
func cleanMediaURL(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || value == "null" {
		return ""
	}
	return value
}

func uniqueURLs(values ...string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, v := range values {
		v = cleanMediaURL(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func firstByte(body []byte) byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
