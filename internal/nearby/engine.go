// Package nearby отбирает, сортирует и разбивает на страницы обращения вокруг точки.
// Все функции чистые: одинаковые входные данные дают одинаковый результат.
package nearby

import (
	"math"
	"sort"
	"time"

	"github.com/shenikar/civic_issue_map/internal/geo"
	"github.com/shenikar/civic_issue_map/internal/models"
)

// State - состояние панели, из которого заново строится каждая страница
type State struct {
	Origin     geo.Coordinate
	RadiusFeet float64
	ExcludeID  string
	Filter     models.FilterState
	PageSize   int
}

// Page - одна страница результата
type Page struct {
	Items       []models.Issue
	TotalPages  int
	ClampedPage int
	Total       int
	Empty       bool
}

// Ingest оставляет обращения в круге радиусом radiusFeet и проставляет им расстояние.
// Исходный срез не меняется: расстояние пишется в копии.
func Ingest(origin geo.Coordinate, raw []models.Issue, radiusFeet float64, excludeID string) []models.Issue {
	out := make([]models.Issue, 0, len(raw))
	for _, issue := range raw {
		if issue.Location == nil {
			continue
		}
		if excludeID != "" && issue.ID == excludeID {
			continue
		}
		d, err := geo.DistanceFeet(origin, *issue.Location)
		if err != nil || d > radiusFeet {
			continue
		}
		annotated := issue
		annotated.DistanceFeet = &d
		out = append(out, annotated)
	}
	return out
}

// ApplyDateRange оставляет обращения с after <= created_at < before.
// Обращения без разобранной даты отбрасываются.
func ApplyDateRange(issues []models.Issue, after, before *time.Time) []models.Issue {
	out := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if !issue.HasCreatedAt() {
			continue
		}
		if after != nil && issue.CreatedAt.Before(*after) {
			continue
		}
		if before != nil && !issue.CreatedAt.Before(*before) {
			continue
		}
		out = append(out, issue)
	}
	return out
}

// Sort возвращает отсортированную копию. Сортировка устойчивая.
func Sort(issues []models.Issue, mode models.SortMode) []models.Issue {
	out := make([]models.Issue, len(issues))
	copy(out, issues)

	if mode == models.SortByRecency {
		sort.SliceStable(out, func(i, j int) bool {
			return createdUnix(out[i]) > createdUnix(out[j])
		})
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return distanceKey(out[i]) < distanceKey(out[j])
	})
	return out
}

// Paginate режет список на страницы. Запрошенная страница приводится к [1, TotalPages].
func Paginate(issues []models.Issue, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(issues)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]models.Issue, end-start)
	copy(items, issues[start:end])

	return Page{
		Items:       items,
		TotalPages:  totalPages,
		ClampedPage: page,
		Total:       total,
		Empty:       total == 0,
	}
}

// Render пересчитывает страницу целиком: ingest -> date range -> sort -> paginate
func Render(raw []models.Issue, st State) Page {
	within := Ingest(st.Origin, raw, st.RadiusFeet, st.ExcludeID)
	dated := ApplyDateRange(within, st.Filter.CreatedAfter, st.Filter.CreatedBefore)
	sorted := Sort(dated, st.Filter.SortMode)
	return Paginate(sorted, st.Filter.Page, st.PageSize)
}

func distanceKey(issue models.Issue) float64 {
	if issue.DistanceFeet == nil || math.IsNaN(*issue.DistanceFeet) || math.IsInf(*issue.DistanceFeet, 0) {
		return math.Inf(1)
	}
	return *issue.DistanceFeet
}

func createdUnix(issue models.Issue) int64 {
	if !issue.HasCreatedAt() {
		return 0
	}
	return issue.CreatedAt.UnixMilli()
}
