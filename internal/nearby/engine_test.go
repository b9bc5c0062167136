package nearby

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/shenikar/civic_issue_map/internal/geo"
	"github.com/shenikar/civic_issue_map/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var origin = geo.Coordinate{Lat: 47.2529, Lng: -122.4443}

// northOf возвращает точку строго к северу от origin на заданном расстоянии в футах
func northOf(from geo.Coordinate, feet float64) *geo.Coordinate {
	const earthRadiusFeet = 3958.8 * 5280
	deltaDeg := feet / earthRadiusFeet * 180 / math.Pi
	return &geo.Coordinate{Lat: from.Lat + deltaDeg, Lng: from.Lng}
}

func issueAt(id string, feet float64, created string) models.Issue {
	issue := models.Issue{ID: id, Summary: "issue " + id, Location: northOf(origin, feet), CreatedAtRaw: created}
	if t, err := time.Parse(time.RFC3339, created); err == nil {
		issue.CreatedAt = t
	}
	return issue
}

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestIngest_RadiusCut(t *testing.T) {
	raw := []models.Issue{
		issueAt("a", 100, "2024-02-01T00:00:00Z"),
		issueAt("b", 399, "2024-02-01T00:00:00Z"),
		issueAt("c", 401, "2024-02-01T00:00:00Z"),
		issueAt("d", 500, "2024-02-01T00:00:00Z"),
	}

	got := Ingest(origin, raw, 400, "")

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	require.NotNil(t, got[0].DistanceFeet)
	require.NotNil(t, got[1].DistanceFeet)
	assert.InDelta(t, 100, *got[0].DistanceFeet, 1e-3)
	assert.InDelta(t, 399, *got[1].DistanceFeet, 1e-3)

	// Исходные записи не изменяются
	for _, issue := range raw {
		assert.Nil(t, issue.DistanceFeet)
	}
}

func TestIngest_ExcludesSelfAndMissingLocation(t *testing.T) {
	noLocation := models.Issue{ID: "nowhere"}
	raw := []models.Issue{
		issueAt("self", 0, "2024-02-01T00:00:00Z"),
		noLocation,
		issueAt("other", 50, "2024-02-01T00:00:00Z"),
		{ID: "broken", Location: &geo.Coordinate{Lat: math.NaN(), Lng: 0}},
	}

	got := Ingest(origin, raw, 400, "self")

	require.Len(t, got, 1)
	assert.Equal(t, "other", got[0].ID)
	for _, issue := range got {
		assert.NotEqual(t, "self", issue.ID)
		assert.LessOrEqual(t, *issue.DistanceFeet, 400.0)
	}
}

func TestApplyDateRange(t *testing.T) {
	issues := []models.Issue{
		issueAt("before-range", 10, "2023-12-31T23:59:59Z"),
		issueAt("at-lower", 10, "2024-01-01T00:00:00Z"),
		issueAt("inside", 10, "2024-01-15T12:00:00Z"),
		issueAt("at-upper", 10, "2024-02-01T00:00:00Z"),
		issueAt("bad-date", 10, "not a date"),
	}

	got := ApplyDateRange(issues, date("2024-01-01"), date("2024-02-01"))

	require.Len(t, got, 2)
	assert.Equal(t, "at-lower", got[0].ID)
	assert.Equal(t, "inside", got[1].ID)
	for _, issue := range got {
		assert.False(t, issue.CreatedAt.Before(*date("2024-01-01")))
		assert.True(t, issue.CreatedAt.Before(*date("2024-02-01")))
	}
}

func TestApplyDateRange_OpenBounds(t *testing.T) {
	issues := []models.Issue{
		issueAt("old", 10, "2020-01-01T00:00:00Z"),
		issueAt("new", 10, "2025-01-01T00:00:00Z"),
		issueAt("bad-date", 10, ""),
	}

	got := ApplyDateRange(issues, nil, nil)
	require.Len(t, got, 2)

	got = ApplyDateRange(issues, date("2021-01-01"), nil)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)
}

func TestSort_Distance(t *testing.T) {
	far := issueAt("far", 300, "2024-01-01T00:00:00Z")
	near := issueAt("near", 20, "2024-01-01T00:00:00Z")
	unknown := models.Issue{ID: "unknown"}
	annotated := Ingest(origin, []models.Issue{far, near}, 400, "")
	input := append([]models.Issue{unknown}, annotated...)

	got := Sort(input, models.SortByDistance)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"near", "far", "unknown"}, ids(got))
	// Вход не переупорядочен
	assert.Equal(t, "unknown", input[0].ID)
}

func TestSort_Recency(t *testing.T) {
	issues := []models.Issue{
		issueAt("january", 10, "2024-01-01T00:00:00Z"),
		issueAt("june", 10, "2024-06-01T00:00:00Z"),
	}

	got := Sort(issues, models.SortByRecency)
	assert.Equal(t, []string{"june", "january"}, ids(got))
}

func TestSort_RecencyUnparsableLast(t *testing.T) {
	issues := []models.Issue{
		issueAt("bad", 10, "garbage"),
		issueAt("ok", 10, "2024-03-01T00:00:00Z"),
	}

	got := Sort(issues, models.SortByRecency)
	assert.Equal(t, []string{"ok", "bad"}, ids(got))
}

func TestSort_Stable(t *testing.T) {
	var issues []models.Issue
	for i := 0; i < 20; i++ {
		issues = append(issues, issueAt(fmt.Sprintf("i%02d", i), 100, "2024-03-01T00:00:00Z"))
	}
	annotated := Ingest(origin, issues, 400, "")

	byDistance := Sort(annotated, models.SortByDistance)
	byRecency := Sort(annotated, models.SortByRecency)

	assert.Equal(t, ids(annotated), ids(byDistance))
	assert.Equal(t, ids(annotated), ids(byRecency))
}

func TestPaginate(t *testing.T) {
	issues := make([]models.Issue, 25)
	for i := range issues {
		issues[i] = models.Issue{ID: fmt.Sprintf("%d", i)}
	}

	page := Paginate(issues, 3, 10)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 3, page.ClampedPage)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, "20", page.Items[0].ID)
	assert.Equal(t, 25, page.Total)
	assert.False(t, page.Empty)
}

func TestPaginate_Clamp(t *testing.T) {
	issues := make([]models.Issue, 25)
	for i := range issues {
		issues[i] = models.Issue{ID: fmt.Sprintf("%d", i)}
	}

	for _, requested := range []int{-5, 0, 1, 2, 3, 4, 100} {
		page := Paginate(issues, requested, 10)
		assert.GreaterOrEqual(t, page.ClampedPage, 1)
		assert.LessOrEqual(t, page.ClampedPage, page.TotalPages)
		assert.LessOrEqual(t, len(page.Items), 10)
		assert.NotEmpty(t, page.Items)
	}

	assert.Equal(t, 1, Paginate(issues, 0, 10).ClampedPage)
	assert.Equal(t, 3, Paginate(issues, 100, 10).ClampedPage)
}

func TestPaginate_Empty(t *testing.T) {
	page := Paginate(nil, 4, 10)
	assert.True(t, page.Empty)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.ClampedPage)
	assert.Empty(t, page.Items)
}

func TestRender_Idempotent(t *testing.T) {
	var raw []models.Issue
	for i := 0; i < 30; i++ {
		created := time.Date(2024, time.Month(1+i%6), 1+i%27, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
		raw = append(raw, issueAt(fmt.Sprintf("n%02d", i), float64(i*15), created))
	}

	st := State{
		Origin:     origin,
		RadiusFeet: 400,
		ExcludeID:  "n00",
		Filter: models.FilterState{
			CreatedAfter:  date("2024-01-01"),
			CreatedBefore: date("2024-06-01"),
			SortMode:      models.SortByRecency,
			Page:          2,
		},
		PageSize: 10,
	}

	first := Render(raw, st)
	second := Render(raw, st)

	assert.Equal(t, first, second)
	for _, issue := range first.Items {
		assert.NotEqual(t, "n00", issue.ID)
		assert.LessOrEqual(t, *issue.DistanceFeet, 400.0)
	}
}

func TestRender_DistanceOrderAcrossPages(t *testing.T) {
	var raw []models.Issue
	for i := 12; i > 0; i-- {
		raw = append(raw, issueAt(fmt.Sprintf("d%02d", i), float64(i*10), "2024-04-01T00:00:00Z"))
	}

	st := State{
		Origin:     origin,
		RadiusFeet: 400,
		Filter:     models.FilterState{SortMode: models.SortByDistance, Page: 2},
		PageSize:   10,
	}

	page := Render(raw, st)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, []string{"d11", "d12"}, ids(page.Items))
}

func ids(issues []models.Issue) []string {
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.ID
	}
	return out
}
