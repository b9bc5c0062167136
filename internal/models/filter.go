package models

import "time"

// SortMode - порядок выдачи ближайших обращений
type SortMode string

const (
	SortByDistance SortMode = "distance"
	SortByRecency  SortMode = "recency"
)

// ParseSortMode разбирает режим сортировки, по умолчанию - по расстоянию
func ParseSortMode(raw string) SortMode {
	if SortMode(raw) == SortByRecency {
		return SortByRecency
	}
	return SortByDistance
}

// FilterState - пользовательские фильтры панели ближайших обращений.
// CreatedAfter включительно, CreatedBefore не включительно.
type FilterState struct {
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	SortMode      SortMode
	Page          int
}
