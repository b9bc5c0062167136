package nearby

import (
	"errors"
	"fmt"
	"time"
)

const (
	dateInputLayout = "2006-01-02"
	day             = 24 * time.Hour
	// DefaultWindow - ширина диапазона дат по умолчанию, заканчивающегося датой обращения
	DefaultWindow = 30 * day
)

// ParseDateInput разбирает дату вида YYYY-MM-DD как полночь UTC
func ParseDateInput(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}
	t, err := time.ParseInLocation(dateInputLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return t, nil
}

// FormatDateInput - обратное к ParseDateInput
func FormatDateInput(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateInputLayout)
}

// BetweenDates превращает выбранные дни [start, end] в полуинтервал [after, before).
// Перепутанные границы меняются местами.
func BetweenDates(start, end time.Time) (after, before time.Time) {
	if start.After(end) {
		start, end = end, start
	}
	return start, end.Add(day)
}

// DefaultRange - диапазон для карточки обращения: конец - дата обращения в пределах
// [minDate, now], начало - на DefaultWindow раньше, но не раньше minDate.
// Если дата обращения неизвестна, диапазон - [minDate, now].
func DefaultRange(issueCreated, minDate, now time.Time) (start, end time.Time) {
	minDay := truncateDay(minDate)
	maxDay := truncateDay(now)
	if maxDay.Before(minDay) {
		maxDay = minDay
	}

	// Без даты обращения остается весь допустимый диапазон
	if issueCreated.IsZero() {
		return minDay, maxDay
	}

	end = truncateDay(issueCreated)

	if end.Before(minDay) {
		end = minDay
	}
	if end.After(maxDay) {
		end = maxDay
	}

	start = end.Add(-DefaultWindow)
	if start.Before(minDay) {
		start = minDay
	}
	if start.After(end) {
		start = end
	}
	return start, end
}

// RangeLabel подписывает диапазон включительными датами
func RangeLabel(after, before *time.Time) string {
	if after == nil || before == nil {
		return "—"
	}
	endInclusive := before.Add(-day)
	return fmt.Sprintf("%s – %s", FormatDateInput(*after), FormatDateInput(endInclusive))
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
