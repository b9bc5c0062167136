package models

import (
	"errors"

	"github.com/shenikar/civic_issue_map/internal/geo"
)

var (
	// ErrNetwork - запрос к ленте не выполнен или вернул неуспешный статус
	ErrNetwork = errors.New("network error")
	// ErrInvalidResponse - ответ ленты не соответствует ожидаемой схеме
	ErrInvalidResponse = errors.New("invalid response")
	// ErrInvalidBoundingBox - вырожденный или неразборчивый прямоугольник
	ErrInvalidBoundingBox = geo.ErrInvalidBoundingBox
	// ErrMissingLocation - у обращения нет координат
	ErrMissingLocation = errors.New("missing location")
	// ErrIssueNotFound - обращение не найдено в ленте
	ErrIssueNotFound = errors.New("issue not found")
	// ErrStaleResponse - результат устарел, пока выполнялся запрос
	ErrStaleResponse = errors.New("stale response")
)
