package geo

import (
	"errors"
	"fmt"
	"math"
)

const (
	feetPerMile       = 5280.0
	milesPerDegreeLat = 69.0
	earthRadiusMiles  = 3958.8
)

var (
	// ErrInvalidBoundingBox - прямоугольник вырожден или не может быть построен
	ErrInvalidBoundingBox = errors.New("invalid bounding box")
	// ErrNonFiniteDistance - расстояние не определено (NaN/Inf во входных данных)
	ErrNonFiniteDistance = errors.New("distance is not finite")
)

// Coordinate - точка в градусах широты и долготы
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid проверяет, что координата конечна и лежит в допустимых диапазонах
func (c Coordinate) Valid() bool {
	if !isFinite(c.Lat) || !isFinite(c.Lng) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// BoundingBox - прямоугольник в координатах, используемый для предварительного отбора на стороне API
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// Validate проверяет инвариант min < max по обеим осям
func (b BoundingBox) Validate() error {
	for _, v := range []float64{b.MinLat, b.MinLng, b.MaxLat, b.MaxLng} {
		if !isFinite(v) {
			return fmt.Errorf("%w: non-finite edge", ErrInvalidBoundingBox)
		}
	}
	if b.MinLat >= b.MaxLat {
		return fmt.Errorf("%w: min_lat %v >= max_lat %v", ErrInvalidBoundingBox, b.MinLat, b.MaxLat)
	}
	if b.MinLng >= b.MaxLng {
		return fmt.Errorf("%w: min_lng %v >= max_lng %v", ErrInvalidBoundingBox, b.MinLng, b.MaxLng)
	}
	return nil
}

// Center возвращает центр прямоугольника
func (b BoundingBox) Center() Coordinate {
	return Coordinate{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lng: (b.MinLng + b.MaxLng) / 2,
	}
}

// Contains сообщает, лежит ли точка строго внутри прямоугольника
func (b BoundingBox) Contains(c Coordinate) bool {
	return c.Lat > b.MinLat && c.Lat < b.MaxLat && c.Lng > b.MinLng && c.Lng < b.MaxLng
}

// BoundingBoxFromCenter строит прямоугольник вокруг точки по радиусу в футах.
// Используется плоское приближение: 1° широты ≈ 69 миль, 1° долготы ≈ 69·cos(lat) миль.
// На полюсах cos(lat) = 0 и прямоугольник не определен.
func BoundingBoxFromCenter(center Coordinate, radiusFeet float64) (BoundingBox, error) {
	if !center.Valid() || math.Abs(center.Lat) >= 90 {
		return BoundingBox{}, fmt.Errorf("%w: center (%v, %v) out of range", ErrInvalidBoundingBox, center.Lat, center.Lng)
	}
	radiusMiles := radiusFeet / feetPerMile
	milesPerDegreeLng := milesPerDegreeLat * math.Cos(center.Lat*math.Pi/180)

	latDelta := radiusMiles / milesPerDegreeLat
	lngDelta := radiusMiles / milesPerDegreeLng

	box := BoundingBox{
		MinLat: center.Lat - latDelta,
		MinLng: center.Lng - lngDelta,
		MaxLat: center.Lat + latDelta,
		MaxLng: center.Lng + lngDelta,
	}
	if err := box.Validate(); err != nil {
		return BoundingBox{}, fmt.Errorf("center (%v, %v) radius %v ft: %w", center.Lat, center.Lng, radiusFeet, err)
	}
	return box, nil
}

// BoundingBoxFromRectangle переводит углы нарисованного пользователем прямоугольника в BoundingBox
func BoundingBoxFromRectangle(southWest, northEast Coordinate) (BoundingBox, error) {
	box := BoundingBox{
		MinLat: southWest.Lat,
		MinLng: southWest.Lng,
		MaxLat: northEast.Lat,
		MaxLng: northEast.Lng,
	}
	if err := box.Validate(); err != nil {
		return BoundingBox{}, err
	}
	return box, nil
}

// DistanceFeet считает расстояние по большому кругу (haversine) в футах
func DistanceFeet(a, b Coordinate) (float64, error) {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)
	startLat := toRadians(a.Lat)
	endLat := toRadians(b.Lat)

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(startLat)*math.Cos(endLat)*math.Pow(math.Sin(dLng/2), 2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	d := earthRadiusMiles * c * feetPerMile
	if !isFinite(d) {
		return 0, ErrNonFiniteDistance
	}
	return d, nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
