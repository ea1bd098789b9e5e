// Package geo содержит чистые геометрические функции: расстояние по большой окружности,
// оценку времени в пути и шаг приближения точки к цели.
package geo

import (
	"fmt"
	"math"
)

const (
	EarthRadiusKm = 6371.0

	// minutesPerKm соответствует средней скорости 20 км/ч.
	minutesPerKm = 3.0
)

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

func (p Point) String() string {
	return FormatCoordinates(p)
}

// HaversineKm возвращает расстояние между точками в километрах.
func HaversineKm(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DistanceKm считает расстояние только когда обе точки заданы, иначе возвращает 0.
// Ноль здесь не означает совпадение точек, вызывающий проверяет наличие координат сам.
func DistanceKm(a, b *Point) float64 {
	if a == nil || b == nil {
		return 0
	}
	return HaversineKm(*a, *b)
}

func EstimateEtaMinutes(distanceKm float64) int {
	return int(math.Ceil(distanceKm * minutesPerKm))
}

// StepToward сдвигает from в сторону to на долю factor оставшегося вектора.
func StepToward(from, to Point, factor float64) Point {
	return Point{
		Lat: from.Lat + (to.Lat-from.Lat)*factor,
		Lng: from.Lng + (to.Lng-from.Lng)*factor,
	}
}

func Offset(p Point, dLat, dLng float64) Point {
	return Point{Lat: p.Lat + dLat, Lng: p.Lng + dLng}
}

// FormatCoordinates используется как адрес, когда обратное геокодирование недоступно.
func FormatCoordinates(p Point) string {
	return fmt.Sprintf("%.6f, %.6f", p.Lat, p.Lng)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
