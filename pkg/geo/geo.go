// Package geo считает расстояние по дуге большого круга и примерное время в пути курьера.
package geo

import "math"

const (
	EarthRadiusKm = 6371.0

	// AverageSpeedKmH средняя скорость курьера, по ней считается ETA.
	AverageSpeedKmH = 30.0
)

// DistanceKm расстояние между двумя точками по формуле гаверсинуса.
// Симметрична, никогда не возвращает отрицательное значение, для одинаковых точек 0.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	// погрешность float может увести a чуть за [0, 1]
	a = math.Min(1, math.Max(0, a))

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// EtaMinutes время в пути в минутах, округление вверх. 0 км -> 0 минут.
func EtaMinutes(distanceKm float64) int {
	if distanceKm <= 0 || math.IsNaN(distanceKm) {
		return 0
	}
	return int(math.Ceil(distanceKm / AverageSpeedKmH * 60))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
