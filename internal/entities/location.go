package entities

import "fulfillment/pkg/geo"

type Location struct {
	Lat float64
	Lon float64
}

// DistanceKm nil если хотя бы одна из точек неизвестна.
func DistanceKm(from, to *Location) *float64 {
	if from == nil || to == nil {
		return nil
	}
	d := geo.DistanceKm(from.Lat, from.Lon, to.Lat, to.Lon)
	return &d
}
