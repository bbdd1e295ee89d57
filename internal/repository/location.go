package repository

import "fulfillment/internal/entities"

// LocationToDB координаты хранятся парой nullable колонок lat/lon.
func LocationToDB(loc *entities.Location) (lat, lon *float64) {
	if loc == nil {
		return nil, nil
	}
	return &loc.Lat, &loc.Lon
}

func LocationFromDB(lat, lon *float64) *entities.Location {
	if lat == nil || lon == nil {
		return nil
	}
	return &entities.Location{Lat: *lat, Lon: *lon}
}
