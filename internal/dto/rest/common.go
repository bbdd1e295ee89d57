// Package rest конвертеры между доменом и моделями REST API из internal/generated/dto.
package rest

import (
	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
)

type (
	Location     = dto.Location
	Error        = dto.Error
	PingResponse = dto.PingResponse
)

func LocationToDomain(l *Location) *entities.Location {
	if l == nil {
		return nil
	}
	return &entities.Location{Lat: l.Lat, Lon: l.Lon}
}

func LocationFromDomain(l *entities.Location) *Location {
	if l == nil {
		return nil
	}
	return &Location{Lat: l.Lat, Lon: l.Lon}
}
