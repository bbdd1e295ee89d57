package rest

import (
	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
)

type (
	Courier          = dto.Courier
	LeaderboardEntry = dto.LeaderboardEntry
	// CourierModifyRequest тело POST /courier и PUT /courier/{id}, отсутствующие поля не меняются.
	CourierModifyRequest = dto.CourierModifyRequest
)

func CourierFromDomain(c *entities.Courier) Courier {
	return Courier{
		ID:                 c.ID,
		Name:               c.Name,
		Phone:              c.Phone,
		Status:             c.Status.String(),
		TransportType:      c.TransportType.String(),
		ActiveAssignments:  c.ActiveAssignments,
		TotalDeliveries:    c.TotalDeliveries,
		Rating:             c.Rating,
		AvgDeliveryMinutes: c.AvgDeliveryMinutes,
		Location:           LocationFromDomain(c.Location),
	}
}

func CouriersFromDomain(couriers []entities.Courier) []Courier {
	result := make([]Courier, 0, len(couriers))
	for i := range couriers {
		result = append(result, CourierFromDomain(&couriers[i]))
	}
	return result
}

func CourierModifyToDomain(r CourierModifyRequest) entities.CourierModify {
	m := entities.CourierModify{
		ID:       r.ID,
		Name:     r.Name,
		Phone:    r.Phone,
		Location: LocationToDomain(r.Location),
	}
	if r.Status != nil {
		status := entities.CourierStatusType(*r.Status)
		m.Status = &status
	}
	if r.TransportType != nil {
		transport := entities.CourierTransportType(*r.TransportType)
		m.TransportType = &transport
	}
	return m
}

func LeaderboardFromDomain(entries []entities.LeaderboardEntry) []LeaderboardEntry {
	result := make([]LeaderboardEntry, 0, len(entries))
	for i := range entries {
		result = append(result, LeaderboardEntry{
			Rank:    entries[i].Rank,
			Courier: CourierFromDomain(&entries[i].Courier),
			Score:   entries[i].Score,
		})
	}
	return result
}
