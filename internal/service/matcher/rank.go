package matcher

import (
	"sort"

	"fulfillment/internal/entities"
	"fulfillment/pkg/geo"
)

// Rank оставляет только свободных курьеров и сортирует их по расстоянию до продавца.
// Курьеры без координат и все курьеры заказа без координат продавца идут в исходном порядке.
func Rank(order *entities.Order, couriers []entities.Courier) []entities.Candidate {
	candidates := make([]entities.Candidate, 0, len(couriers))
	for _, c := range couriers {
		if c.Status != entities.CourierAvailable {
			continue
		}
		candidates = append(candidates, entities.Candidate{
			Courier:    c,
			DistanceKm: entities.DistanceKm(c.Location, order.SellerLocation),
		})
	}

	if order.SellerLocation == nil {
		return candidates
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i].DistanceKm, candidates[j].DistanceKm
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})

	return candidates
}

// ApplyAssignment проставляет курьера в копию заказа и пересчитывает ETA:
// путь курьера до продавца плюс путь до покупателя.
func ApplyAssignment(order *entities.Order, courier entities.Courier) *entities.Order {
	assigned := order.Clone()

	assigned.CourierID = &courier.ID
	assigned.CourierName = &courier.Name
	assigned.CourierLocation = nil
	if courier.Location != nil {
		loc := *courier.Location
		assigned.CourierLocation = &loc
	}

	etaToSeller := 0
	if d := entities.DistanceKm(courier.Location, order.SellerLocation); d != nil {
		etaToSeller = geo.EtaMinutes(*d)
	}

	etaToBuyer := entities.DefaultBuyerLegEtaMinutes
	if order.EtaToBuyerMinutes != nil {
		etaToBuyer = *order.EtaToBuyerMinutes
	}

	eta := etaToSeller + etaToBuyer
	assigned.EtaMinutes = &eta

	if assigned.Status == entities.OrderPending {
		assigned.Status = entities.OrderAssigned
	}

	return assigned
}
