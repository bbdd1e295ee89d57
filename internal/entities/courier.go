package entities

import (
	"time"
)

type Courier struct {
	ID            string
	Name          string
	Phone         string
	Status        CourierStatusType
	TransportType CourierTransportType

	ActiveAssignments  int
	TotalDeliveries    int
	Rating             float64
	AvgDeliveryMinutes float64
	Location           *Location

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CourierTransportType string

const (
	OnFoot  CourierTransportType = "on_foot"
	Scooter CourierTransportType = "scooter"
	Car     CourierTransportType = "car"
)

const DefaultTransportType = OnFoot

func (t CourierTransportType) String() string {
	return string(t)
}

type CourierStatusType string

const (
	CourierAvailable CourierStatusType = "available"
	CourierBusy      CourierStatusType = "busy"
	CourierOffline   CourierStatusType = "offline"
)

const DefaultStatusType = CourierAvailable

func (t CourierStatusType) String() string {
	return string(t)
}

type CourierModify struct {
	ID            *string
	Name          *string
	Phone         *string
	Status        *CourierStatusType
	TransportType *CourierTransportType
	Location      *Location
}

// CourierRelease освобождение курьера от заказа. Completed=true только при подтвержденной доставке,
// тогда растет счетчик доставок и пересчитывается среднее время доставки.
type CourierRelease struct {
	CourierID       string
	Completed       bool
	DeliveryMinutes float64
}

// Candidate курьер-кандидат на заказ с расстоянием до продавца (nil если координаты неизвестны).
type Candidate struct {
	Courier    Courier
	DistanceKm *float64
}

// LeaderboardEntry позиция курьера в рейтинге.
type LeaderboardEntry struct {
	Rank    int
	Courier Courier
	Score   float64
}

// PerformanceScore rating*20 + deliveries*2 - avgDeliveryMinutes.
func (c Courier) PerformanceScore() float64 {
	return c.Rating*20 + float64(c.TotalDeliveries)*2 - c.AvgDeliveryMinutes
}
