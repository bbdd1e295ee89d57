package courier

import "time"

type CourierDB struct {
	ID                 string
	Name               string
	Phone              string
	Status             string
	TransportType      string
	ActiveAssignments  int
	TotalDeliveries    int
	Rating             float64
	AvgDeliveryMinutes float64
	Lat                *float64
	Lon                *float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type CourierModifyDB struct {
	ID            *string
	Name          *string
	Phone         *string
	Status        *string
	TransportType *string
	Lat           *float64
	Lon           *float64
}
