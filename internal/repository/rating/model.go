package rating

import (
	"time"

	"github.com/google/uuid"
)

type RatingDB struct {
	ID        uuid.UUID
	RaterID   string
	RateeID   string
	RateeRole string
	Score     int
	Feedback  string
	OrderID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
