package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRatingScore    = 1
	MaxRatingScore    = 5
	MaxFeedbackLength = 500
	RatingEditWindow  = 24 * time.Hour
)

type Rating struct {
	ID        uuid.UUID
	RaterID   string
	RateeID   string
	RateeRole Role
	Score     int
	Feedback  string
	OrderID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RatingCreate struct {
	OrderID  uuid.UUID
	RateeID  string
	Score    int
	Feedback string
}

type RatingEdit struct {
	ID       uuid.UUID
	Score    int
	Feedback string
}

// Reputation агрегат оценок участника в конкретной роли.
type Reputation struct {
	RateeID     string
	Role        Role
	RatingSum   int64
	RatingCount int64
}

func (r Reputation) Average() float64 {
	if r.RatingCount == 0 {
		return 0
	}
	return float64(r.RatingSum) / float64(r.RatingCount)
}

type RatingResult struct {
	Rating     Rating
	NewAverage float64
}
