package rest

import (
	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"

	"github.com/google/uuid"
)

type (
	RatingCreateRequest = dto.RatingCreateRequest
	RatingEditRequest   = dto.RatingEditRequest
	Rating              = dto.Rating
	RatingResult        = dto.RatingResult
)

func RatingCreateToDomain(r RatingCreateRequest) entities.RatingCreate {
	return entities.RatingCreate{
		OrderID:  r.OrderID,
		RateeID:  r.RateeID,
		Score:    r.Score,
		Feedback: r.Feedback,
	}
}

func RatingEditToDomain(r RatingEditRequest, id uuid.UUID) entities.RatingEdit {
	return entities.RatingEdit{
		ID:       id,
		Score:    r.Score,
		Feedback: r.Feedback,
	}
}

func RatingResultFromDomain(r *entities.RatingResult) RatingResult {
	return RatingResult{
		Rating: Rating{
			ID:        r.Rating.ID,
			OrderID:   r.Rating.OrderID,
			RaterID:   r.Rating.RaterID,
			RateeID:   r.Rating.RateeID,
			RateeRole: r.Rating.RateeRole.String(),
			Score:     r.Rating.Score,
			Feedback:  r.Rating.Feedback,
			CreatedAt: r.Rating.CreatedAt,
			UpdatedAt: r.Rating.UpdatedAt,
		},
		NewAverage: r.NewAverage,
	}
}
