package rating

import "fulfillment/internal/entities"

func ToDomain(r *RatingDB) *entities.Rating {
	if r == nil {
		return nil
	}
	return &entities.Rating{
		ID:        r.ID,
		RaterID:   r.RaterID,
		RateeID:   r.RateeID,
		RateeRole: entities.Role(r.RateeRole),
		Score:     r.Score,
		Feedback:  r.Feedback,
		OrderID:   r.OrderID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func FromDomain(r *entities.Rating) *RatingDB {
	if r == nil {
		return nil
	}
	return &RatingDB{
		ID:        r.ID,
		RaterID:   r.RaterID,
		RateeID:   r.RateeID,
		RateeRole: r.RateeRole.String(),
		Score:     r.Score,
		Feedback:  r.Feedback,
		OrderID:   r.OrderID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
