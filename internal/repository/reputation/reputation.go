package reputation

import (
	"context"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Apply атомарно сдвигает сумму и количество оценок участника в роли.
// Первая оценка создает строку агрегата.
func (r *Repository) Apply(
	ctx context.Context,
	rateeID string,
	role entities.Role,
	sumDelta, countDelta int64,
) (*entities.Reputation, error) {
	query := `INSERT INTO reputations (ratee_id, role, rating_sum, rating_count, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (ratee_id, role) DO UPDATE
		SET rating_sum = reputations.rating_sum + EXCLUDED.rating_sum,
			rating_count = reputations.rating_count + EXCLUDED.rating_count,
			updated_at = NOW()
		RETURNING ratee_id, role, rating_sum, rating_count`

	var (
		result entities.Reputation
		roleDB string
	)
	err := r.querier.QueryRow(ctx, query, rateeID, role.String(), sumDelta, countDelta).
		Scan(&result.RateeID, &roleDB, &result.RatingSum, &result.RatingCount)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, fmt.Errorf("%w: reputation of %s would become negative", entities.ErrConcurrentModification, rateeID)
		}
		return nil, fmt.Errorf("unexpected reputation repository apply error: %w", err)
	}
	result.Role = entities.Role(roleDB)

	return &result, nil
}
