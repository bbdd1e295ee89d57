package rating

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const ratingColumns = `id, rater_id, ratee_id, ratee_role, score, feedback, order_id, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, ratingEntity entities.Rating) error {
	ratingModel := FromDomain(&ratingEntity)
	query := `INSERT INTO ratings (` + ratingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.querier.Exec(
		ctx,
		query,
		ratingModel.ID,
		ratingModel.RaterID,
		ratingModel.RateeID,
		ratingModel.RateeRole,
		ratingModel.Score,
		ratingModel.Feedback,
		ratingModel.OrderID,
		ratingModel.CreatedAt,
		ratingModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return entities.ErrDuplicateRating
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return entities.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected rating repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE id = $1`

	ratingModel, err := scanRating(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRatingNotFound
		}
		return nil, fmt.Errorf("unexpected rating repository getbyid error: %w", err)
	}

	return ToDomain(&ratingModel), nil
}

// UpdateScore меняет оценку только если в базе все еще expectedScore, иначе
// дельта для агрегата посчитана по устаревшему значению.
func (r *Repository) UpdateScore(
	ctx context.Context,
	edit entities.RatingEdit,
	expectedScore int,
	updatedAt time.Time,
) (*entities.Rating, error) {
	query := `UPDATE ratings
		SET score = $2,
			feedback = $3,
			updated_at = $4
		WHERE id = $1 AND score = $5
		RETURNING ` + ratingColumns

	ratingModel, err := scanRating(r.querier.QueryRow(ctx, query, edit.ID, edit.Score, edit.Feedback, updatedAt, expectedScore))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: rating %s changed since read", entities.ErrConcurrentModification, edit.ID)
		}
		return nil, fmt.Errorf("unexpected rating repository update score error: %w", err)
	}

	return ToDomain(&ratingModel), nil
}

func scanRating(row pgx.Row) (RatingDB, error) {
	var m RatingDB
	err := row.Scan(
		&m.ID,
		&m.RaterID,
		&m.RateeID,
		&m.RateeRole,
		&m.Score,
		&m.Feedback,
		&m.OrderID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}
