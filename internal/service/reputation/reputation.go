package reputation

import (
	"context"
	"fmt"
	"strings"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"

	"github.com/google/uuid"
)

// Service агрегирует оценки в средний рейтинг участника. Оценка и пересчет среднего
// пишутся в одной транзакции.
type Service struct {
	ratings   Repository
	profiles  ProfileRepository
	couriers  CourierRepository
	orders    OrderRepository
	txManager TxManager
	retrier   Retrier
	clock     Clock
	log       logger.Logger
}

func New(
	ratings Repository,
	profiles ProfileRepository,
	couriers CourierRepository,
	orders OrderRepository,
	txManager TxManager,
	retrier Retrier,
	clock Clock,
	log logger.Logger,
) *Service {
	return &Service{
		ratings:   ratings,
		profiles:  profiles,
		couriers:  couriers,
		orders:    orders,
		txManager: txManager,
		retrier:   retrier,
		clock:     clock,
		log:       log.With(logger.NewField("component", "reputation")),
	}
}

func (s *Service) RecordRating(ctx context.Context, actor entities.Actor, req entities.RatingCreate) (*entities.RatingResult, error) {
	if req.OrderID == uuid.Nil || strings.TrimSpace(req.RateeID) == "" {
		return nil, ErrMissingRatingRef
	}
	if err := validateScoreAndFeedback(req.Score, req.Feedback); err != nil {
		return nil, err
	}

	var result entities.RatingResult
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			order, err := s.orders.GetByID(ctx, req.OrderID)
			if err != nil {
				return fmt.Errorf("get order: %w", err)
			}

			if order.Status != entities.OrderDelivered {
				return fmt.Errorf("%w: order is %s, rating requires delivered", entities.ErrInvalidTransition, order.Status)
			}
			if order.Party(actor.ID) == "" {
				return fmt.Errorf("%w: actor is not a party of the order", entities.ErrForbidden)
			}

			rateeRole := order.Party(req.RateeID)
			if rateeRole == "" || req.RateeID == actor.ID {
				return ErrInvalidRatee
			}

			now := s.clock.Now()
			rating := entities.Rating{
				ID:        uuid.New(),
				RaterID:   actor.ID,
				RateeID:   req.RateeID,
				RateeRole: rateeRole,
				Score:     req.Score,
				Feedback:  req.Feedback,
				OrderID:   order.ID,
				CreatedAt: now,
				UpdatedAt: now,
			}

			err = s.ratings.Create(ctx, rating)
			if err != nil {
				return fmt.Errorf("create rating: %w", err)
			}

			average, err := s.applyScore(ctx, rating.RateeID, rating.RateeRole, int64(rating.Score), 1)
			if err != nil {
				return err
			}

			result = entities.RatingResult{
				Rating:     rating,
				NewAverage: average,
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("rating recorded",
		logger.NewField("order", result.Rating.OrderID.String()),
		logger.NewField("ratee", result.Rating.RateeID),
		logger.NewField("role", result.Rating.RateeRole.String()),
		logger.NewField("average", result.NewAverage),
	)
	return &result, nil
}

func (s *Service) EditRating(ctx context.Context, actor entities.Actor, edit entities.RatingEdit) (*entities.RatingResult, error) {
	if edit.ID == uuid.Nil {
		return nil, ErrMissingRatingRef
	}
	if err := validateScoreAndFeedback(edit.Score, edit.Feedback); err != nil {
		return nil, err
	}

	var result entities.RatingResult
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			rating, err := s.ratings.GetByID(ctx, edit.ID)
			if err != nil {
				return fmt.Errorf("get rating: %w", err)
			}

			if rating.RaterID != actor.ID {
				return fmt.Errorf("%w: only the rater can edit a rating", entities.ErrForbidden)
			}

			now := s.clock.Now()
			if now.Sub(rating.CreatedAt) > entities.RatingEditWindow {
				return fmt.Errorf("%w: rating created at %s", entities.ErrEditWindowExpired, rating.CreatedAt.Format("2006-01-02 15:04:05"))
			}

			updated, err := s.ratings.UpdateScore(ctx, edit, rating.Score, now)
			if err != nil {
				return fmt.Errorf("update rating: %w", err)
			}

			average, err := s.applyScore(ctx, rating.RateeID, rating.RateeRole, int64(edit.Score-rating.Score), 0)
			if err != nil {
				return err
			}

			result = entities.RatingResult{
				Rating:     *updated,
				NewAverage: average,
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// applyScore сдвигает сумму и количество оценок участника и возвращает новое среднее.
// Для курьера среднее дублируется в его карточку, по ней работает лидерборд.
func (s *Service) applyScore(ctx context.Context, rateeID string, role entities.Role, sumDelta, countDelta int64) (float64, error) {
	reputation, err := s.profiles.Apply(ctx, rateeID, role, sumDelta, countDelta)
	if err != nil {
		return 0, fmt.Errorf("apply reputation: %w", err)
	}

	average := reputation.Average()
	if role == entities.RoleCourier {
		err = s.couriers.SetRating(ctx, rateeID, average)
		if err != nil {
			return 0, fmt.Errorf("set courier rating: %w", err)
		}
	}

	return average, nil
}
