package courier

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"fulfillment/internal/entities"
)

const defaultLeaderboardSize = 10

type Courier struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Courier {
	return &Courier{
		repository: repository,
		txManager:  txManager,
	}
}

// CreateCourier регистрирует курьера. ID совпадает с идентификатором пользователя у identity провайдера.
func (s *Courier) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.ID == nil ||
		courierModify.Name == nil ||
		courierModify.Phone == nil ||
		courierModify.TransportType == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidID(*courierModify.ID) {
		return nil, ErrInvalidCourierID
	}

	if courierModify.Status == nil {
		status := entities.DefaultStatusType
		courierModify.Status = &status
	}

	if err := validateModify(courierModify); err != nil {
		return nil, err
	}

	courier, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("create courier: %w", err)
	}

	return courier, nil
}

// UpdateCourier меняет карточку курьера. Админ может менять любого курьера, курьер только себя.
// Статус нельзя менять пока у курьера есть активные заказы.
func (s *Courier) UpdateCourier(ctx context.Context, actor entities.Actor, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.ID == nil || !isValidID(*courierModify.ID) {
		return nil, ErrInvalidCourierID
	}
	if !actor.IsAdmin() && actor.ID != *courierModify.ID {
		return nil, fmt.Errorf("%w: couriers can update only themselves", entities.ErrForbidden)
	}

	if courierModify.Name == nil &&
		courierModify.Phone == nil &&
		courierModify.Status == nil &&
		courierModify.TransportType == nil &&
		courierModify.Location == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validateModify(courierModify); err != nil {
		return nil, err
	}

	var updated *entities.Courier
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if courierModify.Status != nil {
			current, err := s.repository.GetByID(ctx, *courierModify.ID)
			if err != nil {
				return err
			}
			if current.ActiveAssignments > 0 && current.Status != *courierModify.Status {
				return ErrCourierHasActiveOrders
			}
		}

		courier, err := s.repository.Update(ctx, courierModify)
		if err != nil {
			return err
		}
		updated = courier
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update courier: %w", err)
	}
	return updated, nil
}

func (s *Courier) GetCourier(ctx context.Context, id string) (*entities.Courier, error) {
	if !isValidID(id) {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return courier, nil
}

// GetCouriers весь ростер, при заданном status только курьеры в этом статусе.
func (s *Courier) GetCouriers(ctx context.Context, status *entities.CourierStatusType) ([]entities.Courier, error) {
	if status != nil && !isKnownStatus(*status) {
		return nil, ErrInvalidStatus
	}

	couriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}
	if status == nil {
		return couriers, nil
	}

	filtered := make([]entities.Courier, 0, len(couriers))
	for _, c := range couriers {
		if c.Status == *status {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *Courier) Leaderboard(ctx context.Context, limit int) ([]entities.LeaderboardEntry, error) {
	couriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return Leaderboard(couriers, limit), nil
}

// Leaderboard курьеры по убыванию PerformanceScore, при равенстве по ID. Ранги с 1.
func Leaderboard(couriers []entities.Courier, limit int) []entities.LeaderboardEntry {
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}

	sorted := append([]entities.Courier(nil), couriers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := sorted[i].PerformanceScore(), sorted[j].PerformanceScore()
		if si != sj {
			return si > sj
		}
		return sorted[i].ID < sorted[j].ID
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	entries := make([]entities.LeaderboardEntry, 0, len(sorted))
	for i, c := range sorted {
		entries = append(entries, entities.LeaderboardEntry{
			Rank:    i + 1,
			Courier: c,
			Score:   c.PerformanceScore(),
		})
	}
	return entries
}

func (s *Courier) RepairAvailability(ctx context.Context) (int64, error) {
	rowsAffected, err := s.repository.RepairAvailability(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("repair availability timed out: %w", err)
		}
		return 0, fmt.Errorf("repair availability: %w", err)
	}

	return rowsAffected, nil
}
