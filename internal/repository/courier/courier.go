package courier

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = `id, name, phone, status, transport_type, active_assignments, total_deliveries,
	rating, avg_delivery_minutes, lat, lon, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanCourier(row scanner) (CourierDB, error) {
	var courierModel CourierDB
	err := row.Scan(
		&courierModel.ID,
		&courierModel.Name,
		&courierModel.Phone,
		&courierModel.Status,
		&courierModel.TransportType,
		&courierModel.ActiveAssignments,
		&courierModel.TotalDeliveries,
		&courierModel.Rating,
		&courierModel.AvgDeliveryMinutes,
		&courierModel.Lat,
		&courierModel.Lon,
		&courierModel.CreatedAt,
		&courierModel.UpdatedAt,
	)
	return courierModel, err
}

func (r *Repository) Create(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)
	query := `INSERT INTO couriers (id, name, phone, status, transport_type, lat, lon)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + courierColumns

	courierModel, err := scanCourier(r.querier.QueryRow(
		ctx,
		query,
		courierModifyModel.ID,
		courierModifyModel.Name,
		courierModifyModel.Phone,
		courierModifyModel.Status,
		courierModifyModel.TransportType,
		courierModifyModel.Lat,
		courierModifyModel.Lon,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, entities.ErrCourierConflict
		}
		return nil, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	builder := qb.
		Update("couriers")

	// опционнные поля
	if courierModifyModel.Name != nil {
		builder = builder.Set("name", courierModifyModel.Name)
	}
	if courierModifyModel.Phone != nil {
		builder = builder.Set("phone", courierModifyModel.Phone)
	}
	if courierModifyModel.Status != nil {
		builder = builder.Set("status", courierModifyModel.Status)
	}
	if courierModifyModel.TransportType != nil {
		builder = builder.Set("transport_type", courierModifyModel.TransportType)
	}
	if courierModifyModel.Lat != nil && courierModifyModel.Lon != nil {
		builder = builder.
			Set("lat", courierModifyModel.Lat).
			Set("lon", courierModifyModel.Lon)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": courierModifyModel.ID}).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCourierNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, entities.ErrCourierConflict
		}

		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE id = $1`

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Courier, error) {
	return r.list(ctx, "getall", qb.Select(courierColumns).From("couriers").OrderBy("id"))
}

// GetAvailable курьеры в статусе available в порядке регистрации id.
func (r *Repository) GetAvailable(ctx context.Context) ([]entities.Courier, error) {
	return r.list(ctx, "getavailable", qb.
		Select(courierColumns).
		From("couriers").
		Where(sq.Eq{"status": entities.CourierAvailable.String()}).
		OrderBy("id"))
}

func (r *Repository) list(ctx context.Context, op string, builder sq.SelectBuilder) ([]entities.Courier, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository %s error: %w", op, err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository %s error: %w", op, err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		courierModel, err := scanCourier(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository %s error: %w", op, err)
		}
		courierModels = append(courierModels, courierModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository %s error: %w", op, err)
	}

	return ToDomainList(courierModels), nil
}

// Reserve условный перевод available -> busy. Ноль строк означает что курьер пропал
// или его уже занял конкурентный запрос.
func (r *Repository) Reserve(ctx context.Context, courierID string) (*entities.Courier, error) {
	query := `UPDATE couriers
		SET status = 'busy',
			active_assignments = active_assignments + 1,
			updated_at = NOW()
		WHERE id = $1 AND status = 'available'
		RETURNING ` + courierColumns

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, courierID))
	if err == nil {
		return ToDomain(&courierModel), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected courier repository reserve error: %w", err)
	}

	exists, err := r.exists(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository reserve error: %w", err)
	}
	if !exists {
		return nil, entities.ErrCourierNotFound
	}
	return nil, entities.ErrCourierUnavailable
}

// Release снимает одно назначение. При нуле активных назначений busy -> available,
// при завершенной доставке пересчитывается скользящее среднее времени доставки.
func (r *Repository) Release(ctx context.Context, release entities.CourierRelease) (*entities.Courier, error) {
	query := `UPDATE couriers
		SET active_assignments = GREATEST(active_assignments - 1, 0),
			status = CASE
				WHEN active_assignments <= 1 AND status = 'busy' THEN 'available'
				ELSE status
			END,
			avg_delivery_minutes = CASE
				WHEN $2::boolean THEN (avg_delivery_minutes * total_deliveries + $3::double precision) / (total_deliveries + 1)
				ELSE avg_delivery_minutes
			END,
			total_deliveries = total_deliveries + CASE WHEN $2::boolean THEN 1 ELSE 0 END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + courierColumns

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, release.CourierID, release.Completed, release.DeliveryMinutes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository release error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) SetRating(ctx context.Context, courierID string, rating float64) error {
	query := `UPDATE couriers SET rating = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, courierID, rating)
	if err != nil {
		return fmt.Errorf("unexpected courier repository set rating error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entities.ErrCourierNotFound
	}
	return nil
}

// RepairAvailability busy без активных назначений возможен только после ручных правок в БД.
func (r *Repository) RepairAvailability(ctx context.Context) (int64, error) {
	query := `UPDATE couriers
		SET status = 'available',
			updated_at = NOW()
		WHERE status = 'busy' AND active_assignments = 0`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected courier repository repair availability error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) exists(ctx context.Context, courierID string) (bool, error) {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM couriers WHERE id = $1)`, courierID).Scan(&exists)
	return exists, err
}
