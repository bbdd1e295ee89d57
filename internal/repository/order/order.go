package order

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, buyer_id, buyer_name, seller_id, seller_name, courier_id, courier_name,
	total::text, status, pickup_code, delivery_code, pickup_confirmed, delivery_confirmed,
	pickup_time, delivery_time, seller_lat, seller_lon, buyer_lat, buyer_lon, courier_lat, courier_lon,
	eta_to_buyer_minutes, eta_minutes, notes, version, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create пишет заказ и его позиции. Позиции уходят одной пачкой после строки заказа.
func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) error {
	orderModel, itemModels := FromDomain(&orderEntity)

	query, args, err := qb.Insert("orders").
		SetMap(map[string]any{
			"id":                   orderModel.ID,
			"buyer_id":             orderModel.BuyerID,
			"buyer_name":           orderModel.BuyerName,
			"seller_id":            orderModel.SellerID,
			"seller_name":          orderModel.SellerName,
			"courier_id":           orderModel.CourierID,
			"courier_name":         orderModel.CourierName,
			"total":                sq.Expr("?::numeric", orderModel.Total),
			"status":               orderModel.Status,
			"pickup_code":          orderModel.PickupCode,
			"delivery_code":        orderModel.DeliveryCode,
			"pickup_confirmed":     orderModel.PickupConfirmed,
			"delivery_confirmed":   orderModel.DeliveryConfirmed,
			"pickup_time":          orderModel.PickupTime,
			"delivery_time":        orderModel.DeliveryTime,
			"seller_lat":           orderModel.SellerLat,
			"seller_lon":           orderModel.SellerLon,
			"buyer_lat":            orderModel.BuyerLat,
			"buyer_lon":            orderModel.BuyerLon,
			"courier_lat":          orderModel.CourierLat,
			"courier_lon":          orderModel.CourierLon,
			"eta_to_buyer_minutes": orderModel.EtaToBuyerMinutes,
			"eta_minutes":          orderModel.EtaMinutes,
			"notes":                orderModel.Notes,
			"version":              orderModel.Version,
			"created_at":           orderModel.CreatedAt,
			"updated_at":           orderModel.UpdatedAt,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return fmt.Errorf("%w: order %s already exists", entities.ErrConcurrentModification, orderModel.ID)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return entities.ErrCourierNotFound
		}
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return r.createItems(ctx, itemModels)
}

func (r *Repository) createItems(ctx context.Context, items []OrderItemDB) error {
	if len(items) == 0 {
		return nil
	}

	query := `INSERT INTO order_items (order_id, position, product_id, product_name, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6::numeric)`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.OrderID, item.Position, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice)
	}

	results := r.querier.SendBatch(ctx, batch)
	for range items {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("unexpected order repository create items error: %w", err)
		}
	}

	if err := results.Close(); err != nil {
		return fmt.Errorf("unexpected order repository create items error: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	items, err := r.getItems(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderModel, items)
}

func (r *Repository) getItems(ctx context.Context, orderID uuid.UUID) ([]OrderItemDB, error) {
	query := `SELECT order_id, position, product_id, product_name, quantity, unit_price::text
		FROM order_items
		WHERE order_id = $1
		ORDER BY position`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}
	defer rows.Close()

	items := make([]OrderItemDB, 0, 4)
	for rows.Next() {
		var item OrderItemDB
		err := rows.Scan(
			&item.OrderID,
			&item.Position,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}
	return items, nil
}

// partyColumn колонка, по которой роль видит свои заказы. Админ видит все.
func partyColumn(role entities.Role) (string, bool) {
	switch role {
	case entities.RoleBuyer:
		return "buyer_id", true
	case entities.RoleSeller:
		return "seller_id", true
	case entities.RoleCourier:
		return "courier_id", true
	default:
		return "", false
	}
}

// ListByParty заказы участника от новых к старым. Позиции догружаются одним запросом.
func (r *Repository) ListByParty(
	ctx context.Context,
	actor entities.Actor,
	status *entities.OrderStatus,
	limit uint64,
) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("orders").
		OrderBy("created_at DESC", "id").
		Limit(limit)

	if column, ok := partyColumn(actor.Role); ok {
		builder = builder.Where(sq.Eq{column: actor.ID})
	} else if !actor.IsAdmin() {
		return []entities.Order{}, nil
	}
	if status != nil {
		builder = builder.Where(sq.Eq{"status": status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	models := make([]OrderDB, 0, min(limit, 64))
	ids := make([]uuid.UUID, 0, min(limit, 64))
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		models = append(models, m)
		ids = append(ids, m.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	rows.Close()

	items, err := r.getItemsByOrders(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(models))
	for i := range models {
		o, err := ToDomain(&models[i], items[models[i].ID])
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	return result, nil
}

func (r *Repository) getItemsByOrders(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]OrderItemDB, error) {
	result := make(map[uuid.UUID][]OrderItemDB, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	query, args, err := qb.
		Select("order_id", "position", "product_id", "product_name", "quantity", "unit_price::text").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemDB
		err := rows.Scan(
			&item.OrderID,
			&item.Position,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
		}
		result[item.OrderID] = append(result[item.OrderID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}
	return result, nil
}

// Update условная запись перехода: строка меняется только если version и status
// совпадают с прочитанными. Позиции и сумма заказа неизменяемы.
func (r *Repository) Update(ctx context.Context, orderEntity entities.Order, expectedStatus entities.OrderStatus) (*entities.Order, error) {
	orderModel, _ := FromDomain(&orderEntity)

	query, args, err := qb.Update("orders").
		SetMap(map[string]any{
			"courier_id":           orderModel.CourierID,
			"courier_name":         orderModel.CourierName,
			"status":               orderModel.Status,
			"pickup_confirmed":     orderModel.PickupConfirmed,
			"delivery_confirmed":   orderModel.DeliveryConfirmed,
			"pickup_time":          orderModel.PickupTime,
			"delivery_time":        orderModel.DeliveryTime,
			"courier_lat":          orderModel.CourierLat,
			"courier_lon":          orderModel.CourierLon,
			"eta_to_buyer_minutes": orderModel.EtaToBuyerMinutes,
			"eta_minutes":          orderModel.EtaMinutes,
			"notes":                orderModel.Notes,
			"updated_at":           orderModel.UpdatedAt,
			"version":              sq.Expr("version + 1"),
		}).
		Where(sq.Eq{
			"id":      orderModel.ID,
			"version": orderModel.Version,
			"status":  expectedStatus.String(),
		}).
		Suffix("RETURNING version").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var version int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&version)
	if err == nil {
		updated := orderEntity.Clone()
		updated.Version = version
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, entities.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var exists bool
	err = r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, orderModel.ID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}
	if !exists {
		return nil, entities.ErrOrderNotFound
	}
	return nil, fmt.Errorf("%w: order %s changed since read", entities.ErrConcurrentModification, orderModel.ID)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.BuyerID,
		&o.BuyerName,
		&o.SellerID,
		&o.SellerName,
		&o.CourierID,
		&o.CourierName,
		&o.Total,
		&o.Status,
		&o.PickupCode,
		&o.DeliveryCode,
		&o.PickupConfirmed,
		&o.DeliveryConfirmed,
		&o.PickupTime,
		&o.DeliveryTime,
		&o.SellerLat,
		&o.SellerLon,
		&o.BuyerLat,
		&o.BuyerLon,
		&o.CourierLat,
		&o.CourierLon,
		&o.EtaToBuyerMinutes,
		&o.EtaMinutes,
		&o.Notes,
		&o.Version,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}
