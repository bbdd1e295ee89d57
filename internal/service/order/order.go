package order

import (
	"context"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/pkg/geo"
	"fulfillment/pkg/logger"

	"github.com/google/uuid"
)

const defaultListLimit = 50

// Service машина состояний заказа. Каждый переход выполняется как read-validate-write
// в одной транзакции вместе с побочными эффектами (эскроу, курьер, outbox).
type Service struct {
	orders    Repository
	outbox    OutboxRepository
	escrow    Escrow
	matcher   Matcher
	codes     CodeGenerator
	catalog   CatalogGateway
	txManager TxManager
	retrier   Retrier
	clock     Clock
	log       logger.Logger
}

func New(
	orders Repository,
	outbox OutboxRepository,
	escrow Escrow,
	matcher Matcher,
	codes CodeGenerator,
	catalog CatalogGateway,
	txManager TxManager,
	retrier Retrier,
	clock Clock,
	log logger.Logger,
) *Service {
	return &Service{
		orders:    orders,
		outbox:    outbox,
		escrow:    escrow,
		matcher:   matcher,
		codes:     codes,
		catalog:   catalog,
		txManager: txManager,
		retrier:   retrier,
		clock:     clock,
		log:       log.With(logger.NewField("component", "order")),
	}
}

type orderDraft struct {
	buyerID       string
	buyerName     string
	sellerID      string
	items         []entities.OrderItemRequest
	buyerLocation *entities.Location
	notes         string
}

// Checkout заказ покупателя, создается в статусе pending.
func (s *Service) Checkout(ctx context.Context, actor entities.Actor, req entities.Checkout) (*entities.Order, error) {
	if actor.Role != entities.RoleBuyer {
		return nil, fmt.Errorf("%w: checkout is available to buyers only", entities.ErrForbidden)
	}
	if !isValidID(req.SellerID) {
		return nil, ErrMissingSeller
	}
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}
	if !isValidLocation(req.BuyerLocation) {
		return nil, ErrInvalidCoordinate
	}

	return s.create(ctx, orderDraft{
		buyerID:       actor.ID,
		buyerName:     actor.Name,
		sellerID:      req.SellerID,
		items:         req.Items,
		buyerLocation: req.BuyerLocation,
		notes:         req.Notes,
	}, nil)
}

// CreateDelivery заказ от продавца. С указанным курьером заказ сразу создается assigned.
func (s *Service) CreateDelivery(ctx context.Context, actor entities.Actor, req entities.DeliveryCreate) (*entities.Order, error) {
	if actor.Role != entities.RoleSeller {
		return nil, fmt.Errorf("%w: deliveries are created by sellers only", entities.ErrForbidden)
	}
	if !isValidID(req.BuyerID) || !isValidID(req.BuyerName) {
		return nil, ErrMissingBuyer
	}
	if req.CourierID != nil && !isValidID(*req.CourierID) {
		return nil, ErrInvalidCourierID
	}
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}
	if !isValidLocation(req.BuyerLocation) {
		return nil, ErrInvalidCoordinate
	}

	return s.create(ctx, orderDraft{
		buyerID:       req.BuyerID,
		buyerName:     req.BuyerName,
		sellerID:      actor.ID,
		items:         req.Items,
		buyerLocation: req.BuyerLocation,
		notes:         req.Notes,
	}, req.CourierID)
}

func (s *Service) create(ctx context.Context, draft orderDraft, courierID *string) (*entities.Order, error) {
	// каталог читается один раз до транзакции, дальше заказ живет со снимком цен
	seller, items, err := s.snapshot(ctx, draft.sellerID, draft.items)
	if err != nil {
		return nil, err
	}

	order, err := s.newOrder(draft, seller, items)
	if err != nil {
		return nil, err
	}

	var created *entities.Order
	err = s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			next := order.Clone()
			if courierID != nil {
				assigned, err := s.matcher.Assign(ctx, next, *courierID)
				if err != nil {
					return err
				}
				next = assigned
			}

			err := s.orders.Create(ctx, *next)
			if err != nil {
				return fmt.Errorf("create order: %w", err)
			}

			_, err = s.escrow.Hold(ctx, next.ID, next.Total)
			if err != nil {
				return fmt.Errorf("hold payment: %w", err)
			}

			err = s.outbox.Add(ctx, entities.OrderTransition{
				ID:         uuid.New(),
				Event:      entities.EventOrderCreated,
				To:         next.Status,
				Order:      *next,
				OccurredAt: next.CreatedAt,
			})
			if err != nil {
				return fmt.Errorf("add outbox event: %w", err)
			}

			created = next
			return nil
		})
	})
	observeTransition(entities.EventOrderCreated, err)
	if err != nil {
		return nil, err
	}

	s.log.Info("order created",
		logger.NewField("order", created.ID.String()),
		logger.NewField("status", created.Status.String()),
		logger.NewField("total", created.Total.String()),
	)
	return created, nil
}

func (s *Service) snapshot(
	ctx context.Context,
	sellerID string,
	requested []entities.OrderItemRequest,
) (*entities.Seller, []entities.OrderItem, error) {
	seller, err := s.catalog.GetSeller(ctx, sellerID)
	if err != nil {
		return nil, nil, fmt.Errorf("get seller: %w", err)
	}

	ids := make([]string, 0, len(requested))
	for _, item := range requested {
		ids = append(ids, item.ProductID)
	}

	products, err := s.catalog.GetProducts(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("get products: %w", err)
	}

	byID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]entities.OrderItem, 0, len(requested))
	for _, item := range requested {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s", entities.ErrProductNotFound, item.ProductID)
		}
		if product.SellerID != seller.ID {
			return nil, nil, fmt.Errorf("%w: %s", ErrForeignProduct, item.ProductID)
		}
		if product.Price.IsNegative() {
			return nil, nil, fmt.Errorf("%w: %s costs %s", ErrInvalidPrice, item.ProductID, product.Price)
		}

		items = append(items, entities.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price.Round(2),
		})
	}

	return seller, items, nil
}

func (s *Service) newOrder(draft orderDraft, seller *entities.Seller, items []entities.OrderItem) (*entities.Order, error) {
	pickupCode, err := s.codes.PickupCode()
	if err != nil {
		return nil, fmt.Errorf("generate pickup code: %w", err)
	}
	deliveryCode, err := s.codes.DeliveryCode()
	if err != nil {
		return nil, fmt.Errorf("generate delivery code: %w", err)
	}

	now := s.clock.Now()
	order := &entities.Order{
		ID:             uuid.New(),
		BuyerID:        draft.buyerID,
		BuyerName:      draft.buyerName,
		SellerID:       seller.ID,
		SellerName:     seller.Name,
		Items:          items,
		Total:          entities.ItemsTotal(items),
		Status:         entities.OrderPending,
		PickupCode:     pickupCode,
		DeliveryCode:   deliveryCode,
		SellerLocation: seller.Location,
		BuyerLocation:  draft.buyerLocation,
		Notes:          draft.notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if d := entities.DistanceKm(seller.Location, draft.buyerLocation); d != nil {
		eta := geo.EtaMinutes(*d)
		order.EtaToBuyerMinutes = &eta
	}

	return order, nil
}

func (s *Service) Get(ctx context.Context, actor entities.Actor, orderID uuid.UUID) (*entities.Order, error) {
	if orderID == uuid.Nil {
		return nil, ErrInvalidOrderID
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !order.CanView(actor) {
		return nil, entities.ErrForbidden
	}

	return order, nil
}

// List заказы актора по его роли. Лимит ограничен defaultListLimit.
func (s *Service) List(ctx context.Context, actor entities.Actor, status *entities.OrderStatus, limit uint64) ([]entities.Order, error) {
	if status != nil && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if limit == 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	orders, err := s.orders.ListByParty(ctx, actor, status, limit)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *Service) GetPayment(ctx context.Context, actor entities.Actor, orderID uuid.UUID) (*entities.Payment, error) {
	if _, err := s.Get(ctx, actor, orderID); err != nil {
		return nil, err
	}

	payment, err := s.escrow.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return payment, nil
}

// Candidates свободные курьеры по удаленности от продавца. Доступно продавцу заказа и админу.
func (s *Service) Candidates(ctx context.Context, actor entities.Actor, orderID uuid.UUID) ([]entities.Candidate, error) {
	order, err := s.Get(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && order.SellerID != actor.ID {
		return nil, entities.ErrForbidden
	}
	if order.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: order is %s", entities.ErrInvalidTransition, order.Status)
	}

	candidates, err := s.matcher.Candidates(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("get candidates: %w", err)
	}
	return candidates, nil
}
