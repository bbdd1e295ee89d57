package catalog

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/entities"
	retrierconfig "fulfillment/pkg/retrier"
	"fulfillment/pkg/retrier/backoff_adapter"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	serviceName = "catalog-service"

	methodGetSeller   = "/catalog.v1.CatalogService/GetSeller"
	methodGetProducts = "/catalog.v1.CatalogService/GetProducts"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type CatalogGateway struct {
	client         client
	retrier        retrier
	requestTimeout time.Duration
}

func New(client client, requestTimeout time.Duration) *CatalogGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &CatalogGateway{
		client:         client,
		retrier:        backoff_adapter.New(retryConfig),
		requestTimeout: requestTimeout,
	}
}

func (c *CatalogGateway) GetSeller(ctx context.Context, sellerID string) (*entities.Seller, error) {
	req, err := sellerRequest(sellerID)
	if err != nil {
		return nil, fmt.Errorf("gateway catalog, build seller request: %w", err)
	}

	resp := &structpb.Struct{}
	err = c.executeWithMetrics(ctx, "GetSeller", func(ctx context.Context) error {
		return c.client.Invoke(ctx, methodGetSeller, req, resp)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s", entities.ErrSellerNotFound, sellerID)
		}
		return nil, fmt.Errorf("gateway catalog, get seller: %s: %w", sellerID, err)
	}

	seller, err := toSeller(resp)
	if err != nil {
		return nil, fmt.Errorf("gateway catalog, get seller: %s: %w", sellerID, err)
	}
	return seller, nil
}

// GetProducts возвращает найденные товары. Отсутствующие id не ошибка,
// их проверяет вызывающий.
func (c *CatalogGateway) GetProducts(ctx context.Context, productIDs []string) ([]entities.Product, error) {
	if len(productIDs) == 0 {
		return []entities.Product{}, nil
	}

	req, err := productsRequest(productIDs)
	if err != nil {
		return nil, fmt.Errorf("gateway catalog, build products request: %w", err)
	}

	resp := &structpb.Struct{}
	err = c.executeWithMetrics(ctx, "GetProducts", func(ctx context.Context) error {
		return c.client.Invoke(ctx, methodGetProducts, req, resp)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %v", entities.ErrProductNotFound, productIDs)
		}
		return nil, fmt.Errorf("gateway catalog, get products: %w", err)
	}

	products, err := toProducts(resp)
	if err != nil {
		return nil, fmt.Errorf("gateway catalog, get products: %w", err)
	}
	return products, nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

// executeWithMetrics каждая попытка со своим таймаутом, общий бюджет ограничен ретраером.
func (c *CatalogGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := c.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		if c.requestTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, c.requestTimeout)
			defer cancel()
		}
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
