package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CatalogReader = (*Service)(nil)
var _ port.OrderPlacer = (*Service)(nil)

type Service struct {
	products port.ProductsStorage
	orders   port.OrdersStorage
	events   port.OrderEventsProducer
}

func New(
	products port.ProductsStorage,
	orders port.OrdersStorage,
	events port.OrderEventsProducer,
) Service {
	return Service{products, orders, events}
}

func (s Service) ListProducts(
	ctx context.Context, f domain.CatalogFilter,
) ([]domain.Product, error) {
	const op = "Service.ListProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.products.ReadProducts(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s Service) ListFacets(
	ctx context.Context,
) (domain.CatalogFacets, error) {
	const op = "Service.ListFacets"

	if err := ctx.Err(); err != nil {
		return domain.CatalogFacets{}, fmt.Errorf("%s: %w", op, err)
	}

	facets, err := s.products.ReadFacets(ctx)
	if err != nil {
		return domain.CatalogFacets{}, fmt.Errorf("%s: %w", op, err)
	}
	return facets, nil
}

// PlaceOrder validates the request, persists a new order and announces
// it on the order-events stream. A failed announcement does not fail
// the accepted order.
func (s Service) PlaceOrder(
	ctx context.Context, req domain.OrderRequest,
) (string, error) {
	const op = "Service.PlaceOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := validateRequest(req); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	order := domain.Order{
		OrderID:     uuid.NewString(),
		FirstName:   req.Shipping.FirstName,
		LastName:    req.Shipping.LastName,
		Address:     req.Shipping.Address,
		Items:       req.Items,
		TotalAmount: req.TotalAmount,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.orders.StoreOrder(ctx, order); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := s.events.ProduceOrderPlaced(ctx, order); err != nil {
		log.Error("failed to produce order event", "err", err)
	}

	log.Info("order placed",
		"orderID", order.OrderID,
		"customer", order.FirstName+" "+order.LastName,
		"items", len(order.Items),
		"totalAmount", order.TotalAmount.String(),
	)
	return order.OrderID, nil
}

func validateRequest(req domain.OrderRequest) error {
	if strings.TrimSpace(req.Shipping.FirstName) == "" ||
		strings.TrimSpace(req.Shipping.LastName) == "" ||
		strings.TrimSpace(req.Shipping.Address) == "" {
		return domain.ErrShippingRequired
	}
	if len(req.Items) == 0 {
		return domain.ErrEmptyOrder
	}
	return nil
}
