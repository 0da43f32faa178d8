package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Inbound ports: what the transport layer asks of the core.

type CatalogReader interface {
	ListProducts(context.Context, domain.CatalogFilter) ([]domain.Product, error)
	ListFacets(context.Context) (domain.CatalogFacets, error)
}

type OrderPlacer interface {
	PlaceOrder(context.Context, domain.OrderRequest) (orderID string, err error)
}

// Outbound ports: what the core asks of its adapters.

type ProductsStorage interface {
	ReadProducts(context.Context, domain.CatalogFilter) ([]domain.Product, error)
	ReadFacets(context.Context) (domain.CatalogFacets, error)
}

type OrdersStorage interface {
	StoreOrder(context.Context, domain.Order) error
}

type OrderEventsProducer interface {
	ProduceOrderPlaced(context.Context, domain.Order) error
}

// Client-session ports: what the cart and checkout core ask of the
// session's collaborators.

// OrderSubmitter performs the one outbound call of a checkout
// submission against the order service.
type OrderSubmitter interface {
	SubmitOrder(context.Context, domain.OrderRequest) (orderID string, err error)
}

// Notifier receives the semantic cart and checkout events. The
// presentation layer owns message text and styling.
type Notifier interface {
	ItemAdded(productName string)
	QuantityIncreased(productName string)
	ItemRemoved()
	CartCleared()
	OrderPlaced(orderID string)
	OrderFailed()
	ValidationFailed(reason string)
}
