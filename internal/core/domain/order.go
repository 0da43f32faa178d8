package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOrder = errors.New("invalid order")

	ErrShippingRequired = fmt.Errorf(
		"%w: first name, last name, and address are required", ErrInvalidOrder,
	)
	ErrEmptyOrder = fmt.Errorf("%w: cart cannot be empty", ErrInvalidOrder)
)

type (
	ShippingInfo struct {
		FirstName string
		LastName  string
		Address   string
	}

	OrderItem struct {
		ProductID string
		Quantity  int
	}

	// An OrderRequest is the immutable snapshot handed to the order
	// service at submission time. Items carry (product id, quantity)
	// pairs only, display data stays behind.
	OrderRequest struct {
		Shipping    ShippingInfo
		Items       []OrderItem
		TotalAmount decimal.Decimal
	}

	// An Order is the server-side record of an accepted OrderRequest.
	Order struct {
		OrderID     string
		FirstName   string
		LastName    string
		Address     string
		Items       []OrderItem
		TotalAmount decimal.Decimal
		CreatedAt   time.Time
	}
)

// NewOrderRequest snapshots the cart and shipping form at submission
// time. The total is computed from the cart contents at this moment.
func NewOrderRequest(c *Cart, s ShippingInfo) OrderRequest {
	lines := c.Items()
	items := make([]OrderItem, len(lines))
	for i, l := range lines {
		items[i] = OrderItem{ProductID: l.Product.ProductID, Quantity: l.Quantity}
	}
	return OrderRequest{Shipping: s, Items: items, TotalAmount: c.TotalPrice()}
}
