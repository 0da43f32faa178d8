package apiclient

import "github.com/niksmo/storefront/internal/core/domain"

type (
	product struct {
		ProductID       string   `json:"_id"`
		Name            string   `json:"name"`
		Description     string   `json:"description"`
		Price           float64  `json:"price"`
		Image           string   `json:"image"`
		Category        string   `json:"category"`
		Brand           string   `json:"brand"`
		Rating          float64  `json:"rating"`
		DeliveryOptions []string `json:"deliveryOptions"`
	}

	orderItem struct {
		Product  string `json:"product"`
		Quantity int    `json:"quantity"`
	}

	orderRequest struct {
		FirstName   string      `json:"firstName"`
		LastName    string      `json:"lastName"`
		Address     string      `json:"address"`
		Items       []orderItem `json:"items"`
		TotalAmount float64     `json:"totalAmount"`
	}

	orderResponse struct {
		Message string `json:"message"`
		OrderID string `json:"orderId"`
	}

	errorResponse struct {
		Message string `json:"message"`
	}
)

func toWireOrder(req domain.OrderRequest) orderRequest {
	items := make([]orderItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = orderItem{Product: it.ProductID, Quantity: it.Quantity}
	}
	return orderRequest{
		FirstName:   req.Shipping.FirstName,
		LastName:    req.Shipping.LastName,
		Address:     req.Shipping.Address,
		Items:       items,
		TotalAmount: req.TotalAmount.InexactFloat64(),
	}
}
