package httphandler

type (
	Product struct {
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

	Filters struct {
		Categories []string `json:"categories"`
		Brands     []string `json:"brands"`
	}
)

type (
	OrderItem struct {
		Product  string `json:"product"`
		Quantity int    `json:"quantity"`
	}

	OrderRequest struct {
		FirstName   string      `json:"firstName"`
		LastName    string      `json:"lastName"`
		Address     string      `json:"address"`
		Items       []OrderItem `json:"items"`
		TotalAmount float64     `json:"totalAmount"`
	}

	OrderResponse struct {
		Message string `json:"message"`
		OrderID string `json:"orderId"`
	}
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
