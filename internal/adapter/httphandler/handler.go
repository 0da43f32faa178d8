package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/shopspring/decimal"
)

// GET  /api/products?category=&brand=&minPrice=&maxPrice=&rating=&delivery= (200 OK, 400, 500)
// GET  /api/products/filters (200 OK, 500)
// POST /api/orders JSON (201 Created, 400 Bad request, 500)
// GET  /api/health (200 OK)

type CatalogHandler struct {
	catalog port.CatalogReader
}

func RegisterCatalog(mux *http.ServeMux, catalog port.CatalogReader) {
	h := CatalogHandler{catalog}
	mux.HandleFunc("GET /api/products", h.GetProducts)
	mux.HandleFunc("GET /api/products/filters", h.GetFilters)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	f, err := parseCatalogFilter(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid query parameters")
		log.Warn("failed to parse query", "err", err)
		return
	}

	ps, err := h.catalog.ListProducts(r.Context(), f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		log.Error("failed to list products", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toWireProducts(ps))
	log.Info("products listed", "nProducts", len(ps))
}

func (h CatalogHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetFilters"
	log := slog.With("op", op)

	facets, err := h.catalog.ListFacets(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		log.Error("failed to list facets", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, Filters{
		Categories: facets.Categories,
		Brands:     facets.Brands,
	})
}

type OrdersHandler struct {
	orders port.OrderPlacer
}

func RegisterOrders(mux *http.ServeMux, orders port.OrderPlacer) {
	h := OrdersHandler{orders}
	mux.HandleFunc("POST /api/orders", h.PostOrder)
}

func (h OrdersHandler) PostOrder(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.PostOrder"
	log := slog.With("op", op)

	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	orderID, err := h.orders.PlaceOrder(r.Context(), h.toDomain(req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrShippingRequired):
			writeError(w, http.StatusBadRequest,
				"First name, last name, and address are required")
		case errors.Is(err, domain.ErrEmptyOrder):
			writeError(w, http.StatusBadRequest, "Cart cannot be empty")
		default:
			writeError(w, http.StatusInternalServerError, "Error placing order")
			log.Error("failed to place order", "err", err)
			return
		}
		log.Warn("rejected order", "err", err)
		return
	}

	writeJSON(w, http.StatusCreated, OrderResponse{
		Message: "Order placed successfully",
		OrderID: orderID,
	})
}

func (OrdersHandler) toDomain(req OrderRequest) domain.OrderRequest {
	items := make([]domain.OrderItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.OrderItem{ProductID: it.Product, Quantity: it.Quantity}
	}
	return domain.OrderRequest{
		Shipping: domain.ShippingInfo{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Address:   req.Address,
		},
		Items:       items,
		TotalAmount: decimal.NewFromFloat(req.TotalAmount),
	}
}

func RegisterHealth(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Message:   "Server is running!",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})
}

func parseCatalogFilter(q url.Values) (domain.CatalogFilter, error) {
	var f domain.CatalogFilter
	f.Category = q.Get("category")
	f.Brand = q.Get("brand")
	f.Delivery = q.Get("delivery")

	if v := q.Get("minPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return f, err
		}
		f.MinPrice = d
	}
	if v := q.Get("maxPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return f, err
		}
		f.MaxPrice = d
	}
	if v := q.Get("rating"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, err
		}
		f.MinRating = r
	}
	return f, nil
}

func toWireProducts(ps []domain.Product) []Product {
	wire := make([]Product, len(ps))
	for i, p := range ps {
		wire[i] = Product{
			ProductID:       p.ProductID,
			Name:            p.Name,
			Description:     p.Description,
			Price:           p.Price.InexactFloat64(),
			Image:           p.Image,
			Category:        p.Category,
			Brand:           p.Brand,
			Rating:          p.Rating,
			DeliveryOptions: p.DeliveryOptions,
		}
	}
	return wire
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}
