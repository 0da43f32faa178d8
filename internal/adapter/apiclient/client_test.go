package apiclient_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/apiclient"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderReq() domain.OrderRequest {
	return domain.OrderRequest{
		Shipping: domain.ShippingInfo{
			FirstName: "Jane", LastName: "Doe", Address: "1 Main st",
		},
		Items: []domain.OrderItem{
			{ProductID: "p1", Quantity: 2},
		},
		TotalAmount: decimal.RequireFromString("39.98"),
	}
}

func TestSubmitOrder(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/orders", r.URL.Path)
				require.Equal(t,
					"application/json", r.Header.Get("Content-Type"))
				require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusCreated)
				json.NewEncoder(w).Encode(map[string]string{
					"message": "Order placed successfully",
					"orderId": "order-42",
				})
			}))
		defer srv.Close()

		client := apiclient.New(srv.URL)

		orderID, err := client.SubmitOrder(t.Context(), orderReq())
		require.NoError(t, err)
		assert.Equal(t, "order-42", orderID)

		assert.Equal(t, "Jane", gotBody["firstName"])
		assert.InEpsilon(t, 39.98, gotBody["totalAmount"], 1e-9)
		items := gotBody["items"].([]any)
		require.Len(t, items, 1)
		assert.Equal(t, "p1", items[0].(map[string]any)["product"])
	})

	t.Run("RejectedOrder", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{
					"message": "Cart cannot be empty",
				})
			}))
		defer srv.Close()

		client := apiclient.New(srv.URL)

		_, err := client.SubmitOrder(t.Context(), orderReq())
		require.Error(t, err)
		assert.ErrorIs(t, err, apiclient.ErrSubmission)
		assert.ErrorContains(t, err, "Cart cannot be empty")
	})

	t.Run("ServerDown", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client := apiclient.New(srv.URL)

		_, err := client.SubmitOrder(t.Context(), orderReq())
		require.Error(t, err)
		assert.ErrorIs(t, err, apiclient.ErrSubmission)
	})

	t.Run("NoRetryOnFailure", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(http.StatusInternalServerError)
			}))
		defer srv.Close()

		client := apiclient.New(srv.URL)

		_, err := client.SubmitOrder(t.Context(), orderReq())
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestFetchProducts(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/api/products", r.URL.Path)
				gotQuery = r.URL.RawQuery

				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode([]map[string]any{
					{
						"_id":      "p1",
						"name":     "Headphones",
						"price":    89.99,
						"category": "Electronics",
					},
				})
			}))
		defer srv.Close()

		client := apiclient.New(srv.URL)

		ps, err := client.FetchProducts(t.Context(), domain.CatalogFilter{
			Category: "Electronics",
			MinPrice: decimal.RequireFromString("10"),
		})
		require.NoError(t, err)

		assert.Equal(t, "category=Electronics&minPrice=10", gotQuery)
		require.Len(t, ps, 1)
		assert.Equal(t, "p1", ps[0].ProductID)
		assert.Equal(t, "89.99", ps[0].Price.String())
	})

	t.Run("BadStatusNotRetried", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(http.StatusInternalServerError)
			}))
		defer srv.Close()

		client := apiclient.New(srv.URL)

		_, err := client.FetchProducts(t.Context(), domain.CatalogFilter{})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}
