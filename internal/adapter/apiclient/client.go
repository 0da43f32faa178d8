// Package apiclient is the session's HTTP gateway to the storefront
// REST API: catalog reads and the one outbound checkout call.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/retry"
	"github.com/shopspring/decimal"
)

var _ port.OrderSubmitter = (*Client)(nil)

// ErrSubmission reports a failed order submission: transport error or
// a non-success response from the order service.
var ErrSubmission = errors.New("order service error")

const requestTimeout = 10 * time.Second

type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) Client {
	return Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: requestTimeout},
	}
}

// SubmitOrder posts the order request once. The call is not retried:
// a duplicate POST could place a duplicate order.
func (c Client) SubmitOrder(
	ctx context.Context, req domain.OrderRequest,
) (string, error) {
	const op = "Client.SubmitOrder"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	body, err := json.Marshal(toWireOrder(req))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body),
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, ErrSubmission, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&er)
		if er.Message == "" {
			er.Message = resp.Status
		}
		return "", fmt.Errorf("%s: %w: %s", op, ErrSubmission, er.Message)
	}

	var or orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, ErrSubmission, err)
	}
	return or.OrderID, nil
}

// FetchProducts lists the catalog. The read is idempotent, so
// transient transport errors are retried with backoff.
func (c Client) FetchProducts(
	ctx context.Context, f domain.CatalogFilter,
) ([]domain.Product, error) {
	const op = "Client.FetchProducts"

	retryCfg := retry.RetryConfig{
		MaxAttempts: 3,
		ShouldRetry: transportError,
	}

	ps, err := retry.DoWithResult(ctx, retryCfg, func() ([]domain.Product, error) {
		return c.fetchProducts(ctx, f)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (c Client) fetchProducts(
	ctx context.Context, f domain.CatalogFilter,
) ([]domain.Product, error) {
	reqURL := c.baseURL + "/api/products"
	if query := catalogQuery(f); query != "" {
		reqURL += "?" + query
	}

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodGet, reqURL, nil,
	)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var wire []product
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, err
	}

	ps := make([]domain.Product, len(wire))
	for i, w := range wire {
		ps[i] = domain.Product{
			ProductID:       w.ProductID,
			Name:            w.Name,
			Description:     w.Description,
			Price:           decimal.NewFromFloat(w.Price),
			Image:           w.Image,
			Category:        w.Category,
			Brand:           w.Brand,
			Rating:          w.Rating,
			DeliveryOptions: w.DeliveryOptions,
		}
	}
	return ps, nil
}

func transportError(err error) bool {
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func catalogQuery(f domain.CatalogFilter) string {
	q := make(url.Values)
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Brand != "" {
		q.Set("brand", f.Brand)
	}
	if f.MinRating > 0 {
		q.Set("rating", fmt.Sprintf("%g", f.MinRating))
	}
	if !f.MinPrice.IsZero() {
		q.Set("minPrice", f.MinPrice.String())
	}
	if !f.MaxPrice.IsZero() {
		q.Set("maxPrice", f.MaxPrice.String())
	}
	if f.Delivery != "" {
		q.Set("delivery", f.Delivery)
	}
	return q.Encode()
}
