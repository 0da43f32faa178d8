package session_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderSubmitter struct {
	mock.Mock
}

func (m *MockOrderSubmitter) SubmitOrder(
	ctx context.Context, req domain.OrderRequest,
) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

type blockingSubmitter struct {
	calls   atomic.Int32
	release chan struct{}
}

func (b *blockingSubmitter) SubmitOrder(
	ctx context.Context, req domain.OrderRequest,
) (string, error) {
	b.calls.Add(1)
	<-b.release
	return "order-1", nil
}

func validShipping() domain.ShippingInfo {
	return domain.ShippingInfo{
		FirstName: "Jane", LastName: "Doe", Address: "1 Main st",
	}
}

func TestCheckoutValidation(t *testing.T) {
	tests := []struct {
		name     string
		shipping domain.ShippingInfo
	}{
		{"EmptyFirstName", domain.ShippingInfo{
			FirstName: "", LastName: "Doe", Address: "1 Main st"}},
		{"BlankLastName", domain.ShippingInfo{
			FirstName: "Jane", LastName: "   ", Address: "1 Main st"}},
		{"EmptyAddress", domain.ShippingInfo{
			FirstName: "Jane", LastName: "Doe", Address: ""}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorderNotifier{}
			submitter := new(MockOrderSubmitter)
			cart := session.NewCartStore(rec)
			cart.Add(testProduct("p1", "Headphones", 89.99))

			checkout := session.NewCheckout(cart, submitter, rec)
			checkout.SetShipping(tc.shipping)

			_, err := checkout.Submit(t.Context())
			require.Error(t, err)
			assert.ErrorIs(t, err, session.ErrValidation)

			assert.Equal(t, session.StateEditing, checkout.State())
			assert.Len(t, rec.invalid, 1)
			assert.False(t, cart.Empty())
			submitter.AssertNotCalled(t, "SubmitOrder", mock.Anything, mock.Anything)
		})
	}

	t.Run("EmptyCart", func(t *testing.T) {
		rec := &recorderNotifier{}
		submitter := new(MockOrderSubmitter)
		cart := session.NewCartStore(rec)

		checkout := session.NewCheckout(cart, submitter, rec)
		checkout.SetShipping(validShipping())

		_, err := checkout.Submit(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, session.ErrEmptyCart)
		submitter.AssertNotCalled(t, "SubmitOrder", mock.Anything, mock.Anything)
	})
}

func TestCheckoutSuccess(t *testing.T) {
	rec := &recorderNotifier{}
	submitter := new(MockOrderSubmitter)
	cart := session.NewCartStore(rec)
	p := testProduct("p1", "Headphones", 19.99)
	cart.Add(p)
	cart.Add(p)
	cart.Add(testProduct("p2", "Watch", 5.00))

	submitter.On("SubmitOrder", mock.Anything, mock.Anything).
		Return("order-42", nil).Once()

	checkout := session.NewCheckout(cart, submitter, rec)
	checkout.SetShipping(validShipping())

	orderID, err := checkout.Submit(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "order-42", orderID)

	assert.Equal(t, session.StateSucceeded, checkout.State())
	assert.True(t, cart.Empty())
	assert.Equal(t, domain.ShippingInfo{}, checkout.Shipping())
	assert.Equal(t, []string{"order-42"}, rec.placedIDs)

	req := submitter.Calls[0].Arguments.Get(1).(domain.OrderRequest)
	require.Len(t, req.Items, 2)
	assert.Equal(t, domain.OrderItem{ProductID: "p1", Quantity: 2}, req.Items[0])
	assert.Equal(t, "44.98", req.TotalAmount.String())
}

func TestCheckoutFailure(t *testing.T) {
	rec := &recorderNotifier{}
	submitter := new(MockOrderSubmitter)
	cart := session.NewCartStore(rec)
	cart.Add(testProduct("p1", "Headphones", 19.99))

	submitter.On("SubmitOrder", mock.Anything, mock.Anything).
		Return("", assert.AnError).Once()
	submitter.On("SubmitOrder", mock.Anything, mock.Anything).
		Return("order-42", nil).Once()

	checkout := session.NewCheckout(cart, submitter, rec)
	shipping := validShipping()
	checkout.SetShipping(shipping)

	itemsBefore := cart.Items()

	_, err := checkout.Submit(t.Context())
	require.Error(t, err)

	// the failure is reported and editing resumes
	assert.Equal(t, session.StateEditing, checkout.State())
	assert.Equal(t, itemsBefore, cart.Items())
	assert.Equal(t, shipping, checkout.Shipping())
	assert.Equal(t, 1, rec.failed)

	// an untouched cart and form resubmit as is
	orderID, err := checkout.Submit(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "order-42", orderID)
	assert.Equal(t, session.StateSucceeded, checkout.State())
}

func TestCheckoutSingleFlight(t *testing.T) {
	rec := &recorderNotifier{}
	submitter := &blockingSubmitter{release: make(chan struct{})}
	cart := session.NewCartStore(rec)
	cart.Add(testProduct("p1", "Headphones", 19.99))

	checkout := session.NewCheckout(cart, submitter, rec)
	checkout.SetShipping(validShipping())

	done := make(chan error, 1)
	go func() {
		_, err := checkout.Submit(t.Context())
		done <- err
	}()

	require.Eventually(t, func() bool {
		return submitter.calls.Load() == 1
	}, time.Second, time.Millisecond)

	assert.Equal(t, session.StatePending, checkout.State())

	for range 5 {
		_, err := checkout.Submit(t.Context())
		assert.ErrorIs(t, err, session.ErrSubmitPending)
	}

	close(submitter.release)
	require.NoError(t, <-done)

	assert.EqualValues(t, 1, submitter.calls.Load())
	assert.Equal(t, session.StateSucceeded, checkout.State())
}
