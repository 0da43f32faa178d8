package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductsStorage struct {
	mock.Mock
}

func (m *MockProductsStorage) ReadProducts(
	ctx context.Context, f domain.CatalogFilter,
) ([]domain.Product, error) {
	args := m.Called(ctx, f)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockProductsStorage) ReadFacets(
	ctx context.Context,
) (domain.CatalogFacets, error) {
	args := m.Called(ctx)
	facets, _ := args.Get(0).(domain.CatalogFacets)
	return facets, args.Error(1)
}

type MockOrdersStorage struct {
	mock.Mock
}

func (m *MockOrdersStorage) StoreOrder(
	ctx context.Context, v domain.Order,
) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

type MockOrderEventsProducer struct {
	mock.Mock
}

func (m *MockOrderEventsProducer) ProduceOrderPlaced(
	ctx context.Context, v domain.Order,
) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func validRequest() domain.OrderRequest {
	return domain.OrderRequest{
		Shipping: domain.ShippingInfo{
			FirstName: "Jane", LastName: "Doe", Address: "1 Main st",
		},
		Items: []domain.OrderItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
		TotalAmount: decimal.RequireFromString("44.98"),
	}
}

func newService() (
	service.Service,
	*MockProductsStorage, *MockOrdersStorage, *MockOrderEventsProducer,
) {
	products := new(MockProductsStorage)
	orders := new(MockOrdersStorage)
	events := new(MockOrderEventsProducer)
	return service.New(products, orders, events), products, orders, events
}

func TestPlaceOrder(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		s, _, orders, events := newService()

		orders.On("StoreOrder", mock.Anything, mock.Anything).
			Return(nil).Once()
		events.On("ProduceOrderPlaced", mock.Anything, mock.Anything).
			Return(nil).Once()

		orderID, err := s.PlaceOrder(t.Context(), validRequest())
		require.NoError(t, err)

		_, err = uuid.Parse(orderID)
		require.NoError(t, err)

		stored := orders.Calls[0].Arguments.Get(1).(domain.Order)
		assert.Equal(t, orderID, stored.OrderID)
		assert.Equal(t, "Jane", stored.FirstName)
		assert.Len(t, stored.Items, 2)
		assert.Equal(t, "44.98", stored.TotalAmount.String())
		assert.False(t, stored.CreatedAt.IsZero())

		produced := events.Calls[0].Arguments.Get(1).(domain.Order)
		assert.Equal(t, stored, produced)
	})

	t.Run("MissingShipping", func(t *testing.T) {
		s, _, orders, _ := newService()

		req := validRequest()
		req.Shipping.FirstName = "   "

		_, err := s.PlaceOrder(t.Context(), req)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrShippingRequired)
		orders.AssertNotCalled(t, "StoreOrder", mock.Anything, mock.Anything)
	})

	t.Run("EmptyItems", func(t *testing.T) {
		s, _, orders, _ := newService()

		req := validRequest()
		req.Items = nil

		_, err := s.PlaceOrder(t.Context(), req)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmptyOrder)
		orders.AssertNotCalled(t, "StoreOrder", mock.Anything, mock.Anything)
	})

	t.Run("StorageError", func(t *testing.T) {
		s, _, orders, events := newService()

		orders.On("StoreOrder", mock.Anything, mock.Anything).
			Return(assert.AnError).Once()

		_, err := s.PlaceOrder(t.Context(), validRequest())
		require.Error(t, err)
		events.AssertNotCalled(t, "ProduceOrderPlaced", mock.Anything, mock.Anything)
	})

	t.Run("ProducerErrorDoesNotFailOrder", func(t *testing.T) {
		s, _, orders, events := newService()

		orders.On("StoreOrder", mock.Anything, mock.Anything).
			Return(nil).Once()
		events.On("ProduceOrderPlaced", mock.Anything, mock.Anything).
			Return(assert.AnError).Once()

		orderID, err := s.PlaceOrder(t.Context(), validRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, orderID)
	})
}

func TestListProducts(t *testing.T) {
	s, products, _, _ := newService()

	want := []domain.Product{{ProductID: "p1", Name: "Headphones"}}
	filter := domain.CatalogFilter{Category: "Electronics"}

	products.On("ReadProducts", mock.Anything, filter).
		Return(want, nil).Once()

	got, err := s.ListProducts(t.Context(), filter)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListFacets(t *testing.T) {
	s, products, _, _ := newService()

	want := domain.CatalogFacets{
		Categories: []string{"Electronics", "Sports"},
		Brands:     []string{"SoundCore", "Stride"},
	}

	products.On("ReadFacets", mock.Anything).Return(want, nil).Once()

	got, err := s.ListFacets(t.Context())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
