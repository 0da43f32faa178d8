package schema

import (
	"testing"

	"github.com/hamba/avro/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPlacedV1(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		vMarshal := OrderPlacedV1{
			OrderID:   "testOrderID",
			FirstName: "testFirstName",
			LastName:  "testLastName",
			Address:   "testAddress",
			Items: []OrderItemV1{
				{ProductID: "testProductID1", Quantity: 2},
				{ProductID: "testProductID2", Quantity: 1},
			},
			TotalAmount: "44.98",
			CreatedAt:   "2025-08-30T12:00:00.000000000Z",
		}

		var orderSchema avro.Schema

		require.NotPanics(t, func() {
			orderSchema = avro.MustParse(OrderPlacedSchemaTextV1)
		})

		data, err := avro.Marshal(orderSchema, vMarshal)
		require.NoError(t, err)

		var vUnmarshal OrderPlacedV1
		err = avro.Unmarshal(orderSchema, data, &vUnmarshal)
		require.NoError(t, err)

		assert.Equal(t, vMarshal.OrderID, vUnmarshal.OrderID)
		assert.Equal(t, vMarshal.FirstName, vUnmarshal.FirstName)
		assert.Equal(t, vMarshal.LastName, vUnmarshal.LastName)
		assert.Equal(t, vMarshal.Address, vUnmarshal.Address)
		assert.Equal(t, vMarshal.TotalAmount, vUnmarshal.TotalAmount)
		assert.Equal(t, vMarshal.CreatedAt, vUnmarshal.CreatedAt)

		require.Len(t, vUnmarshal.Items, len(vMarshal.Items))
		for i, v := range vUnmarshal.Items {
			assert.Equal(t, vMarshal.Items[i], v)
		}
	})

	t.Run("NilItems", func(t *testing.T) {
		vMarshal := OrderPlacedV1{
			OrderID:     "testOrderID",
			FirstName:   "testFirstName",
			LastName:    "testLastName",
			Address:     "testAddress",
			Items:       nil,
			TotalAmount: "0",
			CreatedAt:   "2025-08-30T12:00:00.000000000Z",
		}

		var orderSchema avro.Schema

		require.NotPanics(t, func() {
			orderSchema = avro.MustParse(OrderPlacedSchemaTextV1)
		})

		data, err := avro.Marshal(orderSchema, vMarshal)
		require.NoError(t, err)

		var vUnmarshal OrderPlacedV1
		err = avro.Unmarshal(orderSchema, data, &vUnmarshal)
		require.NoError(t, err)

		assert.Equal(t, vMarshal.OrderID, vUnmarshal.OrderID)
		assert.Empty(t, vUnmarshal.Items)
	})
}
