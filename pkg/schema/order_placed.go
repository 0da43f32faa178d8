package schema

const OrderPlacedSchemaTextV1 = `{
	"type": "record",
	"namespace": "orders",
	"name": "order_placed",
	"fields" : [
		{"name": "order_id", "type": "string"},
		{"name": "first_name", "type": "string"},
		{"name": "last_name", "type": "string"},
		{"name": "address", "type": "string"},
		{"name": "items", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "order_item",
				"fields": [
					{"name": "product_id", "type": "string"},
					{"name": "quantity", "type": "int"}
				]
			}
		}},
		{"name": "total_amount", "type": "string"},
		{"name": "created_at", "type": "string"}
	]
}`

type (
	OrderPlacedV1 struct {
		OrderID     string        `avro:"order_id"`
		FirstName   string        `avro:"first_name"`
		LastName    string        `avro:"last_name"`
		Address     string        `avro:"address"`
		Items       []OrderItemV1 `avro:"items"`
		TotalAmount string        `avro:"total_amount"`
		CreatedAt   string        `avro:"created_at"`
	}

	OrderItemV1 struct {
		ProductID string `avro:"product_id"`
		Quantity  int    `avro:"quantity"`
	}
)
