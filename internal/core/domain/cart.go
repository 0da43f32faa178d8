package domain

import "github.com/shopspring/decimal"

// A LineItem pairs a catalog product with the quantity selected by the
// client. Quantity is always at least 1: a line that would drop below
// one is removed from the cart instead.
type LineItem struct {
	Product  Product
	Quantity int
}

// A Cart holds the session's line items in insertion order.
// At most one line exists per product id, enforced on every mutation,
// so a duplicate line is unrepresentable.
type Cart struct {
	items []LineItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of p into the cart: a new line at the tail for an
// unseen product, otherwise an increment of the existing line. It
// reports whether a new line was created, so the caller can tell
// "item added" from "quantity increased" without re-reading state.
func (c *Cart) Add(p Product) (wasNew bool) {
	if i := c.find(p.ProductID); i >= 0 {
		c.items[i].Quantity++
		return false
	}
	c.items = append(c.items, LineItem{Product: p, Quantity: 1})
	return true
}

// Remove drops the line for productID. Unknown ids are a no-op.
func (c *Cart) Remove(productID string) {
	i := c.find(productID)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// SetQuantity sets the line quantity to exactly quantity, keeping the
// line in its original position. Values below one remove the line,
// same as Remove. Unknown ids are a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity < 1 {
		c.Remove(productID)
		return
	}
	if i := c.find(productID); i >= 0 {
		c.items[i].Quantity = quantity
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Items returns a snapshot of the cart lines in insertion order.
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// TotalPrice sums price times quantity over all lines.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		total = total.Add(item.Product.Price.Mul(qty))
	}
	return total
}

// TotalItems sums quantities over all lines.
func (c *Cart) TotalItems() int {
	var n int
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

func (c *Cart) find(productID string) int {
	for i := range c.items {
		if c.items[i].Product.ProductID == productID {
			return i
		}
	}
	return -1
}
