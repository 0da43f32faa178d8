// Package session hosts the client-resident core: the cart store and
// the checkout flow. One session owns one cart; nothing here is shared
// across sessions or persisted.
package session

import (
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// A CartStore owns the session cart and announces every mutation to
// the notifier. Derived totals come from the embedded [domain.Cart].
type CartStore struct {
	*domain.Cart
	notifier port.Notifier
}

func NewCartStore(notifier port.Notifier) *CartStore {
	return &CartStore{domain.NewCart(), notifier}
}

// Add puts one unit of p into the cart and announces whether the item
// was added or its quantity increased. The distinction comes from the
// mutation's own return value, never from re-reading prior state.
func (s *CartStore) Add(p domain.Product) {
	if s.Cart.Add(p) {
		s.notifier.ItemAdded(p.Name)
		return
	}
	s.notifier.QuantityIncreased(p.Name)
}

func (s *CartStore) Remove(productID string) {
	s.Cart.Remove(productID)
	s.notifier.ItemRemoved()
}

func (s *CartStore) SetQuantity(productID string, quantity int) {
	s.Cart.SetQuantity(productID, quantity)
	if quantity < 1 {
		s.notifier.ItemRemoved()
	}
}

func (s *CartStore) Clear() {
	s.Cart.Clear()
	s.notifier.CartCleared()
}
