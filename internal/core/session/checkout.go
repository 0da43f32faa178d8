package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var (
	ErrValidation = errors.New("checkout validation")

	ErrShippingIncomplete = fmt.Errorf(
		"%w: first name, last name, and address are required", ErrValidation,
	)
	ErrEmptyCart = fmt.Errorf("%w: cart is empty", ErrValidation)

	// ErrSubmitPending reports a dropped submit trigger: a prior
	// submission is still in flight.
	ErrSubmitPending = errors.New("submission already in flight")
)

type State int

const (
	StateEditing State = iota
	StatePending
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// A Checkout drives one checkout instance: shipping form, validation,
// a single-flight order submission and the cart/form resolution that
// follows. After a success the instance is terminal, a fresh checkout
// starts with a new Checkout over an empty cart.
type Checkout struct {
	cart      *CartStore
	submitter port.OrderSubmitter
	notifier  port.Notifier

	mu       sync.Mutex
	shipping domain.ShippingInfo
	state    State

	inFlight atomic.Bool
}

func NewCheckout(
	cart *CartStore, submitter port.OrderSubmitter, notifier port.Notifier,
) *Checkout {
	return &Checkout{
		cart:      cart,
		submitter: submitter,
		notifier:  notifier,
		state:     StateEditing,
	}
}

// SetShipping replaces the shipping form and returns the flow to
// Editing, as any field change does.
func (c *Checkout) SetShipping(s domain.ShippingInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shipping = s
	c.state = StateEditing
}

func (c *Checkout) Shipping() domain.ShippingInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shipping
}

func (c *Checkout) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit runs one submission to completion. Triggers arriving while a
// submission is in flight are dropped, not queued. Validation failures
// make no network call and leave all state untouched; submission
// failures keep the cart and form intact and return the flow to
// editing so the user can resubmit.
func (c *Checkout) Submit(ctx context.Context) (orderID string, err error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return "", ErrSubmitPending
	}
	defer c.inFlight.Store(false)

	shipping := c.Shipping()
	if err := c.validate(shipping); err != nil {
		c.setState(StateEditing)
		c.notifier.ValidationFailed(err.Error())
		return "", err
	}

	c.setState(StatePending)
	req := domain.NewOrderRequest(c.cart.Cart, shipping)

	orderID, err = c.submitter.SubmitOrder(ctx, req)
	if err != nil {
		c.setState(StateFailed)
		c.notifier.OrderFailed()
		// editing resumes so the user can resubmit
		c.setState(StateEditing)
		return "", fmt.Errorf("submit order: %w", err)
	}

	c.setState(StateSucceeded)
	c.cart.Clear()
	c.resetShipping()
	c.notifier.OrderPlaced(orderID)
	return orderID, nil
}

func (c *Checkout) validate(s domain.ShippingInfo) error {
	if strings.TrimSpace(s.FirstName) == "" ||
		strings.TrimSpace(s.LastName) == "" ||
		strings.TrimSpace(s.Address) == "" {
		return ErrShippingIncomplete
	}
	if c.cart.Empty() {
		return ErrEmptyCart
	}
	return nil
}

func (c *Checkout) setState(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

func (c *Checkout) resetShipping() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shipping = domain.ShippingInfo{}
}
