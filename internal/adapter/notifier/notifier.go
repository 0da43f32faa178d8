// Package notifier renders the core's semantic cart and checkout
// events as user-facing messages. Text and styling live here, never in
// the core.
package notifier

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.Notifier = (*Printer)(nil)

// A Printer writes transient messages for a terminal session.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) Printer {
	return Printer{w}
}

func (p Printer) ItemAdded(productName string) {
	fmt.Fprintf(p.w, "%s added to cart!\n", productName)
}

func (p Printer) QuantityIncreased(productName string) {
	fmt.Fprintf(p.w, "Increased %s quantity!\n", productName)
}

func (p Printer) ItemRemoved() {
	fmt.Fprintln(p.w, "Item removed from cart!")
}

func (p Printer) CartCleared() {
	fmt.Fprintln(p.w, "Cart cleared!")
}

func (p Printer) OrderPlaced(orderID string) {
	fmt.Fprintf(p.w, "Order placed successfully! Order id: %s\n", orderID)
}

func (p Printer) OrderFailed() {
	fmt.Fprintln(p.w, "Failed to place order. Please try again.")
}

func (p Printer) ValidationFailed(reason string) {
	fmt.Fprintf(p.w, "Cannot place order: %s\n", reason)
}

var _ port.Notifier = (*Slog)(nil)

// A Slog logs the events, for headless consumers of the order-events
// stream.
type Slog struct{}

func NewSlog() Slog {
	return Slog{}
}

func (Slog) ItemAdded(productName string) {
	slog.Info("item added", "product", productName)
}

func (Slog) QuantityIncreased(productName string) {
	slog.Info("quantity increased", "product", productName)
}

func (Slog) ItemRemoved() {
	slog.Info("item removed")
}

func (Slog) CartCleared() {
	slog.Info("cart cleared")
}

func (Slog) OrderPlaced(orderID string) {
	slog.Info("order placed", "orderID", orderID)
}

func (Slog) OrderFailed() {
	slog.Error("order failed")
}

func (Slog) ValidationFailed(reason string) {
	slog.Warn("validation failed", "reason", reason)
}
