// Package orders drives the order history view: listing with a cancelled
// filter, interactive cancellation, and reorder back into checkout.
package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/VanshChoyal/Sea-Arsh/internal/domain"
	"github.com/VanshChoyal/Sea-Arsh/internal/session"
)

type Backend interface {
	GetOrders(ctx context.Context, showCancelled bool) ([]domain.Order, error)
	CancelOrder(ctx context.Context, orderID string) (string, error)
	Reorder(ctx context.Context, orderID string) ([]domain.SnapshotLine, error)
}

type Navigator interface {
	Navigate(view domain.View)
}

type Notifier interface {
	Notify(message string)
}

// Confirmer gates destructive actions behind an interactive prompt.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Card is one rendered order. Cancelled orders are dimmed and carry no action
// buttons.
type Card struct {
	OrderID     string
	Timestamp   string
	Status      string
	DeliveryETA string
	Items       []domain.OrderItem
	Dimmed      bool
	ShowActions bool
}

var (
	ErrCancelNotAcknowledged = errors.New("cancel not acknowledged by backend")
	ErrReorderUnavailable    = errors.New("no cart payload for reorder")
)

type Controller struct {
	backend Backend
	store   session.SnapshotStore
	nav     Navigator
	notify  Notifier
	confirm Confirmer

	showCancelled bool
	cards         []Card
}

func NewController(backend Backend, store session.SnapshotStore, nav Navigator, notify Notifier, confirm Confirmer) *Controller {
	return &Controller{backend: backend, store: store, nav: nav, notify: notify, confirm: confirm}
}

func (c *Controller) Cards() []Card { return c.cards }

// Load fetches the order list filtered by the cancelled flag and projects it
// into cards.
func (c *Controller) Load(ctx context.Context, showCancelled bool) error {
	c.showCancelled = showCancelled

	list, err := c.backend.GetOrders(ctx, showCancelled)
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}

	cards := make([]Card, 0, len(list))
	for _, order := range list {
		status := order.Status
		if status == "" {
			status = domain.OrderStatusSuccess
		}
		cancelled := order.Cancelled()
		cards = append(cards, Card{
			OrderID:     order.OrderID,
			Timestamp:   order.Timestamp,
			Status:      status,
			DeliveryETA: order.DeliveryETA,
			Items:       order.Items,
			Dimmed:      cancelled,
			ShowActions: !cancelled,
		})
	}
	c.cards = cards
	return nil
}

// Cancel asks for confirmation, issues the cancel command, and reloads the
// list once the backend acknowledges. An unacknowledged cancel is surfaced
// rather than swallowed.
func (c *Controller) Cancel(ctx context.Context, orderID string) error {
	if !c.confirm.Confirm("Are you sure you want to cancel this order?") {
		return nil
	}

	status, err := c.backend.CancelOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("cancel order %s: %w", orderID, err)
	}
	if status != domain.OrderStatusCancelled {
		c.notify.Notify("Could not cancel the order.")
		return fmt.Errorf("%w: order %s status %q", ErrCancelNotAcknowledged, orderID, status)
	}

	c.notify.Notify("Order cancelled successfully.")
	return c.Load(ctx, c.showCancelled)
}

// Reorder materializes a past order into a fresh selection snapshot and jumps
// to checkout. Absence of a cart payload leaves the snapshot untouched.
func (c *Controller) Reorder(ctx context.Context, orderID string) error {
	lines, err := c.backend.Reorder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("reorder %s: %w", orderID, err)
	}
	if len(lines) == 0 {
		c.notify.Notify("Unable to reorder.")
		return fmt.Errorf("%w: order %s", ErrReorderUnavailable, orderID)
	}

	snapshot := &domain.SelectionSnapshot{Items: lines, CapturedAt: time.Now()}
	if err := c.store.Put(ctx, snapshot); err != nil {
		return fmt.Errorf("stage reorder: %w", err)
	}
	c.nav.Navigate(domain.ViewCheckout)
	return nil
}
