// Package checkout runs a single checkout attempt as an explicit state
// machine: load the staged selection, price it against the catalog, create the
// order, drive the payment widget, and verify its callback. Terminal states
// never transition; a new attempt needs a fresh selection snapshot.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/VanshChoyal/Sea-Arsh/internal/api"
	"github.com/VanshChoyal/Sea-Arsh/internal/domain"
	"github.com/VanshChoyal/Sea-Arsh/internal/session"
)

// Backend is the slice of the storefront API a checkout attempt consumes.
type Backend interface {
	GetProduct(ctx context.Context, productID string) (*api.Product, error)
	CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*domain.PendingPaymentOrder, error)
	VerifyPayment(ctx context.Context, result domain.PaymentResult) (string, error)
}

// Widget is the external payment boundary. Open suspends the attempt until
// the shopper completes or abandons the widget's own UI and resolves to
// exactly one of: a result, ErrPaymentCancelled, or another error.
type Widget interface {
	Open(ctx context.Context, order domain.PendingPaymentOrder) (*domain.PaymentResult, error)
}

type Navigator interface {
	Navigate(view domain.View)
}

// Notifier carries user-visible messages (the alert/status surface).
type Notifier interface {
	Notify(message string)
}

// PricedLine is a snapshot line joined with authoritative catalog data.
type PricedLine struct {
	ProductID string
	Name      string
	Image     string
	Qty       int
	UnitPrice int64
	Total     int64
}

type Summary struct {
	Subtotal   int64
	Tax        int64
	GrandTotal int64
}

type Controller struct {
	backend Backend
	store   session.SnapshotStore
	widget  Widget
	nav     Navigator
	notify  Notifier

	attemptID string
	state     domain.CheckoutState
	message   string
	snapshot  *domain.SelectionSnapshot
	lines     []PricedLine
	summary   Summary

	pricing singleflight.Group // collapses duplicate product fetches
}

func NewController(backend Backend, store session.SnapshotStore, widget Widget, nav Navigator, notify Notifier) *Controller {
	return &Controller{
		backend:   backend,
		store:     store,
		widget:    widget,
		nav:       nav,
		notify:    notify,
		attemptID: uuid.NewString(),
		state:     domain.CheckoutStateLoading,
	}
}

func (c *Controller) State() domain.CheckoutState { return c.state }
func (c *Controller) Message() string             { return c.message }
func (c *Controller) Lines() []PricedLine         { return c.lines }
func (c *Controller) Summary() Summary            { return c.summary }

func (c *Controller) transition(to domain.CheckoutState) error {
	if !domain.CanTransitionTo(c.state, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, c.state, to)
	}
	log.Printf("checkout %s: %s -> %s", c.attemptID, c.state, to)
	c.state = to
	return nil
}

// Load reads the staged selection and prices every line against the catalog.
// An absent or empty snapshot is terminal. A line whose product fetch fails
// aborts the whole attempt: an order is never silently priced smaller than
// the selection it came from.
func (c *Controller) Load(ctx context.Context) error {
	snapshot, err := c.store.Get(ctx)
	if err != nil && !errors.Is(err, session.ErrNoSnapshot) {
		return fmt.Errorf("read selection: %w", err)
	}
	if snapshot.Empty() {
		c.message = "No items selected."
		return c.transition(domain.CheckoutStateEmpty)
	}
	c.snapshot = snapshot

	lines := make([]PricedLine, 0, len(snapshot.Items))
	var subtotal int64
	for _, item := range snapshot.Items {
		product, perr := c.fetchProduct(ctx, item.ProductID)
		if perr != nil {
			return fmt.Errorf("price line %s: %w", item.ProductID, perr)
		}

		total := product.Price * int64(item.Qty)
		lines = append(lines, PricedLine{
			ProductID: item.ProductID,
			Name:      product.Name,
			Image:     product.Image,
			Qty:       item.Qty,
			UnitPrice: product.Price,
			Total:     total,
		})
		subtotal += total
	}

	c.lines = lines
	c.summary = Summary{
		Subtotal:   subtotal,
		Tax:        domain.GST(subtotal),
		GrandTotal: subtotal + domain.GST(subtotal),
	}
	return c.transition(domain.CheckoutStatePriced)
}

func (c *Controller) fetchProduct(ctx context.Context, productID string) (*api.Product, error) {
	v, err, _ := c.pricing.Do(productID, func() (interface{}, error) {
		return c.backend.GetProduct(ctx, productID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*api.Product), nil
}
