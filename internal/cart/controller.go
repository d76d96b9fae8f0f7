// Package cart drives the cart view: a typed mirror of the backend cart,
// quantity mutation with optimistic local updates, line selection, and the
// handoff of the selected subset to checkout.
package cart

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/VanshChoyal/Sea-Arsh/internal/api"
	"github.com/VanshChoyal/Sea-Arsh/internal/domain"
	"github.com/VanshChoyal/Sea-Arsh/internal/session"
)

// Backend is the slice of the storefront API the cart view consumes.
type Backend interface {
	AddToCart(ctx context.Context, productID string) error
	RemoveFromCart(ctx context.Context, productID string) error
	GetCart(ctx context.Context) ([]api.CartEntry, error)
	GetProduct(ctx context.Context, productID string) (*api.Product, error)
}

type Navigator interface {
	Navigate(view domain.View)
}

type Controller struct {
	backend Backend
	store   session.SnapshotStore
	nav     Navigator

	cart domain.Cart
}

func NewController(backend Backend, store session.SnapshotStore, nav Navigator) *Controller {
	return &Controller{backend: backend, store: store, nav: nav}
}

// Load hydrates the local mirror from the backend cart and product catalog.
// Lines start selected, matching the rendered cart page.
func (c *Controller) Load(ctx context.Context) error {
	entries, err := c.backend.GetCart(ctx)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	lines := make([]domain.CartLine, 0, len(entries))
	for _, entry := range entries {
		product, perr := c.backend.GetProduct(ctx, entry.ProductID)
		if perr != nil {
			return fmt.Errorf("load cart line %s: %w", entry.ProductID, perr)
		}
		lines = append(lines, domain.CartLine{
			ProductID: entry.ProductID,
			Name:      product.Name,
			Qty:       entry.Qty,
			UnitPrice: product.Price,
			Selected:  true,
		})
	}
	c.cart = domain.Cart{Lines: lines}
	return nil
}

// Increase bumps the line quantity locally first, then tells the backend. A
// failed request rolls the speculative update back instead of letting the
// mirror diverge.
func (c *Controller) Increase(ctx context.Context, productID string) error {
	line := c.cart.Line(productID)
	if line == nil {
		return fmt.Errorf("%w: %s", ErrUnknownLine, productID)
	}

	line.Qty++
	if err := c.backend.AddToCart(ctx, productID); err != nil {
		line.Qty--
		log.Printf("increase rolled back for product %s: %v", productID, err)
		return fmt.Errorf("increase quantity: %w", err)
	}
	return nil
}

// Decrease is symmetric to Increase but refuses to go below one unit: at
// qty 1 it is a no-op and nothing is sent.
func (c *Controller) Decrease(ctx context.Context, productID string) error {
	line := c.cart.Line(productID)
	if line == nil {
		return fmt.Errorf("%w: %s", ErrUnknownLine, productID)
	}
	if line.Qty <= 1 {
		return nil
	}

	line.Qty--
	if err := c.backend.RemoveFromCart(ctx, productID); err != nil {
		line.Qty++
		log.Printf("decrease rolled back for product %s: %v", productID, err)
		return fmt.Errorf("decrease quantity: %w", err)
	}
	return nil
}

// ToggleSelect marks a line in or out of the purchase subset.
func (c *Controller) ToggleSelect(productID string, checked bool) error {
	line := c.cart.Line(productID)
	if line == nil {
		return fmt.Errorf("%w: %s", ErrUnknownLine, productID)
	}
	line.Selected = checked
	return nil
}

// SelectedTotal is the running total shown next to the checkout button.
func (c *Controller) SelectedTotal() int64 {
	return c.cart.SelectedTotal()
}

// ProceedToCheckout captures the selected lines into a selection snapshot,
// stages it in the scratch store, and navigates to the checkout view.
func (c *Controller) ProceedToCheckout(ctx context.Context) error {
	selected := c.cart.Selected()
	if len(selected) == 0 {
		return ErrNothingSelected
	}

	snapshot := &domain.SelectionSnapshot{
		Items:      make([]domain.SnapshotLine, 0, len(selected)),
		CapturedAt: time.Now(),
	}
	for _, line := range selected {
		snapshot.Items = append(snapshot.Items, domain.SnapshotLine{
			ProductID: line.ProductID,
			Qty:       line.Qty,
			Price:     line.UnitPrice,
			Total:     line.LineTotal(),
		})
	}

	if err := c.store.Put(ctx, snapshot); err != nil {
		return fmt.Errorf("stage selection: %w", err)
	}
	c.nav.Navigate(domain.ViewCheckout)
	return nil
}
