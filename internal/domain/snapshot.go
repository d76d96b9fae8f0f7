package domain

import (
	"errors"
	"time"
)

// SnapshotKey is the fixed scratch-space key the selection handoff lives
// under, between the cart view and the checkout view.
const SnapshotKey = "selected_cart_items"

type SnapshotLine struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
	Price     int64  `json:"price"`
	Total     int64  `json:"total"`
}

// SelectionSnapshot captures the subset of cart lines the shopper selected at
// proceed-to-checkout time. It is replaced wholesale by the next capture (or
// by a reorder) and is never synchronized with later server-side cart edits.
type SelectionSnapshot struct {
	Items      []SnapshotLine `json:"items"`
	CapturedAt time.Time      `json:"captured_at"`
}

func (s *SelectionSnapshot) Empty() bool {
	return s == nil || len(s.Items) == 0
}

var (
	ErrEmptySelection = errors.New("no items selected")
	ErrInvalidLine    = errors.New("invalid item in selection")
	ErrZeroQuantity   = errors.New("quantity must be positive")
)

// Validate runs the client-side checks made before any order-creation request
// is sent: a non-empty selection whose lines all carry a product id and a
// positive quantity.
func (s *SelectionSnapshot) Validate() error {
	if s.Empty() {
		return ErrEmptySelection
	}
	for _, item := range s.Items {
		if item.ProductID == "" {
			return ErrInvalidLine
		}
		if item.Qty <= 0 {
			return ErrZeroQuantity
		}
	}
	return nil
}
