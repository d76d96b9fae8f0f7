// Package session holds the page-local scratch space used to hand the
// selection snapshot from the cart view to the checkout view. The snapshot is
// consumed by reading, not clearing; it is replaced wholesale by the next
// capture or by a reorder.
package session

import (
	"context"
	"errors"

	"github.com/VanshChoyal/Sea-Arsh/internal/domain"
)

type SnapshotStore interface {
	Put(ctx context.Context, snapshot *domain.SelectionSnapshot) error
	Get(ctx context.Context) (*domain.SelectionSnapshot, error)
	Clear(ctx context.Context) error
}

var ErrNoSnapshot = errors.New("no selection snapshot")
