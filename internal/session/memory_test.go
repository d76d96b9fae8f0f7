package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VanshChoyal/Sea-Arsh/internal/domain"
)

func TestMemoryStore_GetWithoutPut(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestMemoryStore_PutGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	snapshot := &domain.SelectionSnapshot{
		Items: []domain.SnapshotLine{
			{ProductID: "p-1", Qty: 2, Price: 100, Total: 200},
		},
		CapturedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Put(ctx, snapshot))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Items, got.Items)

	// Reading does not consume the snapshot.
	got2, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Items, got2.Items)
}

func TestMemoryStore_PutReplacesWholesale(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first := &domain.SelectionSnapshot{Items: []domain.SnapshotLine{{ProductID: "p-1", Qty: 1}}}
	second := &domain.SelectionSnapshot{Items: []domain.SnapshotLine{{ProductID: "p-2", Qty: 3}}}
	require.NoError(t, store.Put(ctx, first))
	require.NoError(t, store.Put(ctx, second))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "p-2", got.Items[0].ProductID)
}

func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &domain.SelectionSnapshot{Items: []domain.SnapshotLine{{ProductID: "p-1", Qty: 1}}}))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestMemoryStore_GetReturnsIndependentCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &domain.SelectionSnapshot{Items: []domain.SnapshotLine{{ProductID: "p-1", Qty: 1}}}))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	got.Items[0].Qty = 99

	again, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Items[0].Qty)
}
