package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VanshChoyal/Sea-Arsh/internal/domain"
	"github.com/VanshChoyal/Sea-Arsh/internal/session"
)

type mockBackend struct {
	orders       []domain.Order
	ordersErr    error
	cancelStatus string
	cancelErr    error
	cancelCalls  int
	reorderCart  []domain.SnapshotLine
	reorderErr   error

	lastShowCancelled bool
}

func (m *mockBackend) GetOrders(_ context.Context, showCancelled bool) ([]domain.Order, error) {
	m.lastShowCancelled = showCancelled
	if m.ordersErr != nil {
		return nil, m.ordersErr
	}
	if showCancelled {
		return m.orders, nil
	}
	var filtered []domain.Order
	for _, o := range m.orders {
		if !o.Cancelled() {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (m *mockBackend) CancelOrder(context.Context, string) (string, error) {
	m.cancelCalls++
	return m.cancelStatus, m.cancelErr
}

func (m *mockBackend) Reorder(context.Context, string) ([]domain.SnapshotLine, error) {
	return m.reorderCart, m.reorderErr
}

type mockNav struct {
	views []domain.View
}

func (m *mockNav) Navigate(view domain.View) { m.views = append(m.views, view) }

type mockNotifier struct {
	messages []string
}

func (m *mockNotifier) Notify(message string) { m.messages = append(m.messages, message) }

type mockConfirmer struct {
	answer bool
	asked  int
}

func (m *mockConfirmer) Confirm(string) bool {
	m.asked++
	return m.answer
}

func newFixture(orders []domain.Order) (*Controller, *mockBackend, *session.MemoryStore, *mockNav, *mockNotifier, *mockConfirmer) {
	backend := &mockBackend{orders: orders, cancelStatus: domain.OrderStatusCancelled}
	store := session.NewMemoryStore()
	nav := &mockNav{}
	notify := &mockNotifier{}
	confirm := &mockConfirmer{answer: true}
	return NewController(backend, store, nav, notify, confirm), backend, store, nav, notify, confirm
}

func TestLoad_ProjectsCards(t *testing.T) {
	ctrl, _, _, _, _, _ := newFixture([]domain.Order{
		{OrderID: "o-1", Timestamp: "2025-11-20 10:00:00", Status: "", DeliveryETA: "2025-11-27",
			Items: []domain.OrderItem{{Qty: 2, Name: "Tote", Total: 200}}},
		{OrderID: "o-2", Status: domain.OrderStatusCancelled},
	})

	require.NoError(t, ctrl.Load(context.Background(), true))

	cards := ctrl.Cards()
	require.Len(t, cards, 2)

	assert.Equal(t, domain.OrderStatusSuccess, cards[0].Status, "blank status renders as success")
	assert.False(t, cards[0].Dimmed)
	assert.True(t, cards[0].ShowActions)

	assert.True(t, cards[1].Dimmed)
	assert.False(t, cards[1].ShowActions, "cancelled orders never show action buttons")
}

func TestLoad_FilterFlagPassedThrough(t *testing.T) {
	ctrl, backend, _, _, _, _ := newFixture([]domain.Order{
		{OrderID: "o-1"},
		{OrderID: "o-2", Status: domain.OrderStatusCancelled},
	})

	require.NoError(t, ctrl.Load(context.Background(), false))
	assert.False(t, backend.lastShowCancelled)
	assert.Len(t, ctrl.Cards(), 1)
}

func TestCancel_DeclinedConfirmationSendsNothing(t *testing.T) {
	ctrl, backend, _, _, _, confirm := newFixture(nil)
	confirm.answer = false

	require.NoError(t, ctrl.Cancel(context.Background(), "o-1"))
	assert.Equal(t, 1, confirm.asked)
	assert.Equal(t, 0, backend.cancelCalls)
}

func TestCancel_AcknowledgedReloads(t *testing.T) {
	ctrl, backend, _, _, notify, _ := newFixture([]domain.Order{
		{OrderID: "o-1", Status: domain.OrderStatusCancelled},
	})
	require.NoError(t, ctrl.Load(context.Background(), false))

	require.NoError(t, ctrl.Cancel(context.Background(), "o-1"))
	assert.Equal(t, 1, backend.cancelCalls)
	assert.Contains(t, notify.messages, "Order cancelled successfully.")

	// Reloaded without cancelled orders: the card is gone, so no action
	// button pair can ever re-render for it.
	assert.Empty(t, ctrl.Cards())
}

func TestCancel_UnacknowledgedSurfaces(t *testing.T) {
	ctrl, backend, _, _, notify, _ := newFixture(nil)
	backend.cancelStatus = "pending"

	err := ctrl.Cancel(context.Background(), "o-1")
	assert.ErrorIs(t, err, ErrCancelNotAcknowledged)
	assert.Contains(t, notify.messages, "Could not cancel the order.")
}

func TestCancel_BackendError(t *testing.T) {
	ctrl, backend, _, _, _, _ := newFixture(nil)
	backend.cancelErr = errors.New("boom")

	err := ctrl.Cancel(context.Background(), "o-1")
	assert.Error(t, err)
}

func TestReorder_StagesSnapshotAndNavigates(t *testing.T) {
	ctrl, backend, store, nav, _, _ := newFixture(nil)
	backend.reorderCart = []domain.SnapshotLine{
		{ProductID: "p-1", Qty: 2, Price: 100, Total: 200},
	}

	require.NoError(t, ctrl.Reorder(context.Background(), "o-1"))

	snapshot, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, backend.reorderCart, snapshot.Items)
	assert.Equal(t, []domain.View{domain.ViewCheckout}, nav.views)
}

func TestReorder_AbsentCartLeavesSnapshotUntouched(t *testing.T) {
	ctrl, _, store, nav, notify, _ := newFixture(nil)

	err := ctrl.Reorder(context.Background(), "o-1")
	assert.ErrorIs(t, err, ErrReorderUnavailable)
	assert.Contains(t, notify.messages, "Unable to reorder.")

	_, err = store.Get(context.Background())
	assert.ErrorIs(t, err, session.ErrNoSnapshot)
	assert.Empty(t, nav.views)
}

func TestReorder_ReplacesExistingSnapshot(t *testing.T) {
	ctrl, backend, store, _, _, _ := newFixture(nil)
	require.NoError(t, store.Put(context.Background(), &domain.SelectionSnapshot{
		Items: []domain.SnapshotLine{{ProductID: "old", Qty: 1}},
	}))
	backend.reorderCart = []domain.SnapshotLine{{ProductID: "new", Qty: 1, Price: 50, Total: 50}}

	require.NoError(t, ctrl.Reorder(context.Background(), "o-1"))

	snapshot, err := store.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "new", snapshot.Items[0].ProductID)
}
