package checkout

import (
	"context"

	"github.com/VanshChoyal/Sea-Arsh/internal/api"
	"github.com/VanshChoyal/Sea-Arsh/internal/domain"
)

// MockBackend implements Backend for testing.
type MockBackend struct {
	Products map[string]*api.Product

	Pending      *domain.PendingPaymentOrder
	CreateErr    error
	CreateCalls  int
	CreatedWith  *api.CreateOrderRequest
	VerifyStatus string
	VerifyErr    error
	VerifyCalls  int
	ProductCalls int
}

func (m *MockBackend) GetProduct(_ context.Context, id string) (*api.Product, error) {
	m.ProductCalls++
	p, ok := m.Products[id]
	if !ok {
		return nil, api.ErrProductUnavailable
	}
	return p, nil
}

func (m *MockBackend) CreateOrder(_ context.Context, req api.CreateOrderRequest) (*domain.PendingPaymentOrder, error) {
	m.CreateCalls++
	m.CreatedWith = &req
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	return m.Pending, nil
}

func (m *MockBackend) VerifyPayment(context.Context, domain.PaymentResult) (string, error) {
	m.VerifyCalls++
	if m.VerifyErr != nil {
		return "", m.VerifyErr
	}
	return m.VerifyStatus, nil
}

// MockWidget implements Widget for testing.
type MockWidget struct {
	Result    *domain.PaymentResult
	Err       error
	OpenCalls int
	Opened    *domain.PendingPaymentOrder
}

func (m *MockWidget) Open(_ context.Context, order domain.PendingPaymentOrder) (*domain.PaymentResult, error) {
	m.OpenCalls++
	m.Opened = &order
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

type MockNav struct {
	Views []domain.View
}

func (m *MockNav) Navigate(view domain.View) {
	m.Views = append(m.Views, view)
}

type MockNotifier struct {
	Messages []string
}

func (m *MockNotifier) Notify(message string) {
	m.Messages = append(m.Messages, message)
}
