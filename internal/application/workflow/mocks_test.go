package workflow_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type mockOrders struct{ mock.Mock }

// createdFn permite devolver una copia del pedido recibido (como hace el backend).
type createdFn = func(context.Context, *entity.Order) *entity.Order

func (m *mockOrders) CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	args := m.Called(ctx, o)
	if fn, ok := args.Get(0).(createdFn); ok {
		return fn(ctx, o), args.Error(1)
	}
	out, _ := args.Get(0).(*entity.Order)
	return out, args.Error(1)
}

func (m *mockOrders) UpdateOrder(ctx context.Context, o *entity.Order) (bool, error) {
	args := m.Called(ctx, o)
	return args.Bool(0), args.Error(1)
}

func (m *mockOrders) DeleteOrder(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockOrders) DeliverOrder(ctx context.Context, orderID, userID int64) (bool, error) {
	args := m.Called(ctx, orderID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockOrders) ListOrderItems(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	args := m.Called(ctx, orderID)
	out, _ := args.Get(0).([]*entity.OrderItem)
	return out, args.Error(1)
}

type mockLedger struct{ mock.Mock }

func (m *mockLedger) CreateTransaction(ctx context.Context, t *entity.Transaction) (*entity.Transaction, error) {
	args := m.Called(ctx, t)
	out, _ := args.Get(0).(*entity.Transaction)
	return out, args.Error(1)
}

func (m *mockLedger) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockReimbursements struct{ mock.Mock }

func (m *mockReimbursements) UpdateReimbursement(ctx context.Context, r *entity.EmployeeReimbursement) (bool, error) {
	args := m.Called(ctx, r)
	return args.Bool(0), args.Error(1)
}

type mockMovements struct{ mock.Mock }

func (m *mockMovements) CreateInventoryMovement(ctx context.Context, mv *entity.InventoryMovement) (*entity.InventoryMovement, error) {
	args := m.Called(ctx, mv)
	out, _ := args.Get(0).(*entity.InventoryMovement)
	return out, args.Error(1)
}

type mockInvoiceItems struct{ mock.Mock }

func (m *mockInvoiceItems) ListInvoiceItems(ctx context.Context, invoiceID int64) ([]*entity.InvoiceItem, error) {
	args := m.Called(ctx, invoiceID)
	out, _ := args.Get(0).([]*entity.InvoiceItem)
	return out, args.Error(1)
}

type mockRenderer struct{ mock.Mock }

func (m *mockRenderer) InvoicePDF(ctx context.Context, inv *entity.Invoice, items []*entity.InvoiceItem) ([]byte, error) {
	args := m.Called(ctx, inv, items)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}

func (m *mockRenderer) OrderPDF(ctx context.Context, o *entity.Order, items []*entity.OrderItem) ([]byte, error) {
	args := m.Called(ctx, o, items)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}
