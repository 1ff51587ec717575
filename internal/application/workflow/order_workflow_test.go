package workflow_test

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/blackwoods-compta/internal/application/workflow"
	"github.com/jhoicas/blackwoods-compta/internal/domain"
	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/pkg/logger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var orderDate = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func newOrder() *entity.Order {
	return &entity.Order{
		Supplier:  "Woods Farm",
		OrderDate: orderDate,
		UserID:    1,
		Items: []entity.OrderItem{
			{ProductName: "Pommes de terre", Category: entity.CategoryRawMaterial, Quantity: dec("10"), UnitPrice: dec("5")},
			{ProductName: "Boeuf", Category: entity.CategoryRawMaterial, Quantity: dec("3"), UnitPrice: dec("20")},
		},
	}
}

// persisted simula lo que devuelve el backend al crear: copia con ID.
func persisted(id int64) func(context.Context, *entity.Order) *entity.Order {
	return func(_ context.Context, in *entity.Order) *entity.Order {
		o := *in
		o.ID = id
		return &o
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateWithExpense
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateWithExpense_CreaPedidoGastoYEnlace(t *testing.T) {
	orders, ledger := &mockOrders{}, &mockLedger{}
	w := workflow.NewOrderWorkflow(orders, ledger, logger.Nop())
	ctx := context.Background()

	var created *entity.Order
	orders.On("CreateOrder", ctx, mock.AnythingOfType("*entity.Order")).
		Return(func(ctx context.Context, o *entity.Order) *entity.Order {
			created = persisted(42)(ctx, o)
			return created
		}, nil).Once()
	ledger.On("CreateTransaction", ctx, mock.MatchedBy(func(tx *entity.Transaction) bool {
		return tx.Type == entity.TransactionTypeExpense &&
			tx.Category == entity.CategorySupplies &&
			tx.Amount.Equal(dec("110")) &&
			tx.Reference == created.OrderNumber &&
			tx.Description == "Order "+created.OrderNumber+" - Woods Farm" &&
			tx.CreatedAt.Equal(orderDate) &&
			tx.UserID == 1
	})).Return(&entity.Transaction{ID: 7}, nil).Once()
	orders.On("UpdateOrder", ctx, mock.MatchedBy(func(o *entity.Order) bool {
		return o.ID == 42 && o.TransactionID != nil && *o.TransactionID == 7
	})).Return(true, nil).Once()

	in := newOrder()
	res, err := w.CreateWithExpense(ctx, in)
	require.NoError(t, err)

	assert.False(t, res.Partial)
	assert.NoError(t, res.Cause)
	assert.Equal(t, int64(7), res.Expense.ID)
	require.NotNil(t, res.Order.TransactionID)
	assert.Equal(t, int64(7), *res.Order.TransactionID)
	assert.True(t, res.Order.TotalAmount.Equal(dec("110")))
	assert.Equal(t, entity.OrderStatusPending, res.Order.Status)
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{8}-\d{6}-[0-9A-F]{4}$`), res.Order.OrderNumber)

	// El valor del llamador no se toca.
	assert.Empty(t, in.OrderNumber)
	assert.Zero(t, in.ID)
	orders.AssertExpectations(t)
	ledger.AssertExpectations(t)
}

func TestCreateWithExpense_FalloDelGastoEsParcial(t *testing.T) {
	orders, ledger := &mockOrders{}, &mockLedger{}
	var logs bytes.Buffer
	w := workflow.NewOrderWorkflow(orders, ledger, logger.FromWriter(&logs))
	ctx := context.Background()

	orders.On("CreateOrder", ctx, mock.Anything).Return(persisted(42), nil).Once()
	ledger.On("CreateTransaction", ctx, mock.Anything).Return(nil, domain.ErrUnavailable).Once()

	res, err := w.CreateWithExpense(ctx, newOrder())
	require.NoError(t, err)
	assert.True(t, res.Partial)
	assert.ErrorIs(t, res.Cause, domain.ErrUnavailable)
	assert.Equal(t, int64(42), res.Order.ID)
	assert.Nil(t, res.Expense)
	assert.Nil(t, res.Order.TransactionID)
	assert.Contains(t, logs.String(), "partial order workflow")
	assert.Contains(t, logs.String(), `"level":"warn"`)
	orders.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything)
}

func TestCreateWithExpense_FalloDelEnlaceEsParcial(t *testing.T) {
	orders, ledger := &mockOrders{}, &mockLedger{}
	w := workflow.NewOrderWorkflow(orders, ledger, logger.Nop())
	ctx := context.Background()

	orders.On("CreateOrder", ctx, mock.Anything).Return(persisted(42), nil).Once()
	ledger.On("CreateTransaction", ctx, mock.Anything).Return(&entity.Transaction{ID: 7}, nil).Once()
	orders.On("UpdateOrder", ctx, mock.Anything).Return(false, nil).Once()

	res, err := w.CreateWithExpense(ctx, newOrder())
	require.NoError(t, err)
	assert.True(t, res.Partial)
	assert.ErrorIs(t, res.Cause, domain.ErrNotFound)
	assert.Equal(t, int64(7), res.Expense.ID)
	assert.Nil(t, res.Order.TransactionID)
}

func TestCreateWithExpense_FalloDelPedidoNoCreaGasto(t *testing.T) {
	orders, ledger := &mockOrders{}, &mockLedger{}
	w := workflow.NewOrderWorkflow(orders, ledger, logger.Nop())
	ctx := context.Background()

	orders.On("CreateOrder", ctx, mock.Anything).Return(nil, domain.ErrValidation).Once()

	res, err := w.CreateWithExpense(ctx, newOrder())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrValidation)
	ledger.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestCreateWithExpense_PedidoSinImporteNoGeneraGasto(t *testing.T) {
	orders, ledger := &mockOrders{}, &mockLedger{}
	w := workflow.NewOrderWorkflow(orders, ledger, logger.Nop())
	ctx := context.Background()

	orders.On("CreateOrder", ctx, mock.Anything).Return(persisted(5), nil).Once()

	o := newOrder()
	o.Items = nil
	o.OrderNumber = "ORD-MANUEL"
	res, err := w.CreateWithExpense(ctx, o)
	require.NoError(t, err)
	assert.False(t, res.Partial)
	assert.Nil(t, res.Expense)
	assert.Equal(t, "ORD-MANUEL", res.Order.OrderNumber)
	ledger.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// Deliver / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDeliver_RechazaPedidoNoPendienteSinLlamarAlBackend(t *testing.T) {
	orders := &mockOrders{}
	w := workflow.NewOrderWorkflow(orders, &mockLedger{}, logger.Nop())

	for _, status := range []string{entity.OrderStatusDelivered, entity.OrderStatusCancelled} {
		ok, err := w.Deliver(context.Background(), &entity.Order{ID: 3, Status: status}, 1)
		assert.False(t, ok)
		assert.ErrorIs(t, err, domain.ErrConflict)
	}
	orders.AssertNotCalled(t, "DeliverOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeliver_ActualizaElValorDelLlamador(t *testing.T) {
	orders := &mockOrders{}
	w := workflow.NewOrderWorkflow(orders, &mockLedger{}, logger.Nop())
	ctx := context.Background()
	orders.On("DeliverOrder", ctx, int64(3), int64(1)).Return(true, nil).Once()

	o := &entity.Order{ID: 3, Status: entity.OrderStatusPending}
	ok, err := w.Deliver(ctx, o, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entity.OrderStatusDelivered, o.Status)
	assert.NotNil(t, o.DeliveryDate)
}

func TestDeliver_ErrorDelBackendNoMutaElPedido(t *testing.T) {
	orders := &mockOrders{}
	w := workflow.NewOrderWorkflow(orders, &mockLedger{}, logger.Nop())
	ctx := context.Background()
	orders.On("DeliverOrder", ctx, int64(3), int64(1)).Return(false, domain.ErrUnavailable).Once()

	o := &entity.Order{ID: 3, Status: entity.OrderStatusPending}
	_, err := w.Deliver(ctx, o, 1)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Equal(t, entity.OrderStatusPending, o.Status)
	assert.Nil(t, o.DeliveryDate)
}

func TestDelete_BorraGastoYLuegoPedido(t *testing.T) {
	orders, ledger := &mockOrders{}, &mockLedger{}
	w := workflow.NewOrderWorkflow(orders, ledger, logger.Nop())
	ctx := context.Background()
	txID := int64(7)

	var calls []string
	ledger.On("DeleteTransaction", ctx, txID).Run(func(mock.Arguments) { calls = append(calls, "tx") }).
		Return(false, errors.New("red caída")).Once()
	orders.On("DeleteOrder", ctx, int64(42)).Run(func(mock.Arguments) { calls = append(calls, "order") }).
		Return(true, nil).Once()

	ok, err := w.Delete(ctx, &entity.Order{ID: 42, TransactionID: &txID})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"tx", "order"}, calls)
}

func TestNewOrderNumber_Formato(t *testing.T) {
	n := workflow.NewOrderNumber(orderDate)
	assert.Regexp(t, `^ORD-20240315-093000-[0-9A-F]{4}$`, n)
}
