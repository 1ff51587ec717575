// Package workflow agrupa los procedimientos que combinan varias entidades del contrato
// (pedido + gasto, entrega, reembolsos, movimientos de stock, documentos PDF).
package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/blackwoods-compta/internal/domain"
	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/pkg/logger"
)

// OrderResult resultado de crear un pedido con su gasto.
// Partial indica que el pedido quedó persistido sin gasto enlazado (o sin enlace);
// Cause guarda el fallo que lo dejó así.
type OrderResult struct {
	Order   *entity.Order
	Expense *entity.Transaction
	Partial bool
	Cause   error
}

// OrderWorkflow pedidos a proveedores: alta con gasto, entrega y borrado.
type OrderWorkflow struct {
	orders OrderStore
	ledger LedgerStore
	log    *logger.Logger
	now    func() time.Time
}

// NewOrderWorkflow construye el workflow.
func NewOrderWorkflow(orders OrderStore, ledger LedgerStore, log *logger.Logger) *OrderWorkflow {
	return &OrderWorkflow{orders: orders, ledger: ledger, log: log.Component("order_workflow"), now: time.Now}
}

// NewOrderNumber genera un número ORD-yyyymmdd-hhmmss-xxxx.
func NewOrderNumber(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return "ORD-" + at.Format("20060102-150405") + "-" + suffix
}

// CreateWithExpense crea el pedido, luego un gasto "Supplies" por su total y por último
// enlaza el gasto al pedido. Solo el alta del pedido es obligatoria: si falla el gasto
// o el enlace, el pedido se conserva y el resultado queda marcado como parcial.
// Un pedido sin importe no genera gasto.
func (w *OrderWorkflow) CreateWithExpense(ctx context.Context, order *entity.Order) (*OrderResult, error) {
	o := *order
	o.Items = append([]entity.OrderItem(nil), order.Items...)
	now := w.now()
	if o.OrderNumber == "" {
		o.OrderNumber = NewOrderNumber(now)
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = now
	}
	if o.Status == "" {
		o.Status = entity.OrderStatusPending
	}
	o.RecalculateTotals()

	created, err := w.orders.CreateOrder(ctx, &o)
	if err != nil {
		w.log.Error().Err(err).Str("order_number", o.OrderNumber).Msg("no se pudo crear el pedido")
		return nil, fmt.Errorf("crear pedido %s: %w", o.OrderNumber, err)
	}
	res := &OrderResult{Order: created}
	if !created.TotalAmount.IsPositive() {
		return res, nil
	}

	expense, err := w.ledger.CreateTransaction(ctx, &entity.Transaction{
		Type:        entity.TransactionTypeExpense,
		Category:    entity.CategorySupplies,
		Amount:      created.TotalAmount,
		Description: fmt.Sprintf("Order %s - %s", created.OrderNumber, created.Supplier),
		Reference:   created.OrderNumber,
		UserID:      created.UserID,
		CreatedAt:   created.OrderDate,
	})
	if err != nil {
		return w.partial(res, "crear gasto", err), nil
	}
	res.Expense = expense

	linked := *created
	linked.TransactionID = &expense.ID
	found, err := w.orders.UpdateOrder(ctx, &linked)
	if err == nil && !found {
		err = fmt.Errorf("pedido %d: %w", created.ID, domain.ErrNotFound)
	}
	if err != nil {
		return w.partial(res, "enlazar gasto", err), nil
	}
	res.Order = &linked
	return res, nil
}

func (w *OrderWorkflow) partial(res *OrderResult, step string, err error) *OrderResult {
	res.Partial = true
	res.Cause = fmt.Errorf("%s: %w", step, err)
	ev := w.log.Warn().Err(err).Str("step", step).
		Int64("order_id", res.Order.ID).Str("order_number", res.Order.OrderNumber)
	if res.Expense != nil {
		ev = ev.Int64("transaction_id", res.Expense.ID)
	}
	ev.Msg("partial order workflow")
	return res
}

// Deliver entrega el pedido (estado + ingreso al inventario en el backend).
// Un pedido que no está pendiente se rechaza sin llamar al backend.
func (w *OrderWorkflow) Deliver(ctx context.Context, order *entity.Order, userID int64) (bool, error) {
	if !order.IsPending() {
		return false, fmt.Errorf("pedido %s en estado %s: %w", order.OrderNumber, order.Status, domain.ErrConflict)
	}
	ok, err := w.orders.DeliverOrder(ctx, order.ID, userID)
	if err != nil {
		return false, err
	}
	if ok {
		at := w.now()
		order.Status = entity.OrderStatusDelivered
		order.DeliveryDate = &at
	}
	return ok, nil
}

// Delete borra primero el gasto enlazado (si lo hay) y después el pedido.
// Un fallo al borrar el gasto se registra y no impide borrar el pedido.
func (w *OrderWorkflow) Delete(ctx context.Context, order *entity.Order) (bool, error) {
	if order.TransactionID != nil {
		if _, err := w.ledger.DeleteTransaction(ctx, *order.TransactionID); err != nil {
			w.log.Warn().Err(err).Int64("order_id", order.ID).Int64("transaction_id", *order.TransactionID).
				Msg("no se pudo borrar el gasto del pedido")
		}
	}
	return w.orders.DeleteOrder(ctx, order.ID)
}
