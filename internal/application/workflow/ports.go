package workflow

import (
	"context"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// Los workflows dependen solo de la parte del contrato que usan; cualquier
// repository.Repository (local o remoto) las satisface.

// OrderStore operaciones de pedidos usadas por OrderWorkflow.
type OrderStore interface {
	CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error)
	UpdateOrder(ctx context.Context, o *entity.Order) (bool, error)
	DeleteOrder(ctx context.Context, id int64) (bool, error)
	DeliverOrder(ctx context.Context, orderID, userID int64) (bool, error)
	ListOrderItems(ctx context.Context, orderID int64) ([]*entity.OrderItem, error)
}

// LedgerStore operaciones del libro contable usadas por OrderWorkflow.
type LedgerStore interface {
	CreateTransaction(ctx context.Context, t *entity.Transaction) (*entity.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) (bool, error)
}

// ReimbursementStore persistencia de reembolsos.
type ReimbursementStore interface {
	UpdateReimbursement(ctx context.Context, r *entity.EmployeeReimbursement) (bool, error)
}

// MovementStore registro de movimientos de stock.
type MovementStore interface {
	CreateInventoryMovement(ctx context.Context, m *entity.InventoryMovement) (*entity.InventoryMovement, error)
}

// InvoiceItemSource líneas de factura.
type InvoiceItemSource interface {
	ListInvoiceItems(ctx context.Context, invoiceID int64) ([]*entity.InvoiceItem, error)
}

// DocumentRenderer genera los PDF de facturas y pedidos.
type DocumentRenderer interface {
	InvoicePDF(ctx context.Context, inv *entity.Invoice, items []*entity.InvoiceItem) ([]byte, error)
	OrderPDF(ctx context.Context, o *entity.Order, items []*entity.OrderItem) ([]byte, error)
}

var (
	_ OrderStore         = (repository.Repository)(nil)
	_ LedgerStore        = (repository.Repository)(nil)
	_ ReimbursementStore = (repository.Repository)(nil)
	_ MovementStore      = (repository.Repository)(nil)
	_ InvoiceItemSource  = (repository.Repository)(nil)
)

// StockSource listado de artículos de inventario.
type StockSource interface {
	ListInventory(ctx context.Context, f repository.InventoryFilter) ([]*entity.InventoryItem, error)
}

// PriceSource precios de compra de referencia.
type PriceSource interface {
	ListPurchasePrices(ctx context.Context, f repository.PurchasePriceFilter) ([]*entity.PurchasePrice, error)
}

var (
	_ StockSource = (repository.Repository)(nil)
	_ PriceSource = (repository.Repository)(nil)
)
