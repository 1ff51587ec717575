package repository

import (
	"context"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
)

// TransactionRepository libro de ventas y gastos.
type TransactionRepository interface {
	ListTransactions(ctx context.Context, f TransactionFilter) ([]*entity.Transaction, error)
	CreateTransaction(ctx context.Context, t *entity.Transaction) (*entity.Transaction, error)
	UpdateTransaction(ctx context.Context, t *entity.Transaction) (bool, error)
	DeleteTransaction(ctx context.Context, id int64) (bool, error)
}

// InvoiceRepository facturas con sus líneas (agregado completo).
type InvoiceRepository interface {
	ListInvoices(ctx context.Context, f InvoiceFilter) ([]*entity.Invoice, error)
	ListInvoiceItems(ctx context.Context, invoiceID int64) ([]*entity.InvoiceItem, error)
	CreateInvoice(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error)
	// UpdateInvoice reemplaza cabecera y líneas.
	UpdateInvoice(ctx context.Context, inv *entity.Invoice) (bool, error)
	DeleteInvoice(ctx context.Context, id int64) (bool, error)
}

// PriceRepository precios de compra y de venta de referencia.
type PriceRepository interface {
	ListPurchasePrices(ctx context.Context, f PurchasePriceFilter) ([]*entity.PurchasePrice, error)
	CreatePurchasePrice(ctx context.Context, p *entity.PurchasePrice) (*entity.PurchasePrice, error)
	UpdatePurchasePrice(ctx context.Context, p *entity.PurchasePrice) (bool, error)
	DeletePurchasePrice(ctx context.Context, id int64) (bool, error)

	ListSalePrices(ctx context.Context, f SalePriceFilter) ([]*entity.SalePrice, error)
	CreateSalePrice(ctx context.Context, p *entity.SalePrice) (*entity.SalePrice, error)
	UpdateSalePrice(ctx context.Context, p *entity.SalePrice) (bool, error)
	DeleteSalePrice(ctx context.Context, id int64) (bool, error)
}
