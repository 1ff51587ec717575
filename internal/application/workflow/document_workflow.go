package workflow

import (
	"context"
	"fmt"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
)

// DocumentWorkflow exporta facturas y pedidos a PDF cargando sus líneas por el contrato.
type DocumentWorkflow struct {
	invoices InvoiceItemSource
	orders   OrderStore
	renderer DocumentRenderer
}

func NewDocumentWorkflow(invoices InvoiceItemSource, orders OrderStore, renderer DocumentRenderer) *DocumentWorkflow {
	return &DocumentWorkflow{invoices: invoices, orders: orders, renderer: renderer}
}

// InvoicePDF devuelve el PDF y el nombre de archivo sugerido.
func (w *DocumentWorkflow) InvoicePDF(ctx context.Context, inv *entity.Invoice) ([]byte, string, error) {
	items, err := w.invoices.ListInvoiceItems(ctx, inv.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: líneas de factura %d: %w", inv.ID, err)
	}
	out, err := w.renderer.InvoicePDF(ctx, inv, items)
	if err != nil {
		return nil, "", err
	}
	return out, fileName("facture", inv.InvoiceNumber, inv.ID), nil
}

// OrderPDF devuelve el PDF del pedido y el nombre de archivo sugerido.
func (w *DocumentWorkflow) OrderPDF(ctx context.Context, o *entity.Order) ([]byte, string, error) {
	items, err := w.orders.ListOrderItems(ctx, o.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: líneas de pedido %d: %w", o.ID, err)
	}
	out, err := w.renderer.OrderPDF(ctx, o, items)
	if err != nil {
		return nil, "", err
	}
	return out, fileName("commande", o.OrderNumber, o.ID), nil
}

func fileName(kind, number string, id int64) string {
	if number == "" {
		return fmt.Sprintf("%s-%d.pdf", kind, id)
	}
	return kind + "-" + number + ".pdf"
}
