package entity

import (
	"fmt"

	"github.com/jhoicas/blackwoods-compta/internal/domain"
)

// Copy devuelve una copia de v; las líneas de pedidos y facturas no se comparten con el original.
func Copy[T any](v *T) *T {
	c := *v
	if d, ok := any(&c).(interface{ detachItems() }); ok {
		d.detachItems()
	}
	return &c
}

// Prepare aplica los valores por defecto y los campos derivados de la entidad
// (totales, margen) y la valida. Ambos backends lo llaman antes de persistir.
func Prepare(v interface{}) error {
	if d, ok := v.(interface{ applyDefaults() }); ok {
		d.applyDefaults()
	}
	return Validate(v)
}

func (o *Order) detachItems()     { o.Items = append([]OrderItem(nil), o.Items...) }
func (inv *Invoice) detachItems() { inv.Items = append([]InvoiceItem(nil), inv.Items...) }

func (o *Order) applyDefaults() {
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	o.RecalculateTotals()
}

func (inv *Invoice) applyDefaults() { inv.RecalculateTotals() }

func (p *SalePrice) applyDefaults() { p.RecalculateMargin() }

func (r *EmployeeReimbursement) applyDefaults() {
	if r.Status == "" {
		r.Status = ReimbursementPending
	}
}

// CheckOrderStatus rechaza con ErrConflict los cambios de estado reservados a la entrega:
// un pedido entregado ya no se modifica y ningún alta o edición lo marca como entregado.
// current vacío significa pedido nuevo.
func CheckOrderStatus(current, next string) error {
	if current == OrderStatusDelivered {
		return fmt.Errorf("pedido ya entregado: %w", domain.ErrConflict)
	}
	if next == OrderStatusDelivered {
		return fmt.Errorf("estado %s solo al entregar el pedido: %w", next, domain.ErrConflict)
	}
	return nil
}
