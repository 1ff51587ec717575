package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura.
const (
	InvoiceStatusDraft     = "Draft"
	InvoiceStatusPending   = "Pending"
	InvoiceStatusPaid      = "Paid"
	InvoiceStatusOverdue   = "Overdue"
	InvoiceStatusCancelled = "Cancelled"
)

// Invoice factura emitida a un cliente. TotalAmount = Σ TotalPrice de los ítems.
type Invoice struct {
	ID            int64           `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber" validate:"required,max=50"`
	ClientName    string          `json:"clientName" validate:"required,max=200"`
	ClientPhone   string          `json:"clientPhone,omitempty" validate:"max=50"`
	ClientEmail   string          `json:"clientEmail,omitempty" validate:"omitempty,email"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status" validate:"required,oneof=Draft Pending Paid Overdue Cancelled"`
	IssueDate     time.Time       `json:"issueDate" validate:"required"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedBy     int64           `json:"createdBy"`
	Items         []InvoiceItem   `json:"items" validate:"dive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// InvoiceItem línea de factura.
type InvoiceItem struct {
	ID          int64           `json:"id"`
	InvoiceID   int64           `json:"invoiceId"`
	Description string          `json:"description" validate:"required,max=300"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gt=0"`
	UnitPrice   decimal.Decimal `json:"unitPrice" validate:"gte=0"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// RecalculateTotals fija TotalPrice de cada ítem y TotalAmount de la factura.
func (inv *Invoice) RecalculateTotals() {
	total := decimal.Zero
	for i := range inv.Items {
		inv.Items[i].TotalPrice = inv.Items[i].Quantity.Mul(inv.Items[i].UnitPrice)
		total = total.Add(inv.Items[i].TotalPrice)
	}
	inv.TotalAmount = total
}
