package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción contable.
const (
	TransactionTypeSale    = "Sale"
	TransactionTypeExpense = "Expense"
)

// CategorySupplies categoría de los gastos generados por pedidos a proveedores.
const CategorySupplies = "Supplies"

// Transaction es una línea del libro: venta o gasto.
// UserName y EmployeeName se resuelven por join y son de solo lectura.
type Transaction struct {
	ID           int64           `json:"id"`
	Type         string          `json:"type" validate:"required,oneof=Sale Expense"`
	Category     string          `json:"category" validate:"required,max=100"`
	Amount       decimal.Decimal `json:"amount" validate:"gt=0"`
	Description  string          `json:"description" validate:"max=500"`
	Reference    string          `json:"reference,omitempty" validate:"max=100"`
	UserID       int64           `json:"userId" validate:"gt=0"`
	UserName     string          `json:"userName,omitempty"`
	EmployeeID   *int64          `json:"employeeId,omitempty"`
	EmployeeName string          `json:"employeeName,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// IsSale indica si la transacción suma a los ingresos.
func (t *Transaction) IsSale() bool { return t.Type == TransactionTypeSale }
