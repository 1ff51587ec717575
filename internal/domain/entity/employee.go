package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa un empleado del restaurante. El borrado es lógico (IsActive=false).
type Employee struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name" validate:"required,max=200"`
	Position  string          `json:"position" validate:"max=100"`
	Salary    decimal.Decimal `json:"salary" validate:"gte=0"`
	HireDate  time.Time       `json:"hireDate"`
	Phone     string          `json:"phone,omitempty" validate:"max=50"`
	Email     string          `json:"email,omitempty" validate:"omitempty,email"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Payroll pago de nómina a un empleado por un periodo.
type Payroll struct {
	ID           int64           `json:"id"`
	EmployeeID   int64           `json:"employeeId" validate:"gt=0"`
	EmployeeName string          `json:"employeeName,omitempty"`
	Amount       decimal.Decimal `json:"amount" validate:"gt=0"`
	PeriodStart  time.Time       `json:"periodStart" validate:"required"`
	PeriodEnd    time.Time       `json:"periodEnd" validate:"required,gtefield=PeriodStart"`
	PaidDate     time.Time       `json:"paidDate" validate:"required"`
	Notes        string          `json:"notes,omitempty"`
	CreatedBy    int64           `json:"createdBy"`
	CreatedAt    time.Time       `json:"createdAt"`
}
