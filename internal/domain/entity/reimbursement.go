package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/blackwoods-compta/internal/domain"
)

// Estados de reembolso a empleado.
const (
	ReimbursementPending  = "Pending"
	ReimbursementApproved = "Approved"
	ReimbursementPaid     = "Paid"
	ReimbursementRejected = "Rejected"
)

// reimbursementTransitions estados destino permitidos desde cada estado.
// Paid y Rejected son terminales.
var reimbursementTransitions = map[string][]string{
	ReimbursementPending:  {ReimbursementApproved, ReimbursementRejected},
	ReimbursementApproved: {ReimbursementPaid},
}

// EmployeeReimbursement solicitud de reembolso de gastos adelantados por un empleado.
type EmployeeReimbursement struct {
	ID             int64           `json:"id"`
	EmployeeID     int64           `json:"employeeId" validate:"gt=0"`
	Amount         decimal.Decimal `json:"amount" validate:"gt=0"`
	Description    string          `json:"description" validate:"required,max=500"`
	Status         string          `json:"status" validate:"required,oneof=Pending Approved Paid Rejected"`
	RequestDate    time.Time       `json:"requestDate" validate:"required"`
	ApprovedDate   *time.Time      `json:"approvedDate,omitempty"`
	PaidDate       *time.Time      `json:"paidDate,omitempty"`
	TransactionIDs string          `json:"transactionIds,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// CanTransition indica si el paso from → to está permitido.
func CanTransition(from, to string) bool {
	for _, s := range reimbursementTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition aplica el cambio de estado y fija las fechas asociadas.
// Si el paso no está permitido devuelve ErrInvalidTransition y no modifica r.
func (r *EmployeeReimbursement) Transition(to string, at time.Time) error {
	if !CanTransition(r.Status, to) {
		return fmt.Errorf("reembolso %d de %s a %s: %w", r.ID, r.Status, to, domain.ErrInvalidTransition)
	}
	r.Status = to
	switch to {
	case ReimbursementApproved:
		r.ApprovedDate = &at
	case ReimbursementPaid:
		r.PaidDate = &at
	}
	return nil
}
