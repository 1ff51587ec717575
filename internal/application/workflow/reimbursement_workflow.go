package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/pkg/logger"
)

// ReimbursementWorkflow transiciones de estado de los reembolsos.
type ReimbursementWorkflow struct {
	store ReimbursementStore
	log   *logger.Logger
	now   func() time.Time
}

func NewReimbursementWorkflow(store ReimbursementStore, log *logger.Logger) *ReimbursementWorkflow {
	return &ReimbursementWorkflow{store: store, log: log.Component("reimbursement_workflow"), now: time.Now}
}

// Approve Pending → Approved.
func (w *ReimbursementWorkflow) Approve(ctx context.Context, r *entity.EmployeeReimbursement) (bool, error) {
	return w.transition(ctx, r, entity.ReimbursementApproved)
}

// Pay Approved → Paid.
func (w *ReimbursementWorkflow) Pay(ctx context.Context, r *entity.EmployeeReimbursement) (bool, error) {
	return w.transition(ctx, r, entity.ReimbursementPaid)
}

// Reject Pending → Rejected.
func (w *ReimbursementWorkflow) Reject(ctx context.Context, r *entity.EmployeeReimbursement) (bool, error) {
	return w.transition(ctx, r, entity.ReimbursementRejected)
}

// transition valida el paso sobre una copia; r solo cambia si el backend confirma la actualización.
func (w *ReimbursementWorkflow) transition(ctx context.Context, r *entity.EmployeeReimbursement, to string) (bool, error) {
	next := *r
	if err := next.Transition(to, w.now()); err != nil {
		return false, err
	}
	found, err := w.store.UpdateReimbursement(ctx, &next)
	if err != nil {
		return false, fmt.Errorf("reembolso %d a %s: %w", r.ID, to, err)
	}
	if !found {
		return false, nil
	}
	w.log.Info().Int64("reimbursement_id", r.ID).Str("from", r.Status).Str("to", to).Msg("reembolso actualizado")
	*r = next
	return true, nil
}

// AllowedTransitions estados alcanzables desde el estado actual de r.
func AllowedTransitions(r *entity.EmployeeReimbursement) []string {
	var out []string
	for _, to := range []string{entity.ReimbursementApproved, entity.ReimbursementPaid, entity.ReimbursementRejected} {
		if entity.CanTransition(r.Status, to) {
			out = append(out, to)
		}
	}
	return out
}
