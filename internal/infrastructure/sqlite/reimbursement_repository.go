package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// ReimbursementRepo reembolsos a empleados (usable con conexión o tx).
type ReimbursementRepo struct {
	q Querier
}

// NewReimbursementRepository construye el adaptador.
func NewReimbursementRepository(q Querier) *ReimbursementRepo {
	return &ReimbursementRepo{q: q}
}

// List devuelve los reembolsos filtrados, solicitud más reciente primero.
func (r *ReimbursementRepo) List(ctx context.Context, f repository.ReimbursementFilter) ([]*entity.EmployeeReimbursement, error) {
	var w whereBuilder
	if f.Search != "" {
		w.add("(description LIKE ? OR notes LIKE ?)", likePattern(f.Search), likePattern(f.Search))
	}
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	if f.EmployeeID != nil {
		w.add("employee_id = ?", *f.EmployeeID)
	}
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, employee_id, amount, description, status, request_date, approved_date, paid_date,
		       transaction_ids, notes, created_at, updated_at
		FROM employee_reimbursements`+w.String()+` ORDER BY request_date DESC, id DESC`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list reimbursements: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.EmployeeReimbursement, 0)
	for rows.Next() {
		var (
			re                                entity.EmployeeReimbursement
			approved, paid, txIDs, notes      sql.NullString
			requestDate, createdAt, updatedAt string
		)
		if err := rows.Scan(&re.ID, &re.EmployeeID, &re.Amount, &re.Description, &re.Status, &requestDate,
			&approved, &paid, &txIDs, &notes, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan reimbursement: %w", err)
		}
		re.TransactionIDs, re.Notes = txIDs.String, notes.String
		if re.RequestDate, err = parseTime(requestDate); err != nil {
			return nil, fmt.Errorf("scan reimbursement: %w", err)
		}
		if re.ApprovedDate, err = parseNullTime(approved); err != nil {
			return nil, fmt.Errorf("scan reimbursement: %w", err)
		}
		if re.PaidDate, err = parseNullTime(paid); err != nil {
			return nil, fmt.Errorf("scan reimbursement: %w", err)
		}
		if re.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("scan reimbursement: %w", err)
		}
		if re.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("scan reimbursement: %w", err)
		}
		list = append(list, &re)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reimbursements: %w", err)
	}
	return list, nil
}

// Create persiste el reembolso.
func (r *ReimbursementRepo) Create(ctx context.Context, re *entity.EmployeeReimbursement) error {
	ts := now()
	re.CreatedAt, re.UpdatedAt = ts, ts
	re.RequestDate = storedTime(re.RequestDate)
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO employee_reimbursements (employee_id, amount, description, status, request_date, approved_date,
		                                     paid_date, transaction_ids, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		re.EmployeeID, re.Amount, re.Description, re.Status, formatTime(re.RequestDate),
		formatTimePtr(re.ApprovedDate), formatTimePtr(re.PaidDate), nullString(re.TransactionIDs),
		nullString(re.Notes), formatTime(ts), formatTime(ts),
	)
	if err != nil {
		return fmt.Errorf("insert reimbursement: %w", translateConstraint(err))
	}
	if re.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("insert reimbursement: %w", err)
	}
	return nil
}

// Update modifica el reembolso; false si el ID no existe.
func (r *ReimbursementRepo) Update(ctx context.Context, re *entity.EmployeeReimbursement) (bool, error) {
	re.UpdatedAt = now()
	res, err := r.q.ExecContext(ctx, `
		UPDATE employee_reimbursements
		SET employee_id = ?, amount = ?, description = ?, status = ?, request_date = ?, approved_date = ?,
		    paid_date = ?, transaction_ids = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		re.EmployeeID, re.Amount, re.Description, re.Status, formatTime(re.RequestDate),
		formatTimePtr(re.ApprovedDate), formatTimePtr(re.PaidDate), nullString(re.TransactionIDs),
		nullString(re.Notes), formatTime(re.UpdatedAt), re.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update reimbursement: %w", translateConstraint(err))
	}
	return affected(res)
}

// Delete elimina el reembolso; false si el ID no existe.
func (r *ReimbursementRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM employee_reimbursements WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete reimbursement: %w", err)
	}
	return affected(res)
}
