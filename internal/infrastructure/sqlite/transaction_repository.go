package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// TransactionRepo libro de ventas y gastos (usable con conexión o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `
	t.id, t.type, t.category, t.amount, t.description, t.reference, t.user_id,
	COALESCE(u.full_name, ''), t.employee_id, COALESCE(e.name, ''), t.created_at, t.updated_at`

const transactionFrom = `
	FROM transactions t
	LEFT JOIN users u ON u.id = t.user_id
	LEFT JOIN employees e ON e.id = t.employee_id`

func scanTransaction(s rowScanner) (*entity.Transaction, error) {
	var (
		t           entity.Transaction
		description sql.NullString
		reference   sql.NullString
		employeeID  sql.NullInt64
		createdAt   string
		updatedAt   string
	)
	if err := s.Scan(&t.ID, &t.Type, &t.Category, &t.Amount, &description, &reference, &t.UserID,
		&t.UserName, &employeeID, &t.EmployeeName, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	t.Description = description.String
	t.Reference = reference.String
	t.EmployeeID = int64Ptr(employeeID)
	var err error
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// List devuelve las transacciones filtradas, más recientes primero.
func (r *TransactionRepo) List(ctx context.Context, f repository.TransactionFilter) ([]*entity.Transaction, error) {
	var w whereBuilder
	if f.Search != "" {
		w.add("(t.description LIKE ? OR t.category LIKE ?)", likePattern(f.Search), likePattern(f.Search))
	}
	if f.Type != "" {
		w.add("t.type = ?", f.Type)
	}
	if f.Category != "" {
		w.add("t.category = ?", f.Category)
	}
	query := "SELECT" + transactionColumns + transactionFrom + w.String() + " ORDER BY t.created_at DESC, t.id DESC"

	rows, err := r.q.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return list, nil
}

// GetByID obtiene una transacción por ID; nil si no existe.
func (r *TransactionRepo) GetByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	row := r.q.QueryRowContext(ctx, "SELECT"+transactionColumns+transactionFrom+" WHERE t.id = ?", id)
	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// Create persiste la transacción. Respeta CreatedAt si viene informado.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	ts := now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = ts
	}
	t.CreatedAt = storedTime(t.CreatedAt)
	t.UpdatedAt = ts
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO transactions (type, category, amount, description, reference, user_id, employee_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Type, t.Category, t.Amount, t.Description, nullString(t.Reference), t.UserID,
		nullInt64(t.EmployeeID), formatTime(t.CreatedAt), formatTime(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", translateConstraint(err))
	}
	if t.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// Update modifica la transacción; false si el ID no existe.
func (r *TransactionRepo) Update(ctx context.Context, t *entity.Transaction) (bool, error) {
	t.UpdatedAt = now()
	res, err := r.q.ExecContext(ctx, `
		UPDATE transactions
		SET type = ?, category = ?, amount = ?, description = ?, reference = ?, employee_id = ?, updated_at = ?
		WHERE id = ?`,
		t.Type, t.Category, t.Amount, t.Description, nullString(t.Reference), nullInt64(t.EmployeeID),
		formatTime(t.UpdatedAt), t.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update transaction: %w", translateConstraint(err))
	}
	return affected(res)
}

// Delete elimina la transacción; false si el ID no existe.
func (r *TransactionRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete transaction: %w", err)
	}
	return affected(res)
}
