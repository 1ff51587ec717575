package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// InvoiceRepo facturas y sus líneas (usable con conexión o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `
	id, invoice_number, client_name, client_phone, client_email, total_amount, status, issue_date, due_date,
	notes, created_by, created_at, updated_at`

func scanInvoice(s rowScanner) (*entity.Invoice, error) {
	var (
		inv                             entity.Invoice
		phone, email, due, notes        sql.NullString
		createdBy                       sql.NullInt64
		issueDate, createdAt, updatedAt string
	)
	if err := s.Scan(&inv.ID, &inv.InvoiceNumber, &inv.ClientName, &phone, &email, &inv.TotalAmount, &inv.Status,
		&issueDate, &due, &notes, &createdBy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	inv.ClientPhone, inv.ClientEmail, inv.Notes = phone.String, email.String, notes.String
	inv.CreatedBy = createdBy.Int64
	var err error
	if inv.IssueDate, err = parseTime(issueDate); err != nil {
		return nil, err
	}
	if inv.DueDate, err = parseNullTime(due); err != nil {
		return nil, err
	}
	if inv.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if inv.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &inv, nil
}

// List devuelve las cabeceras de factura filtradas, emisión más reciente primero.
func (r *InvoiceRepo) List(ctx context.Context, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	var w whereBuilder
	if f.Search != "" {
		w.add("(invoice_number LIKE ? OR client_name LIKE ?)", likePattern(f.Search), likePattern(f.Search))
	}
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	if f.StartDate != nil {
		w.add("issue_date >= ?", dayStart(*f.StartDate))
	}
	if f.EndDate != nil {
		w.add("issue_date < ?", nextDay(*f.EndDate))
	}
	rows, err := r.q.QueryContext(ctx, "SELECT"+invoiceColumns+" FROM invoices"+w.String()+" ORDER BY issue_date DESC, id DESC", w.args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return list, nil
}

// GetByID obtiene la cabecera de la factura; nil si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRowContext(ctx, "SELECT"+invoiceColumns+" FROM invoices WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// ListItems devuelve las líneas de la factura en orden de inserción.
func (r *InvoiceRepo) ListItems(ctx context.Context, invoiceID int64) ([]entity.InvoiceItem, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, invoice_id, description, quantity, unit_price, total_price, created_at
		FROM invoice_items WHERE invoice_id = ? ORDER BY id`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()

	items := make([]entity.InvoiceItem, 0)
	for rows.Next() {
		var (
			it        entity.InvoiceItem
			createdAt string
		)
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.Description, &it.Quantity, &it.UnitPrice, &it.TotalPrice,
			&createdAt); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		if it.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	return items, nil
}

// Create persiste la cabecera de la factura (las líneas con InsertItems).
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	ts := now()
	inv.CreatedAt, inv.UpdatedAt = ts, ts
	inv.IssueDate = storedTime(inv.IssueDate)
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO invoices (invoice_number, client_name, client_phone, client_email, total_amount, status,
		                      issue_date, due_date, notes, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.InvoiceNumber, inv.ClientName, nullString(inv.ClientPhone), nullString(inv.ClientEmail), inv.TotalAmount,
		inv.Status, formatTime(inv.IssueDate), formatTimePtr(inv.DueDate), nullString(inv.Notes), inv.CreatedBy,
		formatTime(ts), formatTime(ts),
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", translateConstraint(err))
	}
	if inv.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update modifica la cabecera; false si el ID no existe.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) (bool, error) {
	inv.UpdatedAt = now()
	res, err := r.q.ExecContext(ctx, `
		UPDATE invoices
		SET invoice_number = ?, client_name = ?, client_phone = ?, client_email = ?, total_amount = ?, status = ?,
		    issue_date = ?, due_date = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		inv.InvoiceNumber, inv.ClientName, nullString(inv.ClientPhone), nullString(inv.ClientEmail), inv.TotalAmount,
		inv.Status, formatTime(inv.IssueDate), formatTimePtr(inv.DueDate), nullString(inv.Notes),
		formatTime(inv.UpdatedAt), inv.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update invoice: %w", translateConstraint(err))
	}
	return affected(res)
}

// InsertItems persiste las líneas de la factura; asigna ID e InvoiceID.
func (r *InvoiceRepo) InsertItems(ctx context.Context, invoiceID int64, items []entity.InvoiceItem) error {
	ts := now()
	for i := range items {
		it := &items[i]
		it.InvoiceID, it.CreatedAt = invoiceID, ts
		res, err := r.q.ExecContext(ctx, `
			INSERT INTO invoice_items (invoice_id, description, quantity, unit_price, total_price, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			invoiceID, it.Description, it.Quantity, it.UnitPrice, it.TotalPrice, formatTime(ts),
		)
		if err != nil {
			return fmt.Errorf("insert invoice item: %w", translateConstraint(err))
		}
		if it.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("insert invoice item: %w", err)
		}
	}
	return nil
}

// DeleteItems elimina todas las líneas de la factura.
func (r *InvoiceRepo) DeleteItems(ctx context.Context, invoiceID int64) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM invoice_items WHERE invoice_id = ?`, invoiceID); err != nil {
		return fmt.Errorf("delete invoice items: %w", err)
	}
	return nil
}

// Delete elimina la cabecera; false si el ID no existe.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete invoice: %w", err)
	}
	return affected(res)
}

// CountByStatus devuelve el número de facturas con ese estado.
func (r *InvoiceRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM invoices WHERE status = ?`, status).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}
