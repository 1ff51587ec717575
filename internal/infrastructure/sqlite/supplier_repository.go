package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// SupplierRepo proveedores (usable con conexión o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// List devuelve los proveedores ordenados por nombre; solo activos salvo IncludeInactive.
func (r *SupplierRepo) List(ctx context.Context, f repository.SupplierFilter) ([]*entity.Supplier, error) {
	var w whereBuilder
	if f.Search != "" {
		p := likePattern(f.Search)
		w.add("(name LIKE ? OR contact_person LIKE ? OR email LIKE ? OR phone LIKE ?)", p, p, p, p)
	}
	if !f.IncludeInactive {
		w.add("is_active = 1")
	}
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, name, contact_person, phone, email, address, notes, is_active, created_at, updated_at
		FROM suppliers`+w.String()+` ORDER BY name, id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Supplier, 0)
	for rows.Next() {
		var (
			s                                     entity.Supplier
			contact, phone, email, address, notes sql.NullString
			createdAt, updatedAt                  string
		)
		if err := rows.Scan(&s.ID, &s.Name, &contact, &phone, &email, &address, &notes, &s.IsActive,
			&createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		s.ContactPerson, s.Phone, s.Email = contact.String, phone.String, email.String
		s.Address, s.Notes = address.String, notes.String
		if s.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		if s.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return list, nil
}

// Create persiste el proveedor.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	ts := now()
	s.CreatedAt, s.UpdatedAt = ts, ts
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO suppliers (name, contact_person, phone, email, address, notes, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Name, nullString(s.ContactPerson), nullString(s.Phone), nullString(s.Email), nullString(s.Address),
		nullString(s.Notes), s.IsActive, formatTime(ts), formatTime(ts),
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", translateConstraint(err))
	}
	if s.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// Update modifica el proveedor; false si el ID no existe.
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) (bool, error) {
	s.UpdatedAt = now()
	res, err := r.q.ExecContext(ctx, `
		UPDATE suppliers
		SET name = ?, contact_person = ?, phone = ?, email = ?, address = ?, notes = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		s.Name, nullString(s.ContactPerson), nullString(s.Phone), nullString(s.Email), nullString(s.Address),
		nullString(s.Notes), s.IsActive, formatTime(s.UpdatedAt), s.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update supplier: %w", translateConstraint(err))
	}
	return affected(res)
}

// Deactivate es el borrado lógico del proveedor; false si el ID no existe.
func (r *SupplierRepo) Deactivate(ctx context.Context, id int64) (bool, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE suppliers SET is_active = 0, updated_at = ? WHERE id = ?`, formatTime(now()), id)
	if err != nil {
		return false, fmt.Errorf("deactivate supplier: %w", err)
	}
	return affected(res)
}

// Count devuelve el número de proveedores (activos o no).
func (r *SupplierRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM suppliers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count suppliers: %w", err)
	}
	return n, nil
}
