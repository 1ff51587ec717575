package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// EmployeeRepo empleados (usable con conexión o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

func scanEmployee(s rowScanner) (*entity.Employee, error) {
	var (
		e                              entity.Employee
		phone, email                   sql.NullString
		hireDate, createdAt, updatedAt string
	)
	if err := s.Scan(&e.ID, &e.Name, &e.Position, &e.Salary, &hireDate, &phone, &email, &e.IsActive,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}
	e.Phone, e.Email = phone.String, email.String
	var err error
	if e.HireDate, err = parseTime(hireDate); err != nil {
		return nil, err
	}
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// List devuelve los empleados ordenados por nombre. Sin filtro de estado solo activos.
func (r *EmployeeRepo) List(ctx context.Context, f repository.EmployeeFilter) ([]*entity.Employee, error) {
	var w whereBuilder
	if f.Search != "" {
		w.add("name LIKE ?", likePattern(f.Search))
	}
	if f.Position != "" {
		w.add("position = ?", f.Position)
	}
	switch {
	case f.IsActive != nil:
		w.add("is_active = ?", *f.IsActive)
	case !f.IncludeInactive:
		w.add("is_active = 1")
	}
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, name, position, salary, hire_date, phone, email, is_active, created_at, updated_at
		FROM employees`+w.String()+` ORDER BY name, id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return list, nil
}

// Create persiste el empleado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	ts := now()
	e.CreatedAt, e.UpdatedAt = ts, ts
	if e.HireDate.IsZero() {
		e.HireDate = ts
	}
	e.HireDate = storedTime(e.HireDate)
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO employees (name, position, salary, hire_date, phone, email, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Name, e.Position, e.Salary, formatTime(e.HireDate), nullString(e.Phone), nullString(e.Email),
		e.IsActive, formatTime(ts), formatTime(ts),
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", translateConstraint(err))
	}
	if e.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// Update modifica el empleado; false si el ID no existe.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) (bool, error) {
	e.UpdatedAt = now()
	res, err := r.q.ExecContext(ctx, `
		UPDATE employees
		SET name = ?, position = ?, salary = ?, hire_date = ?, phone = ?, email = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		e.Name, e.Position, e.Salary, formatTime(e.HireDate), nullString(e.Phone), nullString(e.Email),
		e.IsActive, formatTime(e.UpdatedAt), e.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update employee: %w", translateConstraint(err))
	}
	return affected(res)
}

// Deactivate es el borrado lógico del empleado; false si el ID no existe.
func (r *EmployeeRepo) Deactivate(ctx context.Context, id int64) (bool, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE employees SET is_active = 0, updated_at = ? WHERE id = ?`, formatTime(now()), id)
	if err != nil {
		return false, fmt.Errorf("deactivate employee: %w", err)
	}
	return affected(res)
}

// CountActive devuelve el número de empleados activos.
func (r *EmployeeRepo) CountActive(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees WHERE is_active = 1`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}

// PayrollRepo nóminas (usable con conexión o tx).
type PayrollRepo struct {
	q Querier
}

// NewPayrollRepository construye el adaptador.
func NewPayrollRepository(q Querier) *PayrollRepo {
	return &PayrollRepo{q: q}
}

// List devuelve las nóminas filtradas, pago más reciente primero.
func (r *PayrollRepo) List(ctx context.Context, f repository.PayrollFilter) ([]*entity.Payroll, error) {
	var w whereBuilder
	if f.EmployeeID != nil {
		w.add("p.employee_id = ?", *f.EmployeeID)
	}
	if f.StartDate != nil {
		w.add("p.paid_date >= ?", dayStart(*f.StartDate))
	}
	if f.EndDate != nil {
		w.add("p.paid_date < ?", nextDay(*f.EndDate))
	}
	rows, err := r.q.QueryContext(ctx, `
		SELECT p.id, p.employee_id, COALESCE(e.name, ''), p.amount, p.period_start, p.period_end, p.paid_date,
		       p.notes, p.created_by, p.created_at
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id`+w.String()+` ORDER BY p.paid_date DESC, p.id DESC`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list payrolls: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Payroll, 0)
	for rows.Next() {
		var (
			p                                       entity.Payroll
			notes                                   sql.NullString
			createdBy                               sql.NullInt64
			periodStart, periodEnd, paid, createdAt string
		)
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.EmployeeName, &p.Amount, &periodStart, &periodEnd, &paid,
			&notes, &createdBy, &createdAt); err != nil {
			return nil, fmt.Errorf("scan payroll: %w", err)
		}
		p.Notes, p.CreatedBy = notes.String, createdBy.Int64
		for _, c := range []struct {
			dst *time.Time
			src string
		}{{&p.PeriodStart, periodStart}, {&p.PeriodEnd, periodEnd}, {&p.PaidDate, paid}, {&p.CreatedAt, createdAt}} {
			if *c.dst, err = parseTime(c.src); err != nil {
				return nil, fmt.Errorf("scan payroll: %w", err)
			}
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list payrolls: %w", err)
	}
	return list, nil
}

// Create persiste la nómina.
func (r *PayrollRepo) Create(ctx context.Context, p *entity.Payroll) error {
	p.CreatedAt = now()
	p.PeriodStart, p.PeriodEnd, p.PaidDate = storedTime(p.PeriodStart), storedTime(p.PeriodEnd), storedTime(p.PaidDate)
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO payrolls (employee_id, amount, period_start, period_end, paid_date, notes, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.EmployeeID, p.Amount, formatTime(p.PeriodStart), formatTime(p.PeriodEnd), formatTime(p.PaidDate),
		nullString(p.Notes), p.CreatedBy, formatTime(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert payroll: %w", translateConstraint(err))
	}
	if p.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("insert payroll: %w", err)
	}
	return nil
}

// Delete elimina la nómina; false si el ID no existe.
func (r *PayrollRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM payrolls WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete payroll: %w", err)
	}
	return affected(res)
}
