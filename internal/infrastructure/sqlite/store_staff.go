package sqlite

import (
	"context"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// ── Employees ─────────────────────────────────────────────────────────────────

func (s *Store) ListEmployees(ctx context.Context, f repository.EmployeeFilter) ([]*entity.Employee, error) {
	list, err := s.repos.Employees.List(ctx, f)
	if err != nil {
		return []*entity.Employee{}, s.fail("ListEmployees", err)
	}
	return list, nil
}

func (s *Store) CreateEmployee(ctx context.Context, e *entity.Employee) (*entity.Employee, error) {
	return createRow(ctx, s, "CreateEmployee", e, s.repos.Employees.Create)
}

func (s *Store) UpdateEmployee(ctx context.Context, e *entity.Employee) (bool, error) {
	return updateRow(ctx, s, "UpdateEmployee", e, s.repos.Employees.Update)
}

// DeleteEmployee desactiva el empleado (borrado lógico).
func (s *Store) DeleteEmployee(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repos.Employees.Deactivate(ctx, id)
	if err != nil {
		return false, s.fail("DeleteEmployee", err)
	}
	return ok, nil
}

// ── Payrolls ──────────────────────────────────────────────────────────────────

func (s *Store) ListPayrolls(ctx context.Context, f repository.PayrollFilter) ([]*entity.Payroll, error) {
	list, err := s.repos.Payrolls.List(ctx, f)
	if err != nil {
		return []*entity.Payroll{}, s.fail("ListPayrolls", err)
	}
	return list, nil
}

func (s *Store) CreatePayroll(ctx context.Context, p *entity.Payroll) (*entity.Payroll, error) {
	return createRow(ctx, s, "CreatePayroll", p, s.repos.Payrolls.Create)
}

func (s *Store) DeletePayroll(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repos.Payrolls.Delete(ctx, id)
	if err != nil {
		return false, s.fail("DeletePayroll", err)
	}
	return ok, nil
}

// ── Reimbursements ────────────────────────────────────────────────────────────

func (s *Store) ListReimbursements(ctx context.Context, f repository.ReimbursementFilter) ([]*entity.EmployeeReimbursement, error) {
	list, err := s.repos.Reimbursements.List(ctx, f)
	if err != nil {
		return []*entity.EmployeeReimbursement{}, s.fail("ListReimbursements", err)
	}
	return list, nil
}

func (s *Store) CreateReimbursement(ctx context.Context, r *entity.EmployeeReimbursement) (*entity.EmployeeReimbursement, error) {
	return createRow(ctx, s, "CreateReimbursement", r, s.repos.Reimbursements.Create)
}

func (s *Store) UpdateReimbursement(ctx context.Context, r *entity.EmployeeReimbursement) (bool, error) {
	return updateRow(ctx, s, "UpdateReimbursement", r, s.repos.Reimbursements.Update)
}

func (s *Store) DeleteReimbursement(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repos.Reimbursements.Delete(ctx, id)
	if err != nil {
		return false, s.fail("DeleteReimbursement", err)
	}
	return ok, nil
}
