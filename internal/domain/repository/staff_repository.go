package repository

import (
	"context"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
)

// EmployeeRepository empleados. DeleteEmployee es un borrado lógico.
type EmployeeRepository interface {
	ListEmployees(ctx context.Context, f EmployeeFilter) ([]*entity.Employee, error)
	CreateEmployee(ctx context.Context, e *entity.Employee) (*entity.Employee, error)
	UpdateEmployee(ctx context.Context, e *entity.Employee) (bool, error)
	DeleteEmployee(ctx context.Context, id int64) (bool, error)
}

// PayrollRepository nóminas pagadas.
type PayrollRepository interface {
	ListPayrolls(ctx context.Context, f PayrollFilter) ([]*entity.Payroll, error)
	CreatePayroll(ctx context.Context, p *entity.Payroll) (*entity.Payroll, error)
	DeletePayroll(ctx context.Context, id int64) (bool, error)
}

// ReimbursementRepository reembolsos a empleados. Las transiciones de estado
// se validan en la capa de workflow antes de llamar a UpdateReimbursement.
type ReimbursementRepository interface {
	ListReimbursements(ctx context.Context, f ReimbursementFilter) ([]*entity.EmployeeReimbursement, error)
	CreateReimbursement(ctx context.Context, r *entity.EmployeeReimbursement) (*entity.EmployeeReimbursement, error)
	UpdateReimbursement(ctx context.Context, r *entity.EmployeeReimbursement) (bool, error)
	DeleteReimbursement(ctx context.Context, id int64) (bool, error)
}
