// Package repository define el contrato de acceso a datos de la aplicación.
//
// Forma uniforme de los resultados en ambos backends (local y remoto):
//   - List*   → lista vacía (no nil) y error de dominio si falla.
//   - Create* → entidad persistida (con ID y fechas) o nil y error de dominio.
//   - Update*/Delete* → false, nil si el ID no existe; false y error de dominio si falla.
//
// Los errores devueltos siempre son (o envuelven) centinelas de internal/domain.
// Todas las operaciones son seguras para uso concurrente.
package repository

import (
	"context"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
)

// Repository es el contrato completo que implementan el backend local (SQLite)
// y el remoto (HTTP). Se elige una sola implementación al arrancar.
type Repository interface {
	AuthRepository
	TransactionRepository
	EmployeeRepository
	PayrollRepository
	InventoryRepository
	InvoiceRepository
	OrderRepository
	SupplierRepository
	PriceRepository
	ReimbursementRepository
	ReportRepository

	// Info describe la conexión (ruta del archivo o URL base).
	Info() string
	Close() error
}

// AuthRepository autenticación de usuarios.
type AuthRepository interface {
	Login(ctx context.Context, username, password string) entity.AuthResult
}

// ReportRepository agregados del panel.
type ReportRepository interface {
	DashboardSummary(ctx context.Context) (*entity.DashboardSummary, error)
}
