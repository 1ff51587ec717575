package repository

import "time"

// Los filtros vacíos (cadena vacía o puntero nil) no restringen el listado.

// TransactionFilter filtro de transacciones. Search busca en descripción y categoría.
type TransactionFilter struct {
	Search   string
	Type     string
	Category string
}

// EmployeeFilter filtro de empleados. Sin IsActive ni IncludeInactive solo lista activos.
type EmployeeFilter struct {
	Search          string
	Position        string
	IsActive        *bool
	IncludeInactive bool
}

// PayrollFilter filtro de nóminas por empleado y rango de fecha de pago (inclusive, por día).
type PayrollFilter struct {
	EmployeeID *int64
	StartDate  *time.Time
	EndDate    *time.Time
}

// InventoryFilter filtro de artículos. LowStock=true limita a cantidad ≤ umbral.
type InventoryFilter struct {
	Search   string
	Category string
	LowStock *bool
}

// MovementFilter filtro de movimientos (últimos 100, más recientes primero).
type MovementFilter struct {
	ProductID *int64
}

// InvoiceFilter filtro de facturas. Search busca en número y cliente; fechas sobre IssueDate.
type InvoiceFilter struct {
	Search    string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

// OrderFilter filtro de pedidos. Search busca en número y proveedor.
type OrderFilter struct {
	Search string
	Status string
}

// SupplierFilter filtro de proveedores. Search busca en nombre, contacto, email y teléfono.
type SupplierFilter struct {
	Search          string
	IncludeInactive bool
}

// PurchasePriceFilter filtro de precios de compra.
type PurchasePriceFilter struct {
	Search   string
	Category string
	Supplier string
}

// SalePriceFilter filtro de precios de venta.
type SalePriceFilter struct {
	Search   string
	Category string
}

// ReimbursementFilter filtro de reembolsos. Search busca en descripción y notas.
type ReimbursementFilter struct {
	Search     string
	Status     string
	EmployeeID *int64
}

// MovementListLimit máximo de movimientos devueltos por listado.
const MovementListLimit = 100
