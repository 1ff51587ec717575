package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
type TxRunner struct {
	db *sql.DB
}

// NewTxRunner construye el runner con la conexión.
func NewTxRunner(db *sql.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Dentro de fn solo debe usarse Repos: la base tiene una única conexión y la tx la ocupa.
func (r *TxRunner) Run(ctx context.Context, fn func(repos *Repos) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(newRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Repos agrupa los repositorios atados a un mismo Querier (conexión o tx).
type Repos struct {
	Users          *UserRepo
	Transactions   *TransactionRepo
	Employees      *EmployeeRepo
	Payrolls       *PayrollRepo
	Inventory      *InventoryRepo
	Movements      *InventoryMovementRepo
	Orders         *OrderRepo
	Suppliers      *SupplierRepo
	Invoices       *InvoiceRepo
	PurchasePrices *PurchasePriceRepo
	SalePrices     *SalePriceRepo
	Reimbursements *ReimbursementRepo
}

func newRepos(q Querier) *Repos {
	return &Repos{
		Users:          NewUserRepository(q),
		Transactions:   NewTransactionRepository(q),
		Employees:      NewEmployeeRepository(q),
		Payrolls:       NewPayrollRepository(q),
		Inventory:      NewInventoryRepository(q),
		Movements:      NewInventoryMovementRepository(q),
		Orders:         NewOrderRepository(q),
		Suppliers:      NewSupplierRepository(q),
		Invoices:       NewInvoiceRepository(q),
		PurchasePrices: NewPurchasePriceRepository(q),
		SalePrices:     NewSalePriceRepository(q),
		Reimbursements: NewReimbursementRepository(q),
	}
}
