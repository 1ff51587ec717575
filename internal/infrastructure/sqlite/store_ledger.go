package sqlite

import (
	"context"
	"errors"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// ── Transactions ──────────────────────────────────────────────────────────────

func (s *Store) ListTransactions(ctx context.Context, f repository.TransactionFilter) ([]*entity.Transaction, error) {
	list, err := s.repos.Transactions.List(ctx, f)
	if err != nil {
		return []*entity.Transaction{}, s.fail("ListTransactions", err)
	}
	return list, nil
}

func (s *Store) CreateTransaction(ctx context.Context, t *entity.Transaction) (*entity.Transaction, error) {
	return createRow(ctx, s, "CreateTransaction", t, s.repos.Transactions.Create)
}

func (s *Store) UpdateTransaction(ctx context.Context, t *entity.Transaction) (bool, error) {
	return updateRow(ctx, s, "UpdateTransaction", t, s.repos.Transactions.Update)
}

func (s *Store) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repos.Transactions.Delete(ctx, id)
	if err != nil {
		return false, s.fail("DeleteTransaction", err)
	}
	return ok, nil
}

// ── Invoices ──────────────────────────────────────────────────────────────────

func (s *Store) ListInvoices(ctx context.Context, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	list, err := s.repos.Invoices.List(ctx, f)
	if err != nil {
		return []*entity.Invoice{}, s.fail("ListInvoices", err)
	}
	for _, inv := range list {
		if inv.Items, err = s.repos.Invoices.ListItems(ctx, inv.ID); err != nil {
			return []*entity.Invoice{}, s.fail("ListInvoices", err)
		}
	}
	return list, nil
}

func (s *Store) ListInvoiceItems(ctx context.Context, invoiceID int64) ([]*entity.InvoiceItem, error) {
	items, err := s.repos.Invoices.ListItems(ctx, invoiceID)
	if err != nil {
		return []*entity.InvoiceItem{}, s.fail("ListInvoiceItems", err)
	}
	out := make([]*entity.InvoiceItem, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out, nil
}

// CreateInvoice persiste cabecera y líneas en una sola transacción; los totales se recalculan.
func (s *Store) CreateInvoice(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error) {
	c := entity.Copy(inv)
	if err := entity.Prepare(c); err != nil {
		return nil, s.fail("CreateInvoice", err)
	}
	err := s.tx.Run(ctx, func(r *Repos) error {
		if err := r.Invoices.Create(ctx, c); err != nil {
			return err
		}
		return r.Invoices.InsertItems(ctx, c.ID, c.Items)
	})
	if err != nil {
		return nil, s.fail("CreateInvoice", err)
	}
	return c, nil
}

// UpdateInvoice reemplaza cabecera y líneas en una sola transacción.
func (s *Store) UpdateInvoice(ctx context.Context, inv *entity.Invoice) (bool, error) {
	c := entity.Copy(inv)
	if err := entity.Prepare(c); err != nil {
		return false, s.fail("UpdateInvoice", err)
	}
	err := s.tx.Run(ctx, func(r *Repos) error {
		ok, err := r.Invoices.Update(ctx, c)
		if err != nil {
			return err
		}
		if !ok {
			return errRowMissing
		}
		if err := r.Invoices.DeleteItems(ctx, c.ID); err != nil {
			return err
		}
		return r.Invoices.InsertItems(ctx, c.ID, c.Items)
	})
	if errors.Is(err, errRowMissing) {
		return false, nil
	}
	if err != nil {
		return false, s.fail("UpdateInvoice", err)
	}
	*inv = *c
	return true, nil
}

// DeleteInvoice elimina líneas y cabecera en una sola transacción.
func (s *Store) DeleteInvoice(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := s.tx.Run(ctx, func(r *Repos) error {
		if err := r.Invoices.DeleteItems(ctx, id); err != nil {
			return err
		}
		var err error
		ok, err = r.Invoices.Delete(ctx, id)
		return err
	})
	if err != nil {
		return false, s.fail("DeleteInvoice", err)
	}
	return ok, nil
}

// ── Prices ────────────────────────────────────────────────────────────────────

func (s *Store) ListPurchasePrices(ctx context.Context, f repository.PurchasePriceFilter) ([]*entity.PurchasePrice, error) {
	list, err := s.repos.PurchasePrices.List(ctx, f)
	if err != nil {
		return []*entity.PurchasePrice{}, s.fail("ListPurchasePrices", err)
	}
	return list, nil
}

func (s *Store) CreatePurchasePrice(ctx context.Context, p *entity.PurchasePrice) (*entity.PurchasePrice, error) {
	return createRow(ctx, s, "CreatePurchasePrice", p, s.repos.PurchasePrices.Create)
}

func (s *Store) UpdatePurchasePrice(ctx context.Context, p *entity.PurchasePrice) (bool, error) {
	return updateRow(ctx, s, "UpdatePurchasePrice", p, s.repos.PurchasePrices.Update)
}

func (s *Store) DeletePurchasePrice(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repos.PurchasePrices.Delete(ctx, id)
	if err != nil {
		return false, s.fail("DeletePurchasePrice", err)
	}
	return ok, nil
}

func (s *Store) ListSalePrices(ctx context.Context, f repository.SalePriceFilter) ([]*entity.SalePrice, error) {
	list, err := s.repos.SalePrices.List(ctx, f)
	if err != nil {
		return []*entity.SalePrice{}, s.fail("ListSalePrices", err)
	}
	return list, nil
}

// CreateSalePrice persiste el precio; Margin se recalcula como Price - Cost.
func (s *Store) CreateSalePrice(ctx context.Context, p *entity.SalePrice) (*entity.SalePrice, error) {
	return createRow(ctx, s, "CreateSalePrice", p, s.repos.SalePrices.Create)
}

func (s *Store) UpdateSalePrice(ctx context.Context, p *entity.SalePrice) (bool, error) {
	return updateRow(ctx, s, "UpdateSalePrice", p, s.repos.SalePrices.Update)
}

func (s *Store) DeleteSalePrice(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repos.SalePrices.Delete(ctx, id)
	if err != nil {
		return false, s.fail("DeleteSalePrice", err)
	}
	return ok, nil
}
