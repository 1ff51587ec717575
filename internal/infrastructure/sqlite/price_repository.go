package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// PurchasePriceRepo precios de compra de referencia (usable con conexión o tx).
type PurchasePriceRepo struct {
	q Querier
}

// NewPurchasePriceRepository construye el adaptador.
func NewPurchasePriceRepository(q Querier) *PurchasePriceRepo {
	return &PurchasePriceRepo{q: q}
}

// List devuelve los precios de compra filtrados ordenados por producto.
func (r *PurchasePriceRepo) List(ctx context.Context, f repository.PurchasePriceFilter) ([]*entity.PurchasePrice, error) {
	var w whereBuilder
	if f.Search != "" {
		w.add("product_name LIKE ?", likePattern(f.Search))
	}
	if f.Category != "" {
		w.add("category = ?", f.Category)
	}
	if f.Supplier != "" {
		w.add("supplier = ?", f.Supplier)
	}
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, product_name, category, unit_price, supplier, last_updated, is_active, created_at, updated_at
		FROM purchase_prices`+w.String()+` ORDER BY product_name, id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase prices: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.PurchasePrice, 0)
	for rows.Next() {
		var (
			p                    entity.PurchasePrice
			supplier, lastUpd    sql.NullString
			createdAt, updatedAt string
		)
		if err := rows.Scan(&p.ID, &p.ProductName, &p.Category, &p.UnitPrice, &supplier, &lastUpd, &p.IsActive,
			&createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase price: %w", err)
		}
		p.Supplier = supplier.String
		if p.LastUpdated, err = parseNullTime(lastUpd); err != nil {
			return nil, fmt.Errorf("scan purchase price: %w", err)
		}
		if p.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("scan purchase price: %w", err)
		}
		if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase price: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list purchase prices: %w", err)
	}
	return list, nil
}

// Create persiste el precio; LastUpdated se fija a la fecha de creación.
func (r *PurchasePriceRepo) Create(ctx context.Context, p *entity.PurchasePrice) error {
	ts := now()
	p.CreatedAt, p.UpdatedAt, p.LastUpdated = ts, ts, &ts
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO purchase_prices (product_name, category, unit_price, supplier, last_updated, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ProductName, p.Category, p.UnitPrice, nullString(p.Supplier), formatTime(ts), p.IsActive,
		formatTime(ts), formatTime(ts),
	)
	if err != nil {
		return fmt.Errorf("insert purchase price: %w", translateConstraint(err))
	}
	if p.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("insert purchase price: %w", err)
	}
	return nil
}

// Update modifica el precio; false si el ID no existe.
func (r *PurchasePriceRepo) Update(ctx context.Context, p *entity.PurchasePrice) (bool, error) {
	ts := now()
	p.UpdatedAt, p.LastUpdated = ts, &ts
	res, err := r.q.ExecContext(ctx, `
		UPDATE purchase_prices
		SET product_name = ?, category = ?, unit_price = ?, supplier = ?, last_updated = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		p.ProductName, p.Category, p.UnitPrice, nullString(p.Supplier), formatTime(ts), p.IsActive, formatTime(ts), p.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update purchase price: %w", translateConstraint(err))
	}
	return affected(res)
}

// Delete elimina el precio; false si el ID no existe.
func (r *PurchasePriceRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM purchase_prices WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete purchase price: %w", err)
	}
	return affected(res)
}

// SalePriceRepo precios de venta (usable con conexión o tx).
type SalePriceRepo struct {
	q Querier
}

// NewSalePriceRepository construye el adaptador.
func NewSalePriceRepository(q Querier) *SalePriceRepo {
	return &SalePriceRepo{q: q}
}

// List devuelve los precios de venta filtrados ordenados por producto.
func (r *SalePriceRepo) List(ctx context.Context, f repository.SalePriceFilter) ([]*entity.SalePrice, error) {
	var w whereBuilder
	if f.Search != "" {
		w.add("(product_name LIKE ? OR description LIKE ?)", likePattern(f.Search), likePattern(f.Search))
	}
	if f.Category != "" {
		w.add("category = ?", f.Category)
	}
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, product_name, category, price, cost, margin, description, is_active, created_at, updated_at
		FROM sale_prices`+w.String()+` ORDER BY product_name, id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list sale prices: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.SalePrice, 0)
	for rows.Next() {
		var (
			p                    entity.SalePrice
			description          sql.NullString
			createdAt, updatedAt string
		)
		if err := rows.Scan(&p.ID, &p.ProductName, &p.Category, &p.Price, &p.Cost, &p.Margin, &description,
			&p.IsActive, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan sale price: %w", err)
		}
		p.Description = description.String
		if p.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("scan sale price: %w", err)
		}
		if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("scan sale price: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sale prices: %w", err)
	}
	return list, nil
}

// Create persiste el precio de venta.
func (r *SalePriceRepo) Create(ctx context.Context, p *entity.SalePrice) error {
	ts := now()
	p.CreatedAt, p.UpdatedAt = ts, ts
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO sale_prices (product_name, category, price, cost, margin, description, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ProductName, p.Category, p.Price, p.Cost, p.Margin, nullString(p.Description), p.IsActive,
		formatTime(ts), formatTime(ts),
	)
	if err != nil {
		return fmt.Errorf("insert sale price: %w", translateConstraint(err))
	}
	if p.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("insert sale price: %w", err)
	}
	return nil
}

// Update modifica el precio de venta; false si el ID no existe.
func (r *SalePriceRepo) Update(ctx context.Context, p *entity.SalePrice) (bool, error) {
	p.UpdatedAt = now()
	res, err := r.q.ExecContext(ctx, `
		UPDATE sale_prices
		SET product_name = ?, category = ?, price = ?, cost = ?, margin = ?, description = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		p.ProductName, p.Category, p.Price, p.Cost, p.Margin, nullString(p.Description), p.IsActive,
		formatTime(p.UpdatedAt), p.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update sale price: %w", translateConstraint(err))
	}
	return affected(res)
}

// Delete elimina el precio de venta; false si el ID no existe.
func (r *SalePriceRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM sale_prices WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete sale price: %w", err)
	}
	return affected(res)
}
