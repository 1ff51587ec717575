package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/blackwoods-compta/internal/domain"
	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// InventoryRepo artículos de inventario (usable con conexión o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `
	id, product_name, category, quantity, unit, unit_cost, min_quantity, supplier, expiry_date, created_at, updated_at`

// lowStockCondition compara como número: las cantidades se guardan como texto decimal.
const lowStockCondition = "CAST(quantity AS REAL) <= CAST(min_quantity AS REAL)"

func scanInventoryItem(s rowScanner) (*entity.InventoryItem, error) {
	var (
		i                    entity.InventoryItem
		supplier, expiry     sql.NullString
		createdAt, updatedAt string
	)
	if err := s.Scan(&i.ID, &i.ProductName, &i.Category, &i.Quantity, &i.Unit, &i.UnitCost, &i.LowStockThreshold,
		&supplier, &expiry, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	i.Supplier = supplier.String
	var err error
	if i.ExpiryDate, err = parseNullTime(expiry); err != nil {
		return nil, err
	}
	if i.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if i.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}

// List devuelve los artículos filtrados ordenados por nombre.
func (r *InventoryRepo) List(ctx context.Context, f repository.InventoryFilter) ([]*entity.InventoryItem, error) {
	var w whereBuilder
	if f.Search != "" {
		w.add("product_name LIKE ?", likePattern(f.Search))
	}
	if f.Category != "" {
		w.add("category = ?", f.Category)
	}
	if f.LowStock != nil && *f.LowStock {
		w.add(lowStockCondition)
	}
	rows, err := r.q.QueryContext(ctx, "SELECT"+inventoryColumns+" FROM inventory"+w.String()+" ORDER BY product_name, id", w.args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.InventoryItem, 0)
	for rows.Next() {
		i, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return list, nil
}

// GetByID obtiene un artículo por ID; nil si no existe.
func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	i, err := scanInventoryItem(r.q.QueryRowContext(ctx, "SELECT"+inventoryColumns+" FROM inventory WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return i, nil
}

// FindByProductName busca el primer artículo con ese nombre (sin distinguir mayúsculas ni espacios extremos).
func (r *InventoryRepo) FindByProductName(ctx context.Context, name string) (*entity.InventoryItem, error) {
	i, err := scanInventoryItem(r.q.QueryRowContext(ctx,
		"SELECT"+inventoryColumns+" FROM inventory WHERE LOWER(TRIM(product_name)) = LOWER(TRIM(?)) ORDER BY id LIMIT 1", name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find inventory item: %w", err)
	}
	return i, nil
}

// Create persiste el artículo con su cantidad inicial.
func (r *InventoryRepo) Create(ctx context.Context, i *entity.InventoryItem) error {
	ts := now()
	i.CreatedAt, i.UpdatedAt = ts, ts
	if i.Unit == "" {
		i.Unit = "unit"
	}
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO inventory (product_name, category, quantity, unit, unit_cost, min_quantity, supplier, expiry_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		i.ProductName, i.Category, i.Quantity, i.Unit, i.UnitCost, i.LowStockThreshold,
		nullString(i.Supplier), formatTimePtr(i.ExpiryDate), formatTime(ts), formatTime(ts),
	)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", translateConstraint(err))
	}
	if i.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// Update modifica los datos descriptivos del artículo. No permite modificar Quantity
// (solo movimientos y entregas la cambian); false si el ID no existe.
func (r *InventoryRepo) Update(ctx context.Context, i *entity.InventoryItem) (bool, error) {
	i.UpdatedAt = now()
	res, err := r.q.ExecContext(ctx, `
		UPDATE inventory
		SET product_name = ?, category = ?, unit = ?, unit_cost = ?, min_quantity = ?, supplier = ?, expiry_date = ?, updated_at = ?
		WHERE id = ?`,
		i.ProductName, i.Category, i.Unit, i.UnitCost, i.LowStockThreshold, nullString(i.Supplier),
		formatTimePtr(i.ExpiryDate), formatTime(i.UpdatedAt), i.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update inventory item: %w", translateConstraint(err))
	}
	return affected(res)
}

// Delete elimina el artículo; false si el ID no existe.
func (r *InventoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM inventory WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete inventory item: %w", err)
	}
	return affected(res)
}

// AdjustQuantity suma delta a la cantidad del artículo y devuelve el nuevo valor.
// ErrNotFound si no existe; ErrInsufficientStock si quedaría negativa.
// La aritmética se hace en decimal para no perder precisión.
func (r *InventoryRepo) AdjustQuantity(ctx context.Context, id int64, delta decimal.Decimal) (decimal.Decimal, error) {
	var current decimal.Decimal
	err := r.q.QueryRowContext(ctx, `SELECT quantity FROM inventory WHERE id = ?`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("artículo %d: %w", id, domain.ErrNotFound)
		}
		return decimal.Zero, fmt.Errorf("read quantity: %w", err)
	}
	next := current.Add(delta)
	if next.IsNegative() {
		return current, fmt.Errorf("artículo %d: disponible %s, salida %s: %w", id, current, delta.Neg(), domain.ErrInsufficientStock)
	}
	if _, err := r.q.ExecContext(ctx,
		`UPDATE inventory SET quantity = ?, updated_at = ? WHERE id = ?`, next, formatTime(now()), id); err != nil {
		return current, fmt.Errorf("update quantity: %w", err)
	}
	return next, nil
}

// CountLowStock devuelve el número de artículos con cantidad ≤ umbral.
func (r *InventoryRepo) CountLowStock(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventory WHERE `+lowStockCondition).Scan(&n); err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}

// InventoryMovementRepo movimientos de inventario (usable con conexión o tx).
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador.
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// List devuelve los últimos movimientos, más recientes primero.
func (r *InventoryMovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	var w whereBuilder
	if f.ProductID != nil {
		w.add("m.product_id = ?", *f.ProductID)
	}
	args := append(w.args, repository.MovementListLimit)
	rows, err := r.q.QueryContext(ctx, `
		SELECT m.id, m.product_id, COALESCE(i.product_name, ''), m.quantity, m.type, m.reason,
		       COALESCE(m.user_id, 0), COALESCE(u.username, ''), m.created_at
		FROM inventory_movements m
		LEFT JOIN inventory i ON i.id = m.product_id
		LEFT JOIN users u ON u.id = m.user_id`+w.String()+`
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.InventoryMovement, 0)
	for rows.Next() {
		var (
			m         entity.InventoryMovement
			reason    sql.NullString
			createdAt string
		)
		if err := rows.Scan(&m.ID, &m.ProductID, &m.ProductName, &m.Quantity, &m.Type, &reason,
			&m.UserID, &m.UserName, &createdAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Reason = reason.String
		if m.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return list, nil
}

// Create persiste el movimiento. No toca la cantidad del artículo (ver InventoryRepo.AdjustQuantity).
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	m.CreatedAt = now()
	userID := any(nil)
	if m.UserID > 0 {
		userID = m.UserID
	}
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO inventory_movements (product_id, quantity, type, reason, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ProductID, m.Quantity, m.Type, nullString(m.Reason), userID, formatTime(m.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", translateConstraint(err))
	}
	if m.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}
