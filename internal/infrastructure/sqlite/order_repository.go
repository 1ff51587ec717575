package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// OrderRepo pedidos a proveedores y sus líneas (usable con conexión o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `
	id, order_number, supplier, order_date, delivery_date, status, total_amount, notes, user_id, transaction_id,
	created_at, updated_at`

func scanOrder(s rowScanner) (*entity.Order, error) {
	var (
		o                               entity.Order
		delivery, notes                 sql.NullString
		transactionID                   sql.NullInt64
		orderDate, createdAt, updatedAt string
	)
	if err := s.Scan(&o.ID, &o.OrderNumber, &o.Supplier, &orderDate, &delivery, &o.Status, &o.TotalAmount,
		&notes, &o.UserID, &transactionID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	o.Notes = notes.String
	o.TransactionID = int64Ptr(transactionID)
	var err error
	if o.OrderDate, err = parseTime(orderDate); err != nil {
		return nil, err
	}
	if o.DeliveryDate, err = parseNullTime(delivery); err != nil {
		return nil, err
	}
	if o.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if o.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

// List devuelve las cabeceras de pedido filtradas, más recientes primero (sin líneas).
// Las filas se leen completas antes de devolver: con una sola conexión no se puede
// consultar las líneas mientras el cursor sigue abierto.
func (r *OrderRepo) List(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	var w whereBuilder
	if f.Search != "" {
		w.add("(order_number LIKE ? OR supplier LIKE ?)", likePattern(f.Search), likePattern(f.Search))
	}
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	rows, err := r.q.QueryContext(ctx, "SELECT"+orderColumns+" FROM orders"+w.String()+" ORDER BY order_date DESC, id DESC", w.args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return list, nil
}

// GetByID obtiene la cabecera del pedido; nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRowContext(ctx, "SELECT"+orderColumns+" FROM orders WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// ListItems devuelve las líneas del pedido en orden de inserción.
func (r *OrderRepo) ListItems(ctx context.Context, orderID int64) ([]entity.OrderItem, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, order_id, product_name, category, quantity, unit, unit_price, total_price, expiry_date
		FROM order_items WHERE order_id = ? ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	items := make([]entity.OrderItem, 0)
	for rows.Next() {
		var (
			it     entity.OrderItem
			expiry sql.NullString
		)
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductName, &it.Category, &it.Quantity, &it.Unit,
			&it.UnitPrice, &it.TotalPrice, &expiry); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if it.ExpiryDate, err = parseNullTime(expiry); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	return items, nil
}

// Create persiste la cabecera del pedido (las líneas con InsertItems).
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	ts := now()
	o.CreatedAt, o.UpdatedAt = ts, ts
	if o.OrderDate.IsZero() {
		o.OrderDate = ts
	}
	o.OrderDate = storedTime(o.OrderDate)
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO orders (order_number, supplier, order_date, delivery_date, status, total_amount, notes, user_id, transaction_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.OrderNumber, o.Supplier, formatTime(o.OrderDate), formatTimePtr(o.DeliveryDate), o.Status, o.TotalAmount,
		nullString(o.Notes), o.UserID, nullInt64(o.TransactionID), formatTime(ts), formatTime(ts),
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", translateConstraint(err))
	}
	if o.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// Update modifica la cabecera; false si el ID no existe.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) (bool, error) {
	o.UpdatedAt = now()
	res, err := r.q.ExecContext(ctx, `
		UPDATE orders
		SET order_number = ?, supplier = ?, order_date = ?, delivery_date = ?, status = ?, total_amount = ?,
		    notes = ?, transaction_id = ?, updated_at = ?
		WHERE id = ?`,
		o.OrderNumber, o.Supplier, formatTime(o.OrderDate), formatTimePtr(o.DeliveryDate), o.Status, o.TotalAmount,
		nullString(o.Notes), nullInt64(o.TransactionID), formatTime(o.UpdatedAt), o.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update order: %w", translateConstraint(err))
	}
	return affected(res)
}

// MarkDelivered fija estado Delivered y fecha de entrega.
func (r *OrderRepo) MarkDelivered(ctx context.Context, id int64, at time.Time) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE orders SET status = ?, delivery_date = ?, updated_at = ? WHERE id = ?`,
		entity.OrderStatusDelivered, formatTime(at), formatTime(now()), id)
	if err != nil {
		return fmt.Errorf("mark order delivered: %w", err)
	}
	return nil
}

// InsertItems persiste las líneas del pedido; asigna ID y OrderID.
func (r *OrderRepo) InsertItems(ctx context.Context, orderID int64, items []entity.OrderItem) error {
	for i := range items {
		it := &items[i]
		it.OrderID = orderID
		if it.Unit == "" {
			it.Unit = "unit"
		}
		res, err := r.q.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_name, category, quantity, unit, unit_price, total_price, expiry_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			orderID, it.ProductName, it.Category, it.Quantity, it.Unit, it.UnitPrice, it.TotalPrice,
			formatTimePtr(it.ExpiryDate),
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", translateConstraint(err))
		}
		if it.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// DeleteItems elimina todas las líneas del pedido.
func (r *OrderRepo) DeleteItems(ctx context.Context, orderID int64) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = ?`, orderID); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return nil
}

// Delete elimina la cabecera; false si el ID no existe.
func (r *OrderRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return affected(res)
}
