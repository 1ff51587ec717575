package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/blackwoods-compta/internal/domain"
	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// ── Inventory ─────────────────────────────────────────────────────────────────

func (s *Store) ListInventory(ctx context.Context, f repository.InventoryFilter) ([]*entity.InventoryItem, error) {
	list, err := s.repos.Inventory.List(ctx, f)
	if err != nil {
		return []*entity.InventoryItem{}, s.fail("ListInventory", err)
	}
	return list, nil
}

func (s *Store) CreateInventoryItem(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error) {
	return createRow(ctx, s, "CreateInventoryItem", item, s.repos.Inventory.Create)
}

func (s *Store) UpdateInventoryItem(ctx context.Context, item *entity.InventoryItem) (bool, error) {
	return updateRow(ctx, s, "UpdateInventoryItem", item, s.repos.Inventory.Update)
}

func (s *Store) DeleteInventoryItem(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repos.Inventory.Delete(ctx, id)
	if err != nil {
		return false, s.fail("DeleteInventoryItem", err)
	}
	return ok, nil
}

func (s *Store) ListInventoryMovements(ctx context.Context, f repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	list, err := s.repos.Movements.List(ctx, f)
	if err != nil {
		return []*entity.InventoryMovement{}, s.fail("ListInventoryMovements", err)
	}
	return list, nil
}

// CreateInventoryMovement registra el movimiento y ajusta la cantidad en una sola transacción.
func (s *Store) CreateInventoryMovement(ctx context.Context, m *entity.InventoryMovement) (*entity.InventoryMovement, error) {
	c := entity.Copy(m)
	if err := entity.Prepare(c); err != nil {
		return nil, s.fail("CreateInventoryMovement", err)
	}
	err := s.tx.Run(ctx, func(r *Repos) error {
		return applyMovement(ctx, r, c)
	})
	if err != nil {
		return nil, s.fail("CreateInventoryMovement", err)
	}
	return c, nil
}

// applyMovement ajusta la cantidad del artículo y persiste el movimiento con los repos de la tx.
func applyMovement(ctx context.Context, r *Repos, m *entity.InventoryMovement) error {
	if _, err := r.Inventory.AdjustQuantity(ctx, m.ProductID, m.Delta()); err != nil {
		return err
	}
	return r.Movements.Create(ctx, m)
}

// ── Orders ────────────────────────────────────────────────────────────────────

// ListOrders devuelve los pedidos con sus líneas.
func (s *Store) ListOrders(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	list, err := s.repos.Orders.List(ctx, f)
	if err != nil {
		return []*entity.Order{}, s.fail("ListOrders", err)
	}
	for _, o := range list {
		if o.Items, err = s.repos.Orders.ListItems(ctx, o.ID); err != nil {
			return []*entity.Order{}, s.fail("ListOrders", err)
		}
	}
	return list, nil
}

func (s *Store) ListOrderItems(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	items, err := s.repos.Orders.ListItems(ctx, orderID)
	if err != nil {
		return []*entity.OrderItem{}, s.fail("ListOrderItems", err)
	}
	out := make([]*entity.OrderItem, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out, nil
}

// CreateOrder persiste cabecera y líneas en una sola transacción; los totales se recalculan.
// Un pedido nuevo solo puede estar pendiente o cancelado.
func (s *Store) CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	c := entity.Copy(o)
	if err := entity.Prepare(c); err != nil {
		return nil, s.fail("CreateOrder", err)
	}
	if err := entity.CheckOrderStatus("", c.Status); err != nil {
		return nil, s.fail("CreateOrder", err)
	}
	err := s.tx.Run(ctx, func(r *Repos) error {
		if err := r.Orders.Create(ctx, c); err != nil {
			return err
		}
		return r.Orders.InsertItems(ctx, c.ID, c.Items)
	})
	if err != nil {
		return nil, s.fail("CreateOrder", err)
	}
	return c, nil
}

// UpdateOrder reemplaza cabecera y líneas en una sola transacción.
// Un pedido entregado no se edita y la entrega solo se registra con DeliverOrder.
func (s *Store) UpdateOrder(ctx context.Context, o *entity.Order) (bool, error) {
	c := entity.Copy(o)
	if err := entity.Prepare(c); err != nil {
		return false, s.fail("UpdateOrder", err)
	}
	err := s.tx.Run(ctx, func(r *Repos) error {
		cur, err := r.Orders.GetByID(ctx, c.ID)
		if err != nil {
			return err
		}
		if cur == nil {
			return errRowMissing
		}
		if err := entity.CheckOrderStatus(cur.Status, c.Status); err != nil {
			return err
		}
		ok, err := r.Orders.Update(ctx, c)
		if err != nil {
			return err
		}
		if !ok {
			return errRowMissing
		}
		if err := r.Orders.DeleteItems(ctx, c.ID); err != nil {
			return err
		}
		return r.Orders.InsertItems(ctx, c.ID, c.Items)
	})
	if errors.Is(err, errRowMissing) {
		return false, nil
	}
	if err != nil {
		return false, s.fail("UpdateOrder", err)
	}
	*o = *c
	return true, nil
}

// DeleteOrder elimina líneas y cabecera en una sola transacción.
// La transacción de gasto vinculada la elimina la capa de workflow.
func (s *Store) DeleteOrder(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := s.tx.Run(ctx, func(r *Repos) error {
		if err := r.Orders.DeleteItems(ctx, id); err != nil {
			return err
		}
		var err error
		ok, err = r.Orders.Delete(ctx, id)
		return err
	})
	if err != nil {
		return false, s.fail("DeleteOrder", err)
	}
	return ok, nil
}

// DeliverOrder marca el pedido como entregado e ingresa cada línea al inventario, todo o nada.
// Cada línea se suma al artículo con el mismo nombre de producto; si no existe se crea
// (proveedor del pedido, umbral por defecto) y la cantidad entra como movimiento de entrada.
func (s *Store) DeliverOrder(ctx context.Context, orderID, userID int64) (bool, error) {
	err := s.tx.Run(ctx, func(r *Repos) error {
		o, err := r.Orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return errRowMissing
		}
		if !o.IsPending() {
			return fmt.Errorf("pedido %s en estado %s: %w", o.OrderNumber, o.Status, domain.ErrConflict)
		}
		items, err := r.Orders.ListItems(ctx, orderID)
		if err != nil {
			return err
		}
		if err := r.Orders.MarkDelivered(ctx, orderID, now()); err != nil {
			return err
		}
		reason := fmt.Sprintf("Order %s delivered", o.OrderNumber)
		for _, it := range items {
			item, err := r.Inventory.FindByProductName(ctx, it.ProductName)
			if err != nil {
				return err
			}
			if item == nil {
				item = &entity.InventoryItem{
					ProductName:       it.ProductName,
					Category:          it.Category,
					Quantity:          decimal.Zero,
					Unit:              it.Unit,
					UnitCost:          it.UnitPrice,
					LowStockThreshold: decimal.NewFromInt(entity.DefaultLowStockThreshold),
					Supplier:          o.Supplier,
					ExpiryDate:        it.ExpiryDate,
				}
				if err := r.Inventory.Create(ctx, item); err != nil {
					return err
				}
			}
			mov := &entity.InventoryMovement{
				ProductID: item.ID,
				Quantity:  it.Quantity,
				Type:      entity.MovementTypeIn,
				Reason:    reason,
				UserID:    userID,
			}
			if err := applyMovement(ctx, r, mov); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, errRowMissing) {
		return false, nil
	}
	if err != nil {
		return false, s.fail("DeliverOrder", err)
	}
	s.log.Info().Int64("order_id", orderID).Msg("pedido entregado e ingresado al inventario")
	return true, nil
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

func (s *Store) ListSuppliers(ctx context.Context, f repository.SupplierFilter) ([]*entity.Supplier, error) {
	list, err := s.repos.Suppliers.List(ctx, f)
	if err != nil {
		return []*entity.Supplier{}, s.fail("ListSuppliers", err)
	}
	return list, nil
}

func (s *Store) CreateSupplier(ctx context.Context, sp *entity.Supplier) (*entity.Supplier, error) {
	return createRow(ctx, s, "CreateSupplier", sp, s.repos.Suppliers.Create)
}

func (s *Store) UpdateSupplier(ctx context.Context, sp *entity.Supplier) (bool, error) {
	return updateRow(ctx, s, "UpdateSupplier", sp, s.repos.Suppliers.Update)
}

// DeleteSupplier desactiva el proveedor (borrado lógico).
func (s *Store) DeleteSupplier(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repos.Suppliers.Deactivate(ctx, id)
	if err != nil {
		return false, s.fail("DeleteSupplier", err)
	}
	return ok, nil
}
