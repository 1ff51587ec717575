package repository

import (
	"context"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
)

// InventoryRepository artículos y movimientos de stock.
type InventoryRepository interface {
	ListInventory(ctx context.Context, f InventoryFilter) ([]*entity.InventoryItem, error)
	CreateInventoryItem(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error)
	// UpdateInventoryItem no modifica Quantity (solo movimientos y entregas la cambian).
	UpdateInventoryItem(ctx context.Context, item *entity.InventoryItem) (bool, error)
	DeleteInventoryItem(ctx context.Context, id int64) (bool, error)

	ListInventoryMovements(ctx context.Context, f MovementFilter) ([]*entity.InventoryMovement, error)
	// CreateInventoryMovement registra el movimiento y ajusta la cantidad del artículo
	// de forma atómica. Una salida mayor al stock devuelve ErrInsufficientStock.
	CreateInventoryMovement(ctx context.Context, m *entity.InventoryMovement) (*entity.InventoryMovement, error)
}

// OrderRepository pedidos a proveedores con sus líneas (agregado completo).
type OrderRepository interface {
	// ListOrders devuelve los pedidos con sus líneas cargadas.
	ListOrders(ctx context.Context, f OrderFilter) ([]*entity.Order, error)
	ListOrderItems(ctx context.Context, orderID int64) ([]*entity.OrderItem, error)
	CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error)
	// UpdateOrder reemplaza cabecera y líneas.
	UpdateOrder(ctx context.Context, o *entity.Order) (bool, error)
	DeleteOrder(ctx context.Context, id int64) (bool, error)
	// DeliverOrder marca el pedido como entregado e ingresa sus líneas al inventario,
	// todo o nada. Un pedido que no está Pending devuelve ErrConflict.
	DeliverOrder(ctx context.Context, orderID, userID int64) (bool, error)
}

// SupplierRepository proveedores. DeleteSupplier es un borrado lógico.
type SupplierRepository interface {
	ListSuppliers(ctx context.Context, f SupplierFilter) ([]*entity.Supplier, error)
	CreateSupplier(ctx context.Context, s *entity.Supplier) (*entity.Supplier, error)
	UpdateSupplier(ctx context.Context, s *entity.Supplier) (bool, error)
	DeleteSupplier(ctx context.Context, id int64) (bool, error)
}
