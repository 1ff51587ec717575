package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de inventario.
const (
	CategoryRawMaterial  = "Raw material"
	CategoryPreparedDish = "Prepared dish"
)

// DefaultLowStockThreshold umbral asignado a los artículos creados por una entrega.
const DefaultLowStockThreshold = 5

// ExpiringSoonWindow ventana en la que un artículo se considera próximo a vencer.
const ExpiringSoonWindow = 48 * time.Hour

// InventoryItem artículo en stock. Quantity solo cambia vía movimientos o entregas de pedidos.
type InventoryItem struct {
	ID                int64           `json:"id"`
	ProductName       string          `json:"productName" validate:"required,max=200"`
	Category          string          `json:"category" validate:"required,inventorycategory"`
	Quantity          decimal.Decimal `json:"quantity" validate:"gte=0"`
	Unit              string          `json:"unit" validate:"max=30"`
	UnitCost          decimal.Decimal `json:"unitCost" validate:"gte=0"`
	LowStockThreshold decimal.Decimal `json:"lowStockThreshold" validate:"gte=0"`
	Supplier          string          `json:"supplier,omitempty" validate:"max=200"`
	ExpiryDate        *time.Time      `json:"expiryDate,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// IsLowStock indica cantidad en o por debajo del umbral.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity.LessThanOrEqual(i.LowStockThreshold)
}

// IsExpired indica si la fecha de vencimiento ya pasó respecto a now.
func (i *InventoryItem) IsExpired(now time.Time) bool {
	return i.ExpiryDate != nil && i.ExpiryDate.Before(now)
}

// IsExpiringSoon indica vencimiento dentro de ExpiringSoonWindow (incluye vencidos).
func (i *InventoryItem) IsExpiringSoon(now time.Time) bool {
	return i.ExpiryDate != nil && i.ExpiryDate.Before(now.Add(ExpiringSoonWindow))
}

// Tipos de movimiento de inventario.
const (
	MovementTypeIn  = "In"
	MovementTypeOut = "Out"
)

// InventoryMovement entrada o salida de stock. Quantity siempre positiva; Type da el sentido.
type InventoryMovement struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"productId" validate:"gt=0"`
	ProductName string          `json:"productName,omitempty"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gt=0"`
	Type        string          `json:"type" validate:"required,oneof=In Out"`
	Reason      string          `json:"reason,omitempty" validate:"max=300"`
	UserID      int64           `json:"userId"`
	UserName    string          `json:"userName,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Delta devuelve la variación firmada que el movimiento aplica a la cantidad.
func (m *InventoryMovement) Delta() decimal.Decimal {
	if m.Type == MovementTypeOut {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
