package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido a proveedor.
const (
	OrderStatusPending   = "Pending"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// PreparedDishShelfLife vida útil por defecto de un plato preparado.
const PreparedDishShelfLife = 7 * 24 * time.Hour

// Order pedido a un proveedor. TotalAmount = Σ TotalPrice de los ítems.
type Order struct {
	ID            int64           `json:"id"`
	OrderNumber   string          `json:"orderNumber" validate:"required,max=50"`
	Supplier      string          `json:"supplier" validate:"required,max=200"`
	OrderDate     time.Time       `json:"orderDate" validate:"required"`
	DeliveryDate  *time.Time      `json:"deliveryDate,omitempty"`
	Status        string          `json:"status" validate:"required,oneof=Pending Delivered Cancelled"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Notes         string          `json:"notes,omitempty"`
	UserID        int64           `json:"userId" validate:"gt=0"`
	TransactionID *int64          `json:"transactionId,omitempty"`
	Items         []OrderItem     `json:"items" validate:"dive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// OrderItem línea de pedido.
type OrderItem struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"orderId"`
	ProductName string          `json:"productName" validate:"required,max=200"`
	Category    string          `json:"category" validate:"required,inventorycategory"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gt=0"`
	Unit        string          `json:"unit" validate:"max=30"`
	UnitPrice   decimal.Decimal `json:"unitPrice" validate:"gte=0"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	ExpiryDate  *time.Time      `json:"expiryDate,omitempty"`
}

// RecalculateTotals fija TotalPrice de cada ítem y TotalAmount del pedido.
func (o *Order) RecalculateTotals() {
	total := decimal.Zero
	for i := range o.Items {
		o.Items[i].TotalPrice = o.Items[i].Quantity.Mul(o.Items[i].UnitPrice)
		total = total.Add(o.Items[i].TotalPrice)
	}
	o.TotalAmount = total
}

// IsPending indica si el pedido aún puede entregarse o cancelarse.
func (o *Order) IsPending() bool { return o.Status == OrderStatusPending }
