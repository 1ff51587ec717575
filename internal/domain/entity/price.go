package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchasePrice precio de compra de referencia de un producto con un proveedor.
type PurchasePrice struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"productName" validate:"required,max=200"`
	Category    string          `json:"category" validate:"max=100"`
	UnitPrice   decimal.Decimal `json:"unitPrice" validate:"gte=0"`
	Supplier    string          `json:"supplier,omitempty" validate:"max=200"`
	LastUpdated *time.Time      `json:"lastUpdated,omitempty"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// SalePrice precio de venta de un plato o producto. Margin = Price - Cost.
type SalePrice struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"productName" validate:"required,max=200"`
	Category    string          `json:"category" validate:"max=100"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	Cost        decimal.Decimal `json:"cost" validate:"gte=0"`
	Margin      decimal.Decimal `json:"margin"`
	Description string          `json:"description,omitempty"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// RecalculateMargin fija Margin a partir de Price y Cost.
func (p *SalePrice) RecalculateMargin() {
	p.Margin = p.Price.Sub(p.Cost)
}
