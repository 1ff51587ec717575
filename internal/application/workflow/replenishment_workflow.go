package workflow

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// Suggestion artículo bajo umbral con la cantidad a pedir y el mejor precio conocido.
type Suggestion struct {
	Item          *entity.InventoryItem
	IdealStock    decimal.Decimal
	SuggestedQty  decimal.Decimal
	Supplier      string
	UnitPrice     decimal.Decimal
	EstimatedCost decimal.Decimal
	Priority      int
}

// idealFactor stock ideal respecto al umbral de stock bajo.
var idealFactor = decimal.NewFromInt(2)

// ReplenishmentWorkflow lista de reposición a partir del stock bajo y los precios de compra.
type ReplenishmentWorkflow struct {
	stock  StockSource
	prices PriceSource
}

func NewReplenishmentWorkflow(stock StockSource, prices PriceSource) *ReplenishmentWorkflow {
	return &ReplenishmentWorkflow{stock: stock, prices: prices}
}

// Suggestions devuelve los artículos en o bajo su umbral, ordenados por déficit relativo
// (primero los agotados). El proveedor y precio salen del precio de compra activo más
// barato con el mismo nombre de producto; si no hay, del propio artículo.
func (w *ReplenishmentWorkflow) Suggestions(ctx context.Context) ([]Suggestion, error) {
	low := true
	items, err := w.stock.ListInventory(ctx, repository.InventoryFilter{LowStock: &low})
	if err != nil {
		return nil, fmt.Errorf("reposición: inventario: %w", err)
	}
	if len(items) == 0 {
		return []Suggestion{}, nil
	}
	prices, err := w.prices.ListPurchasePrices(ctx, repository.PurchasePriceFilter{})
	if err != nil {
		return nil, fmt.Errorf("reposición: precios: %w", err)
	}
	best := cheapestByProduct(prices)

	out := make([]Suggestion, 0, len(items))
	for _, it := range items {
		ideal := it.LowStockThreshold.Mul(idealFactor)
		qty := ideal.Sub(it.Quantity)
		if !qty.IsPositive() {
			continue
		}
		s := Suggestion{Item: it, IdealStock: ideal, SuggestedQty: qty, Supplier: it.Supplier, UnitPrice: it.UnitCost}
		if p, ok := best[productKey(it.ProductName)]; ok {
			s.Supplier = p.Supplier
			s.UnitPrice = p.UnitPrice
		}
		s.EstimatedCost = qty.Mul(s.UnitPrice)
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := deficit(out[i]), deficit(out[j])
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return out[i].Item.ProductName < out[j].Item.ProductName
	})
	for i := range out {
		out[i].Priority = i + 1
	}
	return out, nil
}

// DraftOrders agrupa las sugerencias por proveedor en pedidos pendientes listos para
// OrderWorkflow.CreateWithExpense. Las sugerencias sin proveedor se omiten.
func DraftOrders(suggestions []Suggestion, userID int64) []*entity.Order {
	bySupplier := map[string]*entity.Order{}
	var order []string
	for _, s := range suggestions {
		if s.Supplier == "" {
			continue
		}
		o, ok := bySupplier[s.Supplier]
		if !ok {
			o = &entity.Order{Supplier: s.Supplier, Status: entity.OrderStatusPending, UserID: userID}
			bySupplier[s.Supplier] = o
			order = append(order, s.Supplier)
		}
		o.Items = append(o.Items, entity.OrderItem{
			ProductName: s.Item.ProductName,
			Category:    s.Item.Category,
			Quantity:    s.SuggestedQty,
			Unit:        s.Item.Unit,
			UnitPrice:   s.UnitPrice,
		})
	}
	out := make([]*entity.Order, 0, len(order))
	for _, name := range order {
		o := bySupplier[name]
		o.RecalculateTotals()
		out = append(out, o)
	}
	return out
}

// deficit fracción del stock ideal que falta (1 = agotado).
func deficit(s Suggestion) decimal.Decimal {
	if !s.IdealStock.IsPositive() {
		return decimal.Zero
	}
	return s.SuggestedQty.Div(s.IdealStock)
}

func cheapestByProduct(prices []*entity.PurchasePrice) map[string]*entity.PurchasePrice {
	best := make(map[string]*entity.PurchasePrice, len(prices))
	for _, p := range prices {
		if !p.IsActive || p.Supplier == "" {
			continue
		}
		k := productKey(p.ProductName)
		if cur, ok := best[k]; !ok || p.UnitPrice.LessThan(cur.UnitPrice) {
			best[k] = p
		}
	}
	return best
}

func productKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
