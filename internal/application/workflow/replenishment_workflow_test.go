package workflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/blackwoods-compta/internal/application/workflow"
	"github.com/jhoicas/blackwoods-compta/internal/domain"
	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

type mockStock struct{ mock.Mock }

func (m *mockStock) ListInventory(ctx context.Context, f repository.InventoryFilter) ([]*entity.InventoryItem, error) {
	args := m.Called(ctx, f)
	out, _ := args.Get(0).([]*entity.InventoryItem)
	return out, args.Error(1)
}

type mockPrices struct{ mock.Mock }

func (m *mockPrices) ListPurchasePrices(ctx context.Context, f repository.PurchasePriceFilter) ([]*entity.PurchasePrice, error) {
	args := m.Called(ctx, f)
	out, _ := args.Get(0).([]*entity.PurchasePrice)
	return out, args.Error(1)
}

func lowStockFilter() any {
	return mock.MatchedBy(func(f repository.InventoryFilter) bool { return f.LowStock != nil && *f.LowStock })
}

func TestSuggestions_OrdenaPorDeficitYUsaElPrecioMasBarato(t *testing.T) {
	stock, prices := &mockStock{}, &mockPrices{}
	w := workflow.NewReplenishmentWorkflow(stock, prices)
	ctx := context.Background()

	stock.On("ListInventory", ctx, lowStockFilter()).Return([]*entity.InventoryItem{
		{ID: 1, ProductName: "Crème", Category: entity.CategoryRawMaterial, Quantity: dec("4"), LowStockThreshold: dec("5"), Unit: "l", UnitCost: dec("3"), Supplier: "Laiterie"},
		{ID: 2, ProductName: "Boeuf", Category: entity.CategoryRawMaterial, Quantity: dec("0"), LowStockThreshold: dec("5"), Unit: "kg", UnitCost: dec("22")},
	}, nil).Once()
	prices.On("ListPurchasePrices", ctx, repository.PurchasePriceFilter{}).Return([]*entity.PurchasePrice{
		{ProductName: "boeuf", UnitPrice: dec("21"), Supplier: "Boucherie Martin", IsActive: true},
		{ProductName: "Boeuf ", UnitPrice: dec("19.5"), Supplier: "Woods Farm", IsActive: true},
		{ProductName: "Boeuf", UnitPrice: dec("10"), Supplier: "Ancien", IsActive: false},
	}, nil).Once()

	out, err := w.Suggestions(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "Boeuf", out[0].Item.ProductName)
	assert.Equal(t, 1, out[0].Priority)
	assert.True(t, out[0].SuggestedQty.Equal(dec("10")))
	assert.Equal(t, "Woods Farm", out[0].Supplier)
	assert.True(t, out[0].EstimatedCost.Equal(dec("195")))

	assert.Equal(t, "Crème", out[1].Item.ProductName)
	assert.True(t, out[1].SuggestedQty.Equal(dec("6")))
	assert.Equal(t, "Laiterie", out[1].Supplier)
	assert.True(t, out[1].EstimatedCost.Equal(dec("18")))
}

func TestSuggestions_SinStockBajoNoConsultaPrecios(t *testing.T) {
	stock, prices := &mockStock{}, &mockPrices{}
	w := workflow.NewReplenishmentWorkflow(stock, prices)
	ctx := context.Background()
	stock.On("ListInventory", ctx, lowStockFilter()).Return([]*entity.InventoryItem{}, nil).Once()

	out, err := w.Suggestions(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)
	prices.AssertNotCalled(t, "ListPurchasePrices", mock.Anything, mock.Anything)
}

func TestSuggestions_ErrorDelBackend(t *testing.T) {
	stock := &mockStock{}
	w := workflow.NewReplenishmentWorkflow(stock, &mockPrices{})
	ctx := context.Background()
	stock.On("ListInventory", ctx, mock.Anything).Return([]*entity.InventoryItem{}, domain.ErrUnavailable).Once()

	_, err := w.Suggestions(ctx)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestDraftOrders_AgrupaPorProveedor(t *testing.T) {
	item := func(name string) *entity.InventoryItem {
		return &entity.InventoryItem{ProductName: name, Category: entity.CategoryRawMaterial, Unit: "kg"}
	}
	orders := workflow.DraftOrders([]workflow.Suggestion{
		{Item: item("Boeuf"), SuggestedQty: dec("10"), Supplier: "Woods Farm", UnitPrice: dec("19.5")},
		{Item: item("Sel"), SuggestedQty: dec("1"), UnitPrice: dec("1")},
		{Item: item("Carottes"), SuggestedQty: dec("8"), Supplier: "Marché", UnitPrice: dec("1.2")},
		{Item: item("Pommes de terre"), SuggestedQty: dec("5"), Supplier: "Woods Farm", UnitPrice: dec("1")},
	}, 3)

	require.Len(t, orders, 2)
	assert.Equal(t, "Woods Farm", orders[0].Supplier)
	assert.Len(t, orders[0].Items, 2)
	assert.True(t, orders[0].TotalAmount.Equal(dec("200")))
	assert.Equal(t, entity.OrderStatusPending, orders[0].Status)
	assert.Equal(t, int64(3), orders[0].UserID)
	assert.Equal(t, "Marché", orders[1].Supplier)
	assert.True(t, orders[1].TotalAmount.Equal(dec("9.6")))
}
