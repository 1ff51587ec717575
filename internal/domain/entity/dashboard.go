package entity

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DashboardSummary agregados del panel principal.
type DashboardSummary struct {
	TotalRevenue         decimal.Decimal    `json:"totalRevenue"`
	TotalExpenses        decimal.Decimal    `json:"totalExpenses"`
	NetProfit            decimal.Decimal    `json:"netProfit"`
	TransactionCount     int                `json:"transactionCount"`
	EmployeeCount        int                `json:"employeeCount"`
	LowStockItemsCount   int                `json:"lowStockItemsCount"`
	PendingInvoicesCount int                `json:"pendingInvoicesCount"`
	ExpensesByCategory   []CategoryExpenses `json:"expensesByCategory"`
}

// CategoryExpenses gasto acumulado de una categoría; Percentage sobre TotalExpenses (0-100).
type CategoryExpenses struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

var hundred = decimal.NewFromInt(100)

// SummarizeTransactions calcula ingresos, gastos, beneficio neto y el desglose de gastos
// por categoría (mayor gasto primero). Los contadores ajenos al libro quedan en cero.
func SummarizeTransactions(txs []*Transaction) *DashboardSummary {
	s := &DashboardSummary{
		TotalRevenue:       decimal.Zero,
		TotalExpenses:      decimal.Zero,
		TransactionCount:   len(txs),
		ExpensesByCategory: make([]CategoryExpenses, 0),
	}
	byCategory := map[string]decimal.Decimal{}
	for _, t := range txs {
		switch t.Type {
		case TransactionTypeSale:
			s.TotalRevenue = s.TotalRevenue.Add(t.Amount)
		case TransactionTypeExpense:
			s.TotalExpenses = s.TotalExpenses.Add(t.Amount)
			byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
		}
	}
	s.NetProfit = s.TotalRevenue.Sub(s.TotalExpenses)

	for cat, amount := range byCategory {
		pct := decimal.Zero
		if s.TotalExpenses.IsPositive() {
			pct = amount.Mul(hundred).Div(s.TotalExpenses).Round(2)
		}
		s.ExpensesByCategory = append(s.ExpensesByCategory, CategoryExpenses{Category: cat, Amount: amount, Percentage: pct})
	}
	sort.Slice(s.ExpensesByCategory, func(i, j int) bool {
		a, b := s.ExpensesByCategory[i], s.ExpensesByCategory[j]
		if !a.Amount.Equal(b.Amount) {
			return a.Amount.GreaterThan(b.Amount)
		}
		return a.Category < b.Category
	})
	return s
}
