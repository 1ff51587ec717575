package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/infrastructure/pdf"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestInvoicePDF_GeneraDocumento(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator(pdf.Issuer{Name: "BlackWoods", Address: "12 rue des Bois", Phone: "01 23 45 67 89"})
	due := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)
	inv := &entity.Invoice{
		InvoiceNumber: "FAC-2024-001",
		ClientName:    "Mariage Dupont",
		ClientEmail:   "dupont@example.fr",
		Status:        entity.InvoiceStatusPending,
		IssueDate:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		DueDate:       &due,
		TotalAmount:   dec("1250"),
	}
	items := []*entity.InvoiceItem{
		{Description: "Menu dégustation", Quantity: dec("25"), UnitPrice: dec("45"), TotalPrice: dec("1125")},
		{Description: "Champagne", Quantity: dec("5"), UnitPrice: dec("25"), TotalPrice: dec("125")},
	}

	out, err := g.InvoicePDF(context.Background(), inv, items)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestOrderPDF_SinLineas(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator(pdf.Issuer{})
	o := &entity.Order{
		OrderNumber: "ORD-20240315-001",
		Supplier:    "Woods Farm",
		OrderDate:   time.Now(),
		Status:      entity.OrderStatusPending,
	}

	out, err := g.OrderPDF(context.Background(), o, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":        "0,00 €",
		"5":        "5,00 €",
		"1234.5":   "1 234,50 €",
		"1000000":  "1 000 000,00 €",
		"-80":      "-80,00 €",
		"999.999":  "1 000,00 €",
		"12345.67": "12 345,67 €",
	}
	for in, want := range cases {
		assert.Equal(t, want, pdf.FormatMoney(dec(in)), in)
	}
}
