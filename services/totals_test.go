package services

import (
	"testing"

	"invoicing-backend/models"
	"invoicing-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name  string
		items []models.InvoiceItem
		want  models.Totals
	}{
		{
			name: "no items",
			want: models.Totals{},
		},
		{
			name:  "quantity multiplies unit price",
			items: []models.InvoiceItem{{Quantity: 5, UnitPrice: 200, TaxRate: 10}},
			want:  models.Totals{Subtotal: 1000, Tax: 100, Total: 1100},
		},
		{
			name: "mixed tax rates",
			items: []models.InvoiceItem{
				{Quantity: 2, UnitPrice: 10.5, TaxRate: 18},
				{Quantity: 1, UnitPrice: 100, TaxRate: 0},
			},
			want: models.Totals{Subtotal: 121, Tax: 3.78, Total: 124.78},
		},
		{
			name: "decimal prices do not drift",
			items: []models.InvoiceItem{
				{Quantity: 1, UnitPrice: 0.1, TaxRate: 0},
				{Quantity: 1, UnitPrice: 0.2, TaxRate: 0},
			},
			want: models.Totals{Subtotal: 0.3, Tax: 0, Total: 0.3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTotals(tt.items))
		})
	}
}

func TestReconcileTotals(t *testing.T) {
	items := []models.InvoiceItem{{Quantity: 10, UnitPrice: 50, TaxRate: 10}}

	totals, err := ReconcileTotals(items, models.SuppliedTotals{})
	require.NoError(t, err)
	assert.Equal(t, models.Totals{Subtotal: 500, Tax: 50, Total: 550}, totals)

	totals, err = ReconcileTotals(items, models.SuppliedTotals{Subtotal: models.NumberPtr(500), Total: models.NumberPtr(550.001)})
	require.NoError(t, err)
	assert.Equal(t, 550.0, totals.Total)

	_, err = ReconcileTotals(items, models.SuppliedTotals{Subtotal: models.NumberPtr(50)})
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "subtotal", verr.Field)
	assert.Contains(t, verr.Message, "500.00")
}

func TestLineFromCatalog(t *testing.T) {
	item := models.Item{Name: "Logo design", SellingPrice: 250, CostPrice: 100, TaxRate: 18}

	assert.Equal(t, models.InvoiceItem{Description: "Logo design", Quantity: 3, UnitPrice: 250, TaxRate: 18}, LineFromCatalog(item, 3))
	assert.Equal(t, 1.0, LineFromCatalog(item, 0).Quantity)
}

func TestLineAmount(t *testing.T) {
	item := models.InvoiceItem{Quantity: 3, UnitPrice: 19.99, TaxRate: 5}
	assert.Equal(t, "59.97", LineAmount(item).StringFixed(2))
	assert.Equal(t, "3.00", LineTax(item).StringFixed(2))
}
