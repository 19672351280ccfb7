package services

import (
	"invoicing-backend/models"
	"invoicing-backend/utils"

	"github.com/shopspring/decimal"
)

// totalsTolerance is how far client-supplied totals may drift from the
// computed ones before the request is rejected.
var totalsTolerance = decimal.NewFromFloat(0.005)

var hundred = decimal.NewFromInt(100)

// LineAmount returns quantity * unitPrice for one invoice line.
func LineAmount(item models.InvoiceItem) decimal.Decimal {
	return decimal.NewFromFloat(item.Quantity).Mul(decimal.NewFromFloat(item.UnitPrice))
}

// LineTax returns the tax owed on one invoice line.
func LineTax(item models.InvoiceItem) decimal.Decimal {
	return LineAmount(item).Mul(decimal.NewFromFloat(item.TaxRate)).Div(hundred)
}

// ComputeTotals sums the amounts and taxes of items. Values are not
// rounded; rounding happens only for display.
func ComputeTotals(items []models.InvoiceItem) models.Totals {
	subtotal := decimal.Zero
	tax := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(LineAmount(item))
		tax = tax.Add(LineTax(item))
	}
	return models.Totals{
		Subtotal: subtotal.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Total:    subtotal.Add(tax).InexactFloat64(),
	}
}

// ReconcileTotals computes totals for items and checks them against the
// totals a client sent. Omitted totals are filled in.
func ReconcileTotals(items []models.InvoiceItem, supplied models.SuppliedTotals) (models.Totals, error) {
	computed := ComputeTotals(items)

	checks := []struct {
		field    string
		supplied *models.Number
		computed float64
	}{
		{"subtotal", supplied.Subtotal, computed.Subtotal},
		{"tax", supplied.Tax, computed.Tax},
		{"total", supplied.Total, computed.Total},
	}
	for _, c := range checks {
		if c.supplied == nil {
			continue
		}
		diff := decimal.NewFromFloat(float64(*c.supplied)).Sub(decimal.NewFromFloat(c.computed)).Abs()
		if diff.GreaterThan(totalsTolerance) {
			return models.Totals{}, utils.NewValidationError(c.field,
				"Does not match line items (expected "+decimal.NewFromFloat(c.computed).StringFixed(2)+")")
		}
	}
	return computed, nil
}

// LineFromCatalog builds an invoice line prefilled from a catalog item.
func LineFromCatalog(item models.Item, quantity float64) models.InvoiceItem {
	if quantity < 1 {
		quantity = 1
	}
	return models.InvoiceItem{
		Description: item.Name,
		Quantity:    quantity,
		UnitPrice:   item.SellingPrice,
		TaxRate:     item.TaxRate,
	}
}
