package services

import (
	"context"
	"testing"

	"invoicing-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(numbers ...string) []models.Invoice {
	invoices := make([]models.Invoice, 0, len(numbers))
	for _, n := range numbers {
		invoices = append(invoices, models.Invoice{InvoiceNumber: n})
	}
	return invoices
}

func TestNextInvoiceNumber(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{"no invoices", nil, "INV-1"},
		{"highest numeric part wins", []string{"INV-001", "INV-009", "A-3"}, "INV-10"},
		{"prefix follows highest", []string{"INV-2", "BILL-40"}, "BILL-41"},
		{"digits only", []string{"2024"}, "INV-2025"},
		{"no digits", []string{"DRAFT"}, "DRAFT1"},
		{"digits anywhere", []string{"2024/INV/7"}, "/INV/20248"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextInvoiceNumber(numbered(tt.existing...)))
		})
	}
}

func TestStore_InvoiceDefaults(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	defaults, err := store.InvoiceDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV-1", defaults.InvoiceNumber)
	assert.Equal(t, "2024-03-10", defaults.Date)
	assert.Equal(t, "2024-03-17", defaults.DueDate)
	assert.Equal(t, models.StatusDraft, defaults.Status)
	require.Len(t, defaults.Items, 1)
	assert.Equal(t, 10.0, defaults.Items[0].TaxRate)
	assert.Equal(t, 1.0, defaults.Items[0].Quantity)

	_, err = store.CreateInvoice(ctx, invoiceInput(1, "INV-041", "2024-03-01", models.StatusDraft))
	require.NoError(t, err)

	defaults, err = store.InvoiceDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV-42", defaults.InvoiceNumber)
}
