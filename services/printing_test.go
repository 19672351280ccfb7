package services

import (
	"bytes"
	"context"
	"testing"

	"invoicing-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderDocument(t *testing.T, doc *InvoiceDocument) string {
	t.Helper()
	renderer, err := NewInvoiceRenderer("$")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, doc))
	return buf.String()
}

func TestInvoiceRenderer_Render(t *testing.T) {
	settings := models.DefaultSettings()
	settings.LogoURL = "data:image/png;base64,iVBORw0KGgo="
	doc := &InvoiceDocument{
		Invoice: models.Invoice{
			InvoiceNumber: "INV-001",
			Date:          "2024-03-01",
			DueDate:       "2024-03-08",
			Status:        models.StatusPaid,
			Subtotal:      1000,
			Tax:           100,
			Total:         1100,
			Notes:         "Thanks <3",
			Items:         []models.InvoiceItem{{Description: "Strategy Session", Quantity: 5, UnitPrice: 200, TaxRate: 10}},
		},
		Customer: &models.Customer{Name: "Acme Corp", Email: "contact@acme.com", Phone: "555-0100", Address: "123 Industrial Way"},
		Settings: settings,
		Today:    "2024-03-10",
	}

	html := renderDocument(t, doc)

	assert.Contains(t, html, "<title>Invoice-INV-001</title>")
	assert.Contains(t, html, "#INV-001")
	assert.Contains(t, html, "My Billing Company")
	assert.Contains(t, html, "Acme Corp")
	assert.Contains(t, html, "March 1, 2024")
	assert.Contains(t, html, "March 8, 2024")
	assert.Contains(t, html, "Paid")
	assert.Contains(t, html, "$200.00")
	assert.Contains(t, html, "$1100.00")
	assert.Contains(t, html, "10%")
	assert.Contains(t, html, `src="data:image/png;base64,iVBORw0KGgo="`)
	assert.Contains(t, html, "Thanks &lt;3")
}

func TestInvoiceRenderer_DerivedStatusAndMissingCustomer(t *testing.T) {
	doc := &InvoiceDocument{
		Invoice: models.Invoice{
			InvoiceNumber: "INV-9",
			Date:          "2024-02-01",
			DueDate:       "2024-02-15",
			Status:        models.StatusPending,
			Items:         []models.InvoiceItem{{Description: "Hosting", Quantity: 1, UnitPrice: 9.5}},
		},
		Settings: models.DefaultSettings(),
		Today:    "2024-03-10",
	}

	html := renderDocument(t, doc)

	assert.Contains(t, html, UnknownCustomer)
	assert.Contains(t, html, "Overdue")
	assert.NotContains(t, html, "<img")
	assert.NotContains(t, html, "Notes")
}

func TestSafeLogoURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/logo.png", string(safeLogoURL("https://cdn.example.com/logo.png")))
	assert.Equal(t, "data:image/svg+xml;base64,PHN2Zz4=", string(safeLogoURL(" data:image/svg+xml;base64,PHN2Zz4= ")))
	assert.Empty(t, safeLogoURL("javascript:alert(1)"))
	assert.Empty(t, safeLogoURL(""))
}

func TestStore_InvoiceDocument(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	customer, err := store.CreateCustomer(ctx, customerInput("Acme"))
	require.NoError(t, err)
	invoice, err := store.CreateInvoice(ctx, invoiceInput(customer.ID, "INV-1", "2024-03-01", models.StatusDraft))
	require.NoError(t, err)

	doc, err := store.InvoiceDocument(ctx, invoice.ID)
	require.NoError(t, err)
	require.NotNil(t, doc.Customer)
	assert.Equal(t, "Acme", doc.Customer.Name)
	assert.Equal(t, "2024-03-10", doc.Today)

	require.NoError(t, store.DeleteCustomer(ctx, customer.ID))
	doc, err = store.InvoiceDocument(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Nil(t, doc.Customer)

	_, err = store.InvoiceDocument(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
