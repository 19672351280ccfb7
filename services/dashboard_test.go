package services

import (
	"context"
	"testing"

	"invoicing-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Dashboard(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	acme, err := store.CreateCustomer(ctx, customerInput("Acme"))
	require.NoError(t, err)

	paid := invoiceInput(acme.ID, "INV-1", "2024-01-05", models.StatusPaid, line("A", 1, 100, 10))
	_, err = store.CreateInvoice(ctx, paid)
	require.NoError(t, err)

	overdue := invoiceInput(acme.ID, "INV-2", "2024-02-01", models.StatusPending, line("B", 1, 50, 10))
	overdue.DueDate = "2024-02-15"
	_, err = store.CreateInvoice(ctx, overdue)
	require.NoError(t, err)

	draft := invoiceInput(99, "INV-3", "2024-03-01", models.StatusDraft, line("C", 1, 10, 10))
	_, err = store.CreateInvoice(ctx, draft)
	require.NoError(t, err)

	overview, err := store.Dashboard(ctx)
	require.NoError(t, err)

	assert.InDelta(t, 110, overview.TotalRevenue, 1e-9)
	assert.InDelta(t, 55, overview.OutstandingAmount, 1e-9)
	assert.Equal(t, 1, overview.OverdueCount)
	assert.Equal(t, 3, overview.TotalInvoices)
	assert.Equal(t, 1, overview.TotalCustomers)

	require.Len(t, overview.MonthlyRevenue, 3)
	assert.Equal(t, "2024-01", overview.MonthlyRevenue[0].Month)
	assert.Equal(t, "2024-03", overview.MonthlyRevenue[2].Month)
	assert.InDelta(t, 11, overview.MonthlyRevenue[2].Total, 1e-9)

	require.Len(t, overview.RecentInvoices, 3)
	assert.Equal(t, "INV-3", overview.RecentInvoices[0].InvoiceNumber)
	assert.Equal(t, UnknownCustomer, overview.RecentInvoices[0].CustomerName)
	assert.Equal(t, models.StatusOverdue, overview.RecentInvoices[1].Status)
	assert.Equal(t, "Acme", overview.RecentInvoices[2].CustomerName)
}

func TestStore_DashboardKeepsLatestMonths(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, date := range []string{"2023-08-01", "2023-09-01", "2023-10-01", "2023-11-01", "2023-12-01", "2024-01-01", "2024-02-01"} {
		_, err := store.CreateInvoice(ctx, invoiceInput(1, "INV", date, models.StatusPaid))
		require.NoError(t, err)
	}

	overview, err := store.Dashboard(ctx)
	require.NoError(t, err)
	require.Len(t, overview.MonthlyRevenue, 6)
	assert.Equal(t, "2023-09", overview.MonthlyRevenue[0].Month)
	assert.Equal(t, "2024-02", overview.MonthlyRevenue[5].Month)
	assert.Len(t, overview.RecentInvoices, 5)
}

func TestStore_Report(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	acme, err := store.CreateCustomer(ctx, customerInput("Acme"))
	require.NoError(t, err)
	beta, err := store.CreateCustomer(ctx, customerInput("Beta"))
	require.NoError(t, err)

	_, err = store.CreateInvoice(ctx, invoiceInput(acme.ID, "INV-1", "2024-01-10", models.StatusPaid, line("A", 1, 100, 0)))
	require.NoError(t, err)
	late := invoiceInput(beta.ID, "INV-2", "2024-02-10", models.StatusPending, line("B", 3, 100, 0))
	late.DueDate = "2024-02-20"
	_, err = store.CreateInvoice(ctx, late)
	require.NoError(t, err)
	_, err = store.CreateInvoice(ctx, invoiceInput(acme.ID, "INV-3", "2024-02-11", models.StatusDraft, line("C", 1, 999, 0)))
	require.NoError(t, err)
	_, err = store.CreateInvoice(ctx, invoiceInput(acme.ID, "INV-4", "2023-12-01", models.StatusPaid, line("D", 1, 5000, 0)))
	require.NoError(t, err)

	report, err := store.Report(ctx, "2024-01-01", "2024-12-31")
	require.NoError(t, err)

	assert.Equal(t, 3, report.InvoiceCount)
	assert.InDelta(t, 400, report.Billed, 1e-9)
	assert.InDelta(t, 100, report.Paid, 1e-9)
	assert.InDelta(t, 300, report.Outstanding, 1e-9)
	assert.InDelta(t, 300, report.Overdue, 1e-9)
	assert.Equal(t, map[string]int{"paid": 1, "overdue": 1, "draft": 1}, report.ByStatus)

	require.Len(t, report.TopCustomers, 2)
	assert.Equal(t, "Beta", report.TopCustomers[0].Name)
	assert.Equal(t, 1, report.TopCustomers[1].Invoices)
}
