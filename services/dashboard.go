package services

import (
	"context"
	"sort"

	"invoicing-backend/models"

	"github.com/shopspring/decimal"
)

const (
	dashboardMonths = 6
	recentInvoices  = 5
)

// DashboardOverview summarises revenue and recent activity.
type DashboardOverview struct {
	TotalRevenue      float64          `json:"totalRevenue"`
	OutstandingAmount float64          `json:"outstandingAmount"`
	OverdueCount      int              `json:"overdueCount"`
	TotalInvoices     int              `json:"totalInvoices"`
	TotalCustomers    int              `json:"totalCustomers"`
	MonthlyRevenue    []MonthlyRevenue `json:"monthlyRevenue"`
	RecentInvoices    []RecentInvoice  `json:"recentInvoices"`
}

type MonthlyRevenue struct {
	Month string  `json:"month"` // YYYY-MM
	Total float64 `json:"total"`
}

type RecentInvoice struct {
	ID            int     `json:"id"`
	InvoiceNumber string  `json:"invoiceNumber"`
	CustomerName  string  `json:"customerName"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	Total         float64 `json:"total"`
}

// Dashboard computes the overview. Revenue counts paid invoices,
// outstanding counts pending ones, and monthly totals cover every invoice
// in the latest months that have any.
func (s *Store) Dashboard(ctx context.Context) (*DashboardOverview, error) {
	invoices, err := s.ListInvoices(ctx, models.InvoiceFilter{})
	if err != nil {
		return nil, err
	}
	customers, err := s.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}

	today := s.Today()
	revenue := decimal.Zero
	outstanding := decimal.Zero
	months := map[string]decimal.Decimal{}
	overview := &DashboardOverview{
		TotalInvoices:  len(invoices),
		TotalCustomers: len(customers),
		MonthlyRevenue: []MonthlyRevenue{},
		RecentInvoices: []RecentInvoice{},
	}

	for _, inv := range invoices {
		total := decimal.NewFromFloat(inv.Total)
		switch inv.Status {
		case models.StatusPaid:
			revenue = revenue.Add(total)
		case models.StatusPending:
			outstanding = outstanding.Add(total)
		}
		if inv.IsOverdue(today) {
			overview.OverdueCount++
		}
		if len(inv.Date) >= 7 {
			month := inv.Date[:7]
			months[month] = months[month].Add(total)
		}
	}
	overview.TotalRevenue = revenue.InexactFloat64()
	overview.OutstandingAmount = outstanding.InexactFloat64()

	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > dashboardMonths {
		keys = keys[len(keys)-dashboardMonths:]
	}
	for _, k := range keys {
		overview.MonthlyRevenue = append(overview.MonthlyRevenue, MonthlyRevenue{Month: k, Total: months[k].InexactFloat64()})
	}

	// invoices are already ordered most recent first
	for i, inv := range invoices {
		if i == recentInvoices {
			break
		}
		name, ok := names[inv.CustomerID]
		if !ok {
			name = UnknownCustomer
		}
		overview.RecentInvoices = append(overview.RecentInvoices, RecentInvoice{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			CustomerName:  name,
			Date:          inv.Date,
			Status:        inv.DisplayStatus(today),
			Total:         inv.Total,
		})
	}
	return overview, nil
}
