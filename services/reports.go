package services

import (
	"context"
	"sort"

	"invoicing-backend/models"

	"github.com/shopspring/decimal"
)

const topCustomerLimit = 5

// Report summarises invoices dated within a range.
type Report struct {
	StartDate    string            `json:"startDate,omitempty"`
	EndDate      string            `json:"endDate,omitempty"`
	InvoiceCount int               `json:"invoiceCount"`
	Billed       float64           `json:"billed"`
	Paid         float64           `json:"paid"`
	Outstanding  float64           `json:"outstanding"`
	Overdue      float64           `json:"overdue"`
	ByStatus     map[string]int    `json:"byStatus"`
	TopCustomers []CustomerSummary `json:"topCustomers"`
}

type CustomerSummary struct {
	CustomerID int     `json:"customerId"`
	Name       string  `json:"name"`
	Invoices   int     `json:"invoices"`
	Billed     float64 `json:"billed"`
}

type customerTotals struct {
	invoices int
	billed   decimal.Decimal
}

// Report totals the non-draft invoices dated between startDate and endDate
// (both inclusive, either may be empty). Draft invoices are only counted
// in ByStatus.
func (s *Store) Report(ctx context.Context, startDate, endDate string) (*Report, error) {
	invoices, err := s.ListInvoices(ctx, models.InvoiceFilter{StartDate: startDate, EndDate: endDate})
	if err != nil {
		return nil, err
	}
	customers, err := s.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	today := s.Today()
	billed, paid, outstanding, overdue := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	byCustomer := map[int]*customerTotals{}
	report := &Report{
		StartDate:    startDate,
		EndDate:      endDate,
		InvoiceCount: len(invoices),
		ByStatus:     map[string]int{},
		TopCustomers: []CustomerSummary{},
	}

	for _, inv := range invoices {
		report.ByStatus[inv.DisplayStatus(today)]++
		if inv.Status == models.StatusDraft {
			continue
		}

		total := decimal.NewFromFloat(inv.Total)
		billed = billed.Add(total)
		if inv.Status == models.StatusPaid {
			paid = paid.Add(total)
		} else {
			outstanding = outstanding.Add(total)
		}
		if inv.IsOverdue(today) {
			overdue = overdue.Add(total)
		}

		ct, ok := byCustomer[inv.CustomerID]
		if !ok {
			ct = &customerTotals{billed: decimal.Zero}
			byCustomer[inv.CustomerID] = ct
		}
		ct.invoices++
		ct.billed = ct.billed.Add(total)
	}

	report.Billed = billed.InexactFloat64()
	report.Paid = paid.InexactFloat64()
	report.Outstanding = outstanding.InexactFloat64()
	report.Overdue = overdue.InexactFloat64()

	names := make(map[int]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}
	for id, ct := range byCustomer {
		name, ok := names[id]
		if !ok {
			name = UnknownCustomer
		}
		report.TopCustomers = append(report.TopCustomers, CustomerSummary{
			CustomerID: id,
			Name:       name,
			Invoices:   ct.invoices,
			Billed:     ct.billed.InexactFloat64(),
		})
	}
	sort.Slice(report.TopCustomers, func(i, j int) bool {
		a, b := report.TopCustomers[i], report.TopCustomers[j]
		if a.Billed != b.Billed {
			return a.Billed > b.Billed
		}
		return a.CustomerID < b.CustomerID
	})
	if len(report.TopCustomers) > topCustomerLimit {
		report.TopCustomers = report.TopCustomers[:topCustomerLimit]
	}
	return report, nil
}
