package services

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"invoicing-backend/models"
	"invoicing-backend/utils"
)

const defaultInvoicePrefix = "INV-"

// defaultDueDays is how far after the invoice date a new invoice falls due.
const defaultDueDays = 7

// NextInvoiceNumber picks the invoice whose number has the largest numeric
// part and returns its prefix followed by that number plus one. The numeric
// part is every digit of the number read as one integer, so "INV-009"
// yields 9 and the next number is "INV-10".
func NextInvoiceNumber(invoices []models.Invoice) string {
	if len(invoices) == 0 {
		return defaultInvoicePrefix + "1"
	}

	last := invoices[0].InvoiceNumber
	highest := numericPart(last)
	for _, inv := range invoices[1:] {
		if n := numericPart(inv.InvoiceNumber); n > highest {
			highest = n
			last = inv.InvoiceNumber
		}
	}

	prefix := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, last)
	if prefix == "" {
		prefix = defaultInvoicePrefix
	}
	return prefix + strconv.FormatInt(highest+1, 10)
}

func numericPart(number string) int64 {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// InvoiceDefaults is the starting point for a new invoice form.
type InvoiceDefaults struct {
	CustomerID    *int                 `json:"customerId"`
	InvoiceNumber string               `json:"invoiceNumber"`
	Date          string               `json:"date"`
	DueDate       string               `json:"dueDate"`
	Status        string               `json:"status"`
	Notes         string               `json:"notes"`
	Items         []models.InvoiceItem `json:"items"`
	models.Totals
}

// InvoiceDefaults builds a draft invoice due in a week with one blank line
// taxed at the company's default percentage.
func (s *Store) InvoiceDefaults(ctx context.Context) (*InvoiceDefaults, error) {
	invoices, err := s.ListInvoices(ctx, models.InvoiceFilter{})
	if err != nil {
		return nil, err
	}
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	return &InvoiceDefaults{
		InvoiceNumber: NextInvoiceNumber(invoices),
		Date:          utils.FormatDate(now),
		DueDate:       utils.FormatDate(now.AddDate(0, 0, defaultDueDays)),
		Status:        models.StatusDraft,
		Items: []models.InvoiceItem{
			{Description: "", Quantity: 1, UnitPrice: 0, TaxRate: settings.TaxPercentage},
		},
	}, nil
}
