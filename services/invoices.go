package services

import (
	"context"
	"fmt"
	"strings"

	"invoicing-backend/models"

	"gorm.io/gorm"
)

// ListInvoices returns the invoices matching filter, most recent date
// first. Status "overdue" selects pending invoices past their due date.
func (s *Store) ListInvoices(ctx context.Context, filter models.InvoiceFilter) ([]models.Invoice, error) {
	q := s.db.WithContext(ctx).Model(&models.Invoice{})

	if filter.CustomerID != nil {
		q = q.Where("customer_id = ?", *filter.CustomerID)
	}
	switch filter.Status {
	case "":
	case models.StatusOverdue:
		q = q.Where("status = ? AND due_date < ?", models.StatusPending, s.Today())
	default:
		q = q.Where("status = ?", filter.Status)
	}
	if filter.StartDate != "" {
		q = q.Where("invoice_date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		q = q.Where("invoice_date <= ?", filter.EndDate)
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		like := containsPattern(term)
		customers := s.db.WithContext(ctx).Model(&models.Customer{}).Select("id").
			Where(`LOWER(name) LIKE ? ESCAPE '\'`, like)
		q = q.Where(`(LOWER(invoice_number) LIKE ? ESCAPE '\' OR customer_id IN (?))`, like, customers)
	}

	invoices := []models.Invoice{}
	if err := q.Order("invoice_date DESC").Order("id ASC").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a case-insensitive LIKE pattern that matches term
// literally anywhere in a column. Use with ESCAPE '\'.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

func (s *Store) GetInvoice(ctx context.Context, id int) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := getRecord(s.db.WithContext(ctx), id, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// CreateInvoice stores a new invoice with totals computed from its items.
func (s *Store) CreateInvoice(ctx context.Context, in models.InvoiceInput) (*models.Invoice, error) {
	invoice := in.ToInvoice()
	totals, err := ReconcileTotals(invoice.Items, in.Totals())
	if err != nil {
		return nil, err
	}
	applyTotals(&invoice, totals)

	if err := s.createRecord(ctx, tableInvoices, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// InsertInvoice stores an invoice under a caller-chosen id. Totals are
// stored as given.
func (s *Store) InsertInvoice(ctx context.Context, invoice models.Invoice) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return insertRecord(tx, tableInvoices, invoice.ID, &invoice)
	})
}

// UpdateInvoice merges patch over the stored invoice. Totals are
// recomputed when the patch carries items or any total.
func (s *Store) UpdateInvoice(ctx context.Context, id int, patch models.InvoicePatch) (*models.Invoice, error) {
	var invoice models.Invoice
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := getRecord(tx, id, &invoice); err != nil {
			return err
		}
		patch.Apply(&invoice)

		supplied := patch.Totals()
		if patch.Items != nil || supplied.Any() {
			totals, err := ReconcileTotals(invoice.Items, supplied)
			if err != nil {
				return err
			}
			applyTotals(&invoice, totals)
		}
		return tx.Save(&invoice).Error
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id int) error {
	return deleteRecord(ctx, s.db, id, &models.Invoice{})
}

func applyTotals(invoice *models.Invoice, totals models.Totals) {
	invoice.Subtotal = totals.Subtotal
	invoice.Tax = totals.Tax
	invoice.Total = totals.Total
}
