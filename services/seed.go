package services

import (
	"context"
	"fmt"

	"invoicing-backend/models"
	"invoicing-backend/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func seedCustomers() []models.Customer {
	return []models.Customer{
		{ID: 1, Name: "Acme Corp", Email: "contact@acme.com", Phone: "555-0100", Address: "123 Industrial Way, Tech City, TC 90210"},
		{ID: 2, Name: "Global Services Inc", Email: "billing@globalservices.com", Phone: "555-0200", Address: "456 Corporate Blvd, Metropolis, NY 10001"},
	}
}

func (s *Store) seedInvoices() []models.Invoice {
	now := s.now()
	today := utils.FormatDate(now)

	invoices := []models.Invoice{
		{
			ID:            1,
			CustomerID:    1,
			InvoiceNumber: "INV-001",
			Date:          today,
			DueDate:       utils.FormatDate(now.AddDate(0, 0, 7)),
			Status:        models.StatusPaid,
			Notes:         "Consulting services for Q1",
			Items: []models.InvoiceItem{
				{Description: "Strategy Session", Quantity: 5, UnitPrice: 200, TaxRate: 10},
			},
		},
		{
			ID:            2,
			CustomerID:    2,
			InvoiceNumber: "INV-002",
			Date:          today,
			DueDate:       utils.FormatDate(now.AddDate(0, 0, 14)),
			Status:        models.StatusPending,
			Notes:         "Web development deposit",
			Items: []models.InvoiceItem{
				{Description: "Frontend Development", Quantity: 10, UnitPrice: 50, TaxRate: 10},
			},
		},
	}
	for i := range invoices {
		applyTotals(&invoices[i], ComputeTotals(invoices[i].Items))
	}
	return invoices
}

// Seed fills an empty database with example customers, invoices and the
// default settings. It does nothing when any collection already has rows,
// so it is safe to call on every start.
func (s *Store) Seed(ctx context.Context, logger *zap.Logger) error {
	seeded := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.Customer{}, &models.Item{}, &models.Invoice{}, &models.Settings{}} {
			var count int64
			if err := tx.Model(model).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return nil
			}
		}

		txStore := &Store{db: tx, now: s.now}
		for _, customer := range seedCustomers() {
			if err := txStore.InsertCustomer(ctx, customer); err != nil {
				return err
			}
		}
		for _, invoice := range s.seedInvoices() {
			if err := txStore.InsertInvoice(ctx, invoice); err != nil {
				return err
			}
		}
		settings := models.DefaultSettings()
		if err := tx.Create(&settings).Error; err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}
	if seeded {
		logger.Info("seeded empty database with example records")
	}
	return nil
}
