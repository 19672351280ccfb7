package services

import (
	"context"
	"fmt"

	"invoicing-backend/models"

	"gorm.io/gorm"
)

func (s *Store) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := s.db.WithContext(ctx).Order("id").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (s *Store) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	var customer models.Customer
	if err := getRecord(s.db.WithContext(ctx), id, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *Store) CreateCustomer(ctx context.Context, in models.CustomerInput) (*models.Customer, error) {
	customer := in.ToCustomer()
	if err := s.createRecord(ctx, tableCustomers, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// InsertCustomer stores a customer under a caller-chosen id.
func (s *Store) InsertCustomer(ctx context.Context, customer models.Customer) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return insertRecord(tx, tableCustomers, customer.ID, &customer)
	})
}

func (s *Store) UpdateCustomer(ctx context.Context, id int, patch models.CustomerPatch) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := getRecord(tx, id, &customer); err != nil {
			return err
		}
		patch.Apply(&customer)
		return tx.Save(&customer).Error
	})
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// DeleteCustomer removes a customer. Invoices referencing it are kept.
func (s *Store) DeleteCustomer(ctx context.Context, id int) error {
	return deleteRecord(ctx, s.db, id, &models.Customer{})
}
