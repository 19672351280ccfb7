package services

import (
	"context"
	"fmt"

	"invoicing-backend/models"

	"gorm.io/gorm"
)

func (s *Store) ListItems(ctx context.Context) ([]models.Item, error) {
	items := []models.Item{}
	if err := s.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (s *Store) GetItem(ctx context.Context, id int) (*models.Item, error) {
	var item models.Item
	if err := getRecord(s.db.WithContext(ctx), id, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateItem(ctx context.Context, in models.ItemInput) (*models.Item, error) {
	item := in.ToItem()
	if err := s.createRecord(ctx, tableItems, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) UpdateItem(ctx context.Context, id int, patch models.ItemPatch) (*models.Item, error) {
	var item models.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := getRecord(tx, id, &item); err != nil {
			return err
		}
		patch.Apply(&item)
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) DeleteItem(ctx context.Context, id int) error {
	return deleteRecord(ctx, s.db, id, &models.Item{})
}
