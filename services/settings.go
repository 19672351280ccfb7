package services

import (
	"context"
	"errors"
	"fmt"

	"invoicing-backend/models"

	"gorm.io/gorm"
)

// GetSettings returns the settings row, creating it from defaults when
// it does not exist yet.
func (s *Store) GetSettings(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := getRecord(tx, models.SettingsID, &settings)
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		settings = models.DefaultSettings()
		return tx.Create(&settings).Error
	})
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &settings, nil
}

// UpdateSettings overwrites the single settings row.
func (s *Store) UpdateSettings(ctx context.Context, in models.SettingsInput) (*models.Settings, error) {
	settings := in.ToSettings()
	if err := s.db.WithContext(ctx).Save(&settings).Error; err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	return &settings, nil
}
