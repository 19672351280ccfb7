package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"invoicing-backend/models"
	"invoicing-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a record with the requested id does not exist.
var ErrNotFound = errors.New("record not found")

const (
	tableCustomers = "customers"
	tableItems     = "items"
	tableInvoices  = "invoices"
)

// Store persists customers, catalog items, invoices and settings. Every
// write runs in its own transaction.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

type StoreOption func(*Store)

// WithClock overrides the clock used to decide which invoices are overdue.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

func NewStore(db *gorm.DB, opts ...StoreOption) *Store {
	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Migrate creates or updates the tables used by the store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.Item{},
		&models.Invoice{},
		&models.Settings{},
		&models.Sequence{},
		&models.ReminderLog{},
	)
}

// Today returns the store's current date as YYYY-MM-DD.
func (s *Store) Today() string {
	return utils.FormatDate(s.now())
}

type identifiable interface {
	SetID(id int)
}

// nextID returns the id for a new record: one past the larger of the
// highest id ever handed out and the highest id currently stored.
func nextID(tx *gorm.DB, table string) (int, error) {
	var seq models.Sequence
	if err := tx.Where("name = ?", table).Limit(1).Find(&seq).Error; err != nil {
		return 0, fmt.Errorf("read %s sequence: %w", table, err)
	}

	var maxID int
	if err := tx.Table(table).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
		return 0, fmt.Errorf("read max %s id: %w", table, err)
	}

	id := max(seq.LastID, maxID) + 1
	if err := bumpSequence(tx, table, id); err != nil {
		return 0, err
	}
	return id, nil
}

// bumpSequence raises the sequence of table to id if it is lower.
func bumpSequence(tx *gorm.DB, table string, id int) error {
	var seq models.Sequence
	if err := tx.Where("name = ?", table).Limit(1).Find(&seq).Error; err != nil {
		return fmt.Errorf("read %s sequence: %w", table, err)
	}
	if seq.Name != "" && seq.LastID >= id {
		return nil
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_id"}),
	}).Create(&models.Sequence{Name: table, LastID: id}).Error
	if err != nil {
		return fmt.Errorf("update %s sequence: %w", table, err)
	}
	return nil
}

func (s *Store) createRecord(ctx context.Context, table string, rec identifiable) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, table)
		if err != nil {
			return err
		}
		rec.SetID(id)
		if err := tx.Table(table).Create(rec).Error; err != nil {
			return fmt.Errorf("insert into %s: %w", table, err)
		}
		return nil
	})
}

// insertRecord stores rec under an explicit id and keeps the sequence ahead of it.
func insertRecord(tx *gorm.DB, table string, id int, rec identifiable) error {
	rec.SetID(id)
	if err := tx.Table(table).Create(rec).Error; err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return bumpSequence(tx, table, id)
}

func getRecord(tx *gorm.DB, id int, dest any) error {
	err := tx.First(dest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func deleteRecord(ctx context.Context, db *gorm.DB, id int, model any) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(model, "id = ?", id).Error
	})
}
