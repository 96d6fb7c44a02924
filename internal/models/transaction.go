package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecurrenceType describes how a transaction request was materialized.
type RecurrenceType string

const (
	RecurrenceSingle      RecurrenceType = "single"
	RecurrenceRecurring   RecurrenceType = "recurring"
	RecurrenceInstallment RecurrenceType = "installment"
)

// Valid reports whether the recurrence is one of the known values.
func (r RecurrenceType) Valid() bool {
	return r == RecurrenceSingle || r == RecurrenceRecurring || r == RecurrenceInstallment
}

// Transaction represents one materialized income or expense entry.
//
// Recurring and installment requests are expanded into multiple transactions
// at creation time, see Expand.
type Transaction struct {
	DefaultModel
	Date       time.Time
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note       string
	Kind       CategoryKind
	CategoryID uuid.UUID
	Category   Category `json:"-"`

	Recurrence RecurrenceType

	// EndDate is the inclusive upper bound for recurring transactions.
	// It is shared by all transactions of one recurring request.
	EndDate *time.Time

	// InstallmentCount and InstallmentIndex are only set for installment
	// transactions. The index is 1-based.
	InstallmentCount uint
	InstallmentIndex uint
}

// BeforeSave sets the timezone for the Date to UTC and trims the note.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if t.EndDate != nil {
		endDate := t.EndDate.In(time.UTC)
		t.EndDate = &endDate
	}

	t.Note = strings.TrimSpace(t.Note)

	return nil
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)

	if t.EndDate != nil {
		endDate := t.EndDate.In(time.UTC)
		t.EndDate = &endDate
	}

	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	// The category has to exist
	return tx.First(&Category{}, t.CategoryID).Error
}

// CreateBatch persists all transactions of one expanded request in a single
// database transaction. Either every transaction is committed or none are.
func CreateBatch(db *gorm.DB, transactions []Transaction) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range transactions {
			if err := tx.Create(&transactions[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteTransaction removes a single transaction by ID.
//
// A transaction that does not exist is not an error, the returned boolean
// reports whether anything was deleted.
func DeleteTransaction(db *gorm.DB, id uuid.UUID) (bool, error) {
	var transaction Transaction
	err := db.First(&transaction, id).Error
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}

	err = db.Delete(&transaction).Error
	if err != nil {
		return false, err
	}

	return true, nil
}
