package models

import (
	"strings"

	"gorm.io/gorm"
)

// CategoryKind determines whether transactions in a category are
// income or expenses.
type CategoryKind string

const (
	KindIncome  CategoryKind = "income"
	KindExpense CategoryKind = "expense"
)

// Valid reports whether the kind is one of the known values.
func (k CategoryKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Category represents a classification tag for transactions.
type Category struct {
	DefaultModel
	Name string       `gorm:"uniqueIndex"`
	Kind CategoryKind // income or expense
	Note string
}

// BeforeSave trims whitespace and verifies the kind.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	if !c.Kind.Valid() {
		return ErrKindInvalid
	}

	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	return nil
}

// BeforeDelete blocks the deletion of categories that transactions still
// reference. Entries are never edited, so allowing the deletion would leave
// them pointing at nothing.
func (c *Category) BeforeDelete(tx *gorm.DB) error {
	var count int64
	err := tx.Model(&Transaction{}).Where(&Transaction{CategoryID: c.ID}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrCategoryReferenced
	}

	return nil
}

// DefaultCategories returns the categories every fresh instance starts with.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Salary", Kind: KindIncome, Note: "Monthly earnings"},
		{Name: "Food", Kind: KindExpense, Note: "Groceries and eating out"},
		{Name: "Transport", Kind: KindExpense, Note: "Getting around"},
		{Name: "Leisure", Kind: KindExpense, Note: "Entertainment"},
		{Name: "Other", Kind: KindExpense, Note: "Everything else"},
	}
}

// SeedDefaultCategories inserts the default categories when no categories
// exist yet. A non-empty categories table is left untouched, so calling this
// on every startup is safe.
func SeedDefaultCategories(db *gorm.DB) error {
	var count int64
	err := db.Model(&Category{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	categories := DefaultCategories()
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range categories {
			if err := tx.Create(&categories[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
