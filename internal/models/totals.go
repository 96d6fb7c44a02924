package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Totals are the running sums over all transactions.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// CalculateTotals computes the income and expense sums and the balance over
// all stored transactions.
//
// This is a full scan. At the scale of a single person's ledger that is fine;
// if it ever is not, this function is the only place that needs an index.
func CalculateTotals(db *gorm.DB) (Totals, error) {
	var transactions []Transaction
	err := db.Find(&transactions).Error
	if err != nil {
		return Totals{}, err
	}

	totals := Totals{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	for _, t := range transactions {
		if t.Kind == KindIncome {
			totals.Income = totals.Income.Add(t.Amount)
		} else {
			totals.Expense = totals.Expense.Add(t.Amount)
		}
	}

	totals.Balance = totals.Income.Sub(totals.Expense)
	return totals, nil
}
