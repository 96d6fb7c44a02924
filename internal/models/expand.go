package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// expansionStep is the interval between generated transactions for recurring
// and installment requests. The step is a fixed number of days, not a
// calendar month, so the day of month drifts over long spans. This mirrors
// how statements for such plans are commonly issued and keeps the expansion
// independent of month lengths.
const expansionStep = 30 * 24 * time.Hour

// Expand materializes the concrete transactions for one request.
//
// The request is described by a prototype transaction: its Recurrence selects
// the mode, EndDate and InstallmentCount carry the mode parameters. Expansion
// is pure, all dates derive from the prototype's Date. The returned
// transactions are not persisted, see CreateBatch.
//
// For installment requests the prototype's Amount is the total to be divided,
// for all other modes it is the per-occurrence amount.
func Expand(prototype Transaction) ([]Transaction, error) {
	if !prototype.Kind.Valid() {
		return nil, ErrKindInvalid
	}

	switch prototype.Recurrence {
	case RecurrenceSingle:
		return expandSingle(prototype)
	case RecurrenceRecurring:
		return expandRecurring(prototype)
	case RecurrenceInstallment:
		return expandInstallment(prototype)
	}

	return nil, ErrRecurrenceInvalid
}

func expandSingle(prototype Transaction) ([]Transaction, error) {
	if prototype.EndDate != nil {
		return nil, ErrEndDateOnlyForRecurring
	}

	if prototype.InstallmentCount != 0 {
		return nil, ErrCountOnlyForInstallments
	}

	return []Transaction{prototype}, nil
}

func expandRecurring(prototype Transaction) ([]Transaction, error) {
	if prototype.EndDate == nil {
		return nil, ErrRecurringEndDateRequired
	}

	if prototype.InstallmentCount != 0 {
		return nil, ErrCountOnlyForInstallments
	}

	// An end date before the start produces no transactions
	transactions := []Transaction{}

	for date := prototype.Date; !date.After(*prototype.EndDate); date = date.Add(expansionStep) {
		transaction := prototype
		transaction.Date = date
		transactions = append(transactions, transaction)
	}

	return transactions, nil
}

func expandInstallment(prototype Transaction) ([]Transaction, error) {
	if prototype.InstallmentCount < 2 {
		return nil, ErrInstallmentCountTooSmall
	}

	if prototype.EndDate != nil {
		return nil, ErrEndDateOnlyForRecurring
	}

	count := prototype.InstallmentCount
	amount := prototype.Amount.Div(decimal.NewFromInt(int64(count)))

	transactions := make([]Transaction, 0, count)
	for index := uint(1); index <= count; index++ {
		transaction := prototype
		transaction.Date = prototype.Date.Add(time.Duration(index-1) * expansionStep)
		transaction.Amount = amount
		transaction.Note = fmt.Sprintf("%s (%d/%d)", prototype.Note, index, count)
		transaction.InstallmentIndex = index
		transactions = append(transactions, transaction)
	}

	return transactions, nil
}
