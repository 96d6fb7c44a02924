package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Category errors
var (
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrCategoryReferenced    = errors.New("the category is still referenced by transactions")
)

// Expansion errors
var (
	ErrKindInvalid              = errors.New("the kind must be one of 'income' or 'expense'")
	ErrRecurrenceInvalid        = errors.New("the recurrence must be one of 'single', 'recurring' or 'installment'")
	ErrRecurringEndDateRequired = errors.New("recurring transactions require an end date")
	ErrInstallmentCountTooSmall = errors.New("installment transactions require a count of at least 2")
	ErrEndDateOnlyForRecurring  = errors.New("an end date can only be set for recurring transactions")
	ErrCountOnlyForInstallments = errors.New("an installment count can only be set for installment transactions")
)
