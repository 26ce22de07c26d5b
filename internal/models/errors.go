package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAccountNameNotUnique       = errors.New("the account name must be unique")
	ErrAccountKindInvalid         = errors.New("the account kind must be \"decimal\" or \"integer\"")
	ErrCategoryKeyNotUnique       = errors.New("the category key must be unique")
	ErrMonthlyBudgetNotUnique     = errors.New("you can not create multiple budgets for the same category and month")
	ErrMonthlyBudgetMonthNotSet   = errors.New("the month must be set for a monthly budget")
	ErrTransactionTypeNotSet      = errors.New("the transaction type must be set")
	ErrTransactionCategoryNotSet  = errors.New("the transaction category must be set")
)
