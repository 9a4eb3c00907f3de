package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors for the individual models.
var (
	ErrAmountNotPositive      = errors.New("amounts must be larger than zero")
	ErrCategoryInvalid        = errors.New("the category must be one of: Food, Rent, Bills, Transport, Entertainment, Other")
	ErrTransactionTypeInvalid = errors.New("the transaction type must be income or expense")
	ErrGoalTargetNotPositive  = errors.New("the target amount for a goal must be larger than zero")
	ErrGoalCurrentNegative    = errors.New("the saved amount for a goal cannot be negative")
	ErrBudgetMonthNotUnique   = errors.New("you can not create multiple budgets for the same category and month")
)
