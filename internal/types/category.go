package types

import "golang.org/x/exp/slices"

// Category is the spending category of a transaction, budget or bill.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryRent          Category = "Rent"
	CategoryBills         Category = "Bills"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryOther         Category = "Other"
)

// Categories returns all valid categories.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryRent,
		CategoryBills,
		CategoryTransport,
		CategoryEntertainment,
		CategoryOther,
	}
}

// Valid reports whether the category is a member of the fixed category set.
func (c Category) Valid() bool {
	return slices.Contains(Categories(), c)
}

// TransactionType reports whether money comes in or goes out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the transaction type is income or expense.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}
