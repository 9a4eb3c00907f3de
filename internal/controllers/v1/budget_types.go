package v1

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartfinance/backend/internal/models"
	"github.com/smartfinance/backend/internal/types"
)

type BudgetEditable struct {
	Category types.Category  `json:"category" example:"Food"`                                                                                       // The category this budget limits
	Amount   decimal.Decimal `json:"amount" example:"5000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // The spending limit in rupees
	Month    types.Month     `json:"month" example:"2026-08"`                                                                                       // The month the budget applies to
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:   userID,
		Category: editable.Category,
		Amount:   editable.Amount,
		Month:    editable.Month,
	}
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
}

// newBudget returns the API representation of the resource
func newBudget(model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Category: model.Category,
			Amount:   model.Amount,
			Month:    model.Month,
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                   // List of resources
	Error *string  `json:"error" example:"there is no budget matching your query"` // The error, if any occurred
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the amount must be positive"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                        // List of created resources
}

func (t *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the amount must be positive"` // The error, if any occurred
	Data  *Budget `json:"data"`                                        // The resource
}

type BudgetQueryFilter struct {
	Category string `form:"category"` // Filter by category
	Month    string `form:"month"`    // Budgets for this month, YYYY-MM
}
