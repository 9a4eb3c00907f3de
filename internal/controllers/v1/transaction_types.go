package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartfinance/backend/internal/models"
	"github.com/smartfinance/backend/internal/types"
)

type TransactionEditable struct {
	Title    string                `json:"title" example:"Groceries" default:""`                                                                        // What the transaction was for
	Amount   decimal.Decimal       `json:"amount" example:"450" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // The amount in rupees
	Category types.Category        `json:"category" example:"Food"`                                                                                     // Category of the transaction
	Type     types.TransactionType `json:"type" example:"expense"`                                                                                      // Whether money came in or went out
	Date     time.Time             `json:"date" example:"2026-08-14T00:00:00Z"`                                                                         // The day the transaction happened
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:   userID,
		Title:    editable.Title,
		Amount:   editable.Amount,
		Category: editable.Category,
		Type:     editable.Type,
		Date:     editable.Date,
	}
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
}

// newTransaction returns the API representation of the resource
func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Title:    model.Title,
			Amount:   model.Amount,
			Category: model.Category,
			Type:     model.Type,
			Date:     model.Date,
		},
	}
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                 // List of resources
	Error *string       `json:"error" example:"there is no transaction matching your query"` // The error, if any occurred
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the amount must be positive"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                        // List of created resources
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the amount must be positive"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                        // The resource
}

type TransactionQueryFilter struct {
	Category string `form:"category"` // Filter by category
	Type     string `form:"type"`     // Filter by transaction type
	Month    string `form:"month"`    // Transactions in this month, YYYY-MM
}
