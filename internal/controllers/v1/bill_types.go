package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartfinance/backend/internal/models"
	"github.com/smartfinance/backend/internal/types"
)

type BillEditable struct {
	Name     string          `json:"name" example:"Electricity" default:""`                                                                       // Name of the bill
	Amount   decimal.Decimal `json:"amount" example:"1200" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // The amount due in rupees
	Category types.Category  `json:"category" example:"Bills"`                                                                                    // Category of the bill
	DueDate  time.Time       `json:"dueDate" example:"2026-09-15T00:00:00Z"`                                                                      // When the bill is due
}

// model returns the database resource for the API representation of the editable fields
func (editable BillEditable) model(userID uuid.UUID) models.Bill {
	return models.Bill{
		UserID:   userID,
		Name:     editable.Name,
		Amount:   editable.Amount,
		Category: editable.Category,
		DueDate:  editable.DueDate,
	}
}

type Bill struct {
	models.DefaultModel
	BillEditable
}

// newBill returns the API representation of the resource
func newBill(model models.Bill) Bill {
	return Bill{
		DefaultModel: model.DefaultModel,
		BillEditable: BillEditable{
			Name:     model.Name,
			Amount:   model.Amount,
			Category: model.Category,
			DueDate:  model.DueDate,
		},
	}
}

type BillListResponse struct {
	Data  []Bill  `json:"data"`                                                 // List of resources
	Error *string `json:"error" example:"there is no bill matching your query"` // The error, if any occurred
}

type BillCreateResponse struct {
	Error *string        `json:"error" example:"the amount must be positive"` // The error, if any occurred
	Data  []BillResponse `json:"data"`                                        // List of created resources
}

func (t *BillCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, BillResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BillResponse struct {
	Error *string `json:"error" example:"the amount must be positive"` // The error, if any occurred
	Data  *Bill   `json:"data"`                                        // The resource
}
