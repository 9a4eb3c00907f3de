package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartfinance/backend/internal/models"
)

type GoalEditable struct {
	Title         string          `json:"title" example:"Emergency Fund" default:""`                                                                       // Name of the goal
	TargetAmount  decimal.Decimal `json:"targetAmount" example:"100000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // How much money should be saved
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"25000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`   // How much money has been saved so far
	Deadline      *time.Time      `json:"deadline" example:"2026-12-31T00:00:00Z"`                                                                         // When the goal should be reached
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model(userID uuid.UUID) models.Goal {
	return models.Goal{
		UserID:        userID,
		Title:         editable.Title,
		TargetAmount:  editable.TargetAmount,
		CurrentAmount: editable.CurrentAmount,
		Deadline:      editable.Deadline,
	}
}

type Goal struct {
	models.DefaultModel
	GoalEditable
}

// newGoal returns the API representation of the resource
func newGoal(model models.Goal) Goal {
	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Title:         model.Title,
			TargetAmount:  model.TargetAmount,
			CurrentAmount: model.CurrentAmount,
			Deadline:      model.Deadline,
		},
	}
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`                                                 // List of resources
	Error *string `json:"error" example:"there is no goal matching your query"` // The error, if any occurred
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the target amount must be positive"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                               // List of created resources
}

func (t *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the target amount must be positive"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                               // The resource
}
