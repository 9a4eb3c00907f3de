package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings goal with a target amount and the amount saved so far.
type Goal struct {
	DefaultModel
	User          User      `json:"-"`
	UserID        uuid.UUID `gorm:"index"`
	Title         string
	TargetAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrentAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Deadline      *time.Time
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Title = strings.TrimSpace(g.Title)

	if !decimal.Decimal.IsPositive(g.TargetAmount) {
		return ErrGoalTargetNotPositive
	}

	if g.CurrentAmount.IsNegative() {
		return ErrGoalCurrentNegative
	}

	return nil
}
