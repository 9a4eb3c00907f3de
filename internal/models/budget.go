package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartfinance/backend/internal/types"
	"gorm.io/gorm"
)

// Budget is a spending limit for one category in one calendar month.
type Budget struct {
	DefaultModel
	User     User            `json:"-"`
	UserID   uuid.UUID       `gorm:"uniqueIndex:budget_user_category_month"`
	Category types.Category  `gorm:"uniqueIndex:budget_user_category_month"`
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Month    types.Month     `gorm:"uniqueIndex:budget_user_category_month"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(b.Amount) {
		return ErrAmountNotPositive
	}

	if !b.Category.Valid() {
		return ErrCategoryInvalid
	}

	return nil
}
