package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartfinance/backend/internal/types"
	"gorm.io/gorm"
)

// Bill is a recurring payment reminder with a due date.
type Bill struct {
	DefaultModel
	User     User      `json:"-"`
	UserID   uuid.UUID `gorm:"index"`
	Name     string
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category types.Category
	DueDate  time.Time
}

func (b *Bill) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)

	if !decimal.Decimal.IsPositive(b.Amount) {
		return ErrAmountNotPositive
	}

	if !b.Category.Valid() {
		return ErrCategoryInvalid
	}

	year, month, day := b.DueDate.Date()
	b.DueDate = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return nil
}

// AfterFind normalizes the due date to UTC, see DefaultModel.AfterFind.
func (b *Bill) AfterFind(tx *gorm.DB) error {
	_ = b.DefaultModel.AfterFind(tx)

	b.DueDate = b.DueDate.In(time.UTC)
	return nil
}
